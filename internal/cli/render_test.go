package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	"github.com/m04kA/SMC-PetHotelService/internal/service/rooms/models"
	getRoomCalendarUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRenderCalendar(t *testing.T) {
	room := &domain.Room{ID: 3, Name: "Meadow", SmallCapacity: 2, MediumCapacity: 1}
	resp := &getRoomCalendarUC.Response{
		Room:  room,
		Year:  2025,
		Month: time.February,
		Days: []domain.CapacityRow{
			domain.NewCapacityRow(types.MustParseDate("2025-02-01"), room, domain.SizeCounts{}),
			domain.NewCapacityRow(types.MustParseDate("2025-02-02"), room, domain.SizeCounts{Small: 2, Medium: 1}),
		},
	}

	var buf bytes.Buffer
	renderCalendar(&buf, resp)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Meadow (room 3) - February 2025", lines[0])
	assert.Contains(t, lines[4], "2025-02-01")
	assert.Contains(t, lines[4], "0/2")
	assert.True(t, strings.HasSuffix(lines[4], "3"))
	assert.Contains(t, lines[5], "2/2")
	assert.True(t, strings.HasSuffix(lines[5], "0"))
}

func TestRowColor(t *testing.T) {
	room := &domain.Room{SmallCapacity: 1, MediumCapacity: 1}
	day := types.MustParseDate("2025-02-01")

	tests := []struct {
		name     string
		occupied domain.SizeCounts
		want     *color.Color
	}{
		{"free", domain.SizeCounts{}, color.New(color.FgGreen)},
		{"small pool full", domain.SizeCounts{Small: 1}, color.New(color.FgYellow)},
		{"full", domain.SizeCounts{Small: 1, Medium: 1}, color.New(color.FgRed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowColor(domain.NewCapacityRow(day, room, tt.occupied))
			assert.True(t, got.Equals(tt.want))
		})
	}
}

func TestRenderRooms(t *testing.T) {
	var empty bytes.Buffer
	renderRooms(&empty, &models.RoomListResponse{})
	assert.Contains(t, empty.String(), "pethotel rooms add")

	var buf bytes.Buffer
	renderRooms(&buf, &models.RoomListResponse{Rooms: []models.RoomResponse{
		{ID: 1, Name: "Meadow", SmallCapacity: 2, MediumCapacity: 1, NightlyPrice: 25},
	}})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Meadow")
	assert.Contains(t, lines[1], "25.00")
}
