package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PetHotelService/internal/domain"
	getRoomCalendarUC "github.com/m04kA/SMC-PetHotelService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// CapacityCmd печатает календарь мест номера на месяц
func CapacityCmd(configPath *string) *cobra.Command {
	var (
		roomID int64
		month  string
	)

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show daily capacity of a room for a month",
		Long: `Print one line per day of the month with occupied and remaining places
per size class. Full days are red, days with one full size class are yellow.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, mon, err := types.ParseMonth(month)
			if err != nil {
				return err
			}

			ctx := context.Background()
			env, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath})
			if err != nil {
				return err
			}
			defer env.Close()

			resp, err := env.app.RoomCalendar.Execute(ctx, &getRoomCalendarUC.Request{
				RoomID: roomID,
				Year:   year,
				Month:  mon,
			})
			if err != nil {
				return err
			}

			renderCalendar(os.Stdout, resp)
			return nil
		},
	}

	cmd.Flags().Int64Var(&roomID, "room", 0, "room ID (required)")
	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "month in YYYY-MM format")
	_ = cmd.MarkFlagRequired("room")

	return cmd
}

func renderCalendar(w io.Writer, resp *getRoomCalendarUC.Response) {
	fmt.Fprintf(w, "%s (room %d) - %s %d\n", resp.Room.Name, resp.Room.ID, resp.Month, resp.Year)
	fmt.Fprintf(w, "capacity: small=%d medium=%d\n\n", resp.Room.SmallCapacity, resp.Room.MediumCapacity)
	fmt.Fprintf(w, "%-10s  %-13s  %-13s  %s\n", "DATE", "SMALL", "MEDIUM", "FREE")

	for _, row := range resp.Days {
		line := fmt.Sprintf("%-10s  %-13s  %-13s  %d",
			row.Date,
			fmt.Sprintf("%d/%d", row.SmallOccupied, row.SmallCapacity),
			fmt.Sprintf("%d/%d", row.MediumOccupied, row.MediumCapacity),
			row.TotalRemaining,
		)
		fmt.Fprintln(w, rowColor(row).Sprint(line))
	}
}

func rowColor(row domain.CapacityRow) *color.Color {
	switch {
	case row.TotalRemaining <= 0:
		return color.New(color.FgRed)
	case row.SmallRemaining <= 0 || row.MediumRemaining <= 0:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
