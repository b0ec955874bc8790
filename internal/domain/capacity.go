package domain

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-PetHotelService/pkg/types"
)

// SizeCounts is a number of pets per size class
type SizeCounts struct {
	Small  int
	Medium int
}

// Total returns the number of pets
func (c SizeCounts) Total() int {
	return c.Small + c.Medium
}

// Add counts one more pet of the class
func (c *SizeCounts) Add(size SizeClass) {
	switch size {
	case SizeSmall:
		c.Small++
	case SizeMedium:
		c.Medium++
	}
}

// Plus returns the element-wise sum
func (c SizeCounts) Plus(o SizeCounts) SizeCounts {
	return SizeCounts{Small: c.Small + o.Small, Medium: c.Medium + o.Medium}
}

// CountSizes classifies every pet and counts them per class
func CountSizes(pets []Pet) (SizeCounts, error) {
	var counts SizeCounts
	for i := range pets {
		size, err := pets[i].SizeClass()
		if err != nil {
			return SizeCounts{}, fmt.Errorf("pet id=%d: %w", pets[i].ID, err)
		}
		counts.Add(size)
	}
	return counts, nil
}

// Remaining is the free places per size class; values may be negative when a room is overbooked
type Remaining struct {
	Small  int
	Medium int
}

// Total returns the free places in both pools
func (r Remaining) Total() int {
	return r.Small + r.Medium
}

// Admits returns true if the requested pets fit into the remaining places
func (r Remaining) Admits(requested SizeCounts) bool {
	return requested.Small <= r.Small && requested.Medium <= r.Medium
}

// CapacityRow is the occupancy of one room on one date
type CapacityRow struct {
	Date            types.Date
	SmallCapacity   int
	MediumCapacity  int
	SmallOccupied   int
	MediumOccupied  int
	SmallRemaining  int
	MediumRemaining int
	TotalRemaining  int
	Available       bool
}

// NewCapacityRow derives the remaining places from capacity and occupancy
func NewCapacityRow(date types.Date, room *Room, occupied SizeCounts) CapacityRow {
	small := room.SmallCapacity - occupied.Small
	medium := room.MediumCapacity - occupied.Medium
	return CapacityRow{
		Date:            date,
		SmallCapacity:   room.SmallCapacity,
		MediumCapacity:  room.MediumCapacity,
		SmallOccupied:   occupied.Small,
		MediumOccupied:  occupied.Medium,
		SmallRemaining:  small,
		MediumRemaining: medium,
		TotalRemaining:  small + medium,
		Available:       small+medium > 0,
	}
}

// Remaining returns the free places of the row
func (r CapacityRow) Remaining() Remaining {
	return Remaining{Small: r.SmallRemaining, Medium: r.MediumRemaining}
}

// OccupancyRate returns the occupied share in percent (0-100)
func (r CapacityRow) OccupancyRate() float64 {
	total := r.SmallCapacity + r.MediumCapacity
	if total == 0 {
		return 0
	}
	return float64(r.SmallOccupied+r.MediumOccupied) / float64(total) * 100
}

// CapacityTable holds one row per date of the inclusive window [Start, End] for one room
type CapacityTable struct {
	RoomID int64
	Start  types.Date
	End    types.Date
	rows   map[types.Date]CapacityRow
}

// NewCapacityTable creates an empty table for the window
func NewCapacityTable(roomID int64, start, end types.Date) *CapacityTable {
	return &CapacityTable{
		RoomID: roomID,
		Start:  start,
		End:    end,
		rows:   make(map[types.Date]CapacityRow),
	}
}

// Set stores the row for its date
func (t *CapacityTable) Set(row CapacityRow) {
	t.rows[row.Date] = row
}

// Row returns the row of a date
func (t *CapacityTable) Row(d types.Date) (CapacityRow, bool) {
	row, ok := t.rows[d]
	return row, ok
}

// Len returns the number of rows
func (t *CapacityTable) Len() int {
	return len(t.rows)
}

// Rows returns the rows ordered by date
func (t *CapacityTable) Rows() []CapacityRow {
	rows := make([]CapacityRow, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows
}

// Covers returns true if every night of [checkIn, checkOut) lies in the window
func (t *CapacityTable) Covers(checkIn, checkOut types.Date) bool {
	return !checkIn.Before(t.Start) && !checkOut.AddDays(-1).After(t.End)
}
