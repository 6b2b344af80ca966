package schedule

import (
	"context"
	"time"
)

// gridCells is the fixed month-view size: six weeks of seven days, enough
// to hold any month regardless of where its first day falls.
const gridCells = 6 * 7

// MonthGrid lays out the given month as a 42-cell grid starting from the
// Sunday on or before the 1st. Cells outside the target month are included
// and marked Outside so the view can dim them.
func (b *Book) MonthGrid(ctx context.Context, year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, b.loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	b.mu.RLock()
	defer b.mu.RUnlock()

	cells := make([]DayCell, 0, gridCells)
	for i := 0; i < gridCells; i++ {
		date := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Date:         date,
			Outside:      date.Month() != month || date.Year() != year,
			Appointments: b.onDateLocked(date),
		})
	}
	return MonthGrid{Year: year, Month: month, Cells: cells}
}
