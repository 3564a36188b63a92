package calendar

import (
	"errors"
	"time"

	"dealer-portal/internal/domain/appointment"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errors.New("operating window end must be after start")

const (
	DefaultStartHour = 8
	DefaultEndHour   = 18
)

// Window is the daily operating range [StartHour, EndHour) the grid
// allocates time-slot rows for. Each hour is split into two half-hour rows;
// row 1 is reserved for the day header.
type Window struct {
	StartHour int
	EndHour   int
}

func NewWindow(startHour, endHour int) (Window, error) {
	if startHour < 0 || endHour > 24 || endHour <= startHour {
		return Window{}, ErrInvalidWindow
	}
	return Window{StartHour: startHour, EndHour: endHour}, nil
}

func DefaultWindow() Window {
	return Window{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}

func (w Window) baseRow(t time.Time) int {
	return (t.Hour()-w.StartHour)*2 + 2
}

// RowStart is the grid row a timestamp starts on: the first half of the hour
// lands on the hour's upper row, the second half on the lower one.
func (w Window) RowStart(t time.Time) int {
	row := w.baseRow(t)
	if t.Minute() >= 30 {
		row++
	}
	return row
}

// RowEnd is the exclusive grid row a timestamp ends on. A span ending exactly
// on the hour closes at the hour's upper boundary; anything into the first
// half closes one row lower, anything past half past closes two rows lower.
func (w Window) RowEnd(t time.Time) int {
	row := w.baseRow(t)
	switch {
	case t.Minute() == 0:
		return row
	case t.Minute() <= 30:
		return row + 1
	default:
		return row + 2
	}
}

// FirstRow and LastRowEnd bound the slot rows: rows 2 .. 2*(EndHour-StartHour)+1,
// with LastRowEnd the exclusive boundary below the final slot.
func (w Window) FirstRow() int {
	return 2
}

func (w Window) LastRowEnd() int {
	return (w.EndHour-w.StartHour)*2 + 2
}

// RowCount is the number of half-hour slot rows in the window.
func (w Window) RowCount() int {
	return (w.EndHour - w.StartHour) * 2
}

// Placement is one appointment card positioned on a day or week grid.
// Column is the day index within the visible week, 0 = Monday through
// 6 = Sunday; day view always uses column 0.
type Placement struct {
	AppointmentID uuid.UUID
	Column        int
	RowStart      int
	RowEnd        int
	Status        appointment.Status
	Style         appointment.Style
	CustomerLabel string
	VehicleLabel  string
	StartsAt      time.Time
	EndsAt        time.Time
}

// PlaceDay projects the appointments falling on day onto a single-column
// grid. Appointments wholly outside the operating window are omitted; partial
// overlaps are clamped into range. A nil or empty list yields no placements.
func (w Window) PlaceDay(appts []*appointment.Appointment, day time.Time) []Placement {
	placements := make([]Placement, 0, len(appts))
	dayStart := dateOnly(day)
	for _, a := range appts {
		if !sameDay(a.ScheduledStart(), dayStart) {
			continue
		}
		if p, ok := w.place(a, 0); ok {
			placements = append(placements, p)
		}
	}
	return placements
}

// PlaceWeek projects the appointments onto the 7-column week containing
// reference. Weeks are Monday-anchored; appointments outside the visible week
// are excluded from the grid.
func (w Window) PlaceWeek(appts []*appointment.Appointment, reference time.Time) []Placement {
	weekStart := WeekStart(reference)
	weekEnd := weekStart.AddDate(0, 0, 7)

	placements := make([]Placement, 0, len(appts))
	for _, a := range appts {
		start := a.ScheduledStart()
		if start.Before(weekStart) || !start.Before(weekEnd) {
			continue
		}
		column := daysBetween(weekStart, dateOnly(start))
		if p, ok := w.place(a, column); ok {
			placements = append(placements, p)
		}
	}
	return placements
}

func (w Window) place(a *appointment.Appointment, column int) (Placement, bool) {
	start := a.ScheduledStart()
	end := a.ScheduledEnd()

	windowStart := time.Date(start.Year(), start.Month(), start.Day(), w.StartHour, 0, 0, 0, start.Location())
	windowEnd := time.Date(start.Year(), start.Month(), start.Day(), w.EndHour, 0, 0, 0, start.Location())

	// fully outside the operating window
	if !end.After(windowStart) || !start.Before(windowEnd) {
		return Placement{}, false
	}

	rowStart := w.RowStart(start)
	rowEnd := w.RowEnd(end)

	// clamp partial overlaps into range; never render a negative span
	if rowStart < w.FirstRow() {
		rowStart = w.FirstRow()
	}
	if rowEnd > w.LastRowEnd() {
		rowEnd = w.LastRowEnd()
	}
	if rowEnd <= rowStart {
		rowEnd = rowStart + 1
	}

	return Placement{
		AppointmentID: a.ID(),
		Column:        column,
		RowStart:      rowStart,
		RowEnd:        rowEnd,
		Status:        a.Status(),
		Style:         a.Status().Style(),
		CustomerLabel: a.CustomerLabel(),
		VehicleLabel:  a.VehicleLabel(),
		StartsAt:      start,
		EndsAt:        end,
	}, true
}

// DayCell is one cell of the month summary grid.
type DayCell struct {
	Date  time.Time
	Count int
}

// MonthCell is one cell of the year summary grid.
type MonthCell struct {
	Month time.Month
	Count int
}

// CountByDay aggregates appointments per day for the month containing
// reference. Every day of the month gets a cell, empty days included.
func CountByDay(appts []*appointment.Appointment, reference time.Time) []DayCell {
	monthStart := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	days := daysBetween(monthStart, nextMonth)

	cells := make([]DayCell, days)
	for i := range cells {
		cells[i] = DayCell{Date: monthStart.AddDate(0, 0, i)}
	}

	for _, a := range appts {
		start := a.ScheduledStart()
		if start.Before(monthStart) || !start.Before(nextMonth) {
			continue
		}
		cells[start.Day()-1].Count++
	}
	return cells
}

// CountByMonth aggregates appointments per month for the year containing
// reference.
func CountByMonth(appts []*appointment.Appointment, reference time.Time) []MonthCell {
	cells := make([]MonthCell, 12)
	for i := range cells {
		cells[i] = MonthCell{Month: time.Month(i + 1)}
	}

	for _, a := range appts {
		start := a.ScheduledStart()
		if start.Year() != reference.Year() {
			continue
		}
		cells[int(start.Month())-1].Count++
	}
	return cells
}

func sameDay(t, day time.Time) bool {
	return t.Year() == day.Year() && t.Month() == day.Month() && t.Day() == day.Day()
}

// daysBetween counts calendar days from from (inclusive) to to (exclusive).
// Wall-clock subtraction undercounts across daylight-saving transitions, so
// the days are stepped with AddDate instead.
func daysBetween(from, to time.Time) int {
	days := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}
