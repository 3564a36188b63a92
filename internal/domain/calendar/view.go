package calendar

import (
	"errors"
	"time"
)

var ErrInvalidViewMode = errors.New("invalid view mode")

// ViewMode selects how much of the schedule is visible at once.
type ViewMode string

const (
	ModeDay   ViewMode = "day"
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
	ModeYear  ViewMode = "year"
)

func (m ViewMode) String() string {
	return string(m)
}

func (m ViewMode) IsValid() bool {
	switch m {
	case ModeDay, ModeWeek, ModeMonth, ModeYear:
		return true
	default:
		return false
	}
}

func ParseViewMode(s string) (ViewMode, error) {
	mode := ViewMode(s)
	if !mode.IsValid() {
		return "", ErrInvalidViewMode
	}
	return mode, nil
}

// ViewState is the navigation state of the calendar: the date currently
// centered and the active view mode. The visible range is always derived from
// these two, never stored, so it cannot drift.
type ViewState struct {
	Reference time.Time
	Mode      ViewMode
}

func NewViewState(reference time.Time, mode ViewMode) ViewState {
	return ViewState{Reference: dateOnly(reference), Mode: mode}
}

// WithMode switches the view mode, keeping the reference date.
func (v ViewState) WithMode(mode ViewMode) ViewState {
	v.Mode = mode
	return v
}

// Next shifts the reference date forward by one unit of the current mode.
func (v ViewState) Next() ViewState {
	return v.shift(1)
}

// Prev shifts the reference date backward by one unit of the current mode.
func (v ViewState) Prev() ViewState {
	return v.shift(-1)
}

func (v ViewState) shift(n int) ViewState {
	switch v.Mode {
	case ModeDay:
		v.Reference = v.Reference.AddDate(0, 0, n)
	case ModeWeek:
		v.Reference = v.Reference.AddDate(0, 0, 7*n)
	case ModeMonth:
		v.Reference = v.Reference.AddDate(0, n, 0)
	case ModeYear:
		v.Reference = v.Reference.AddDate(n, 0, 0)
	}
	return v
}

// Today resets the reference date to now without changing the mode.
func (v ViewState) Today(now time.Time) ViewState {
	v.Reference = dateOnly(now)
	return v
}

// Select drills into the picked date: month view opens the day, year view
// opens the month. In day and week views the reference simply moves.
func (v ViewState) Select(date time.Time) ViewState {
	v.Reference = dateOnly(date)
	switch v.Mode {
	case ModeMonth:
		v.Mode = ModeDay
	case ModeYear:
		v.Mode = ModeMonth
	}
	return v
}

// VisibleRange returns the half-open [start, end) span shown by the current
// state. Weeks are Monday-anchored regardless of locale.
func (v ViewState) VisibleRange() (time.Time, time.Time) {
	ref := dateOnly(v.Reference)
	switch v.Mode {
	case ModeDay:
		return ref, ref.AddDate(0, 0, 1)
	case ModeWeek:
		start := WeekStart(ref)
		return start, start.AddDate(0, 0, 7)
	case ModeMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 1, 0)
	case ModeYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		return ref, ref.AddDate(0, 0, 1)
	}
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	d := dateOnly(t)
	// time.Weekday is Sunday-based; fold Sunday onto the previous Monday
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
