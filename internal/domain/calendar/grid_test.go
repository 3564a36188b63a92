//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"dealer-portal/internal/domain/appointment"
	"dealer-portal/internal/domain/calendar"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAppointment(t *testing.T, start time.Time, status appointment.Status) *appointment.Appointment {
	t.Helper()
	a := appointment.ReconstructAppointment(
		uuid.New(), uuid.New(),
		start, status,
		"Nguyen Van A", "VF 8 Plus", "",
		start.Add(-24*time.Hour), start.Add(-24*time.Hour),
	)
	return a
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestWindowRowMath(t *testing.T) {
	w := calendar.DefaultWindow()
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) // a Wednesday

	t.Run("worked example: 09:15 to 10:15", func(t *testing.T) {
		assert.Equal(t, 4, w.RowStart(at(day, 9, 15)))
		assert.Equal(t, 7, w.RowEnd(at(day, 10, 15)))
	})

	t.Run("boundary minutes", func(t *testing.T) {
		testCases := []struct {
			name     string
			hour     int
			minute   int
			rowStart int
			rowEnd   int
		}{
			{name: "on the hour", hour: 8, minute: 0, rowStart: 2, rowEnd: 2},
			{name: "quarter past", hour: 8, minute: 15, rowStart: 2, rowEnd: 3},
			{name: "exactly half past", hour: 8, minute: 30, rowStart: 3, rowEnd: 3},
			{name: "past half", hour: 8, minute: 45, rowStart: 3, rowEnd: 4},
			{name: "last operating hour", hour: 17, minute: 0, rowStart: 20, rowEnd: 20},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ts := at(day, tc.hour, tc.minute)
				assert.Equal(t, tc.rowStart, w.RowStart(ts))
				assert.Equal(t, tc.rowEnd, w.RowEnd(ts))
			})
		}
	})

	t.Run("row start stays within slot rows for the whole window", func(t *testing.T) {
		for hour := w.StartHour; hour < w.EndHour; hour++ {
			for minute := 0; minute < 60; minute++ {
				ts := at(day, hour, minute)
				rs := w.RowStart(ts)
				assert.GreaterOrEqual(t, rs, w.FirstRow(), "hour=%d minute=%d", hour, minute)
				assert.LessOrEqual(t, rs, w.LastRowEnd()-1, "hour=%d minute=%d", hour, minute)
			}
		}
	})

	t.Run("placement span is always positive", func(t *testing.T) {
		for hour := w.StartHour; hour < w.EndHour; hour++ {
			for _, minute := range []int{0, 15, 30, 45} {
				a := mustAppointment(t, at(day, hour, minute), appointment.StatusScheduled)
				placements := w.PlaceDay([]*appointment.Appointment{a}, day)
				require.Len(t, placements, 1, "hour=%d minute=%d", hour, minute)
				assert.Greater(t, placements[0].RowEnd, placements[0].RowStart)
				assert.LessOrEqual(t, placements[0].RowEnd, w.LastRowEnd())
			}
		}
	})
}

func TestWindowPlaceDay(t *testing.T) {
	w := calendar.DefaultWindow()
	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("nil appointment list yields empty grid", func(t *testing.T) {
		assert.Empty(t, w.PlaceDay(nil, day))
	})

	t.Run("appointment on another day is excluded", func(t *testing.T) {
		a := mustAppointment(t, at(day.AddDate(0, 0, 1), 9, 0), appointment.StatusScheduled)
		assert.Empty(t, w.PlaceDay([]*appointment.Appointment{a}, day))
	})

	t.Run("appointment before the window is omitted", func(t *testing.T) {
		a := mustAppointment(t, at(day, 6, 0), appointment.StatusScheduled)
		assert.Empty(t, w.PlaceDay([]*appointment.Appointment{a}, day))
	})

	t.Run("appointment straddling the window close is clamped", func(t *testing.T) {
		a := mustAppointment(t, at(day, 17, 30), appointment.StatusConfirmed)
		placements := w.PlaceDay([]*appointment.Appointment{a}, day)
		require.Len(t, placements, 1)
		assert.Equal(t, 21, placements[0].RowStart)
		assert.Equal(t, w.LastRowEnd(), placements[0].RowEnd)
	})

	t.Run("placement carries status style and labels", func(t *testing.T) {
		a := mustAppointment(t, at(day, 9, 15), appointment.StatusConfirmed)
		placements := w.PlaceDay([]*appointment.Appointment{a}, day)
		require.Len(t, placements, 1)

		expected := calendar.Placement{
			AppointmentID: a.ID(),
			Column:        0,
			RowStart:      4,
			RowEnd:        7,
			Status:        appointment.StatusConfirmed,
			Style:         appointment.Style{Color: "green", Label: "Confirmed"},
			CustomerLabel: "Nguyen Van A",
			VehicleLabel:  "VF 8 Plus",
			StartsAt:      at(day, 9, 15),
			EndsAt:        at(day, 10, 15),
		}
		if diff := cmp.Diff(expected, placements[0]); diff != "" {
			t.Errorf("Placement mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestWindowPlaceWeek(t *testing.T) {
	w := calendar.DefaultWindow()
	// 2026-03-02 is a Monday
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("columns are Monday anchored", func(t *testing.T) {
		appts := []*appointment.Appointment{
			mustAppointment(t, at(monday, 9, 0), appointment.StatusScheduled),                  // Monday
			mustAppointment(t, at(monday.AddDate(0, 0, 3), 10, 0), appointment.StatusConfirmed), // Thursday
			mustAppointment(t, at(monday.AddDate(0, 0, 6), 14, 0), appointment.StatusCompleted), // Sunday
		}

		placements := w.PlaceWeek(appts, monday.AddDate(0, 0, 2)) // reference mid-week
		require.Len(t, placements, 3)
		assert.Equal(t, 0, placements[0].Column)
		assert.Equal(t, 3, placements[1].Column)
		assert.Equal(t, 6, placements[2].Column)
	})

	t.Run("appointments outside the visible week are excluded", func(t *testing.T) {
		appts := []*appointment.Appointment{
			mustAppointment(t, at(monday.AddDate(0, 0, -1), 9, 0), appointment.StatusScheduled), // previous Sunday
			mustAppointment(t, at(monday.AddDate(0, 0, 7), 9, 0), appointment.StatusScheduled),  // next Monday
		}
		assert.Empty(t, w.PlaceWeek(appts, monday))
	})

	t.Run("columns stay aligned across a daylight saving transition", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// US clocks spring forward on 2026-03-08, the Sunday of this week.
		nyMonday := time.Date(2026, 3, 2, 0, 0, 0, 0, ny)
		a := mustAppointment(t, at(nyMonday.AddDate(0, 0, 6), 14, 0), appointment.StatusScheduled)

		placements := w.PlaceWeek([]*appointment.Appointment{a}, nyMonday)
		require.Len(t, placements, 1)
		assert.Equal(t, 6, placements[0].Column)
	})

	t.Run("sunday reference still anchors to the preceding Monday", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, 6)
		a := mustAppointment(t, at(monday, 9, 0), appointment.StatusScheduled)
		placements := w.PlaceWeek([]*appointment.Appointment{a}, sunday)
		require.Len(t, placements, 1)
		assert.Equal(t, 0, placements[0].Column)
	})
}

func TestAggregation(t *testing.T) {
	ref := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("month cells cover every day and count only that month", func(t *testing.T) {
		appts := []*appointment.Appointment{
			mustAppointment(t, time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
			mustAppointment(t, time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC), appointment.StatusConfirmed),
			mustAppointment(t, time.Date(2026, 3, 31, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
			mustAppointment(t, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
		}

		cells := calendar.CountByDay(appts, ref)
		require.Len(t, cells, 31)
		assert.Equal(t, 2, cells[3].Count)
		assert.Equal(t, 1, cells[30].Count)
		assert.Equal(t, 0, cells[0].Count)
	})

	t.Run("daylight saving transition does not shorten the month", func(t *testing.T) {
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		// March 2026 loses an hour on the 8th; the month still has 31 cells
		// and the last day lands on the last cell.
		nyRef := time.Date(2026, 3, 15, 0, 0, 0, 0, ny)
		appts := []*appointment.Appointment{
			mustAppointment(t, time.Date(2026, 3, 31, 9, 0, 0, 0, ny), appointment.StatusScheduled),
		}

		cells := calendar.CountByDay(appts, nyRef)
		require.Len(t, cells, 31)
		assert.Equal(t, 1, cells[30].Count)
	})

	t.Run("year cells count per month", func(t *testing.T) {
		appts := []*appointment.Appointment{
			mustAppointment(t, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
			mustAppointment(t, time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
			mustAppointment(t, time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), appointment.StatusScheduled),
		}

		cells := calendar.CountByMonth(appts, ref)
		require.Len(t, cells, 12)
		assert.Equal(t, 1, cells[0].Count)
		assert.Equal(t, 1, cells[2].Count)
		assert.Equal(t, 0, cells[11].Count)
	})
}
