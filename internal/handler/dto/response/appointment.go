package response

import (
	"time"

	"dealer-portal/internal/domain/calendar"
	"dealer-portal/internal/usecase/queries"
)

type PlacementResponse struct {
	AppointmentID string    `json:"appointment_id"`
	Column        int       `json:"column"`
	RowStart      int       `json:"row_start"`
	RowEnd        int       `json:"row_end"`
	Status        string    `json:"status"`
	Color         string    `json:"color"`
	StatusLabel   string    `json:"status_label"`
	CustomerLabel string    `json:"customer_label"`
	VehicleLabel  string    `json:"vehicle_label"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
}

type DayCellResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MonthCellResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type CalendarResponse struct {
	Mode       string              `json:"mode"`
	Reference  string              `json:"reference"`
	RangeFrom  time.Time           `json:"range_from"`
	RangeTo    time.Time           `json:"range_to"`
	FirstRow   int                 `json:"first_row"`
	LastRowEnd int                 `json:"last_row_end"`
	Placements []PlacementResponse `json:"placements,omitempty"`
	DayCells   []DayCellResponse   `json:"day_cells,omitempty"`
	MonthCells []MonthCellResponse `json:"month_cells,omitempty"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	resp := &CalendarResponse{
		Mode:       v.Mode.String(),
		Reference:  v.Reference.Format("2006-01-02"),
		RangeFrom:  v.RangeFrom,
		RangeTo:    v.RangeTo,
		FirstRow:   v.FirstRow,
		LastRowEnd: v.LastRowEnd,
	}

	if len(v.Placements) > 0 {
		resp.Placements = make([]PlacementResponse, len(v.Placements))
		for i, p := range v.Placements {
			resp.Placements[i] = fromPlacement(p)
		}
	}
	if len(v.DayCells) > 0 {
		resp.DayCells = make([]DayCellResponse, len(v.DayCells))
		for i, c := range v.DayCells {
			resp.DayCells[i] = DayCellResponse{
				Date:  c.Date.Format("2006-01-02"),
				Count: c.Count,
			}
		}
	}
	if len(v.MonthCells) > 0 {
		resp.MonthCells = make([]MonthCellResponse, len(v.MonthCells))
		for i, c := range v.MonthCells {
			resp.MonthCells[i] = MonthCellResponse{
				Month: int(c.Month),
				Count: c.Count,
			}
		}
	}

	return resp
}

func fromPlacement(p calendar.Placement) PlacementResponse {
	return PlacementResponse{
		AppointmentID: p.AppointmentID.String(),
		Column:        p.Column,
		RowStart:      p.RowStart,
		RowEnd:        p.RowEnd,
		Status:        p.Status.String(),
		Color:         p.Style.Color,
		StatusLabel:   p.Style.Label,
		CustomerLabel: p.CustomerLabel,
		VehicleLabel:  p.VehicleLabel,
		StartsAt:      p.StartsAt,
		EndsAt:        p.EndsAt,
	}
}

type AppointmentCreatedResponse struct {
	ID string `json:"id"`
}
