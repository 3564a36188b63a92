package response

import (
	"time"

	"dealer-portal/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	DealerID      string    `json:"dealer_id"`
	CustomerLabel string    `json:"customer_label"`
	VehicleLabel  string    `json:"vehicle_label"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.ID = v.ID.String()
	resp.DealerID = v.DealerID.String()
	return &resp, nil
}

type OrderListItemResponse struct {
	ID            string    `json:"id"`
	CustomerLabel string    `json:"customer_label"`
	VehicleLabel  string    `json:"vehicle_label"`
	TotalAmount   int64     `json:"total_amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) ([]*OrderListItemResponse, error) {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		var resp OrderListItemResponse
		if err := copier.Copy(&resp, it); err != nil {
			return nil, err
		}
		resp.ID = it.ID.String()
		res[i] = &resp
	}
	return res, nil
}
