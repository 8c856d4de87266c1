package response_models

import "roamio/internal/models/db_models"

type DestinationResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	TripID     uint    `json:"trip_id"`
	VisitDate  *string `json:"visit_date"`
	Notes      *string `json:"notes"`
	OrderIndex int     `json:"order_index"`
}

func BuildDestinationResponse(dest *db_models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:         dest.ID,
		Name:       dest.Name,
		Address:    dest.Address,
		Lat:        dest.Lat,
		Lng:        dest.Lng,
		TripID:     dest.TripID,
		VisitDate:  dest.VisitDate,
		Notes:      dest.Notes,
		OrderIndex: dest.OrderIndex,
	}
}
