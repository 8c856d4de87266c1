package response_models

import "roamio/internal/models/db_models"

type TripResponse struct {
	ID           uint                  `json:"id"`
	Name         string                `json:"name"`
	UserID       uint                  `json:"user_id"`
	Destinations []DestinationResponse `json:"destinations"`
}

// BuildTripResponse embeds the trip's destinations in the order they were
// loaded; callers are expected to have sorted them (order_index, then id).
func BuildTripResponse(trip *db_models.Trip) TripResponse {
	destinations := make([]DestinationResponse, 0, len(trip.Destinations))
	for i := range trip.Destinations {
		destinations = append(destinations, BuildDestinationResponse(&trip.Destinations[i]))
	}

	return TripResponse{
		ID:           trip.ID,
		Name:         trip.Name,
		UserID:       trip.UserID,
		Destinations: destinations,
	}
}
