package request_models

type CreateTripRequest struct {
	Name string `json:"name"`
}
