package response_models

// SuggestionResponse is one proposed next destination for a trip.
type SuggestionResponse struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
