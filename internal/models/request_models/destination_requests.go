package request_models

// AddDestinationRequest uses pointers for the coordinates so that a literal
// 0 is distinguishable from an absent field. The wire format says "lon"; it
// maps to lng internally.
type AddDestinationRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// UpdateDestinationRequest is a partial update: only non-nil fields are
// applied. Name, address and order_index are not updatable here; order
// changes go exclusively through reorder.
type UpdateDestinationRequest struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	VisitDate *string  `json:"visit_date"`
	Notes     *string  `json:"notes"`
}

// ReorderDestinationsRequest may list all of a trip's destinations or any
// subset; an empty list is a valid no-op. A missing field is rejected by the
// controller.
type ReorderDestinationsRequest struct {
	DestinationIDs []uint `json:"destination_ids"`
}
