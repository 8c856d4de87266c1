package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

func addRequest(name string, lat, lon float64) request_models.AddDestinationRequest {
	return request_models.AddDestinationRequest{Name: name, Lat: &lat, Lon: &lon}
}

func TestAddDestinationAppendsInOrder(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	reykjavik, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)
	assert.Equal(t, 1, reykjavik.OrderIndex)
	assert.Equal(t, -21.9, reykjavik.Lng)

	akureyri, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Akureyri", 65.7, -18.1))
	require.NoError(t, err)
	assert.Equal(t, 2, akureyri.OrderIndex)

	listed, err := f.trips.ListTrips(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Destinations, 2)
	assert.Equal(t, "Reykjavik", listed[0].Destinations[0].Name)
	assert.Equal(t, "Akureyri", listed[0].Destinations[1].Name)
}

func TestAddDestinationValidation(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	_, err = f.destinations.AddDestination(ctx, 1, trip.ID, request_models.AddDestinationRequest{Name: "Reykjavik"})
	assert.ErrorIs(t, err, utils.ErrDestinationRequired)

	lat := 64.1
	_, err = f.destinations.AddDestination(ctx, 1, trip.ID, request_models.AddDestinationRequest{Name: "", Lat: &lat, Lon: &lat})
	assert.ErrorIs(t, err, utils.ErrDestinationRequired)

	// A zero coordinate is a valid coordinate, not a missing one.
	zero, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Null Island", 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Lat)
}

func TestAddDestinationGuards(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	_, err = f.destinations.AddDestination(ctx, 2, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.destinations.AddDestination(ctx, 1, 9999, addRequest("Reykjavik", 64.1, -21.9))
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestUpdateDestinationPartialSemantics(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)
	dest, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)

	notes := "blue lagoon day trip"
	updated, err := f.destinations.UpdateDestination(ctx, 1, dest.ID, request_models.UpdateDestinationRequest{Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
	assert.Equal(t, 64.1, updated.Lat)
	assert.Equal(t, -21.9, updated.Lng)

	lat := 64.15
	visitDate := "2026-06-01"
	updated, err = f.destinations.UpdateDestination(ctx, 1, dest.ID, request_models.UpdateDestinationRequest{Lat: &lat, VisitDate: &visitDate})
	require.NoError(t, err)
	assert.Equal(t, 64.15, updated.Lat)
	require.NotNil(t, updated.VisitDate)
	assert.Equal(t, "2026-06-01", *updated.VisitDate)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)

	// An empty patch is a no-op, not an error.
	updated, err = f.destinations.UpdateDestination(ctx, 1, dest.ID, request_models.UpdateDestinationRequest{})
	require.NoError(t, err)
	assert.Equal(t, 64.15, updated.Lat)

	// Order never changes through patch.
	assert.Equal(t, dest.OrderIndex, updated.OrderIndex)
}

func TestUpdateDestinationGuards(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)
	dest, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)

	lat := 1.0
	_, err = f.destinations.UpdateDestination(ctx, 2, dest.ID, request_models.UpdateDestinationRequest{Lat: &lat})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.destinations.UpdateDestination(ctx, 1, 9999, request_models.UpdateDestinationRequest{Lat: &lat})
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestReorderDestinationsSwapsReadBackOrder(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)
	d1, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)
	d2, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Akureyri", 65.7, -18.1))
	require.NoError(t, err)

	require.NoError(t, f.destinations.ReorderDestinations(ctx, 1, trip.ID, []uint{d2.ID, d1.ID}))

	listed, err := f.trips.ListTrips(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Destinations, 2)
	assert.Equal(t, "Akureyri", listed[0].Destinations[0].Name)
	assert.Equal(t, "Reykjavik", listed[0].Destinations[1].Name)
}

func TestReorderDestinationsGuards(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	err = f.destinations.ReorderDestinations(ctx, 2, trip.ID, []uint{1})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	err = f.destinations.ReorderDestinations(ctx, 1, 9999, []uint{1})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteDestinationKeepsSiblingIndices(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)
	d1, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)
	d2, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Akureyri", 65.7, -18.1))
	require.NoError(t, err)
	d3, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Vik", 63.4, -19.0))
	require.NoError(t, err)

	require.NoError(t, f.destinations.DeleteDestination(ctx, 1, d2.ID))

	listed, err := f.trips.ListTrips(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed[0].Destinations, 2)
	assert.Equal(t, d1.OrderIndex, listed[0].Destinations[0].OrderIndex)
	assert.Equal(t, d3.OrderIndex, listed[0].Destinations[1].OrderIndex)
}

func TestDeleteDestinationGuards(t *testing.T) {
	f := newTripFixture(t)
	ctx := context.Background()

	trip, err := f.trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)
	dest, err := f.destinations.AddDestination(ctx, 1, trip.ID, addRequest("Reykjavik", 64.1, -21.9))
	require.NoError(t, err)

	assert.ErrorIs(t, f.destinations.DeleteDestination(ctx, 2, dest.ID), utils.ErrForbidden)
	assert.ErrorIs(t, f.destinations.DeleteDestination(ctx, 1, 9999), utils.ErrDestinationNotFound)
}
