package services

import (
	"roamio/internal/models/db_models"
	"roamio/pkg/utils"
)

// Authorization predicates. Every mutation passes the relevant guard before
// any persistence call; a resource owned by someone else yields Forbidden,
// never NotFound.

func RequireOwnsTrip(userID uint, trip *db_models.Trip) error {
	if trip == nil || trip.UserID != userID {
		return utils.ErrForbidden
	}
	return nil
}

// RequireOwnsDestination resolves ownership transitively: the destination's
// trip must belong to the user. ownerTrip is the already-loaded trip of the
// destination.
func RequireOwnsDestination(userID uint, dest *db_models.Destination, ownerTrip *db_models.Trip) error {
	if dest == nil || ownerTrip == nil || ownerTrip.ID != dest.TripID {
		return utils.ErrForbidden
	}
	return RequireOwnsTrip(userID, ownerTrip)
}

func RequireAdmin(user *db_models.User) error {
	if user == nil || !user.IsAdmin {
		return utils.ErrForbidden
	}
	return nil
}
