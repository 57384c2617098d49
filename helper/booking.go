package helper

import (
	"hotel_gateway/constants"
	"hotel_gateway/model"
)

// The reservation status machine. The remote service is the single
// authority over transitions; the gateway is a read-mostly projection that
// only decides which transitions it may request.

// IsActiveStatus reports whether a reservation still blocks new bookings.
// Anything the server has not closed out (completed/canceled) is active,
// including statuses this client does not know about.
func IsActiveStatus(status string) bool {
	return status != constants.RESERVATION_COMPLETED && status != constants.RESERVATION_CANCELED
}

// CanBook is false iff the list contains any active reservation,
// regardless of which room it targets.
func CanBook(reservations []model.Reservation) bool {
	for _, r := range reservations {
		if IsActiveStatus(r.ReservationStatus) {
			return false
		}
	}
	return true
}

// CanCancel: cancellation may only be requested while pending.
func CanCancel(r model.Reservation) bool {
	return r.ReservationStatus == constants.RESERVATION_PENDING
}

// HasReviewBy reports whether the user already reviewed this reservation,
// judged from the review list embedded in the reservation's room.
func HasReviewBy(r model.Reservation, userID uint) bool {
	if r.Room == nil {
		return false
	}
	for _, review := range r.Room.Reviews {
		if review.ReservationID == r.ID && review.UserID == userID {
			return true
		}
	}
	return false
}

// CanRate: rating may only be requested once the stay is completed and the
// user has not reviewed it yet.
func CanRate(r model.Reservation, userID uint) bool {
	return r.ReservationStatus == constants.RESERVATION_COMPLETED && !HasReviewBy(r, userID)
}
