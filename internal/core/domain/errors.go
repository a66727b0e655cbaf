package domain

import "errors"

var (
	ErrNoRoomAvailable     = errors.New("no room available")
	ErrRoomNotFound        = errors.New("room not found")
	ErrPaymentInsufficient = errors.New("payment insufficient")
	ErrInvalidOffer        = errors.New("invalid offer")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrMalformedRecord     = errors.New("malformed booking record")
	ErrPersistenceWrite    = errors.New("failed to write bookings")
)
