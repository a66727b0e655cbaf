package memory

import (
	"context"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

// BookingRepository is the in-memory ledger of active bookings, kept in
// insertion order.
type BookingRepository struct {
	bookings []domain.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Add(ctx context.Context, booking *domain.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	r.bookings = append(r.bookings, *booking)
	return nil
}

// FindByCustomer returns the earliest booking made under the given name.
func (r *BookingRepository) FindByCustomer(ctx context.Context, customerName string) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.BelongsTo(customerName) {
			return &b, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) Remove(ctx context.Context, bookingID uuid.UUID) error {
	i := slices.IndexFunc(r.bookings, func(b domain.Booking) bool {
		return b.ID == bookingID
	})
	if i < 0 {
		return domain.ErrBookingNotFound
	}

	r.bookings = slices.Delete(r.bookings, i, i+1)
	return nil
}

// All yields the ledger as it stands when iteration starts.
func (r *BookingRepository) All(ctx context.Context) iter.Seq[domain.Booking] {
	return func(yield func(domain.Booking) bool) {
		for _, b := range slices.Clone(r.bookings) {
			if !yield(b) {
				return
			}
		}
	}
}
