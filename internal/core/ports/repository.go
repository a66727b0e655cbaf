package ports

import (
	"context"
	"iter"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

type RoomRepository interface {
	FindAvailable(ctx context.Context, category string) (*domain.Room, error)
	ListAvailable(ctx context.Context, category string) ([]domain.Room, error)
	GetByNumber(ctx context.Context, roomNumber int) (*domain.Room, error)
	MarkBooked(ctx context.Context, roomNumber int) error
	Release(ctx context.Context, roomNumber int) error
}

type BookingRepository interface {
	Add(ctx context.Context, booking *domain.Booking) error
	FindByCustomer(ctx context.Context, customerName string) (*domain.Booking, error)
	Remove(ctx context.Context, bookingID uuid.UUID) error
	All(ctx context.Context) iter.Seq[domain.Booking]
}

// BookingStore persists the ledger between runs.
type BookingStore interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

// OfferSource asks the customer for a price during booking negotiation.
type OfferSource interface {
	NextOffer(ctx context.Context, req domain.OfferRequest) (float64, error)
}
