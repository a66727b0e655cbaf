package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/ports"
)

type BookRoomRequest struct {
	CustomerName string
	Category     string
}

type BookingService struct {
	roomRepo    ports.RoomRepository
	bookingRepo ports.BookingRepository
	store       ports.BookingStore
	logger      *slog.Logger
}

func NewBookingService(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository, store ports.BookingStore, logger *slog.Logger) *BookingService {
	return &BookingService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		store:       store,
		logger:      logger,
	}
}

// SearchRooms lists the free rooms of a category. An unknown category simply
// has no rooms.
func (s *BookingService) SearchRooms(ctx context.Context, category string) ([]domain.Room, error) {
	return s.roomRepo.ListAvailable(ctx, category)
}

func (s *BookingService) Quote(category string) float64 {
	return domain.RequiredAmount(category)
}

// BookRoom reserves the first free room of the requested category once the
// customer makes an acceptable offer. The name is kept as typed. Nothing is
// changed unless it succeeds.
func (s *BookingService) BookRoom(ctx context.Context, req BookRoomRequest, offers ports.OfferSource) (*domain.Booking, error) {
	room, err := s.roomRepo.FindAvailable(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	required := s.Quote(req.Category)

	amount, err := s.negotiate(ctx, offers, room.Category, required)
	if err != nil {
		return nil, err
	}

	if err := s.roomRepo.MarkBooked(ctx, room.RoomNumber); err != nil {
		return nil, fmt.Errorf("failed to mark room %d booked: %w", room.RoomNumber, err)
	}

	booking := &domain.Booking{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		RoomNumber:    room.RoomNumber,
		Category:      room.Category,
		AmountPaid:    amount,
		PaymentStatus: domain.PaymentPaid,
	}

	if err := s.bookingRepo.Add(ctx, booking); err != nil {
		s.rollbackRoom(ctx, room.RoomNumber)
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	s.logger.Info("booking created",
		"booking_id", booking.ID,
		"room", booking.RoomNumber,
		"category", booking.Category,
		"amount", booking.AmountPaid)

	return booking, nil
}

func (s *BookingService) negotiate(ctx context.Context, offers ports.OfferSource, category domain.Category, required float64) (float64, error) {
	for attempt := 1; attempt <= domain.MaxOfferAttempts; attempt++ {
		offer, err := offers.NextOffer(ctx, domain.OfferRequest{
			Category:  category,
			Required:  required,
			Attempt:   attempt,
			Remaining: domain.MaxOfferAttempts - attempt + 1,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidOffer) {
				continue
			}
			return 0, err
		}

		if offer >= required {
			return offer, nil
		}
	}

	return 0, domain.ErrPaymentInsufficient
}

func (s *BookingService) rollbackRoom(ctx context.Context, roomNumber int) {
	_ = s.roomRepo.Release(ctx, roomNumber)
}

// CancelBooking removes the customer's earliest booking and frees its room.
func (s *BookingService) CancelBooking(ctx context.Context, customerName string) (*domain.Booking, error) {
	booking, err := s.endBooking(ctx, customerName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled", "booking_id", booking.ID, "room", booking.RoomNumber)
	return booking, nil
}

// CheckOut ends the customer's earliest booking exactly like CancelBooking.
func (s *BookingService) CheckOut(ctx context.Context, customerName string) (*domain.Booking, error) {
	booking, err := s.endBooking(ctx, customerName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("guest checked out", "booking_id", booking.ID, "room", booking.RoomNumber)
	return booking, nil
}

func (s *BookingService) endBooking(ctx context.Context, customerName string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByCustomer(ctx, customerName)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Remove(ctx, booking.ID); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Release(ctx, booking.RoomNumber); err != nil {
		return nil, fmt.Errorf("failed to release room %d: %w", booking.RoomNumber, err)
	}

	return booking, nil
}

// Bookings yields the ledger in booking order. The sequence can be ranged
// over more than once.
func (s *BookingService) Bookings(ctx context.Context) iter.Seq[domain.Booking] {
	return s.bookingRepo.All(ctx)
}

// RestoreBookings loads persisted bookings into the ledger and marks their
// rooms booked. Records for rooms the hotel does not have are kept in the
// ledger without touching inventory.
func (s *BookingService) RestoreBookings(ctx context.Context) (int, error) {
	bookings, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load bookings: %w", err)
	}

	for i := range bookings {
		b := &bookings[i]
		if err := s.bookingRepo.Add(ctx, b); err != nil {
			return i, fmt.Errorf("failed to restore booking for room %d: %w", b.RoomNumber, err)
		}

		room, err := s.roomRepo.GetByNumber(ctx, b.RoomNumber)
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.logger.Debug("restored booking references unknown room", "booking_id", b.ID, "room", b.RoomNumber)
			continue
		}
		if err != nil {
			return i + 1, fmt.Errorf("failed to look up room %d: %w", b.RoomNumber, err)
		}

		if room.IsBooked {
			s.logger.Warn("restored booking shares an occupied room", "booking_id", b.ID, "room", b.RoomNumber)
		}

		if err := s.roomRepo.MarkBooked(ctx, room.RoomNumber); err != nil {
			return i + 1, fmt.Errorf("failed to mark room %d booked: %w", room.RoomNumber, err)
		}
	}

	s.logger.Info("bookings restored", "count", len(bookings))
	return len(bookings), nil
}

// PersistBookings writes the current ledger to the store.
func (s *BookingService) PersistBookings(ctx context.Context) error {
	bookings := slices.Collect(s.Bookings(ctx))

	if err := s.store.Save(ctx, bookings); err != nil {
		s.logger.Error("failed to save bookings", "count", len(bookings), "error", err)
		return err
	}

	s.logger.Info("bookings saved", "count", len(bookings))
	return nil
}
