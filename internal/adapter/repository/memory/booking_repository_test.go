package memory_test

import (
	"context"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(name string, room int) *domain.Booking {
	return &domain.Booking{
		CustomerName:  name,
		RoomNumber:    room,
		Category:      domain.CategoryStandard,
		AmountPaid:    1000,
		PaymentStatus: domain.PaymentPaid,
	}
}

func TestBookingRepository_AddAssignsID(t *testing.T) {
	repo := memory.NewBookingRepository()
	b := newBooking("Alice", 101)

	require.NoError(t, repo.Add(context.Background(), b))

	assert.NotEqual(t, uuid.Nil, b.ID)
}

func TestBookingRepository_AddKeepsExistingID(t *testing.T) {
	repo := memory.NewBookingRepository()
	b := newBooking("Alice", 101)
	id := uuid.New()
	b.ID = id

	require.NoError(t, repo.Add(context.Background(), b))

	assert.Equal(t, id, b.ID)
}

func TestBookingRepository_FindByCustomer_FirstMatch(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	first := newBooking("Bob", 101)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, newBooking("BOB", 102)))

	found, err := repo.FindByCustomer(ctx, "bob")

	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByCustomer(ctx, "Carol")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Remove(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	a, b, c := newBooking("A", 101), newBooking("B", 102), newBooking("C", 103)
	for _, bk := range []*domain.Booking{a, b, c} {
		require.NoError(t, repo.Add(ctx, bk))
	}

	require.NoError(t, repo.Remove(ctx, b.ID))

	assert.Equal(t, []domain.Booking{*a, *c}, slices.Collect(repo.All(ctx)))
	assert.ErrorIs(t, repo.Remove(ctx, b.ID), domain.ErrBookingNotFound)
}

func TestBookingRepository_AllStopsEarly(t *testing.T) {
	repo := memory.NewBookingRepository()
	ctx := context.Background()
	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Add(ctx, newBooking(name, 101+i)))
	}

	var seen []string
	for b := range repo.All(ctx) {
		seen = append(seen, b.CustomerName)
		if b.CustomerName == "B" {
			break
		}
	}

	assert.Equal(t, []string{"A", "B"}, seen)
}
