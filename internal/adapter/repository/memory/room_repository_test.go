package memory_test

import (
	"context"
	"testing"

	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_FindAvailable_FirstFreeInOrder(t *testing.T) {
	repo := memory.NewRoomRepository(domain.DefaultRooms())
	ctx := context.Background()

	require.NoError(t, repo.MarkBooked(ctx, 101))

	room, err := repo.FindAvailable(ctx, "STANDARD")

	require.NoError(t, err)
	assert.Equal(t, 102, room.RoomNumber)
	assert.Equal(t, domain.CategoryStandard, room.Category)
}

func TestRoomRepository_FindAvailable_NoneLeft(t *testing.T) {
	repo := memory.NewRoomRepository([]domain.Room{{RoomNumber: 301, Category: domain.CategorySuite, IsBooked: true}})

	room, err := repo.FindAvailable(context.Background(), "Suite")

	assert.ErrorIs(t, err, domain.ErrNoRoomAvailable)
	assert.Nil(t, room)
}

func TestRoomRepository_ReturnedRoomIsACopy(t *testing.T) {
	repo := memory.NewRoomRepository(domain.DefaultRooms())
	ctx := context.Background()

	room, err := repo.GetByNumber(ctx, 205)
	require.NoError(t, err)
	room.IsBooked = true

	again, err := repo.GetByNumber(ctx, 205)
	require.NoError(t, err)
	assert.False(t, again.IsBooked)
}

func TestRoomRepository_MarkBookedAndRelease(t *testing.T) {
	repo := memory.NewRoomRepository(domain.DefaultRooms())
	ctx := context.Background()

	require.NoError(t, repo.MarkBooked(ctx, 303))
	rooms, err := repo.ListAvailable(ctx, "suite")
	require.NoError(t, err)
	assert.Len(t, rooms, 4)

	require.NoError(t, repo.Release(ctx, 303))
	rooms, err = repo.ListAvailable(ctx, "suite")
	require.NoError(t, err)
	assert.Len(t, rooms, 5)
}

func TestRoomRepository_UnknownRoom(t *testing.T) {
	repo := memory.NewRoomRepository(domain.DefaultRooms())
	ctx := context.Background()

	_, err := repo.GetByNumber(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	assert.ErrorIs(t, repo.MarkBooked(ctx, 999), domain.ErrRoomNotFound)
	assert.NoError(t, repo.Release(ctx, 999))
}
