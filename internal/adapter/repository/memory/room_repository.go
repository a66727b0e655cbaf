package memory

import (
	"context"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

// RoomRepository is the hotel's room inventory. Rooms keep insertion order,
// which is ascending room number within each category.
type RoomRepository struct {
	rooms []domain.Room
}

func NewRoomRepository(rooms []domain.Room) *RoomRepository {
	return &RoomRepository{rooms: append([]domain.Room(nil), rooms...)}
}

func (r *RoomRepository) FindAvailable(ctx context.Context, category string) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.IsAvailable() && room.Category.Matches(category) {
			return &room, nil
		}
	}

	return nil, domain.ErrNoRoomAvailable
}

func (r *RoomRepository) ListAvailable(ctx context.Context, category string) ([]domain.Room, error) {
	var rooms []domain.Room
	for _, room := range r.rooms {
		if room.IsAvailable() && room.Category.Matches(category) {
			rooms = append(rooms, room)
		}
	}

	return rooms, nil
}

func (r *RoomRepository) GetByNumber(ctx context.Context, roomNumber int) (*domain.Room, error) {
	i := r.indexOf(roomNumber)
	if i < 0 {
		return nil, domain.ErrRoomNotFound
	}

	room := r.rooms[i]
	return &room, nil
}

func (r *RoomRepository) MarkBooked(ctx context.Context, roomNumber int) error {
	i := r.indexOf(roomNumber)
	if i < 0 {
		return domain.ErrRoomNotFound
	}

	r.rooms[i].IsBooked = true
	return nil
}

// Release frees the room. Unknown room numbers are ignored.
func (r *RoomRepository) Release(ctx context.Context, roomNumber int) error {
	if i := r.indexOf(roomNumber); i >= 0 {
		r.rooms[i].IsBooked = false
	}

	return nil
}

func (r *RoomRepository) indexOf(roomNumber int) int {
	for i := range r.rooms {
		if r.rooms[i].RoomNumber == roomNumber {
			return i
		}
	}

	return -1
}
