package domain

import "strings"

type Category string

const (
	CategoryStandard Category = "Standard"
	CategoryDeluxe   Category = "Deluxe"
	CategorySuite    Category = "Suite"
)

// Matches compares category labels case-insensitively.
func (c Category) Matches(label string) bool {
	return strings.EqualFold(string(c), label)
}

type Room struct {
	RoomNumber int
	Category   Category
	IsBooked   bool
}

func (r *Room) IsAvailable() bool {
	return !r.IsBooked
}

// DefaultRooms returns the fixed hotel inventory: 101-105 Standard,
// 201-205 Deluxe and 301-305 Suite, all free.
func DefaultRooms() []Room {
	var rooms []Room
	for floor, category := range []Category{CategoryStandard, CategoryDeluxe, CategorySuite} {
		for i := 1; i <= 5; i++ {
			rooms = append(rooms, Room{
				RoomNumber: (floor+1)*100 + i,
				Category:   category,
			})
		}
	}

	return rooms
}
