package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "Paid"
)

// MaxOfferAttempts is how many offers a customer may make for one booking.
const MaxOfferAttempts = 2

// Booking is one active reservation. ID is assigned per session and is not
// part of the persisted record.
type Booking struct {
	ID            uuid.UUID
	CustomerName  string
	RoomNumber    int
	Category      Category
	AmountPaid    float64
	PaymentStatus PaymentStatus
}

func (b *Booking) BelongsTo(customerName string) bool {
	return strings.EqualFold(b.CustomerName, customerName)
}

// OfferRequest describes the negotiation round a customer is asked to bid in.
type OfferRequest struct {
	Category  Category
	Required  float64
	Attempt   int
	Remaining int
}

// RequiredAmount returns the minimum accepted offer for a category label.
// Unknown labels map to 0.
func RequiredAmount(category string) float64 {
	switch strings.ToLower(category) {
	case "standard":
		return 1000
	case "deluxe":
		return 2000
	case "suite":
		return 3000
	default:
		return 0
	}
}

// FormatAmount renders an amount with at least one decimal place, e.g.
// 1200 as "1200.0" and 1200.5 as "1200.5".
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
