package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

const menu = `1. Search Available Rooms
2. Book a Room
3. Cancel a Booking
4. View Booking Details
5. Exit
6. Check Out`

// ConsoleHandler drives the interactive menu over a line-oriented input.
type ConsoleHandler struct {
	svc    *services.BookingService
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	eof    bool
}

func NewConsoleHandler(svc *services.BookingService, in io.Reader, out io.Writer, logger *slog.Logger) *ConsoleHandler {
	return &ConsoleHandler{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops over menu choices until the customer exits or input ends, then
// saves the ledger. A failed save is reported but does not fail Run.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	for !h.eof {
		h.printMenu()

		choice, ok := h.readLine("Choose an option: ")
		if !ok {
			break
		}

		if strings.TrimSpace(choice) == "5" {
			h.println(successStyle.Render("Thank you for visiting!"))
			break
		}

		h.dispatch(ctx, strings.TrimSpace(choice))
	}

	if err := h.svc.PersistBookings(ctx); err != nil {
		h.println(noticeStyle.Render("Couldn't save bookings to file."))
	}

	if err := h.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (h *ConsoleHandler) dispatch(ctx context.Context, choice string) {
	switch choice {
	case "1":
		h.searchRooms(ctx)
	case "2":
		h.bookRoom(ctx)
	case "3":
		h.cancelBooking(ctx)
	case "4":
		h.viewBookings(ctx)
	case "6":
		h.checkOut(ctx)
	default:
		h.println(noticeStyle.Render("Invalid option. Please try again."))
	}
}

func (h *ConsoleHandler) printMenu() {
	rule := strings.Repeat("=", 31)
	h.println("")
	h.println(rule)
	h.println(bannerStyle.Render("  Welcome to Our Hotel System"))
	h.println(rule)
	h.println(menu)
}

func (h *ConsoleHandler) searchRooms(ctx context.Context) {
	category, ok := h.readLine("Enter room type (Standard / Deluxe / Suite): ")
	if !ok {
		return
	}

	rooms, err := h.svc.SearchRooms(ctx, category)
	if err != nil {
		h.logger.Error("room search failed", "category", category, "error", err)
		h.println(failureStyle.Render("Room search failed. Please try again."))
		return
	}

	if len(rooms) == 0 {
		h.println(failureStyle.Render(fmt.Sprintf("No rooms available in %s category.", category)))
		return
	}

	for _, room := range rooms {
		h.println(successStyle.Render(fmt.Sprintf("Available: Room %d", room.RoomNumber)))
	}
}

func (h *ConsoleHandler) bookRoom(ctx context.Context) {
	name, ok := h.readLine("Enter your name: ")
	if !ok {
		return
	}

	category, ok := h.readLine("Choose room type (Standard / Deluxe / Suite): ")
	if !ok {
		return
	}

	booking, err := h.svc.BookRoom(ctx, services.BookRoomRequest{
		CustomerName: name,
		Category:     category,
	}, h)

	switch {
	case err == nil:
		h.println(successStyle.Render(fmt.Sprintf("Booking Confirmed for Room %d! Thank you, %s!", booking.RoomNumber, booking.CustomerName)))
	case errors.Is(err, domain.ErrNoRoomAvailable):
		h.println(failureStyle.Render("Sorry! All rooms are full in this category."))
	case errors.Is(err, domain.ErrPaymentInsufficient):
		h.println(failureStyle.Render("Booking failed due to insufficient amount."))
	case errors.Is(err, io.EOF):
	default:
		h.logger.Error("booking failed", "category", category, "error", err)
		h.println(failureStyle.Render("Booking failed. Please try again."))
	}
}

// NextOffer prompts for one offer during booking negotiation.
func (h *ConsoleHandler) NextOffer(ctx context.Context, req domain.OfferRequest) (float64, error) {
	if req.Attempt == 1 {
		h.println(fmt.Sprintf("Payment Required for %s: ₹%s", req.Category, domain.FormatAmount(req.Required)))
	} else {
		h.println(noticeStyle.Render(fmt.Sprintf("Not enough. Try again. Remaining tries: %d", req.Remaining)))
	}

	text, ok := h.readLine("Your offer: ₹")
	if !ok {
		return 0, io.EOF
	}

	amount, err := parseAmount(text)
	if err != nil {
		h.println(noticeStyle.Render(fmt.Sprintf("%q is not a valid amount.", strings.TrimSpace(text))))
		return 0, err
	}

	return amount, nil
}

func parseAmount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, domain.ErrInvalidOffer
	}

	return amount, nil
}

func (h *ConsoleHandler) cancelBooking(ctx context.Context) {
	name, ok := h.readLine("Enter your name to cancel booking: ")
	if !ok {
		return
	}

	_, err := h.svc.CancelBooking(ctx, name)
	switch {
	case err == nil:
		h.println(successStyle.Render(fmt.Sprintf("Booking cancelled for %s", name)))
	case errors.Is(err, domain.ErrBookingNotFound):
		h.println(failureStyle.Render("No booking found with that name."))
	default:
		h.logger.Error("cancellation failed", "error", err)
		h.println(failureStyle.Render("Cancellation failed. Please try again."))
	}
}

func (h *ConsoleHandler) checkOut(ctx context.Context) {
	name, ok := h.readLine("Enter your name to check out: ")
	if !ok {
		return
	}

	_, err := h.svc.CheckOut(ctx, name)
	switch {
	case err == nil:
		h.println(successStyle.Render(fmt.Sprintf("Check-Out completed for %s. Hope you had a great stay!", name)))
	case errors.Is(err, domain.ErrBookingNotFound):
		h.println(failureStyle.Render("No active booking found for that name."))
	default:
		h.logger.Error("check-out failed", "error", err)
		h.println(failureStyle.Render("Check-out failed. Please try again."))
	}
}

func (h *ConsoleHandler) viewBookings(ctx context.Context) {
	empty := true
	for b := range h.svc.Bookings(ctx) {
		if empty {
			h.println("")
			h.println(bannerStyle.Render("All Booking Records:"))
			empty = false
		}

		h.println(fmt.Sprintf("Name: %s | Room: %d | Type: %s | Paid: ₹%s | Status: %s",
			b.CustomerName, b.RoomNumber, b.Category, domain.FormatAmount(b.AmountPaid), b.PaymentStatus))
	}

	if empty {
		h.println(noticeStyle.Render("No bookings made yet."))
	}
}

func (h *ConsoleHandler) readLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	if !h.in.Scan() {
		h.eof = true
		h.println("")
		return "", false
	}

	return h.in.Text(), true
}

func (h *ConsoleHandler) println(line string) {
	fmt.Fprintln(h.out, line)
}
