// Package flatfile persists the booking ledger as a plain text file with one
// comma-separated record per line:
//
//	customerName,roomNumber,category,amountPaid,paymentStatus
//
// Fields are not quoted or escaped, so a name containing a comma cannot be
// stored faithfully. Such lines usually fail to parse on load and are skipped.
// Trailing empty fields are dropped and fields past the fifth are ignored;
// otherwise the stored values are taken as they are.
package flatfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

const fieldCount = 5

type BookingStore struct {
	path   string
	logger *slog.Logger
}

func NewBookingStore(path string, logger *slog.Logger) *BookingStore {
	return &BookingStore{path: path, logger: logger}
}

// Load reads every well-formed record from the file. A missing or unreadable
// file yields an empty ledger, and malformed lines are skipped.
func (s *BookingStore) Load(ctx context.Context) ([]domain.Booking, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("bookings file not found, starting empty", "path", s.path)
		} else {
			s.logger.Warn("cannot open bookings file, starting empty", "path", s.path, "error", err)
		}
		return nil, nil
	}

	defer file.Close()

	var bookings []domain.Booking
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		booking, err := ParseRecord(line)
		if err != nil {
			s.logger.Warn("skipping booking record", "path", s.path, "line", lineNo, "error", err)
			continue
		}

		bookings = append(bookings, *booking)
	}

	if err := scanner.Err(); err != nil {
		s.logger.Warn("stopped reading bookings file", "path", s.path, "line", lineNo, "error", err)
	}

	return bookings, nil
}

// Save overwrites the file with one line per booking.
func (s *BookingStore) Save(ctx context.Context, bookings []domain.Booking) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}

	w := bufio.NewWriter(file)
	for _, b := range bookings {
		if _, err := fmt.Fprintln(w, FormatRecord(b)); err != nil {
			file.Close()
			return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}

	return nil
}

func FormatRecord(b domain.Booking) string {
	return strings.Join([]string{
		b.CustomerName,
		strconv.Itoa(b.RoomNumber),
		string(b.Category),
		domain.FormatAmount(b.AmountPaid),
		string(b.PaymentStatus),
	}, ",")
}

// ParseRecord decodes one line. The booking gets a fresh session ID.
func ParseRecord(line string) (*domain.Booking, error) {
	fields := strings.Split(line, ",")
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("%w: want %d fields, got %d", domain.ErrMalformedRecord, fieldCount, len(fields))
	}

	roomNumber, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: room number %q", domain.ErrMalformedRecord, fields[1])
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount %q", domain.ErrMalformedRecord, fields[3])
	}

	return &domain.Booking{
		ID:            uuid.New(),
		CustomerName:  fields[0],
		RoomNumber:    roomNumber,
		Category:      domain.Category(fields[2]),
		AmountPaid:    amount,
		PaymentStatus: domain.PaymentStatus(fields[4]),
	}, nil
}
