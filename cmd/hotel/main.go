package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/srgjo27/hotel_reservation/internal/adapter/handler"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/flatfile"
	"github.com/srgjo27/hotel_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_reservation/internal/core/domain"
	"github.com/srgjo27/hotel_reservation/internal/core/services"
	"github.com/srgjo27/hotel_reservation/internal/platform/config"
	"github.com/srgjo27/hotel_reservation/internal/platform/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var envFile, bookingsFile, logLevel string

	flagSet := pflag.NewFlagSet("hotel", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file with HOTEL_* settings (optional)")
	flagSet.StringVar(&bookingsFile, "bookings-file", "", "bookings file (default $HOTEL_BOOKINGS_FILE or bookings.txt)")
	flagSet.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $HOTEL_LOG_LEVEL or warn)")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if bookingsFile != "" {
		cfg.BookingsFile = bookingsFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("starting", "bookings_file", cfg.BookingsFile, "log_level", cfg.LogLevel)

	roomRepo := memory.NewRoomRepository(domain.DefaultRooms())
	bookingRepo := memory.NewBookingRepository()
	store := flatfile.NewBookingStore(cfg.BookingsFile, logger)

	bookingService := services.NewBookingService(roomRepo, bookingRepo, store, logger)

	ctx := context.Background()
	if _, err := bookingService.RestoreBookings(ctx); err != nil {
		logger.Warn("continuing without saved bookings", "error", err)
	}

	console := handler.NewConsoleHandler(bookingService, os.Stdin, os.Stdout, logger)
	return console.Run(ctx)
}
