package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "HOTEL"

type App struct {
	BookingsFile string `envconfig:"BOOKINGS_FILE" default:"bookings.txt" validate:"required"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load reads HOTEL_* settings from the environment after applying envFile,
// if it exists. Variables already set in the environment win over the file.
func Load(envFile string) (App, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var c App
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return App{}, err
	}

	return c, c.Validate()
}

func (c App) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
