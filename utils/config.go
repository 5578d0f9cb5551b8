package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation session
type Config struct {
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	MinWidth         int           `json:"min_width"`
	MaxWidth         int           `json:"max_width"`
	MinHeight        int           `json:"min_height"`
	MaxHeight        int           `json:"max_height"`
	InitialLiveCells int           `json:"initial_live_cells"`
	TickDelay        time.Duration `json:"tick_delay"`
	MaxGenerations   int           `json:"max_generations"`
	Seed             int64         `json:"seed"` // 0 seeds from the clock
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            50,
		Height:           30,
		MinWidth:         3,
		MaxWidth:         120,
		MinHeight:        3,
		MaxHeight:        80,
		InitialLiveCells: 400,
		TickDelay:        100 * time.Millisecond,
		MaxGenerations:   1000,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the bounds are positive and ordered and the board fits them
func (c Config) Validate() error {
	switch {
	case c.MinWidth < 1 || c.MinHeight < 1:
		return errors.Wrapf(ErrInvalidConfig, "minimum dimensions %dx%d must be positive", c.MinWidth, c.MinHeight)
	case c.MaxWidth < c.MinWidth || c.MaxHeight < c.MinHeight:
		return errors.Wrapf(ErrInvalidConfig, "maximum dimensions %dx%d below minimum %dx%d",
			c.MaxWidth, c.MaxHeight, c.MinWidth, c.MinHeight)
	case c.Width < c.MinWidth || c.Width > c.MaxWidth:
		return errors.Wrapf(ErrInvalidConfig, "width %d outside [%d, %d]", c.Width, c.MinWidth, c.MaxWidth)
	case c.Height < c.MinHeight || c.Height > c.MaxHeight:
		return errors.Wrapf(ErrInvalidConfig, "height %d outside [%d, %d]", c.Height, c.MinHeight, c.MaxHeight)
	case c.InitialLiveCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "initial_live_cells %d is negative", c.InitialLiveCells)
	case c.TickDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "tick_delay %s is negative", c.TickDelay)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations %d is negative", c.MaxGenerations)
	}
	return nil
}
