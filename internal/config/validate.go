package config

import (
	"errors"
	"fmt"
)

var validFormats = map[string]struct{}{
	"PNG":  {},
	"JPG":  {},
	"WEBP": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConversion(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateConversion() error {
	if _, ok := validFormats[c.Conversion.Format]; !ok {
		return fmt.Errorf("conversion.format must be one of PNG, JPG, WEBP (got %q)", c.Conversion.Format)
	}
	if c.Conversion.Quality < 1 || c.Conversion.Quality > 100 {
		return fmt.Errorf("conversion.quality must be between 1 and 100 (got %d)", c.Conversion.Quality)
	}
	if c.Conversion.Workers < 0 {
		return errors.New("conversion.workers must be zero (auto) or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
