package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.Source == "" {
		return errors.New("paths.source must be set")
	}
	if c.Paths.Destination == "" {
		return errors.New("paths.destination must be set")
	}
	if c.Paths.Source == c.Paths.Destination {
		return errors.New("paths.source and paths.destination must differ")
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.Limits.MaxFiles <= 0 {
		return errors.New("limits.max_files must be > 0")
	}
	if c.Limits.MaxBytes <= 0 {
		return errors.New("limits.max_bytes must be > 0")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be debug, info, warn, or error")
	}
	return nil
}
