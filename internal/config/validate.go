package config

import (
	"errors"
	"fmt"
	"strings"

	"subgen/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMedia(); err != nil {
		return err
	}
	if err := c.validateTranscriber(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMedia() error {
	if len(c.Media.Extensions) == 0 {
		return errors.New("media.extensions must list at least one extension")
	}
	for _, ext := range c.Media.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("media.extensions: invalid extension %q", ext)
		}
	}
	return nil
}

func (c *Config) validateTranscriber() error {
	if c.Transcriber.Engine == "" {
		return errors.New("transcriber.engine must be set (or export SUBGEN_ENGINE)")
	}
	if c.Transcriber.Model == "" {
		return errors.New("transcriber.model must be set")
	}
	if c.Transcriber.Device == "" {
		return errors.New("transcriber.device must be set")
	}
	if err := language.Validate(c.Transcriber.Language); err != nil {
		return fmt.Errorf("transcriber.language: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
