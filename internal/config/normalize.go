package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMedia()
	c.normalizeTranscriber()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	var err error
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMedia() {
	normalized := make([]string, 0, len(c.Media.Extensions))
	seen := map[string]struct{}{}
	for _, ext := range c.Media.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		normalized = append(normalized, ext)
	}
	if len(normalized) == 0 {
		normalized = append(normalized, defaultExtensions...)
	}
	c.Media.Extensions = normalized
}

func (c *Config) normalizeTranscriber() {
	c.Transcriber.Engine = strings.TrimSpace(c.Transcriber.Engine)
	if c.Transcriber.Engine == "" {
		if value, ok := os.LookupEnv("SUBGEN_ENGINE"); ok {
			c.Transcriber.Engine = strings.TrimSpace(value)
		}
	}
	if c.Transcriber.Engine == "" {
		c.Transcriber.Engine = defaultEngine
	}
	c.Transcriber.Model = strings.TrimSpace(c.Transcriber.Model)
	if c.Transcriber.Model == "" {
		c.Transcriber.Model = defaultModel
	}
	c.Transcriber.Device = strings.ToLower(strings.TrimSpace(c.Transcriber.Device))
	if c.Transcriber.Device == "" {
		c.Transcriber.Device = defaultDevice
	}
	c.Transcriber.Language = strings.ToLower(strings.TrimSpace(c.Transcriber.Language))
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = defaultLanguage
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
