package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDiscord(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDiscord() error {
	if c.Discord.RequestTimeout <= 0 {
		return errors.New("discord.request_timeout must be positive (seconds)")
	}
	parsed, err := url.Parse(c.Discord.APIBaseURL)
	if err != nil {
		return fmt.Errorf("discord.api_base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("discord.api_base_url must be an http(s) URL, got %q", c.Discord.APIBaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("discord.api_base_url is missing a host: %q", c.Discord.APIBaseURL)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
}
