package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeDiscord()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeDiscord() {
	c.Discord.ApplicationID = envFallback(c.Discord.ApplicationID, "DISCORD_APPLICATION_ID")
	c.Discord.BotToken = envFallback(c.Discord.BotToken, "DISCORD_BOT_TOKEN")
	c.Discord.GuildID = envFallback(c.Discord.GuildID, "DISCORD_GUILD_ID")
	c.Discord.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.Discord.APIBaseURL), "/")
	if c.Discord.APIBaseURL == "" {
		c.Discord.APIBaseURL = defaultAPIBaseURL
	}
	if c.Discord.RequestTimeout == 0 {
		c.Discord.RequestTimeout = defaultRequestTimeout
	}
	c.Discord.UserAgent = strings.TrimSpace(c.Discord.UserAgent)
	if c.Discord.UserAgent == "" {
		c.Discord.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "", "md":
		c.Output.Format = FormatMarkdown
	case "yml":
		c.Output.Format = FormatYAML
	}
	c.Output.Title = strings.TrimSpace(c.Output.Title)
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path == "" || c.Output.Path == "-" {
		c.Output.Path = ""
		return nil
	}
	var err error
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// ApplyOverrides replaces config values with non-empty command-line values
// and re-runs normalization and validation.
func (c *Config) ApplyOverrides(o Overrides) error {
	if v := strings.TrimSpace(o.ApplicationID); v != "" {
		c.Discord.ApplicationID = v
	}
	if v := strings.TrimSpace(o.BotToken); v != "" {
		c.Discord.BotToken = v
	}
	if v := strings.TrimSpace(o.GuildID); v != "" {
		c.Discord.GuildID = v
	}
	if v := strings.TrimSpace(o.Format); v != "" {
		c.Output.Format = v
	}
	if v := strings.TrimSpace(o.OutputPath); v != "" {
		c.Output.Path = v
	}
	if v := strings.TrimSpace(o.Title); v != "" {
		c.Output.Title = v
	}
	if o.ShowCompiled {
		c.Output.ShowCompiled = true
	}
	if o.IncludeOptions {
		c.Output.IncludeOptions = true
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(o.LogFormat); v != "" {
		c.Logging.Format = v
	}
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

// Overrides carries command-line values that take precedence over the file.
type Overrides struct {
	ApplicationID  string
	BotToken       string
	GuildID        string
	Format         string
	OutputPath     string
	Title          string
	ShowCompiled   bool
	IncludeOptions bool
	LogLevel       string
	LogFormat      string
}

func envFallback(value, key string) string {
	value = strings.TrimSpace(value)
	if value != "" {
		return value
	}
	if env, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(env)
	}
	return ""
}
