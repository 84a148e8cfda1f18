package config

const (
	defaultConfigPath     = "~/.config/cmddoc/config.toml"
	defaultProjectConfig  = "cmddoc.toml"
	defaultAPIBaseURL     = "https://discord.com/api/v9"
	defaultRequestTimeout = 10
	defaultUserAgent      = "DiscordBot (cmddoc, 1.0)"
	defaultOutputFormat   = FormatMarkdown
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Output formats understood by the renderer.
const (
	FormatMarkdown = "markdown"
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{FormatMarkdown, FormatTable, FormatJSON, FormatYAML}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Discord: Discord{
			APIBaseURL:     defaultAPIBaseURL,
			RequestTimeout: defaultRequestTimeout,
			UserAgent:      defaultUserAgent,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
