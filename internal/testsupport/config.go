package testsupport

import (
	"path/filepath"
	"testing"

	"cmddoc/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config with test credentials and an output path inside
// a per-test temp directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Discord.ApplicationID = "900"
	cfgVal.Discord.BotToken = "test-token"
	cfgVal.Output.Path = filepath.Join(base, "commands.md")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithAPIBaseURL points the Discord client at a test server.
func WithAPIBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Discord.APIBaseURL = url
	}
}

// WithGuild scopes the config to a guild.
func WithGuild(guildID string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Discord.GuildID = guildID
	}
}

// WithFormat selects the output format.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithoutOutputPath makes rendering go to stdout.
func WithoutOutputPath() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Path)
}
