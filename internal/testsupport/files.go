package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cmddoc/internal/config"
)

// SampleCommandsJSON is a small command export covering a plain command, a
// subcommand and a subcommand group.
const SampleCommandsJSON = `[
  {"id": "1", "name": "ping", "description": "Check the bot"},
  {"id": "2", "name": "role", "description": "Manage roles", "options": [
    {"type": 1, "name": "add", "description": "Give a role", "options": [
      {"type": 6, "name": "member", "description": "Member", "required": true},
      {"type": 3, "name": "reason", "description": "Why"}
    ]}
  ]},
  {"id": "3", "name": "settings", "description": "Settings", "options": [
    {"type": 2, "name": "log", "description": "Logging settings", "options": [
      {"type": 1, "name": "level", "description": "Set level"},
      {"type": 1, "name": "channel", "description": "Set channel"}
    ]}
  ]}
]`

// WriteCommandsFile writes content to name inside a temp directory and
// returns the path. An empty content writes SampleCommandsJSON.
func WriteCommandsFile(t testing.TB, name, content string) string {
	t.Helper()

	if content == "" {
		content = SampleCommandsJSON
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteConfigFile marshals cfg as TOML into a temp file and returns its path.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
