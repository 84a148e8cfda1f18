package registry_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cmddoc/internal/commands"
	"cmddoc/internal/registry"
)

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, registry.FormatYAML, registry.FormatForPath("cmds.yaml"))
	assert.Equal(t, registry.FormatYAML, registry.FormatForPath("/tmp/CMDS.YML"))
	assert.Equal(t, registry.FormatJSON, registry.FormatForPath("cmds.json"))
	assert.Equal(t, registry.FormatJSON, registry.FormatForPath("cmds"))
}

func TestLoadFileJSON(t *testing.T) {
	cmds, err := registry.LoadFile(filepath.Join("testdata", "commands.json"))
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	defs, err := registry.ToDefinitions(cmds)
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "ping", defs[0].Name)
	assert.Empty(t, defs[0].Options)
	assert.Equal(t, "900", defs[0].ApplicationID)

	role := defs[1]
	require.Len(t, role.Options, 2)
	add, ok := role.Options[0].(*commands.Subcommand)
	require.True(t, ok, "expected subcommand, got %T", role.Options[0])
	require.Len(t, add.Options, 2)
	assert.Equal(t, commands.KindUser, add.Options[0].Type)
	assert.True(t, add.Options[0].Required)

	settings := defs[2]
	require.NotNil(t, settings.DefaultPermission)
	assert.False(t, *settings.DefaultPermission)
	group, ok := settings.Options[0].(*commands.SubcommandGroup)
	require.True(t, ok, "expected group, got %T", settings.Options[0])
	require.Len(t, group.Subcommands, 2)
	level := group.Subcommands[1].Options[0]
	require.Len(t, level.Choices, 3)
	assert.Equal(t, "verbose", level.Choices[2].Name)
	assert.Equal(t, int64(2), level.Choices[2].Value)
}

func TestLoadFileYAMLEnvelope(t *testing.T) {
	cmds, err := registry.LoadFile(filepath.Join("testdata", "commands.yaml"))
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	defs, err := registry.ToDefinitions(cmds)
	require.NoError(t, err)

	echo := defs[0]
	require.Len(t, echo.Options, 2)
	text, ok := echo.Options[0].(*commands.Scalar)
	require.True(t, ok)
	assert.Equal(t, commands.KindString, text.Type)
	assert.True(t, text.Required)

	start := defs[1].Options[0].(*commands.Subcommand)
	require.Len(t, start.Options, 1)
	assert.Equal(t, "yesno", start.Options[0].Choices[0].Value)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := registry.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDecodeJSONEnvelopeAndArray(t *testing.T) {
	bare, err := registry.Decode(strings.NewReader(`[{"name":"ping","description":"pong"}]`), registry.FormatJSON)
	require.NoError(t, err)
	wrapped, err := registry.Decode(strings.NewReader(`{"commands":[{"name":"ping","description":"pong"}]}`), registry.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, bare, wrapped)
}

func TestDecodeRejectsEmptyAndGarbage(t *testing.T) {
	_, err := registry.Decode(strings.NewReader("   "), registry.FormatJSON)
	require.Error(t, err)
	_, err = registry.Decode(strings.NewReader("[{"), registry.FormatJSON)
	require.Error(t, err)
	_, err = registry.Decode(strings.NewReader(""), registry.FormatYAML)
	require.Error(t, err)
	_, err = registry.Decode(strings.NewReader("[]"), registry.Format("toml"))
	require.Error(t, err)
}

func TestToDefinitionsRejectsUnsupportedShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		path    string
	}{
		{
			name:    "group inside group",
			payload: `[{"name":"a","description":"","options":[{"type":2,"name":"g","description":"","options":[{"type":2,"name":"inner","description":""}]}]}]`,
			path:    "a.g.inner",
		},
		{
			name:    "scalar inside group",
			payload: `[{"name":"a","description":"","options":[{"type":2,"name":"g","description":"","options":[{"type":3,"name":"text","description":""}]}]}]`,
			path:    "a.g.text",
		},
		{
			name:    "subcommand inside subcommand",
			payload: `[{"name":"a","description":"","options":[{"type":1,"name":"s","description":"","options":[{"type":1,"name":"deeper","description":""}]}]}]`,
			path:    "a.s.deeper",
		},
		{
			name:    "choices on subcommand",
			payload: `[{"name":"a","description":"","options":[{"type":1,"name":"s","description":"","choices":[{"name":"x","value":"x"}]}]}]`,
			path:    "a.s",
		},
		{
			name:    "required group",
			payload: `[{"name":"a","description":"","options":[{"type":2,"name":"g","description":"","required":true}]}]`,
			path:    "a.g",
		},
		{
			name:    "nested options on scalar",
			payload: `[{"name":"a","description":"","options":[{"type":3,"name":"text","description":"","options":[{"type":3,"name":"x","description":""}]}]}]`,
			path:    "a.text",
		},
		{
			name:    "choice without value",
			payload: `[{"name":"a","description":"","options":[{"type":3,"name":"text","description":"","choices":[{"name":"x"}]}]}]`,
			path:    "a.text.x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := registry.Decode(strings.NewReader(tt.payload), registry.FormatJSON)
			require.NoError(t, err)

			_, err = registry.ToDefinitions(cmds)
			require.Error(t, err)
			assert.True(t, errors.Is(err, registry.ErrInvalidSchema), "expected ErrInvalidSchema, got %v", err)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestToDefinitionsFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"missing name", `[{"description":"x"}]`, "name"},
		{"unknown type", `[{"name":"a","description":"","options":[{"type":12,"name":"x","description":""}]}]`, "type"},
		{"long name", `[{"name":"` + strings.Repeat("n", 33) + `","description":""}]`, "max"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := registry.Decode(strings.NewReader(tt.payload), registry.FormatJSON)
			require.NoError(t, err)

			_, err = registry.ToDefinitions(cmds)
			require.Error(t, err)
			assert.ErrorIs(t, err, registry.ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestToDefinitionsEmpty(t *testing.T) {
	defs, err := registry.ToDefinitions(nil)
	require.NoError(t, err)
	assert.Empty(t, defs)
}
