package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cmddoc/internal/commands"
	"cmddoc/internal/render"
)

func sampleCommands() []commands.CompiledCommand {
	return commands.Flatten([]commands.CommandDefinition{
		{Name: "ping", Description: "Check the bot"},
		{
			Name:        "role",
			Description: "Manage roles",
			Options: []commands.Option{
				&commands.Subcommand{
					Name:        "add",
					Description: "Give a role",
					Options: []*commands.Scalar{
						{Type: commands.KindUser, Name: "member", Required: true},
						{Type: commands.KindString, Name: "reason"},
					},
				},
			},
		},
		{
			Name:        "settings",
			Description: "Settings",
			Options: []commands.Option{
				&commands.SubcommandGroup{
					Name:        "log",
					Description: "Logging settings",
					Subcommands: []*commands.Subcommand{
						{Name: "level", Description: "Set level", Options: []*commands.Scalar{{
							Type: commands.KindInteger, Name: "level",
							Choices: []commands.Choice{{Name: "quiet", Value: int64(0)}, {Name: "loud", Value: int64(2)}},
						}}},
					},
				},
			},
		},
	})
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		cmd  commands.CompiledCommand
		want string
	}{
		{"no options", commands.CompiledCommand{Name: "ping"}, "/**ping**"},
		{
			"required and optional",
			commands.CompiledCommand{Name: "role add", Options: []commands.Option{
				&commands.Scalar{Type: commands.KindUser, Name: "member", Required: true},
				&commands.Scalar{Type: commands.KindString, Name: "reason"},
			}},
			"/**role add** (`member`)[`reason`]",
		},
		{
			"subcommand children are optional",
			commands.CompiledCommand{Name: "settings log level", Options: []commands.Option{
				&commands.Subcommand{Name: "level"},
				&commands.Subcommand{Name: "channel"},
			}},
			"/**settings log level** [`level`][`channel`]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Usage(tt.cmd))
		})
	}
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Sub Command", render.TypeLabel(commands.KindSubcommand))
	assert.Equal(t, "Sub Command Group", render.TypeLabel(commands.KindSubcommandGroup))
	assert.Equal(t, "String", render.TypeLabel(commands.KindString))
	assert.Equal(t, "Unknown", render.TypeLabel(commands.Kind(42)))
}

func TestMarkdown(t *testing.T) {
	out := render.Markdown(sampleCommands(), render.MarkdownOptions{Title: "Bot commands"})

	assert.True(t, strings.HasPrefix(out, "# Bot commands\n\n"))
	assert.Contains(t, out, "| Name | Description |")
	assert.Contains(t, out, "| /**ping** | Check the bot |")
	assert.Contains(t, out, "| /**role add** (`member`)[`reason`] | Give a role |")
	assert.Contains(t, out, "| /**settings log level** [`level`] | Logging settings |")
	assert.NotContains(t, out, "## ping")

	pingAt := strings.Index(out, "/**ping**")
	roleAt := strings.Index(out, "/**role add**")
	settingsAt := strings.Index(out, "/**settings log level**")
	assert.True(t, pingAt < roleAt && roleAt < settingsAt, "rows must follow compiled order")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	out := render.Markdown([]commands.CompiledCommand{{Name: "calc", Description: "a | b"}}, render.MarkdownOptions{})
	assert.Contains(t, out, `a \| b`)
}

func TestMarkdownIncludeOptions(t *testing.T) {
	out := render.Markdown(sampleCommands(), render.MarkdownOptions{IncludeOptions: true})

	assert.Contains(t, out, "## role add")
	assert.Contains(t, out, "| Option | Type | Required | Choices |")
	assert.Contains(t, out, "| member | User | yes |  |")
	assert.Contains(t, out, "| reason | String | no |  |")
	assert.Contains(t, out, "## settings log level")
	assert.Contains(t, out, "| level | Sub Command | no |  |")
	assert.NotContains(t, out, "## ping")
}

func TestTable(t *testing.T) {
	out := render.Table(sampleCommands())
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "/**role add** (`member`)[`reason`]")
	assert.Contains(t, out, "Logging settings")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, sampleCommands()))

	var views []render.CommandView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 3)
	assert.Equal(t, "ping", views[0].Name)
	assert.Empty(t, views[0].Options)
	assert.Equal(t, "/**role add** (`member`)[`reason`]", views[1].Usage)
	require.Len(t, views[1].Options, 2)
	assert.Equal(t, render.OptionView{Name: "member", Type: "USER", Required: true}, views[1].Options[0])
}

func TestJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, commands.Flatten(nil)))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.YAML(&buf, sampleCommands()))

	var views []render.CommandView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 3)
	assert.Equal(t, "settings log level", views[2].Name)
	assert.Equal(t, "Logging settings", views[2].Description)
	assert.Contains(t, buf.String(), "type: SUB_COMMAND")
}

func TestViewsKeepChoices(t *testing.T) {
	cmd := commands.CompiledCommand{Name: "level", Options: []commands.Option{
		&commands.Scalar{Type: commands.KindInteger, Name: "value", Choices: []commands.Choice{{Name: "low", Value: int64(1)}}},
	}}
	views := render.Views([]commands.CompiledCommand{cmd})
	require.Len(t, views, 1)
	require.Len(t, views[0].Options, 1)
	assert.Equal(t, []render.ChoiceView{{Name: "low", Value: int64(1)}}, views[0].Options[0].Choices)
}

func TestCompiled(t *testing.T) {
	out := render.Compiled(sampleCommands())
	assert.Equal(t, strings.Join([]string{
		"ping: Check the bot",
		"role add: Give a role",
		"  member (USER, required)",
		"  reason (STRING)",
		"settings log level: Logging settings",
		"  level (SUB_COMMAND)",
		"",
	}, "\n"), out)
}
