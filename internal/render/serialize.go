package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"cmddoc/internal/commands"
)

// CommandView is the serializable form of a compiled command.
type CommandView struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Usage       string       `json:"usage" yaml:"usage"`
	Options     []OptionView `json:"options,omitempty" yaml:"options,omitempty"`
}

// OptionView is the serializable form of an option.
type OptionView struct {
	Name     string       `json:"name" yaml:"name"`
	Type     string       `json:"type" yaml:"type"`
	Required bool         `json:"required" yaml:"required"`
	Choices  []ChoiceView `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// ChoiceView is the serializable form of a choice.
type ChoiceView struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Views maps cmds to their serializable form, keeping order.
func Views(cmds []commands.CompiledCommand) []CommandView {
	views := make([]CommandView, 0, len(cmds))
	for _, c := range cmds {
		view := CommandView{Name: c.Name, Description: c.Description, Usage: Usage(c)}
		for _, opt := range c.Options {
			if opt == nil {
				continue
			}
			ov := OptionView{Name: opt.OptionName(), Type: opt.Kind().String(), Required: isRequired(opt)}
			if scalar, ok := opt.(*commands.Scalar); ok {
				for _, choice := range scalar.Choices {
					ov.Choices = append(ov.Choices, ChoiceView{Name: choice.Name, Value: choice.Value})
				}
			}
			view.Options = append(view.Options, ov)
		}
		views = append(views, view)
	}
	return views
}

// JSON writes cmds as an indented JSON array.
func JSON(w io.Writer, cmds []commands.CompiledCommand) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Views(cmds))
}

// YAML writes cmds as a YAML sequence.
func YAML(w io.Writer, cmds []commands.CompiledCommand) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Views(cmds)); err != nil {
		return err
	}
	return enc.Close()
}
