package registry

import (
	"encoding/json"

	"github.com/pkg/errors"

	"cmddoc/internal/commands"
)

// ToDefinitions validates the payload and maps it into command definitions.
// The input order is preserved.
func ToDefinitions(cmds []ApplicationCommand) ([]commands.CommandDefinition, error) {
	if err := Validate(cmds); err != nil {
		return nil, err
	}
	defs := make([]commands.CommandDefinition, 0, len(cmds))
	for _, cmd := range cmds {
		def, err := toDefinition(cmd)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func toDefinition(cmd ApplicationCommand) (commands.CommandDefinition, error) {
	def := commands.CommandDefinition{
		ID:                cmd.ID,
		ApplicationID:     cmd.ApplicationID,
		Name:              cmd.Name,
		Description:       cmd.Description,
		DefaultPermission: cmd.DefaultPermission,
	}
	if cmd.Options == nil {
		return def, nil
	}
	def.Options = make([]commands.Option, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		path := cmd.Name + "." + opt.Name
		var (
			node commands.Option
			err  error
		)
		switch commands.Kind(opt.Type) {
		case commands.KindSubcommandGroup:
			node, err = toGroup(path, opt)
		case commands.KindSubcommand:
			node, err = toSubcommand(path, opt)
		default:
			node, err = toScalar(path, opt)
		}
		if err != nil {
			return commands.CommandDefinition{}, err
		}
		def.Options = append(def.Options, node)
	}
	return def, nil
}

func toGroup(path string, opt ApplicationCommandOption) (*commands.SubcommandGroup, error) {
	if err := rejectScalarFields(path, opt); err != nil {
		return nil, err
	}
	group := &commands.SubcommandGroup{
		Name:        opt.Name,
		Description: opt.Description,
		Subcommands: make([]*commands.Subcommand, 0, len(opt.Options)),
	}
	for _, child := range opt.Options {
		childPath := path + "." + child.Name
		if kind := commands.Kind(child.Type); kind != commands.KindSubcommand {
			return nil, invalid(childPath, "subcommand group may only contain subcommands, found %s", kind)
		}
		sub, err := toSubcommand(childPath, child)
		if err != nil {
			return nil, err
		}
		group.Subcommands = append(group.Subcommands, sub)
	}
	return group, nil
}

func toSubcommand(path string, opt ApplicationCommandOption) (*commands.Subcommand, error) {
	if err := rejectScalarFields(path, opt); err != nil {
		return nil, err
	}
	sub := &commands.Subcommand{Name: opt.Name, Description: opt.Description}
	if opt.Options == nil {
		return sub, nil
	}
	sub.Options = make([]*commands.Scalar, 0, len(opt.Options))
	for _, child := range opt.Options {
		childPath := path + "." + child.Name
		if kind := commands.Kind(child.Type); !kind.IsScalar() {
			return nil, invalid(childPath, "%s is not supported below a subcommand", kind)
		}
		scalar, err := toScalar(childPath, child)
		if err != nil {
			return nil, err
		}
		sub.Options = append(sub.Options, scalar)
	}
	return sub, nil
}

func toScalar(path string, opt ApplicationCommandOption) (*commands.Scalar, error) {
	kind := commands.Kind(opt.Type)
	if !kind.IsScalar() {
		return nil, invalid(path, "unknown option type %d", opt.Type)
	}
	if len(opt.Options) > 0 {
		return nil, invalid(path, "%s option cannot have nested options", kind)
	}
	scalar := &commands.Scalar{
		Type:        kind,
		Name:        opt.Name,
		Description: opt.Description,
		Required:    opt.Required,
	}
	if len(opt.Choices) == 0 {
		return scalar, nil
	}
	scalar.Choices = make([]commands.Choice, 0, len(opt.Choices))
	for _, choice := range opt.Choices {
		value, err := choiceValue(choice.Value)
		if err != nil {
			return nil, invalid(path+"."+choice.Name, "%v", err)
		}
		scalar.Choices = append(scalar.Choices, commands.Choice{Name: choice.Name, Value: value})
	}
	return scalar, nil
}

func rejectScalarFields(path string, opt ApplicationCommandOption) error {
	kind := commands.Kind(opt.Type)
	if opt.Required {
		return invalid(path, "%s cannot be required", kind)
	}
	if len(opt.Choices) > 0 {
		return invalid(path, "%s cannot have choices", kind)
	}
	return nil
}

// choiceValue accepts the string and number encodings produced by the JSON
// and YAML decoders.
func choiceValue(value any) (any, error) {
	switch v := value.(type) {
	case string, float64, int, int64:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, errors.Wrap(err, "parse choice value")
		}
		return f, nil
	case nil:
		return nil, errors.New("choice value is required")
	default:
		return nil, errors.Errorf("choice value must be a string or number, got %T", value)
	}
}

func invalid(path, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidSchema, "%s: "+format, append([]any{path}, args...)...)
}
