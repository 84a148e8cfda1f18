package commands

import (
	"slices"
	"strings"
)

// Flatten expands every root command into its leaf commands and returns them
// ordered by name. Entries with equal names keep their input order.
//
// A root without subcommands or groups is emitted as-is. Subcommands become
// "root sub". Every subcommand of a group becomes "root group sub" but carries
// the group's description and children rather than its own; renderers see
// one entry per subcommand with identical group-level metadata.
func Flatten(defs []CommandDefinition) []CompiledCommand {
	compiled := make([]CompiledCommand, 0, len(defs))
	for _, def := range defs {
		compiled = append(compiled, compileDefinition(def)...)
	}
	slices.SortStableFunc(compiled, func(a, b CompiledCommand) int {
		return strings.Compare(a.Name, b.Name)
	})
	return compiled
}

func compileDefinition(def CommandDefinition) []CompiledCommand {
	if !hasNestedCommands(def.Options) {
		return []CompiledCommand{{
			Name:        def.Name,
			Description: def.Description,
			Options:     def.Options,
		}}
	}

	var out []CompiledCommand
	for _, opt := range def.Options {
		switch node := opt.(type) {
		case *Subcommand:
			out = append(out, compileSubcommand(def.Name, node))
		case *SubcommandGroup:
			out = append(out, compileGroup(def.Name, node)...)
		}
	}
	return out
}

func compileSubcommand(base string, sub *Subcommand) CompiledCommand {
	return CompiledCommand{
		Name:        joinPath(base, sub.Name),
		Description: sub.Description,
		Options:     scalarOptions(sub.Options),
	}
}

func compileGroup(base string, group *SubcommandGroup) []CompiledCommand {
	if len(group.Subcommands) == 0 {
		return nil
	}
	children := make([]Option, 0, len(group.Subcommands))
	for _, sub := range group.Subcommands {
		children = append(children, sub)
	}

	prefix := joinPath(base, group.Name)
	out := make([]CompiledCommand, 0, len(group.Subcommands))
	for _, sub := range group.Subcommands {
		out = append(out, CompiledCommand{
			Name:        joinPath(prefix, sub.Name),
			Description: group.Description,
			Options:     children,
		})
	}
	return out
}

func hasNestedCommands(opts []Option) bool {
	for _, opt := range opts {
		switch opt.(type) {
		case *Subcommand, *SubcommandGroup:
			return true
		}
	}
	return false
}

func scalarOptions(scalars []*Scalar) []Option {
	if scalars == nil {
		return nil
	}
	out := make([]Option, 0, len(scalars))
	for _, s := range scalars {
		out = append(out, s)
	}
	return out
}

func joinPath(base, name string) string {
	return base + " " + name
}
