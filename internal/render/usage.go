package render

import (
	"strings"

	"cmddoc/internal/commands"
)

// Usage builds the chat usage line for a compiled command, e.g.
// "/**role add** (`member`)[`reason`]". Required arguments are wrapped in
// parentheses, optional ones in brackets.
func Usage(c commands.CompiledCommand) string {
	var b strings.Builder
	b.WriteString("/**")
	b.WriteString(c.Name)
	b.WriteString("** ")
	for _, opt := range c.Options {
		if opt == nil {
			continue
		}
		if isRequired(opt) {
			b.WriteString("(`")
			b.WriteString(opt.OptionName())
			b.WriteString("`)")
		} else {
			b.WriteString("[`")
			b.WriteString(opt.OptionName())
			b.WriteString("`]")
		}
	}
	return strings.TrimSpace(b.String())
}

func isRequired(opt commands.Option) bool {
	scalar, ok := opt.(*commands.Scalar)
	return ok && scalar.Required
}
