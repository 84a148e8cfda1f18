package render

import (
	"strconv"
	"strings"

	"cmddoc/internal/commands"
)

// Compiled lists each compiled command with its arguments, one per line.
func Compiled(cmds []commands.CompiledCommand) string {
	var b strings.Builder
	for _, c := range cmds {
		b.WriteString(c.Name)
		if desc := strings.TrimSpace(c.Description); desc != "" {
			b.WriteString(": ")
			b.WriteString(desc)
		}
		b.WriteByte('\n')
		for _, opt := range c.Options {
			if opt == nil {
				continue
			}
			b.WriteString("  ")
			b.WriteString(opt.OptionName())
			b.WriteString(" (")
			b.WriteString(opt.Kind().String())
			if isRequired(opt) {
				b.WriteString(", required")
			}
			b.WriteString(")\n")
		}
	}
	return b.String()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
