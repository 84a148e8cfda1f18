package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"cmddoc/internal/commands"
)

// MarkdownOptions controls the markdown document layout.
type MarkdownOptions struct {
	Title          string
	IncludeOptions bool
}

// Markdown renders cmds as a markdown table with Name and Description
// columns. Cell text is escaped so pipes and newlines keep the table intact.
func Markdown(cmds []commands.CompiledCommand, opts MarkdownOptions) string {
	var b strings.Builder
	if title := strings.TrimSpace(opts.Title); title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Name", "Description"})
	for _, c := range cmds {
		tw.AppendRow(table.Row{Usage(c), c.Description})
	}
	b.WriteString(tw.RenderMarkdown())
	b.WriteByte('\n')

	if opts.IncludeOptions {
		writeOptionSections(&b, cmds)
	}
	return b.String()
}

func writeOptionSections(b *strings.Builder, cmds []commands.CompiledCommand) {
	for _, c := range cmds {
		if len(c.Options) == 0 {
			continue
		}
		b.WriteString("\n## ")
		b.WriteString(c.Name)
		b.WriteString("\n\n")

		tw := table.NewWriter()
		tw.AppendHeader(table.Row{"Option", "Type", "Required", "Choices"})
		for _, opt := range c.Options {
			if opt == nil {
				continue
			}
			tw.AppendRow(table.Row{opt.OptionName(), TypeLabel(opt.Kind()), yesNo(isRequired(opt)), choiceList(opt)})
		}
		b.WriteString(tw.RenderMarkdown())
		b.WriteByte('\n')
	}
}
