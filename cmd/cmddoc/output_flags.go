package main

import (
	"github.com/spf13/cobra"

	"cmddoc/internal/config"
)

type outputFlags struct {
	format         string
	output         string
	title          string
	showCompiled   bool
	includeOptions bool
}

func (f *outputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "", "Output format (markdown, table, json, yaml)")
	flags.StringVarP(&f.output, "output", "o", "", "Write the document to this file instead of stdout")
	flags.StringVar(&f.title, "title", "", "Heading placed above the markdown table")
	flags.BoolVar(&f.showCompiled, "show-compiled", false, "Print the compiled command list before the document")
	flags.BoolVar(&f.includeOptions, "include-options", false, "Add a per-command options section to markdown output")
}

func (f *outputFlags) overrides() config.Overrides {
	return config.Overrides{
		Format:         f.format,
		OutputPath:     f.output,
		Title:          f.title,
		ShowCompiled:   f.showCompiled,
		IncludeOptions: f.includeOptions,
	}
}
