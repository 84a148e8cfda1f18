package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"cmddoc/internal/commands"
	"cmddoc/internal/config"
	"cmddoc/internal/logging"
	"cmddoc/internal/outfile"
	"cmddoc/internal/registry"
	"cmddoc/internal/render"
	"cmddoc/internal/services"
)

// generate maps, flattens and renders a command payload according to cfg.
func generate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, payload []registry.ApplicationCommand) error {
	logger = logging.WithContext(ctx, logger)

	defs, err := registry.ToDefinitions(payload)
	if err != nil {
		return services.Wrap(services.ErrValidation, "registry", "map commands", "", err)
	}
	compiled := commands.Flatten(defs)
	logger.Info("compiled commands",
		logging.Args(
			logging.Int(logging.FieldCommandCount, len(defs)),
			logging.Int(logging.FieldCompiledCount, len(compiled)),
			logging.String(logging.FieldFormat, cfg.Output.Format),
		)...,
	)
	if len(compiled) == 0 {
		logging.WarnWithContext(logger, "no commands to document", "empty_listing",
			logging.String(logging.FieldErrorHint, "register commands for the application or pass --guild"),
		)
	}

	stdout := cmd.OutOrStdout()
	if cfg.Output.ShowCompiled {
		writeSection(stdout, "Compiled commands", render.Compiled(compiled))
	}

	write := func(w io.Writer) error {
		return writeDocument(w, cfg.Output, compiled)
	}

	if cfg.Output.Path == "" {
		if cfg.Output.ShowCompiled {
			for _, line := range renderSectionHeader("Commands", shouldColorize(stdout)) {
				fmt.Fprintln(stdout, line)
			}
		}
		return write(stdout)
	}

	if err := outfile.Write(cfg.Output.Path, write); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output.Path, err)
	}
	fmt.Fprintf(stdout, "Wrote %d commands to %s\n", len(compiled), cfg.Output.Path)
	return nil
}

func writeDocument(w io.Writer, out config.Output, compiled []commands.CompiledCommand) error {
	switch out.Format {
	case config.FormatJSON:
		return render.JSON(w, compiled)
	case config.FormatYAML:
		return render.YAML(w, compiled)
	case config.FormatTable:
		_, err := fmt.Fprintln(w, render.Table(compiled))
		return err
	default:
		_, err := io.WriteString(w, render.Markdown(compiled, render.MarkdownOptions{
			Title:          out.Title,
			IncludeOptions: out.IncludeOptions,
		}))
		return err
	}
}
