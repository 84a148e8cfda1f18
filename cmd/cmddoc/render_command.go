package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"cmddoc/internal/registry"
	"cmddoc/internal/services"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render documentation from an exported JSON or YAML command list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.ApplyOverrides(out.overrides()); err != nil {
				return services.Wrap(services.ErrConfiguration, "config", "apply flags", "", err)
			}

			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			payload, err := registry.LoadFile(args[0])
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return services.Wrap(services.ErrNotFound, "registry", "load", args[0], err)
				}
				return services.Wrap(services.ErrValidation, "registry", "load", args[0], err)
			}

			return generate(runContext(cmd), cmd, cfg, logger, payload)
		},
	}

	out.register(cmd)
	return cmd
}
