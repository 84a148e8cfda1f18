package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"cmddoc/internal/discord"
	"cmddoc/internal/logging"
	"cmddoc/internal/registry"
	"cmddoc/internal/services"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var (
		applicationID string
		token         string
		guildID       string
		out           outputFlags
	)

	cmd := &cobra.Command{
		Use:     "fetch",
		Aliases: []string{"generate"},
		Short:   "Fetch registered commands from Discord and render documentation",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			overrides := out.overrides()
			overrides.ApplicationID = applicationID
			overrides.BotToken = token
			overrides.GuildID = guildID
			if err := cfg.ApplyOverrides(overrides); err != nil {
				return services.Wrap(services.ErrConfiguration, "config", "apply flags", "", err)
			}
			if err := cfg.RequireCredentials(); err != nil {
				return services.Wrap(services.ErrConfiguration, "config", "credentials", "", err)
			}

			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			client, err := discord.New(
				cfg.Discord.BotToken,
				cfg.Discord.ApplicationID,
				cfg.Discord.APIBaseURL,
				discord.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout()}),
				discord.WithUserAgent(cfg.Discord.UserAgent),
				discord.WithLogger(logger),
			)
			if err != nil {
				return services.Wrap(services.ErrConfiguration, "discord", "init", "", err)
			}

			runCtx := services.WithApplicationID(runContext(cmd), cfg.Discord.ApplicationID)
			var payload []registry.ApplicationCommand
			if cfg.Discord.GuildID != "" {
				runCtx = services.WithGuildID(runCtx, cfg.Discord.GuildID)
				payload, err = client.GuildCommands(runCtx, cfg.Discord.GuildID)
			} else {
				payload, err = client.GlobalCommands(runCtx)
			}
			if err != nil {
				logging.ErrorWithContext(logging.WithContext(runCtx, logger), "fetch failed", "fetch_failed",
					logging.Error(err),
				)
				return err
			}

			return generate(runCtx, cmd, cfg, logger, payload)
		},
	}

	cmd.Flags().StringVarP(&applicationID, "id", "i", "", "Application (bot) ID")
	cmd.Flags().StringVarP(&token, "token", "t", "", "Bot token")
	cmd.Flags().StringVarP(&guildID, "guild", "g", "", "Fetch commands registered for this guild")
	out.register(cmd)
	return cmd
}
