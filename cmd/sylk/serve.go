package main

import (
	"errors"

	"github.com/KirkDiggler/sylk/internal/common/clock"
	"github.com/KirkDiggler/sylk/internal/handlers/discord"
	"github.com/KirkDiggler/sylk/internal/handlers/web"
	"github.com/spf13/cobra"
)

func newServeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the game table API and the roulette event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			server, err := web.NewServer(&web.Config{
				Bind:             cfg.bind,
				Port:             cfg.port,
				Version:          releaseVersion,
				RosterID:         cfg.roster,
				RosterService:    svc.roster,
				MessagingService: svc.messaging,
				Random:           svc.random,
				Clock:            clock.New(),
				Timing:           cfg.timing(),
				Logger:           svc.logger,
			})
			if err != nil {
				return err
			}

			return server.Serve(ctx)
		},
	}
}

func newBotCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the /sylk Discord bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.discordToken == "" {
				return errors.New("--discord-token is required")
			}

			ctx := cmd.Context()

			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			bot, err := discord.New(&discord.Config{
				Token:            cfg.discordToken,
				ApplicationID:    cfg.discordAppID,
				GuildID:          cfg.discordGuildID,
				RosterService:    svc.roster,
				MessagingService: svc.messaging,
				Random:           svc.random,
				Logger:           svc.logger,
			})
			if err != nil {
				return err
			}

			if err := bot.Start(); err != nil {
				return err
			}

			<-ctx.Done()

			if err := bot.Stop(); err != nil {
				svc.logger.Error("Error stopping bot", "err", err)
			}

			svc.logger.Info("Bot has been shut down")
			return nil
		},
	}
}
