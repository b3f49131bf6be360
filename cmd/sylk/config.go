package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SYLK"

type Config struct {
	bind    string
	port    int
	roster  string
	seed    int64
	verbose bool

	// Storage, Redis wins over the data file when both are set
	redisAddr     string
	redisPassword string
	dataFile      string

	// Roulette timing
	spinDuration      time.Duration
	tiebreakDuration  time.Duration
	highlightInterval time.Duration
	directPickDelay   time.Duration

	discordToken   string
	discordAppID   string
	discordGuildID string
}

func (c *Config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}

	durations := map[string]time.Duration{
		"spin-duration":      c.spinDuration,
		"tiebreak-duration":  c.tiebreakDuration,
		"highlight-interval": c.highlightInterval,
		"direct-pick-delay":  c.directPickDelay,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("invalid --%s (must not be negative): %s", name, d)
		}
	}

	if c.redisAddr == "" && c.dataFile == "" {
		return errors.New("one of --redis-addr or --data-file must be provided")
	}

	return nil
}

func (c *Config) timing() roulette.Timing {
	return roulette.Timing{
		Spin:       c.spinDuration,
		Tiebreak:   c.tiebreakDuration,
		Highlight:  c.highlightInterval,
		DirectPick: c.directPickDelay,
	}
}

func normalizeName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// bindEnv lets SYLK_* variables fill any flag that was not set on the command line
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func newCmd(cfg *Config) *cobra.Command {
	v := newViper()
	defaults := roulette.DefaultTiming

	cmd := &cobra.Command{
		Use:           "sylk",
		Short:         "Party randomizers for a group: ladder, roulette, seats and cards.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.validate()
		},
	}

	fs := cmd.PersistentFlags()
	fs.SetNormalizeFunc(normalizeName)

	fs.StringVarP(&cfg.bind, "bind", "b", "127.0.0.1", "address to bind to (env: SYLK_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: SYLK_PORT)")
	fs.StringVar(&cfg.roster, "roster", models.DefaultRosterID, "roster to play with (env: SYLK_ROSTER)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for reproducible draws, 0 seeds from the clock (env: SYLK_SEED)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: SYLK_VERBOSE)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "", "redis address, rosters are kept in --data-file when empty (env: SYLK_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: SYLK_REDIS_PASSWORD)")
	fs.StringVar(&cfg.dataFile, "data-file", "sylk.json", "path to the roster file (env: SYLK_DATA_FILE)")
	fs.DurationVar(&cfg.spinDuration, "spin-duration", defaults.Spin, "time the roulette reels spin (env: SYLK_SPIN_DURATION)")
	fs.DurationVar(&cfg.tiebreakDuration, "tiebreak-duration", defaults.Tiebreak, "time before a tiebreak settles (env: SYLK_TIEBREAK_DURATION)")
	fs.DurationVar(&cfg.highlightInterval, "highlight-interval", defaults.Highlight, "time between tiebreak highlight moves (env: SYLK_HIGHLIGHT_INTERVAL)")
	fs.DurationVar(&cfg.directPickDelay, "direct-pick-delay", defaults.DirectPick, "time before the last members are picked automatically (env: SYLK_DIRECT_PICK_DELAY)")
	fs.StringVar(&cfg.discordToken, "discord-token", "", "discord bot token (env: SYLK_DISCORD_TOKEN)")
	fs.StringVar(&cfg.discordAppID, "discord-app-id", "", "discord application id (env: SYLK_DISCORD_APP_ID)")
	fs.StringVar(&cfg.discordGuildID, "discord-guild-id", "", "register commands for this guild only (env: SYLK_DISCORD_GUILD_ID)")

	bindEnv(v, fs)

	cmd.AddCommand(
		newServeCmd(cfg),
		newBotCmd(cfg),
		newMembersCmd(cfg),
		newLadderCmd(cfg, v),
		newCardsCmd(cfg, v),
		newSeatsCmd(cfg, v),
		newRouletteCmd(cfg, v),
	)

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("sylk v{{.Version}}\n")

	return cmd
}
