package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func joinNames(members []models.Member) string {
	if len(members) == 0 {
		return "-"
	}
	return strings.Join(models.Names(members), ", ")
}

func newLadderCmd(cfg *Config, v *viper.Viper) *cobra.Command {
	var rewards []string

	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Draw a ladder and print where everyone lands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.members(ctx, cfg)
			if err != nil {
				return err
			}

			session, err := ladder.NewSession(&ladder.Config{Random: svc.random, Logger: svc.logger})
			if err != nil {
				return err
			}
			session.SetMembers(list.Members)

			for i, reward := range rewards {
				if i >= len(list.Members) {
					break
				}
				if err := session.SetReward(i, reward); err != nil {
					return svc.notice(ctx, err)
				}
			}

			if err := session.Start(); err != nil {
				return svc.notice(ctx, err)
			}

			results, err := session.Results()
			if err != nil {
				return svc.notice(ctx, err)
			}

			printLadder(cmd.OutOrStdout(), results)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(normalizeName)
	fs.StringSliceVarP(&rewards, "reward", "r", nil, "reward under each column, in order (env: SYLK_REWARD)")
	bindEnv(v, fs)

	return cmd
}

func printLadder(w io.Writer, results []ladder.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s -> %s\n", r.Member.Name, r.Reward)
	}
}

func newCardsCmd(cfg *Config, v *viper.Viper) *cobra.Command {
	var teams int

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Deal team cards, flip them all and print the teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.members(ctx, cfg)
			if err != nil {
				return err
			}

			deck, err := card.NewDeck(&card.Config{Random: svc.random, Logger: svc.logger, TeamCount: teams})
			if err != nil {
				return err
			}
			deck.Load(list.Members)
			deck.RevealAll()

			results, err := deck.FinalResults()
			if err != nil {
				return svc.notice(ctx, err)
			}

			printCards(cmd.OutOrStdout(), deck.Cards(), results)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(normalizeName)
	fs.IntVarP(&teams, "teams", "t", card.DefaultTeamCount, "number of teams (env: SYLK_TEAMS)")
	bindEnv(v, fs)

	return cmd
}

func printCards(w io.Writer, cards []models.Card, results *card.Results) {
	for i, c := range cards {
		fmt.Fprintf(w, "Card %d: %s (team %d)\n", i+1, c.Member.Name, c.Team)
	}
	fmt.Fprintln(w)
	for _, t := range results.Teams {
		fmt.Fprintf(w, "Team %d: %s\n", t.Team, joinNames(t.Members))
	}
}

func newSeatsCmd(cfg *Config, v *viper.Viper) *cobra.Command {
	settings := seat.DefaultSettings
	var groups bool

	cmd := &cobra.Command{
		Use:   "seats",
		Short: "Shuffle everyone into seats and print the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.members(ctx, cfg)
			if err != nil {
				return err
			}

			if groups {
				settings.Mode = models.SeatModeGroups
			}

			planner, err := seat.NewPlanner(&seat.Config{Random: svc.random, Logger: svc.logger, Settings: settings})
			if err != nil {
				return err
			}

			layout, err := planner.Assign(list.Members)
			if err != nil {
				return svc.notice(ctx, err)
			}

			printSeats(cmd.OutOrStdout(), layout)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(normalizeName)
	fs.IntVarP(&settings.Columns, "columns", "c", seat.DefaultColumns, "desk columns (env: SYLK_COLUMNS)")
	fs.IntVar(&settings.RowsPerColumn, "rows", seat.DefaultRowsPerColumn, "desks per column (env: SYLK_ROWS)")
	fs.IntVarP(&settings.MaxPerGroup, "group-size", "g", seat.DefaultPerGroup, "members per group (env: SYLK_GROUP_SIZE)")
	fs.BoolVar(&groups, "groups", false, "seat members in groups instead of columns (env: SYLK_GROUPS)")
	bindEnv(v, fs)

	return cmd
}

func printSeats(w io.Writer, layout *seat.Layout) {
	if layout.Mode == models.SeatModeGroups {
		for _, g := range layout.Groups {
			fmt.Fprintf(w, "Group %d:", g.Number)
			for _, d := range g.Desks {
				fmt.Fprintf(w, " [%d] %s", d.Number, d.Member.Name)
			}
			fmt.Fprintln(w)
		}
		return
	}

	for i, column := range layout.Columns {
		fmt.Fprintf(w, "Column %d:", i+1)
		for _, d := range column {
			fmt.Fprintf(w, " [%d] %s", d.Number, d.Member.Name)
		}
		fmt.Fprintln(w)
	}

	if layout.Overflow {
		fmt.Fprintf(w, "! %d members for %d desks\n", len(layout.Seated), layout.Capacity)
	}
}

func newRouletteCmd(cfg *Config, v *viper.Viper) *cobra.Command {
	var teams int

	cmd := &cobra.Command{
		Use:   "roulette",
		Short: "Draft everyone onto teams with the roulette and print the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer svc.close()

			list, err := svc.members(ctx, cfg)
			if err != nil {
				return err
			}

			teamCount := roulette.ClampTeamCount(teams)
			draft, err := roulette.DraftAll(svc.random, list.Members, teamCount)
			if err != nil {
				return svc.notice(ctx, err)
			}

			printDraft(cmd.OutOrStdout(), draft, roulette.GroupTeams(draft, teamCount))
			return nil
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(normalizeName)
	fs.IntVarP(&teams, "teams", "t", roulette.DefaultTeamCount, "number of teams (env: SYLK_TEAMS)")
	bindEnv(v, fs)

	return cmd
}

func printDraft(w io.Writer, draft []models.TeamAssignment, teams [][]models.Member) {
	for i, a := range draft {
		fmt.Fprintf(w, "%2d. %s -> team %d\n", i+1, a.Member.Name, a.Team)
	}
	fmt.Fprintln(w)
	for i, members := range teams {
		fmt.Fprintf(w, "Team %d: %s\n", i+1, joinNames(members))
	}
}
