package main

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/spf13/cobra"
)

func newMembersCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the roster",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME...",
			Short: "Add members to the roster",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer svc.close()

				out := cmd.OutOrStdout()
				for _, name := range args {
					added, err := svc.roster.AddMember(ctx, &roster.AddMemberInput{RosterID: cfg.roster, Name: name})
					if err != nil {
						return svc.notice(ctx, err)
					}

					fmt.Fprintf(out, "Added %s\n", added.Member.Name)

					warning, err := svc.messaging.GetNameWarningMessage(ctx, &messaging.GetNameWarningMessageInput{Warning: added.Warning})
					if err == nil && warning.Message != "" {
						fmt.Fprintf(out, "  ! %s\n", warning.Message)
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove NAME|ID",
			Short: "Remove a member from the roster",
			Args:  cobra.ExactArgs(1),
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

				id := args[0]
				for _, m := range list.Members {
					if m.Name == args[0] {
						id = m.ID
						break
					}
				}

				removed, err := svc.roster.RemoveMember(ctx, &roster.RemoveMemberInput{RosterID: cfg.roster, MemberID: id})
				if err != nil {
					return svc.notice(ctx, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s, %d left\n", args[0], len(removed.Members))
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List the roster",
			Args:    cobra.NoArgs,
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

				printMembers(cmd.OutOrStdout(), list.Members)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Remove every member from the roster",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := cmd.Context()
				svc, err := newServices(ctx, cfg, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer svc.close()

				reset, err := svc.roster.ResetMembers(ctx, &roster.ResetMembersInput{RosterID: cfg.roster})
				if err != nil {
					return svc.notice(ctx, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d members\n", reset.Removed)
				return nil
			},
		},
	)

	return cmd
}

func printMembers(w io.Writer, members []models.Member) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No members yet")
		return
	}

	for i, m := range members {
		fmt.Fprintf(w, "%2d. %s\t%s\n", i+1, m.Name, m.ID)
	}
}
