package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Button custom ID prefixes. Settings ride along after a colon.
const (
	ButtonRoulette = "sylk_roulette"
	ButtonCards    = "sylk_cards"
	ButtonSeats    = "sylk_seats"
)

// SylkCommandConfig holds the dependencies of the /sylk command
type SylkCommandConfig struct {
	RosterService    roster.Service
	MessagingService messaging.Service

	// Random is shared by every game, seeded from the clock when nil
	Random random.Source

	Logger *log.Logger
}

// SylkCommand handles the /sylk command. Every channel has its own roster.
type SylkCommand struct {
	BaseCommand
	rosterService    roster.Service
	messagingService messaging.Service
	random           random.Source
	logger           *log.Logger
}

func minValue(v float64) *float64 {
	return &v
}

// NewSylkCommand creates a new sylk command handler
func NewSylkCommand(cfg *SylkCommandConfig) (*SylkCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	src := cfg.Random
	if src == nil {
		src = random.New(nil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &SylkCommand{
		BaseCommand: BaseCommand{
			Name:        "sylk",
			Description: "Party games for the people in this channel",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add",
					Description: "Add a member to this channel's roster",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Member name", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a member by name",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Member name", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "members",
					Description: "Show the roster",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Remove every member",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cards",
					Description: "Flip a card per member and split into teams",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "teams", Description: "Number of teams", MinValue: minValue(card.MinTeamCount)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "seats",
					Description: "Shuffle members into seats",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "columns", Description: "Number of columns", MinValue: minValue(seat.MinColumns), MaxValue: seat.MaxColumns},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "group_size", Description: "Members per group", MinValue: minValue(seat.MinPerGroup)},
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "groups", Description: "Seat in groups instead of columns"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ladder",
					Description: "Climb down a ladder to the rewards",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "rewards", Description: "Comma separated rewards, one per member"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roulette",
					Description: "Draft everyone into teams with the slot machine",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "teams", Description: "Number of teams", MinValue: minValue(roulette.MinTeamCount), MaxValue: roulette.MaxTeamCount},
					},
				},
			},
		},
		rosterService:    cfg.RosterService,
		messagingService: cfg.MessagingService,
		random:           src,
		logger:           logger,
	}, nil
}

// Handle processes a Discord interaction for the sylk command
func (c *SylkCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Pick a subcommand")
	}

	reply := c.Execute(context.Background(), i.ChannelID, data.Options[0])
	return RespondWithReply(s, i, reply)
}

// HandleComponent reruns a game from one of its buttons
func (c *SylkCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	reply := c.ExecuteButton(context.Background(), i.ChannelID, i.MessageComponentData().CustomID)
	return RespondWithReply(s, i, reply)
}

// Execute runs a subcommand for a channel. Failures come back as error replies.
func (c *SylkCommand) Execute(ctx context.Context, channelID string, sub *discordgo.ApplicationCommandInteractionDataOption) *Reply {
	opts := optionMap(sub.Options)

	var reply *Reply
	var err error
	switch sub.Name {
	case "add":
		reply, err = c.add(ctx, channelID, stringOption(opts, "name", ""))
	case "remove":
		reply, err = c.remove(ctx, channelID, stringOption(opts, "name", ""))
	case "members":
		reply, err = c.listMembers(ctx, channelID)
	case "clear":
		reply, err = c.clear(ctx, channelID)
	case "cards":
		reply, err = c.cards(ctx, channelID, intOption(opts, "teams", card.DefaultTeamCount))
	case "seats":
		settings := seat.DefaultSettings
		settings.Columns = intOption(opts, "columns", settings.Columns)
		settings.MaxPerGroup = intOption(opts, "group_size", settings.MaxPerGroup)
		if boolOption(opts, "groups", false) {
			settings.Mode = models.SeatModeGroups
		}
		reply, err = c.seats(ctx, channelID, settings)
	case "ladder":
		reply, err = c.ladder(ctx, channelID, splitRewards(stringOption(opts, "rewards", "")))
	case "roulette":
		reply, err = c.roulette(ctx, channelID, intOption(opts, "teams", roulette.DefaultTeamCount))
	default:
		err = fmt.Errorf("unknown subcommand %q", sub.Name)
	}

	if err != nil {
		return c.errorReply(ctx, err)
	}
	return reply
}

// ExecuteButton reruns the game a button belongs to
func (c *SylkCommand) ExecuteButton(ctx context.Context, channelID, customID string) *Reply {
	parts := strings.Split(customID, ":")

	var reply *Reply
	var err error
	switch parts[0] {
	case ButtonRoulette:
		reply, err = c.roulette(ctx, channelID, intPart(parts, 1, roulette.DefaultTeamCount))
	case ButtonCards:
		reply, err = c.cards(ctx, channelID, intPart(parts, 1, card.DefaultTeamCount))
	case ButtonSeats:
		settings := seat.DefaultSettings
		settings.Columns = intPart(parts, 1, settings.Columns)
		settings.MaxPerGroup = intPart(parts, 2, settings.MaxPerGroup)
		if len(parts) > 3 {
			settings.Mode = models.SeatMode(parts[3])
		}
		reply, err = c.seats(ctx, channelID, settings)
	default:
		err = fmt.Errorf("unknown button %q", customID)
	}

	if err != nil {
		return c.errorReply(ctx, err)
	}
	return reply
}

func (c *SylkCommand) errorReply(ctx context.Context, err error) *Reply {
	c.logger.Debug("Command failed", "err", err)

	out, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		return &Reply{Title: "Error", Description: err.Error(), Color: ColorError, Ephemeral: true}
	}

	return &Reply{
		Title:       out.Title,
		Description: out.Message,
		Color:       ColorError,
		Ephemeral:   true,
	}
}

func (c *SylkCommand) members(ctx context.Context, channelID string) ([]models.Member, error) {
	out, err := c.rosterService.ListMembers(ctx, &roster.ListMembersInput{RosterID: channelID})
	if err != nil {
		return nil, err
	}
	return out.Members, nil
}

func (c *SylkCommand) add(ctx context.Context, channelID, name string) (*Reply, error) {
	out, err := c.rosterService.AddMember(ctx, &roster.AddMemberInput{
		RosterID: channelID,
		Name:     name,
	})
	if err != nil {
		return nil, err
	}

	description := renderMemberList(out.Members)
	if out.Warning != "" {
		warning, err := c.messagingService.GetNameWarningMessage(ctx, &messaging.GetNameWarningMessageInput{Warning: out.Warning})
		if err == nil && warning.Message != "" {
			description = "⚠️ " + warning.Message + "\n\n" + description
		}
	}

	return &Reply{
		Title:       fmt.Sprintf("Added %s", out.Member.Name),
		Description: description,
	}, nil
}

func (c *SylkCommand) remove(ctx context.Context, channelID, name string) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	for _, m := range members {
		if m.Name != name {
			continue
		}

		out, err := c.rosterService.RemoveMember(ctx, &roster.RemoveMemberInput{
			RosterID: channelID,
			MemberID: m.ID,
		})
		if err != nil {
			return nil, err
		}

		return &Reply{
			Title:       fmt.Sprintf("Removed %s", m.Name),
			Description: renderMemberList(out.Members),
		}, nil
	}

	return nil, roster.ErrMemberNotFound
}

func (c *SylkCommand) listMembers(ctx context.Context, channelID string) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       fmt.Sprintf("Members (%d/%d)", len(members), models.MaxMembers),
		Description: renderMemberList(members),
		Color:       ColorInfo,
	}, nil
}

func (c *SylkCommand) clear(ctx context.Context, channelID string) (*Reply, error) {
	out, err := c.rosterService.ResetMembers(ctx, &roster.ResetMembersInput{RosterID: channelID})
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       "Roster cleared",
		Description: fmt.Sprintf("Removed %d members.", out.Removed),
	}, nil
}

func (c *SylkCommand) cards(ctx context.Context, channelID string, teams int) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	deck, err := card.NewDeck(&card.Config{
		Random:    c.random,
		Logger:    c.logger,
		TeamCount: teams,
	})
	if err != nil {
		return nil, err
	}

	deck.Load(members)
	deck.RevealAll()

	results, err := deck.FinalResults()
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       "🃏 Card draw",
		Description: renderCardOrder(deck.Cards()),
		Fields:      renderCardTeams(results),
		Buttons: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Reshuffle",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("%s:%d", ButtonCards, deck.TeamCount()),
				Emoji:    &discordgo.ComponentEmoji{Name: "🔀"},
			},
		},
	}, nil
}

func (c *SylkCommand) seats(ctx context.Context, channelID string, settings seat.Settings) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	planner, err := seat.NewPlanner(&seat.Config{
		Random:   c.random,
		Logger:   c.logger,
		Settings: settings,
	})
	if err != nil {
		return nil, err
	}

	layout, err := planner.Assign(members)
	if err != nil {
		return nil, err
	}

	applied := planner.Settings()
	return &Reply{
		Title:  "🪑 Seating chart",
		Fields: renderSeatFields(layout),
		Buttons: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Shuffle again",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("%s:%d:%d:%s", ButtonSeats, applied.Columns, applied.MaxPerGroup, applied.Mode),
				Emoji:    &discordgo.ComponentEmoji{Name: "🔀"},
			},
		},
	}, nil
}

func (c *SylkCommand) ladder(ctx context.Context, channelID string, rewards []string) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	session, err := ladder.NewSession(&ladder.Config{
		Random: c.random,
		Logger: c.logger,
	})
	if err != nil {
		return nil, err
	}

	session.SetMembers(members)
	for i, reward := range rewards {
		if i >= len(members) {
			break
		}
		if err := session.SetReward(i, reward); err != nil {
			return nil, err
		}
	}

	if err := session.Start(); err != nil {
		return nil, err
	}

	results, err := session.Results()
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       "🪜 Ladder results",
		Description: renderLadderResults(results),
	}, nil
}

func (c *SylkCommand) roulette(ctx context.Context, channelID string, teams int) (*Reply, error) {
	members, err := c.members(ctx, channelID)
	if err != nil {
		return nil, err
	}

	teams = roulette.ClampTeamCount(teams)
	assignments, err := roulette.DraftAll(c.random, members, teams)
	if err != nil {
		return nil, err
	}

	return &Reply{
		Title:       "🎰 Roulette draft",
		Description: renderDraftOrder(assignments),
		Fields:      renderTeamFields(roulette.GroupTeams(assignments, teams)),
		Buttons: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Draft again",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("%s:%d", ButtonRoulette, teams),
				Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
			},
		},
	}, nil
}

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return def
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return def
}

func boolOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def bool) bool {
	if o, ok := opts[name]; ok {
		return o.BoolValue()
	}
	return def
}

func intPart(parts []string, i, def int) int {
	if i >= len(parts) {
		return def
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return def
	}
	return n
}

func splitRewards(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
