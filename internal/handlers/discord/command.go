package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	ColorSuccess = 0x00ff00
	ColorInfo    = 0x5865f2
	ColorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Reply is the embed a command answers with
type Reply struct {
	Title       string
	Description string
	Fields      []*discordgo.MessageEmbedField
	Color       int

	// Buttons are laid out in a single action row
	Buttons []discordgo.MessageComponent

	// Ephemeral replies are only shown to the user who asked
	Ephemeral bool
}

// Response builds the interaction response. Component interactions update the
// message they came from instead of posting a new one.
func (r *Reply) Response(update bool) *discordgo.InteractionResponse {
	color := r.Color
	if color == 0 {
		color = ColorSuccess
	}

	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       r.Title,
				Description: r.Description,
				Color:       color,
				Fields:      r.Fields,
			},
		},
	}

	if len(r.Buttons) > 0 {
		data.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: r.Buttons},
		}
	}

	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	respType := discordgo.InteractionResponseChannelMessageWithSource
	if update {
		respType = discordgo.InteractionResponseUpdateMessage
	}

	return &discordgo.InteractionResponse{
		Type: respType,
		Data: data,
	}
}

// RespondWithReply sends a reply to an interaction
func RespondWithReply(s *discordgo.Session, i *discordgo.InteractionCreate, reply *Reply) error {
	return s.InteractionRespond(i.Interaction, reply.Response(i.Type == discordgo.InteractionMessageComponent))
}

// RespondWithError sends an error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: errorMessage,
					Color:       ColorError,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}
