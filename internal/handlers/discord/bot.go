package discord

import (
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/messaging"
	"github.com/KirkDiggler/sylk/internal/services/roster"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	sylk       *SylkCommand
	config     *Config
	logger     *log.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Service dependencies
	RosterService    roster.Service
	MessagingService messaging.Service
	Random           random.Source

	Logger *log.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("discord")

	sylk, err := NewSylkCommand(&SylkCommandConfig{
		RosterService:    cfg.RosterService,
		MessagingService: cfg.MessagingService,
		Random:           cfg.Random,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		sylk:       sylk,
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.sylk); err != nil {
		return fmt.Errorf("failed to register sylk command: %w", err)
	}

	b.logger.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(b.appID(), b.config.GuildID, cmdID); err != nil {
			b.logger.Error("Failed to delete command", "command", cmdName, "id", cmdID, "err", err)
		} else {
			b.logger.Info("Deleted command", "command", cmdName, "id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord.
// With a guild ID configured the command is registered for that guild only.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("Registering command for guild", "command", cmd.GetName(), "guild", guildID)
	} else {
		b.logger.Info("Registering command globally", "command", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command", "command", cmd.GetName(), "id", createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("Error handling command", "command", name, "err", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.sylk.HandleComponent(s, i); err != nil {
			b.logger.Error("Error handling component interaction", "custom_id", i.MessageComponentData().CustomID, "err", err)
		}
	}
}
