package card

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Team count bounds
const (
	DefaultTeamCount = 2
	MinTeamCount     = 2
)

// Config holds configuration for a card deck
type Config struct {
	Random random.Source
	Logger *log.Logger

	// TeamCount starts the deck, DefaultTeamCount when zero
	TeamCount int
}

// TeamGroup lists the members revealed onto one team
type TeamGroup struct {
	Team    int             `json:"team"`
	Members []models.Member `json:"members"`
}

// Results groups the deck by team
type Results struct {
	Teams []TeamGroup `json:"teams"`

	// Unassigned holds members whose cards are still face down
	Unassigned []models.Member `json:"unassigned"`
}
