package ladder

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// DefaultReward is shown for a column whose reward was left blank
const DefaultReward = "꽝"

// Config holds configuration for a ladder session
type Config struct {
	// Random source for rung generation
	Random random.Source

	// Geometry used to project traced paths, DefaultGeometry when zero
	Geometry Geometry

	Logger *log.Logger
}

// TraceOutput describes one member's trip down the ladder
type TraceOutput struct {
	Member      models.Member     `json:"member"`
	StartColumn int               `json:"start_column"`
	EndColumn   int               `json:"end_column"`
	Reward      string            `json:"reward"`
	Color       string            `json:"color"`
	Path        []models.Waypoint `json:"path"`
	Points      []models.Point    `json:"points"`

	// PolylinePoints is Points formatted for an SVG polyline
	PolylinePoints string `json:"polyline_points"`
}

// Result pairs a member with the reward they landed on
type Result struct {
	Member    models.Member `json:"member"`
	EndColumn int           `json:"end_column"`
	Reward    string        `json:"reward"`
}

// Status is a read-only snapshot of a ladder session
type Status struct {
	Members []models.Member `json:"members"`
	Rewards []string        `json:"rewards"`
	Ladder  models.Ladder   `json:"ladder,omitempty"`
	Started bool            `json:"started"`

	// ActiveColumn is the last traced start column, -1 when none
	ActiveColumn int `json:"active_column"`
}
