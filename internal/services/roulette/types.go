package roulette

import (
	"time"

	"github.com/KirkDiggler/sylk/internal/common/clock"
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Timing holds the delays of each staged reveal
type Timing struct {
	// Spin is how long the reels turn before the slots are shown
	Spin time.Duration

	// Tiebreak is how long the finalist highlight cycles before a pick
	Tiebreak time.Duration

	// Highlight is the interval between highlight moves during a tiebreak
	Highlight time.Duration

	// DirectPick is the pause before one or two leftover members are assigned automatically
	DirectPick time.Duration
}

// DefaultTiming mirrors the animation lengths of the browser board
var DefaultTiming = Timing{
	Spin:       3000 * time.Millisecond,
	Tiebreak:   1500 * time.Millisecond,
	Highlight:  200 * time.Millisecond,
	DirectPick: 1000 * time.Millisecond,
}

// Config holds configuration for a timed roulette game
type Config struct {
	Random random.Source
	Clock  clock.Clock
	Logger *log.Logger

	// Timing of staged reveals, DefaultTiming when zero
	Timing Timing

	// AutoDirectPick assigns the last one or two members without a spin
	AutoDirectPick bool

	// Listener receives every transition in order, without the game lock held.
	// It may call back into the game.
	Listener Listener
}

// Outcome is the full result of one draw
type Outcome struct {
	Kind models.ResultKind `json:"kind"`

	// Slots holds the three drawn names, empty for a direct pick
	Slots []string `json:"slots"`

	Finalist string `json:"finalist"`
	Team     int    `json:"team"`
}

// EventType names a roulette transition
type EventType string

const (
	EventLoaded        EventType = "loaded"
	EventReset         EventType = "reset"
	EventTeamCount     EventType = "team_count"
	EventSpinStarted   EventType = "spin_started"
	EventSlotsRevealed EventType = "slots_revealed"
	EventHighlight     EventType = "highlight"
	EventResolved      EventType = "resolved"
)

// Event is published after each transition
type Event struct {
	// Seq increases with every event a game emits
	Seq uint64 `json:"seq"`

	Type   EventType `json:"type"`
	Status *Status   `json:"status"`
}

// Listener is notified of roulette events
type Listener func(Event)

// Status is a read-only snapshot of the game for rendering
type Status struct {
	Phase     models.RoulettePhase `json:"phase"`
	Kind      models.ResultKind    `json:"kind,omitempty"`
	TeamCount int                  `json:"team_count"`

	// Slots shows the drawn names once the reels stop, blanks before that
	Slots []string `json:"slots"`

	// Highlight is the slot index being highlighted, -1 when none
	Highlight int `json:"highlight"`

	Finalist *models.Finalist `json:"finalist,omitempty"`

	// Members lists every member with their team, 0 while unassigned
	Members    []models.TeamAssignment `json:"members"`
	Unassigned int                     `json:"unassigned"`

	// DirectPickPending is set while leftover members wait for an automatic pick
	DirectPickPending bool `json:"direct_pick_pending"`
}
