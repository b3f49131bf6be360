package seat

import (
	"io"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Planner shuffles members into a seating chart.
// It is not safe for concurrent use; callers serialise access.
type Planner struct {
	random   random.Source
	logger   *log.Logger
	settings Settings
	seated   []models.Member
}

// NewPlanner creates a planner with nobody seated
func NewPlanner(cfg *Config) (*Planner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Planner{
		random:   cfg.Random,
		logger:   logger.WithPrefix("seat"),
		settings: Clamp(withDefaults(cfg.Settings)),
	}, nil
}

// Clamp keeps each setting inside its bounds. An unknown mode becomes columns.
func Clamp(s Settings) Settings {
	s.Columns = max(MinColumns, min(MaxColumns, s.Columns))
	s.RowsPerColumn = max(MinRowsPerColumn, min(MaxRowsPerColumn, s.RowsPerColumn))
	s.MaxPerGroup = max(MinPerGroup, s.MaxPerGroup)
	if s.Mode != models.SeatModeGroups {
		s.Mode = models.SeatModeColumns
	}
	return s
}

func withDefaults(s Settings) Settings {
	if s.Columns == 0 {
		s.Columns = DefaultSettings.Columns
	}
	if s.RowsPerColumn == 0 {
		s.RowsPerColumn = DefaultSettings.RowsPerColumn
	}
	if s.MaxPerGroup == 0 {
		s.MaxPerGroup = DefaultSettings.MaxPerGroup
	}
	if s.Mode == "" {
		s.Mode = DefaultSettings.Mode
	}
	return s
}

// Settings returns the current layout configuration
func (p *Planner) Settings() Settings {
	return p.settings
}

// Configure replaces the settings, clamped to their bounds. Seated members keep their order.
func (p *Planner) Configure(s Settings) Settings {
	p.settings = Clamp(s)
	return p.settings
}

// Assign shuffles members into seats
func (p *Planner) Assign(members []models.Member) (*Layout, error) {
	if len(members) == 0 {
		return nil, ErrInsufficientMembers
	}

	p.seated = random.Shuffle(p.random, members)

	p.logger.Debug("Seats assigned", "members", len(members), "mode", p.settings.Mode)
	return p.Layout(), nil
}

// Layout lays the seated members out with the current settings, nil when nobody is seated
func (p *Planner) Layout() *Layout {
	if len(p.seated) == 0 {
		return nil
	}

	capacity := p.settings.Columns * p.settings.RowsPerColumn
	layout := &Layout{
		Mode:     p.settings.Mode,
		Seated:   models.CopyMembers(p.seated),
		Capacity: capacity,
		Overflow: len(p.seated) > capacity,
	}

	if p.settings.Mode == models.SeatModeGroups {
		layout.Groups = AssignGroups(p.seated, p.settings.MaxPerGroup)
	} else {
		layout.Columns = AssignColumns(p.seated, p.settings.Columns)
	}

	return layout
}

// Reset clears the seating chart
func (p *Planner) Reset() {
	p.seated = nil
}
