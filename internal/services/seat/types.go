package seat

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Bounds and defaults for the classroom layout
const (
	MinColumns     = 1
	MaxColumns     = 5
	DefaultColumns = 2

	MinRowsPerColumn     = 1
	MaxRowsPerColumn     = 10
	DefaultRowsPerColumn = 3

	MinPerGroup     = 1
	DefaultPerGroup = 4
)

// Settings is the layout configuration
type Settings struct {
	Columns       int             `json:"columns"`
	RowsPerColumn int             `json:"rows_per_column"`
	MaxPerGroup   int             `json:"max_per_group"`
	Mode          models.SeatMode `json:"mode"`
}

// DefaultSettings is the layout a planner starts with
var DefaultSettings = Settings{
	Columns:       DefaultColumns,
	RowsPerColumn: DefaultRowsPerColumn,
	MaxPerGroup:   DefaultPerGroup,
	Mode:          models.SeatModeColumns,
}

// Config holds configuration for a seat planner
type Config struct {
	Random random.Source
	Logger *log.Logger

	// Settings starts the planner, zero fields take their defaults
	Settings Settings
}

// Layout is a seating chart
type Layout struct {
	Mode models.SeatMode `json:"mode"`

	// Seated is the shuffled order desks are numbered by
	Seated []models.Member `json:"seated"`

	Columns [][]models.Desk `json:"columns,omitempty"`
	Groups  []models.Group  `json:"groups,omitempty"`

	// Capacity is the desk count of the column layout
	Capacity int `json:"capacity"`

	// Overflow is set when more members are seated than the columns have desks
	Overflow bool `json:"overflow"`
}
