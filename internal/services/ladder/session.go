package ladder

import (
	"io"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Session is one ladder game over a roster snapshot.
// It is not safe for concurrent use; callers serialise access.
type Session struct {
	random   random.Source
	geometry Geometry
	logger   *log.Logger

	members []models.Member
	rewards []string
	ladder  models.Ladder
	active  int
}

// NewSession creates a new ladder session with no members
func NewSession(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	geometry := cfg.Geometry
	if geometry == (Geometry{}) {
		geometry = DefaultGeometry
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		random:   cfg.Random,
		geometry: geometry,
		logger:   logger.WithPrefix("ladder"),
		members:  []models.Member{},
		rewards:  []string{},
		active:   -1,
	}, nil
}

// SetMembers replaces the roster snapshot, discarding any board and rewards
func (s *Session) SetMembers(members []models.Member) {
	s.members = models.CopyMembers(members)
	s.rewards = make([]string, len(s.members))
	s.ladder = nil
	s.active = -1
}

// SetReward sets the reward label under a column
func (s *Session) SetReward(column int, reward string) error {
	if column < 0 || column >= len(s.rewards) {
		return ErrInvalidColumn
	}
	s.rewards[column] = reward
	return nil
}

// Start generates a fresh board for the current members
func (s *Session) Start() error {
	if len(s.members) < 2 {
		return ErrInsufficientMembers
	}

	s.ladder = Generate(s.random, len(s.members))
	s.active = -1

	s.logger.Debug("Ladder generated", "members", len(s.members), "rows", s.ladder.RowCount())
	return nil
}

// Started reports whether a board has been generated
func (s *Session) Started() bool {
	return len(s.ladder) > 0
}

func (s *Session) reward(column int) string {
	if column >= 0 && column < len(s.rewards) && s.rewards[column] != "" {
		return s.rewards[column]
	}
	return DefaultReward
}

// Trace follows the member at startColumn down the board
func (s *Session) Trace(startColumn int) (*TraceOutput, error) {
	if !s.Started() {
		return nil, ErrNotStarted
	}

	if startColumn < 0 || startColumn >= s.ladder.ColumnCount() {
		return nil, ErrInvalidColumn
	}

	path := GetLadderPath(s.ladder, startColumn)
	end := path[len(path)-1].Column
	points := s.geometry.Project(path, s.ladder.RowCount())
	s.active = startColumn

	return &TraceOutput{
		Member:         s.members[startColumn],
		StartColumn:    startColumn,
		EndColumn:      end,
		Reward:         s.reward(end),
		Color:          MemberColor(startColumn),
		Path:           path,
		Points:         points,
		PolylinePoints: FormatPoints(points),
	}, nil
}

// Results lists where every member lands
func (s *Session) Results() ([]Result, error) {
	if !s.Started() {
		return nil, ErrNotStarted
	}

	results := make([]Result, 0, len(s.members))
	for i, m := range s.members {
		end := TracePath(s.ladder, i)
		results = append(results, Result{
			Member:    m,
			EndColumn: end,
			Reward:    s.reward(end),
		})
	}

	return results, nil
}

// Reset discards the board and clears every reward, keeping the members
func (s *Session) Reset() {
	s.rewards = make([]string, len(s.members))
	s.ladder = nil
	s.active = -1
}

// Status returns a snapshot of the session
func (s *Session) Status() *Status {
	ladder := make(models.Ladder, len(s.ladder))
	for i, row := range s.ladder {
		ladder[i] = append([]bool(nil), row...)
	}

	return &Status{
		Members:      models.CopyMembers(s.members),
		Rewards:      append([]string{}, s.rewards...),
		Ladder:       ladder,
		Started:      s.Started(),
		ActiveColumn: s.active,
	}
}
