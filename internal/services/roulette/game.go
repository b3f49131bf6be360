package roulette

import (
	"io"
	"sync"
	"time"

	"github.com/KirkDiggler/sylk/internal/common/clock"
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Game is the timed roulette board. Spins and tiebreaks are revealed through
// clock callbacks; every callback carries the epoch it was scheduled under and
// does nothing once Load, Reset or a newer draw has moved the epoch on.
type Game struct {
	mu sync.Mutex

	random         random.Source
	clock          clock.Clock
	logger         *log.Logger
	timing         Timing
	autoDirectPick bool
	listener       Listener

	members     []models.Member
	teams       map[string]int
	assignments []models.TeamAssignment
	teamCount   int

	phase     models.RoulettePhase
	kind      models.ResultKind
	slots     []string
	highlight int
	finalist  *models.Finalist

	epoch             uint64
	timers            []*quartz.Timer
	directPickPending bool

	// outbox holds events in the order their snapshots were taken. One
	// goroutine at a time drains it so the listener sees that order.
	seq      uint64
	outbox   []Event
	flushing bool
}

// NewGame creates a roulette game with no members
func NewGame(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	timing := cfg.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		random:         cfg.Random,
		clock:          cfg.Clock,
		logger:         logger.WithPrefix("roulette"),
		timing:         timing,
		autoDirectPick: cfg.AutoDirectPick,
		listener:       cfg.Listener,
		teamCount:      DefaultTeamCount,
	}
	g.clearLocked()

	return g, nil
}

// Load replaces the member snapshot, dropping every assignment and pending reveal
func (g *Game) Load(members []models.Member) {
	g.mu.Lock()
	g.members = models.CopyMembers(members)
	g.clearLocked()
	g.scheduleDirectPickLocked()
	ev := g.eventLocked(EventLoaded)
	g.mu.Unlock()

	g.logger.Debug("Members loaded", "members", len(members))
	g.emit(ev)
}

// Reset clears every assignment and restores the default team count. It always succeeds.
func (g *Game) Reset() {
	g.mu.Lock()
	g.teamCount = DefaultTeamCount
	g.clearLocked()
	g.scheduleDirectPickLocked()
	ev := g.eventLocked(EventReset)
	g.mu.Unlock()

	g.logger.Debug("Game reset")
	g.emit(ev)
}

// SetTeamCount changes the number of teams, clamped to the allowed range
func (g *Game) SetTeamCount(n int) (int, error) {
	g.mu.Lock()
	if g.phase.InProgress() {
		g.mu.Unlock()
		return 0, ErrDrawInProgress
	}
	g.teamCount = ClampTeamCount(n)
	count := g.teamCount
	ev := g.eventLocked(EventTeamCount)
	g.mu.Unlock()

	g.emit(ev)
	return count, nil
}

// Spin starts a draw over the unassigned members. The slots are revealed once
// the spin delay has passed; a call while a draw is running changes nothing.
func (g *Game) Spin() (*Status, error) {
	g.mu.Lock()
	if g.phase.InProgress() {
		g.mu.Unlock()
		return nil, ErrDrawInProgress
	}

	names := g.unassignedNamesLocked()
	switch {
	case len(names) == 0:
		g.mu.Unlock()
		return nil, ErrInsufficientMembers
	case len(names) < SlotCount:
		g.mu.Unlock()
		return nil, ErrSpinNeedsThree
	}

	g.bumpEpochLocked()
	drawn := Spin(g.random, names)
	team := NextTeam(len(g.assignments), g.teamCount)

	g.phase = models.RoulettePhaseSpinning
	g.kind = ""
	g.slots = make([]string, SlotCount)
	g.highlight = -1
	g.finalist = nil

	epoch := g.epoch
	g.afterLocked(g.timing.Spin, func() { g.revealSlots(epoch, drawn, team) })

	ev := g.eventLocked(EventSpinStarted)
	g.mu.Unlock()

	g.logger.Debug("Spin started", "pool", len(names), "team", team)
	g.emit(ev)
	return ev.Status, nil
}

// DirectPick assigns one of the last one or two unassigned members without spinning
func (g *Game) DirectPick() (*Status, error) {
	g.mu.Lock()
	ev, err := g.directPickLocked()
	g.mu.Unlock()
	if err != nil {
		return nil, err
	}

	g.emit(ev)
	return ev.Status, nil
}

// Status returns a snapshot of the game
func (g *Game) Status() *Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.statusLocked()
}

// Assignments lists assignments in the order they were made
func (g *Game) Assignments() []models.TeamAssignment {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.TeamAssignment{}, g.assignments...)
}

// Teams lists members per team, index 0 holding team 1
func (g *Game) Teams() [][]models.Member {
	g.mu.Lock()
	defer g.mu.Unlock()
	return GroupTeams(g.assignments, g.teamCount)
}

func (g *Game) revealSlots(epoch uint64, drawn []string, team int) {
	g.mu.Lock()
	if epoch != g.epoch || g.phase != models.RoulettePhaseSpinning {
		g.mu.Unlock()
		return
	}

	g.slots = drawn
	g.kind = Classify(drawn)

	var ev *Event
	if !g.kind.NeedsTiebreak() {
		g.assignLocked(drawn[0], team)
		g.phase = models.RoulettePhaseResolved
		g.highlight = 0
		g.scheduleDirectPickLocked()
		ev = g.eventLocked(EventResolved)
	} else {
		g.phase = models.RoulettePhaseTiebreak
		g.highlight = 0
		if g.timing.Highlight > 0 {
			g.afterLocked(g.timing.Highlight, func() { g.moveHighlight(epoch) })
		}
		g.afterLocked(g.timing.Tiebreak, func() { g.finishTiebreak(epoch, team) })
		ev = g.eventLocked(EventSlotsRevealed)
	}
	g.mu.Unlock()

	g.logger.Debug("Slots revealed", "slots", drawn, "kind", ev.Status.Kind)
	g.emit(ev)
}

func (g *Game) moveHighlight(epoch uint64) {
	g.mu.Lock()
	if epoch != g.epoch || g.phase != models.RoulettePhaseTiebreak {
		g.mu.Unlock()
		return
	}

	g.highlight = (g.highlight + 1) % SlotCount
	g.afterLocked(g.timing.Highlight, func() { g.moveHighlight(epoch) })
	ev := g.eventLocked(EventHighlight)
	g.mu.Unlock()

	g.emit(ev)
}

func (g *Game) finishTiebreak(epoch uint64, team int) {
	g.mu.Lock()
	if epoch != g.epoch || g.phase != models.RoulettePhaseTiebreak {
		g.mu.Unlock()
		return
	}

	g.stopTimersLocked()
	name := PickFinalist(g.random, g.kind, g.slots)
	g.assignLocked(name, team)
	g.highlight = indexOf(g.slots, name)
	g.phase = models.RoulettePhaseResolved
	g.scheduleDirectPickLocked()
	ev := g.eventLocked(EventResolved)
	g.mu.Unlock()

	g.logger.Debug("Tiebreak resolved", "finalist", name, "team", team)
	g.emit(ev)
}

func (g *Game) autoPick(epoch uint64) {
	g.mu.Lock()
	if epoch != g.epoch {
		g.mu.Unlock()
		return
	}
	ev, err := g.directPickLocked()
	g.mu.Unlock()
	if err != nil {
		return
	}

	g.emit(ev)
}

func (g *Game) directPickLocked() (*Event, error) {
	if g.phase.InProgress() {
		return nil, ErrDrawInProgress
	}

	names := g.unassignedNamesLocked()
	if len(names) == 0 {
		return nil, ErrInsufficientMembers
	}
	if len(names) >= SlotCount {
		return nil, ErrDirectPickUnavailable
	}

	g.bumpEpochLocked()
	team := NextTeam(len(g.assignments), g.teamCount)
	name := DirectPick(g.random, names)
	g.assignLocked(name, team)
	g.kind = models.ResultKindDirectPick
	g.phase = models.RoulettePhaseResolved
	g.highlight = -1
	g.scheduleDirectPickLocked()

	g.logger.Debug("Direct pick", "finalist", name, "team", team)
	return g.eventLocked(EventResolved), nil
}

// scheduleDirectPickLocked queues an automatic pick when only one or two members are left
func (g *Game) scheduleDirectPickLocked() {
	if !g.autoDirectPick {
		return
	}

	left := len(g.members) - len(g.assignments)
	if left < 1 || left >= SlotCount {
		return
	}

	epoch := g.epoch
	g.directPickPending = true
	g.afterLocked(g.timing.DirectPick, func() { g.autoPick(epoch) })
}

// assignLocked gives team to the first unassigned member called name
func (g *Game) assignLocked(name string, team int) {
	for _, m := range g.members {
		if m.Name != name || g.teams[m.ID] != 0 {
			continue
		}
		g.teams[m.ID] = team
		g.assignments = append(g.assignments, models.TeamAssignment{Member: m, Team: team})
		g.finalist = &models.Finalist{MemberID: m.ID, Name: m.Name, Team: team}
		return
	}
}

func (g *Game) unassignedNamesLocked() []string {
	names := make([]string, 0, len(g.members))
	for _, m := range g.members {
		if g.teams[m.ID] == 0 {
			names = append(names, m.Name)
		}
	}
	return names
}

func (g *Game) clearLocked() {
	g.bumpEpochLocked()
	g.teams = map[string]int{}
	g.assignments = []models.TeamAssignment{}
	g.phase = models.RoulettePhaseIdle
	g.kind = ""
	g.slots = make([]string, SlotCount)
	g.highlight = -1
	g.finalist = nil
}

// bumpEpochLocked invalidates every callback scheduled so far
func (g *Game) bumpEpochLocked() {
	g.epoch++
	g.stopTimersLocked()
}

func (g *Game) stopTimersLocked() {
	for _, t := range g.timers {
		t.Stop()
	}
	g.timers = nil
	g.directPickPending = false
}

func (g *Game) afterLocked(d time.Duration, f func()) {
	g.timers = append(g.timers, g.clock.AfterFunc(d, f, "roulette"))
}

func (g *Game) statusLocked() *Status {
	members := make([]models.TeamAssignment, 0, len(g.members))
	for _, m := range g.members {
		members = append(members, models.TeamAssignment{Member: m, Team: g.teams[m.ID]})
	}

	var finalist *models.Finalist
	if g.finalist != nil {
		f := *g.finalist
		finalist = &f
	}

	return &Status{
		Phase:             g.phase,
		Kind:              g.kind,
		TeamCount:         g.teamCount,
		Slots:             append([]string{}, g.slots...),
		Highlight:         g.highlight,
		Finalist:          finalist,
		Members:           members,
		Unassigned:        len(g.members) - len(g.assignments),
		DirectPickPending: g.directPickPending,
	}
}

// eventLocked snapshots the game and queues the event for delivery
func (g *Game) eventLocked(t EventType) *Event {
	g.seq++
	ev := Event{Seq: g.seq, Type: t, Status: g.statusLocked()}
	g.outbox = append(g.outbox, ev)
	return &ev
}

// emit delivers queued events outside the game lock. A caller that finds
// another goroutine already draining leaves its event to that goroutine.
func (g *Game) emit(ev *Event) {
	if ev == nil {
		return
	}

	g.mu.Lock()
	if g.flushing {
		g.mu.Unlock()
		return
	}
	g.flushing = true

	for len(g.outbox) > 0 {
		next := g.outbox[0]
		g.outbox = g.outbox[1:]
		g.mu.Unlock()

		if g.listener != nil {
			g.listener(next)
		}

		g.mu.Lock()
	}

	g.outbox = nil
	g.flushing = false
	g.mu.Unlock()
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
