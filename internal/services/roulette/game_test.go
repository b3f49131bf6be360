package roulette

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/random/randomtest"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/suite"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *eventRecorder) types() []EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]EventType, 0, len(r.events))
	for _, ev := range r.events {
		types = append(types, ev.Type)
	}
	return types
}

func (r *eventRecorder) seqs() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	seqs := make([]uint64, 0, len(r.events))
	for _, ev := range r.events {
		seqs = append(seqs, ev.Seq)
	}
	return seqs
}

func (r *eventRecorder) count(t EventType) int {
	n := 0
	for _, et := range r.types() {
		if et == t {
			n++
		}
	}
	return n
}

type RouletteGameTestSuite struct {
	suite.Suite
	ctx      context.Context
	cancel   context.CancelFunc
	clock    *quartz.Mock
	recorder *eventRecorder
	members  []models.Member
}

func (s *RouletteGameTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 10*time.Second)
	s.clock = quartz.NewMock(s.T())
	s.recorder = &eventRecorder{}
	s.members = []models.Member{
		{ID: "m1", Name: "A"},
		{ID: "m2", Name: "B"},
		{ID: "m3", Name: "C"},
		{ID: "m4", Name: "D"},
	}
}

func (s *RouletteGameTestSuite) TearDownTest() {
	s.cancel()
}

func TestRouletteGameSuite(t *testing.T) {
	suite.Run(t, new(RouletteGameTestSuite))
}

func (s *RouletteGameTestSuite) newGame(src random.Source, auto bool) *Game {
	game, err := NewGame(&Config{
		Random:         src,
		Clock:          s.clock,
		AutoDirectPick: auto,
		Listener:       s.recorder.record,
	})
	s.Require().NoError(err)
	return game
}

func (s *RouletteGameTestSuite) advance() time.Duration {
	d, w := s.clock.AdvanceNext()
	w.MustWait(s.ctx)
	return d
}

// drain fires pending timers until none are left
func (s *RouletteGameTestSuite) drain() {
	for i := 0; i < 100; i++ {
		if _, ok := s.clock.Peek(); !ok {
			return
		}
		s.advance()
	}
	s.FailNow("timers never settled")
}

func (s *RouletteGameTestSuite) TestJackpot() {
	game := s.newGame(randomtest.NewSequence(0.0), false)
	game.Load(s.members)

	status, err := game.Spin()
	s.Require().NoError(err)
	s.Equal(models.RoulettePhaseSpinning, status.Phase)
	s.Equal([]string{"", "", ""}, status.Slots)

	s.Equal(DefaultTiming.Spin, s.advance())

	status = game.Status()
	s.Equal(models.RoulettePhaseResolved, status.Phase)
	s.Equal(models.ResultKindJackpot, status.Kind)
	s.Equal([]string{"A", "A", "A"}, status.Slots)
	s.Equal(&models.Finalist{MemberID: "m1", Name: "A", Team: 1}, status.Finalist)
	s.Equal(3, status.Unassigned)
	s.Equal([]EventType{EventLoaded, EventSpinStarted, EventResolved}, s.recorder.types())

	_, pending := s.clock.Peek()
	s.False(pending)
}

func (s *RouletteGameTestSuite) TestSpinIsBlockedWhileRunning() {
	game := s.newGame(randomtest.NewSequence(0.0), false)
	game.Load(s.members)

	_, err := game.Spin()
	s.Require().NoError(err)

	_, err = game.Spin()
	s.ErrorIs(err, ErrDrawInProgress)

	_, err = game.SetTeamCount(2)
	s.ErrorIs(err, ErrDrawInProgress)

	_, err = game.DirectPick()
	s.ErrorIs(err, ErrDrawInProgress)

	s.Equal(1, s.recorder.count(EventSpinStarted))
	s.Equal(4, game.Status().TeamCount)
}

func (s *RouletteGameTestSuite) TestSemiJackpotTiebreak() {
	// slots A, C, A then the finalist draw picks C
	game := s.newGame(randomtest.NewSequence(0.0, 0.5, 0.0, 0.9), false)
	game.Load(s.members)

	_, err := game.Spin()
	s.Require().NoError(err)
	s.advance()

	status := game.Status()
	s.Equal(models.RoulettePhaseTiebreak, status.Phase)
	s.Equal(models.ResultKindSemiJackpot, status.Kind)
	s.Equal([]string{"A", "C", "A"}, status.Slots)
	s.Equal(0, status.Highlight)
	s.Nil(status.Finalist)

	s.drain()

	status = game.Status()
	s.Equal(models.RoulettePhaseResolved, status.Phase)
	s.Equal(&models.Finalist{MemberID: "m3", Name: "C", Team: 1}, status.Finalist)
	s.Equal(1, status.Highlight)
	s.Equal(1, s.recorder.count(EventSlotsRevealed))
	s.Equal(7, s.recorder.count(EventHighlight))
	s.Equal(1, s.recorder.count(EventResolved))
}

func (s *RouletteGameTestSuite) TestEventsArriveInSnapshotOrder() {
	game := s.newGame(randomtest.NewSequence(0.0, 0.5, 0.0, 0.9), false)
	game.Load(s.members)

	_, err := game.Spin()
	s.Require().NoError(err)
	s.drain()

	seqs := s.recorder.seqs()
	s.Require().NotEmpty(seqs)
	for i, seq := range seqs {
		s.Equal(uint64(i+1), seq)
	}

	types := s.recorder.types()
	s.Equal(EventResolved, types[len(types)-1])
	s.Equal(models.RoulettePhaseResolved, s.recorder.events[len(types)-1].Status.Phase)
}

func (s *RouletteGameTestSuite) TestListenerMayCallBack() {
	var game *Game
	recorder := &eventRecorder{}
	game, err := NewGame(&Config{
		Random: randomtest.NewSequence(0.0),
		Clock:  s.clock,
		Listener: func(ev Event) {
			recorder.record(ev)
			if ev.Type == EventResolved {
				game.Reset()
			}
		},
	})
	s.Require().NoError(err)
	game.Load(s.members)

	_, err = game.Spin()
	s.Require().NoError(err)
	s.advance()

	s.Equal([]EventType{EventLoaded, EventSpinStarted, EventResolved, EventReset}, recorder.types())
	s.Equal([]uint64{1, 2, 3, 4}, recorder.seqs())
	s.Equal(models.RoulettePhaseIdle, game.Status().Phase)
}

func (s *RouletteGameTestSuite) TestChaosTiebreak() {
	// slots A, B, C then the finalist draw picks the middle slot
	game := s.newGame(randomtest.NewSequence(0.0, 0.4, 0.9, 0.5), false)
	game.Load(s.members[:3])

	_, err := game.Spin()
	s.Require().NoError(err)
	s.drain()

	status := game.Status()
	s.Equal(models.ResultKindChaos, status.Kind)
	s.Equal(&models.Finalist{MemberID: "m2", Name: "B", Team: 1}, status.Finalist)
	s.Equal([]models.TeamAssignment{{Member: s.members[1], Team: 1}}, game.Assignments())
}

func (s *RouletteGameTestSuite) TestResetCancelsPendingDraw() {
	game := s.newGame(randomtest.NewSequence(0.0), false)
	game.Load(s.members)
	_, err := game.SetTeamCount(2)
	s.Require().NoError(err)

	_, err = game.Spin()
	s.Require().NoError(err)

	game.Reset()

	_, pending := s.clock.Peek()
	s.False(pending)

	status := game.Status()
	s.Equal(models.RoulettePhaseIdle, status.Phase)
	s.Equal(DefaultTeamCount, status.TeamCount)
	s.Equal(4, status.Unassigned)
	s.Empty(game.Assignments())
}

func (s *RouletteGameTestSuite) TestStaleCallbackIsIgnored() {
	game := s.newGame(randomtest.NewSequence(0.0), false)
	game.Load(s.members)

	game.mu.Lock()
	stale := game.epoch
	game.mu.Unlock()

	game.Load(s.members)
	game.revealSlots(stale, []string{"A", "A", "A"}, 1)
	game.finishTiebreak(stale, 1)
	game.autoPick(stale)

	status := game.Status()
	s.Equal(models.RoulettePhaseIdle, status.Phase)
	s.Equal(4, status.Unassigned)
}

func (s *RouletteGameTestSuite) TestSpinNeedsThree() {
	game := s.newGame(randomtest.NewSequence(0.0), false)

	_, err := game.Spin()
	s.ErrorIs(err, ErrInsufficientMembers)

	game.Load(s.members[:2])
	_, err = game.Spin()
	s.ErrorIs(err, ErrSpinNeedsThree)
}

func (s *RouletteGameTestSuite) TestDirectPick() {
	game := s.newGame(randomtest.NewSequence(0.7), false)

	game.Load(s.members)
	_, err := game.DirectPick()
	s.ErrorIs(err, ErrDirectPickUnavailable)

	game.Load(s.members[:2])

	status, err := game.DirectPick()
	s.Require().NoError(err)
	s.Equal(models.ResultKindDirectPick, status.Kind)
	s.Equal(&models.Finalist{MemberID: "m2", Name: "B", Team: 1}, status.Finalist)

	status, err = game.DirectPick()
	s.Require().NoError(err)
	s.Equal(&models.Finalist{MemberID: "m1", Name: "A", Team: 2}, status.Finalist)
	s.Zero(status.Unassigned)

	_, err = game.DirectPick()
	s.ErrorIs(err, ErrInsufficientMembers)
}

func (s *RouletteGameTestSuite) TestAutoDirectPickAfterSpin() {
	game := s.newGame(randomtest.NewSequence(0.1), true)
	game.Load(s.members[:3])

	_, err := game.Spin()
	s.Require().NoError(err)
	s.advance()

	status := game.Status()
	s.Equal(models.ResultKindJackpot, status.Kind)
	s.True(status.DirectPickPending)

	s.Equal(DefaultTiming.DirectPick, s.advance())
	s.Equal(1, game.Status().Unassigned)

	s.Equal(DefaultTiming.DirectPick, s.advance())
	status = game.Status()
	s.Zero(status.Unassigned)
	s.False(status.DirectPickPending)

	_, pending := s.clock.Peek()
	s.False(pending)

	teams := game.Teams()
	s.Len(teams, DefaultTeamCount)
	s.Len(teams[0], 1)
	s.Len(teams[1], 1)
	s.Len(teams[2], 1)
	s.Empty(teams[3])
}

func (s *RouletteGameTestSuite) TestAutoDirectPickOnLoad() {
	game := s.newGame(randomtest.NewSequence(0.1), true)
	game.Load(s.members[:1])

	s.True(game.Status().DirectPickPending)
	s.drain()

	s.Equal([]models.TeamAssignment{{Member: s.members[0], Team: 1}}, game.Assignments())
}

func (s *RouletteGameTestSuite) TestSetTeamCountClamps() {
	game := s.newGame(randomtest.NewSequence(0.1), false)

	n, err := game.SetTeamCount(1)
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = game.SetTeamCount(7)
	s.Require().NoError(err)
	s.Equal(4, n)
}

func (s *RouletteGameTestSuite) TestFullDraftRoundRobin() {
	members := draftMembers(7)
	game := s.newGame(random.New(&random.Config{Seed: 11}), false)
	game.Load(members)
	_, err := game.SetTeamCount(3)
	s.Require().NoError(err)

	for game.Status().Unassigned >= SlotCount {
		_, err := game.Spin()
		s.Require().NoError(err)
		s.drain()
	}
	for game.Status().Unassigned > 0 {
		_, err := game.DirectPick()
		s.Require().NoError(err)
	}

	assignments := game.Assignments()
	s.Require().Len(assignments, len(members))
	seen := map[string]bool{}
	for k, a := range assignments {
		s.Equal(k%3+1, a.Team)
		seen[a.Member.ID] = true
	}
	s.Len(seen, len(members))
}

func TestNewGameValidation(t *testing.T) {
	src := randomtest.NewSequence(0.1)
	mClock := quartz.NewMock(t)

	cases := []struct {
		cfg  *Config
		want error
	}{
		{cfg: nil, want: ErrNilConfig},
		{cfg: &Config{Clock: mClock}, want: ErrNilRandom},
		{cfg: &Config{Random: src}, want: ErrNilClock},
	}
	for _, c := range cases {
		if _, err := NewGame(c.cfg); err != c.want {
			t.Errorf("expected %v, got %v", c.want, err)
		}
	}
}
