package web

import (
	"sync"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/KirkDiggler/sylk/internal/services/seat"
)

// session is the single local game table. Ladder, deck and planner are guarded
// by mu; the roulette game locks itself so its timers can fire independently.
type session struct {
	mu      sync.Mutex
	ladder  *ladder.Session
	deck    *card.Deck
	planner *seat.Planner
	wheel   *roulette.Game
}

// reload hands a fresh roster snapshot to every game
func (s *session) reload(members []models.Member) {
	s.mu.Lock()
	s.ladder.SetMembers(members)
	s.deck.Load(members)
	s.planner.Reset()
	s.mu.Unlock()

	s.wheel.Load(members)
}
