package card

import (
	"io"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/charmbracelet/log"
)

// Deck is a face-down card per member. Flipping a card puts the member on the
// next team in round-robin order of flips.
// It is not safe for concurrent use; callers serialise access.
type Deck struct {
	random    random.Source
	logger    *log.Logger
	teamCount int
	cards     []models.Card
	revealed  int
}

// NewDeck creates an empty deck
func NewDeck(cfg *Config) (*Deck, error) {
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

	teamCount := cfg.TeamCount
	if teamCount == 0 {
		teamCount = DefaultTeamCount
	}

	return &Deck{
		random:    cfg.Random,
		logger:    logger.WithPrefix("card"),
		teamCount: ClampTeamCount(teamCount),
		cards:     []models.Card{},
	}, nil
}

// ClampTeamCount keeps n at or above MinTeamCount
func ClampTeamCount(n int) int {
	return max(MinTeamCount, n)
}

// Load deals a hidden card for every member in shuffled order
func (d *Deck) Load(members []models.Member) {
	shuffled := random.Shuffle(d.random, members)

	d.cards = make([]models.Card, 0, len(shuffled))
	for _, m := range shuffled {
		d.cards = append(d.cards, models.Card{Member: m})
	}
	d.revealed = 0

	d.logger.Debug("Cards dealt", "cards", len(d.cards))
}

// Reshuffle turns every card face down and deals them in a new order
func (d *Deck) Reshuffle() {
	members := make([]models.Member, 0, len(d.cards))
	for _, c := range d.cards {
		members = append(members, c.Member)
	}
	d.Load(members)
}

// TeamCount returns the number of teams
func (d *Deck) TeamCount() int {
	return d.teamCount
}

// SetTeamCount changes the number of teams for cards flipped from now on
func (d *Deck) SetTeamCount(n int) int {
	d.teamCount = ClampTeamCount(n)
	return d.teamCount
}

// Cards returns the deck in display order
func (d *Deck) Cards() []models.Card {
	return append([]models.Card{}, d.cards...)
}

func (d *Deck) nextTeam() int {
	team := d.revealed%max(1, d.teamCount) + 1
	d.revealed++
	return team
}

// RevealOne flips the card of memberID and returns its team.
// Flipping a card twice returns the team it already has.
func (d *Deck) RevealOne(memberID string) (int, error) {
	for i := range d.cards {
		c := &d.cards[i]
		if c.Member.ID != memberID {
			continue
		}
		if !c.Revealed {
			c.Revealed = true
			c.Team = d.nextTeam()
		}
		return c.Team, nil
	}

	return 0, ErrCardNotFound
}

// RevealAll flips every remaining card in display order and returns each member's team
func (d *Deck) RevealAll() map[string]int {
	teams := make(map[string]int, len(d.cards))
	for i := range d.cards {
		c := &d.cards[i]
		if !c.Revealed {
			c.Revealed = true
			c.Team = d.nextTeam()
		}
		teams[c.Member.ID] = c.Team
	}
	return teams
}

// AllRevealed reports whether every card is face up
func (d *Deck) AllRevealed() bool {
	return d.revealed == len(d.cards)
}

// Results groups revealed cards by team and lists the rest as unassigned
func (d *Deck) Results() *Results {
	teamCount := d.teamCount
	for _, c := range d.cards {
		teamCount = max(teamCount, c.Team)
	}

	results := &Results{
		Teams:      make([]TeamGroup, teamCount),
		Unassigned: []models.Member{},
	}
	for i := range results.Teams {
		results.Teams[i] = TeamGroup{Team: i + 1, Members: []models.Member{}}
	}

	for _, c := range d.cards {
		if !c.Revealed {
			results.Unassigned = append(results.Unassigned, c.Member)
			continue
		}
		results.Teams[c.Team-1].Members = append(results.Teams[c.Team-1].Members, c.Member)
	}

	return results
}

// FinalResults returns the grouped results once every card is face up
func (d *Deck) FinalResults() (*Results, error) {
	if len(d.cards) == 0 {
		return nil, ErrInsufficientMembers
	}

	if !d.AllRevealed() {
		return nil, ErrCardsHidden
	}

	return d.Results(), nil
}
