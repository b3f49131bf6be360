package card

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/random/randomtest"
	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
	deck    *Deck
	members []models.Member
}

func (s *DeckTestSuite) SetupTest() {
	// 0.999 keeps every element in place, so display order matches the roster
	deck, err := NewDeck(&Config{Random: randomtest.NewSequence(0.999)})
	s.Require().NoError(err)
	s.deck = deck

	s.members = make([]models.Member, 0, 5)
	for i := 1; i <= 5; i++ {
		s.members = append(s.members, models.Member{ID: fmt.Sprintf("m%d", i), Name: fmt.Sprintf("Member %d", i)})
	}
	s.deck.Load(s.members)
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestLoadDealsHidden() {
	cards := s.deck.Cards()

	s.Require().Len(cards, 5)
	for i, c := range cards {
		s.Equal(s.members[i], c.Member)
		s.False(c.Revealed)
		s.Zero(c.Team)
	}
	s.Equal(DefaultTeamCount, s.deck.TeamCount())
}

func (s *DeckTestSuite) TestRevealOrderRoundRobin() {
	teams := make([]int, 0, 3)
	for _, id := range []string{"m1", "m2", "m3"} {
		team, err := s.deck.RevealOne(id)
		s.Require().NoError(err)
		teams = append(teams, team)
	}

	s.Equal([]int{1, 2, 1}, teams)
}

func (s *DeckTestSuite) TestRevealFollowsClickOrderNotDisplayOrder() {
	first, err := s.deck.RevealOne("m5")
	s.Require().NoError(err)
	second, err := s.deck.RevealOne("m1")
	s.Require().NoError(err)

	s.Equal(1, first)
	s.Equal(2, second)
}

func (s *DeckTestSuite) TestRevealTwiceKeepsTeam() {
	_, err := s.deck.RevealOne("m1")
	s.Require().NoError(err)
	_, err = s.deck.RevealOne("m2")
	s.Require().NoError(err)

	team, err := s.deck.RevealOne("m1")
	s.Require().NoError(err)
	s.Equal(1, team)

	team, err = s.deck.RevealOne("m3")
	s.Require().NoError(err)
	s.Equal(1, team)
}

func (s *DeckTestSuite) TestRevealUnknown() {
	_, err := s.deck.RevealOne("nobody")
	s.ErrorIs(err, ErrCardNotFound)
}

func (s *DeckTestSuite) TestRevealAllContinuesRotation() {
	s.deck.SetTeamCount(3)
	_, err := s.deck.RevealOne("m4")
	s.Require().NoError(err)

	teams := s.deck.RevealAll()

	s.Equal(map[string]int{"m4": 1, "m1": 2, "m2": 3, "m3": 1, "m5": 2}, teams)
	s.True(s.deck.AllRevealed())
}

func (s *DeckTestSuite) TestResultsIncludeUnassigned() {
	_, err := s.deck.RevealOne("m2")
	s.Require().NoError(err)

	results := s.deck.Results()

	s.Require().Len(results.Teams, 2)
	s.Equal([]models.Member{s.members[1]}, results.Teams[0].Members)
	s.Empty(results.Teams[1].Members)
	s.Len(results.Unassigned, 4)
}

func (s *DeckTestSuite) TestFinalResultsNeedAllFlipped() {
	_, err := s.deck.FinalResults()
	s.ErrorIs(err, ErrCardsHidden)

	s.deck.RevealAll()

	results, err := s.deck.FinalResults()
	s.Require().NoError(err)
	s.Len(results.Teams[0].Members, 3)
	s.Len(results.Teams[1].Members, 2)
	s.Empty(results.Unassigned)
}

func (s *DeckTestSuite) TestResultsKeepTeamsAboveCount() {
	s.deck.SetTeamCount(4)
	s.deck.RevealAll()
	s.deck.SetTeamCount(2)

	results := s.deck.Results()

	s.Len(results.Teams, 4)
	total := 0
	for _, g := range results.Teams {
		total += len(g.Members)
	}
	s.Equal(5, total)
}

func (s *DeckTestSuite) TestReshuffleResets() {
	s.deck.RevealAll()

	s.deck.Reshuffle()

	s.False(s.deck.AllRevealed())
	for _, c := range s.deck.Cards() {
		s.False(c.Revealed)
		s.Zero(c.Team)
	}
	s.Len(s.deck.Cards(), 5)
}

func (s *DeckTestSuite) TestSetTeamCountClamps() {
	s.Equal(2, s.deck.SetTeamCount(0))
	s.Equal(7, s.deck.SetTeamCount(7))
}

func TestEmptyDeck(t *testing.T) {
	deck, err := NewDeck(&Config{Random: random.New(&random.Config{Seed: 1})})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := deck.FinalResults(); err != ErrInsufficientMembers {
		t.Fatalf("expected ErrInsufficientMembers, got %v", err)
	}
	if len(deck.RevealAll()) != 0 {
		t.Fatal("expected no teams")
	}
}

func TestReshuffleIsPermutation(t *testing.T) {
	deck, err := NewDeck(&Config{Random: random.New(&random.Config{Seed: 42}), TeamCount: 3})
	if err != nil {
		t.Fatal(err)
	}

	members := []models.Member{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}, {ID: "d", Name: "D"}}
	deck.Load(members)
	deck.Reshuffle()

	seen := map[string]bool{}
	for _, c := range deck.Cards() {
		seen[c.Member.ID] = true
	}
	if len(seen) != len(members) {
		t.Fatalf("expected %d distinct cards, got %d", len(members), len(seen))
	}
	if deck.TeamCount() != 3 {
		t.Fatalf("expected 3 teams, got %d", deck.TeamCount())
	}
}

func TestNewDeckValidation(t *testing.T) {
	if _, err := NewDeck(nil); err != ErrNilConfig {
		t.Fatalf("expected ErrNilConfig, got %v", err)
	}
	if _, err := NewDeck(&Config{}); err != ErrNilRandom {
		t.Fatalf("expected ErrNilRandom, got %v", err)
	}
}
