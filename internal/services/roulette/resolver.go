package roulette

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
)

// SlotCount is the number of reels
const SlotCount = 3

// Team count bounds
const (
	DefaultTeamCount = 4
	MinTeamCount     = 2
	MaxTeamCount     = 4
)

// ClampTeamCount keeps n inside [MinTeamCount, MaxTeamCount]
func ClampTeamCount(n int) int {
	if n < MinTeamCount {
		return MinTeamCount
	}
	if n > MaxTeamCount {
		return MaxTeamCount
	}
	return n
}

// NextTeam returns the team the next assignment receives
func NextTeam(assignedCount, teamCount int) int {
	if teamCount < 1 {
		teamCount = 1
	}
	return assignedCount%teamCount + 1
}

// Spin draws SlotCount names from the pool with replacement
func Spin(src random.Source, names []string) []string {
	slots := make([]string, SlotCount)
	for i := range slots {
		slots[i], _ = random.PickOne(src, names)
	}
	return slots
}

// DistinctNames returns the names in slots in order of first appearance
func DistinctNames(slots []string) []string {
	seen := make(map[string]bool, len(slots))
	distinct := make([]string, 0, len(slots))
	for _, name := range slots {
		if seen[name] {
			continue
		}
		seen[name] = true
		distinct = append(distinct, name)
	}
	return distinct
}

// Classify names the result kind from the number of distinct names drawn
func Classify(slots []string) models.ResultKind {
	switch len(DistinctNames(slots)) {
	case 1:
		return models.ResultKindJackpot
	case 2:
		return models.ResultKindSemiJackpot
	default:
		return models.ResultKindChaos
	}
}

// PickFinalist chooses the finalist for drawn slots.
// A semi jackpot picks between the two names, a chaos draw picks a slot.
func PickFinalist(src random.Source, kind models.ResultKind, slots []string) string {
	switch kind {
	case models.ResultKindSemiJackpot:
		name, _ := random.PickOne(src, DistinctNames(slots))
		return name
	case models.ResultKindChaos:
		name, _ := random.PickOne(src, slots)
		return name
	default:
		if len(slots) == 0 {
			return ""
		}
		return slots[0]
	}
}

// DirectPick chooses between the last one or two names.
// A single name is returned without a draw.
func DirectPick(src random.Source, names []string) string {
	if len(names) == 1 {
		return names[0]
	}
	name, _ := random.PickOne(src, names)
	return name
}

// Resolve runs one complete draw over the unassigned names
func Resolve(src random.Source, names []string, teamCount, assignedCount int) (*Outcome, error) {
	if len(names) == 0 {
		return nil, ErrInsufficientMembers
	}

	team := NextTeam(assignedCount, teamCount)

	if len(names) < SlotCount {
		return &Outcome{
			Kind:     models.ResultKindDirectPick,
			Slots:    []string{},
			Finalist: DirectPick(src, names),
			Team:     team,
		}, nil
	}

	slots := Spin(src, names)
	kind := Classify(slots)

	return &Outcome{
		Kind:     kind,
		Slots:    slots,
		Finalist: PickFinalist(src, kind, slots),
		Team:     team,
	}, nil
}

// DraftAll draws repeatedly until every member has a team.
// Assignments are returned in the order they were made.
func DraftAll(src random.Source, members []models.Member, teamCount int) ([]models.TeamAssignment, error) {
	if len(members) == 0 {
		return nil, ErrInsufficientMembers
	}

	teamCount = ClampTeamCount(teamCount)
	pending := models.CopyMembers(members)
	assignments := make([]models.TeamAssignment, 0, len(members))

	for len(pending) > 0 {
		outcome, err := Resolve(src, models.Names(pending), teamCount, len(assignments))
		if err != nil {
			return nil, err
		}

		i := indexOfName(pending, outcome.Finalist)
		assignments = append(assignments, models.TeamAssignment{
			Member: pending[i],
			Team:   outcome.Team,
		})
		pending = append(pending[:i], pending[i+1:]...)
	}

	return assignments, nil
}

// GroupTeams lists members per team, index 0 holding team 1
func GroupTeams(assignments []models.TeamAssignment, teamCount int) [][]models.Member {
	if teamCount < 1 {
		teamCount = 1
	}
	teams := make([][]models.Member, teamCount)
	for i := range teams {
		teams[i] = []models.Member{}
	}
	for _, a := range assignments {
		if a.Team < 1 || a.Team > teamCount {
			continue
		}
		teams[a.Team-1] = append(teams[a.Team-1], a.Member)
	}
	return teams
}

func indexOfName(members []models.Member, name string) int {
	for i, m := range members {
		if m.Name == name {
			return i
		}
	}
	return 0
}
