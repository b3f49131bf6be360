package models

// RoulettePhase represents the current stage of a roulette draw
type RoulettePhase string

const (
	// RoulettePhaseIdle indicates no draw is in progress
	RoulettePhaseIdle RoulettePhase = "idle"

	// RoulettePhaseSpinning indicates the reels are spinning
	RoulettePhaseSpinning RoulettePhase = "spinning"

	// RoulettePhaseTiebreak indicates the candidate slots are being narrowed to a finalist
	RoulettePhaseTiebreak RoulettePhase = "tiebreak"

	// RoulettePhaseResolved indicates the last draw assigned a finalist to a team
	RoulettePhaseResolved RoulettePhase = "resolved"
)

// InProgress reports whether a draw is still running
func (p RoulettePhase) InProgress() bool {
	return p == RoulettePhaseSpinning || p == RoulettePhaseTiebreak
}

// ResultKind classifies how a roulette draw picked its finalist
type ResultKind string

const (
	// ResultKindJackpot means all three slots show the same name
	ResultKindJackpot ResultKind = "jackpot"

	// ResultKindSemiJackpot means the slots show exactly two distinct names
	ResultKindSemiJackpot ResultKind = "semi_jackpot"

	// ResultKindChaos means the slots show three distinct names
	ResultKindChaos ResultKind = "chaos"

	// ResultKindDirectPick means one or two members were left and no spin was needed
	ResultKindDirectPick ResultKind = "direct_pick"
)

// NeedsTiebreak reports whether the kind resolves through the tiebreak stage
func (k ResultKind) NeedsTiebreak() bool {
	return k == ResultKindSemiJackpot || k == ResultKindChaos
}

// Finalist is the member picked by a draw and the team they were given
type Finalist struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Team     int    `json:"team"`
}

// TeamAssignment records the team given to a member
type TeamAssignment struct {
	Member Member `json:"member"`
	Team   int    `json:"team"`
}
