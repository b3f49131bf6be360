package models

// Card is a face-down member card in the card draw
type Card struct {
	// Member is the member printed on the card
	Member Member `json:"member"`

	// Revealed indicates the card has been flipped
	Revealed bool `json:"revealed"`

	// Team is the team assigned when the card was flipped, 0 while hidden
	Team int `json:"team"`
}
