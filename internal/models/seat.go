package models

// Desk is a seat holding one member
type Desk struct {
	// Number is the 1-based position of the member in the shuffled sequence
	Number int `json:"number"`

	// Member is the member seated at the desk
	Member Member `json:"member"`
}

// SeatMode selects how shuffled members are laid out
type SeatMode string

const (
	// SeatModeColumns distributes members round-robin across columns
	SeatModeColumns SeatMode = "columns"

	// SeatModeGroups chunks members into fixed-size groups
	SeatModeGroups SeatMode = "groups"
)

// Group is a fixed-size table of desks
type Group struct {
	// Number is the 1-based group index
	Number int `json:"number"`

	Desks []Desk `json:"desks"`
}
