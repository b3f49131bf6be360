package models

// DefaultRosterID is the roster used when none is specified
const DefaultRosterID = "sylk_members"

// MaxMembers is the largest roster the games are laid out for
const MaxMembers = 30

// Member represents a participant in the shared roster
type Member struct {
	// ID is the unique identifier for the member
	ID string `json:"id"`

	// Name is the display name of the member, unique within a roster
	Name string `json:"name"`
}

// Names returns the display names of members in order
func Names(members []Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

// CopyMembers returns a snapshot of members that shares no backing array with the input
func CopyMembers(members []Member) []Member {
	if members == nil {
		return []Member{}
	}
	out := make([]Member, len(members))
	copy(out, members)
	return out
}
