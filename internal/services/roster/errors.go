package roster

// RosterError is a custom error type for roster-related errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEmptyName        RosterError = "member name cannot be empty"
	ErrDuplicateName    RosterError = "a member with this name already exists"
	ErrRosterFull       RosterError = "roster is at maximum capacity"
	ErrMemberNotFound   RosterError = "member not found"
	ErrNilConfig        RosterError = "config cannot be nil"
	ErrNilMemberRepo    RosterError = "member repository cannot be nil"
	ErrNilUUIDGenerator RosterError = "UUID generator cannot be nil"
)

// Advisory warnings returned alongside a successful add
const (
	WarningLeadingDigit = "names cannot start with a number"
	WarningTooManyDigit = "name has too many digits"
)
