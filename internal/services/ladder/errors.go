package ladder

// LadderError is a custom error type for ladder-related errors
type LadderError string

// Error implements the error interface
func (e LadderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientMembers LadderError = "at least 2 members are needed for a ladder"
	ErrNotStarted          LadderError = "ladder has not been started"
	ErrInvalidColumn       LadderError = "column is outside the ladder"
	ErrNilConfig           LadderError = "config cannot be nil"
	ErrNilRandom           LadderError = "random source cannot be nil"
)
