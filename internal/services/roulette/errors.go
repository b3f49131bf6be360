package roulette

// RouletteError is a custom error type for roulette-related errors
type RouletteError string

// Error implements the error interface
func (e RouletteError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientMembers   RouletteError = "no unassigned members left"
	ErrSpinNeedsThree        RouletteError = "at least 3 unassigned members are needed to spin"
	ErrDirectPickUnavailable RouletteError = "direct pick needs 1 or 2 unassigned members"
	ErrDrawInProgress        RouletteError = "a draw is already in progress"
	ErrNilConfig             RouletteError = "config cannot be nil"
	ErrNilRandom             RouletteError = "random source cannot be nil"
	ErrNilClock              RouletteError = "clock cannot be nil"
)
