package seat

// SeatError is a custom error type for seat-related errors
type SeatError string

// Error implements the error interface
func (e SeatError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientMembers SeatError = "at least 1 member is needed to assign seats"
	ErrNilConfig           SeatError = "config cannot be nil"
	ErrNilRandom           SeatError = "random source cannot be nil"
)
