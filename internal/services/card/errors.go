package card

// CardError is a custom error type for card-related errors
type CardError string

// Error implements the error interface
func (e CardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInsufficientMembers CardError = "at least 1 member is needed to deal cards"
	ErrCardNotFound        CardError = "no card for that member"
	ErrCardsHidden         CardError = "some cards have not been flipped yet"
	ErrNilConfig           CardError = "config cannot be nil"
	ErrNilRandom           CardError = "random source cannot be nil"
)
