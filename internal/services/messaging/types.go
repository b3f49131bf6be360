package messaging

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
	"github.com/KirkDiggler/sylk/internal/services/roulette"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneWarning is used for notices that block an action
	ToneWarning MessageTone = "warning"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks between message variants, seeded from the clock when nil
	Random random.Source
}

// GetRouletteStatusMessageInput is the input for GetRouletteStatusMessage
type GetRouletteStatusMessageInput struct {
	Status *roulette.Status
}

// GetRouletteStatusMessageOutput is the output for GetRouletteStatusMessage
type GetRouletteStatusMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRouletteResultMessageInput is the input for GetRouletteResultMessage
type GetRouletteResultMessageInput struct {
	Kind     models.ResultKind
	Finalist *models.Finalist

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRouletteResultMessageOutput is the output for GetRouletteResultMessage
type GetRouletteResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetNameWarningMessageInput is the input for GetNameWarningMessage
type GetNameWarningMessageInput struct {
	// Warning is the advisory text returned by the roster, may be empty
	Warning string
}

// GetNameWarningMessageOutput is the output for GetNameWarningMessage
type GetNameWarningMessageOutput struct {
	// Message is empty when there is nothing to warn about
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}
