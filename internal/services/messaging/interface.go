package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sylk/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRouletteStatusMessage returns the rulebook line for the roulette board
	GetRouletteStatusMessage(ctx context.Context, input *GetRouletteStatusMessageInput) (*GetRouletteStatusMessageOutput, error)

	// GetRouletteResultMessage announces the member a draw put on a team
	GetRouletteResultMessage(ctx context.Context, input *GetRouletteResultMessageInput) (*GetRouletteResultMessageOutput, error)

	// GetNameWarningMessage turns an advisory roster warning into a notice
	GetNameWarningMessage(ctx context.Context, input *GetNameWarningMessageInput) (*GetNameWarningMessageOutput, error)

	// GetErrorMessage returns a user-friendly notice for an error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
