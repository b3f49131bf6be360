package member

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/sylk/internal/repositories/member Repository

import (
	"context"
)

// Repository defines the interface for roster persistence.
// A roster is stored and loaded whole, as an ordered list of members.
type Repository interface {
	// GetRoster retrieves the members of a roster, empty if it was never saved
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)

	// SaveRoster replaces the members of a roster
	SaveRoster(ctx context.Context, input *SaveRosterInput) error

	// DeleteRoster removes a roster
	DeleteRoster(ctx context.Context, input *DeleteRosterInput) error
}
