package roster

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/sylk/internal/services/roster Service

// Service defines the interface for roster operations
type Service interface {
	// ListMembers returns the members of a roster in insertion order
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// AddMember appends a new member to a roster
	AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error)

	// RemoveMember deletes a single member from a roster
	RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error)

	// ResetMembers removes every member from a roster
	ResetMembers(ctx context.Context, input *ResetMembersInput) (*ResetMembersOutput, error)
}
