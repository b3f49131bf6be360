package roster

import (
	"github.com/KirkDiggler/sylk/internal/common/uuid"
	"github.com/KirkDiggler/sylk/internal/models"
	memberRepo "github.com/KirkDiggler/sylk/internal/repositories/member"
	"github.com/charmbracelet/log"
)

// Config holds configuration for the roster service
type Config struct {
	// Maximum number of members per roster, defaults to models.MaxMembers
	MaxMembers int

	// Repository dependencies
	MemberRepo memberRepo.Repository

	// Service dependencies
	UUIDGenerator uuid.UUID
	Logger        *log.Logger
}

// ListMembersInput contains parameters for listing a roster
type ListMembersInput struct {
	RosterID string
}

// ListMembersOutput contains the members of a roster
type ListMembersOutput struct {
	Members []models.Member
}

// AddMemberInput contains parameters for adding a member
type AddMemberInput struct {
	RosterID string

	// Name is trimmed before validation
	Name string
}

// AddMemberOutput contains the result of adding a member
type AddMemberOutput struct {
	Member  models.Member
	Members []models.Member

	// Warning is advisory feedback about the name, empty when the name looks fine
	Warning string
}

// RemoveMemberInput contains parameters for removing a member
type RemoveMemberInput struct {
	RosterID string
	MemberID string
}

// RemoveMemberOutput contains the roster after removal
type RemoveMemberOutput struct {
	Members []models.Member
}

// ResetMembersInput contains parameters for clearing a roster
type ResetMembersInput struct {
	RosterID string
}

// ResetMembersOutput contains the result of clearing a roster
type ResetMembersOutput struct {
	// Removed is the number of members that were deleted
	Removed int
}
