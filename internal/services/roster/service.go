package roster

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/sylk/internal/common/uuid"
	"github.com/KirkDiggler/sylk/internal/models"
	memberRepo "github.com/KirkDiggler/sylk/internal/repositories/member"
	"github.com/charmbracelet/log"
)

// service implements the Service interface
type service struct {
	maxMembers    int
	memberRepo    memberRepo.Repository
	uuidGenerator uuid.UUID
	logger        *log.Logger
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxMembers := cfg.MaxMembers
	if maxMembers <= 0 {
		maxMembers = models.MaxMembers
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &service{
		maxMembers:    maxMembers,
		memberRepo:    cfg.MemberRepo,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.WithPrefix("roster"),
	}, nil
}

func rosterID(id string) string {
	if id == "" {
		return models.DefaultRosterID
	}
	return id
}

func (s *service) load(ctx context.Context, id string) ([]models.Member, error) {
	out, err := s.memberRepo.GetRoster(ctx, &memberRepo.GetRosterInput{
		RosterID: id,
	})
	if err != nil {
		return nil, err
	}
	return out.Members, nil
}

// ListMembers returns the members of a roster in insertion order
func (s *service) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	if input == nil {
		input = &ListMembersInput{}
	}

	members, err := s.load(ctx, rosterID(input.RosterID))
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{
		Members: models.CopyMembers(members),
	}, nil
}

// AddMember appends a new member to a roster
func (s *service) AddMember(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
	if input == nil {
		return nil, ErrEmptyName
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	id := rosterID(input.RosterID)
	members, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(members) >= s.maxMembers {
		return nil, ErrRosterFull
	}

	for _, m := range members {
		if m.Name == name {
			return nil, ErrDuplicateName
		}
	}

	member := models.Member{
		ID:   s.uuidGenerator.NewUUID(),
		Name: name,
	}

	updated := append(models.CopyMembers(members), member)
	err = s.memberRepo.SaveRoster(ctx, &memberRepo.SaveRosterInput{
		RosterID: id,
		Members:  updated,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Member added", "roster", id, "member", member.Name, "count", len(updated))

	return &AddMemberOutput{
		Member:  member,
		Members: updated,
		Warning: ValidateName(name),
	}, nil
}

// RemoveMember deletes a single member from a roster
func (s *service) RemoveMember(ctx context.Context, input *RemoveMemberInput) (*RemoveMemberOutput, error) {
	if input == nil || input.MemberID == "" {
		return nil, ErrMemberNotFound
	}

	id := rosterID(input.RosterID)
	members, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := make([]models.Member, 0, len(members))
	found := false
	for _, m := range members {
		if m.ID == input.MemberID {
			found = true
			continue
		}
		updated = append(updated, m)
	}

	if !found {
		return nil, ErrMemberNotFound
	}

	err = s.memberRepo.SaveRoster(ctx, &memberRepo.SaveRosterInput{
		RosterID: id,
		Members:  updated,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Member removed", "roster", id, "member", input.MemberID, "count", len(updated))

	return &RemoveMemberOutput{
		Members: updated,
	}, nil
}

// ResetMembers removes every member from a roster.
// An already empty roster is left untouched.
func (s *service) ResetMembers(ctx context.Context, input *ResetMembersInput) (*ResetMembersOutput, error) {
	if input == nil {
		input = &ResetMembersInput{}
	}

	id := rosterID(input.RosterID)
	members, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(members) == 0 {
		return &ResetMembersOutput{}, nil
	}

	err = s.memberRepo.DeleteRoster(ctx, &memberRepo.DeleteRosterInput{RosterID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to clear roster: %w", err)
	}

	s.logger.Info("Roster cleared", "roster", id, "removed", len(members))

	return &ResetMembersOutput{
		Removed: len(members),
	}, nil
}

// ValidateName returns advisory feedback for a member name.
// It never blocks an add; an empty result means the name looks fine.
func ValidateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if name[0] >= '0' && name[0] <= '9' {
		return WarningLeadingDigit
	}

	digits := 0
	for _, r := range name {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 8 {
		return WarningTooManyDigit
	}

	return ""
}
