package member

import "github.com/KirkDiggler/sylk/internal/models"

type GetRosterInput struct {
	RosterID string
}

type GetRosterOutput struct {
	Members []models.Member
}

type SaveRosterInput struct {
	RosterID string
	Members  []models.Member
}

type DeleteRosterInput struct {
	RosterID string
}
