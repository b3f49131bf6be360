package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/services/card"
	"github.com/KirkDiggler/sylk/internal/services/ladder"
	"github.com/KirkDiggler/sylk/internal/services/seat"
	"github.com/bwmarrin/discordgo"
)

const emptyValue = "-"

// renderMemberList renders the roster as a numbered list
func renderMemberList(members []models.Member) string {
	if len(members) == 0 {
		return "_No members yet. Use `/sylk add` to add some._"
	}

	var b strings.Builder
	for i, m := range members {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinNames(members []models.Member) string {
	if len(members) == 0 {
		return emptyValue
	}
	return strings.Join(models.Names(members), ", ")
}

// renderTeamFields renders one inline field per team, index 0 holding team 1
func renderTeamFields(teams [][]models.Member) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(teams))
	for i, members := range teams {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Team %d (%d)", i+1, len(members)),
			Value:  joinNames(members),
			Inline: true,
		})
	}
	return fields
}

// renderDraftOrder lists who was drafted to which team, in draft order
func renderDraftOrder(assignments []models.TeamAssignment) string {
	var b strings.Builder
	for i, a := range assignments {
		fmt.Fprintf(&b, "%d. %s → Team %d\n", i+1, a.Member.Name, a.Team)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderCardOrder shows the cards in the order they were flipped onto the table
func renderCardOrder(cards []models.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, fmt.Sprintf("%s (%d)", c.Member.Name, c.Team))
	}
	return strings.Join(labels, " · ")
}

func renderCardTeams(results *card.Results) []*discordgo.MessageEmbedField {
	teams := make([][]models.Member, 0, len(results.Teams))
	for _, g := range results.Teams {
		teams = append(teams, g.Members)
	}

	fields := renderTeamFields(teams)
	if len(results.Unassigned) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Unassigned",
			Value: joinNames(results.Unassigned),
		})
	}
	return fields
}

func renderDesks(desks []models.Desk) string {
	if len(desks) == 0 {
		return emptyValue
	}

	lines := make([]string, 0, len(desks))
	for _, d := range desks {
		lines = append(lines, fmt.Sprintf("`%d` %s", d.Number, d.Member.Name))
	}
	return strings.Join(lines, "\n")
}

// renderSeatFields renders a field per column, or per group in group mode
func renderSeatFields(layout *seat.Layout) []*discordgo.MessageEmbedField {
	if layout == nil {
		return nil
	}

	var fields []*discordgo.MessageEmbedField
	if layout.Mode == models.SeatModeGroups {
		for _, g := range layout.Groups {
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   fmt.Sprintf("Group %d", g.Number),
				Value:  renderDesks(g.Desks),
				Inline: true,
			})
		}
		return fields
	}

	for i, column := range layout.Columns {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Column %d", i+1),
			Value:  renderDesks(column),
			Inline: true,
		})
	}

	if layout.Overflow {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Heads up",
			Value: fmt.Sprintf("%d members for %d desks", len(layout.Seated), layout.Capacity),
		})
	}
	return fields
}

// renderLadderResults lists where every member landed
func renderLadderResults(results []ladder.Result) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s → %s\n", r.Member.Name, r.Reward)
	}
	return strings.TrimRight(b.String(), "\n")
}
