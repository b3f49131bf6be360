package seat

import "github.com/KirkDiggler/sylk/internal/models"

// AssignColumns deals shuffled members round-robin into numColumns columns.
// Member i sits in column i mod numColumns at desk i+1.
func AssignColumns(shuffled []models.Member, numColumns int) [][]models.Desk {
	if numColumns < 1 {
		numColumns = 1
	}

	columns := make([][]models.Desk, numColumns)
	for c := range columns {
		columns[c] = []models.Desk{}
	}

	for i, m := range shuffled {
		c := i % numColumns
		columns[c] = append(columns[c], models.Desk{Number: i + 1, Member: m})
	}

	return columns
}

// AssignGroups chunks shuffled members into consecutive groups of maxPerGroup.
// The last group may be short.
func AssignGroups(shuffled []models.Member, maxPerGroup int) []models.Group {
	if maxPerGroup < 1 {
		maxPerGroup = 1
	}

	groups := make([]models.Group, 0, (len(shuffled)+maxPerGroup-1)/maxPerGroup)
	for start := 0; start < len(shuffled); start += maxPerGroup {
		end := min(start+maxPerGroup, len(shuffled))

		desks := make([]models.Desk, 0, end-start)
		for i := start; i < end; i++ {
			desks = append(desks, models.Desk{Number: i + 1, Member: shuffled[i]})
		}

		groups = append(groups, models.Group{Number: len(groups) + 1, Desks: desks})
	}

	return groups
}
