package ladder

import (
	"github.com/KirkDiggler/sylk/internal/models"
	"github.com/KirkDiggler/sylk/internal/random"
)

// rungChance is the probability a free column gets a rung
const rungChance = 0.5

// Generate builds a ladder for memberCount vertical lines.
// Fewer than 2 members yields an empty ladder.
//
// Rungs are decided left to right, one draw per column. A rung directly to the
// left forces the column empty, but the draw is still consumed so that the
// sequence of draws per row is always memberCount-1 long.
func Generate(src random.Source, memberCount int) models.Ladder {
	if memberCount < 2 {
		return models.Ladder{}
	}

	ladder := make(models.Ladder, 0, models.LadderRows)
	for r := 0; r < models.LadderRows; r++ {
		row := make([]bool, 0, memberCount-1)
		for c := 0; c < memberCount-1; c++ {
			hasRung := random.Chance(src, rungChance)
			if c > 0 && row[c-1] {
				hasRung = false
			}
			row = append(row, hasRung)
		}
		ladder = append(ladder, row)
	}

	return ladder
}

// step moves a token across one row. A rung to the right wins over one to the left.
func step(row []bool, column int) int {
	if column >= 0 && column < len(row) && row[column] {
		return column + 1
	}
	if column > 0 && column-1 < len(row) && row[column-1] {
		return column - 1
	}
	return column
}

// TracePath returns the column a token starting at startColumn ends on
func TracePath(ladder models.Ladder, startColumn int) int {
	column := startColumn
	for _, row := range ladder {
		column = step(row, column)
	}
	return column
}

// GetLadderPath returns the waypoints a token visits from startColumn.
// It starts with a virtual waypoint on row -1, records the column on entry to
// every row and again after any sideways move, and ends on row RowCount.
func GetLadderPath(ladder models.Ladder, startColumn int) []models.Waypoint {
	column := startColumn
	path := make([]models.Waypoint, 0, 2*len(ladder)+2)
	path = append(path, models.Waypoint{Row: -1, Column: column})

	for r, row := range ladder {
		path = append(path, models.Waypoint{Row: r, Column: column})

		next := step(row, column)
		if next != column {
			column = next
			path = append(path, models.Waypoint{Row: r, Column: column})
		}
	}

	path = append(path, models.Waypoint{Row: len(ladder), Column: column})
	return path
}
