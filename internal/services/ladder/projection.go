package ladder

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/sylk/internal/models"
)

// Geometry holds the pixel sizes the board is drawn with
type Geometry struct {
	// ColumnWidth is the width of one vertical line's lane
	ColumnWidth int

	// RowHeight is the spacing between rows of rungs
	RowHeight int

	// NameSize is the diameter of the name badge above each line
	NameSize int

	// NameMargin is the gap between a name badge and the board
	NameMargin int

	// TopOffset is the padding above the name badges
	TopOffset int

	// RewardMargin is the gap between the board and the reward boxes
	RewardMargin int
}

// DefaultGeometry matches the stylesheet the board is rendered with
var DefaultGeometry = Geometry{
	ColumnWidth:  80,
	RowHeight:    40,
	NameSize:     40,
	NameMargin:   5,
	TopOffset:    10,
	RewardMargin: 5,
}

// Palette colours the traced line of each member, by member index
var Palette = []string{
	"#E3B5A1",
	"#A8C8A0",
	"#B7D6E2",
	"#E8C3AC",
	"#D4B4CE",
	"#BBD58E",
	"#E7CF98",
	"#B2C4A3",
	"#D8BFB4",
	"#A4AEC6",
}

// MemberColor returns the palette colour for the member at index
func MemberColor(index int) string {
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}

// Project converts waypoints into pixel coordinates on a board with rowCount rows
func (g Geometry) Project(path []models.Waypoint, rowCount int) []models.Point {
	points := make([]models.Point, 0, len(path))
	boardTop := g.TopOffset + g.NameSize + g.NameMargin

	for _, w := range path {
		x := w.Column*g.ColumnWidth + g.ColumnWidth/2

		var y int
		switch {
		case w.Row < 0:
			// centre of the name badge
			y = g.TopOffset + g.NameSize/2
		case w.Row >= rowCount:
			// just above the reward box
			y = boardTop + rowCount*g.RowHeight + g.RewardMargin
		default:
			y = boardTop + (w.Row+1)*g.RowHeight
		}

		points = append(points, models.Point{X: x, Y: y})
	}

	return points
}

// FormatPoints renders points as an SVG polyline points attribute ("x1,y1 x2,y2 ...")
func FormatPoints(points []models.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Y))
	}
	return b.String()
}
