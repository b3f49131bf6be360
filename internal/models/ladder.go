package models

// LadderRows is the number of rows on every generated ladder
const LadderRows = 8

// Ladder holds the horizontal rungs of a ladder board.
// Ladder[r][c] is true when a rung joins column c and c+1 on row r.
type Ladder [][]bool

// RowCount returns the number of rows on the board
func (l Ladder) RowCount() int {
	return len(l)
}

// ColumnCount returns the number of vertical lines the board was built for
func (l Ladder) ColumnCount() int {
	if len(l) == 0 {
		return 0
	}
	return len(l[0]) + 1
}

// Valid reports whether no row bridges a column on both sides
func (l Ladder) Valid() bool {
	for _, row := range l {
		for c := 1; c < len(row); c++ {
			if row[c] && row[c-1] {
				return false
			}
		}
	}
	return true
}

// Waypoint is a single step of a traced ladder path.
// Row -1 is the virtual start above the board and Row == RowCount is the virtual end below it.
type Waypoint struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Point is a pixel coordinate used to draw a traced path
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
