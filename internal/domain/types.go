package domain

// Size is the board edge length; the engine supports exactly 9x9 with digits 1..9.
const Size = 9

// Cells is the total cell count.
const Cells = Size * Size

// Grid is a 9x9 board; 0 marks an empty cell.
type Grid [Size][Size]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index flattens the coordinate to 0..80.
func (c CellCoord) Index() int { return c.Row*Size + c.Col }

// CoordOf is the inverse of CellCoord.Index.
func CoordOf(idx int) CellCoord { return CellCoord{Row: idx / Size, Col: idx % Size} }

// InBounds reports whether the coordinate lies on the board.
func (c CellCoord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// CountEmpty returns the number of empty cells.
func (g *Grid) CountEmpty() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

// Game pairs an immutable solution with the puzzle derived from it.
type Game struct {
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Solution   Grid       `json:"solution"`
	Puzzle     Grid       `json:"puzzle"`
	CreatedAt  int64      `json:"createdAt"`
}

// SavedGame is a persisted session snapshot with metadata.
type SavedGame struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Solution   Grid       `json:"solution"`
	Puzzle     Grid       `json:"puzzle"`
	Working    Grid       `json:"working"`
	Mistakes   int        `json:"mistakes"`
	HintsUsed  int        `json:"hintsUsed"`
	Elapsed    int        `json:"elapsed"`
	Completed  bool       `json:"completed"`
	CreatedAt  int64      `json:"createdAt"`
}

// SavedGameMeta is a lightweight listing entry.
type SavedGameMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Elapsed    int        `json:"elapsed"`
	CreatedAt  int64      `json:"createdAt"`
}
