package validator

import "svw.info/playsudoku/internal/domain"

// Fast rescans the whole grid on every call. 81 cells keep the full scan
// cheap, and a stateless rescan cannot drift out of sync with the board.
type Fast struct{}

func New() *Fast { return &Fast{} }

// Conflicts returns every cell that clashes with another filled cell in its
// row, column, or box. Results are symmetric: both cells of a clashing pair
// are included.
func (v *Fast) Conflicts(g domain.Grid) domain.ConflictSet {
	var out domain.ConflictSet
	// rows
	for r := 0; r < domain.Size; r++ {
		var first [domain.Size + 1]int // first flat index holding digit, +1; 0 = unseen
		for c := 0; c < domain.Size; c++ {
			markDuplicates(&out, &first, g[r][c], r*domain.Size+c)
		}
	}
	// cols
	for c := 0; c < domain.Size; c++ {
		var first [domain.Size + 1]int
		for r := 0; r < domain.Size; r++ {
			markDuplicates(&out, &first, g[r][c], r*domain.Size+c)
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var first [domain.Size + 1]int
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br*3+dr, bc*3+dc
					markDuplicates(&out, &first, g[r][c], r*domain.Size+c)
				}
			}
		}
	}
	return out
}

// markDuplicates records idx as holding val within the current unit. On a
// repeat it marks both the first holder and idx, which is what makes the
// result symmetric.
func markDuplicates(out *domain.ConflictSet, first *[domain.Size + 1]int, val uint8, idx int) {
	if val == 0 {
		return
	}
	if prev := first[val]; prev != 0 {
		out.Add(prev - 1)
		out.Add(idx)
		return
	}
	first[val] = idx + 1
}
