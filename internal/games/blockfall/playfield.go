package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Default playfield dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell is one playfield position: either empty or holding a locked color.
type Cell struct {
	Filled bool       // Whether a locked block occupies the cell
	Color  core.Color // Valid only when Filled is true
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// FilledCell returns a cell holding the given color.
func FilledCell(c core.Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Playfield is the fixed-size grid of locked cells.
// Rows are addressed top (y=0) to bottom (y=H-1).
type Playfield struct {
	w, h int
	rows [][]Cell
}

// NewPlayfield creates an empty playfield. Non-positive dimensions fall back
// to the defaults.
func NewPlayfield(w, h int) *Playfield {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	p := &Playfield{w: w, h: h, rows: make([][]Cell, h)}
	for y := range p.rows {
		p.rows[y] = make([]Cell, w)
	}
	return p
}

// Width returns the number of columns.
func (p *Playfield) Width() int { return p.w }

// Height returns the number of rows.
func (p *Playfield) Height() int { return p.h }

// InBounds reports whether (x, y) addresses a stored cell.
func (p *Playfield) InBounds(x, y int) bool {
	return x >= 0 && x < p.w && y >= 0 && y < p.h
}

// At returns the cell at (x, y), or an empty cell when out of bounds.
func (p *Playfield) At(x, y int) Cell {
	if !p.InBounds(x, y) {
		return EmptyCell()
	}
	return p.rows[y][x]
}

// Set stores a cell at (x, y). Out-of-bounds writes are ignored.
func (p *Playfield) Set(x, y int, c Cell) {
	if p.InBounds(x, y) {
		p.rows[y][x] = c
	}
}

// IsValid reports whether every occupied cell of the piece lies within the
// side walls and above the floor, and does not overlap a locked cell.
// Cells above the top (y < 0) are allowed and never collide.
func (p *Playfield) IsValid(piece Piece) bool {
	valid := true
	piece.Cells(func(x, y int) {
		if !valid {
			return
		}
		if x < 0 || x >= p.w || y >= p.h {
			valid = false
			return
		}
		if y >= 0 && p.rows[y][x].Filled {
			valid = false
		}
	})
	return valid
}

// Lock writes the piece's color into each of its occupied cells.
// Callers must have checked IsValid at this position.
func (p *Playfield) Lock(piece Piece) {
	cell := FilledCell(piece.Color())
	piece.Cells(func(x, y int) {
		p.Set(x, y, cell)
	})
}

// FullRows returns the indices of every full row, top to bottom.
func (p *Playfield) FullRows() []int {
	var full []int
	for y, row := range p.rows {
		if rowFull(row) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row and inserts the same number of empty
// rows at the top. All full rows are found before anything moves, so
// simultaneous clears are handled in one call. Returns the number of rows
// removed.
func (p *Playfield) ClearFullRows() int {
	full := p.FullRows()
	if len(full) == 0 {
		return 0
	}

	// bottom-most first keeps the remaining indices valid
	for i := len(full) - 1; i >= 0; i-- {
		y := full[i]
		p.rows = append(p.rows[:y], p.rows[y+1:]...)
	}
	fresh := make([][]Cell, len(full), p.h)
	for i := range fresh {
		fresh[i] = make([]Cell, p.w)
	}
	p.rows = append(fresh, p.rows...)

	return len(full)
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (p *Playfield) Rows() [][]Cell {
	out := make([][]Cell, p.h)
	for y, row := range p.rows {
		out[y] = make([]Cell, p.w)
		copy(out[y], row)
	}
	return out
}

// FilledCount returns the number of locked cells.
func (p *Playfield) FilledCount() int {
	n := 0
	for _, row := range p.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Filled {
			return false
		}
	}
	return true
}
