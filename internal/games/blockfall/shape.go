// Package blockfall implements a falling-block puzzle: a fixed-size
// playfield, seven polyomino shapes, collision-checked movement and
// rotation, row clearing and scoring. The engine is single-writer and
// deterministic for a given piece source; it knows nothing about terminals.
package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Matrix is a row-major occupancy grid for a piece.
// Matrix[r][c] is true when the cell at row r, column c is occupied.
type Matrix [][]bool

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = make([]bool, len(row))
		copy(out[r], row)
	}
	return out
}

// Rotate returns a new matrix turned 90 degrees clockwise.
// The receiver is left untouched.
func (m Matrix) Rotate() Matrix {
	rows, cols := m.Height(), m.Width()

	// transpose, then reverse each resulting row
	out := make(Matrix, cols)
	for c := range cols {
		out[c] = make([]bool, rows)
		for r := range rows {
			out[c][rows-1-r] = m[r][c]
		}
	}
	return out
}

// Equal reports whether two matrices have identical shape and contents.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the matrix as rows of '#' and '.', joined by '/'.
func (m Matrix) String() string {
	buf := make([]byte, 0, m.Height()*(m.Width()+1))
	for r, row := range m {
		if r > 0 {
			buf = append(buf, '/')
		}
		for _, on := range row {
			if on {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

// Shape is one canonical polyomino definition.
type Shape struct {
	Name   string
	Color  core.Color
	matrix Matrix
}

// Matrix returns a private copy of the shape's spawn orientation.
func (s Shape) Matrix() Matrix {
	return s.matrix.Clone()
}

// Shape indices, in table order.
const (
	ShapeI = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// shapes is the canonical table. It is never mutated after init.
var shapes = [...]Shape{
	ShapeI: {Name: "I", Color: core.ColorCyan, matrix: parseRows("####")},
	ShapeO: {Name: "O", Color: core.ColorYellow, matrix: parseRows("##", "##")},
	ShapeT: {Name: "T", Color: core.ColorMagenta, matrix: parseRows(".#.", "###")},
	ShapeS: {Name: "S", Color: core.ColorGreen, matrix: parseRows(".##", "##.")},
	ShapeZ: {Name: "Z", Color: core.ColorRed, matrix: parseRows("##.", ".##")},
	ShapeJ: {Name: "J", Color: core.ColorBlue, matrix: parseRows("#..", "###")},
	ShapeL: {Name: "L", Color: core.ColorOrange, matrix: parseRows("..#", "###")},
}

// ShapeCount returns the number of canonical shapes.
func ShapeCount() int {
	return len(shapes)
}

// ShapeAt returns the canonical shape for an index.
// Out-of-range indices wrap around so a misbehaving source can never panic the engine.
func ShapeAt(index int) Shape {
	return shapes[normalizeShapeIndex(index)]
}

// MaxShapeWidth returns the widest spawn orientation in the table.
func MaxShapeWidth() int {
	w := 0
	for _, s := range shapes {
		w = max(w, s.matrix.Width())
	}
	return w
}

func normalizeShapeIndex(index int) int {
	n := len(shapes)
	return ((index % n) + n) % n
}

// parseRows builds a matrix from rows of '#' (occupied) and '.' (empty).
func parseRows(rows ...string) Matrix {
	m := make(Matrix, len(rows))
	for r, row := range rows {
		m[r] = make([]bool, len(row))
		for c, ch := range row {
			m[r][c] = ch == '#'
		}
	}
	return m
}
