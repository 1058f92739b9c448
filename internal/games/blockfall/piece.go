package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the falling, player-controlled polyomino.
// It owns its matrix; rotation replaces the matrix instead of editing it.
type Piece struct {
	ShapeIndex int
	Matrix     Matrix
	X, Y       int // top-left anchor in playfield coordinates
}

// Spawn places a fresh piece of the given shape horizontally centered on a
// field of the given width, at row 0.
func Spawn(shapeIndex, fieldWidth int) Piece {
	shape := ShapeAt(shapeIndex)
	m := shape.Matrix()
	return Piece{
		ShapeIndex: normalizeShapeIndex(shapeIndex),
		Matrix:     m,
		X:          fieldWidth/2 - m.Width()/2,
		Y:          0,
	}
}

// Color returns the color of the piece's shape.
func (p Piece) Color() core.Color {
	return ShapeAt(p.ShapeIndex).Color
}

// Moved returns a copy of the piece shifted by (dx, dy). The matrix is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its matrix turned clockwise.
func (p Piece) Rotated() Piece {
	p.Matrix = p.Matrix.Rotate()
	return p
}

// Cells calls fn with the playfield coordinates of every occupied cell.
func (p Piece) Cells(fn func(x, y int)) {
	for r, row := range p.Matrix {
		for c, on := range row {
			if on {
				fn(p.X+c, p.Y+r)
			}
		}
	}
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	p.Matrix = p.Matrix.Clone()
	return p
}
