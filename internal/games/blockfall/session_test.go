package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func newTestSession(t *testing.T, field *Playfield, shapes ...int) *Session {
	t.Helper()
	s := NewSession(field, NewSequenceSource(shapes...), DefaultRules())
	require.NotNil(t, s)
	return s
}

func TestOPieceFallsAndLocks(t *testing.T) {
	s := newTestSession(t, nil, ShapeO, ShapeT)

	for i := range 18 {
		res := s.Tick(500)
		require.True(t, res.Stepped, "tick %d", i)
		require.False(t, res.Locked, "tick %d", i)
	}
	assert.Equal(t, 18, s.Active().Y)

	res := s.Tick(500)
	assert.True(t, res.Locked)
	assert.Zero(t, res.Lines)
	assert.False(t, res.GameOver)

	snap := s.Snapshot()
	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.Equal(t, FilledCell(core.ColorYellow), snap.Grid[c[1]][c[0]], "cell %v", c)
	}
	assert.Equal(t, "T", snap.Active.Name)
	assert.Equal(t, 0, snap.Active.Y)
	assert.Equal(t, 2, snap.Pieces)

	s.Tick(500)
	assert.Equal(t, 1, s.Active().Y, "the new piece keeps falling on the 20th tick")
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, StateRunning, s.State())
}

func TestFallTimer(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)

	assert.False(t, s.Tick(499).Stepped)
	assert.Equal(t, 0, s.Active().Y)

	assert.True(t, s.Tick(1).Stepped)
	assert.Equal(t, 1, s.Active().Y)

	// a long frame still only moves one row
	assert.True(t, s.Tick(5000).Stepped)
	assert.Equal(t, 2, s.Active().Y)

	// negative durations are ignored
	assert.False(t, s.Tick(-1000).Stepped)
	assert.False(t, s.Tick(499).Stepped)
	assert.Equal(t, 2, s.Active().Y)
}

func TestSoftDropResetsTimer(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)

	s.Tick(400)
	require.True(t, s.Command(SoftDrop))
	assert.Equal(t, 1, s.Active().Y)

	assert.False(t, s.Tick(400).Stepped, "soft drop should restart the fall timer")
	assert.Equal(t, 1, s.Active().Y)

	assert.True(t, s.Tick(100).Stepped)
	assert.Equal(t, 2, s.Active().Y)
}

func TestSoftDropAtFloorDoesNotLock(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)
	for range 18 {
		require.True(t, s.Command(SoftDrop))
	}

	assert.False(t, s.Command(SoftDrop))
	assert.Equal(t, 18, s.Active().Y)
	assert.Zero(t, s.Playfield().FilledCount())
}

func TestHorizontalMovesStopAtWalls(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)
	require.Equal(t, 4, s.Active().X)

	for range 4 {
		require.True(t, s.Command(MoveLeft))
	}
	assert.False(t, s.Command(MoveLeft))
	assert.Equal(t, 0, s.Active().X)

	for range 8 {
		require.True(t, s.Command(MoveRight))
	}
	assert.False(t, s.Command(MoveRight))
	assert.Equal(t, 8, s.Active().X)
	assert.Zero(t, s.Playfield().FilledCount(), "horizontal moves never lock")
}

func TestHorizontalMoveBlockedByLockedCell(t *testing.T) {
	field := NewPlayfield(10, 20)
	field.Set(3, 1, FilledCell(core.ColorRed))
	s := newTestSession(t, field, ShapeO)

	assert.False(t, s.Command(MoveLeft))
	assert.Equal(t, 4, s.Active().X)
}

func TestRotate(t *testing.T) {
	s := newTestSession(t, nil, ShapeT)

	require.True(t, s.Command(Rotate))
	assert.Equal(t, "#./##/#.", s.Active().Matrix.String())
	assert.Equal(t, 4, s.Active().X, "rotation keeps the anchor")
}

func TestRotateRejectedWhenBlocked(t *testing.T) {
	field := NewPlayfield(10, 20)
	field.Set(3, 2, FilledCell(core.ColorRed)) // inside the vertical I
	s := newTestSession(t, field, ShapeI)

	before := s.Active()
	assert.False(t, s.Command(Rotate))
	assert.Equal(t, before, s.Active())
}

func TestRotateRejectedAtFloor(t *testing.T) {
	s := newTestSession(t, nil, ShapeI)
	for range 19 {
		require.True(t, s.Command(SoftDrop))
	}

	assert.False(t, s.Command(Rotate), "a vertical I would poke through the floor")
	assert.Equal(t, "####", s.Active().Matrix.String())
}

func TestRotateHalfTurn(t *testing.T) {
	s := newTestSession(t, nil, ShapeT)
	require.True(t, s.Command(Rotate))
	require.True(t, s.Command(Rotate))
	assert.Equal(t, "###/.#.", s.Active().Matrix.String())
}

func TestRotateAboveTopIsAllowed(t *testing.T) {
	s := newTestSession(t, nil, ShapeI)
	require.True(t, s.Command(Rotate))

	// lift the vertical I so its top three cells sit above row 0
	lifted := s.active.Moved(0, -3)
	assert.True(t, s.Playfield().IsValid(lifted))
	assert.True(t, s.try(lifted))
	assert.Equal(t, -3, s.Active().Y)
}

// dropVerticalI rotates the spawned I piece, slides it to column 0 and lets
// gravity lock it.
func dropVerticalI(t *testing.T, s *Session) TickResult {
	t.Helper()
	require.True(t, s.Command(Rotate))
	for s.Command(MoveLeft) {
		// slide until the wall stops it
	}
	require.Equal(t, 0, s.Active().X)
	for s.Command(SoftDrop) {
		// drop until something stops it
	}
	res := s.Tick(500)
	require.True(t, res.Locked)
	return res
}

func TestSingleLineClearScores100(t *testing.T) {
	field := NewPlayfield(10, 20)
	fillRow(field, 19, 0)
	field.Set(9, 5, FilledCell(core.ColorRed))
	s := newTestSession(t, field, ShapeI, ShapeO)

	res := dropVerticalI(t, s)

	assert.Equal(t, 1, res.Lines)
	assert.Equal(t, 100, res.Points)
	assert.Equal(t, 100, s.Score())
	assert.Equal(t, 1, s.Lines())

	snap := s.Snapshot()
	// the rest of the I shifted down into the cleared row
	for y := 17; y < 20; y++ {
		assert.Equal(t, FilledCell(core.ColorCyan), snap.Grid[y][0], "row %d", y)
	}
	for x := 1; x < 10; x++ {
		assert.False(t, snap.Grid[19][x].Filled, "column %d of the bottom row", x)
	}
	assert.Equal(t, FilledCell(core.ColorRed), snap.Grid[6][9], "marker shifts down one row")
	assert.False(t, snap.Grid[5][9].Filled)
}

func TestMultiLineClears(t *testing.T) {
	tests := []struct {
		rows   int
		points int
	}{
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tc := range tests {
		field := NewPlayfield(10, 20)
		for y := 20 - tc.rows; y < 20; y++ {
			fillRow(field, y, 0)
		}
		s := newTestSession(t, field, ShapeI)

		res := dropVerticalI(t, s)

		assert.Equal(t, tc.rows, res.Lines)
		assert.Equal(t, tc.points, s.Score())
		assert.Equal(t, 4-tc.rows, s.Playfield().FilledCount(), "leftover I cells for %d rows", tc.rows)
	}
}

func TestGameOverWhenFirstSpawnBlocked(t *testing.T) {
	field := NewPlayfield(10, 20)
	field.Set(4, 0, FilledCell(core.ColorRed))

	s := newTestSession(t, field, ShapeO)

	assert.True(t, s.GameOver())
	assert.Equal(t, StateGameOver, s.State())
	assert.True(t, s.Snapshot().GameOver)
}

func TestGameOverAfterLock(t *testing.T) {
	field := NewPlayfield(10, 20)
	field.Set(4, 2, FilledCell(core.ColorRed))
	s := newTestSession(t, field, ShapeO, ShapeO)

	res := s.Tick(500)

	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.True(t, s.GameOver())
}

func TestGameOverIsTerminal(t *testing.T) {
	field := NewPlayfield(10, 20)
	field.Set(5, 1, FilledCell(core.ColorRed))
	s := newTestSession(t, field, ShapeO)
	require.True(t, s.GameOver())

	before := s.Snapshot()
	for _, cmd := range []Command{MoveLeft, MoveRight, SoftDrop, Rotate} {
		assert.False(t, s.Command(cmd), cmd.String())
	}
	assert.Equal(t, TickResult{}, s.Tick(10_000))
	assert.Equal(t, before, s.Snapshot())
}

func TestUnknownCommandIsRejected(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)
	before := s.Active()
	assert.False(t, s.Command(Command(42)))
	assert.Equal(t, before, s.Active())
	assert.Equal(t, "Unknown", Command(42).String())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSession(t, nil, ShapeO)
	snap := s.Snapshot()

	snap.Grid[0][0] = FilledCell(core.ColorRed)
	snap.Active.Matrix[0][0] = false

	again := s.Snapshot()
	assert.False(t, again.Grid[0][0].Filled)
	assert.True(t, again.Active.Matrix[0][0])
	assert.Equal(t, 10, again.Width)
	assert.Equal(t, 20, again.Height)
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(nil, nil, Rules{})
	snap := s.Snapshot()

	assert.Equal(t, DefaultWidth, snap.Width)
	assert.Equal(t, DefaultHeight, snap.Height)
	assert.False(t, snap.GameOver)
	assert.False(t, s.Tick(DefaultFallIntervalMs-1).Stepped)
	assert.True(t, s.Tick(1).Stepped)
}

func TestCustomFallInterval(t *testing.T) {
	s := NewSession(nil, NewSequenceSource(ShapeO), Rules{FallIntervalMs: 100})
	assert.True(t, s.Tick(100).Stepped)
	assert.Equal(t, 1, s.Active().Y)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSession(nil, NewRandSource(12345), DefaultRules())
		cmds := []Command{MoveLeft, Rotate, MoveRight, MoveRight, SoftDrop}
		for i := range 3000 {
			s.Command(cmds[i%len(cmds)])
			s.Tick(100)
		}
		return s.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(1, 8, -1)
	assert.Equal(t, []int{1, 1, 6, 1}, []int{src.Next(7), src.Next(7), src.Next(7), src.Next(7)})
	assert.Equal(t, 0, NewSequenceSource().Next(7))
}

func TestRandSourceInRange(t *testing.T) {
	src := NewRandSource(99)
	seen := make(map[int]bool)
	for range 1000 {
		v := src.Next(ShapeCount())
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, ShapeCount())
		seen[v] = true
	}
	assert.Len(t, seen, ShapeCount())
	assert.Equal(t, 0, src.Next(0))
}
