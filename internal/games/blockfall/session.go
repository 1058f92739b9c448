package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// DefaultFallIntervalMs is the time between automatic down-steps.
const DefaultFallIntervalMs = 500

// Command is a discrete player instruction.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	Rotate
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case Rotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// State is the session lifecycle state.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Rules holds the tunable timing of a session.
type Rules struct {
	FallIntervalMs int
}

// DefaultRules returns the standard 500 ms fall interval.
func DefaultRules() Rules {
	return Rules{FallIntervalMs: DefaultFallIntervalMs}
}

// TickResult describes what one Tick did.
type TickResult struct {
	Stepped  bool // an automatic down-step was attempted
	Locked   bool // the active piece was locked into the playfield
	Lines    int  // rows cleared by that lock
	Points   int  // score added by that lock
	GameOver bool // the session ended during this tick
}

// Session is the root of all mutable game state: playfield, active piece,
// fall timer, score and game-over flag. It is not safe for concurrent use;
// exactly one caller drives it.
type Session struct {
	field  *Playfield
	source PieceSource
	rules  Rules

	active    Piece
	fallTimer int
	score     int
	lines     int
	pieces    int
	state     State
}

// NewSession starts a session on the given playfield and spawns the first
// piece. A nil playfield means an empty default-sized one. If the first
// spawn is already blocked the session starts in StateGameOver.
func NewSession(field *Playfield, source PieceSource, rules Rules) *Session {
	if field == nil {
		field = NewPlayfield(DefaultWidth, DefaultHeight)
	}
	if source == nil {
		source = NewRandSource(0)
	}
	if rules.FallIntervalMs <= 0 {
		rules.FallIntervalMs = DefaultFallIntervalMs
	}

	s := &Session{
		field:  field,
		source: source,
		rules:  rules,
		state:  StateRunning,
	}
	s.spawn()
	return s
}

// spawn replaces the active piece with a fresh one and ends the session if
// it cannot be placed.
func (s *Session) spawn() {
	s.active = Spawn(s.source.Next(ShapeCount()), s.field.Width())
	s.pieces++
	if !s.field.IsValid(s.active) {
		s.state = StateGameOver
	}
}

// Command applies a player command. It reports whether the command changed
// the active piece; blocked moves and rotations are silently rejected.
func (s *Session) Command(cmd Command) bool {
	if s.state != StateRunning {
		return false
	}

	switch cmd {
	case MoveLeft:
		return s.try(s.active.Moved(-1, 0))
	case MoveRight:
		return s.try(s.active.Moved(1, 0))
	case SoftDrop:
		if !s.try(s.active.Moved(0, 1)) {
			return false
		}
		s.fallTimer = 0
		return true
	case Rotate:
		return s.try(s.active.Rotated())
	default:
		return false
	}
}

// try commits the candidate placement if the playfield accepts it.
func (s *Session) try(candidate Piece) bool {
	if !s.field.IsValid(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// Tick advances the fall timer. Negative durations count as zero. When the
// timer reaches the fall interval it resets and the piece steps down once;
// a blocked step locks the piece, clears rows, scores and spawns the next.
func (s *Session) Tick(elapsedMs int) TickResult {
	var res TickResult
	if s.state != StateRunning {
		return res
	}

	s.fallTimer += max(0, elapsedMs)
	if s.fallTimer < s.rules.FallIntervalMs {
		return res
	}
	s.fallTimer = 0
	res.Stepped = true

	if s.try(s.active.Moved(0, 1)) {
		return res
	}

	s.field.Lock(s.active)
	res.Locked = true
	res.Lines = s.field.ClearFullRows()
	res.Points = ScoreDelta(res.Lines)
	s.lines += res.Lines
	s.score += res.Points

	s.spawn()
	res.GameOver = s.state == StateGameOver
	return res
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.state == StateGameOver }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// Pieces returns the number of pieces spawned, including the active one.
func (s *Session) Pieces() int { return s.pieces }

// Active returns a copy of the active piece.
func (s *Session) Active() Piece { return s.active.Clone() }

// Playfield returns the session's playfield. Callers must not mutate it
// while the session is being driven.
func (s *Session) Playfield() *Playfield { return s.field }

// ActivePiece is the read-only view of the falling piece.
type ActivePiece struct {
	ShapeIndex int
	Name       string
	Matrix     Matrix
	X, Y       int
	Color      core.Color
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Width    int
	Height   int
	Grid     [][]Cell // [y][x]
	Active   ActivePiece
	Score    int
	Lines    int
	Pieces   int // pieces spawned, including the active one
	State    State
	GameOver bool
}

// Snapshot returns a deep copy of the session state. It has no side effects.
func (s *Session) Snapshot() Snapshot {
	shape := ShapeAt(s.active.ShapeIndex)
	return Snapshot{
		Width:  s.field.Width(),
		Height: s.field.Height(),
		Grid:   s.field.Rows(),
		Active: ActivePiece{
			ShapeIndex: s.active.ShapeIndex,
			Name:       shape.Name,
			Matrix:     s.active.Matrix.Clone(),
			X:          s.active.X,
			Y:          s.active.Y,
			Color:      shape.Color,
		},
		Score:    s.score,
		Lines:    s.lines,
		Pieces:   s.pieces,
		State:    s.state,
		GameOver: s.state == StateGameOver,
	}
}
