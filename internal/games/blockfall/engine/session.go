package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// State is a phase of the session state machine.
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateFalling
	StateLocking
	StateClearing
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config sets the board geometry and rules of a session.
type Config struct {
	Columns    int // playfield width
	Rows       int // visible playfield height
	BufferRows int // hidden rows above the visible area where pieces spawn
	Rules      Rules
}

// DefaultConfig returns the canonical 10x20 board with two buffer rows.
func DefaultConfig() Config {
	return Config{
		Columns:    10,
		Rows:       20,
		BufferRows: 2,
		Rules:      DefaultRules(),
	}
}

// Option configures a Session.
type Option func(*Session)

// WithRandomizer sets the source of shape variants.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.randomizer = r
	}
}

// WithSeed uses a uniform randomizer seeded with seed.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.randomizer = NewUniformRandomizer(seed)
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.baseLogger = l
		}
	}
}

// Session is one game: the grid, the falling and next shapes, score and
// level, and the state machine that sequences them.
//
// A Session is driven from a single goroutine: the owner calls
// AdvanceOneStep on every tick and forwards input intents between ticks.
// Every intent runs to completion before it returns.
type Session struct {
	cfg        Config
	grid       *Grid
	ctrl       *Controller
	randomizer Randomizer
	events     EventQueue
	baseLogger *log.Logger
	logger     *log.Logger

	id      string
	state   State
	score   int
	level   int
	lines   int
	pieces  int
	tick    time.Duration
	next    *Shape
	blockID BlockID
}

// NewSession creates an idle session. Call BeginGame to start playing.
func NewSession(cfg Config, opts ...Option) *Session {
	grid := NewGrid(cfg.Columns, cfg.Rows+cfg.BufferRows)
	s := &Session{
		cfg:        cfg,
		grid:       grid,
		ctrl:       NewController(grid),
		baseLogger: log.New(io.Discard),
		state:      StateIdle,
		level:      1,
		tick:       cfg.Rules.TickInterval(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.randomizer == nil {
		s.randomizer = NewUniformRandomizer(time.Now().UnixNano())
	}
	s.logger = s.baseLogger
	return s
}

// BeginGame resets the session and spawns the first shape.
func (s *Session) BeginGame() {
	s.id = uuid.NewString()
	s.logger = s.baseLogger.With("session", s.id)

	s.grid.Clear()
	s.ctrl.Reset()
	s.events.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.pieces = 0
	s.blockID = 0
	s.next = nil
	s.tick = s.cfg.Rules.TickInterval(1)

	s.logger.Debug("game begin", "columns", s.cfg.Columns, "rows", s.cfg.Rows, "tick", s.tick)
	s.setState(StateSpawning)
	s.events.Push(Event{
		Type:         EventGameDidBegin,
		Score:        s.score,
		Level:        s.level,
		TickInterval: s.tick,
	})
	s.spawn()
}

// MoveShapeLeft shifts the falling shape one column left.
// Returns false if there is nothing to move or the move is blocked.
func (s *Session) MoveShapeLeft() bool {
	if !s.active() || !s.ctrl.MoveLeft() {
		return false
	}
	s.emitMove()
	return true
}

// MoveShapeRight shifts the falling shape one column right.
func (s *Session) MoveShapeRight() bool {
	if !s.active() || !s.ctrl.MoveRight() {
		return false
	}
	s.emitMove()
	return true
}

// RotateShape turns the falling shape clockwise.
func (s *Session) RotateShape() bool {
	return s.rotate(Clockwise)
}

// RotateShapeCounterClockwise turns the falling shape counter-clockwise.
func (s *Session) RotateShapeCounterClockwise() bool {
	return s.rotate(CounterClockwise)
}

func (s *Session) rotate(dir Direction) bool {
	if !s.active() || !s.ctrl.Rotate(dir) {
		return false
	}
	s.emitMove()
	return true
}

// DropShape hard-drops the falling shape to the floor and locks it at once.
func (s *Session) DropShape() bool {
	if !s.active() {
		return false
	}
	rows := s.ctrl.HardDrop()
	s.score += rows * s.cfg.Rules.HardDropPerCell
	s.events.Push(Event{
		Type:     EventShapeDidDrop,
		Shape:    s.ctrl.Shape().Clone(),
		DropRows: rows,
		Score:    s.score,
	})
	s.setState(StateLocking)
	s.land(s.ctrl.Lock())
	return true
}

// AdvanceOneStep is the gravity tick: the falling shape moves down one
// row, or locks if it cannot.
func (s *Session) AdvanceOneStep() bool {
	if !s.active() {
		return false
	}
	shape := s.ctrl.Shape()
	if !s.ctrl.SoftFall() {
		s.emitMove()
		return true
	}
	s.setState(StateLocking)
	s.land(shape)
	return true
}

// RemoveCompletedLines clears every full row currently in the grid and
// scores it. The lock sequence already does this; the intent exists for
// callers that edit the grid directly.
func (s *Session) RemoveCompletedLines() LineClear {
	if s.state == StateIdle || s.state == StateGameOver {
		return LineClear{}
	}
	rows := FindCompletedLines(s.grid)
	if len(rows) == 0 {
		return LineClear{}
	}
	lc := ClearAndCollapse(s.grid, rows)
	s.emitLevelUps(s.applyClear(lc))
	return lc
}

// RemoveAllBlocks empties the grid and returns the removed blocks.
// It is allowed after game over for cleanup animations.
func (s *Session) RemoveAllBlocks() []*Block {
	return s.grid.Clear()
}

// land runs the lock sequence for a shape already written to the grid:
// resolve every completed line, report, then spawn the next shape.
func (s *Session) land(locked *Shape) {
	s.pieces++
	landed := locked.Clone()

	s.setState(StateClearing)
	var clears []LineClear
	var gained []int
	for {
		rows := FindCompletedLines(s.grid)
		if len(rows) == 0 {
			break
		}
		lc := ClearAndCollapse(s.grid, rows)
		gained = append(gained, s.applyClear(lc)...)
		clears = append(clears, lc)
	}

	s.events.Push(Event{
		Type:   EventShapeDidLand,
		Shape:  landed,
		Clears: clears,
		Score:  s.score,
		Level:  s.level,
		Lines:  s.lines,
	})
	s.logger.Debug("shape landed", "variant", landed.Variant(), "cleared", len(clears), "score", s.score)
	s.emitLevelUps(gained)

	s.setState(StateSpawning)
	s.spawn()
}

// applyClear scores a clear and raises the level when the line threshold is
// crossed. Returns every level reached.
func (s *Session) applyClear(lc LineClear) []int {
	n := lc.Lines()
	if n == 0 {
		return nil
	}
	s.score += s.cfg.Rules.LineScore(n, s.level)
	s.lines += n

	var gained []int
	target := max(s.level, s.cfg.Rules.LevelFor(s.lines))
	for s.level < target {
		s.level++
		gained = append(gained, s.level)
	}
	if len(gained) > 0 {
		s.tick = s.cfg.Rules.TickInterval(s.level)
	}
	s.logger.Debug("lines cleared", "rows", lc.Rows, "lines", s.lines, "score", s.score)
	return gained
}

func (s *Session) emitLevelUps(levels []int) {
	for _, lvl := range levels {
		s.logger.Debug("level up", "level", lvl, "tick", s.cfg.Rules.TickInterval(lvl))
		s.events.Push(Event{
			Type:         EventGameDidLevelUp,
			Level:        lvl,
			TickInterval: s.cfg.Rules.TickInterval(lvl),
			Score:        s.score,
		})
	}
}

// spawn promotes the preview shape to falling and generates a new preview.
// A blocked spawn position ends the game without entering the falling state.
func (s *Session) spawn() {
	if s.next == nil {
		s.next = s.generate()
	}
	falling := s.next
	s.next = s.generate()
	falling.place(0, s.spawnAnchor(falling.variant))

	if !s.ctrl.Place(falling) {
		s.endGame()
		return
	}
	s.setState(StateFalling)
	s.events.Push(Event{
		Type:  EventShapeDidSpawn,
		Shape: falling.Clone(),
		Next:  s.next.Clone(),
	})
}

func (s *Session) generate() *Shape {
	v := s.randomizer.Next()
	return newShape(v, s.spawnAnchor(v), &s.blockID)
}

// spawnAnchor centers the variant's box horizontally and puts the lowest
// row of its spawn pattern on the last buffer row, so the first gravity
// step brings it into view. Without buffer rows it spawns on row 0.
func (s *Session) spawnAnchor(v Variant) Point {
	def := v.Def()
	lowest := 0
	for _, o := range def.States[0] {
		lowest = max(lowest, o.Row)
	}
	return Point{
		Col: (s.cfg.Columns - def.Size) / 2,
		Row: max(0, s.cfg.BufferRows-1-lowest),
	}
}

func (s *Session) endGame() {
	s.ctrl.Reset()
	s.setState(StateGameOver)
	s.logger.Debug("game over", "score", s.score, "level", s.level, "lines", s.lines)
	s.events.Push(Event{
		Type:  EventGameDidEnd,
		Score: s.score,
		Level: s.level,
		Lines: s.lines,
	})
}

func (s *Session) emitMove() {
	s.events.Push(Event{
		Type:  EventShapeDidMove,
		Shape: s.ctrl.Shape().Clone(),
	})
}

func (s *Session) active() bool {
	return s.state == StateFalling && s.ctrl.Shape() != nil
}

func (s *Session) setState(st State) {
	if s.state == st {
		return
	}
	s.logger.Debug("state", "from", s.state, "to", st)
	s.state = st
}

// Events drains and returns every notification emitted since the last call.
func (s *Session) Events() []Event {
	return s.events.Drain()
}

// ID returns the current game's identifier, empty before BeginGame.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state machine phase.
func (s *Session) State() State {
	return s.state
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.state == StateGameOver
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns how many shapes have locked this game.
func (s *Session) Pieces() int {
	return s.pieces
}

// TickInterval returns the current gravity interval.
func (s *Session) TickInterval() time.Duration {
	return s.tick
}

// FallingShape returns the falling shape, or nil between lock and spawn
// and after game over. Callers must not mutate it.
func (s *Session) FallingShape() *Shape {
	return s.ctrl.Shape()
}

// NextShape returns the preview shape. Callers must not mutate it.
func (s *Session) NextShape() *Shape {
	return s.next
}

// GhostRow returns the anchor row the falling shape would hard-drop to.
func (s *Session) GhostRow() int {
	return s.ctrl.GhostRow()
}

// BufferBlocks returns how many locked blocks sit in the buffer rows above
// the visible area.
func (s *Session) BufferBlocks() int {
	n := 0
	for row := 0; row < s.cfg.BufferRows; row++ {
		for col := 0; col < s.grid.Columns(); col++ {
			if s.grid.Occupied(col, row) {
				n++
			}
		}
	}
	return n
}

// Grid returns the playfield. Writes through it bypass the rules and are
// meant for setup in tools and tests.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}
