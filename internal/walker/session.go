package walker

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/mazewalk/internal/maze"
	"github.com/san-kum/mazewalk/internal/render"
)

// Session owns the single mutable player for one walk through a maze.
// The core transitions stay pure; the session is the only writer.
type Session struct {
	grid   maze.Grid
	player maze.Player
	opts   render.Options
	sink   Sink
	log    *logrus.Logger
	trace  *Trace
}

// Option configures a session.
type Option func(*Session)

// WithSink attaches a display sink; every applied input pushes a fresh
// frame to it.
func WithSink(s Sink) Option {
	return func(sess *Session) { sess.sink = s }
}

// WithLogger attaches a transition logger.
func WithLogger(log *logrus.Logger) Option {
	return func(sess *Session) { sess.log = log }
}

// WithRenderOptions overrides the frame glyphs.
func WithRenderOptions(opts render.Options) Option {
	return func(sess *Session) { sess.opts = opts }
}

// New places the player at the maze start. ErrNoStart surfaces when the
// top row has no passage; no session is produced in that case.
func New(grid maze.Grid, opts ...Option) (*Session, error) {
	sess := &Session{
		grid:   grid,
		player: maze.NewPlayer(),
		opts:   render.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(sess)
	}
	if sess.log == nil {
		sess.log = logrus.New()
		sess.log.SetOutput(io.Discard)
	}

	start, err := maze.FindStart(grid)
	if err != nil {
		return nil, err
	}
	sess.player.Pos = start
	sess.trace = newTrace(start)

	sess.log.WithFields(logrus.Fields{
		"width":  grid.Width(),
		"height": grid.Height(),
		"start":  start,
	}).Info("session started")

	return sess, nil
}

func (s *Session) Grid() maze.Grid     { return s.grid }
func (s *Session) Player() maze.Player { return s.player }
func (s *Session) Trace() *Trace       { return s.trace }

// Apply handles one input signal. Unrecognized inputs change nothing and
// push no frame; directional inputs run one transition, record it, and
// display the result. The returned player is the state after the input.
func (s *Session) Apply(in Input) maze.Player {
	facing, ok := FacingFor(in)
	if !ok {
		s.log.WithField("input", in).Debug("ignored input")
		return s.player
	}

	before := s.player
	s.player = maze.AttemptStep(s.grid, before, facing)
	s.trace.record(in, before, s.player)

	s.log.WithFields(logrus.Fields{
		"input":   in,
		"pos":     s.player.Pos,
		"facing":  s.player.Facing.String(),
		"blocked": s.player.Pos == before.Pos,
	}).Debug("step")

	s.display()
	return s.player
}

// Reset returns the player to the start cell and clears the trace.
func (s *Session) Reset() {
	start := s.trace.Start()
	s.player = maze.Player{Pos: start, Facing: maze.Up}
	s.trace = newTrace(start)
	s.display()
}

// Frame renders the current state without advancing it.
func (s *Session) Frame() string {
	return render.RenderWith(s.grid, s.player, s.opts)
}

func (s *Session) display() {
	if s.sink != nil {
		s.sink.Display(s.Frame())
	}
}
