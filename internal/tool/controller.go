package tool

import (
	"go.uber.org/zap"

	"SketchBoard/internal/lasso"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/stroke"
)

type Config struct {
	Tool  Kind
	Brush stroke.Options
	// ClearSelectOnEnd wipes the select preview when the button is released.
	ClearSelectOnEnd bool
}

func DefaultConfig() Config {
	return Config{Tool: Draw, Brush: stroke.DefaultOptions()}
}

// Controller turns begin/update/end calls into surface operations for the
// selected tool. It is not safe for concurrent use; hosts deliver pointer
// events from a single goroutine.
type Controller struct {
	surface render.Surface
	cfg     Config
	tool    Kind
	session Session
	lasso   *lasso.Accumulator
	seq     *state.Sequencer
	log     *zap.Logger
}

func NewController(surface render.Surface, cfg Config, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		surface: surface,
		cfg:     cfg,
		tool:    cfg.Tool,
		lasso:   lasso.NewAccumulator(log.Named("lasso")),
		seq:     state.NewSequencer(),
		log:     log,
	}
}

// SetTool selects the tool for the next gesture. A running gesture keeps
// the tool it started with.
func (c *Controller) SetTool(k Kind) {
	c.tool = k
	c.log.Debug("tool selected", zap.Stringer("tool", k))
}

func (c *Controller) Tool() Kind { return c.tool }

// Gesture returns a snapshot of the current gesture state.
func (c *Controller) Gesture() Session { return c.session }

// Region returns the persistent lasso selection.
func (c *Controller) Region() lasso.Region { return c.lasso.Region() }

// Begin starts a gesture at p. A press that arrives while a gesture is still
// running ends that gesture first.
func (c *Controller) Begin(p state.Point) {
	if c.session.Active() {
		c.log.Debug("press during gesture, ending it", zap.String("gesture", c.session.Stamp().ID))
		c.End()
	}
	c.session.Begin(c.tool, p, c.seq.Next())
	st := c.session.Stamp()
	c.log.Debug("gesture begin",
		zap.String("gesture", st.ID),
		zap.Uint64("seq", st.Seq),
		zap.Stringer("tool", c.session.Tool()),
	)
}

// Update feeds a move sample to the running gesture and repaints its preview.
func (c *Controller) Update(p state.Point) {
	if !c.session.Update(p) {
		return
	}
	switch c.session.Tool() {
	case Draw:
		path := stroke.ToSmoothPath(stroke.Outline(c.session.Samples(), c.cfg.Brush))
		if !path.Empty() {
			c.surface.FillPolygon(path, state.Accent)
		}
	case Rectangle:
		c.surface.FillRect(c.session.Rect(), state.Accent)
	case Select:
		c.redraw()
		c.surface.StrokeRect(c.session.Rect(), state.Accent)
		c.surface.FillRect(c.session.Rect(), state.AccentTranslucent)
	case Lasso:
		c.redraw()
		c.surface.StrokePolygon(state.PolygonPath(c.session.Lasso(), false), state.Accent)
	}
}

// End finishes the running gesture. Lasso rings are merged into the
// selection and the surface is repainted with the result.
func (c *Controller) End() {
	st := c.session.Stamp()
	tool, ring, ok := c.session.End()
	if !ok {
		return
	}
	switch tool {
	case Select:
		if c.cfg.ClearSelectOnEnd {
			c.redraw()
		}
	case Lasso:
		c.lasso.Commit(ring)
		c.redraw()
	}
	c.log.Debug("gesture end",
		zap.String("gesture", st.ID),
		zap.Uint64("seq", st.Seq),
		zap.Stringer("tool", tool),
	)
}

// redraw clears the surface and repaints the selection, if any.
func (c *Controller) redraw() {
	c.surface.Clear()
	if r := c.lasso.Region(); !r.Empty() {
		c.surface.FillPolygon(r.Path(), state.AccentTranslucent)
	}
}
