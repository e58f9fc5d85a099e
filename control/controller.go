// Package control drives an automap.Engine from user intents and player motion
package control

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/vi-automap/automap"
	"github.com/lixenwraith/vi-automap/config"
	"github.com/lixenwraith/vi-automap/input"
	"github.com/lixenwraith/vi-automap/level"
	"github.com/lixenwraith/vi-automap/vmath"
)

var ErrZoomLimit = errors.New("control: zoom limit reached")

// Controller owns one overview window and translates intents into engine calls
// Pans are accumulated between ticks and flushed once per Tick
type Controller struct {
	engine *automap.Engine
	level  *level.Level
	view   config.ViewConfig
	pan    config.PanConfig

	width, height int32

	player  vmath.Point
	heading vmath.Angle

	panKeyboard vmath.Vector
	panMouse    vmath.Vector

	fullMap   bool
	prevScale vmath.Fixed

	out    io.Writer
	logger *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithOutput sets where IntentPrintRect writes the window bounds
func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		c.out = w
	}
}

// New creates a controller with a fresh engine centered on the level spawn
func New(cfg config.Config, lvl *level.Level, width, height int32, logger *slog.Logger, opts ...Option) (*Controller, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Controller{
		level:  lvl,
		view:   cfg.View,
		pan:    cfg.Pan,
		width:  width,
		height: height,
		player: lvl.Spawn,
		out:    io.Discard,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	e, err := automap.New(int32(c.player.X), int32(c.player.Y), width, height, cfg.View.Scale.Fixed(),
		automap.WithLogger(logger), automap.WithRotate(cfg.View.Rotate))
	if err != nil {
		return nil, fmt.Errorf("control: %w", err)
	}
	c.engine = e
	return c, nil
}

// Close releases the engine
func (c *Controller) Close() {
	c.engine.Close()
}

// Engine exposes the engine for rendering
func (c *Controller) Engine() *automap.Engine {
	return c.engine
}

// FullMap reports whether the whole-level view is active
func (c *Controller) FullMap() bool {
	return c.fullMap
}

// Pending returns the pan accumulated since the last Tick in map units
func (c *Controller) Pending() (keyboard, mouse vmath.Vector) {
	return c.panKeyboard, c.panMouse
}

// Apply handles one intent
// Intents unrelated to the overview window are ignored
func (c *Controller) Apply(in input.Intent) error {
	count := int64(max(in.Count, 1))
	step := c.toMap(int64(c.pan.Step) * count)

	switch in.Type {
	case input.IntentPanLeft:
		c.panKeyboard.X -= step
	case input.IntentPanRight:
		c.panKeyboard.X += step
	case input.IntentPanUp:
		c.panKeyboard.Y -= step
	case input.IntentPanDown:
		c.panKeyboard.Y += step

	case input.IntentMouseDrag:
		if c.pan.Mouse {
			c.panMouse = c.panMouse.Add(vmath.Vector{X: c.toMap(int64(in.DX)), Y: c.toMap(int64(in.DY))})
		}

	case input.IntentZoomIn:
		return c.zoom(int(count), true)
	case input.IntentZoomOut:
		return c.zoom(int(count), false)

	case input.IntentToggleFollow:
		c.toggleFollow()
	case input.IntentToggleRotate:
		c.toggleRotate()
	case input.IntentToggleFullMap:
		return c.toggleFullMap()

	case input.IntentPrintRect:
		c.engine.PrintRect(c.out)
	}
	return nil
}

// Tick flushes pending pans and tracks the player
func (c *Controller) Tick(player vmath.Point, heading vmath.Angle) {
	c.player = player
	c.heading = heading
	c.engine.SetHeading(heading)

	kb, ms := c.panKeyboard, c.panMouse
	c.panKeyboard, c.panMouse = vmath.Vector{}, vmath.Vector{}
	c.engine.UpdatePanning(kb.X, kb.Y, ms.X, ms.Y)

	if c.engine.Following() {
		c.follow()
	}
}

// Resize adapts the window to a new display size, refitting the level in full-map view
func (c *Controller) Resize(width, height int32) error {
	scale := c.engine.Scale()
	if c.fullMap {
		scale = automap.FitScale(c.level.Bounds(), width, height)
	}
	if err := c.engine.ActivateNewScale(width, height, scale); err != nil {
		return fmt.Errorf("control: resize: %w", err)
	}
	c.width, c.height = width, height
	if c.fullMap {
		c.centerOn(c.level.Bounds().Center())
	}
	return nil
}

// toMap converts display pixels to map units at the current scale, at least one unit for non-zero input
func (c *Controller) toMap(pixels int64) int64 {
	if pixels == 0 {
		return 0
	}
	units := vmath.DivWide(pixels, c.engine.Scale())
	if units == 0 {
		if pixels < 0 {
			return -1
		}
		return 1
	}
	return units
}

// zoomFloor is the furthest zoom out: the whole level on screen, but not below MinScale
func (c *Controller) zoomFloor() vmath.Fixed {
	fit := automap.FitScale(c.level.Bounds(), c.width, c.height)
	return min(max(fit, c.view.MinScale.Fixed()), c.view.MaxScale.Fixed())
}

func (c *Controller) zoom(count int, in bool) error {
	lo, hi := c.zoomFloor(), c.view.MaxScale.Fixed()
	step := c.view.ZoomStep.Fixed()
	scale := c.engine.Scale()

	next := scale
	for range count {
		if in {
			next = vmath.Mul(next, step)
		} else {
			next = vmath.Div(next, step)
		}
		next = vmath.Clamp(next, lo, hi)
	}

	if next == scale {
		c.logger.Debug("zoom limit", "scale", int32(scale), "in", in)
		return ErrZoomLimit
	}
	return c.engine.ActivateNewScale(c.width, c.height, next)
}

func (c *Controller) toggleFollow() {
	if c.engine.Following() {
		r := c.engine.Bounds()
		c.engine.ChangeWindowLocation(c.engine.Rotate(), r.MinX, r.MinY, r.MaxX, r.MaxY)
		return
	}
	// The engine's player position is stale while not following
	c.follow()
	c.centerOn(c.player)
	c.follow()
}

func (c *Controller) toggleRotate() {
	following := c.engine.Following()
	r := c.engine.Bounds()
	c.engine.ChangeWindowLocation(!c.engine.Rotate(), r.MinX, r.MinY, r.MaxX, r.MaxY)
	if following {
		c.follow()
	}
}

func (c *Controller) follow() {
	c.engine.FollowPlayer(int32(c.player.X), int32(c.player.Y))
}

func (c *Controller) toggleFullMap() error {
	if c.fullMap {
		if err := c.engine.RestoreRect(int32(c.player.X), int32(c.player.Y)); err != nil {
			return fmt.Errorf("control: leave full map: %w", err)
		}
		c.fullMap = false
		// Display may have been resized meanwhile, so rebuild the size around the restored center
		return c.engine.ActivateNewScale(c.width, c.height, c.prevScale)
	}

	c.engine.SaveRect()
	c.prevScale = c.engine.Scale()

	bounds := c.level.Bounds()
	if err := c.engine.ActivateNewScale(c.width, c.height, automap.FitScale(bounds, c.width, c.height)); err != nil {
		return fmt.Errorf("control: enter full map: %w", err)
	}
	c.centerOn(bounds.Center())
	c.fullMap = true
	return nil
}

// centerOn moves the window, size unchanged, so its center is p
func (c *Controller) centerOn(p vmath.Point) {
	r := c.engine.Bounds()
	r = r.Translate(p.Sub(r.Center()))
	c.engine.ChangeWindowLocation(c.engine.Rotate(), r.MinX, r.MinY, r.MaxX, r.MaxY)
}
