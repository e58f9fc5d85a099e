// Package automap maintains the visible map-space window of an overview display.
//
// An Engine maps a rectangle of map coordinates onto a fixed-size pixel area.
// It reacts to resize and zoom (ActivateNewScale), user panning (UpdatePanning),
// player movement (FollowPlayer) and temporary overrides (SaveRect/RestoreRect).
// All arithmetic is integer: map coordinates are int64 and the scale is a
// Q16.16 vmath.Fixed giving display pixels per map unit.
//
// An Engine is owned by one overview session and is not safe for concurrent use.
// Create it with New and release it with Close; calling any method after Close,
// or calling Close twice, is the caller's error and is not checked.
package automap

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lixenwraith/vi-automap/vmath"
)

// Engine is the state of one overview display instance
type Engine struct {
	player vmath.Point
	rect   Rect

	displayWidth  int32
	displayHeight int32
	scale         vmath.Fixed

	rotate    bool
	heading   vmath.Angle
	following bool

	saved    Rect
	hasSaved bool

	logger *slog.Logger
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithLogger routes engine diagnostics to logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRotate starts the engine in player-relative panning mode
func WithRotate(rotate bool) Option {
	return func(e *Engine) {
		e.rotate = rotate
	}
}

// New creates an engine whose window is centered on the player and sized to
// show displayWidth x displayHeight pixels at scale
func New(playerX, playerY, displayWidth, displayHeight int32, scale vmath.Fixed, opts ...Option) (*Engine, error) {
	if err := validate(displayWidth, displayHeight, scale); err != nil {
		return nil, err
	}

	e := &Engine{
		player:        vmath.Point{X: int64(playerX), Y: int64(playerY)},
		displayWidth:  displayWidth,
		displayHeight: displayHeight,
		scale:         scale,
		following:     true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.rect = centered(e.player, worldSize(displayWidth, scale), worldSize(displayHeight, scale))
	e.logger.Debug("automap created", "rect", e.rect, "scale", int32(scale))
	return e, nil
}

// Close releases the engine's resources
func (e *Engine) Close() {
	e.logger.Debug("automap closed", "rect", e.rect)
	e.saved = Rect{}
	e.hasSaved = false
	e.logger = nil
}

// ChangeWindowLocation replaces the window with the given bounds and sets the rotation mode
// Bounds must satisfy max > min on both axes; only debug builds check it
func (e *Engine) ChangeWindowLocation(rotate bool, minX, minY, maxX, maxY int64) {
	assertOrdered(minX, minY, maxX, maxY)
	e.rotate = rotate
	e.rect = Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
	e.following = false
}

// ActivateNewScale resizes the window for a new display size and/or scale, keeping its center
// Invalid arguments return an error and leave the engine unchanged
func (e *Engine) ActivateNewScale(displayWidth, displayHeight int32, scale vmath.Fixed) error {
	if err := validate(displayWidth, displayHeight, scale); err != nil {
		return err
	}

	e.rect = centered(e.rect.Center(), worldSize(displayWidth, scale), worldSize(displayHeight, scale))
	e.displayWidth = displayWidth
	e.displayHeight = displayHeight
	e.scale = scale

	e.logger.Debug("automap rescaled", "rect", e.rect, "scale", int32(scale))
	return nil
}

// UpdatePanning translates the window by the sum of keyboard and mouse deltas
// In rotate mode the net delta is first rotated by the player heading
func (e *Engine) UpdatePanning(panKeyboardX, panKeyboardY, panMouseX, panMouseY int64) {
	pan := vmath.Vector{X: panKeyboardX, Y: panKeyboardY}.Add(vmath.Vector{X: panMouseX, Y: panMouseY})
	if pan.IsZero() {
		return
	}

	if e.rotate {
		pan = pan.Rotate(e.heading)
	}

	e.rect = e.rect.Translate(pan)
	e.following = false
}

// SaveRect snapshots the current window into the single save slot
func (e *Engine) SaveRect() {
	e.saved = e.rect
	e.hasSaved = true
	e.logger.Debug("automap rect saved", "rect", e.rect)
}

// RestoreRect brings back the saved window and records the player position
// Returns ErrNoSavedRect, changing nothing, when no snapshot is held
func (e *Engine) RestoreRect(playerX, playerY int32) error {
	if !e.hasSaved {
		return ErrNoSavedRect
	}

	e.rect = e.saved
	e.player = vmath.Point{X: int64(playerX), Y: int64(playerY)}
	e.hasSaved = false
	e.following = true

	e.logger.Debug("automap rect restored", "rect", e.rect)
	return nil
}

// FollowPlayer moves the window by the player's displacement since the last update
func (e *Engine) FollowPlayer(playerX, playerY int32) {
	p := vmath.Point{X: int64(playerX), Y: int64(playerY)}
	e.rect = e.rect.Translate(p.Sub(e.player))
	e.player = p
	e.following = true
}

// SetHeading records the player heading used to rotate pans in rotate mode
func (e *Engine) SetHeading(heading vmath.Angle) {
	e.heading = heading
}

// Rect returns the window as origin and size
func (e *Engine) Rect() (x, y, width, height int64) {
	return e.rect.MinX, e.rect.MinY, e.rect.Width(), e.rect.Height()
}

// Bounds returns the window as min/max bounds
func (e *Engine) Bounds() Rect {
	return e.rect
}

// PrintRect writes the current window bounds to w
func (e *Engine) PrintRect(w io.Writer) {
	fmt.Fprintln(w, e.rect.String())
}

func (e *Engine) Player() vmath.Point  { return e.player }
func (e *Engine) Scale() vmath.Fixed   { return e.scale }
func (e *Engine) Rotate() bool         { return e.rotate }
func (e *Engine) Heading() vmath.Angle { return e.heading }
func (e *Engine) Following() bool      { return e.following }
func (e *Engine) HasSavedRect() bool   { return e.hasSaved }

// Display returns the stored display size in pixels
func (e *Engine) Display() (width, height int32) {
	return e.displayWidth, e.displayHeight
}

// worldSize converts a pixel extent to map units at scale, never below one unit
func worldSize(pixels int32, scale vmath.Fixed) int64 {
	size := vmath.DivWide(int64(pixels), scale)
	if size < 1 {
		return 1
	}
	return size
}

func validate(displayWidth, displayHeight int32, scale vmath.Fixed) error {
	if displayWidth <= 0 || displayHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDisplay, displayWidth, displayHeight)
	}
	if scale <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidScale, int32(scale))
	}
	return nil
}
