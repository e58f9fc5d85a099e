package parameter

import "github.com/lixenwraith/vi-automap/vmath"

// Automap zoom configuration
// Scale is Q16.16 display pixels per map unit, larger values zoom in
const (
	// DefaultScale is the zoom level an overview session opens at
	DefaultScale = vmath.FracUnit / 8

	// MinScale is the furthest zoom out, further limited by the level fit scale
	MinScale = vmath.FracUnit / 256

	// MaxScale is the closest zoom in
	MaxScale = 4 * vmath.FracUnit

	// ZoomStep multiplies the scale on each zoom-in and divides it on zoom-out (1.25)
	ZoomStep = vmath.FracUnit + vmath.FracUnit/4
)

// Automap panning configuration
const (
	// PanStep is the keyboard pan per intent in display pixels
	PanStep = 4

	// MousePanEnabled lets mouse drags move the window
	MousePanEnabled = true
)

// Automap rotation
const (
	// RotateEnabled starts sessions with heading-relative panning
	RotateEnabled = false
)
