package input

// IntentType discriminates overview actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit      // q, Esc, Ctrl+C
	IntentResize    // Terminal resize event
	IntentPrintRect // p, writes the window bounds to the log
	IntentNextView  // Tab, moves focus between split views

	// Window panning, one PanStep per count
	IntentPanLeft  // h, Left
	IntentPanRight // l, Right
	IntentPanUp    // k, Up
	IntentPanDown  // j, Down

	// Zoom
	IntentZoomIn  // +, =, wheel up
	IntentZoomOut // -, wheel down

	// View modes
	IntentToggleFollow  // f
	IntentToggleFullMap // 0
	IntentToggleRotate  // r

	// Simulated player
	IntentMoveForward    // w
	IntentMoveBack       // s
	IntentTurnLeft       // a
	IntentTurnRight      // d
	IntentToggleAutoWalk // x

	// Mouse
	IntentMouseDrag // Left-button drag
)

// Intent is one parsed user action
type Intent struct {
	Type IntentType

	// Count is the repeat prefix, at least 1
	Count int

	// DX, DY carry the drag delta in display pixels, or the new size for IntentResize
	DX, DY int

	// X, Y is the screen cell the mouse event happened at
	X, Y int
}
