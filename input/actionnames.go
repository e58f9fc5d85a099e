package input

import "sort"

// actionRegistry maps canonical action names used by the [keys] config section to intents
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":       IntentQuit,
	"print_rect": IntentPrintRect,
	"next_view":  IntentNextView,

	"pan_left":  IntentPanLeft,
	"pan_right": IntentPanRight,
	"pan_up":    IntentPanUp,
	"pan_down":  IntentPanDown,

	"zoom_in":  IntentZoomIn,
	"zoom_out": IntentZoomOut,

	"toggle_follow":   IntentToggleFollow,
	"toggle_full_map": IntentToggleFullMap,
	"toggle_rotate":   IntentToggleRotate,

	"move_forward":     IntentMoveForward,
	"move_back":        IntentMoveBack,
	"turn_left":        IntentTurnLeft,
	"turn_right":       IntentTurnRight,
	"toggle_auto_walk": IntentToggleAutoWalk,
}

var intentNames = func() map[IntentType]string {
	m := make(map[IntentType]string, len(actionRegistry))
	for name, it := range actionRegistry {
		m[it] = name
	}
	m[IntentResize] = "resize"
	m[IntentMouseDrag] = "mouse_drag"
	return m
}()

// ActionIntent resolves a config action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
