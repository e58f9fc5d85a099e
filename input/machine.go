package input

import (
	"github.com/gdamore/tcell/v2"
)

// maxCount caps the repeat prefix
const maxCount = 999

// Machine parses tcell events into Intents
// It tracks the numeric repeat prefix and the mouse drag anchor
type Machine struct {
	keyTable *KeyTable
	mousePan bool

	count int

	dragging     bool
	dragX, dragY int

	// pixelsPerRow converts row deltas to display pixels
	pixelsPerRow int
}

// NewMachine creates a parser over keys
// pixelsPerRow is the number of display pixels one terminal row covers
func NewMachine(keys *KeyTable, mousePan bool, pixelsPerRow int) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{
		keyTable:     keys,
		mousePan:     mousePan,
		pixelsPerRow: max(pixelsPerRow, 1),
	}
}

// PendingCount returns the repeat prefix typed so far, 0 when none
func (m *Machine) PendingCount() int {
	return m.count
}

// Reset clears the repeat prefix and any drag in progress
func (m *Machine) Reset() {
	m.count = 0
	m.dragging = false
}

// Process converts one event, returning nil when the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		m.Reset()
		return &Intent{Type: IntentResize, Count: 1, DX: w, DY: h}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// 1-9 start a count, 0 only continues one so it stays bindable
		if (r >= '1' && r <= '9') || (r == '0' && m.count > 0) {
			m.count = min(m.count*10+int(r-'0'), maxCount)
			return nil
		}
	}

	it, ok := m.keyTable.Lookup(ev)
	if !ok || it == IntentNone {
		m.count = 0
		return nil
	}
	return m.build(it)
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		return &Intent{Type: IntentZoomIn, Count: 1, X: x, Y: y}
	case buttons&tcell.WheelDown != 0:
		return &Intent{Type: IntentZoomOut, Count: 1, X: x, Y: y}
	}

	if !m.mousePan {
		return nil
	}

	if buttons&tcell.Button1 == 0 {
		m.dragging = false
		return nil
	}

	if !m.dragging {
		m.dragging = true
		m.dragX, m.dragY = x, y
		return nil
	}

	// Dragging the map left moves the window right
	dx, dy := m.dragX-x, (m.dragY-y)*m.pixelsPerRow
	m.dragX, m.dragY = x, y
	if dx == 0 && dy == 0 {
		return nil
	}
	return &Intent{Type: IntentMouseDrag, Count: 1, DX: dx, DY: dy, X: x, Y: y}
}

func (m *Machine) build(it IntentType) *Intent {
	count := max(m.count, 1)
	m.count = 0
	return &Intent{Type: it, Count: count}
}
