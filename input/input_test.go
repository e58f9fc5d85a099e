package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	m := NewMachine(nil, true, 2)

	tests := []struct {
		ev   tcell.Event
		want IntentType
	}{
		{runeKey('h'), IntentPanLeft},
		{runeKey('+'), IntentZoomIn},
		{runeKey('0'), IntentToggleFullMap},
		{runeKey('f'), IntentToggleFollow},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentPanLeft},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone), IntentQuit},
	}
	for _, tt := range tests {
		got := m.Process(tt.ev)
		require.NotNil(t, got, "%v", tt.want)
		assert.Equal(t, tt.want, got.Type)
		assert.Equal(t, 1, got.Count)
	}

	assert.Nil(t, m.Process(runeKey('Z')), "unbound rune")
}

func TestCountPrefix(t *testing.T) {
	m := NewMachine(nil, true, 2)

	assert.Nil(t, m.Process(runeKey('1')))
	assert.Nil(t, m.Process(runeKey('0')))
	assert.Equal(t, 10, m.PendingCount())

	got := m.Process(runeKey('l'))
	require.NotNil(t, got)
	assert.Equal(t, IntentPanRight, got.Type)
	assert.Equal(t, 10, got.Count)
	assert.Zero(t, m.PendingCount())

	// An unbound key drops the count
	m.Process(runeKey('5'))
	assert.Nil(t, m.Process(runeKey('Z')))
	assert.Zero(t, m.PendingCount())

	for range 6 {
		m.Process(runeKey('9'))
	}
	assert.Equal(t, maxCount, m.PendingCount())
}

func TestMouseDrag(t *testing.T) {
	m := NewMachine(nil, true, 2)

	assert.Nil(t, m.Process(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone)), "press anchors the drag")

	got := m.Process(tcell.NewEventMouse(7, 12, tcell.Button1, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentMouseDrag, got.Type)
	assert.Equal(t, 3, got.DX)
	assert.Equal(t, -4, got.DY, "rows convert to pixels")

	assert.Nil(t, m.Process(tcell.NewEventMouse(7, 12, tcell.Button1, tcell.ModNone)), "no motion")
	assert.Nil(t, m.Process(tcell.NewEventMouse(7, 12, tcell.ButtonNone, tcell.ModNone)), "release")
	assert.Nil(t, m.Process(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)), "new press anchors again")
}

func TestMouseDragDisabled(t *testing.T) {
	m := NewMachine(nil, false, 2)
	m.Process(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	assert.Nil(t, m.Process(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)))

	got := m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	require.NotNil(t, got)
	assert.Equal(t, IntentZoomOut, got.Type)
}

func TestResize(t *testing.T) {
	m := NewMachine(nil, true, 2)
	m.Process(runeKey('4'))

	got := m.Process(tcell.NewEventResize(120, 40))
	require.NotNil(t, got)
	assert.Equal(t, IntentResize, got.Type)
	assert.Equal(t, 120, got.DX)
	assert.Equal(t, 40, got.DY)
	assert.Zero(t, m.PendingCount())
}

func TestApplyKeyConfig(t *testing.T) {
	base := DefaultKeyTable()
	kt, err := ApplyKeyConfig(base, map[string][]string{
		"zoom_in":       {"i", "PgUp"},
		"toggle_rotate": {},
		"none":          {"q", "ctrl-c"},
		"quit":          {"escape", "space"},
	})
	require.NoError(t, err)

	it, ok := kt.Lookup(runeKey('i'))
	assert.True(t, ok)
	assert.Equal(t, IntentZoomIn, it)

	_, ok = kt.Lookup(runeKey('+'))
	assert.False(t, ok, "defaults of a rebound action are dropped")

	_, ok = kt.Lookup(runeKey('r'))
	assert.False(t, ok, "empty list unbinds")

	_, ok = kt.Lookup(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	assert.False(t, ok)

	it, ok = kt.Lookup(runeKey(' '))
	assert.True(t, ok)
	assert.Equal(t, IntentQuit, it)

	// Base table is untouched
	it, ok = base.Lookup(runeKey('+'))
	assert.True(t, ok)
	assert.Equal(t, IntentZoomIn, it)
}

func TestApplyKeyConfigErrors(t *testing.T) {
	_, err := ApplyKeyConfig(DefaultKeyTable(), map[string][]string{
		"teleport": {"t"},
		"zoom_in":  {"ab"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "keys.teleport")
	assert.Contains(t, err.Error(), `invalid key: "ab"`)
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "toggle_full_map")

	for _, name := range names {
		it, ok := ActionIntent(name)
		require.True(t, ok)
		assert.Equal(t, name, it.String())
	}
	assert.Equal(t, "mouse_drag", IntentMouseDrag.String())
}
