package automap

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-automap/vmath"
)

func newEngine(t *testing.T, px, py, w, h int32, scale vmath.Fixed) *Engine {
	t.Helper()
	e, err := New(px, py, w, h, scale)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func rectOf(e *Engine) [4]int64 {
	x, y, w, h := e.Rect()
	return [4]int64{x, y, w, h}
}

func TestScenario(t *testing.T) {
	e := newEngine(t, 1000, 1000, 320, 200, vmath.FracUnit)
	assert.Equal(t, [4]int64{840, 900, 320, 200}, rectOf(e))

	require.NoError(t, e.ActivateNewScale(160, 100, vmath.FracUnit))
	assert.Equal(t, [4]int64{920, 950, 160, 100}, rectOf(e))
	assert.Equal(t, vmath.Point{X: 1000, Y: 1000}, e.Bounds().Center())

	e.UpdatePanning(10, 0, 0, 5)
	assert.Equal(t, [4]int64{930, 955, 160, 100}, rectOf(e))
}

func TestNewSizing(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int32
		scale        vmath.Fixed
		wantW, wantH int64
	}{
		{"unit scale", 320, 200, vmath.FracUnit, 320, 200},
		{"zoomed in", 320, 200, vmath.FromInt(2), 160, 100},
		{"zoomed out", 320, 200, vmath.Half, 640, 400},
		{"third", 320, 200, vmath.FromRatio(1, 3), 960, 600},
		{"odd size", 321, 201, vmath.FracUnit, 321, 201},
		{"floored at one unit", 1, 1, vmath.FromInt(1000), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, 50, -50, tt.w, tt.h, tt.scale)
			r := e.Bounds()
			assert.Equal(t, tt.wantW, r.Width())
			assert.Equal(t, tt.wantH, r.Height())
			c := r.Center()
			assert.InDelta(t, 50, c.X, 1)
			assert.InDelta(t, -50, c.Y, 1)

			dw, dh := e.Display()
			assert.Equal(t, tt.w, dw)
			assert.Equal(t, tt.h, dh)
			assert.Equal(t, tt.scale, e.Scale())
		})
	}
}

func TestNewInitialState(t *testing.T) {
	e := newEngine(t, 7, 9, 100, 100, vmath.FracUnit)
	assert.False(t, e.HasSavedRect())
	assert.True(t, e.Following())
	assert.False(t, e.Rotate())
	assert.Equal(t, vmath.Point{X: 7, Y: 9}, e.Player())

	r, err := New(0, 0, 10, 10, vmath.FracUnit, WithRotate(true))
	require.NoError(t, err)
	assert.True(t, r.Rotate())
}

func TestNewInvalid(t *testing.T) {
	_, err := New(0, 0, 320, 200, 0)
	assert.ErrorIs(t, err, ErrInvalidScale)

	_, err = New(0, 0, 320, 200, -vmath.FracUnit)
	assert.ErrorIs(t, err, ErrInvalidScale)

	_, err = New(0, 0, 0, 200, vmath.FracUnit)
	assert.ErrorIs(t, err, ErrInvalidDisplay)

	_, err = New(0, 0, 320, -1, vmath.FracUnit)
	assert.ErrorIs(t, err, ErrInvalidDisplay)
}

func TestActivateNewScaleKeepsCenter(t *testing.T) {
	scales := []vmath.Fixed{
		vmath.FracUnit,
		vmath.Half,
		vmath.FromInt(3),
		vmath.FromRatio(2, 3),
		vmath.FromRatio(7, 5),
	}
	for _, s1 := range scales {
		for _, s2 := range scales {
			e := newEngine(t, -1001, 37, 321, 199, vmath.FracUnit)
			before := e.Bounds().Center()

			require.NoError(t, e.ActivateNewScale(321, 199, s1))
			require.NoError(t, e.ActivateNewScale(320, 200, s2))

			after := e.Bounds().Center()
			assert.InDelta(t, before.X, after.X, 1, "s1=%d s2=%d", s1, s2)
			assert.InDelta(t, before.Y, after.Y, 1, "s1=%d s2=%d", s1, s2)
			assert.Equal(t, vmath.DivWide(320, s2), e.Bounds().Width())
			assert.Equal(t, vmath.DivWide(200, s2), e.Bounds().Height())
		}
	}
}

func TestActivateNewScaleInvalidLeavesState(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)
	before := e.Bounds()

	assert.ErrorIs(t, e.ActivateNewScale(320, 200, 0), ErrInvalidScale)
	assert.ErrorIs(t, e.ActivateNewScale(0, 200, vmath.FracUnit), ErrInvalidDisplay)

	assert.Equal(t, before, e.Bounds())
	assert.Equal(t, vmath.FracUnit, e.Scale())
}

func TestUpdatePanningTranslatesBySum(t *testing.T) {
	tests := []struct {
		name               string
		kbX, kbY, msX, msY int64
	}{
		{"keyboard only", 12, -4, 0, 0},
		{"mouse only", 0, 0, -30, 8},
		{"both devices", 5, 5, 7, -11},
		{"cancelling", 3, 0, -3, 0},
		{"large deltas", 1 << 40, -(1 << 41), 1 << 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)
			before := e.Bounds()

			e.UpdatePanning(tt.kbX, tt.kbY, tt.msX, tt.msY)

			after := e.Bounds()
			assert.Equal(t, before.Width(), after.Width())
			assert.Equal(t, before.Height(), after.Height())
			assert.Equal(t, before.MinX+tt.kbX+tt.msX, after.MinX)
			assert.Equal(t, before.MinY+tt.kbY+tt.msY, after.MinY)
		})
	}
}

func TestUpdatePanningFollowFlag(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)

	e.UpdatePanning(0, 0, 0, 0)
	assert.True(t, e.Following(), "zero pan keeps follow mode")

	e.UpdatePanning(1, 0, -1, 0)
	assert.True(t, e.Following(), "cancelling pan keeps follow mode")

	e.UpdatePanning(0, 1, 0, 0)
	assert.False(t, e.Following())

	e.FollowPlayer(0, 0)
	assert.True(t, e.Following())
}

func TestUpdatePanningRotated(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)
	r := e.Bounds()
	e.ChangeWindowLocation(true, r.MinX, r.MinY, r.MaxX, r.MaxY)
	e.SetHeading(vmath.Ang90)

	e.UpdatePanning(10, 0, 0, 0)

	after := e.Bounds()
	assert.Equal(t, r.MinX, after.MinX)
	assert.Equal(t, r.MinY+10, after.MinY)
	assert.Equal(t, r.Width(), after.Width())

	e.SetHeading(0)
	e.UpdatePanning(4, 6, 0, 0)
	assert.Equal(t, r.MinX+4, e.Bounds().MinX)
	assert.Equal(t, r.MinY+16, e.Bounds().MinY)
}

func TestChangeWindowLocation(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)

	e.ChangeWindowLocation(true, -5, -6, 95, 44)
	assert.Equal(t, Rect{MinX: -5, MinY: -6, MaxX: 95, MaxY: 44}, e.Bounds())
	assert.True(t, e.Rotate())
	assert.False(t, e.Following())

	e.ChangeWindowLocation(false, 0, 0, 1, 1)
	assert.False(t, e.Rotate())
	assert.Equal(t, [4]int64{0, 0, 1, 1}, rectOf(e))
}

func TestFollowPlayerComposes(t *testing.T) {
	stepped := newEngine(t, 100, 200, 320, 200, vmath.FracUnit)
	direct := newEngine(t, 100, 200, 320, 200, vmath.FracUnit)

	stepped.FollowPlayer(110, 180)
	stepped.FollowPlayer(150, 260)
	direct.FollowPlayer(150, 260)

	assert.Equal(t, direct.Bounds(), stepped.Bounds())
	assert.Equal(t, vmath.Point{X: 150, Y: 260}, stepped.Player())
	assert.Equal(t, vmath.Point{X: 150, Y: 260}, stepped.Bounds().Center())
}

func TestFollowPlayerKeepsPanOffset(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)
	e.UpdatePanning(30, 0, 0, 0)
	e.FollowPlayer(10, 10)

	assert.Equal(t, vmath.Point{X: 40, Y: 10}, e.Bounds().Center())
	assert.Equal(t, int64(320), e.Bounds().Width())
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	mutations := map[string]func(e *Engine){
		"pan":    func(e *Engine) { e.UpdatePanning(40, -20, 3, 3) },
		"follow": func(e *Engine) { e.FollowPlayer(900, -900) },
		"scale":  func(e *Engine) { _ = e.ActivateNewScale(640, 480, vmath.Half) },
		"change": func(e *Engine) { e.ChangeWindowLocation(false, -10000, -10000, 10000, 10000) },
		"noop":   func(e *Engine) {},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			e := newEngine(t, 10, 20, 320, 200, vmath.FracUnit)
			e.UpdatePanning(7, 7, 0, 0)
			saved := e.Bounds()

			e.SaveRect()
			assert.True(t, e.HasSavedRect())
			mutate(e)

			require.NoError(t, e.RestoreRect(55, 66))
			assert.Equal(t, saved, e.Bounds())
			assert.Equal(t, vmath.Point{X: 55, Y: 66}, e.Player())
			assert.False(t, e.HasSavedRect())
			assert.True(t, e.Following())
		})
	}
}

func TestSaveRectOverwrites(t *testing.T) {
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)
	e.SaveRect()
	e.UpdatePanning(100, 0, 0, 0)
	second := e.Bounds()
	e.SaveRect()
	e.UpdatePanning(100, 0, 0, 0)

	require.NoError(t, e.RestoreRect(0, 0))
	assert.Equal(t, second, e.Bounds())
}

func TestRestoreWithoutSave(t *testing.T) {
	e := newEngine(t, 5, 5, 320, 200, vmath.FracUnit)
	e.UpdatePanning(3, 0, 0, 0)
	before := e.Bounds()

	err := e.RestoreRect(99, 99)
	assert.ErrorIs(t, err, ErrNoSavedRect)
	assert.Equal(t, before, e.Bounds())
	assert.Equal(t, vmath.Point{X: 5, Y: 5}, e.Player())
	assert.False(t, e.Following())

	// A consumed snapshot cannot be restored twice
	e.SaveRect()
	require.NoError(t, e.RestoreRect(0, 0))
	assert.ErrorIs(t, e.RestoreRect(0, 0), ErrNoSavedRect)
}

func TestPrintRectDoesNotMutate(t *testing.T) {
	e := newEngine(t, 1000, 1000, 320, 200, vmath.FracUnit)
	before := e.Bounds()

	var buf bytes.Buffer
	e.PrintRect(&buf)

	assert.Equal(t, "rect{min=(840,900) max=(1160,1100) size=320x200}\n", buf.String())
	assert.Equal(t, before, e.Bounds())
}

func TestRectNeverDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	e := newEngine(t, 0, 0, 320, 200, vmath.FracUnit)

	for i := 0; i < 2000; i++ {
		switch rng.Intn(7) {
		case 0:
			s := vmath.Fixed(rng.Intn(int(vmath.FromInt(50))) + 1)
			require.NoError(t, e.ActivateNewScale(int32(rng.Intn(2000)+1), int32(rng.Intn(2000)+1), s))
		case 1:
			e.UpdatePanning(rng.Int63n(2001)-1000, rng.Int63n(2001)-1000, rng.Int63n(2001)-1000, rng.Int63n(2001)-1000)
		case 2:
			e.FollowPlayer(int32(rng.Intn(20001)-10000), int32(rng.Intn(20001)-10000))
		case 3:
			e.SaveRect()
		case 4:
			_ = e.RestoreRect(int32(rng.Intn(100)), int32(rng.Intn(100)))
		case 5:
			x, y := rng.Int63n(10000), rng.Int63n(10000)
			e.ChangeWindowLocation(rng.Intn(2) == 0, x, y, x+rng.Int63n(500)+1, y+rng.Int63n(500)+1)
		case 6:
			e.SetHeading(vmath.Angle(rng.Uint32()))
		}

		_, _, w, h := e.Rect()
		require.Positive(t, w, "step %d", i)
		require.Positive(t, h, "step %d", i)
	}
}

func TestEnginesAreIndependent(t *testing.T) {
	left := newEngine(t, 0, 0, 160, 200, vmath.FracUnit)
	right := newEngine(t, 0, 0, 160, 200, vmath.FracUnit)

	left.SaveRect()
	left.UpdatePanning(50, 0, 0, 0)

	assert.False(t, right.HasSavedRect())
	assert.NotEqual(t, left.Bounds(), right.Bounds())
	assert.ErrorIs(t, right.RestoreRect(0, 0), ErrNoSavedRect)
}
