package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-automap/config"
	"github.com/lixenwraith/vi-automap/control"
	"github.com/lixenwraith/vi-automap/input"
	"github.com/lixenwraith/vi-automap/level"
	"github.com/lixenwraith/vi-automap/parameter"
	"github.com/lixenwraith/vi-automap/vmath"
)

// pixelsPerRow is the vertical resolution of one terminal row in half-block rendering
const pixelsPerRow = 2

// arrowPixels is the length of the heading marker
const arrowPixels = 4

// view is one overview window on screen
type view struct {
	ctrl     *control.Controller
	x0, cols int
	rows     int
	frame    *frame
}

// sandbox runs the overview against a generated level in the terminal
type sandbox struct {
	screen tcell.Screen
	cfg    config.Config
	level  *level.Level
	player *player

	views []*view
	focus int

	machine *input.Machine
	cue     *cue
	logger  *slog.Logger

	status string
}

func newSandbox(screen tcell.Screen, cfg config.Config, lvl *level.Level, split bool, c *cue, logger *slog.Logger) (*sandbox, error) {
	keys, err := input.ApplyKeyConfig(input.DefaultKeyTable(), cfg.Keys)
	if err != nil {
		return nil, err
	}

	s := &sandbox{
		screen:  screen,
		cfg:     cfg,
		level:   lvl,
		player:  newPlayer(lvl),
		machine: input.NewMachine(keys, cfg.Pan.Mouse, pixelsPerRow),
		cue:     c,
		logger:  logger,
	}

	n := 1
	if split {
		n = 2
	}
	s.views = make([]*view, n)
	for i := range s.views {
		s.views[i] = &view{}
	}
	if err := s.layout(); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *sandbox) close() {
	for _, v := range s.views {
		if v.ctrl != nil {
			v.ctrl.Close()
			v.ctrl = nil
		}
	}
}

// layout splits the screen between views above the status line
func (s *sandbox) layout() error {
	width, height := s.screen.Size()
	rows := max(height-1, 1)
	cols := max(width, 1)
	if len(s.views) > 1 {
		cols = max((width-1)/2, 1)
	}

	for i, v := range s.views {
		v.x0 = i * (cols + 1)
		v.cols, v.rows = cols, rows
		v.frame = newFrame(cols, rows*pixelsPerRow)

		w, h := int32(cols), int32(rows*pixelsPerRow)
		if v.ctrl == nil {
			ctrl, err := control.New(s.cfg, s.level, w, h,
				s.logger.With("view", i), control.WithOutput(&statusWriter{s: s}))
			if err != nil {
				return err
			}
			v.ctrl = ctrl
			continue
		}
		if err := v.ctrl.Resize(w, h); err != nil {
			return err
		}
	}
	return nil
}

// handle processes one terminal event, returning false when the sandbox should exit
func (s *sandbox) handle(ev tcell.Event) bool {
	in := s.machine.Process(ev)
	if in == nil {
		return true
	}

	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		s.screen.Sync()
		if err := s.layout(); err != nil {
			s.logger.Error("resize failed", "error", err)
		}
		return true
	case input.IntentNextView:
		s.focus = (s.focus + 1) % len(s.views)
		return true
	}

	if s.player.apply(*in) {
		return true
	}

	target := s.views[s.focus]
	if _, ok := ev.(*tcell.EventMouse); ok {
		target = s.viewAt(in.X)
	}

	err := target.ctrl.Apply(*in)
	switch {
	case errors.Is(err, control.ErrZoomLimit):
		s.status = "zoom limit"
		s.cue.play()
	case err != nil:
		s.logger.Error("intent failed", "intent", in.Type.String(), "error", err)
		s.status = err.Error()
	}
	return true
}

func (s *sandbox) viewAt(x int) *view {
	for _, v := range s.views {
		if x >= v.x0 && x < v.x0+v.cols {
			return v
		}
	}
	return s.views[s.focus]
}

// tick advances the simulation one frame
func (s *sandbox) tick() {
	s.player.tick()
	for _, v := range s.views {
		v.ctrl.Tick(s.player.pos, s.player.heading)
	}
}

func (s *sandbox) draw() {
	s.screen.Clear()
	for i, v := range s.views {
		s.renderView(v)
		v.frame.blit(s.screen, v.x0, 0)
		if i > 0 {
			for y := 0; y < v.rows; y++ {
				s.screen.SetContent(v.x0-1, y, '│', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			}
		}
	}
	s.drawStatus()
	s.screen.Show()
}

func (s *sandbox) renderView(v *view) {
	f := v.frame
	f.clear()
	e := v.ctrl.Engine()

	project := func(p vmath.Point) (int64, int64) {
		x, y := e.MapToScreen(p.X, p.Y)
		return int64(x), int64(y)
	}

	if s.player.autoWalk {
		for i := 1; i < len(s.player.route); i++ {
			ax, ay := project(s.player.route[i-1])
			bx, by := project(s.player.route[i])
			f.line(ax, ay, bx, by, pixRoute)
		}
	}

	for _, w := range s.level.Walls {
		ax, ay := project(w.A)
		bx, by := project(w.B)
		f.line(ax, ay, bx, by, pixWall)
	}

	ex, ey := project(s.level.Exit)
	f.line(ex-1, ey, ex+1, ey, pixExit)
	f.line(ex, ey-1, ex, ey+1, pixExit)

	arrow := vmath.DivWide(arrowPixels, e.Scale())
	dx, dy := vmath.RotateVector(arrow, 0, s.player.heading)
	px, py := project(s.player.pos)
	tx, ty := project(s.player.pos.Add(vmath.Vector{X: dx, Y: dy}))
	f.line(px, py, tx, ty, pixPlayer)
}

// drawStatus writes the status line below the views
func (s *sandbox) drawStatus() {
	width, height := s.screen.Size()
	v := s.views[s.focus]
	e := v.ctrl.Engine()

	var modes []string
	if e.Following() {
		modes = append(modes, "follow")
	}
	if e.Rotate() {
		modes = append(modes, "rotate")
	}
	if v.ctrl.FullMap() {
		modes = append(modes, "full")
	}
	if s.player.autoWalk {
		modes = append(modes, "walk")
	}

	text := fmt.Sprintf("◆ view %d/%d  ×%s  [%s]  player (%d,%d) %d°",
		s.focus+1, len(s.views), scaleString(e.Scale()), strings.Join(modes, " "),
		s.player.pos.X, s.player.pos.Y, s.player.heading.Degrees())
	if n := s.machine.PendingCount(); n > 0 {
		text += fmt.Sprintf("  %d", n)
	}
	if s.status != "" {
		text += "  │ " + s.status
	}

	text = runewidth.Truncate(text, width, "…")
	x := 0
	style := tcell.StyleDefault.Reverse(true)
	for _, r := range text {
		s.screen.SetContent(x, height-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		s.screen.SetContent(x, height-1, ' ', nil, style)
	}
}

// run drives events and frames until quit
func (s *sandbox) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	s.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
			s.draw()
		}
	}
}

// scaleString formats a Q16.16 scale with two decimals
func scaleString(f vmath.Fixed) string {
	whole := f >> vmath.FracBits
	hundredths := (int64(f&vmath.FracMask)*100 + int64(vmath.Half)) >> vmath.FracBits
	if hundredths == 100 {
		whole, hundredths = whole+1, 0
	}
	return fmt.Sprintf("%d.%02d", whole, hundredths)
}

// statusWriter shows engine text output on the status line and in the log
type statusWriter struct {
	s *sandbox
}

func (w *statusWriter) Write(p []byte) (int, error) {
	w.s.status = strings.TrimSpace(string(p))
	w.s.logger.Info("window", "rect", w.s.status)
	return len(p), nil
}
