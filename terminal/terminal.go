package terminal

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/roberte777/fluid-sim/app"
	"github.com/roberte777/fluid-sim/fluid"
)

//Terminal renders the particle field into the cell grid and forwards key
//edits to the scene. Esc or q quits, r/R and d/D nudge radius and damping,
//arrow keys resize the domain box.
type Terminal struct {
	scene *app.Scene
	snap  fluid.Snapshot
}

func New(scene *app.Scene) *Terminal {
	return &Terminal{scene: scene}
}

func (t *Terminal) Run() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	events := make(chan termbox.Event, 8)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	dt := time.Duration(float64(t.scene.Fluid.Config.TimeStep) * float64(time.Second))
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				return nil
			}
			t.handleKey(ev)
		case <-ticker.C:
			if err := t.scene.Step(); err != nil {
				return err
			}
			t.scene.Snapshot(&t.snap)
			t.redraw()
		}
	}
}

func (t *Terminal) handleKey(ev termbox.Event) {
	radius, damping, width, height := t.scene.Params()
	switch {
	case ev.Ch == 'R':
		t.scene.Queue(app.Edit{Kind: app.ParamRadius, Value: radius + 0.05})
	case ev.Ch == 'r':
		t.scene.Queue(app.Edit{Kind: app.ParamRadius, Value: radius - 0.05})
	case ev.Ch == 'D':
		t.scene.Queue(app.Edit{Kind: app.ParamDamping, Value: damping + 0.05})
	case ev.Ch == 'd':
		t.scene.Queue(app.Edit{Kind: app.ParamDamping, Value: damping - 0.05})
	case ev.Key == termbox.KeyArrowRight:
		t.scene.Queue(app.Edit{Kind: app.ParamWidth, Value: width + 2})
	case ev.Key == termbox.KeyArrowLeft:
		t.scene.Queue(app.Edit{Kind: app.ParamWidth, Value: width - 2})
	case ev.Key == termbox.KeyArrowUp:
		t.scene.Queue(app.Edit{Kind: app.ParamHeight, Value: height + 2})
	case ev.Key == termbox.KeyArrowDown:
		t.scene.Queue(app.Edit{Kind: app.ParamHeight, Value: height - 2})
	}
}

func (t *Terminal) redraw() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	tw, th := termbox.Size()

	//fit the domain box into the cell grid, one row reserved for the header.
	//Terminal cells are about twice as tall as wide, stretch x to compensate.
	gh := th - 1
	if tw < 4 || gh < 4 {
		termbox.Flush()
		return
	}
	scaleX := (float32(tw) - 2) / t.snap.Width
	scaleY := (float32(gh) - 2) / t.snap.Height
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	boxW := int(t.snap.Width * scale)
	boxH := int(t.snap.Height * scale)
	left := (tw - boxW) / 2
	top := 1 + (gh-boxH)/2

	for x := left; x <= left+boxW; x++ {
		termbox.SetCell(x, top, '-', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(x, top+boxH, '-', termbox.ColorWhite, termbox.ColorDefault)
	}
	for y := top; y <= top+boxH; y++ {
		termbox.SetCell(left, y, '|', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(left+boxW, y, '|', termbox.ColorWhite, termbox.ColorDefault)
	}

	for i := range t.snap.Positions {
		p := t.snap.Positions[i]
		cx := left + int((p[0]+t.snap.Width/2)*scale)
		cy := top + boxH - int((p[1]+t.snap.Height/2)*scale)
		if cx <= left || cx >= left+boxW || cy <= top || cy >= top+boxH {
			continue
		}
		termbox.SetCell(cx, cy, '█', termbox.ColorCyan, termbox.ColorDefault)
	}

	t.header()
	termbox.Flush()
}

func (t *Terminal) header() {
	radius, damping, width, height := t.scene.Params()
	line := []rune(fmt.Sprintf("radius %.2f  damping %.2f  box %.0fx%.0f  [r/R d/D arrows, q quits]",
		radius, damping, width, height))
	for i, r := range line {
		termbox.SetCell(i, 0, r, termbox.ColorYellow, termbox.ColorDefault)
	}
}
