// Package render presents the demo's scene graph on a terminal. The ring
// is drawn as one horizontal strip centered on the viewpoint; fragment
// offsets map linearly onto columns, so walking the ring scrolls the world
// under a fixed player marker.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/ringworld/sim/internal/game"
	"github.com/ringworld/sim/internal/loop"
	"github.com/ringworld/sim/internal/world"
)

// Terminal implements loop.Presenter on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// NewTerminal initializes the screen and starts the event pump.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Close restores the terminal. Safe to call once.
func (t *Terminal) Close() {
	close(t.quit)
	t.screen.Fini()
}

// PollInput drains pending events without blocking and folds them into one
// Input. Later movement keys within a frame win.
func (t *Terminal) PollInput() loop.Input {
	var in loop.Input
	for {
		select {
		case ev := <-t.events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch e.Key() {
				case tcell.KeyLeft:
					in.Move = -1
				case tcell.KeyRight:
					in.Move = 1
				case tcell.KeyEscape, tcell.KeyCtrlC:
					in.Quit = true
				case tcell.KeyRune:
					switch e.Rune() {
					case 'h':
						in.Move = -1
					case 'l':
						in.Move = 1
					case 'q':
						in.Quit = true
					}
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		default:
			return in
		}
	}
}

// Frame draws one scene graph. Scenes arrive in render-system order, so a
// later system's fragments overdraw an earlier system's on collision.
func (t *Terminal) Frame(scenes []world.Scene[game.Sprite], radius float64, status string) {
	t.screen.Clear()
	w, h := t.screen.Size()
	if w < 3 || h < 2 {
		t.screen.Show()
		return
	}
	row := h / 2
	cx := w / 2
	if radius <= 0 {
		radius = 1
	}

	base := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, row, '·', nil, base)
	}

	scale := float64(cx-1) / radius
	for _, sc := range scenes {
		for _, fr := range sc.Fragments {
			col := cx + int(math.Round(fr.Offset*scale))
			if col < 0 || col >= w {
				continue
			}
			t.screen.SetContent(col, row, fr.Drawable.Glyph, nil, styleFor(fr.Drawable.Color))
		}
	}

	// The viewpoint marker overdraws everything at the center.
	t.screen.SetContent(cx, row, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		t.screen.SetContent(col, h-1, r, nil, base)
		col++
	}
	t.screen.Show()
}

func styleFor(color string) tcell.Style {
	return tcell.StyleDefault.Foreground(colorFor(color))
}

func colorFor(name string) tcell.Color {
	switch name {
	case "red":
		return tcell.ColorRed
	case "green":
		return tcell.ColorGreen
	case "yellow":
		return tcell.ColorYellow
	case "blue":
		return tcell.ColorBlue
	case "magenta":
		return tcell.ColorDarkMagenta
	case "cyan":
		return tcell.ColorDarkCyan
	case "gray":
		return tcell.ColorGray
	default:
		return tcell.ColorWhite
	}
}
