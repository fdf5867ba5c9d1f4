// Package loop drives the simulation: a fixed-rate frame clock that runs
// one logic tick per frame and hands the render pass's scene graph to a
// presenter. The World stays a single value owned by the loop goroutine.
package loop

import (
	"time"

	"github.com/ringworld/sim/internal/game"
	"github.com/ringworld/sim/internal/world"
	"go.uber.org/zap"
)

// Input is the player intent decoded by the presenter for one frame.
type Input struct {
	Move float64 // -1, 0, +1 along the ring
	Quit bool
}

// Presenter displays frames and decodes input. Implementations own the
// screen; the loop never touches terminal state directly.
type Presenter interface {
	PollInput() Input
	Frame(scenes []world.Scene[game.Sprite], radius float64, status string)
}

// Loop ties the kernel, the game systems, and a presenter together.
type Loop struct {
	env       *game.Env
	presenter Presenter // nil = headless
	log       *zap.Logger

	tickRate    time.Duration
	radius      float64
	playerSpeed float64
	maxTicks    int
}

// Options configures a Loop.
type Options struct {
	TickRate         time.Duration
	VisibilityRadius float64
	PlayerSpeed      float64
	MaxTicks         int // 0 = run until the presenter reports quit
}

// New creates a loop. A nil presenter selects headless mode: fixed dt, no
// sleeping, stopping after MaxTicks.
func New(env *game.Env, p Presenter, opts Options, log *zap.Logger) *Loop {
	return &Loop{
		env:         env,
		presenter:   p,
		log:         log,
		tickRate:    opts.TickRate,
		radius:      opts.VisibilityRadius,
		playerSpeed: opts.PlayerSpeed,
		maxTicks:    opts.MaxTicks,
	}
}

// Run steps the world until quit or the tick limit and returns the final
// World value.
func (l *Loop) Run(w game.World) game.World {
	if l.presenter == nil {
		return l.runHeadless(w)
	}
	return l.runInteractive(w)
}

func (l *Loop) runHeadless(w game.World) game.World {
	dt := l.tickRate.Seconds()
	start := time.Now()
	for i := 0; i < l.maxTicks; i++ {
		w = l.tick(w, 0, dt)
	}
	l.log.Info("headless run complete",
		zap.Int("ticks", l.maxTicks),
		zap.Int("entities", w.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return w
}

func (l *Loop) runInteractive(w game.World) game.World {
	ticker := time.NewTicker(l.tickRate)
	defer ticker.Stop()

	last := time.Now()
	ticks := 0
	for range ticker.C {
		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		in := l.presenter.PollInput()
		if in.Quit {
			break
		}
		w = l.tick(w, in.Move, dt)

		scenes := world.RunRenderSystems(w, l.radius, game.DrawSprite)
		l.presenter.Frame(scenes, l.radius, l.status(w))

		ticks++
		if l.maxTicks > 0 && ticks >= l.maxTicks {
			break
		}
		if ticks%200 == 0 {
			l.log.Debug("tick stats",
				zap.Int("ticks", ticks),
				zap.Int("entities", w.Len()),
				zap.Float64("viewpoint", w.ViewpointPos()))
		}
	}
	return w
}

// tick advances the world one frame: viewpoint motion first, then the
// logic pass against the updated viewpoint.
func (l *Loop) tick(w game.World, move, dt float64) game.World {
	if move != 0 {
		w = w.MoveViewpoint(move * l.playerSpeed * dt)
	}
	return w.RunLogicSystems(l.env.Step(w.ViewpointPos(), dt))
}

func (l *Loop) status(w game.World) string {
	return statusLine(w.ViewpointPos(), w.MapSize(), w.Len())
}
