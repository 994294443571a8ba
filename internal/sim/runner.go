// Package sim runs scripted scenarios through the resolver and records one
// frame per step.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/core"
	"github.com/vovakirdan/tilephys/internal/physics"
)

// Frame is the mover's state after one step.
type Frame struct {
	Step    int // 1-based
	Rect    core.Rect
	Contact physics.Contact
}

// Runner steps a scenario's mover through its tiles.
type Runner struct {
	scenario config.Scenario
	tiles    []core.Rect
	logger   *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(sc config.Scenario, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		scenario: sc,
		tiles:    sc.TileRects(),
		logger:   logger.WithPrefix("sim"),
	}
}

// Run executes every step from the scenario's start position and returns the
// recorded frames. Runs are deterministic; calling Run twice yields the same
// frames.
func (r *Runner) Run() []Frame {
	mover := r.scenario.Mover.Rect()
	vel := r.scenario.Velocity
	frames := make([]Frame, 0, r.scenario.Steps)

	r.logger.Debug("run started",
		"scenario", r.scenario.Name,
		"mover", mover,
		"tiles", len(r.tiles),
		"steps", r.scenario.Steps,
	)

	for step := 1; step <= r.scenario.Steps; step++ {
		before := mover
		physics.MoveAndCollide(&mover, r.tiles, vel.X, vel.Y)

		f := Frame{
			Step:    step,
			Rect:    mover,
			Contact: physics.Contacts(mover, r.tiles),
		}
		frames = append(frames, f)

		if wanted := before.Offset(vel.X, vel.Y); wanted != mover {
			r.logger.Debug("step resolved", "step", step, "wanted", wanted, "got", mover)
		} else {
			r.logger.Debug("step", "step", step, "rect", mover)
		}
	}

	r.logger.Info("run finished", "scenario", r.scenario.Name, "final", mover)
	return frames
}
