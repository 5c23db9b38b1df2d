package ljmd

import (
	"time"
)

// WallClock tracks real elapsed time per Tick, independent of the fixed
// simulation timestep carried by StepClock. It exists so a run can report
// throughput (steps/sec) without the integrator ever reading wall time.
type WallClock struct {
	Time      time.Time
	Duration  time.Duration
	Dt        float64
	TickCount uint64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(wallClockSystem).
			InStage(AnalysisFinalizeStage).
			RunAlways(),
	)

	cmd.AddResources(&WallClock{
		Time: time.Now(),
		Dt:   0,
	})
}

func wallClockSystem(wc *WallClock) {
	now := time.Now()
	dur := now.Sub(wc.Time)

	wc.Duration = dur
	wc.Dt = dur.Seconds()
	wc.Time = now
	wc.TickCount++
}
