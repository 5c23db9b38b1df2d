package ljmd

import (
	"fmt"
)

// UpdateType marks whether a stage's per-particle work may run across the
// worker pool (Parallel) or runs single-threaded (Sequential: the force
// stage, whose body mutates both sides of a pair, and the output and
// analysis stages).
type UpdateType int

const (
	Parallel UpdateType = iota
	Sequential
)

type Stage struct {
	Name       string
	UpdateType UpdateType
}

// MDStages is the fixed per-step schedule mandated by the stage orchestrator:
// force -> integrate_position -> integrate_velocity -> clear_force -> output -> analysis_finalize.
// No re-entry, no reordering; each stage runs to completion before the next starts.
var (
	ForceStage             = Stage{Name: "Force", UpdateType: Sequential}
	IntegratePositionStage = Stage{Name: "IntegratePosition", UpdateType: Parallel}
	IntegrateVelocityStage = Stage{Name: "IntegrateVelocity", UpdateType: Parallel}
	ClearForceStage        = Stage{Name: "ClearForce", UpdateType: Parallel}
	OutputStage            = Stage{Name: "Output", UpdateType: Sequential}
	AnalysisFinalizeStage  = Stage{Name: "AnalysisFinalize", UpdateType: Sequential}

	MDStages = []Stage{
		ForceStage,
		IntegratePositionStage,
		IntegrateVelocityStage,
		ClearForceStage,
		OutputStage,
		AnalysisFinalizeStage,
	}
)

// systemScheduleBuilder is the fluent handle System() returns: every system
// in this pipeline names the one stage it runs in and always runs every
// tick, so unlike the store this was adapted from there is no per-state
// enter/execute/exit phase and no builder for inserting stages at runtime —
// the six MDStages are fixed at App construction.
type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{system: sched.system, inStage: s}
}

// RunAlways is a no-op retained so system registration keeps the builder's
// declarative InStage().RunAlways() shape even though every system in this
// pipeline already always runs.
func (sched systemScheduleBuilder) RunAlways() systemScheduleBuilder {
	return sched
}

func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{system: system, inStage: ForceStage}
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if _, ok := app.systemsStateless[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systemsStateless[system.inStage.Name] = append(app.systemsStateless[system.inStage.Name], system.system)
	return app
}
