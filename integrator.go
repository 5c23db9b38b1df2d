package ljmd

import "github.com/go-gl/mathgl/mgl64"

// Temperature is the instantaneous kinetic temperature, recomputed every
// step after center-of-mass drift removal. Read-only for everyone except
// IntegrateVelocity.
type Temperature struct {
	Value float64
}

// IntegratorModule installs the three cooperating velocity-Verlet stages.
// They must stay in this order and must not be merged: ClearForce has to
// run after IntegrateVelocity so that, entering next step's force stage,
// OldForce holds this step's forces and Force is zero (see DESIGN.md,
// old-force carry invariant).
type IntegratorModule struct{}

func (IntegratorModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(integratePositionSystem).InStage(IntegratePositionStage).RunAlways())
	app.UseSystem(System(integrateVelocitySystem).InStage(IntegrateVelocityStage).RunAlways())
	app.UseSystem(System(clearForceSystem).InStage(ClearForceStage).RunAlways())
}

// integratePositionSystem advances positions using the force computed by
// the force stage that just ran, wraps them back into the box, and
// advances the step clock exactly once for the whole step.
func integratePositionSystem(cmd *Commands, box *SimBox, clock *StepClock, batch *BatchSize) {
	dt := clock.Delta
	step := clock.Current

	q := MakeQuery4[Position, Velocity, Force, Mass](cmd)
	q.ParallelMap(batch.N, func(id EntityId, pos *Position, vel *Velocity, force *Force, mass *Mass) {
		if mass.Value <= 0 {
			panic(&NumericError{Step: step, Entity: id, Reason: "non-positive mass"})
		}

		accel := force.Vec.Mul(dt * dt / (2 * mass.Value))
		moved := pos.Vec.Add(vel.Vec.Mul(dt)).Add(accel)
		pos.Vec = box.Wrap(moved)

		checkFiniteVec(step, id, pos.Vec, "position")
	})

	clock.Advance()
}

// integrateVelocitySystem applies the second half-kick using Force and
// OldForce (first half-kick of the next step, second half-kick of this
// one), then removes the system's center-of-mass velocity and recomputes
// the instantaneous kinetic temperature from the corrected velocities.
func integrateVelocitySystem(cmd *Commands, clock *StepClock, batch *BatchSize, temp *Temperature) {
	step := clock.Current
	dt := clock.Delta

	q := MakeQuery4[Velocity, Force, OldForce, Mass](cmd)
	q.ParallelMap(batch.N, func(id EntityId, vel *Velocity, force *Force, oldForce *OldForce, mass *Mass) {
		if mass.Value <= 0 {
			panic(&NumericError{Step: step, Entity: id, Reason: "non-positive mass"})
		}

		kick := force.Vec.Add(oldForce.Vec).Mul(dt / (2 * mass.Value))
		vel.Vec = vel.Vec.Add(kick)

		checkFiniteVec(step, id, vel.Vec, "velocity")
	})

	removeComDriftAndMeasureTemperature(cmd, step, temp)
}

// removeComDriftAndMeasureTemperature is a sequential reduction: it needs
// every particle's velocity before it can compute the mean to subtract,
// so unlike the half-kick above it is not dispatched across the worker
// pool.
func removeComDriftAndMeasureTemperature(cmd *Commands, step uint64, temp *Temperature) {
	var sum mgl64.Vec3
	n := 0

	velocities := MakeQuery1[Velocity](cmd)
	velocities.Map(func(id EntityId, vel *Velocity) bool {
		sum = sum.Add(vel.Vec)
		n++
		return true
	})
	if n == 0 {
		temp.Value = 0
		return
	}
	comVelocity := sum.Mul(1.0 / float64(n))

	var kinetic float64
	withMass := MakeQuery2[Velocity, Mass](cmd)
	withMass.Map(func(id EntityId, vel *Velocity, mass *Mass) bool {
		vel.Vec = vel.Vec.Sub(comVelocity)
		checkFiniteVec(step, id, vel.Vec, "velocity")
		kinetic += mass.Value * vel.Vec.Dot(vel.Vec)
		return true
	})

	temp.Value = kinetic / (3 * float64(n) * BoltzmannConstant)
}

// clearForceSystem carries this step's force into OldForce and zeroes
// Force, so next step's force stage writes purely additively.
func clearForceSystem(cmd *Commands, batch *BatchSize) {
	q := MakeQuery2[Force, OldForce](cmd)
	q.ParallelMap(batch.N, func(id EntityId, force *Force, oldForce *OldForce) {
		oldForce.Vec = force.Vec
		force.Vec = mgl64.Vec3{}
	})
}
