package ljmd

import (
	"bufio"
	"fmt"
	"os"
)

// TrajectoryModule installs the LAMMPS-style dump writer. It only emits
// frames for current >= 1; the frame at step 0 is written by
// WriteInitialFrame, once, right after the world is spawned and before
// the first Tick (see cmd/mdrun).
type TrajectoryModule struct{}

func (TrajectoryModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(trajectorySystem).InStage(OutputStage).RunAlways())
}

func trajectorySystem(cmd *Commands, clock *StepClock, trj *TrjName, interval *OutInterval) {
	if clock.Current == 0 || interval.Steps == 0 || clock.Current%interval.Steps != 0 {
		return
	}
	if err := writeTrajectoryFrame(cmd, clock.Current, trj.Prefix); err != nil {
		panic(err)
	}
}

// WriteInitialFrame emits the step-0 frame. Called once by the driver
// before the tick loop starts.
func WriteInitialFrame(app *App) error {
	cmd := app.Commands()
	trj := app.resources[typeOf[TrjName]()].(*TrjName)
	return writeTrajectoryFrame(cmd, 0, trj.Prefix)
}

func writeTrajectoryFrame(cmd *Commands, step uint64, prefix string) error {
	box, ok := cmd.app.resources[typeOf[SimBox]()].(*SimBox)
	if !ok {
		return &ConfigError{Field: "box", Reason: "SimBox resource missing"}
	}

	path := fmt.Sprintf("%s_%d.trj", prefix, step)
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Step: step, Path: path, Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	q := MakeQuery2[Position, Velocity](cmd)
	n := q.Count()

	fmt.Fprintln(w, "ITEM: TIMESTEP")
	fmt.Fprintln(w, step)
	fmt.Fprintln(w, "ITEM: NUMBER OF ATOMS")
	fmt.Fprintln(w, n)
	fmt.Fprintln(w, "ITEM: BOX BOUNDS pp pp pp")
	for k := 0; k < 3; k++ {
		fmt.Fprintf(w, "%g %g\n", box.Origin[k], box.Origin[k]+box.Dimension[k])
	}
	fmt.Fprintln(w, "ITEM: ATOMS id type x y z vx vy vz")

	q.Map(func(id EntityId, pos *Position, vel *Velocity) bool {
		fmt.Fprintf(w, "%d 1 %g %g %g %g %g %g\n",
			id+1,
			pos.Vec.X(), pos.Vec.Y(), pos.Vec.Z(),
			vel.Vec.X(), vel.Vec.Y(), vel.Vec.Z(),
		)
		return true
	})

	if err := w.Flush(); err != nil {
		return &IOError{Step: step, Path: path, Err: err}
	}
	return nil
}
