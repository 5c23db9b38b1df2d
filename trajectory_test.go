package ljmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWriteTrajectoryFrame_Format(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	cmd.AddEntity(Position{mgl64.Vec3{1, 2, 3}}, Velocity{mgl64.Vec3{0.1, 0.2, 0.3}})
	app.FlushCommands()

	box := &SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{10, 10, 10}}
	app.addResources(box)

	prefix := filepath.Join(t.TempDir(), "run")
	if err := writeTrajectoryFrame(cmd, 5, prefix); err != nil {
		t.Fatalf("writeTrajectoryFrame: %v", err)
	}

	data, err := os.ReadFile(prefix + "_5.trj")
	if err != nil {
		t.Fatalf("reading trajectory frame: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if lines[0] != "ITEM: TIMESTEP" {
		t.Errorf("first line = %q, want ITEM: TIMESTEP", lines[0])
	}
	if lines[1] != "5" {
		t.Errorf("second line = %q, want step number", lines[1])
	}
	if lines[2] != "ITEM: NUMBER OF ATOMS" {
		t.Errorf("third line = %q", lines[2])
	}
	if lines[3] != "1" {
		t.Errorf("atom count line = %q, want 1", lines[3])
	}
}

func TestTrajectorySystem_EmitsAtStrideOnly(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	cmd.AddEntity(Position{}, Velocity{})
	app.FlushCommands()

	box := &SimBox{Origin: mgl64.Vec3{0, 0, 0}, Dimension: mgl64.Vec3{10, 10, 10}}
	app.addResources(box)

	prefix := filepath.Join(t.TempDir(), "run")
	trj := &TrjName{Prefix: prefix}
	interval := &OutInterval{Steps: 5}

	emitted := map[uint64]bool{}
	for step := uint64(0); step <= 20; step++ {
		clock := &StepClock{Current: step}
		trajectorySystem(cmd, clock, trj, interval)
		if _, err := os.Stat(fmt.Sprintf("%s_%d.trj", prefix, step)); err == nil {
			emitted[step] = true
		}
	}

	want := map[uint64]bool{5: true, 10: true, 15: true, 20: true}
	for step := range want {
		if !emitted[step] {
			t.Errorf("expected frame at step %d", step)
		}
	}
	for step := range emitted {
		if !want[step] {
			t.Errorf("unexpected frame at step %d", step)
		}
	}
}
