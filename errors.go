package ljmd

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ConfigError marks a problem detected at setup, before the first step
// runs. Setup code returns these rather than panicking.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// NumericError marks a non-finite value or other numeric blow-up found
// inside a stage. It is fatal: the stage that detects it panics with this
// value, and the driver's recover aborts the run with the diagnostic
// attached here.
type NumericError struct {
	Step   uint64
	Entity EntityId
	Reason string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("numeric error at step %d, entity %d: %s", e.Step, e.Entity, e.Reason)
}

// IOError marks a failed trajectory or RDF write. Also fatal: a half
// written frame is worse than no frame, since downstream analysis assumes
// every emitted file is complete.
type IOError struct {
	Step uint64
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error at step %d writing %s: %v", e.Step, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// checkFiniteVec panics with a NumericError if any component of v is NaN
// or infinite. Called at the end of the stages that mutate Position and
// Velocity, per the fatal-abort contract on non-finite state.
func checkFiniteVec(step uint64, id EntityId, v mgl64.Vec3, what string) {
	for k := 0; k < 3; k++ {
		if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
			panic(&NumericError{
				Step:   step,
				Entity: id,
				Reason: fmt.Sprintf("%s[%d] is non-finite (%v)", what, k, v[k]),
			})
		}
	}
}
