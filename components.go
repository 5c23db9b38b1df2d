package ljmd

import "github.com/go-gl/mathgl/mgl64"

// Position is wrapped into the SimBox by the integrator after every step.
type Position struct {
	Vec mgl64.Vec3
}

// Velocity is m/s; the integrator removes its center-of-mass component
// every step (see DESIGN.md on the COM-removal open question).
type Velocity struct {
	Vec mgl64.Vec3
}

// Force accumulates pairwise Lennard-Jones contributions over a force
// stage. Zeroed by ClearForce at the end of every step.
type Force struct {
	Vec mgl64.Vec3
}

// OldForce holds Force as it stood at the end of the previous step's
// force stage, so IntegrateVelocity can apply the second half-kick with
// the force that was actually used to produce the new position.
type OldForce struct {
	Vec mgl64.Vec3
}

// Mass is kilograms, already AMU-converted by the spawn routine.
type Mass struct {
	Value float64
}

// AtomType carries the Lennard-Jones parameters for a particle's
// chemical species. Sigma is in meters, Epsilon in joules.
type AtomType struct {
	Name    string
	Sigma   float64
	Epsilon float64
}

// ParticleCount caches the live particle count so the RDF normalization in
// rdfFinalizeSystem doesn't need an extra pass over the world every step.
type ParticleCount struct {
	N int
}
