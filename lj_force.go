package ljmd

import (
	"math"
)

// LJCutoff is the spherical cutoff radius rc beyond which pair forces are
// not evaluated. Read-only after setup.
type LJCutoff struct {
	Rc float64
}

func (c LJCutoff) Validate() error {
	if c.Rc <= 0 {
		return &ConfigError{Field: "cutoff", Reason: "must be strictly positive"}
	}
	return nil
}

// ForceModule installs the pairwise Lennard-Jones kernel. It owns the
// entire single-threaded pair loop: both sides of a pair are mutated
// together, so the force stage cannot be split across the worker pool
// the way the integrator stages are (see PairQuery3 in ecs_pairs.go).
type ForceModule struct{}

func (ForceModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(forceSystem).InStage(ForceStage).RunAlways())
	app.UseSystem(System(rdfFinalizeSystem).InStage(AnalysisFinalizeStage).RunAlways())
}

// forceSystem walks every pair exactly once. It always rebuilds the raw RDF
// histogram for the step whose positions are being read here (a frame that
// predates clock's post-integration value), fusing the O(N^2) distance
// computation with the force kernel rather than paying for a second pass.
// Whether this frame's histogram actually counts toward the window average
// is decided afterwards, against the post-increment step, by
// rdfFinalizeSystem.
func forceSystem(cmd *Commands, box *SimBox, cutoff *LJCutoff, clock *StepClock, rdf *RDFParams, count *ParticleCount) {
	rc2 := cutoff.Rc * cutoff.Rc
	rdf.resetHist()

	pairs := MakePairQuery3[Position, AtomType, Force](cmd)
	pairs.Pairs(func(
		i EntityId, posI *Position, typeI *AtomType, forceI *Force,
		j EntityId, posJ *Position, typeJ *AtomType, forceJ *Force,
	) bool {
		d := box.MinimumImage(posI.Vec.Sub(posJ.Vec))
		s := d.Dot(d)

		if s == 0 {
			panic(&NumericError{Step: clock.Current, Entity: i, Reason: "zero pair distance"})
		}

		if rdf.matchesPair(typeI.Name, typeJ.Name) {
			r := math.Sqrt(s)
			if r <= rdf.Range {
				bin := int(r / rdf.binWidth())
				if bin >= 0 && bin < len(rdf.Hist) {
					rdf.Hist[bin] += 2
				}
			}
		}

		if s < rc2 {
			sigma := 0.5 * (typeI.Sigma + typeJ.Sigma)
			epsilon := math.Sqrt(typeI.Epsilon * typeJ.Epsilon)

			sigma6 := math.Pow(sigma, 6)
			sigma12 := sigma6 * sigma6
			c12 := 4 * epsilon * sigma12
			c6 := 4 * epsilon * sigma6

			s3 := s * s * s
			s4 := s3 * s
			s7 := s4 * s3
			k := 12*c12/s7 - 6*c6/s4

			delta := d.Mul(k)
			forceI.Vec = forceI.Vec.Add(delta)
			forceJ.Vec = forceJ.Vec.Sub(delta)
		}

		return true
	})
}

// ljForceAlt12_6 computes the same scalar force coefficient via the
// algebraically equivalent 48/24 form and exists purely to exercise the
// round-trip identity between the two forms found across the sources
// (see SPEC_FULL.md §6, LJ force formula decision).
func ljForceAlt12_6(epsilon, sigma, s float64) float64 {
	sigma6 := math.Pow(sigma, 6)
	sigma12 := sigma6 * sigma6
	s3 := s * s * s
	s4 := s3 * s
	s7 := s4 * s3
	return 48*epsilon*sigma12/s7 - 24*epsilon*sigma6/s4
}
