package ljmd

import (
	"fmt"
	"math"
	"os"
)

// RDFParams configures the fused radial-distribution-function sampler and
// holds its accumulated state. The force kernel rebuilds Hist every step;
// rdfFinalizeSystem, running in AnalysisFinalize against the post-increment
// step, decides whether that step's Hist falls in the sampling window and
// folds it into accumDensity, normalizing and writing the file once the
// window closes.
type RDFParams struct {
	AtomA, AtomB string
	NBins        int
	Range        float64
	Start, End   uint64
	Filename     string

	Hist      []float64 // raw +=2 pair counts for the step currently being sampled
	RCenters  []float64

	accumDensity []float64
	frames       int
}

func (p *RDFParams) Validate(totalSteps uint64) error {
	if p.NBins < 1 {
		return &ConfigError{Field: "rdf.n_bins", Reason: "must be at least 1"}
	}
	if p.Range <= 0 {
		return &ConfigError{Field: "rdf.range", Reason: "must be strictly positive"}
	}
	if p.Start > p.End {
		return &ConfigError{Field: "rdf.start", Reason: "must not exceed rdf.end"}
	}
	if p.End > totalSteps {
		return &ConfigError{Field: "rdf.end", Reason: "must not exceed n_steps"}
	}

	p.Hist = make([]float64, p.NBins)
	p.accumDensity = make([]float64, p.NBins)
	p.RCenters = make([]float64, p.NBins)
	bw := p.binWidth()
	for b := 0; b < p.NBins; b++ {
		p.RCenters[b] = float64(b) * bw
	}
	return nil
}

func (p *RDFParams) binWidth() float64 {
	return p.Range / float64(p.NBins)
}

// matchesPair reports whether the ordered species names form the
// configured (possibly swapped) pair this RDF instance is tracking.
func (p *RDFParams) matchesPair(nameI, nameJ string) bool {
	return (nameI == p.AtomA && nameJ == p.AtomB) || (nameI == p.AtomB && nameJ == p.AtomA)
}

func (p *RDFParams) resetHist() {
	for b := range p.Hist {
		p.Hist[b] = 0
	}
}

// accumulate folds the current step's raw counts into the running g(r)
// sum: for every bin, contribution c_b/(N*rho*V_b) is added once per
// sampled frame, matching the normalization law in DESIGN.md.
func (p *RDFParams) accumulate(box *SimBox, n int) {
	if n == 0 {
		p.frames++
		return
	}
	rho := float64(n) / box.Volume()
	bw := p.binWidth()
	for b := 0; b < p.NBins; b++ {
		ro := float64(b+1) * bw
		ri := float64(b) * bw
		shell := (4.0 / 3.0) * math.Pi * (ro*ro*ro - ri*ri*ri)
		denom := float64(n) * rho * shell
		if denom == 0 {
			continue
		}
		p.accumDensity[b] += p.Hist[b] / denom
	}
	p.frames++
}

// rdfFinalizeSystem runs in AnalysisFinalizeStage, after IntegratePosition has
// advanced the clock for this tick. clock.Current here is the step count that
// just completed, so a window [Start,End] with End == Total is reachable:
// the Force stage earlier in this same tick only ever sees Current in
// [0,Total-1] and cannot observe the terminal step itself.
func rdfFinalizeSystem(clock *StepClock, rdf *RDFParams, box *SimBox, count *ParticleCount) {
	if clock.Current >= rdf.Start && clock.Current <= rdf.End {
		rdf.accumulate(box, count.N)
	}
	if clock.Current == rdf.End {
		if err := rdf.finalizeAndWrite(); err != nil {
			panic(err)
		}
	}
}

// finalizeAndWrite divides the running sum by the number of sampled
// frames and emits the CSV file. Called once, at Current == End.
func (p *RDFParams) finalizeAndWrite() error {
	frames := p.frames
	if frames == 0 {
		frames = 1
	}

	f, err := os.Create(p.Filename)
	if err != nil {
		return &IOError{Path: p.Filename, Err: err}
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, "r, g(r)"); err != nil {
		return &IOError{Path: p.Filename, Err: err}
	}
	for b := 0; b < p.NBins; b++ {
		g := p.accumDensity[b] / float64(frames)
		if _, err := fmt.Fprintf(f, "%g, %g\n", p.RCenters[b], g); err != nil {
			return &IOError{Path: p.Filename, Err: err}
		}
	}
	return nil
}
