package ljmd

import (
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// BatchSize is the tunable chunking granularity the worker pool uses for
// parallel per-particle stages. Purely a performance knob; a value < 1 is
// treated as 1 by ParallelMap.
type BatchSize struct {
	N int
}

// TrjName is the trajectory file prefix; frames are written to
// "<TrjName>_<step>.trj".
type TrjName struct {
	Prefix string
}

// OutInterval is the step stride at which trajectory frames are emitted
// (step 0 is always emitted in addition to the stride).
type OutInterval struct {
	Steps uint64
}

// RunID tags a run with a stable identifier. The CLI logs it once at
// startup; it is not written into the trajectory or RDF files.
type RunID struct {
	ID uuid.UUID
}

// RDFConfig mirrors RDFParams' setup-time fields in a yaml-friendly shape;
// the CLI copies it into an RDFParams, whose Validate sizes the histogram
// buffers.
type RDFConfig struct {
	AtomA    string  `yaml:"atom_a"`
	AtomB    string  `yaml:"atom_b"`
	NBins    int     `yaml:"n_bins"`
	Range    float64 `yaml:"range"`
	Start    uint64  `yaml:"start"`
	End      uint64  `yaml:"end"`
	Filename string  `yaml:"file"`
}

// Config is the complete setup-time description of a run, loaded from
// YAML by cmd/mdrun.
type Config struct {
	NAtoms       int       `yaml:"n_atoms"`
	Delta        float64   `yaml:"delta"`
	NSteps       uint64    `yaml:"n_steps"`
	Batch        int       `yaml:"batch"`
	BoxOrigin    [3]float64 `yaml:"box_origin"`
	BoxLength    [3]float64 `yaml:"box_length"`
	Cutoff       float64   `yaml:"cutoff"`
	TrjName      string    `yaml:"trj_name"`
	OutputInterval uint64  `yaml:"output_interval"`

	AtomName    string  `yaml:"atom_name"`
	AtomSigma   float64 `yaml:"atom_sigma"`
	AtomEpsilon float64 `yaml:"atom_epsilon"`
	AtomMassAMU float64 `yaml:"atom_mass_amu"`

	RDF RDFConfig `yaml:"rdf"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Field: path, Reason: err.Error()}
	}
	return &cfg, nil
}

// Validate checks every setup-time invariant the core relies on and
// fails with the first ConfigError it finds, before any step runs.
func (c *Config) Validate() error {
	if c.NAtoms <= 0 {
		return &ConfigError{Field: "n_atoms", Reason: "must be at least 1"}
	}
	if c.Delta <= 0 {
		return &ConfigError{Field: "delta", Reason: "must be strictly positive"}
	}
	if c.Cutoff <= 0 {
		return &ConfigError{Field: "cutoff", Reason: "must be strictly positive"}
	}
	for k := 0; k < 3; k++ {
		if c.BoxLength[k] <= 0 {
			return &ConfigError{Field: "box_length", Reason: "every axis must be strictly positive"}
		}
	}
	if c.RDF.Start > c.RDF.End {
		return &ConfigError{Field: "rdf.start", Reason: "must not exceed rdf.end"}
	}
	if c.RDF.End > c.NSteps {
		return &ConfigError{Field: "rdf.end", Reason: "must not exceed n_steps"}
	}
	if c.RDF.NBins < 1 {
		return &ConfigError{Field: "rdf.n_bins", Reason: "must be at least 1"}
	}
	if c.RDF.Range <= 0 {
		return &ConfigError{Field: "rdf.range", Reason: "must be strictly positive"}
	}
	return nil
}

// NewRunID mints a fresh identifier for one run.
func NewRunID() RunID {
	return RunID{ID: uuid.New()}
}
