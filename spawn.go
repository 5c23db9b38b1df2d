package ljmd

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/stat/distuv"
)

// SpawnConfig describes the single-species population the spawn routine
// inserts: every particle gets the same AtomType and a mass already
// converted to kilograms.
type SpawnConfig struct {
	N             int
	AtomName      string
	Sigma         float64
	Epsilon       float64
	MassAMU       float64
	VelocitySigma float64 // m/s, isotropic Gaussian per axis; sources use 460
	Seed          int64
}

// SpawnAtoms inserts N entities with Position sampled uniformly in the box
// and Velocity sampled from an isotropic Gaussian, Force/OldForce zeroed,
// and the configured AtomType/Mass. It is an external-collaborator
// interface: random sampling itself is out of the core's scope, only the
// shape of the resulting components is.
func SpawnAtoms(cmd *Commands, box *SimBox, cfg SpawnConfig) []EntityId {
	gen := rand.New(rand.NewSource(cfg.Seed))
	gauss := distuv.Normal{Mu: 0, Sigma: cfg.VelocitySigma}

	atomType := AtomType{Name: cfg.AtomName, Sigma: cfg.Sigma, Epsilon: cfg.Epsilon}
	mass := Mass{Value: cfg.MassAMU * AtomicMassUnit}

	ids := make([]EntityId, 0, cfg.N)
	for i := 0; i < cfg.N; i++ {
		pos := mgl64.Vec3{
			box.Origin.X() + gen.Float64()*box.Dimension.X(),
			box.Origin.Y() + gen.Float64()*box.Dimension.Y(),
			box.Origin.Z() + gen.Float64()*box.Dimension.Z(),
		}
		vel := mgl64.Vec3{
			gauss.Quantile(gen.Float64()),
			gauss.Quantile(gen.Float64()),
			gauss.Quantile(gen.Float64()),
		}

		id := cmd.AddEntity(
			Position{Vec: pos},
			Velocity{Vec: vel},
			Force{},
			OldForce{},
			mass,
			atomType,
		)
		ids = append(ids, id)
	}
	return ids
}
