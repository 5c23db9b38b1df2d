package ljmd

// Physical constants, SI units. AMU is applied once, at spawn time, when
// converting a configured atomic mass into the kilograms every downstream
// component assumes; the integrator never re-applies it (see DESIGN.md).
const (
	BoltzmannConstant = 1.380649e-23 // J/K
	AtomicMassUnit    = 1.66053906660e-27 // kg
)
