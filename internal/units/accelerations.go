package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Accelerations stores one Cartesian triple per atom, canonically in
// meters/second^2. Only one unit is supported in practice, matching
// the reference container, which exposes no alternate unit for
// acceleration.
type Accelerations struct {
	values []Vector3
}

// NewAccelerations returns an empty Accelerations container.
func NewAccelerations() *Accelerations { return &Accelerations{} }

// Append stores (x, y, z) in m/s^2.
func (a *Accelerations) Append(x, y, z float64) {
	a.values = append(a.values, Vector3{x, y, z})
}

// Len returns the number of stored triples.
func (a *Accelerations) Len() int { return len(a.values) }

// At returns the triple at index i, in m/s^2.
func (a *Accelerations) At(i int) Vector3 { return a.values[i] }

// MeterPerSecSquaredValues returns every triple in m/s^2.
func (a *Accelerations) MeterPerSecSquaredValues() []Vector3 {
	out := make([]Vector3, len(a.values))
	copy(out, a.values)
	return out
}

// FromForces computes a = F/m per atom from a Forces container and
// the corresponding atom masses (amu), per Newton's second law. The
// two containers must be the same length.
func FromForces(f *Forces, massesAmu []float64) *Accelerations {
	if f.Len() != len(massesAmu) {
		panic("units: Forces/masses length mismatch")
	}
	out := make([]Vector3, f.Len())
	for i := range out {
		massKg := massesAmu[i] * constants.AmuToKg
		out[i] = f.At(i).Scale(1.0 / massKg)
	}
	return &Accelerations{values: out}
}
