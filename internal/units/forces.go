package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Forces stores one Cartesian triple per atom, canonically in Newton.
type Forces struct {
	values []Vector3
}

// NewForces returns an empty Forces container.
func NewForces() *Forces { return &Forces{} }

func forceToNewton(unit ForceUnit) float64 {
	switch unit {
	case Newton:
		return 1.0
	case Dyne:
		return constants.DyneToNewton
	case Millidyne:
		return constants.FromMilli * constants.DyneToNewton
	case HartreePerBohr:
		return constants.HartreePerBohrToNewton
	default:
		return 1.0
	}
}

func newtonTo(unit ForceUnit) float64 {
	switch unit {
	case Newton:
		return 1.0
	case Dyne:
		return constants.NewtonToDyne
	case Millidyne:
		return constants.NewtonToDyne * constants.ToMilli
	case HartreePerBohr:
		return constants.NewtonToHartreePerBohr
	default:
		return 1.0
	}
}

// Append converts (x, y, z) from unit into Newton and stores it.
func (f *Forces) Append(x, y, z float64, unit ForceUnit) {
	factor := forceToNewton(unit)
	f.values = append(f.values, Vector3{x * factor, y * factor, z * factor})
}

// Len returns the number of stored triples.
func (f *Forces) Len() int { return len(f.values) }

// At returns the canonical-unit (Newton) triple at index i.
func (f *Forces) At(i int) Vector3 { return f.values[i] }

// NewtonValues returns every triple converted to Newton.
func (f *Forces) NewtonValues() []Vector3 { return f.convertAll(Newton) }

// HartreePerBohrValues returns every triple converted to Hartree/Bohr.
func (f *Forces) HartreePerBohrValues() []Vector3 { return f.convertAll(HartreePerBohr) }

// HartreePerBohrAt returns triple i converted to Hartree/Bohr.
func (f *Forces) HartreePerBohrAt(i int) Vector3 { return f.convertOne(i, HartreePerBohr) }

func (f *Forces) convertOne(i int, unit ForceUnit) Vector3 {
	return f.values[i].Scale(newtonTo(unit))
}

func (f *Forces) convertAll(unit ForceUnit) []Vector3 {
	factor := newtonTo(unit)
	out := make([]Vector3, len(f.values))
	for i, v := range f.values {
		out[i] = v.Scale(factor)
	}
	return out
}

// Add returns the elementwise sum of two equal-length Forces.
func (f *Forces) Add(o *Forces) *Forces {
	return &Forces{values: zipVectors(f.values, o.values, Vector3.Add)}
}

// Sub returns the elementwise difference of two equal-length Forces.
func (f *Forces) Sub(o *Forces) *Forces {
	return &Forces{values: zipVectors(f.values, o.values, Vector3.Sub)}
}

// Mul returns every triple scaled by factor.
func (f *Forces) Mul(factor float64) *Forces {
	out := make([]Vector3, len(f.values))
	for i, v := range f.values {
		out[i] = v.Scale(factor)
	}
	return &Forces{values: out}
}
