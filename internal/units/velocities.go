package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Velocities stores one Cartesian triple per atom, canonically in
// meters/second.
type Velocities struct {
	values []Vector3
}

// NewVelocities returns an empty Velocities container.
func NewVelocities() *Velocities { return &Velocities{} }

func velocityToMeterPerSec(unit VelocityUnit) float64 {
	switch unit {
	case MeterPerSec:
		return 1.0
	case AngstromPerFemtosecond:
		return constants.AngstromToMeter * constants.SecondToFemtosecond
	case AngstromPerSec:
		return constants.AngstromToMeter
	default:
		return 1.0
	}
}

func meterPerSecTo(unit VelocityUnit) float64 {
	switch unit {
	case MeterPerSec:
		return 1.0
	case AngstromPerFemtosecond:
		return constants.MeterToAngstrom * constants.FemtosecondToSecond
	case AngstromPerSec:
		return constants.MeterToAngstrom
	default:
		return 1.0
	}
}

// Append converts (x, y, z) from unit into m/s and stores it.
func (v *Velocities) Append(x, y, z float64, unit VelocityUnit) {
	f := velocityToMeterPerSec(unit)
	v.values = append(v.values, Vector3{x * f, y * f, z * f})
}

// Len returns the number of stored triples.
func (v *Velocities) Len() int { return len(v.values) }

// At returns the canonical-unit (m/s) triple at index i.
func (v *Velocities) At(i int) Vector3 { return v.values[i] }

// MeterPerSecValues returns every triple converted to m/s.
func (v *Velocities) MeterPerSecValues() []Vector3 { return v.convertAll(MeterPerSec) }

// MeterPerSecAt returns triple i converted to m/s.
func (v *Velocities) MeterPerSecAt(i int) Vector3 { return v.convertOne(i, MeterPerSec) }

// AngstromPerFemtosecondValues returns every triple converted to Å/fs.
func (v *Velocities) AngstromPerFemtosecondValues() []Vector3 {
	return v.convertAll(AngstromPerFemtosecond)
}

// AngstromPerSecValues returns every triple converted to Å/s.
func (v *Velocities) AngstromPerSecValues() []Vector3 { return v.convertAll(AngstromPerSec) }

// AngstromPerSecAt returns triple i converted to Å/s.
func (v *Velocities) AngstromPerSecAt(i int) Vector3 { return v.convertOne(i, AngstromPerSec) }

func (v *Velocities) convertOne(i int, unit VelocityUnit) Vector3 {
	return v.values[i].Scale(meterPerSecTo(unit))
}

func (v *Velocities) convertAll(unit VelocityUnit) []Vector3 {
	f := meterPerSecTo(unit)
	out := make([]Vector3, len(v.values))
	for i, val := range v.values {
		out[i] = val.Scale(f)
	}
	return out
}

// Add returns the elementwise sum of two equal-length Velocities.
func (v *Velocities) Add(o *Velocities) *Velocities {
	return &Velocities{values: zipVectors(v.values, o.values, Vector3.Add)}
}

// Sub returns the elementwise difference of two equal-length Velocities.
func (v *Velocities) Sub(o *Velocities) *Velocities {
	return &Velocities{values: zipVectors(v.values, o.values, Vector3.Sub)}
}

// Mul returns every triple scaled by factor.
func (v *Velocities) Mul(factor float64) *Velocities {
	out := make([]Vector3, len(v.values))
	for i, val := range v.values {
		out[i] = val.Scale(factor)
	}
	return &Velocities{values: out}
}
