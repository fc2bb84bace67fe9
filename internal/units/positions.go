package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Positions stores one Cartesian triple per atom, canonically in
// Angstrom. All other distance units convert through this value on
// both append and read.
type Positions struct {
	values []Vector3
}

// NewPositions returns an empty Positions container.
func NewPositions() *Positions { return &Positions{} }

func distanceToAngstrom(unit DistanceUnit) float64 {
	switch unit {
	case Angstrom:
		return 1.0
	case Bohr:
		return constants.BohrToAngstrom
	case Meter:
		return constants.MeterToAngstrom
	default:
		return 1.0
	}
}

func angstromTo(unit DistanceUnit) float64 {
	switch unit {
	case Angstrom:
		return 1.0
	case Bohr:
		return constants.AngstromToBohr
	case Meter:
		return constants.AngstromToMeter
	default:
		return 1.0
	}
}

// Append converts (x, y, z) from unit into Angstrom and stores it.
func (p *Positions) Append(x, y, z float64, unit DistanceUnit) {
	f := distanceToAngstrom(unit)
	p.values = append(p.values, Vector3{x * f, y * f, z * f})
}

// AlterPosition replaces the triple at index i, converting from unit.
func (p *Positions) AlterPosition(i int, x, y, z float64, unit DistanceUnit) {
	f := distanceToAngstrom(unit)
	p.values[i] = Vector3{x * f, y * f, z * f}
}

// Len returns the number of stored triples.
func (p *Positions) Len() int { return len(p.values) }

// At returns the canonical-unit (Angstrom) triple at index i.
func (p *Positions) At(i int) Vector3 { return p.values[i] }

// Angstrom returns every triple converted to Angstrom.
func (p *Positions) Angstrom() []Vector3 { return p.convertAll(Angstrom) }

// AngstromAt returns triple i converted to Angstrom.
func (p *Positions) AngstromAt(i int) Vector3 { return p.convertOne(i, Angstrom) }

// BohrValues returns every triple converted to Bohr.
func (p *Positions) BohrValues() []Vector3 { return p.convertAll(Bohr) }

// BohrAt returns triple i converted to Bohr.
func (p *Positions) BohrAt(i int) Vector3 { return p.convertOne(i, Bohr) }

// MeterValues returns every triple converted to meters.
func (p *Positions) MeterValues() []Vector3 { return p.convertAll(Meter) }

// MeterAt returns triple i converted to meters.
func (p *Positions) MeterAt(i int) Vector3 { return p.convertOne(i, Meter) }

func (p *Positions) convertOne(i int, unit DistanceUnit) Vector3 {
	f := angstromTo(unit)
	return p.values[i].Scale(f)
}

func (p *Positions) convertAll(unit DistanceUnit) []Vector3 {
	f := angstromTo(unit)
	out := make([]Vector3, len(p.values))
	for i, v := range p.values {
		out[i] = v.Scale(f)
	}
	return out
}

// Add returns the elementwise sum of two equal-length Positions.
func (p *Positions) Add(o *Positions) *Positions {
	return &Positions{values: zipVectors(p.values, o.values, Vector3.Add)}
}

// Sub returns the elementwise difference of two equal-length Positions.
func (p *Positions) Sub(o *Positions) *Positions {
	return &Positions{values: zipVectors(p.values, o.values, Vector3.Sub)}
}

// Mul returns every triple scaled by factor.
func (p *Positions) Mul(factor float64) *Positions {
	out := make([]Vector3, len(p.values))
	for i, v := range p.values {
		out[i] = v.Scale(factor)
	}
	return &Positions{values: out}
}

// FromVelocity returns the Angstrom displacement each atom undergoes
// over changeInTime given constant velocities — a displacement, not
// an absolute position.
func FromVelocity(v *Velocities, changeInTime float64) *Positions {
	out := make([]Vector3, v.Len())
	for i := range out {
		mps := v.At(i)
		out[i] = mps.Scale(changeInTime * constants.MeterToAngstrom)
	}
	return &Positions{values: out}
}

// FromAcceleration returns the Angstrom displacement each atom
// undergoes over changeInTime under constant acceleration — a
// displacement, not an absolute position.
func FromAcceleration(a *Accelerations, changeInTime float64) *Positions {
	out := make([]Vector3, a.Len())
	for i := range out {
		mps2 := a.At(i)
		out[i] = mps2.Scale(0.5 * changeInTime * changeInTime * constants.MeterToAngstrom)
	}
	return &Positions{values: out}
}

func zipVectors(a, b []Vector3, op func(Vector3, Vector3) Vector3) []Vector3 {
	if len(a) != len(b) {
		panic("units: mismatched container lengths")
	}
	out := make([]Vector3, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}
