package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Energies stores one scalar per step, canonically in Joules.
type Energies struct {
	values []float64
}

// NewEnergies returns an empty Energies container.
func NewEnergies() *Energies { return &Energies{} }

func energyToJoule(unit EnergyUnit) float64 {
	switch unit {
	case Joule:
		return 1.0
	case KcalPerMole:
		return constants.KcalPerMoleToJoule
	case MillidyneAngstrom:
		return constants.MdyneAngstromToJoule
	case Hartree:
		return constants.HartreeToJoule
	default:
		return 1.0
	}
}

func jouleTo(unit EnergyUnit) float64 {
	switch unit {
	case Joule:
		return 1.0
	case KcalPerMole:
		return constants.JouleToKcalPerMole
	case MillidyneAngstrom:
		return constants.JouleToMdyneAngstrom
	case Hartree:
		return constants.JouleToHartree
	default:
		return 1.0
	}
}

// Append converts value from unit into Joules and stores it.
func (e *Energies) Append(value float64, unit EnergyUnit) {
	e.values = append(e.values, value*energyToJoule(unit))
}

// AlterEnergy replaces the value at index i, converting from unit.
func (e *Energies) AlterEnergy(i int, value float64, unit EnergyUnit) {
	e.values[i] = value * energyToJoule(unit)
}

// Len returns the number of stored values.
func (e *Energies) Len() int { return len(e.values) }

// At returns the canonical-unit (Joule) value at index i.
func (e *Energies) At(i int) float64 { return e.values[i] }

// Joules returns every value in Joules.
func (e *Energies) Joules() []float64 { return e.convertAll(Joule) }

// KcalPerMoleValues returns every value in kcal/mol.
func (e *Energies) KcalPerMoleValues() []float64 { return e.convertAll(KcalPerMole) }

// KcalPerMoleAt returns value i in kcal/mol.
func (e *Energies) KcalPerMoleAt(i int) float64 { return e.convertOne(i, KcalPerMole) }

// HartreeAt returns value i in Hartree.
func (e *Energies) HartreeAt(i int) float64 { return e.convertOne(i, Hartree) }

// MillidyneAngstromAt returns value i in mdyne*Å.
func (e *Energies) MillidyneAngstromAt(i int) float64 { return e.convertOne(i, MillidyneAngstrom) }

// HartreeValues returns every value in Hartree.
func (e *Energies) HartreeValues() []float64 { return e.convertAll(Hartree) }

func (e *Energies) convertOne(i int, unit EnergyUnit) float64 {
	return e.values[i] * jouleTo(unit)
}

func (e *Energies) convertAll(unit EnergyUnit) []float64 {
	f := jouleTo(unit)
	out := make([]float64, len(e.values))
	for i, v := range e.values {
		out[i] = v * f
	}
	return out
}

// Add returns the elementwise sum of two equal-length Energies.
func (e *Energies) Add(o *Energies) *Energies {
	return &Energies{values: zipScalars(e.values, o.values, func(a, b float64) float64 { return a + b })}
}

// Sub returns the elementwise difference of two equal-length Energies.
func (e *Energies) Sub(o *Energies) *Energies {
	return &Energies{values: zipScalars(e.values, o.values, func(a, b float64) float64 { return a - b })}
}

// Mul returns every value scaled by factor.
func (e *Energies) Mul(factor float64) *Energies {
	out := make([]float64, len(e.values))
	for i, v := range e.values {
		out[i] = v * factor
	}
	return &Energies{values: out}
}

func zipScalars(a, b []float64, op func(float64, float64) float64) []float64 {
	if len(a) != len(b) {
		panic("units: mismatched container lengths")
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}
