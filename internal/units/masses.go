package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Masses stores one scalar per atom/mode, canonically in amu.
type Masses struct {
	values []float64
}

// NewMasses returns an empty Masses container.
func NewMasses() *Masses { return &Masses{} }

func massToAmu(unit MassUnit) float64 {
	switch unit {
	case Amu:
		return 1.0
	case Kilogram:
		return constants.KgToAmu
	case Gram:
		return constants.FromKilo * constants.KgToAmu
	default:
		return 1.0
	}
}

func amuTo(unit MassUnit) float64 {
	switch unit {
	case Amu:
		return 1.0
	case Kilogram:
		return constants.AmuToKg
	case Gram:
		return constants.AmuToKg * constants.ToKilo
	default:
		return 1.0
	}
}

// Append converts value from unit into amu and stores it.
func (m *Masses) Append(value float64, unit MassUnit) {
	m.values = append(m.values, value*massToAmu(unit))
}

// Len returns the number of stored values.
func (m *Masses) Len() int { return len(m.values) }

// At returns the canonical-unit (amu) value at index i.
func (m *Masses) At(i int) float64 { return m.values[i] }

// AmuValues returns every value in amu.
func (m *Masses) AmuValues() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}

// KilogramAt returns value i in kilograms.
func (m *Masses) KilogramAt(i int) float64 { return m.values[i] * amuTo(Kilogram) }
