package units

// Frequencies stores one scalar per mode, canonically (and only) in
// cm^-1 — the reference container exposes no other unit.
type Frequencies struct {
	values []float64
}

// NewFrequencies returns an empty Frequencies container.
func NewFrequencies() *Frequencies { return &Frequencies{} }

// Append stores a frequency in cm^-1.
func (f *Frequencies) Append(value float64) {
	f.values = append(f.values, value)
}

// Len returns the number of stored modes.
func (f *Frequencies) Len() int { return len(f.values) }

// At returns the frequency of mode i, in cm^-1.
func (f *Frequencies) At(i int) float64 { return f.values[i] }

// ReciprocalCmValues returns every mode frequency in cm^-1.
func (f *Frequencies) ReciprocalCmValues() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}
