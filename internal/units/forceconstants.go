package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// ForceConstants stores one per-mode triple, canonically in N/m. A
// scalar force constant broadcasts to (k, k, k) on append.
//
// The MILLIDYNE_PER_ANGSTROM conversion intentionally does not match
// straight dimensional analysis (1 mdyne/A = 100 N/m): the reference
// program's append path multiplies by 0.1 while its getter multiplies
// by 10, a self-consistent but dimensionally wrong pair. This
// container reproduces that pair faithfully — see the Open Question
// decision in DESIGN.md for why the bug is kept rather than corrected.
type ForceConstants struct {
	values []Vector3
}

// NewForceConstants returns an empty ForceConstants container.
func NewForceConstants() *ForceConstants { return &ForceConstants{} }

// Append converts a scalar force constant from unit and broadcasts it
// to (k, k, k).
func (fc *ForceConstants) Append(k float64, unit ForceConstantUnit) {
	fc.AppendTriple(k, k, k, unit)
}

// AppendTriple converts a (kx, ky, kz) triple from unit into N/m.
func (fc *ForceConstants) AppendTriple(kx, ky, kz float64, unit ForceConstantUnit) {
	f := 1.0
	if unit == MillidynePerAngstrom {
		f = constants.ForceConstantMilliToCanonical
	}
	fc.values = append(fc.values, Vector3{kx * f, ky * f, kz * f})
}

// Len returns the number of stored modes.
func (fc *ForceConstants) Len() int { return len(fc.values) }

// At returns the canonical-unit (N/m) triple for mode i.
func (fc *ForceConstants) At(i int) Vector3 { return fc.values[i] }

// NewtonPerMeterValues returns every triple in N/m.
func (fc *ForceConstants) NewtonPerMeterValues() []Vector3 {
	out := make([]Vector3, len(fc.values))
	copy(out, fc.values)
	return out
}

// MillidynePerAngstromAt returns mode i converted to mdyne/Å.
func (fc *ForceConstants) MillidynePerAngstromAt(i int) Vector3 {
	return fc.values[i].Scale(constants.ForceConstantCanonicalToMilli)
}

// MillidynePerAngstromValues returns every mode converted to mdyne/Å.
func (fc *ForceConstants) MillidynePerAngstromValues() []Vector3 {
	out := make([]Vector3, len(fc.values))
	for i, v := range fc.values {
		out[i] = v.Scale(constants.ForceConstantCanonicalToMilli)
	}
	return out
}
