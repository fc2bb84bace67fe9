package units

import "github.com/sarat-asymmetrica/milo/internal/constants"

// Time is a scalar quantity, canonically in seconds. Unlike the other
// containers it holds exactly one value — a trajectory has a single
// step size — rather than a growing sequence.
type Time struct {
	seconds float64
}

// NewTime converts value from unit into seconds.
func NewTime(value float64, unit TimeUnit) Time {
	f := 1.0
	if unit == Femtosecond {
		f = constants.FemtosecondToSecond
	}
	return Time{seconds: value * f}
}

// AsSecond returns the value in seconds.
func (t Time) AsSecond() float64 { return t.seconds }

// AsFemtosecond returns the value in femtoseconds.
func (t Time) AsFemtosecond() float64 { return t.seconds * constants.SecondToFemtosecond }
