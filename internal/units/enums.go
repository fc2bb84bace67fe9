package units

// DistanceUnit enumerates the units Positions can be read and written in.
type DistanceUnit int

const (
	Angstrom DistanceUnit = iota
	Bohr
	Meter
)

// VelocityUnit enumerates the units Velocities can be read and written in.
type VelocityUnit int

const (
	MeterPerSec VelocityUnit = iota
	AngstromPerFemtosecond
	AngstromPerSec
)

// ForceUnit enumerates the units Forces can be read and written in.
type ForceUnit int

const (
	Newton ForceUnit = iota
	Dyne
	Millidyne
	HartreePerBohr
)

// EnergyUnit enumerates the units Energies can be read and written in.
type EnergyUnit int

const (
	Joule EnergyUnit = iota
	KcalPerMole
	MillidyneAngstrom
	Hartree
)

// ForceConstantUnit enumerates the units ForceConstants can be read
// and written in.
type ForceConstantUnit int

const (
	NewtonPerMeter ForceConstantUnit = iota
	MillidynePerAngstrom
)

// MassUnit enumerates the units Masses can be read and written in.
type MassUnit int

const (
	Amu MassUnit = iota
	Kilogram
	Gram
)

// TimeUnit enumerates the units Time can be read and written in.
type TimeUnit int

const (
	Second TimeUnit = iota
	Femtosecond
)

// AngleUnit enumerates angle representations; carried over from the
// reference enumerations even though no Milo component currently
// consumes an angle quantity, for parity with the full enum set.
type AngleUnit int

const (
	Radians AngleUnit = iota
	Degrees
)
