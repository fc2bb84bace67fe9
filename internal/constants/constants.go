// Package constants holds the physical constants and unit-conversion
// factors shared by the quantity containers, the sampler, and the
// integrator. Values are taken from CODATA where the source names a
// source, and kept to the same precision the reference program used.
package constants

const (
	// SpeedOfLightMetersPerSec is c in m/s (CODATA, SI exact).
	SpeedOfLightMetersPerSec = 299792458.0
	// SpeedOfLightCmPerSec is c in cm/s. The zero-point-energy formula
	// (E = 1/2 h c nu, with nu in cm^-1) needs c expressed in cm/s to
	// land in a Hz-compatible product; this module uses this constant
	// for that one computation and SpeedOfLightMetersPerSec everywhere
	// a velocity in SI units is meant. See DESIGN.md for why both are
	// kept instead of converting one into the other at the call site.
	SpeedOfLightCmPerSec = 2.99792458e10

	// PlanckConstant is h in J*s.
	PlanckConstant = 6.62607015e-34

	// AvogadroNumber is N_A, particles per mole.
	AvogadroNumber = 6.02214076e23

	// GasConstantKcal is R in kcal/(mol*K).
	GasConstantKcal = 0.00198720425864083

	// ClassicalSpacing is the fixed spacing (cm^-1) used for the
	// classical-oscillator zero-point baseline instead of a mode's
	// own frequency.
	ClassicalSpacing = 2.0

	// Metric prefixes.
	FromKilo  = 1e-3
	ToKilo    = 1e3
	ToMilli   = 1e3
	FromMilli = 1e-3
	ToCenti   = 1e2
	FromCenti = 1e-2

	MoleToParticle = 1.0 / AvogadroNumber
	ParticleToMole = AvogadroNumber

	// Distance.
	AngstromToMeter = 1e-10
	MeterToAngstrom = 1.0 / AngstromToMeter
	BohrToAngstrom  = 0.52917721090380
	AngstromToBohr  = 1.0 / BohrToAngstrom

	// Mass.
	AmuToKg = 1.66053878e-27
	KgToAmu = 1.0 / AmuToKg

	// Force.
	HartreePerBohrToNewton = 8.2387234983e-8
	NewtonToHartreePerBohr = 1.0 / HartreePerBohrToNewton
	NewtonToDyne           = 1e5
	DyneToNewton           = 1.0 / NewtonToDyne

	// Time.
	SecondToFemtosecond = 1e15
	FemtosecondToSecond = 1.0 / SecondToFemtosecond

	// Energy.
	CalorieToJoule        = 4.184
	JouleToCalorie        = 1.0 / CalorieToJoule
	JouleToKcalPerMole    = JouleToCalorie / 1000.0 * AvogadroNumber
	KcalPerMoleToJoule    = 1.0 / JouleToKcalPerMole
	JouleToMdyneAngstrom  = 1e18 // 1 J = 1e18 mdyne*Angstrom (1 mdyne*A = 1e-18 J)
	MdyneAngstromToJoule  = 1.0 / JouleToMdyneAngstrom
	HartreeToJoule        = 4.359744722207185e-18
	JouleToHartree        = 1.0 / HartreeToJoule

	// ForceConstantMilliToCanonical is the mdyne/Angstrom -> N/m
	// conversion factor the reference implementation's append path uses,
	// and ForceConstantCanonicalToMilli is what its getter uses to go back.
	// True dimensional analysis gives 1 mdyne/A = 100 N/m, so these
	// should be inverse reciprocals of each other (100 and 0.01); the
	// reference program instead carries a consistent 0.1/10 pair.
	// This module reproduces the reference pair faithfully -- see the
	// Open Question decision in DESIGN.md.
	ForceConstantMilliToCanonical = 0.1
	ForceConstantCanonicalToMilli = 10.0
)
