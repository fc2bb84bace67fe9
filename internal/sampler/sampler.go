// Package sampler implements the initial-state sampler: it converts a
// molecule's normal-mode analysis and a target temperature into a
// sampled vibrational quantum state, a geometry displacement, and a
// set of atomic velocities — optionally biased by an imaginary-mode
// phase decision, an energy-boost resampling loop, and a rotational
// kick.
package sampler

import (
	"fmt"
	"math"

	"github.com/sarat-asymmetrica/milo/internal/constants"
	"github.com/sarat-asymmetrica/milo/internal/milerr"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

// unitsKE converts (amu * (Å/s)^2) into kcal/mol, the same composite
// factor the kinetic-energy and rotational-kick steps both use.
const unitsKE = constants.AmuToKg * constants.AngstromToMeter * constants.AngstromToMeter * constants.JouleToKcalPerMole

// Report captures the diagnostic numbers from a call to Generate
// (boost attempts, total ZPE, vibrational quanta, shifts, mode
// velocities, rotational energy, and the kinetic energy of the
// projected velocities). The orchestrator prints only the attempt
// count and the total ZPE, and only when energy boost is on.
type Report struct {
	BoostAttempts     int
	TotalZPEKcal      float64
	Quanta            []int
	Shifts            []float64 // Å, signed, one per mode
	ModeVelocitiesAps []float64 // Å/s, signed, one per mode
	RotationalEnergy  float64   // kcal/mol
	KineticEnergyKcal float64
}

// Generate samples an initial microstate for s and appends one
// Velocities value (and, if geometry displacement is enabled,
// perturbs structures[0]). It requires frequency data to already be
// populated and fails with InputError if it is missing, if the
// temperature is negative, or if an energy-boost ceiling is set below
// the total zero-point energy.
func Generate(s *state.ProgramState) (Report, error) {
	numModes := s.NumModes()
	if numModes == 0 {
		return Report{}, milerr.Input("no frequency data: cannot sample an initial state")
	}
	if s.Temperature < 0 {
		return Report{}, milerr.Input("temperature %.2f K is negative", s.Temperature)
	}

	zpePerMode, totalZPE := zeroPointEnergies(s)
	if s.EnergyBoost == state.EnergyBoostOn && s.EnergyBoostMax < totalZPE {
		return Report{}, milerr.Input("energy boost max %.4f kcal/mol is below total ZPE %.4f kcal/mol", s.EnergyBoostMax, totalZPE)
	}

	report := Report{TotalZPEKcal: totalZPE}

	var quanta []int
	var modeEnergies []float64
	var shifts []float64
	attempts := 0
	for {
		attempts++
		quanta = sampleQuanta(s, zpePerMode)
		modeEnergies, shifts = modeEnergiesAndShifts(s, zpePerMode, quanta)

		totalEnergy := 0.0
		for _, e := range modeEnergies {
			totalEnergy += e
		}

		if s.EnergyBoost != state.EnergyBoostOn {
			break
		}
		mutated := applyEnergyBoost(s, totalEnergy)
		if !mutated {
			break
		}
	}
	report.BoostAttempts = attempts
	report.Quanta = quanta
	report.Shifts = shifts

	applyGeometryDisplacement(s, shifts)

	pushesApart := checkIfModePushesApart(s)
	modeVelocities := modeVelocities(s, modeEnergies, shifts, pushesApart)
	report.ModeVelocitiesAps = modeVelocities

	atomicVelocities := projectToAtoms(s, modeVelocities)
	report.KineticEnergyKcal = kineticEnergyKcal(s, atomicVelocities)

	if s.AddRotationalEnergy == state.RotationalEnergyOn {
		report.RotationalEnergy = addRotationalEnergy(s, atomicVelocities)
	}

	v := units.NewVelocities()
	for _, av := range atomicVelocities {
		v.Append(av.X, av.Y, av.Z, units.AngstromPerSec)
	}
	s.Velocities = append(s.Velocities, v)

	return report, nil
}

// zeroPointEnergies returns each mode's zero-point (or classical
// baseline) energy in kcal/mol, plus their sum. Frequencies below
// 2 cm^-1 are clamped to 2 before the energy formula is applied. The
// speed of light is taken in cm/s so that h*c*nu (nu in cm^-1) lands
// in Joules per the Open Question decision recorded in DESIGN.md.
func zeroPointEnergies(s *state.ProgramState) ([]float64, float64) {
	n := s.NumModes()
	perMode := make([]float64, n)
	total := 0.0
	for f := 0; f < n; f++ {
		freq := math.Max(s.Frequencies.At(f), 2.0)
		var joulesPerParticle float64
		if s.OscillatorType == state.Classical {
			joulesPerParticle = 0.5 * constants.PlanckConstant * constants.SpeedOfLightCmPerSec * constants.ClassicalSpacing
		} else {
			joulesPerParticle = 0.5 * constants.PlanckConstant * constants.SpeedOfLightCmPerSec * freq
		}
		kcal := joulesPerParticle * constants.JouleToKcalPerMole
		perMode[f] = kcal
		total += kcal
	}
	return perMode, total
}

// sampleQuanta draws a vibrational quantum number per mode from the
// Boltzmann geometric distribution at s.Temperature, then applies any
// fixed_vibrational_quanta overrides. At T=0 every mode is in its
// ground state and no random draws occur.
func sampleQuanta(s *state.ProgramState, zpePerMode []float64) []int {
	n := len(zpePerMode)
	quanta := make([]int, n)
	if s.Temperature > 0 {
		for f := 0; f < n; f++ {
			r := math.Exp(-2 * zpePerMode[f] / (constants.GasConstantKcal * s.Temperature))
			if r > 1-1e-11 {
				r = 1 - 1e-11
			}
			u := s.Random.Uniform()
			quanta[f] = drawQuantumNumber(r, u)
		}
	}
	for mode, n := range s.FixedVibrationalQuanta {
		if mode >= 0 && mode < len(quanta) {
			quanta[mode] = n
		}
	}
	return quanta
}

// drawQuantumNumber accumulates the geometric-series CDF
// sum_{i=1}^{k} r^(i-1)*(1-r) until it reaches or exceeds u, bounded
// by a safety cap of floor(4000*r+2) terms, and returns k-1 (so
// u < 1-r, the first term, yields quantum number 0).
func drawQuantumNumber(r, u float64) int {
	maxIter := int(4000*r + 2)
	cdf := 0.0
	i := 1
	for ; i <= maxIter; i++ {
		cdf += math.Pow(r, float64(i-1)) * (1 - r)
		if cdf >= u {
			break
		}
	}
	if i > maxIter {
		i = maxIter
	}
	return i - 1
}

// modeEnergiesAndShifts computes each mode's total vibrational energy
// (kcal/mol) and its maximum spatial displacement (Å), then draws a
// random weight and scales the displacement by it.
func modeEnergiesAndShifts(s *state.ProgramState, zpePerMode []float64, quanta []int) ([]float64, []float64) {
	n := len(zpePerMode)
	energies := make([]float64, n)
	shifts := make([]float64, n)
	for f := 0; f < n; f++ {
		freq := s.Frequencies.At(f)
		nf := float64(quanta[f])

		var energy float64
		if s.OscillatorType == state.Quasiclassical && freq > 10 {
			energy = zpePerMode[f] * (2*nf + 1)
		} else {
			energy = zpePerMode[f] * 2 * nf
		}
		energies[f] = energy

		kMdyneA := s.ForceConstants.MillidynePerAngstromAt(f).X
		energyMdyneA := kcalToMdyneAngstrom(energy)
		maxShift := math.Sqrt(2 * energyMdyneA / kMdyneA)

		weight := 0.0
		if freq > 10 {
			switch s.GeometryDisplacement {
			case state.DisplacementEdgeWeighted:
				weight = s.Random.EdgeWeighted()
			case state.DisplacementGaussian:
				weight = s.Random.Gaussian()
			case state.DisplacementUniform:
				weight = 2 * (s.Random.Uniform() - 0.5)
			case state.DisplacementNone:
				weight = 0
			}
		}
		shifts[f] = maxShift * weight
	}
	return energies, shifts
}

func kcalToMdyneAngstrom(kcal float64) float64 {
	joules := kcal * constants.KcalPerMoleToJoule
	return joules * constants.JouleToMdyneAngstrom
}

// applyEnergyBoost applies the boundary predicate from the reference
// program (<=/>= rather than strict inequalities) and mutates the
// temperature in place when it fires, signaling the caller to resample.
func applyEnergyBoost(s *state.ProgramState, totalVibrationalEnergyKcal float64) bool {
	if totalVibrationalEnergyKcal <= s.EnergyBoostMin {
		s.Temperature += 5.0
		return true
	}
	if totalVibrationalEnergyKcal >= s.EnergyBoostMax {
		s.Temperature -= 2.0
		return true
	}
	return false
}

// applyGeometryDisplacement perturbs structures[0] by shift_f *
// mode_displacement[f] for every mode, when displacement is enabled.
func applyGeometryDisplacement(s *state.ProgramState, shifts []float64) {
	if s.GeometryDisplacement == state.DisplacementNone {
		return
	}
	structure := s.Structures[0]
	for f, shift := range shifts {
		if shift == 0 {
			continue
		}
		disp := s.ModeDisplacements[f]
		for j := 0; j < structure.Len(); j++ {
			p := structure.AngstromAt(j)
			d := disp[j]
			structure.AlterPosition(j, p.X+d.X*shift, p.Y+d.Y*shift, p.Z+d.Z*shift, units.Angstrom)
		}
	}
}

// checkIfModePushesApart compares the squared distance between the
// two phase atoms before and after applying the first mode's
// displacement, using the current (already-displaced) structure as
// the "before" reference point.
func checkIfModePushesApart(s *state.ProgramState) bool {
	if s.Phase == nil || len(s.ModeDisplacements) == 0 {
		return false
	}
	structure := s.Structures[0]
	pi := structure.AngstromAt(s.Phase.AtomI)
	pj := structure.AngstromAt(s.Phase.AtomJ)
	before := pi.Sub(pj).MagnitudeSquared()

	disp := s.ModeDisplacements[0]
	mi := disp[s.Phase.AtomI]
	mj := disp[s.Phase.AtomJ]
	after := pi.Add(mi).Sub(pj.Add(mj)).MagnitudeSquared()
	return after > before
}

// modeVelocities computes the signed mode velocity for every mode
// (Å/s). Mode 0's sign follows the phase decision when its frequency
// is imaginary and the phase is bring_together or push_apart (no random
// draw for it then); every other mode draws a random sign, and that
// draw still happens when a fixed direction overrides it, to keep the
// PRNG stream aligned with later draws (§4.F Step 6).
func modeVelocities(s *state.ProgramState, modeEnergies, shifts []float64, pushesApart bool) []float64 {
	n := len(modeEnergies)
	velocities := make([]float64, n)
	for f := 0; f < n; f++ {
		kMdyneA := s.ForceConstants.MillidynePerAngstromAt(f).X
		energyMdyneA := kcalToMdyneAngstrom(modeEnergies[f])
		potentialMdyneA := 0.5 * kMdyneA * shifts[f] * shifts[f]
		keJoules := (energyMdyneA - potentialMdyneA) * constants.MdyneAngstromToJoule
		if keJoules < 0 {
			keJoules = 0
		}

		var direction float64
		if f == 0 && s.Frequencies.At(0) < 0 {
			switch s.PhaseDirection {
			case state.PhaseRandom:
				direction = s.Random.OneOrNegOne()
			case state.PhasePushApart:
				direction = signForPushApart(pushesApart)
			case state.PhaseBringTogether:
				direction = -signForPushApart(pushesApart)
			}
		} else {
			direction = s.Random.OneOrNegOne()
			if s.PhaseDirection == state.PhaseBringTogether {
				direction = -direction
			}
		}

		if fixed, ok := s.FixedModeDirections[f]; ok {
			direction = fixed
		}

		reducedMassKg := s.ReducedMasses.KilogramAt(f)
		velocityMPerS := math.Sqrt(2 * keJoules / reducedMassKg)
		velocities[f] = direction * velocityMPerS * constants.MeterToAngstrom
	}
	return velocities
}

func signForPushApart(pushesApart bool) float64 {
	if pushesApart {
		return 1
	}
	return -1
}

// projectToAtoms sums each mode's velocity, weighted by its per-atom
// displacement vector, into one velocity triple per atom (Å/s).
func projectToAtoms(s *state.ProgramState, modeVelocities []float64) []units.Vector3 {
	out := make([]units.Vector3, s.NumAtoms())
	for f, v := range modeVelocities {
		disp := s.ModeDisplacements[f]
		for j := range out {
			out[j] = out[j].Add(disp[j].Scale(v))
		}
	}
	return out
}

// kineticEnergyKcal is a pure diagnostic: the classical kinetic energy
// of the projected atomic velocities, in kcal/mol.
func kineticEnergyKcal(s *state.ProgramState, atomicVelocities []units.Vector3) float64 {
	total := 0.0
	for j, v := range atomicVelocities {
		mass := 0.0
		if j < len(s.Atoms) {
			mass = s.Atoms[j].Mass
		}
		total += 0.5 * mass * v.MagnitudeSquared()
	}
	return total * unitsKE
}

// addRotationalEnergy builds the three rotation-generator fields
// (R_x, R_y, R_z) from the current geometry, draws a Boltzmann
// rotational kinetic energy per axis whose generator carries at least
// 1 kcal/mol, and adds the resulting rotational velocity contribution
// to atomicVelocities in place. Returns the total rotational kinetic
// energy added, in kcal/mol.
func addRotationalEnergy(s *state.ProgramState, atomicVelocities []units.Vector3) float64 {
	structure := s.Structures[0]
	n := structure.Len()
	generators := [3][]units.Vector3{make([]units.Vector3, n), make([]units.Vector3, n), make([]units.Vector3, n)}
	for j := 0; j < n; j++ {
		p := structure.AngstromAt(j)
		generators[0][j] = units.Vector3{X: 0, Y: -p.Z, Z: p.Y}
		generators[1][j] = units.Vector3{X: p.Z, Y: 0, Z: -p.X}
		generators[2][j] = units.Vector3{X: -p.Y, Y: p.X, Z: 0}
	}

	dt := s.StepSize.AsSecond()

	// Draw all three axes' kRot uniforms first, then all three signs,
	// in that order — matching the reference sampler's two-pass PRNG
	// consumption (all uniform() draws, then all one_or_neg_one()
	// draws) so seeded runs reproduce the same random stream.
	var eRot, kRot, scale [3]float64
	for axis := 0; axis < 3; axis++ {
		e := 0.0
		for j := 0; j < n; j++ {
			mass := s.Atoms[j].Mass
			e += 0.5 * mass * generators[axis][j].MagnitudeSquared()
		}
		e = e / (dt * dt) * unitsKE
		eRot[axis] = e

		if e >= 1 {
			kRot[axis] = -0.5 * constants.GasConstantKcal * s.Temperature * math.Log(1-s.Random.Uniform())
		}
		if e > 0 {
			scale[axis] = math.Sqrt(kRot[axis] / e)
		}
	}

	var sign [3]float64
	for axis := 0; axis < 3; axis++ {
		sign[axis] = s.Random.OneOrNegOne()
	}

	total := 0.0
	for axis := 0; axis < 3; axis++ {
		if eRot[axis] > 0 {
			for j := 0; j < n; j++ {
				atomicVelocities[j] = atomicVelocities[j].Add(generators[axis][j].Scale(scale[axis] * sign[axis] / dt))
			}
		}
		total += kRot[axis]
	}
	return total
}

// String renders the report's total ZPE and boost attempt count.
func (r Report) String() string {
	return fmt.Sprintf("total ZPE = %.6f kcal/mol, %d boost attempt(s)", r.TotalZPEKcal, r.BoostAttempts)
}
