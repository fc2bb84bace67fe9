package sampler

import (
	"math"
	"testing"

	"github.com/sarat-asymmetrica/milo/internal/atomdata"
	"github.com/sarat-asymmetrica/milo/internal/constants"
	"github.com/sarat-asymmetrica/milo/internal/rng"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

func hydrogenAtoms(t *testing.T) []atomdata.Atom {
	t.Helper()
	h, err := atomdata.FromSymbol("H")
	if err != nil {
		t.Fatalf("FromSymbol(H): %v", err)
	}
	return []atomdata.Atom{h, h}
}

func closeRel(a, b, tol float64) bool {
	if b == 0 {
		return math.Abs(a) <= tol
	}
	return math.Abs(a-b)/math.Abs(b) <= tol
}

func TestH2TrivialZPE(t *testing.T) {
	s := state.New()
	s.Atoms = hydrogenAtoms(t)
	s.Temperature = 0
	s.OscillatorType = state.Quasiclassical
	s.GeometryDisplacement = state.DisplacementNone
	s.AddRotationalEnergy = state.RotationalEnergyOff
	s.Random = rng.New(1)
	s.Frequencies = units.NewFrequencies()
	s.Frequencies.Append(4401)
	s.ForceConstants = units.NewForceConstants()
	s.ForceConstants.Append(5.756, units.MillidynePerAngstrom)
	s.ReducedMasses = units.NewMasses()
	s.ReducedMasses.Append(0.504, units.Amu)
	s.ModeDisplacements = [][]units.Vector3{
		{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
	}

	report, err := Generate(s)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if report.Quanta[0] != 0 {
		t.Fatalf("quanta[0] = %d, want 0 at T=0", report.Quanta[0])
	}
	if report.Shifts[0] != 0 {
		t.Fatalf("shifts[0] = %v, want 0 with displacement off", report.Shifts[0])
	}

	wantZPEJoules := 0.5 * constants.PlanckConstant * constants.SpeedOfLightCmPerSec * 4401.0
	wantZPEKcal := wantZPEJoules * constants.JouleToKcalPerMole
	if !closeRel(report.TotalZPEKcal, wantZPEKcal, 1e-6) {
		t.Errorf("TotalZPEKcal = %v, want %v", report.TotalZPEKcal, wantZPEKcal)
	}

	massKg := 0.504 * constants.AmuToKg
	wantSpeed := math.Sqrt(2*wantZPEJoules/massKg) * constants.MeterToAngstrom
	gotSpeed := math.Abs(report.ModeVelocitiesAps[0])
	if !closeRel(gotSpeed, wantSpeed, 1e-6) {
		t.Errorf("|v_f| = %v, want %v", gotSpeed, wantSpeed)
	}

	if len(s.Velocities) != 1 {
		t.Fatalf("Velocities length = %d, want 1", len(s.Velocities))
	}
	v := s.Velocities[0]
	v0 := v.AngstromPerSecAt(0)
	v1 := v.AngstromPerSecAt(1)
	if !closeRel(v0.X, -v1.X, 1e-9) {
		t.Errorf("atom velocities not opposite: v0.X=%v v1.X=%v", v0.X, v1.X)
	}
	if !closeRel(math.Abs(v0.X), gotSpeed, 1e-9) {
		t.Errorf("v0.X magnitude = %v, want %v", v0.X, gotSpeed)
	}
}

func TestSeedReproducibility(t *testing.T) {
	build := func() *state.ProgramState {
		s := state.New()
		s.Atoms = hydrogenAtoms(t)
		s.Temperature = 300
		s.OscillatorType = state.Quasiclassical
		s.GeometryDisplacement = state.DisplacementGaussian
		s.Random = rng.New(42)
		s.Frequencies = units.NewFrequencies()
		s.Frequencies.Append(4401)
		s.ForceConstants = units.NewForceConstants()
		s.ForceConstants.Append(5.756, units.MillidynePerAngstrom)
		s.ReducedMasses = units.NewMasses()
		s.ReducedMasses.Append(0.504, units.Amu)
		s.ModeDisplacements = [][]units.Vector3{
			{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
		}
		s.Structures = []*units.Positions{units.NewPositions()}
		s.Structures[0].Append(0, 0, 0, units.Angstrom)
		s.Structures[0].Append(1, 0, 0, units.Angstrom)
		return s
	}

	s1 := build()
	r1, err := Generate(s1)
	if err != nil {
		t.Fatalf("Generate run 1: %v", err)
	}
	s2 := build()
	r2, err := Generate(s2)
	if err != nil {
		t.Fatalf("Generate run 2: %v", err)
	}

	if r1.Quanta[0] != r2.Quanta[0] {
		t.Errorf("quanta differ across identical seeds: %v vs %v", r1.Quanta, r2.Quanta)
	}
	if r1.ModeVelocitiesAps[0] != r2.ModeVelocitiesAps[0] {
		t.Errorf("mode velocities differ across identical seeds: %v vs %v", r1.ModeVelocitiesAps, r2.ModeVelocitiesAps)
	}
	v1 := s1.Velocities[0].AngstromPerSecAt(0)
	v2 := s2.Velocities[0].AngstromPerSecAt(0)
	if v1 != v2 {
		t.Errorf("atom velocities differ across identical seeds: %v vs %v", v1, v2)
	}
}

// TestEnergyBoostLoop mirrors the reference program's energy-boost
// scenario: at T=0 every mode's quantum number is forced to 0, so the
// first sample's total vibrational energy equals the (below-minimum)
// zero-point energy, guaranteeing the loop resamples at least once
// and raises the temperature off of its starting value.
func TestEnergyBoostLoop(t *testing.T) {
	s := state.New()
	s.Atoms = hydrogenAtoms(t)
	s.Temperature = 0
	s.OscillatorType = state.Quasiclassical
	s.GeometryDisplacement = state.DisplacementNone
	s.EnergyBoost = state.EnergyBoostOn
	s.EnergyBoostMin = 10
	s.EnergyBoostMax = 20
	s.Random = rng.New(7)
	s.Frequencies = units.NewFrequencies()
	s.Frequencies.Append(300)
	s.ForceConstants = units.NewForceConstants()
	s.ForceConstants.Append(2.0, units.MillidynePerAngstrom)
	s.ReducedMasses = units.NewMasses()
	s.ReducedMasses.Append(1.0, units.Amu)
	s.ModeDisplacements = [][]units.Vector3{
		{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
	}

	zpe, totalZPE := zeroPointEnergies(s)
	if totalZPE >= s.EnergyBoostMin {
		t.Fatalf("test setup invalid: total ZPE %.4f must be below boost_min %.4f", totalZPE, s.EnergyBoostMin)
	}

	report, err := Generate(s)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if report.BoostAttempts < 2 {
		t.Errorf("BoostAttempts = %d, want at least 2 (the T=0 first sample must be below boost_min)", report.BoostAttempts)
	}
	if s.Temperature == 0 {
		t.Errorf("Temperature unchanged at 0, want the boost loop to have raised it")
	}

	finalEnergy := zpe[0] * (2*float64(report.Quanta[0]) + 1)
	if finalEnergy < s.EnergyBoostMin-1e-6 || finalEnergy > s.EnergyBoostMax+1e-6 {
		t.Errorf("final vibrational energy = %.4f kcal/mol, want it inside [%.1f, %.1f]", finalEnergy, s.EnergyBoostMin, s.EnergyBoostMax)
	}
}

func TestPhasePushApartAndBringTogether(t *testing.T) {
	build := func(direction state.PhaseDirection, seed int64) *state.ProgramState {
		s := state.New()
		s.Atoms = hydrogenAtoms(t)
		s.Temperature = 0
		s.GeometryDisplacement = state.DisplacementNone
		s.PhaseDirection = direction
		s.Phase = &state.PhasePair{AtomI: 0, AtomJ: 1}
		// Force a nonzero quantum number on the imaginary mode: at T=0
		// its sampled occupation would otherwise be 0, giving it zero
		// energy (and hence zero velocity), which would make the
		// push/bring-together sign unobservable.
		s.FixedVibrationalQuanta = map[int]int{0: 1}
		s.Random = rng.New(seed)
		s.Frequencies = units.NewFrequencies()
		s.Frequencies.Append(-300)
		s.ForceConstants = units.NewForceConstants()
		s.ForceConstants.Append(5.0, units.MillidynePerAngstrom)
		s.ReducedMasses = units.NewMasses()
		s.ReducedMasses.Append(1.0, units.Amu)
		// A small (non-overshooting) displacement: atom 0 shifts toward
		// -x, atom 1 toward +x, a genuine separating direction relative
		// to their 1 Angstrom starting gap.
		s.ModeDisplacements = [][]units.Vector3{
			{{X: -0.1, Y: 0, Z: 0}, {X: 0.1, Y: 0, Z: 0}},
		}
		s.Structures = []*units.Positions{units.NewPositions()}
		s.Structures[0].Append(0, 0, 0, units.Angstrom)
		s.Structures[0].Append(1, 0, 0, units.Angstrom)
		return s
	}

	dt := 1e-15
	distSqAfterOneStep := func(s *state.ProgramState, v *units.Velocities) float64 {
		p0 := s.Structures[0].AngstromAt(0)
		p1 := s.Structures[0].AngstromAt(1)
		v0 := v.AngstromPerSecAt(0)
		v1 := v.AngstromPerSecAt(1)
		x0 := p0.X + v0.X*dt
		x1 := p1.X + v1.X*dt
		d := x0 - x1
		return d * d
	}

	before := 1.0

	sPush := build(state.PhasePushApart, 3)
	if _, err := Generate(sPush); err != nil {
		t.Fatalf("Generate (push apart): %v", err)
	}
	afterPush := distSqAfterOneStep(sPush, sPush.Velocities[0])
	if afterPush <= before {
		t.Errorf("push_apart: after=%v, want > before=%v", afterPush, before)
	}

	sBring := build(state.PhaseBringTogether, 3)
	if _, err := Generate(sBring); err != nil {
		t.Fatalf("Generate (bring together): %v", err)
	}
	afterBring := distSqAfterOneStep(sBring, sBring.Velocities[0])
	if afterBring >= before {
		t.Errorf("bring_together: after=%v, want < before=%v", afterBring, before)
	}
}

func TestFixedModeDirectionsPreservesPRNGStream(t *testing.T) {
	build := func(fixed map[int]float64) *state.ProgramState {
		s := state.New()
		s.Atoms = hydrogenAtoms(t)
		s.Temperature = 300
		s.GeometryDisplacement = state.DisplacementGaussian
		s.Random = rng.New(99)
		s.Frequencies = units.NewFrequencies()
		s.Frequencies.Append(1200)
		s.ForceConstants = units.NewForceConstants()
		s.ForceConstants.Append(3.0, units.MillidynePerAngstrom)
		s.ReducedMasses = units.NewMasses()
		s.ReducedMasses.Append(1.0, units.Amu)
		s.ModeDisplacements = [][]units.Vector3{
			{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}},
		}
		s.Structures = []*units.Positions{units.NewPositions()}
		s.Structures[0].Append(0, 0, 0, units.Angstrom)
		s.Structures[0].Append(1, 0, 0, units.Angstrom)
		if fixed != nil {
			s.FixedModeDirections = fixed
		}
		return s
	}

	sEmpty := build(nil)
	if _, err := Generate(sEmpty); err != nil {
		t.Fatalf("Generate (empty fixed): %v", err)
	}
	sFixed := build(map[int]float64{0: 1})
	if _, err := Generate(sFixed); err != nil {
		t.Fatalf("Generate (fixed): %v", err)
	}

	nextEmpty := sEmpty.Random.Uniform()
	nextFixed := sFixed.Random.Uniform()
	if nextEmpty != nextFixed {
		t.Errorf("PRNG streams diverged after fixed_mode_directions override: %v vs %v", nextEmpty, nextFixed)
	}
}
