package inputfile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sarat-asymmetrica/milo/internal/milerr"
	"github.com/sarat-asymmetrica/milo/internal/state"
)

const minimalDeck = `
$job
  gaussian_header m06 6-31g(d,p)
  step_size 0.5
  temperature 0
  random_seed 42
$end

$molecule
0 1
H 0.0 0.0 0.0
H 0.0 0.0 0.74
$end
`

func TestParseMinimalDeck(t *testing.T) {
	s, err := Parse(strings.NewReader(minimalDeck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Atoms) != 2 {
		t.Fatalf("len(Atoms) = %d, want 2", len(s.Atoms))
	}
	if s.Atoms[0].Symbol != "H" || s.Atoms[1].Symbol != "H" {
		t.Errorf("Atoms = %v, want two H", s.Atoms)
	}
	if s.GaussianHeader != "m06 6-31g(d,p)" {
		t.Errorf("GaussianHeader = %q", s.GaussianHeader)
	}
	if got := s.StepSize.AsFemtosecond(); got != 0.5 {
		t.Errorf("StepSize = %v fs, want 0.5", got)
	}
	if s.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", s.Temperature)
	}
	if s.InputStructure.Len() != 2 {
		t.Errorf("InputStructure.Len() = %d, want 2", s.InputStructure.Len())
	}
	if len(s.Structures) != 1 {
		t.Errorf("len(Structures) = %d, want 1 (seeded from InputStructure)", len(s.Structures))
	}
	if _, ok := s.DefaultsUsed["program"]; !ok {
		t.Errorf("DefaultsUsed missing 'program', got %v", s.DefaultsUsed)
	}
	if _, ok := s.DefaultsUsed["step_size"]; ok {
		t.Errorf("DefaultsUsed should not list step_size, it was given explicitly")
	}
}

func TestParseMissingGaussianHeader(t *testing.T) {
	deck := `
$job
  step_size 1.0
$end
$molecule
0 1
H 0 0 0
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput", err)
	}
}

func TestParseMissingMoleculeSection(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput", err)
	}
}

func TestParseMutuallyExclusiveSections(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
$end
$velocities
0 0 0
$end
$frequency_data
300.0 1.0 1.0
1.0 0.0 0.0
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput for mutually exclusive sections", err)
	}
}

func TestParseDuplicateSection(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
$end
$molecule
0 1
H 0 0 0
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput for duplicate $molecule section", err)
	}
}

func TestParseUnknownJobParameter(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
  not_a_real_parameter 7
$end
$molecule
0 1
H 0 0 0
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput for unknown parameter", err)
	}
}

func TestParseIsotopeAndIndexConversion(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
H 0 0 0.74
$end
$isotope
2 2.014
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Atoms[0].Mass == s.Atoms[1].Mass {
		t.Fatalf("expected atom 2 (index 1) to have a different mass after isotope override")
	}
	if s.Atoms[1].MassNumber != 2 {
		t.Errorf("Atoms[1].MassNumber = %d, want 2", s.Atoms[1].MassNumber)
	}
}

func TestParsePhaseOneBasedIndices(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
  phase push_apart 1 3
$end
$molecule
0 1
H 0 0 0
H 0 0 1
H 0 0 2
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.PhaseDirection != state.PhasePushApart {
		t.Errorf("PhaseDirection = %v, want PhasePushApart", s.PhaseDirection)
	}
	if s.Phase == nil || s.Phase.AtomI != 0 || s.Phase.AtomJ != 2 {
		t.Fatalf("Phase = %+v, want {AtomI:0 AtomJ:2}", s.Phase)
	}
}

func TestParseFixedModeDirectionAndQuantaRepeatable(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
  fixed_mode_direction 1 1
  fixed_mode_direction 2 -1
  fixed_vibrational_quanta 1 2
$end
$molecule
0 1
H 0 0 0
H 0 0 0.74
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantDirections := map[int]float64{0: 1, 1: -1}
	if diff := cmp.Diff(wantDirections, s.FixedModeDirections); diff != "" {
		t.Errorf("FixedModeDirections mismatch (-want +got):\n%s", diff)
	}
	if s.FixedVibrationalQuanta[0] != 2 {
		t.Errorf("FixedVibrationalQuanta = %v", s.FixedVibrationalQuanta)
	}
}

func TestParseFrequencyDataSection(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
H 0 0 0.74
$end
$frequency_data
4401.21 0.504 5.756
1.0 0.0 0.0
-1.0 0.0 0.0
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Frequencies.Len() != 1 {
		t.Fatalf("Frequencies.Len() = %d, want 1", s.Frequencies.Len())
	}
	if s.Frequencies.At(0) != 4401.21 {
		t.Errorf("Frequencies.At(0) = %v, want 4401.21", s.Frequencies.At(0))
	}
	if len(s.ModeDisplacements) != 1 || len(s.ModeDisplacements[0]) != 2 {
		t.Fatalf("ModeDisplacements = %v", s.ModeDisplacements)
	}
	if s.ModeDisplacements[0][0].X != 1.0 || s.ModeDisplacements[0][1].X != -1.0 {
		t.Errorf("ModeDisplacements[0] = %v", s.ModeDisplacements[0])
	}
}

func TestParseVelocitiesAtomCountMismatch(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
H 0 0 0.74
$end
$velocities
0 0 0
$end
`
	_, err := Parse(strings.NewReader(deck))
	if !milerr.Is(err, milerr.KindInput) {
		t.Fatalf("error = %v, want KindInput for velocities/molecule atom count mismatch", err)
	}
}

func TestParseVelocitiesSection(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
H 0 0 0.74
$end
$velocities
100.0 0.0 0.0
-100.0 0.0 0.0
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Velocities) != 1 {
		t.Fatalf("len(Velocities) = %d, want 1", len(s.Velocities))
	}
	if s.Velocities[0].Len() != 2 {
		t.Errorf("Velocities[0].Len() = %d, want 2", s.Velocities[0].Len())
	}
	v0 := s.Velocities[0].MeterPerSecAt(0)
	if v0.X != 100.0 {
		t.Errorf("Velocities[0].At(0).X = %v, want 100", v0.X)
	}
}

func TestParseGaussianFooterSection(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
$end
$molecule
0 1
H 0 0 0
$end
$gaussian_footer
--Link1--
#p geom=check guess=read
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(s.GaussianFooter, "--Link1--") {
		t.Errorf("GaussianFooter = %q, want it to contain --Link1--", s.GaussianFooter)
	}
}

func TestParseEnergyBoostOrdersMinMax(t *testing.T) {
	deck := `
$job
  gaussian_header m06 6-31g(d,p)
  energy_boost on 20 10
$end
$molecule
0 1
H 0 0 0
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.EnergyBoost != state.EnergyBoostOn {
		t.Fatalf("EnergyBoost = %v, want on", s.EnergyBoost)
	}
	if s.EnergyBoostMin != 10 || s.EnergyBoostMax != 20 {
		t.Errorf("EnergyBoostMin/Max = %v/%v, want 10/20", s.EnergyBoostMin, s.EnergyBoostMax)
	}
}

func TestParseCommentsAndBlankLinesIgnored(t *testing.T) {
	deck := `
# a full-line comment
$job
  gaussian_header m06 6-31g(d,p) # trailing comment is stripped too

  step_size 1.0
$end

$molecule
0 1
H 0.0 0.0 0.0 # this atom is at the origin
$end
`
	s, err := Parse(strings.NewReader(deck))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.GaussianHeader != "m06 6-31g(d,p)" {
		t.Errorf("GaussianHeader = %q", s.GaussianHeader)
	}
	if len(s.Atoms) != 1 {
		t.Fatalf("len(Atoms) = %d, want 1", len(s.Atoms))
	}
}
