package espio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sarat-asymmetrica/milo/internal/units"
)

const syntheticLog = ` SCF Done:  E(RHF) =  -1.17000000     A.U. after   10 cycles

 Center     Atomic                   Forces (Hartrees/Bohr)
 Number     Number              X              Y              Z
 -------------------------------------------------------------
      1          1           0.010000       0.000000       0.000000
      2          1          -0.010000       0.000000       0.000000
 -------------------------------------------------------------
 Cartesian Forces:  Max     0.010000 RMS     0.005000

 Normal termination of Gaussian.
`

func TestParseLogScenarioS6(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g16_0.log")
	if err := os.WriteFile(path, []byte(syntheticLog), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	energy, forces, err := parseLog(path, 2)
	if err != nil {
		t.Fatalf("parseLog: %v", err)
	}
	if forces.Len() != 2 {
		t.Fatalf("forces.Len() = %d, want 2", forces.Len())
	}

	wantEnergy := units.NewEnergies()
	wantEnergy.Append(-1.17, units.Hartree)
	if gotHartree := energyToHartree(energy); !closeEnough(gotHartree, wantEnergy.HartreeAt(0), 1e-9) {
		t.Errorf("energy = %v Hartree, want -1.17", gotHartree)
	}

	f0 := forces.HartreePerBohrAt(0)
	if !closeEnough(f0.X, 0.01, 1e-9) {
		t.Errorf("forces[0].X = %v, want 0.01", f0.X)
	}
	f1 := forces.HartreePerBohrAt(1)
	if !closeEnough(f1.X, -0.01, 1e-9) {
		t.Errorf("forces[1].X = %v, want -0.01", f1.X)
	}
}

func TestParseLogRejectsAbnormalTermination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g16_0.log")
	os.WriteFile(path, []byte("Error termination\n"), 0o644)

	if _, _, err := parseLog(path, 1); err == nil {
		t.Fatal("expected error for missing normal termination")
	}
}

func TestParseLogLastScfBeforeForcesWins(t *testing.T) {
	log := ` SCF Done:  E(RHF) =  -2.00000000     A.U.
 SCF Done:  E(RHF) =  -1.17000000     A.U.

 Forces (Hartrees/Bohr)
      1          1           0.000000       0.000000       0.000000
 Cartesian Forces:

 Normal termination of Gaussian.
`
	dir := t.TempDir()
	path := filepath.Join(dir, "g16_0.log")
	os.WriteFile(path, []byte(log), 0o644)

	energy, _, err := parseLog(path, 1)
	if err != nil {
		t.Fatalf("parseLog: %v", err)
	}
	if !closeEnough(energy, -1.17, 1e-9) {
		t.Errorf("energy = %v, want -1.17 (last SCF Done before forces block)", energy)
	}
}

func energyToHartree(hartree float64) float64 { return hartree }

func closeEnough(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
