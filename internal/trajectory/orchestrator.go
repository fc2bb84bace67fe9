// Package trajectory drives a complete Born-Oppenheimer trajectory: it
// samples (or accepts) an initial state, then alternates one ESP force
// evaluation with one integrator step until the configured step limit
// is reached, printing the same step banners and unit headers the
// reference driver does and optionally writing a trajectory .xyz file.
package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarat-asymmetrica/milo/internal/espio"
	"github.com/sarat-asymmetrica/milo/internal/integrator"
	"github.com/sarat-asymmetrica/milo/internal/sampler"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

const banner = `Thank you for using

               ___   ___   ___   ___       _______
              |   |_|   | |   | |   |     |       |
              |         | |   | |   |     |   _   |
              |         | |   | |   |     |  | |  |
              |  ||_||  | |   | |   |___  |  |_|  |
              |  |   |  | |   | |       | |       |
              |__|   |__| |___| |_______| |_______|

Milo is a Born-Oppenheimer molecular dynamics driver: it samples an
initial vibrational/rotational state from a harmonic analysis, then
propagates a trajectory by repeatedly calling out to an external
electronic structure program for forces.
`

const trajectoryUnitsHeader = `### Starting Trajectory ----------------------------------------
  Units for trajectory output:
    Coordinates    angstrom
    SCF Energy     hartree
    Forces         newton
    Accelerations  meter/second^2
    Velocities     meter/second
`

const footer = "\n\nNormal termination.\nThank you for using Milo!\n"

// Run executes the trajectory described by s, writing stdout-style
// progress to w and dispatching force evaluations to esp. If s has no
// velocities yet, the initial-state sampler runs first.
func Run(w io.Writer, s *state.ProgramState, esp *espio.Handler) error {
	fmt.Fprint(w, banner)

	if len(s.Velocities) == 0 {
		report, err := sampler.Generate(s)
		if err != nil {
			return err
		}
		if s.EnergyBoost == state.EnergyBoostOn {
			fmt.Fprintf(w, "  Energy boost: %d resampling attempt(s), total ZPE %.6f kcal/mol\n\n", report.BoostAttempts, report.TotalZPEKcal)
		}
	}

	fmt.Fprint(w, trajectoryUnitsHeader)
	printStepBanner(w, s)
	printStructure(w, s)

	for !endConditionsMet(s) {
		if err := esp.GenerateForces(s); err != nil {
			return err
		}
		if err := integrator.RunNextStep(s); err != nil {
			return err
		}

		printStateInfo(w, s)
		fmt.Fprintln(w)
		s.CurrentStep++
		printStepBanner(w, s)
		printStructure(w, s)
	}

	fmt.Fprint(w, footer)
	if s.OutputXYZFile {
		return WriteXYZFile(s)
	}
	return nil
}

func endConditionsMet(s *state.ProgramState) bool {
	return s.MaxSteps != nil && s.CurrentStep >= *s.MaxSteps
}

func stepTimeFs(s *state.ProgramState) float64 {
	return float64(s.CurrentStep) * s.StepSize.AsFemtosecond()
}

func printStepBanner(w io.Writer, s *state.ProgramState) {
	line := fmt.Sprintf("### Step %d: %g fs ", s.CurrentStep, stepTimeFs(s))
	if len(line) < 66 {
		line += strings.Repeat("-", 66-len(line))
	}
	fmt.Fprintln(w, line)
}

func printStructure(w io.Writer, s *state.ProgramState) {
	fmt.Fprintln(w, "  Coordinates:")
	structure := s.LastStructure()
	for i, atom := range s.Atoms {
		p := structure.AngstromAt(i)
		fmt.Fprintf(w, "    %-2s %15.6f %15.6f %15.6f\n", atom.Symbol, p.X, p.Y, p.Z)
	}
}

func printStateInfo(w io.Writer, s *state.ProgramState) {
	fmt.Fprintln(w, "  SCF Energy:")
	fmt.Fprintf(w, "    %.8f\n", s.Energies.HartreeAt(s.Energies.Len()-1))

	fmt.Fprintln(w, "  Forces:")
	printVectors(w, s, s.LastForces().NewtonValues())

	fmt.Fprintln(w, "  Accelerations:")
	printVectors(w, s, s.Accelerations[len(s.Accelerations)-1].MeterPerSecSquaredValues())

	fmt.Fprintln(w, "  Velocities:")
	printVectors(w, s, s.Velocities[len(s.Velocities)-1].MeterPerSecValues())
}

func printVectors(w io.Writer, s *state.ProgramState, values []units.Vector3) {
	for i, atom := range s.Atoms {
		v := values[i]
		fmt.Fprintf(w, "    %-2s %15.6e %15.6e %15.6e\n", atom.Symbol, v.X, v.Y, v.Z)
	}
}

// WriteXYZFile writes s.JobName+".xyz", one frame per stored structure,
// numbering frames backwards from the current step so that the last
// frame is labeled with s.CurrentStep (the first stored structure is
// the one the run started from, e.g. a restart's current_step).
func WriteXYZFile(s *state.ProgramState) error {
	f, err := os.Create(s.JobName + ".xyz")
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 8192)
	startingStep := s.CurrentStep - len(s.Structures) + 1
	for i, structure := range s.Structures {
		step := startingStep + i
		fmt.Fprintf(bw, "%d\n", len(s.Atoms))
		fmt.Fprintf(bw, "  Step %d: %g fs\n", step, float64(step)*s.StepSize.AsFemtosecond())
		for j, atom := range s.Atoms {
			p := structure.AngstromAt(j)
			fmt.Fprintf(bw, "%s %15.6f %15.6f %15.6f\n", atom.Symbol, p.X, p.Y, p.Z)
		}
	}
	return bw.Flush()
}
