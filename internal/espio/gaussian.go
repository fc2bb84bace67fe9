// Package espio drives the external electronic-structure program
// (ESP): it serializes the current geometry to a Gaussian-compatible
// input deck, invokes the ESP binary, and parses the resulting log for
// the SCF energy and the per-atom force triples the integrator needs.
package espio

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sarat-asymmetrica/milo/internal/milerr"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

// Handler drives one ESP invocation per call to GenerateForces. WorkDir
// is where the <cmd>_<step>.com / .log scratch files are written; it
// defaults to the current directory when empty.
type Handler struct {
	WorkDir string
}

// GenerateForces writes the input deck for the state's current
// structure, runs the configured Gaussian binary, and appends one
// Forces value and one SCF energy to state — mutating it exactly as
// the integrator expects before the next step.
func (h *Handler) GenerateForces(s *state.ProgramState) error {
	jobBase := fmt.Sprintf("%s_%d", s.ProgramID.Command(), s.CurrentStep)
	comPath := filepath.Join(h.workDir(), jobBase+".com")
	logPath := filepath.Join(h.workDir(), jobBase+".log")

	if err := writeComFile(comPath, s); err != nil {
		return milerr.WrapEsp(err, "writing %s", comPath)
	}

	if err := runEsp(s.ProgramID.Command(), comPath, logPath); err != nil {
		return milerr.WrapEsp(err, "invoking %s", s.ProgramID.Command())
	}

	energy, forces, err := parseLog(logPath, len(s.Atoms))
	if err != nil {
		return err
	}
	s.Energies.Append(energy, units.Hartree)
	s.Forces = append(s.Forces, forces)
	return nil
}

func (h *Handler) workDir() string {
	if h.WorkDir == "" {
		return "."
	}
	return h.WorkDir
}

// writeComFile serializes the current structure following the
// contract: optional resource lines, the route line, a blank line, a
// step-labeled comment, a blank line, the charge/spin line, one line
// per atom, a blank line, the optional footer, and two trailing blank
// lines.
func writeComFile(path string, s *state.ProgramState) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if s.ProcessorCount != nil {
		fmt.Fprintf(w, "%%nprocshared=%d\n", *s.ProcessorCount)
	}
	if s.MemoryAmountGB != nil {
		fmt.Fprintf(w, "%%mem=%dgb\n", *s.MemoryAmountGB)
	}
	fmt.Fprintf(w, "# force %s\n\n", s.GaussianHeader)
	fmt.Fprintf(w, "Calculation for time step: %d\n\n", s.CurrentStep)
	fmt.Fprintf(w, " %d %d\n", s.Charge, s.Spin)

	structure := s.LastStructure()
	for i, atom := range s.Atoms {
		p := structure.AngstromAt(i)
		fmt.Fprintf(w, "  %-2s  %10.6f  %10.6f  %10.6f\n", atom.Symbol, p.X, p.Y, p.Z)
	}
	w.WriteString("\n")
	if s.GaussianFooter != "" {
		w.WriteString(s.GaussianFooter)
	}
	w.WriteString("\n\n")
	return w.Flush()
}

func runEsp(command, comPath, logPath string) error {
	logFile, err := os.Create(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	comFile, err := os.Open(comPath)
	if err != nil {
		return err
	}
	defer comFile.Close()

	cmd := exec.Command(command)
	cmd.Stdin = comFile
	cmd.Stdout = logFile
	return cmd.Run()
}

const (
	normalTermination = "Normal termination"
	scfDoneMarker      = "SCF Done"
	forcesBlockStart   = "Forces (Hartrees/Bohr)"
	forcesBlockEnd     = "Cartesian Forces"
)

// parseLog reads an ESP log and extracts the last SCF energy
// preceding a forces block together with that block's per-atom force
// triples. The energy is returned in Hartree as read from the log; the
// forces are returned as a Forces container (stored in Newton). Only
// the last SCF Done line before the forces block is paired with it
// (§4.E, §9 Q5).
func parseLog(path string, numAtoms int) (float64, *units.Forces, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, milerr.WrapEsp(err, "opening %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, milerr.WrapEsp(err, "reading %s", path)
	}

	if !logTerminatedNormally(lines) {
		return 0, nil, milerr.Esp("%s did not report %q", path, normalTermination)
	}

	energy, ok := lastScfEnergyBeforeForces(lines)
	if !ok {
		return 0, nil, milerr.Esp("%s: no %q line found before a forces block", path, scfDoneMarker)
	}

	forces, err := parseForcesBlock(lines, numAtoms)
	if err != nil {
		return 0, nil, err
	}
	return energy, forces, nil
}

func logTerminatedNormally(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, normalTermination) {
			return true
		}
	}
	return false
}

// lastScfEnergyBeforeForces scans for SCF Done lines, remembering the
// most recent one, and stops as soon as a forces block begins — so
// only the last SCF energy before that block is returned.
func lastScfEnergyBeforeForces(lines []string) (float64, bool) {
	var energy float64
	found := false
	for _, line := range lines {
		if strings.Contains(line, scfDoneMarker) {
			fields := strings.Fields(line)
			if len(fields) > 4 {
				if v, err := strconv.ParseFloat(fields[4], 64); err == nil {
					energy = v
					found = true
				}
			}
			continue
		}
		if strings.Contains(line, forcesBlockStart) {
			break
		}
	}
	return energy, found
}

// parseForcesBlock reads the per-atom force triples between the
// "Forces (Hartrees/Bohr)" and "Cartesian Forces" markers. Each data
// line's first whitespace token is the atom index (1-based, integer);
// tokens 2, 3, 4 are the x, y, z components.
func parseForcesBlock(lines []string, numAtoms int) (*units.Forces, error) {
	forces := units.NewForces()
	inBlock := false
	for _, line := range lines {
		if strings.Contains(line, forcesBlockStart) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if strings.Contains(line, forcesBlockEnd) {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			continue
		}
		x, errX := strconv.ParseFloat(fields[2], 64)
		y, errY := strconv.ParseFloat(fields[3], 64)
		z, errZ := strconv.ParseFloat(fields[4], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		forces.Append(x, y, z, units.HartreePerBohr)
	}
	if forces.Len() != numAtoms {
		return nil, milerr.Esp("forces block has %d atoms, want %d", forces.Len(), numAtoms)
	}
	return forces, nil
}
