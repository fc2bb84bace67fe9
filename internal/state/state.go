// Package state holds ProgramState, the aggregate record of one
// trajectory: its configuration, its atoms, and its growing
// step-indexed history of structures, velocities, forces,
// accelerations, and energies.
package state

import (
	"github.com/sarat-asymmetrica/milo/internal/atomdata"
	"github.com/sarat-asymmetrica/milo/internal/rng"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

// PhasePair names the two 0-based atom indices an imaginary-frequency
// phase decision (bring-together / push-apart) measures the distance
// between.
type PhasePair struct {
	AtomI, AtomJ int
}

// ProgramState is built incrementally by the input-file parser, then
// mutated by the sampler (once, at step 0), the ESP handler (which
// appends one Forces value and one energy per step), and the
// integrator (once per step). The trajectory report only reads it.
type ProgramState struct {
	JobName string
	Atoms   []atomdata.Atom
	Charge  int
	Spin    int

	Temperature float64
	CurrentStep int
	StepSize    units.Time
	MaxSteps    *int

	InputStructure *units.Positions

	Structures    []*units.Positions
	Velocities    []*units.Velocities
	Forces        []*units.Forces
	Accelerations []*units.Accelerations
	Energies      *units.Energies

	PropagationAlgorithm PropagationAlgorithm
	OscillatorType       OscillatorType
	AddRotationalEnergy  RotationalEnergyMode
	GeometryDisplacement GeometryDisplacementType
	PhaseDirection       PhaseDirection
	Phase                *PhasePair

	FixedModeDirections   map[int]float64
	FixedVibrationalQuanta map[int]int

	Frequencies      *units.Frequencies
	ModeDisplacements [][]units.Vector3 // [mode][atom], Angstrom
	ForceConstants    *units.ForceConstants
	ReducedMasses     *units.Masses

	ZeroPointEnergy     float64 // kcal/mol, total
	ZeroPointCorrection float64

	EnergyBoost    EnergyBoostMode
	EnergyBoostMin float64
	EnergyBoostMax float64

	Random *rng.Source

	ProgramID      ProgramID
	GaussianHeader string
	GaussianFooter string
	ProcessorCount *int
	MemoryAmountGB *int

	OutputXYZFile bool

	// DefaultsUsed records which $job parameters were not given in the
	// input deck, keyed by parameter name with the default value's
	// display string. The parser fills it in; no report prints it.
	DefaultsUsed map[string]string
}

// New returns a ProgramState with the reference program's defaults:
// room temperature, a 1 fs step, Verlet propagation, quasiclassical
// sampling, a freshly-seeded random source, and XYZ output enabled.
func New() *ProgramState {
	return &ProgramState{
		Temperature:            298.15,
		CurrentStep:            0,
		StepSize:               units.NewTime(1.00, units.Femtosecond),
		InputStructure:         units.NewPositions(),
		Energies:               units.NewEnergies(),
		PropagationAlgorithm:   Verlet,
		OscillatorType:         Quasiclassical,
		AddRotationalEnergy:    RotationalEnergyOff,
		GeometryDisplacement:   DisplacementNone,
		PhaseDirection:         PhaseRandom,
		FixedModeDirections:    map[int]float64{},
		FixedVibrationalQuanta: map[int]int{},
		Frequencies:            units.NewFrequencies(),
		ForceConstants:         units.NewForceConstants(),
		ReducedMasses:          units.NewMasses(),
		EnergyBoost:            EnergyBoostOff,
		Random:                 rng.New(rng.GenerateSeed()),
		ProgramID:              Gaussian16,
		OutputXYZFile:          true,
	}
}

// NumAtoms returns the number of atoms in the molecule.
func (s *ProgramState) NumAtoms() int { return len(s.Atoms) }

// NumModes returns the number of vibrational modes.
func (s *ProgramState) NumModes() int { return s.Frequencies.Len() }

// LastStructure returns the most recently appended structure.
func (s *ProgramState) LastStructure() *units.Positions {
	return s.Structures[len(s.Structures)-1]
}

// LastForces returns the most recently appended forces.
func (s *ProgramState) LastForces() *units.Forces {
	return s.Forces[len(s.Forces)-1]
}
