// Package integrator advances a trajectory by one step at a time,
// turning the forces the ESP oracle just produced into a new
// acceleration, an output-only velocity, and a new structure —
// following either the Verlet or the Velocity-Verlet update rule.
package integrator

import (
	"github.com/sarat-asymmetrica/milo/internal/milerr"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

// RunNextStep advances s by one step using its configured propagation
// algorithm. It requires s.Forces to be non-empty (the last entry
// corresponding to the last stored structure), s.Atoms non-empty, and
// a positive step size; any violation fails with InvalidState.
func RunNextStep(s *state.ProgramState) error {
	if len(s.Forces) == 0 {
		return milerr.InvalidState("no forces available: the ESP oracle must run before the integrator")
	}
	if s.NumAtoms() == 0 {
		return milerr.InvalidState("no atoms in state")
	}
	dt := s.StepSize.AsSecond()
	if dt <= 0 {
		return milerr.InvalidState("step size %.6g s is not positive", dt)
	}

	masses := massesAmu(s)
	accel := units.FromForces(s.LastForces(), masses)
	s.Accelerations = append(s.Accelerations, accel)

	if len(s.Structures) >= 2 {
		prevAccel := s.Accelerations[len(s.Accelerations)-2]
		prevVelocity := lastVelocityOrZero(s, accel.Len())
		v := velocityUpdate(prevVelocity, prevAccel, accel, dt)
		s.Velocities = append(s.Velocities, v)
	}

	var next *units.Positions
	switch s.PropagationAlgorithm {
	case state.Verlet:
		next = verletStructureUpdate(s, accel, dt)
	case state.VelocityVerlet:
		next = velocityVerletStructureUpdate(s, accel, dt)
	default:
		return milerr.InvalidState("unknown propagation algorithm %v", s.PropagationAlgorithm)
	}
	s.Structures = append(s.Structures, next)
	return nil
}

func massesAmu(s *state.ProgramState) []float64 {
	masses := make([]float64, s.NumAtoms())
	for i, atom := range s.Atoms {
		masses[i] = atom.Mass
	}
	return masses
}

// velocityUpdate computes v_{n-1} = v_{n-2} + 1/2*(a_{n-2}+a_{n-1})*dt,
// the output-only velocity both algorithms report once a second
// structure exists.
func velocityUpdate(prevVelocity *units.Velocities, prevAccel, accel *units.Accelerations, dt float64) *units.Velocities {
	out := units.NewVelocities()
	for i := 0; i < accel.Len(); i++ {
		prev := prevVelocity.At(i)
		avg := prevAccel.At(i).Add(accel.At(i)).Scale(0.5 * dt)
		out.Append(prev.X+avg.X, prev.Y+avg.Y, prev.Z+avg.Z, units.MeterPerSec)
	}
	return out
}

// verletStructureUpdate implements §4.G's Verlet structure-update
// rule: the Störmer-Verlet two-point form once two structures exist,
// or the single-point Taylor expansion (using the last known velocity)
// before that.
func verletStructureUpdate(s *state.ProgramState, accel *units.Accelerations, dt float64) *units.Positions {
	last := s.LastStructure()
	if len(s.Structures) == 1 {
		v := lastVelocityOrZero(s, accel.Len())
		disp := units.FromVelocity(v, dt).Add(units.FromAcceleration(accel, dt))
		return last.Add(disp)
	}
	prev := s.Structures[len(s.Structures)-2]
	accelDisp := accelerationSquaredDisplacement(accel, dt)
	return last.Mul(2).Sub(prev).Add(accelDisp)
}

// velocityVerletStructureUpdate implements x_n = x_{n-1} + v_{n-1}*dt
// + 1/2*a_{n-1}*dt^2, always using the Taylor form (the velocity at
// the new step is deliberately not folded in here; it is produced
// retroactively on the following call).
func velocityVerletStructureUpdate(s *state.ProgramState, accel *units.Accelerations, dt float64) *units.Positions {
	last := s.LastStructure()
	v := lastVelocityOrZero(s, accel.Len())
	disp := units.FromVelocity(v, dt).Add(units.FromAcceleration(accel, dt))
	return last.Add(disp)
}

func lastVelocityOrZero(s *state.ProgramState, numAtoms int) *units.Velocities {
	if len(s.Velocities) > 0 {
		return s.Velocities[len(s.Velocities)-1]
	}
	v := units.NewVelocities()
	for i := 0; i < numAtoms; i++ {
		v.Append(0, 0, 0, units.MeterPerSec)
	}
	return v
}

func accelerationSquaredDisplacement(accel *units.Accelerations, dt float64) *units.Positions {
	return units.FromAcceleration(accel, dt).Mul(2)
}
