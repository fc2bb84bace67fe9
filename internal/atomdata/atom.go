// Package atomdata provides the element/isotope lookup tables and the
// Atom record that the sampler, the quantity containers, and the ESP
// wire format all key off of.
package atomdata

import (
	"math"
	"strconv"
	"strings"

	"github.com/sarat-asymmetrica/milo/internal/milerr"
)

// Atom is an immutable-by-convention record describing one nucleus:
// its canonical symbol, atomic number, mass number, and isotopic mass.
// MassNumber of -1 means "unspecified" (no isotope has been resolved).
type Atom struct {
	Symbol       string
	AtomicNumber int
	MassNumber   int
	Mass         float64
}

func titleCase(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return symbol
	}
	lower := strings.ToLower(symbol)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// FromSymbol builds an Atom using the symbol's most abundant isotope.
// Symbol matching is case-insensitive; the stored symbol is
// title-cased (e.g. "he", "HE", "He" all resolve to "He").
func FromSymbol(symbol string) (Atom, error) {
	titled := titleCase(symbol)
	if e, ok := defaultFromSymbol[titled]; ok {
		return Atom{Symbol: titled, AtomicNumber: e.z, MassNumber: e.a, Mass: e.mass}, nil
	}
	if e, ok := specialIsotopes[titled]; ok {
		return Atom{Symbol: titled, AtomicNumber: e.z, MassNumber: e.a, Mass: e.mass}, nil
	}
	return Atom{}, milerr.UnknownElement(symbol)
}

// FromAtomicNumber builds an Atom using the element's most abundant
// isotope, looked up by Z.
func FromAtomicNumber(z int) (Atom, error) {
	entry, ok := defaultFromNumber[z]
	if !ok {
		return Atom{}, milerr.UnknownElement(strconv.Itoa(z))
	}
	return Atom{Symbol: entry.symbol, AtomicNumber: entry.entry.z, MassNumber: entry.entry.a, Mass: entry.entry.mass}, nil
}

// FromSymbolMassNumber builds an Atom for the named isotope. If
// (symbol, massNumber) has no tabulated exact mass, it falls back to
// the element's default isotope — including the default's mass
// number, not the one requested. This fallback is a success, not an
// UnknownIsotope error: only a wholly unknown element symbol fails.
func FromSymbolMassNumber(symbol string, massNumber int) (Atom, error) {
	titled := titleCase(symbol)
	entry, ok := defaultFromSymbol[titled]
	if !ok {
		if e, ok := specialIsotopes[titled]; ok {
			entry = e
		} else {
			return Atom{}, milerr.UnknownElement(symbol)
		}
	}

	if mass, ok := isotopeData[isotopeKey{titled, massNumber}]; ok {
		return Atom{Symbol: titled, AtomicNumber: entry.z, MassNumber: massNumber, Mass: mass}, nil
	}
	return Atom{Symbol: titled, AtomicNumber: entry.z, MassNumber: entry.a, Mass: entry.mass}, nil
}

// ChangeMass updates Mass (and MassNumber) from a job-file mass
// override string. A value containing a decimal point is an exact
// mass: Mass is set directly and MassNumber is derived as round(mass).
// A value without a decimal point is a mass number: the exact mass is
// looked up in the isotope table for (Symbol, massNumber); on a miss,
// MassNumber is set to that integer and Mass to its float value.
func (a *Atom) ChangeMass(massString string) error {
	massString = strings.TrimSpace(massString)
	if strings.Contains(massString, ".") {
		mass, err := strconv.ParseFloat(massString, 64)
		if err != nil {
			return milerr.Input("invalid mass %q: %v", massString, err)
		}
		a.Mass = mass
		a.MassNumber = int(math.Round(mass))
		return nil
	}

	massNumber, err := strconv.Atoi(massString)
	if err != nil {
		return milerr.Input("invalid mass number %q: %v", massString, err)
	}
	if mass, ok := isotopeData[isotopeKey{a.Symbol, massNumber}]; ok {
		a.Mass = mass
		a.MassNumber = massNumber
		return nil
	}
	a.MassNumber = massNumber
	a.Mass = float64(massNumber)
	return nil
}

// String renders the atom the way the reference report prints an
// atomic mass table row.
func (a Atom) String() string {
	return strconv.Itoa(a.AtomicNumber) + " " + a.Symbol
}
