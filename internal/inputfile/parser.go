// Package inputfile parses Milo's block-structured input deck
// ($job/$molecule/$isotope/$velocities/$frequency_data/$gaussian_footer)
// into a state.ProgramState, following the same validate-then-dispatch
// shape the reference parser uses: tokenize every line, check section
// and parameter invariants up front, then hand each $job key to a
// small per-parameter handler.
package inputfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarat-asymmetrica/milo/internal/atomdata"
	"github.com/sarat-asymmetrica/milo/internal/milerr"
	"github.com/sarat-asymmetrica/milo/internal/state"
	"github.com/sarat-asymmetrica/milo/internal/units"
)

// token is one tokenized input line: the first whitespace-separated
// word, casefolded for matching, and the untouched remainder.
type token struct {
	key  string
	rest string
}

// ParseFile opens path and parses it into a fresh ProgramState.
func ParseFile(path string) (*state.ProgramState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, milerr.WrapInput(err, "opening %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a complete input deck from r and returns a populated
// ProgramState, or an InputError describing the first problem found.
func Parse(r io.Reader) (*state.ProgramState, error) {
	rawLines, err := readLines(r)
	if err != nil {
		return nil, milerr.WrapInput(err, "reading input")
	}

	tokens := tokenizeLines(rawLines)
	sectionsPresent := presentSections(tokens)
	if err := validateSections(sectionsPresent); err != nil {
		return nil, err
	}
	if err := validateNoDuplicateSections(sectionCounts(tokens)); err != nil {
		return nil, err
	}

	s := state.New()
	jobTokens := section(tokens, "$job")
	if err := validateJobParameters(jobTokens); err != nil {
		return nil, err
	}

	moleculeTokens := section(tokens, "$molecule")
	if err := parseMolecule(moleculeTokens, s); err != nil {
		return nil, err
	}

	isotopeTokens := section(tokens, "$isotope")
	if err := parseIsotopes(isotopeTokens, s); err != nil {
		return nil, err
	}

	s.Structures = append(s.Structures, s.InputStructure)

	defaultsUsed := map[string]string{
		"max_steps":            "no_limit",
		"phase":                "random",
		"program":              "gaussian16",
		"integration_algorithm": "verlet",
		"step_size":            "1.00 fs",
		"temperature":          "298.15 K",
		"energy_boost":         "off",
		"oscillator_type":      "quasiclassical",
		"geometry_displacement": "off",
		"rotational_energy":    "off",
	}
	for _, tok := range jobTokens {
		delete(defaultsUsed, tok.key)
		handler, ok := jobHandlers[tok.key]
		if !ok {
			return nil, milerr.Input("invalid parameter %q in $job section", tok.key)
		}
		if err := handler(tok.rest, s); err != nil {
			return nil, err
		}
	}
	s.DefaultsUsed = defaultsUsed

	if sectionsPresent["$gaussian_footer"] {
		s.GaussianFooter = extractGaussianFooter(rawLines)
	}

	freqTokens := section(tokens, "$frequency_data")
	if err := parseFrequencyData(freqTokens, s); err != nil {
		return nil, err
	}

	if sectionsPresent["$velocities"] {
		velTokens := section(tokens, "$velocities")
		if err := parseVelocities(velTokens, s); err != nil {
			return nil, err
		}
	}

	if s.JobName == "" {
		s.JobName = "MiloJob"
	}
	return s, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// tokenizeLines strips comments and blank lines, then splits each
// remaining line into its first word and the rest of the line.
func tokenizeLines(lines []string) []token {
	var out []token
	for _, line := range lines {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key := strings.ToLower(fields[0])
		rest := ""
		if idx := strings.Index(line, fields[0]); idx >= 0 {
			rest = strings.TrimSpace(line[idx+len(fields[0]):])
		}
		out = append(out, token{key: key, rest: rest})
	}
	return out
}

var allSections = []string{"$job", "$molecule", "$isotope", "$velocities", "$frequency_data", "$gaussian_footer", "$end"}

func isSectionKey(key string) bool {
	for _, s := range allSections {
		if key == s {
			return true
		}
	}
	return false
}

func presentSections(tokens []token) map[string]bool {
	out := map[string]bool{}
	for _, t := range tokens {
		if isSectionKey(t.key) && t.key != "$end" {
			out[t.key] = true
		}
	}
	return out
}

func sectionCounts(tokens []token) map[string]int {
	out := map[string]int{}
	for _, t := range tokens {
		if isSectionKey(t.key) && t.key != "$end" {
			out[t.key]++
		}
	}
	return out
}

// section extracts the tokens lying between a "name" marker and the
// next "$end", across possibly-repeated occurrences (only the parser's
// duplicate-section validation prevents more than one in practice).
func section(tokens []token, name string) []token {
	var out []token
	inSection := false
	for _, t := range tokens {
		switch {
		case t.key == name:
			inSection = true
		case t.key == "$end":
			inSection = false
		case inSection:
			out = append(out, t)
		}
	}
	return out
}

var noDuplicateSections = []string{"$job", "$molecule", "$isotope", "$velocities", "$frequency_data", "$gaussian_footer"}

func validateSections(present map[string]bool) error {
	if !present["$job"] {
		return milerr.Input("could not find $job section")
	}
	if !present["$molecule"] {
		return milerr.Input("could not find $molecule section")
	}
	if present["$velocities"] && present["$frequency_data"] {
		return milerr.Input("$velocities, $frequency_data are mutually exclusive")
	}
	return nil
}

func validateNoDuplicateSections(counts map[string]int) error {
	for _, name := range noDuplicateSections {
		if counts[name] > 1 {
			return milerr.Input("found more than one %s section", name)
		}
	}
	return nil
}

func validateJobParameters(jobTokens []token) error {
	seenGaussianHeader := false
	counts := map[string]int{}
	for _, t := range jobTokens {
		counts[t.key]++
		if t.key == "gaussian_header" {
			seenGaussianHeader = true
		}
	}
	if !seenGaussianHeader {
		return milerr.Input("could not find the required gaussian_header parameter in the $job section")
	}
	for key, n := range counts {
		if n > 1 && key != "fixed_mode_direction" && key != "fixed_vibrational_quanta" {
			return milerr.Input("the %q parameter can only be listed once", key)
		}
	}
	return nil
}

func parseMolecule(tokens []token, s *state.ProgramState) error {
	if len(tokens) == 0 {
		return milerr.Input("could not find charge and/or spin multiplicity in the $molecule section")
	}
	header := tokens[0]
	fields := strings.Fields(header.key + " " + header.rest)
	if len(fields) < 2 {
		return milerr.Input("could not find charge and/or spin multiplicity in the $molecule section")
	}
	charge, errC := strconv.Atoi(fields[0])
	spin, errS := strconv.Atoi(fields[1])
	if errC != nil || errS != nil {
		return milerr.Input("could not find charge and/or spin multiplicity in the $molecule section")
	}
	s.Charge = charge
	s.Spin = spin

	s.InputStructure = units.NewPositions()
	for _, t := range tokens[1:] {
		atom, err := atomdata.FromSymbol(t.key)
		if err != nil {
			return milerr.Input("could not interpret %q %q in the $molecule section", t.key, t.rest)
		}
		coords := strings.Fields(t.rest)
		if len(coords) != 3 {
			return milerr.Input("could not interpret %q %q in the $molecule section", t.key, t.rest)
		}
		x, errX := strconv.ParseFloat(coords[0], 64)
		y, errY := strconv.ParseFloat(coords[1], 64)
		z, errZ := strconv.ParseFloat(coords[2], 64)
		if errX != nil || errY != nil || errZ != nil {
			return milerr.Input("could not interpret %q %q in the $molecule section", t.key, t.rest)
		}
		s.Atoms = append(s.Atoms, atom)
		s.InputStructure.Append(x, y, z, units.Angstrom)
	}
	return nil
}

func parseIsotopes(tokens []token, s *state.ProgramState) error {
	for _, t := range tokens {
		index, err := strconv.Atoi(t.key)
		if err != nil {
			return milerr.Input("could not interpret %q %q in the $isotope section", t.key, t.rest)
		}
		i := index - 1
		if i < 0 || i >= len(s.Atoms) {
			return milerr.Input("could not interpret %q %q in the $isotope section", t.key, t.rest)
		}
		if err := s.Atoms[i].ChangeMass(t.rest); err != nil {
			return milerr.WrapInput(err, "could not interpret %q %q in the $isotope section", t.key, t.rest)
		}
	}
	return nil
}

func parseFrequencyData(tokens []token, s *state.ProgramState) error {
	if len(tokens) == 0 {
		return nil
	}
	s.Frequencies = units.NewFrequencies()
	s.ReducedMasses = units.NewMasses()
	s.ForceConstants = units.NewForceConstants()
	s.ModeDisplacements = nil

	i := 0
	for i < len(tokens) {
		header := tokens[i]
		fields := strings.Fields(header.rest)
		if len(fields) < 2 {
			return milerr.Input("could not interpret $frequency_data section")
		}
		freq, errF := strconv.ParseFloat(header.key, 64)
		mu, errM := strconv.ParseFloat(fields[0], 64)
		k, errK := strconv.ParseFloat(fields[1], 64)
		if errF != nil || errM != nil || errK != nil {
			return milerr.Input("could not interpret $frequency_data section")
		}
		s.Frequencies.Append(freq)
		s.ReducedMasses.Append(mu, units.Amu)
		s.ForceConstants.Append(k, units.MillidynePerAngstrom)

		i++
		disp := make([]units.Vector3, 0, len(s.Atoms))
		for n := 0; n < len(s.Atoms); n++ {
			if i >= len(tokens) {
				return milerr.Input("could not interpret $frequency_data section")
			}
			row := tokens[i]
			fields := strings.Fields(row.key + " " + row.rest)
			if len(fields) != 3 {
				return milerr.Input("could not interpret $frequency_data section")
			}
			x, errX := strconv.ParseFloat(fields[0], 64)
			y, errY := strconv.ParseFloat(fields[1], 64)
			z, errZ := strconv.ParseFloat(fields[2], 64)
			if errX != nil || errY != nil || errZ != nil {
				return milerr.Input("could not interpret $frequency_data section")
			}
			disp = append(disp, units.Vector3{X: x, Y: y, Z: z})
			i++
		}
		s.ModeDisplacements = append(s.ModeDisplacements, disp)
	}
	return nil
}

func parseVelocities(tokens []token, s *state.ProgramState) error {
	v := units.NewVelocities()
	for _, t := range tokens {
		x, errX := strconv.ParseFloat(t.key, 64)
		fields := strings.Fields(t.rest)
		if errX != nil || len(fields) != 2 {
			return milerr.Input("could not interpret $velocities section")
		}
		y, errY := strconv.ParseFloat(fields[0], 64)
		z, errZ := strconv.ParseFloat(fields[1], 64)
		if errY != nil || errZ != nil {
			return milerr.Input("could not interpret $velocities section")
		}
		v.Append(x, y, z, units.MeterPerSec)
	}
	if v.Len() != len(s.Atoms) {
		return milerr.Input("number of atoms in $velocities and $molecule sections does not match")
	}
	s.Velocities = append(s.Velocities, v)
	return nil
}

// extractGaussianFooter re-scans the raw (untokenized) lines so that
// footer content is preserved verbatim, including characters a
// comment-stripping tokenizer would otherwise discard.
func extractGaussianFooter(rawLines []string) string {
	var b strings.Builder
	inSection := false
	for _, line := range rawLines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "$gaussian_footer"):
			inSection = true
		case inSection && strings.Contains(lower, "$end"):
			return b.String()
		case inSection:
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

type jobHandler func(options string, s *state.ProgramState) error

var jobHandlers = map[string]jobHandler{
	"current_step":           jobCurrentStep,
	"energy_boost":           jobEnergyBoost,
	"fixed_mode_direction":   jobFixedModeDirection,
	"fixed_vibrational_quanta": jobFixedVibrationalQuanta,
	"gaussian_header":        jobGaussianHeader,
	"gaussian_footer":        jobGaussianFooterInline,
	"geometry_displacement":  jobGeometryDisplacement,
	"integration_algorithm":  jobIntegrationAlgorithm,
	"max_steps":              jobMaxSteps,
	"memory":                 jobMemory,
	"oscillator_type":        jobOscillatorType,
	"phase":                  jobPhase,
	"processors":             jobProcessors,
	"program":                jobProgram,
	"random_seed":            jobRandomSeed,
	"rotational_energy":      jobRotationalEnergy,
	"step_size":              jobStepSize,
	"temperature":            jobTemperature,
}

func jobCurrentStep(options string, s *state.ProgramState) error {
	n, err := strconv.Atoi(options)
	if err != nil {
		return milerr.Input("could not interpret 'current_step %s'. Expected 'current_step int'", options)
	}
	s.CurrentStep = n
	return nil
}

func jobEnergyBoost(options string, s *state.ProgramState) error {
	errMsg := fmt.Sprintf("could not interpret parameter 'energy_boost %s'. Expected 'energy_boost on min max' or 'energy_boost off'", options)
	fields := strings.Fields(options)
	if len(fields) == 0 {
		return milerr.Input("%s", errMsg)
	}
	switch strings.ToLower(fields[0]) {
	case "off":
		s.EnergyBoost = state.EnergyBoostOff
		return nil
	case "on":
		if len(fields) != 3 {
			return milerr.Input("%s", errMsg)
		}
		min, errMin := strconv.ParseFloat(fields[1], 64)
		max, errMax := strconv.ParseFloat(fields[2], 64)
		if errMin != nil || errMax != nil {
			return milerr.Input("%s", errMsg)
		}
		if min > max {
			min, max = max, min
		}
		s.EnergyBoost = state.EnergyBoostOn
		s.EnergyBoostMin = min
		s.EnergyBoostMax = max
		return nil
	default:
		return milerr.Input("%s", errMsg)
	}
}

func jobFixedModeDirection(options string, s *state.ProgramState) error {
	errMsg := fmt.Sprintf("could not interpret parameter 'fixed_mode_direction %s'. Expected 'fixed_mode_direction n 1', or 'fixed_mode_direction n -1'", options)
	fields := strings.Fields(options)
	if len(fields) != 2 {
		return milerr.Input("%s", errMsg)
	}
	mode, errMode := strconv.Atoi(fields[0])
	direction, errDir := strconv.Atoi(fields[1])
	if errMode != nil || errDir != nil || mode < 1 || (direction != 1 && direction != -1) {
		return milerr.Input("%s", errMsg)
	}
	if s.FixedModeDirections == nil {
		s.FixedModeDirections = map[int]float64{}
	}
	s.FixedModeDirections[mode-1] = float64(direction)
	return nil
}

func jobFixedVibrationalQuanta(options string, s *state.ProgramState) error {
	errMsg := fmt.Sprintf("could not interpret parameter 'fixed_vibrational_quanta %s'. Expected 'fixed_vibrational_quanta n m'", options)
	fields := strings.Fields(options)
	if len(fields) != 2 {
		return milerr.Input("%s", errMsg)
	}
	mode, errMode := strconv.Atoi(fields[0])
	quantum, errQ := strconv.Atoi(fields[1])
	if errMode != nil || errQ != nil || mode < 1 || quantum < 0 {
		return milerr.Input("%s", errMsg)
	}
	if s.FixedVibrationalQuanta == nil {
		s.FixedVibrationalQuanta = map[int]int{}
	}
	s.FixedVibrationalQuanta[mode-1] = quantum
	return nil
}

func jobGaussianHeader(options string, s *state.ProgramState) error {
	s.GaussianHeader = options
	return nil
}

func jobGaussianFooterInline(options string, s *state.ProgramState) error {
	s.GaussianFooter = strings.ReplaceAll(options, "\\n", "\n")
	return nil
}

func jobGeometryDisplacement(options string, s *state.ProgramState) error {
	switch strings.ToLower(options) {
	case "edge_weighted":
		s.GeometryDisplacement = state.DisplacementEdgeWeighted
	case "gaussian":
		s.GeometryDisplacement = state.DisplacementGaussian
	case "uniform":
		s.GeometryDisplacement = state.DisplacementUniform
	case "off":
		s.GeometryDisplacement = state.DisplacementNone
	default:
		return milerr.Input("could not interpret parameter 'geometry_displacement %s'", options)
	}
	return nil
}

func jobIntegrationAlgorithm(options string, s *state.ProgramState) error {
	switch strings.ToLower(options) {
	case "verlet":
		s.PropagationAlgorithm = state.Verlet
	case "velocity_verlet":
		s.PropagationAlgorithm = state.VelocityVerlet
	default:
		return milerr.Input("could not interpret parameter 'integration_algorithm %s'. Expected 'verlet' or 'velocity_verlet'", options)
	}
	return nil
}

func jobMaxSteps(options string, s *state.ProgramState) error {
	if strings.ToLower(options) == "no_limit" {
		s.MaxSteps = nil
		return nil
	}
	n, err := strconv.Atoi(options)
	if err != nil {
		return milerr.Input("could not interpret parameter 'max_steps %s'. Expected 'max_steps integer' or 'no_limit'", options)
	}
	s.MaxSteps = &n
	return nil
}

func jobMemory(options string, s *state.ProgramState) error {
	n, err := strconv.Atoi(options)
	if err != nil {
		return milerr.Input("could not interpret parameter 'memory %s'. Expected 'memory integer'", options)
	}
	s.MemoryAmountGB = &n
	return nil
}

func jobOscillatorType(options string, s *state.ProgramState) error {
	switch strings.ToLower(options) {
	case "classical":
		s.OscillatorType = state.Classical
	case "quasiclassical":
		s.OscillatorType = state.Quasiclassical
	default:
		return milerr.Input("could not interpret parameter 'oscillator_type %s'", options)
	}
	return nil
}

func jobPhase(options string, s *state.ProgramState) error {
	errMsg := fmt.Sprintf("could not interpret parameter 'phase %s'. Expected 'phase bring_together index1 index2', 'phase push_apart index1 index2' or 'phase random'", options)
	fields := strings.Fields(options)
	if len(fields) == 0 {
		return milerr.Input("%s", errMsg)
	}
	switch strings.ToLower(fields[0]) {
	case "random":
		s.PhaseDirection = state.PhaseRandom
		return nil
	case "bring_together", "push_apart":
		if len(fields) != 3 {
			return milerr.Input("%s", errMsg)
		}
		i, errI := strconv.Atoi(fields[1])
		j, errJ := strconv.Atoi(fields[2])
		if errI != nil || errJ != nil {
			return milerr.Input("%s", errMsg)
		}
		if strings.ToLower(fields[0]) == "bring_together" {
			s.PhaseDirection = state.PhaseBringTogether
		} else {
			s.PhaseDirection = state.PhasePushApart
		}
		s.Phase = &state.PhasePair{AtomI: i - 1, AtomJ: j - 1}
		return nil
	default:
		return milerr.Input("%s", errMsg)
	}
}

func jobProcessors(options string, s *state.ProgramState) error {
	n, err := strconv.Atoi(options)
	if err != nil {
		return milerr.Input("could not interpret parameter 'processors %s'. Expected 'processors integer'", options)
	}
	s.ProcessorCount = &n
	return nil
}

func jobProgram(options string, s *state.ProgramState) error {
	switch strings.ToLower(options) {
	case "gaussian16", "g16":
		s.ProgramID = state.Gaussian16
	case "gaussian09", "g09":
		s.ProgramID = state.Gaussian09
	default:
		return milerr.Input("could not interpret parameter 'program %s'. Expected 'program gaussian16' or 'program gaussian09'", options)
	}
	return nil
}

func jobRandomSeed(options string, s *state.ProgramState) error {
	if strings.ToLower(options) == "generate" {
		s.Random.Reset(nil)
		return nil
	}
	n, err := strconv.ParseInt(options, 10, 64)
	if err != nil {
		return milerr.Input("could not interpret parameter 'random_seed %s'. Expected 'random_seed integer' or 'random_seed generate'", options)
	}
	s.Random.Reset(&n)
	return nil
}

func jobRotationalEnergy(options string, s *state.ProgramState) error {
	switch strings.ToLower(options) {
	case "on":
		s.AddRotationalEnergy = state.RotationalEnergyOn
	case "off":
		s.AddRotationalEnergy = state.RotationalEnergyOff
	default:
		return milerr.Input("could not interpret parameter 'rotational_energy %s'. Expected 'rotational_energy on' or 'rotational_energy off'", options)
	}
	return nil
}

func jobStepSize(options string, s *state.ProgramState) error {
	v, err := strconv.ParseFloat(options, 64)
	if err != nil {
		return milerr.Input("could not interpret parameter 'step_size %s'. Expected 'step_size floating-point'", options)
	}
	s.StepSize = units.NewTime(v, units.Femtosecond)
	return nil
}

func jobTemperature(options string, s *state.ProgramState) error {
	v, err := strconv.ParseFloat(options, 64)
	if err != nil {
		return milerr.Input("could not interpret parameter 'temperature %s'. Expected 'temperature floating-point'", options)
	}
	s.Temperature = v
	return nil
}

