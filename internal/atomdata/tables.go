package atomdata

// isotopeEntry is the most-abundant-isotope row kept per element:
// (atomic number, mass number, isotopic mass in amu).
//
// Reference: Coursey, J.S., Schwab, D.J., Tsai, J.J., and Dragoset,
// R.A. (2015), Atomic Weights and Isotopic Compositions (version
// 4.1). National Institute of Standards and Technology.
type isotopeEntry struct {
	z    int
	a    int
	mass float64
}

var defaultFromSymbol = map[string]isotopeEntry{
	"H": {1, 1, 1.00782503223}, "He": {2, 4, 4.00260325413},
	"Li": {3, 7, 7.0160034366}, "Be": {4, 9, 9.012183065},
	"B": {5, 11, 11.00930536}, "C": {6, 12, 12.0000000},
	"N": {7, 14, 14.00307400443}, "O": {8, 16, 15.99491461957},
	"F": {9, 19, 18.99840316273}, "Ne": {10, 20, 19.9924401762},
	"Na": {11, 23, 22.9897692820}, "Mg": {12, 24, 23.985041697},
	"Al": {13, 27, 26.98153853}, "Si": {14, 28, 27.97692653465},
	"P": {15, 31, 30.97376199842}, "S": {16, 32, 31.9720711744},
	"Cl": {17, 35, 34.968852682}, "Ar": {18, 40, 39.9623831237},
	"K": {19, 39, 38.9637064864}, "Ca": {20, 40, 39.9625906},
	"Sc": {21, 45, 44.9559083}, "Ti": {22, 48, 47.9479409},
	"V": {23, 51, 50.9439570}, "Cr": {24, 52, 51.9405062},
	"Mn": {25, 55, 54.9380439}, "Fe": {26, 56, 55.9349363},
	"Co": {27, 59, 58.9331943}, "Ni": {28, 58, 57.9353424},
	"Cu": {29, 63, 62.9295977}, "Zn": {30, 64, 63.9291420},
	"Ga": {31, 69, 68.9255735}, "Ge": {32, 74, 73.9211774},
	"As": {33, 75, 74.9215945}, "Se": {34, 80, 79.9165196},
	"Br": {35, 79, 78.9183361}, "Kr": {36, 84, 83.911507},
	"Rb": {37, 85, 84.911789}, "Sr": {38, 88, 87.905612},
	"Y": {39, 89, 88.905848}, "Zr": {40, 90, 89.904704},
	"Nb": {41, 93, 92.906378}, "Mo": {42, 98, 97.905408},
	"Tc": {43, 98, 97.907216}, "Ru": {44, 101, 100.905582},
	"Rh": {45, 103, 102.905504}, "Pd": {46, 106, 105.903486},
	"Ag": {47, 107, 106.905097}, "Cd": {48, 114, 113.903358},
	"In": {49, 115, 114.903879}, "Sn": {50, 120, 119.902202},
	"Sb": {51, 121, 120.903816}, "Te": {52, 130, 129.906224},
	"I": {53, 127, 126.904473}, "Xe": {54, 132, 131.904155},
	"Cs": {55, 133, 132.905452}, "Ba": {56, 138, 137.905247},
	"La": {57, 139, 138.906353}, "Ce": {58, 140, 139.905439},
	"Pr": {59, 141, 140.907653}, "Nd": {60, 142, 141.907723},
	"Pm": {61, 145, 144.912749}, "Sm": {62, 152, 151.919732},
	"Eu": {63, 153, 152.921230}, "Gd": {64, 158, 157.924104},
	"Tb": {65, 159, 158.925347}, "Dy": {66, 164, 163.929175},
	"Ho": {67, 165, 164.930322}, "Er": {68, 166, 165.930293},
	"Tm": {69, 169, 168.934213}, "Yb": {70, 174, 173.938862},
	"Lu": {71, 175, 174.940771}, "Hf": {72, 180, 179.946550},
	"Ta": {73, 181, 180.947996}, "W": {74, 184, 183.950933},
	"Re": {75, 187, 186.955751}, "Os": {76, 192, 191.961479},
	"Ir": {77, 193, 192.962924}, "Pt": {78, 195, 194.964774},
	"Au": {79, 197, 196.966569}, "Hg": {80, 202, 201.970643},
	"Tl": {81, 205, 204.974428}, "Pb": {82, 208, 207.976652},
	"Bi": {83, 209, 208.980399}, "Po": {84, 209, 208.982430},
	"At": {85, 210, 209.987148}, "Rn": {86, 222, 222.017578},
	"Fr": {87, 223, 223.019736}, "Ra": {88, 226, 226.025410},
	"Ac": {89, 227, 227.027747}, "Th": {90, 232, 232.038055},
	"Pa": {91, 231, 231.035882}, "U": {92, 238, 238.050786},
	"Np": {93, 237, 237.048173}, "Pu": {94, 244, 244.064204},
	"Am": {95, 243, 243.061381}, "Cm": {96, 247, 247.070353},
	"Bk": {97, 247, 247.070307}, "Cf": {98, 251, 251.079587},
	"Es": {99, 252, 252.082980}, "Fm": {100, 257, 257.095105},
	"Md": {101, 258, 258.098431}, "No": {102, 259, 259.101030},
	"Lr": {103, 262, 262.109610}, "Rf": {104, 267, 267.121790},
	"Db": {105, 268, 268.125670}, "Sg": {106, 271, 271.133930},
	"Bh": {107, 272, 272.138260}, "Hs": {108, 270, 270.134290},
	"Mt": {109, 276, 276.151590}, "Ds": {110, 281, 281.164510},
	"Rg": {111, 280, 280.165140}, "Cn": {112, 285, 285.177120},
	"Nh": {113, 284, 284.178730}, "Fl": {114, 289, 289.190420},
	"Mc": {115, 288, 288.192740}, "Lv": {116, 293, 293.204490},
	"Ts": {117, 292, 292.207460}, "Og": {118, 294, 294.213920},
}

// specialIsotopes maps the deuterium/tritium aliases to their entry.
var specialIsotopes = map[string]isotopeEntry{
	"D": {1, 2, 2.01410177812},
	"T": {1, 3, 3.0160492779},
}

// isotopeKey identifies a named isotope by (symbol, mass number).
type isotopeKey struct {
	symbol string
	a      int
}

// isotopeData covers the isotopes of the elements most commonly
// appearing in organic/small-molecule electronic-structure
// calculations (H through Ar, plus the common halogens). Any isotope
// not listed here falls back to the element's default isotope per
// FromSymbolMassNumber's documented contract; it is not an error.
var isotopeData = map[isotopeKey]float64{
	{"H", 1}: 1.00782503223, {"H", 2}: 2.01410177812, {"H", 3}: 3.0160492779,
	{"D", 2}: 2.01410177812, {"T", 3}: 3.0160492779,
	{"He", 3}: 3.0160293201, {"He", 4}: 4.00260325413,
	{"Li", 6}: 6.0151228874, {"Li", 7}: 7.0160034366,
	{"Be", 9}: 9.012183065,
	{"B", 10}: 10.0129369, {"B", 11}: 11.00930536,
	{"C", 12}: 12.0000000, {"C", 13}: 13.00335483507, {"C", 14}: 14.0032419884,
	{"N", 14}: 14.00307400443, {"N", 15}: 15.00010889888,
	{"O", 16}: 15.99491461957, {"O", 17}: 16.99913175650, {"O", 18}: 17.99915961286,
	{"F", 19}: 18.99840316273,
	{"Ne", 20}: 19.9924401762, {"Ne", 21}: 20.993846685, {"Ne", 22}: 21.991385114,
	{"Na", 23}: 22.9897692820,
	{"Mg", 24}: 23.985041697, {"Mg", 25}: 24.985836976, {"Mg", 26}: 25.982592968,
	{"Al", 27}: 26.98153853,
	{"Si", 28}: 27.97692653465, {"Si", 29}: 28.97649466490, {"Si", 30}: 29.973770136,
	{"P", 31}: 30.97376199842,
	{"S", 32}: 31.9720711744, {"S", 33}: 32.97145875870, {"S", 34}: 33.967867004, {"S", 36}: 35.96708071,
	{"Cl", 35}: 34.968852682, {"Cl", 37}: 36.965902602,
	{"Ar", 36}: 35.967545105, {"Ar", 38}: 37.96273211, {"Ar", 40}: 39.9623831237,
	{"Br", 79}: 78.91833710, {"Br", 81}: 80.91629056,
	{"I", 127}: 126.90447280,
}

// defaultFromNumber inverts defaultFromSymbol, built once at init.
var defaultFromNumber = func() map[int]struct {
	symbol string
	entry  isotopeEntry
} {
	m := make(map[int]struct {
		symbol string
		entry  isotopeEntry
	}, len(defaultFromSymbol))
	for sym, e := range defaultFromSymbol {
		m[e.z] = struct {
			symbol string
			entry  isotopeEntry
		}{sym, e}
	}
	return m
}()
