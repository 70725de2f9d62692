// SPDX-License-Identifier: MIT

package atoms

// Fallbacks used for atomic numbers outside the tables.
const (
	DefaultCovalentRadius = 1.5
	maxTabulated          = 86
)

// symbols[z] is the chemical symbol of atomic number z; index 0 is a dummy "X".
var symbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

// covalentRadii in Å (Cordero et al. 2008), indexed by atomic number.
var covalentRadii = [...]float64{
	0.20,
	0.31, 0.28,
	1.28, 0.96, 0.84, 0.76, 0.71, 0.66, 0.57, 0.58,
	1.66, 1.41, 1.21, 1.11, 1.07, 1.05, 1.02, 1.06,
	2.03, 1.76, 1.70, 1.60, 1.53, 1.39, 1.39, 1.32, 1.26, 1.24, 1.32, 1.22,
	1.22, 1.20, 1.19, 1.20, 1.20, 1.16,
	2.20, 1.95, 1.90, 1.75, 1.64, 1.54, 1.47, 1.46, 1.42, 1.39, 1.45, 1.44,
	1.42, 1.39, 1.39, 1.38, 1.39, 1.40,
	2.44, 2.15, 2.07, 2.04, 2.03, 2.01, 1.99, 1.98, 1.98, 1.96, 1.94, 1.92,
	1.92, 1.89, 1.90, 1.87, 1.87, 1.75, 1.70, 1.62, 1.51, 1.44, 1.41, 1.36,
	1.36, 1.32, 1.45, 1.46, 1.48, 1.40, 1.50, 1.50,
}

// atomicMasses in u, indexed by atomic number.
var atomicMasses = [...]float64{
	1.0,
	1.008, 4.0026,
	6.94, 9.0122, 10.81, 12.011, 14.007, 15.999, 18.998, 20.180,
	22.990, 24.305, 26.982, 28.085, 30.974, 32.06, 35.45, 39.948,
	39.098, 40.078, 44.956, 47.867, 50.942, 51.996, 54.938, 55.845, 58.933, 58.693, 63.546, 65.38,
	69.723, 72.630, 74.922, 78.971, 79.904, 83.798,
	85.468, 87.62, 88.906, 91.224, 92.906, 95.95, 98.0, 101.07, 102.91, 106.42, 107.87, 112.41,
	114.82, 118.71, 121.76, 127.60, 126.90, 131.29,
	132.91, 137.33, 138.91, 140.12, 140.91, 144.24, 145.0, 150.36, 151.96, 157.25, 158.93, 162.50,
	164.93, 167.26, 168.93, 173.05, 174.97, 178.49, 180.95, 183.84, 186.21, 190.23, 192.22, 195.08,
	196.97, 200.59, 204.38, 207.2, 208.98, 209.0, 210.0, 222.0,
}

// symbolIndex is built once from symbols.
var symbolIndex = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		m[s] = z
	}

	return m
}()

// CovalentRadius returns the covalent radius of atomic number z in Å.
// Numbers outside the table get DefaultCovalentRadius.
func CovalentRadius(z int) float64 {
	if z < 0 || z > maxTabulated {
		return DefaultCovalentRadius
	}

	return covalentRadii[z]
}

// Mass returns the standard atomic mass of z; untabulated numbers get 2·z.
func Mass(z int) float64 {
	if z < 0 || z > maxTabulated {
		return 2 * float64(z)
	}

	return atomicMasses[z]
}

// Symbol returns the chemical symbol of z, or "X" when unknown.
func Symbol(z int) string {
	if z < 0 || z > maxTabulated {
		return "X"
	}

	return symbols[z]
}

// Number returns the atomic number of a chemical symbol.
func Number(symbol string) (int, error) {
	z, ok := symbolIndex[symbol]
	if !ok || z == 0 {
		return 0, atomsErrorf(opNumber, ErrUnknownElement)
	}

	return z, nil
}

// Formula returns a Hill-like reduced-free formula: symbols in order of first
// appearance followed by their counts (count 1 omitted), e.g. "MoS2".
func Formula(numbers []int) string {
	var (
		order  []int
		counts = map[int]int{}
	)
	for _, z := range numbers {
		if counts[z] == 0 {
			order = append(order, z)
		}
		counts[z]++
	}
	var out []byte
	for _, z := range order {
		out = append(out, Symbol(z)...)
		if counts[z] > 1 {
			out = appendInt(out, counts[z])
		}
	}

	return string(out)
}

func appendInt(b []byte, n int) []byte {
	if n >= 10 {
		b = appendInt(b, n/10)
	}

	return append(b, byte('0'+n%10))
}
