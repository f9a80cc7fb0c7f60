package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Lightweight concrete modification factor, normal weight (Section 419.2.4)
	Lambda = 1.0
)

// Ec calculates the modulus of elasticity of normal weight concrete
// NSCP 2015 Section 419.2.2.1
func Ec(fc float64) float64 {
	// Ec = 4700√f'c
	return 4700 * math.Sqrt(fc)
}

// ModularRatio calculates n = Es/Ec used to transform reinforcement
// into equivalent concrete area
func ModularRatio(fc float64) float64 {
	return Es / Ec(fc)
}

// ModulusOfRupture calculates the flexural tensile strength of concrete
// NSCP 2015 Section 419.2.3.1
func ModulusOfRupture(fc float64) float64 {
	// fr = 0.62λ√f'c
	return 0.62 * Lambda * math.Sqrt(fc)
}
