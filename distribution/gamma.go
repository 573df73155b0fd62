package distribution

import "math"

// Lanczos approximation, g = 7, n = 9.
const lanczosG = 7

// maxGammaArg is the largest z for which Γ(z) fits in a float64.
const maxGammaArg = 171.62

var lanczosCoefficients = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// LogGamma returns ln|Γ(z)|. It stays finite far beyond the point where Γ
// itself overflows (z ≈ 171.6), which is what makes large Poisson counts
// evaluable. Poles at z = 0, -1, -2, ... return +Inf.
func LogGamma(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return math.NaN()
	case math.IsInf(z, 1):
		return math.Inf(1)
	case z <= 0 && z == math.Floor(z):
		return math.Inf(1)
	}

	if z < 0.5 {
		// Reflection: Γ(z)Γ(1-z) = π / sin(πz).
		return math.Log(math.Pi/math.Abs(math.Sin(math.Pi*z))) - LogGamma(1-z)
	}

	z--
	x := lanczosCoefficients[0]
	for i := 1; i < len(lanczosCoefficients); i++ {
		x += lanczosCoefficients[i] / (z + float64(i))
	}

	t := z + lanczosG + 0.5
	return 0.5*math.Log(2*math.Pi) + (z+0.5)*math.Log(t) - t + math.Log(x)
}

// Gamma returns Γ(z). Above z ≈ 171.62 the result overflows to +Inf.
func Gamma(z float64) float64 {
	if z > maxGammaArg {
		return math.Inf(1)
	}
	if z < 0.5 {
		return math.Pi / (math.Sin(math.Pi*z) * Gamma(1-z))
	}

	z--
	x := lanczosCoefficients[0]
	for i := 1; i < len(lanczosCoefficients); i++ {
		x += lanczosCoefficients[i] / (z + float64(i))
	}

	t := z + lanczosG + 0.5
	// t^(z+0.5) overflows long before Γ does, so apply it in two halves.
	half := math.Pow(t, (z+0.5)/2)
	return math.Sqrt(2*math.Pi) * half * (half * math.Exp(-t)) * x
}

// Factorial returns k! = Γ(k+1). Exact products are used up to 20!, the
// largest factorial representable without rounding; beyond that the gamma
// function is used and the result overflows to +Inf above 170!.
// Negative k returns NaN.
func Factorial(k int) float64 {
	if k < 0 {
		return math.NaN()
	}
	if k <= 20 {
		f := 1.0
		for i := 2; i <= k; i++ {
			f *= float64(i)
		}
		return f
	}
	return Gamma(float64(k) + 1)
}
