package model

import "math"

// 15种积分速率方程及其闭式反解
// 收缩类模型（13/14）在kt=1处饱和，饱和后保持alpha=1以维持单调性

// ZeroOrder 零级反应 g(alpha) = alpha
var ZeroOrder = AddModel(1, "Zero-order",
	func(kt float64) float64 { return kt },
	func(alpha float64) float64 { return alpha },
)

// FirstOrder 一级反应 g(alpha) = −ln(1−alpha)
var FirstOrder = AddModel(2, "First-order",
	func(kt float64) float64 { return 1 - math.Exp(-kt) },
	func(alpha float64) float64 { return -math.Log(1 - alpha) },
)

// SecondOrder 二级反应 g(alpha) = 1/(1−alpha) − 1
var SecondOrder = AddModel(3, "Second-order",
	func(kt float64) float64 { return kt / (1 + kt) },
	func(alpha float64) float64 { return 1/(1-alpha) - 1 },
)

// ThirdOrder 三级反应 g(alpha) = ((1−alpha)⁻² − 1)/2
var ThirdOrder = AddModel(4, "Third-order",
	func(kt float64) float64 { return 1 - 1/math.Sqrt(1+2*kt) },
	func(alpha float64) float64 { return 0.5 * (1/((1-alpha)*(1-alpha)) - 1) },
)

// AvramiErofeyev1 Avrami-Erofeyev n=1 g(alpha) = −ln(1−alpha)
var AvramiErofeyev1 = AddModel(5, "Avrami-Erofeyev 1", avramiForward(1), avramiIntegrated(1))

// AvramiErofeyev2 Avrami-Erofeyev n=2 g(alpha) = (−ln(1−alpha))^(1/2)
var AvramiErofeyev2 = AddModel(6, "Avrami-Erofeyev 2", avramiForward(2), avramiIntegrated(2))

// AvramiErofeyev3 Avrami-Erofeyev n=3 g(alpha) = (−ln(1−alpha))^(1/3)
var AvramiErofeyev3 = AddModel(7, "Avrami-Erofeyev 3", avramiForward(3), avramiIntegrated(3))

// AvramiErofeyev4 Avrami-Erofeyev n=4 g(alpha) = (−ln(1−alpha))^(1/4)
var AvramiErofeyev4 = AddModel(8, "Avrami-Erofeyev 4", avramiForward(4), avramiIntegrated(4))

// TwoThirdPower 2/3次幂律 g(alpha) = alpha^(2/3)
var TwoThirdPower = AddModel(9, "Two-third power law", powerForward(3.0/2.0), powerIntegrated(3.0/2.0))

// QuadraticPower 二次幂律 g(alpha) = alpha^(1/2)
var QuadraticPower = AddModel(10, "Quadratic power law", powerForward(2), powerIntegrated(2))

// CubicPower 三次幂律 g(alpha) = alpha^(1/3)
var CubicPower = AddModel(11, "Cubic power law", powerForward(3), powerIntegrated(3))

// QuarticPower 四次幂律 g(alpha) = alpha^(1/4)
var QuarticPower = AddModel(12, "Quartic power law", powerForward(4), powerIntegrated(4))

// ContractingArea 收缩面积 g(alpha) = 1 − (1−alpha)^(1/2)
var ContractingArea = AddModel(13, "Contracting area",
	func(kt float64) float64 {
		if kt > 1 {
			kt = 1
		}
		return 1 - (1-kt)*(1-kt)
	},
	func(alpha float64) float64 { return 1 - math.Sqrt(1-alpha) },
)

// ContractingVolume 收缩体积 g(alpha) = 1 − (1−alpha)^(1/3)
var ContractingVolume = AddModel(14, "Contracting volume",
	func(kt float64) float64 {
		if kt > 1 {
			kt = 1
		}
		u := 1 - kt
		return 1 - u*u*u
	},
	func(alpha float64) float64 { return 1 - math.Cbrt(1-alpha) },
)

// OneDimDiffusion 一维扩散 g(alpha) = alpha²
var OneDimDiffusion = AddModel(15, "1D diffusion",
	func(kt float64) float64 { return math.Sqrt(kt) },
	func(alpha float64) float64 { return alpha * alpha },
)

// avramiForward alpha = 1 − exp(−(kt)^n)
func avramiForward(n float64) func(float64) float64 {
	return func(kt float64) float64 { return 1 - math.Exp(-math.Pow(kt, n)) }
}

// avramiIntegrated g(alpha) = (−ln(1−alpha))^(1/n)
func avramiIntegrated(n float64) func(float64) float64 {
	return func(alpha float64) float64 { return math.Pow(-math.Log(1-alpha), 1/n) }
}

// powerForward alpha = (kt)^p（幂律模型 g(alpha) = alpha^(1/p)）
func powerForward(p float64) func(float64) float64 {
	return func(kt float64) float64 { return math.Pow(kt, p) }
}

// powerIntegrated g(alpha) = alpha^(1/p)
func powerIntegrated(p float64) func(float64) float64 {
	return func(alpha float64) float64 { return math.Pow(alpha, 1/p) }
}
