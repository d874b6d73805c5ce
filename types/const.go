package types

// GasConstant 理想气体常数，单位 kcal/(mol·K)
const GasConstant = 1.985877534e-3

// MinRows 可辨识拟合所需的最少数据行数（2个自由参数）
const MinRows = 3

// 默认参数常量定义
var (
	AlphaTolerance = 1e-6   // 转化率越界容差（超出视为数据错误而非舍入噪声）
	Tolerance      = 1e-15  // 残差目标收敛容差
	GradTolerance  = 1e-8   // 梯度收敛容差
	MaxIterations  = 100000 // 求解器最大迭代次数
	DefaultGuessA  = 100.0  // 默认初始猜测：指前因子A
	DefaultGuessEa = 10.0   // 默认初始猜测：活化能Ea (kcal/mol)
	CurvePoints    = 100    // 拟合曲线采样点数
)
