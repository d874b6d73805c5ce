// Package fit 实现回归引擎与拟合评估器：
// 以Levenberg-Marquardt法将选定的动力学模型拟合到实验数据，
// 恢复阿伦尼乌斯参数(A, Ea)及其协方差，并生成归一化拟合曲线
package fit

import (
	"math"

	"github.com/maorshutman/lm"

	"kinetics/maths"
	"kinetics/model"
	"kinetics/types"
)

// Fit 对数据集拟合指定编号的动力学模型，唯一入口
// 每次调用为独立的纯计算，无共享状态，结果归调用方所有
// 参数:
//
//	ds - 已校验的实验数据集
//	modelID - 模型编号（1~15）
//	guess - 可选的(A, Ea)初始猜测，缺省使用types.DefaultGuessA/DefaultGuessEa；
//	        求解器的收敛域依赖初始猜测，远离真值的猜测可能不收敛
//
// 返回:
//
//	拟合结果与错误。雅可比奇异时点估计仍然返回，方差以NaN标记，
//	并同时返回SingularJacobianError
func Fit(ds *types.Dataset, modelID int, guess ...float64) (*types.FitResult, error) {
	m, err := model.Get(modelID)
	if err != nil {
		return nil, err
	}
	n := 0
	if ds != nil {
		n = ds.Len()
	}
	if n < types.MinRows {
		return nil, &types.InsufficientDataError{Rows: n, Min: types.MinRows}
	}

	p0 := []float64{types.DefaultGuessA, types.DefaultGuessEa}
	if len(guess) >= 1 {
		p0[0] = guess[0]
	}
	if len(guess) >= 2 {
		p0[1] = guess[1]
	}

	resid := residualFunc(ds, m)
	x, rss, err := solve(resid, p0, n)
	if err != nil {
		return nil, err
	}
	// 非负约束：越界的收敛点以绝对值重新定中心再拟合一次
	if x[0] < 0 || x[1] < 0 {
		x, rss, err = solve(resid, []float64{math.Abs(x[0]), math.Abs(x[1])}, n)
		if err != nil {
			return nil, err
		}
		if x[0] < 0 || x[1] < 0 {
			return nil, &types.ConvergenceError{
				Iterations: types.MaxIterations,
				RSS:        rss,
				Reason:     "参数越过非负约束",
			}
		}
	}

	res := &types.FitResult{
		ModelID:   m.ID,
		ModelName: m.Name,
		A:         x[0],
		Ea:        x[1],
		RSS:       rss,
	}
	evaluate(res, ds, m)

	// 解处的协方差估计 cov = (JᵀJ)⁻¹·s²
	jac := maths.Jacobian(resid, x, n)
	cov, err := maths.Covariance(jac, rss, n, 2)
	if err != nil {
		// 部分可恢复：残差已收敛时点估计仍有参考价值
		res.VarA, res.VarEa, res.CovAEa = math.NaN(), math.NaN(), math.NaN()
		return res, err
	}
	res.Covariance = cov
	res.VarA = cov.At(0, 0)
	res.VarEa = cov.At(1, 1)
	res.CovAEa = cov.At(0, 1)
	return res, nil
}

// residualFunc 构造残差函数 r_j = alpha_obs_j − f(t_j, T_j, A, Ea)
func residualFunc(ds *types.Dataset, m *model.Model) maths.ResidualFunc {
	return func(dst, x []float64) {
		for j := range ds.Rows {
			dst[j] = ds.Alpha[j] - m.Alpha(ds.Rows[j].Time, ds.Rows[j].Temp, x[0], x[1])
		}
	}
}

// solve 执行一次Levenberg-Marquardt最小化，返回参数与残差平方和
func solve(resid maths.ResidualFunc, p0 []float64, n int) ([]float64, float64, error) {
	f := func(dst, x []float64) { resid(dst, x) }
	numJac := lm.NumJac{Func: f}
	prob := lm.LMProblem{
		Dim:        2,
		Size:       n,
		Func:       f,
		Jac:        numJac.Jac,
		InitParams: p0,
		Tau:        1e-6,
		Eps1:       types.GradTolerance,
		Eps2:       types.GradTolerance,
	}
	results, err := lm.LM(prob, &lm.Settings{
		Iterations:   types.MaxIterations,
		ObjectiveTol: types.Tolerance,
	})
	if err != nil {
		return nil, 0, &types.ConvergenceError{
			Iterations: types.MaxIterations,
			RSS:        math.NaN(),
			Reason:     err.Error(),
		}
	}
	x := results.X
	r := make([]float64, n)
	resid(r, x)
	rss := 0.0
	for _, v := range r {
		rss += v * v
	}
	if !finite(x[0]) || !finite(x[1]) || !finite(rss) {
		return nil, 0, &types.ConvergenceError{
			Iterations: types.MaxIterations,
			RSS:        rss,
			Reason:     "求解结果包含非有限数值",
		}
	}
	return x, rss, nil
}

// evaluate 拟合评估器：生成平均温度下的拟合曲线与温度归一化观测点
// 曲线在平均温度（而非逐行温度）下求值，使多温度数据可与单条曲线比较；
// 方差与协方差始终对应原始多温度拟合，归一化仅是展示用产物
func evaluate(res *types.FitResult, ds *types.Dataset, m *model.Model) {
	meanTemp := ds.MeanTemp()
	maxTime := ds.MaxTime()

	res.Curve = make([]types.CurvePoint, types.CurvePoints)
	for i := range res.Curve {
		t := maxTime * float64(i) / float64(types.CurvePoints-1)
		res.Curve[i] = types.CurvePoint{Time: t, Alpha: m.Alpha(t, meanTemp, res.A, res.Ea)}
	}

	// 观测点归一化到平均温度: alpha_j·exp((Ea/R)(1/T_j − 1/T̄))
	res.Normalized = make([]types.CurvePoint, ds.Len())
	for j := range ds.Rows {
		scale := math.Exp((res.Ea / types.GasConstant) * (1/ds.Rows[j].Temp - 1/meanTemp))
		res.Normalized[j] = types.CurvePoint{
			Time:  ds.Rows[j].Time,
			Alpha: ds.Alpha[j] * scale,
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
