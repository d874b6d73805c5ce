package types

import (
	"gonum.org/v1/gonum/mat"
)

// Row 单次实验测量行
// 字段与数据文件的四列一一对应，读入后不再修改
type Row struct {
	Time       float64 // 反应时间，单位秒
	InitMoles  float64 // 初始盐的摩尔量
	Temp       float64 // 温度，单位开尔文
	FinalMoles float64 // 逸出HF的摩尔量
}

// Dataset 实验数据集：有序数据行及每行导出的转化率
type Dataset struct {
	Rows  []Row     // 原始数据行
	Alpha []float64 // 每行的转化率，范围[0,1]
}

// Len 返回数据行数
func (ds *Dataset) Len() int { return len(ds.Rows) }

// MeanTemp 返回数据集的平均温度（K），用于归一化拟合曲线
func (ds *Dataset) MeanTemp() float64 {
	if len(ds.Rows) == 0 {
		return 0
	}
	sum := 0.0
	for i := range ds.Rows {
		sum += ds.Rows[i].Temp
	}
	return sum / float64(len(ds.Rows))
}

// MaxTime 返回数据集中最大的反应时间（s）
func (ds *Dataset) MaxTime() float64 {
	max := 0.0
	for i := range ds.Rows {
		if ds.Rows[i].Time > max {
			max = ds.Rows[i].Time
		}
	}
	return max
}

// CurvePoint 曲线采样点 (时间, 转化率)
type CurvePoint struct {
	Time  float64 // 时间，单位秒
	Alpha float64 // 转化率
}

// FitResult 拟合结果
// 由回归引擎与拟合评估器创建一次，返回后不再修改
type FitResult struct {
	ModelID   int     // 所用模型编号
	ModelName string  // 所用模型名称
	A         float64 // 指前因子
	Ea        float64 // 活化能，单位 kcal/mol
	VarA      float64 // A的方差（雅可比奇异时为NaN）
	VarEa     float64 // Ea的方差（雅可比奇异时为NaN）
	CovAEa    float64 // A与Ea的协方差（雅可比奇异时为NaN）
	RSS       float64 // 残差平方和

	Covariance *mat.SymDense // 完整参数协方差矩阵（雅可比奇异时为nil）

	// Curve 在平均温度下求值的拟合曲线，时间范围[0, 最大实验时间]
	Curve []CurvePoint
	// Normalized 温度归一化后的观测点：alpha_j·exp((Ea/R)(1/T_j − 1/T̄))
	// 仅用于展示，使不同温度下的观测值可与单条拟合曲线比较
	Normalized []CurvePoint
}
