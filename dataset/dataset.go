// Package dataset 实现实验数据集的构建：由初始/最终摩尔量导出转化率，
// 并对每行数据做物理有效性校验
package dataset

import (
	"math"

	"kinetics/types"
)

// Conversion 由单行数据计算转化率 alpha = 逸出HF摩尔量 / 初始盐摩尔量
// 标准反应中1摩尔氟氢化盐分解产生1摩尔HF，故化学计量上限即初始摩尔量
// 参数:
//
//	i - 数据行号（用于错误报告，从0开始）
//	row - 实验数据行
//
// 返回:
//
//	alpha ∈ [0,1]，越界超过AlphaTolerance时返回DataError
func Conversion(i int, row types.Row) (float64, error) {
	if !finite(row.Time) || !finite(row.InitMoles) || !finite(row.Temp) || !finite(row.FinalMoles) {
		return 0, &types.DataError{Row: i, Reason: "存在非有限数值字段"}
	}
	if row.Time <= 0 {
		return 0, &types.DataError{Row: i, Reason: "反应时间必须为正"}
	}
	if row.Temp <= 0 {
		return 0, &types.DataError{Row: i, Reason: "温度必须为正（开尔文）"}
	}
	if row.InitMoles <= 0 {
		return 0, &types.DataError{Row: i, Reason: "初始摩尔量必须为正"}
	}
	alpha := row.FinalMoles / row.InitMoles
	// 容差内的越界视为舍入噪声并截断，超出容差按数据录入错误处理
	switch {
	case alpha < -types.AlphaTolerance || alpha > 1+types.AlphaTolerance:
		return 0, &types.DataError{Row: i, Reason: "转化率超出[0,1]范围"}
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return alpha, nil
}

// New 由数据行构建数据集，校验每行并导出转化率
func New(rows []types.Row) (*types.Dataset, error) {
	ds := &types.Dataset{
		Rows:  make([]types.Row, len(rows)),
		Alpha: make([]float64, len(rows)),
	}
	copy(ds.Rows, rows)
	for i := range rows {
		alpha, err := Conversion(i, rows[i])
		if err != nil {
			return nil, err
		}
		ds.Alpha[i] = alpha
	}
	return ds, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
