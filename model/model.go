// Package model 实现15种固态反应动力学模型库
// 每个模型由其积分速率方程 g(alpha) = k·t 定义，并给出闭式正向解
// alpha = f(k·t)，供回归引擎直接求预测值
package model

import (
	"math"
	"sort"

	"kinetics/types"
)

// Model 动力学模型定义
// 模型身份不可变，按整数编号选取，注册后不再修改
type Model struct {
	ID   int    // 模型编号（1~15）
	Name string // 模型名称，绘图与报告中使用的标识符

	// Forward 积分速率方程的正向解 alpha = f(kt)，输入kt ≥ 0
	// 未做范围约束，约束由Conv统一处理
	Forward func(kt float64) float64
	// Integrated 积分速率方程 g(alpha) = kt，定义域 alpha ∈ [0,1)
	Integrated func(alpha float64) float64
}

// models 模型注册表，编号到模型的映射
var models = map[int]*Model{}

// AddModel 注册模型（编号重复时panic，注册在包初始化阶段完成）
func AddModel(id int, name string, forward, integrated func(float64) float64) *Model {
	if _, ok := models[id]; ok {
		panic("model: duplicate model id")
	}
	m := &Model{ID: id, Name: name, Forward: forward, Integrated: integrated}
	models[id] = m
	return m
}

// Get 按编号取模型，编号不在注册表中时返回InvalidModelError
func Get(id int) (*Model, error) {
	m, ok := models[id]
	if !ok {
		return nil, &types.InvalidModelError{ID: id}
	}
	return m, nil
}

// IDs 返回所有已注册模型编号（升序），用于菜单显示
func IDs() []int {
	ids := make([]int, 0, len(models))
	for id := range models {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RateConst 阿伦尼乌斯速率常数 k(T) = A·exp(−Ea/(R·T))
func RateConst(temp, a, ea float64) float64 {
	return a * math.Exp(-ea/(types.GasConstant*temp))
}

// Conv 求kt处的转化率，约束到[0,1]
// 优化过程中病态的参数猜测可能产生负kt或越界的正向解，
// 约束保证目标函数对任意参数都有限且确定
func (m *Model) Conv(kt float64) float64 {
	if kt < 0 {
		kt = 0
	}
	v := m.Forward(kt)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Alpha 求预测转化率 alpha = f(k(T)·t)
func (m *Model) Alpha(t, temp, a, ea float64) float64 {
	return m.Conv(RateConst(temp, a, ea) * t)
}
