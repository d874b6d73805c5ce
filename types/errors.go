package types

import "fmt"

// DataError 数据错误：输入行不合法或超出物理有效范围
type DataError struct {
	Row    int    // 出错的数据行（从0开始，-1表示与具体行无关）
	Reason string // 错误原因
}

func (e *DataError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("数据错误: %s", e.Reason)
	}
	return fmt.Sprintf("数据错误（第%d行）: %s", e.Row, e.Reason)
}

// InvalidModelError 模型选择错误：模型编号不在1~15范围内
type InvalidModelError struct {
	ID int // 非法的模型编号
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("无效的模型编号 %d（有效范围为1~15）", e.ID)
}

// InsufficientDataError 数据量不足：行数少于可辨识拟合所需的最少行数
type InsufficientDataError struct {
	Rows int // 实际行数
	Min  int // 所需最少行数
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("数据量不足: 共%d行，至少需要%d行才能拟合2个参数", e.Rows, e.Min)
}

// ConvergenceError 收敛错误：求解器在迭代预算内未将残差降至容差以下
type ConvergenceError struct {
	Iterations int     // 已执行的迭代次数
	RSS        float64 // 终止时的残差平方和
	Reason     string  // 补充说明
}

func (e *ConvergenceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("拟合未收敛（迭代%d次，残差平方和%.6e）: %s", e.Iterations, e.RSS, e.Reason)
	}
	return fmt.Sprintf("拟合未收敛（迭代%d次，残差平方和%.6e）", e.Iterations, e.RSS)
}

// SingularJacobianError 奇异雅可比错误：JᵀJ不可逆，协方差无定义
// 点估计仍然有效，方差与协方差以NaN标记
type SingularJacobianError struct{}

func (e *SingularJacobianError) Error() string {
	return "雅可比矩阵奇异: JᵀJ不可逆，参数协方差无定义"
}
