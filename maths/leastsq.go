// Package maths 提供最小二乘拟合的数值工具：
// 数值雅可比与参数协方差估计
package maths

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"kinetics/types"
)

// JacobianStep 数值雅可比的相对差分步长
const JacobianStep = 1e-6

// ResidualFunc 残差函数：将参数x处的n个残差写入dst
type ResidualFunc func(dst, x []float64)

// Jacobian 在参数点x处对残差函数做前向差分，返回n×p雅可比矩阵
// 参数:
//
//	f - 残差函数
//	x - 参数点
//	n - 残差个数
func Jacobian(f ResidualFunc, x []float64, n int) *mat.Dense {
	p := len(x)
	jac := mat.NewDense(n, p, nil)
	r0 := make([]float64, n)
	r1 := make([]float64, n)
	xh := make([]float64, p)
	f(r0, x)
	for j := 0; j < p; j++ {
		h := JacobianStep * math.Abs(x[j])
		if h == 0 {
			h = JacobianStep
		}
		copy(xh, x)
		xh[j] += h
		f(r1, xh)
		for i := 0; i < n; i++ {
			jac.Set(i, j, (r1[i]-r0[i])/h)
		}
	}
	return jac
}

// Covariance 最小二乘参数协方差估计 cov = (JᵀJ)⁻¹·s²
// 其中 s² = rss/(n−p) 为约化残差方差
// JᵀJ不可逆时返回SingularJacobianError
// 参数:
//
//	jac - 解处的n×p雅可比矩阵
//	rss - 解处的残差平方和
//	n - 残差个数
//	p - 参数个数（必须满足 n > p）
func Covariance(jac *mat.Dense, rss float64, n, p int) (*mat.SymDense, error) {
	// JᵀJ（对称正半定）
	jtj := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += jac.At(k, i) * jac.At(k, j)
			}
			jtj.SetSym(i, j, sum)
		}
	}
	// Cholesky分解失败即JᵀJ非正定（奇异），协方差无定义
	var chol mat.Cholesky
	if ok := chol.Factorize(jtj); !ok {
		return nil, &types.SingularJacobianError{}
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil, &types.SingularJacobianError{}
	}
	s2 := rss / float64(n-p)
	cov := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			cov.SetSym(i, j, inv.At(i, j)*s2)
		}
	}
	return cov, nil
}
