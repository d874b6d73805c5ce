// Package plotfit 绘制拟合质量图：温度归一化后的观测散点与拟合曲线
package plotfit

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"kinetics/types"
)

// Save 绘制拟合结果并保存为PNG
// 散点为归一化观测值，实线为平均温度下的拟合曲线，
// 坐标范围与标签沿用原始报告格式
func Save(res *types.FitResult, path string) error {
	p := plot.New()
	p.Title.Text = res.ModelName + " Curve Fit"
	p.X.Label.Text = "t (seconds)"
	p.Y.Label.Text = "Reaction progress fraction"
	p.Add(plotter.NewGrid())

	obs := make(plotter.XYs, len(res.Normalized))
	for i, pt := range res.Normalized {
		obs[i].X = pt.Time
		obs[i].Y = pt.Alpha
	}
	scatter, err := plotter.NewScatter(obs)
	if err != nil {
		return err
	}

	curve := make(plotter.XYs, len(res.Curve))
	maxAlpha := 0.0
	maxTime := 0.0
	for i, pt := range res.Curve {
		curve[i].X = pt.Time
		curve[i].Y = pt.Alpha
		if pt.Alpha > maxAlpha {
			maxAlpha = pt.Alpha
		}
		if pt.Time > maxTime {
			maxTime = pt.Time
		}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.X.Min, p.X.Max = 0, maxTime*1.1
	p.Y.Min, p.Y.Max = 0, maxAlpha+0.025

	return p.Save(12*vg.Inch, 9*vg.Inch, path)
}
