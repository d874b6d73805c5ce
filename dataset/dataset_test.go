package dataset

import (
	"errors"
	"math"
	"testing"

	"kinetics/types"
)

func TestConversion(t *testing.T) {
	row := types.Row{Time: 100, InitMoles: 2, Temp: 350, FinalMoles: 1}
	alpha, err := Conversion(0, row)
	if err != nil {
		t.Fatalf("转化率计算失败: %s", err)
	}
	if math.Abs(alpha-0.5) > 1e-15 {
		t.Errorf("转化率不正确: 期望 0.5, 实际 %v", alpha)
	}
}

func TestConversionClampsRoundoff(t *testing.T) {
	// 容差内的越界按舍入噪声截断
	row := types.Row{Time: 10, InitMoles: 1, Temp: 350, FinalMoles: 1 + 1e-9}
	alpha, err := Conversion(0, row)
	if err != nil {
		t.Fatalf("容差内的越界不应报错: %s", err)
	}
	if alpha != 1 {
		t.Errorf("期望截断到1, 得到 %v", alpha)
	}

	row.FinalMoles = -1e-9
	alpha, err = Conversion(0, row)
	if err != nil {
		t.Fatalf("容差内的负值不应报错: %s", err)
	}
	if alpha != 0 {
		t.Errorf("期望截断到0, 得到 %v", alpha)
	}
}

func TestConversionDataError(t *testing.T) {
	cases := []struct {
		name string
		row  types.Row
	}{
		{"初始摩尔量为零", types.Row{Time: 10, InitMoles: 0, Temp: 350, FinalMoles: 0}},
		{"初始摩尔量为负", types.Row{Time: 10, InitMoles: -1, Temp: 350, FinalMoles: 0}},
		{"转化率超过1", types.Row{Time: 10, InitMoles: 1, Temp: 350, FinalMoles: 1.1}},
		{"最终摩尔量为负", types.Row{Time: 10, InitMoles: 1, Temp: 350, FinalMoles: -0.1}},
		{"时间非正", types.Row{Time: 0, InitMoles: 1, Temp: 350, FinalMoles: 0.5}},
		{"温度非正", types.Row{Time: 10, InitMoles: 1, Temp: -300, FinalMoles: 0.5}},
		{"非有限字段", types.Row{Time: 10, InitMoles: math.NaN(), Temp: 350, FinalMoles: 0.5}},
	}
	for _, c := range cases {
		_, err := Conversion(0, c.row)
		var dataErr *types.DataError
		if !errors.As(err, &dataErr) {
			t.Errorf("%s: 期望DataError, 得到 %v", c.name, err)
		}
	}
}

func TestNew(t *testing.T) {
	rows := []types.Row{
		{Time: 10, InitMoles: 1, Temp: 350, FinalMoles: 0.2},
		{Time: 20, InitMoles: 2, Temp: 375, FinalMoles: 1.0},
		{Time: 30, InitMoles: 1, Temp: 400, FinalMoles: 0.9},
	}
	ds, err := New(rows)
	if err != nil {
		t.Fatalf("构建数据集失败: %s", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("期望3行, 得到 %d", ds.Len())
	}
	want := []float64{0.2, 0.5, 0.9}
	for i, w := range want {
		if math.Abs(ds.Alpha[i]-w) > 1e-15 {
			t.Errorf("第%d行转化率不正确: 期望 %v, 实际 %v", i, w, ds.Alpha[i])
		}
	}
	if math.Abs(ds.MeanTemp()-375) > 1e-12 {
		t.Errorf("平均温度不正确: 期望 375, 实际 %v", ds.MeanTemp())
	}
	if ds.MaxTime() != 30 {
		t.Errorf("最大时间不正确: 期望 30, 实际 %v", ds.MaxTime())
	}
}

func TestNewRejectsBadRow(t *testing.T) {
	rows := []types.Row{
		{Time: 10, InitMoles: 1, Temp: 350, FinalMoles: 0.2},
		{Time: 20, InitMoles: 1, Temp: 375, FinalMoles: 1.5}, // 转化率越界
	}
	_, err := New(rows)
	var dataErr *types.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("期望DataError, 得到 %v", err)
	}
	if dataErr.Row != 1 {
		t.Errorf("错误行号不正确: 期望 1, 实际 %d", dataErr.Row)
	}
}
