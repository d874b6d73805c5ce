package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"kinetics/types"
)

// 数据文件的必需列名（列顺序任意）
const (
	colTime  = "time_data"
	colInit  = "initmol_data"
	colTemp  = "temp_data"
	colFinal = "finalmol_data"
)

// Load 读取CSV数据文件并构建数据集
func Load(path string) (*types.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据文件失败: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read 从CSV流构建数据集
// 首行必须是表头，包含time_data、initmol_data、temp_data、finalmol_data四列
func Read(r io.Reader) (*types.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, &types.DataError{Row: -1, Reason: "读取表头失败: " + err.Error()}
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colTime, colInit, colTemp, colFinal} {
		if _, ok := idx[name]; !ok {
			return nil, &types.DataError{Row: -1, Reason: "缺少必需列 " + name}
		}
	}

	var rows []types.Row
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &types.DataError{Row: i, Reason: "读取数据行失败: " + err.Error()}
		}
		row := types.Row{}
		for _, f := range []struct {
			name string
			dst  *float64
		}{
			{colTime, &row.Time},
			{colInit, &row.InitMoles},
			{colTemp, &row.Temp},
			{colFinal, &row.FinalMoles},
		} {
			cell := strings.TrimSpace(record[idx[f.name]])
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &types.DataError{Row: i, Reason: "列 " + f.name + " 的值不是数字: " + cell}
			}
			*f.dst = v
		}
		rows = append(rows, row)
	}
	return New(rows)
}
