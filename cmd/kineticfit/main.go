// kineticfit 氟氢化盐热分解动力学曲线拟合工具
// 读取CSV实验数据，按选定模型拟合阿伦尼乌斯参数并输出拟合质量图
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kinetics/dataset"
	"kinetics/fit"
	"kinetics/model"
	"kinetics/plotfit"
	"kinetics/types"
)

var (
	filePath string // 数据文件路径，为空时交互输入
	modelID  int    // 模型编号，0表示进入交互选择
	outDir   string // 图片输出目录
	guessA   float64
	guessEa  float64
)

var rootCmd = &cobra.Command{
	Use:   "kineticfit",
	Short: "固态反应动力学曲线拟合",
	Long: "对热分解实验数据（时间、初始/最终摩尔量、温度）拟合15种固态反应动力学模型之一，\n" +
		"恢复阿伦尼乌斯活化能Ea与指前因子A，并报告参数方差与协方差。",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "实验数据CSV文件路径")
	rootCmd.Flags().IntVarP(&modelID, "model", "m", 0, "模型编号（1~15），0进入交互选择")
	rootCmd.Flags().StringVarP(&outDir, "out", "o", ".", "拟合图输出目录")
	rootCmd.Flags().Float64Var(&guessA, "guess-a", types.DefaultGuessA, "A的初始猜测")
	rootCmd.Flags().Float64Var(&guessEa, "guess-ea", types.DefaultGuessEa, "Ea的初始猜测 (kcal/mol)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(os.Stdin)

	path := filePath
	if path == "" {
		path = prompt(in, "请输入实验数据CSV文件的完整路径: ")
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}

	// 非交互模式：拟合一次后退出
	if modelID != 0 {
		return fitOnce(ds, modelID)
	}

	// 交互循环：选模型 → 拟合 → 继续/换文件/退出
	for {
		printMenu()
		id, err := strconv.Atoi(prompt(in, "请输入要使用的模型编号: "))
		if err != nil {
			fmt.Println("\n无效输入。")
		} else if err := fitOnce(ds, id); err != nil {
			report(err)
		}

		switch strings.ToUpper(prompt(in, "\n输入Y用同一数据继续，N退出，C更换数据文件: ")) {
		case "Y":
			fmt.Println()
		case "N":
			return nil
		case "C":
			path = prompt(in, "请输入实验数据CSV文件的完整路径: ")
			next, err := dataset.Load(path)
			if err != nil {
				report(err)
				continue
			}
			ds = next
		default:
			fmt.Println("无效输入，返回模型选择。")
		}
	}
}

// fitOnce 执行一次拟合：输出参数、不确定度并保存拟合图
func fitOnce(ds *types.Dataset, id int) error {
	res, err := fit.Fit(ds, id, guessA, guessEa)
	if res == nil {
		return err
	}
	// 雅可比奇异时点估计仍然输出，方差为NaN
	var singular *types.SingularJacobianError
	if err != nil && !errors.As(err, &singular) {
		return err
	}

	fmt.Printf("A = %v\nEa = %v kcal/mol\n", res.A, res.Ea)
	fmt.Printf("Var(A) = %v\nVar(Ea) = %v\nCov(A, Ea) = Cov(Ea, A) = %v\n",
		res.VarA, res.VarEa, res.CovAEa)
	if err != nil {
		fmt.Println("警告:", err)
	}

	name := strings.ReplaceAll(res.ModelName, " ", "_") + "_CurveFit.png"
	out := filepath.Join(outDir, name)
	if err := plotfit.Save(res, out); err != nil {
		return fmt.Errorf("保存拟合图失败: %w", err)
	}
	fmt.Println("拟合图已保存:", out)
	return nil
}

// printMenu 打印15种模型的选择菜单
func printMenu() {
	fmt.Println("可用模型:")
	for _, id := range model.IDs() {
		m, _ := model.Get(id)
		fmt.Printf("  %2d  %s\n", m.ID, m.Name)
	}
}

// report 将错误按类别输出为可读信息
func report(err error) {
	var (
		dataErr  *types.DataError
		modelErr *types.InvalidModelError
		sizeErr  *types.InsufficientDataError
		convErr  *types.ConvergenceError
	)
	switch {
	case errors.As(err, &dataErr), errors.As(err, &sizeErr):
		fmt.Println("数据错误:", err)
	case errors.As(err, &modelErr):
		fmt.Println("模型选择错误:", err)
	case errors.As(err, &convErr):
		fmt.Println("拟合未收敛（可尝试调整初始猜测）:", err)
	default:
		fmt.Println("错误:", err)
	}
}

func prompt(in *bufio.Reader, msg string) string {
	fmt.Print(msg)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
