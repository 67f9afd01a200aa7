package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pump_base/internal/app"
	"pump_base/internal/common"
	"pump_base/internal/config"
	"pump_base/internal/generator"
	"pump_base/internal/ui"
)

var (
	cfgFile string
	v       = config.New()
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pumpbase",
	Short: "pump.base 公平发射代币列表",
	Long: `pump.base 终端版：浏览、搜索、排序代币并创建新代币。
所有数据在本地随机生成，不连接任何网络。`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "配置文件路径 (默认 ./pumpbase.yaml)")
	flags.String("chain", string(common.CHAIN_BASE), "地址风格: base 或 solana")
	flags.Int64("seed", 0, "随机种子，0 表示每次不同")
	flags.String("log-level", "info", "日志级别: debug, info, warn, error")

	// 命令行参数优先于环境变量和配置文件
	_ = v.BindPFlag("chain", flags.Lookup("chain"))
	_ = v.BindPFlag("seed", flags.Lookup("seed"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	rootCmd.AddCommand(listCmd, createCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	// 日志只写文件，避免打乱终端界面和 JSON 输出
	if err := common.InitLogger(common.LogOptions{
		Dir:   cfg.Log.Dir,
		Level: cfg.Log.Level,
	}); err != nil {
		return err
	}
	common.Log.WithField("chain", cfg.Chain).Debug("配置加载完成")
	return nil
}

// newController 按配置创建控制器
func newController() *app.Controller {
	var gen generator.Generator
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed, cfg.Chain)
	} else {
		gen = generator.NewRandom(cfg.Chain)
	}

	opts := app.DefaultOptions()
	opts.LoadDelay = cfg.LoadDelay
	opts.SubmitDelay = cfg.SubmitDelay
	return app.NewController(opts, gen)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctrl := newController()
	defer ctrl.Close()

	p := tea.NewProgram(ui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("终端界面异常退出: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
