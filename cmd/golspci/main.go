package main

import (
	"fmt"
	"os"

	"golspci/pkg/errorutil"
	"golspci/pkg/hw/lspci"
	"golspci/pkg/logutil"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "0.1.0+20261018"

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "golspci",
		Short:   fmt.Sprintf("golspci v%s 读取并解码 PCI 设备配置空间", TOOL_VERSION),
		Version: TOOL_VERSION,
	}

	rootCmd.AddCommand(lspci.LsCmd(), lspci.TreeCmd(), lspci.DotCmd(), lspci.DiffCmd())

	var logFile string
	logLevel := logutil.Level(logutil.WARN)

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "stderr", "日志文件名(默认 stderr，stdout 会和命令输出混在一起)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// PersistentPreRunE 在 flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := logutil.InitLogger(logFile, int(logLevel)); err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "日志初始化失败", err)
		}
		return nil
	}

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		msg, code := errorutil.FormatErrorAndCode(err)
		logutil.Error("命令执行失败: %v", err)
		fmt.Fprintln(os.Stderr, msg)
		logutil.CloseLogger()
		os.Exit(code)
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(errorutil.CodeSuccess)
}
