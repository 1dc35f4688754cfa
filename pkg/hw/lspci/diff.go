package lspci

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"golspci/pkg/errorutil"
	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
	"golspci/pkg/hw/pci/view"
)

type diffOptions struct {
	sourceOptions
	view view.Options
}

// DiffCmd 并排比较两个设备的解码结果
func DiffCmd() *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <bb:dd.f> <bb:dd.f>",
		Short: "并排比较两个设备的配置空间头部",
		Long: `并排比较两个设备的配置空间头部
Examples:

golspci diff 00:1f.0 00:1f.2
golspci diff -v --source sys 17:00.0 97:00.0

| 相同  ~ 不同  - 只在左边  + 只在右边
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, opts, args)
		},
	}

	opts.addFlags(cmd)
	f := cmd.Flags()
	f.BoolVarP(&opts.view.Verbose, "verbose", "v", false, "比较完整的 64 字节类型 0 头部")
	f.BoolVar(&opts.view.Trim, "trim", false, "标志行去掉首尾多余的空格")
	return cmd
}

func runDiff(cmd *cobra.Command, opts *diffOptions, args []string) error {
	var addrs [2]pci.Address
	for i, arg := range args {
		a, err := pci.ParseAddress(arg)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "设备地址格式错误", err)
		}
		addrs[i] = a
	}

	devices, err := opts.load(cmd)
	if err != nil {
		return err
	}

	var reports [2]string
	for i, a := range addrs {
		d, err := find(devices, a)
		if err != nil {
			return err
		}
		reports[i] = view.Report(d.Config, opts.view)
	}

	diff := view.CompareReports(reports[0], reports[1])
	out := view.FormatSideBySide(addrs[0].String(), addrs[1].String(), diff)
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return exitError("输出失败", err)
	}
	return nil
}

func find(devices []scan.Device, addr pci.Address) (scan.Device, error) {
	for _, d := range devices {
		if d.Address != addr {
			continue
		}
		if d.Err != nil {
			return d, exitError(fmt.Sprintf("设备 %s 读取失败", addr), d.Err)
		}
		return d, nil
	}
	return scan.Device{}, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
		fmt.Sprintf("设备 %s 不存在", addr), nil)
}
