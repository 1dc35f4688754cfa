// Package lspci 命令行子命令: ls/tree/dot/diff
package lspci

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"golspci/pkg/errorutil"
	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
	"golspci/pkg/logutil"
)

// sourceOptions 所有子命令共用的设备来源参数
type sourceOptions struct {
	source   string
	procRoot string
	sysRoot  string
	jobs     int
	selector string
}

func (o *sourceOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.source, "source", scan.SourceProc, "设备来源(proc/sys)")
	f.StringVar(&o.procRoot, "proc-root", scan.DefaultProcRoot, "proc 来源的根目录")
	f.StringVar(&o.sysRoot, "sys-root", scan.DefaultSysfsRoot, "sysfs 挂载点")
	f.IntVarP(&o.jobs, "jobs", "j", 0, "并发读取的设备数(0 表示 CPU 个数)")
	f.StringVarP(&o.selector, "select", "s", "", "只显示地址以此开头的设备，例如 00:1f 或 00:1f.2")
}

// validSelector 只允许十六进制数字和 : .
func validSelector(s string) bool {
	return strings.Trim(s, "0123456789abcdefABCDEF:.") == ""
}

// load 扫描并读取设备，再按 -s 过滤
func (o *sourceOptions) load(cmd *cobra.Command) ([]scan.Device, error) {
	if !validSelector(o.selector) {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("选择器格式错误: %q", o.selector), pci.ErrInvalidAddress)
	}

	s, err := scan.New(logutil.Logr().WithName("scan"), scan.Options{
		Source:    o.source,
		ProcRoot:  o.procRoot,
		SysfsRoot: o.sysRoot,
	})
	if err != nil {
		if errors.Is(err, scan.ErrUnknownSource) {
			return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "设备来源错误", err)
		}
		return nil, exitError("打开设备来源失败", err)
	}

	devices, err := scan.ScanAll(cmd.Context(), s, o.jobs)
	if err != nil {
		return nil, exitError("扫描设备失败", err)
	}
	logutil.Debug("扫描到 %d 个设备", len(devices))

	devices = scan.Select(devices, o.selector)
	if o.selector != "" && len(devices) == 0 {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("没有匹配 %q 的设备", o.selector), nil)
	}

	for _, d := range devices {
		if d.Err != nil {
			logutil.Warn("设备 %s 读取失败: %v", d.Address, d.Err)
		}
	}
	return devices, nil
}

// exitError 按错误原因选择退出码
func exitError(msg string, err error) error {
	code := errorutil.CodeIOError
	switch {
	case errors.Is(err, pci.ErrConfigSpaceTooShort):
		code = errorutil.CodeInvalidData
	case errors.Is(err, fs.ErrPermission):
		code = errorutil.CodePermission
	}
	return errorutil.NewExitErrorWithMessage(code, msg, err)
}

// allFailed 所有设备都读取失败时返回第一个错误
func allFailed(devices []scan.Device) error {
	if len(devices) == 0 {
		return nil
	}
	for _, d := range devices {
		if d.Err == nil {
			return nil
		}
	}
	return exitError("所有设备都读取失败", devices[0].Err)
}
