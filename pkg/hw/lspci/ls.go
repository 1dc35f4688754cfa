package lspci

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"golspci/pkg/errorutil"
	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
	"golspci/pkg/hw/pci/view"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type lsOptions struct {
	sourceOptions
	view   view.Options
	format string
	query  string
}

// LsCmd 列出设备并解码配置空间头部
func LsCmd() *cobra.Command {
	opts := &lsOptions{}

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "列出 PCI 设备并解码配置空间头部",
		Long: `列出 PCI 设备并解码配置空间头部
Examples:

1. 列出所有设备
golspci ls

2. 只看 00:1f 下的设备，附带十六进制转储
golspci ls -s 00:1f -x

3. 从 sysfs 读取，输出完整的 64 字节头部
golspci ls --source sys -v

4. JSON 输出并只取命令寄存器里打开的标志
golspci ls --format json --query '0.fields.command.enabled'
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(cmd, opts)
		},
	}

	opts.addFlags(cmd)
	f := cmd.Flags()
	f.BoolVarP(&opts.view.Verbose, "verbose", "v", false, "解码完整的 64 字节类型 0 头部")
	f.BoolVarP(&opts.view.HexDump, "hex", "x", false, "追加前 64 字节的十六进制转储")
	f.BoolVar(&opts.view.Trim, "trim", false, "标志行去掉首尾多余的空格")
	f.StringVar(&opts.format, "format", FormatText, "输出格式(text/json)")
	f.StringVar(&opts.query, "query", "", "JSON 输出时用 gjson 路径取值")
	return cmd
}

func runLs(cmd *cobra.Command, opts *lsOptions) error {
	switch opts.format {
	case FormatText:
		if opts.query != "" {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "--query 只能和 --format json 一起使用", nil)
		}
	case FormatJSON:
	default:
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage,
			fmt.Sprintf("不支持的输出格式: %s", opts.format), nil)
	}

	devices, err := opts.load(cmd)
	if err != nil {
		return err
	}

	if opts.format == FormatJSON {
		out, err := jsonDevices(opts.view.Printer(), devices)
		if err != nil {
			return errorutil.NewExitErrorWithMessage(errorutil.CodeInternalErr, "生成 JSON 失败", err)
		}
		if opts.query != "" {
			if out, err = query(out, opts.query); err != nil {
				return err
			}
		}
		if _, err := cmd.OutOrStdout().Write(out); err != nil {
			return exitError("输出失败", err)
		}
	} else if err := view.Render(cmd.OutOrStdout(), devices, opts.view); err != nil {
		return exitError("输出失败", err)
	}

	return allFailed(devices)
}

// jsonDevices 每个设备一个对象，读取失败的设备只有 address 和 error
func jsonDevices(p *pci.PrettyPrinter, devices []scan.Device) ([]byte, error) {
	out := []byte(`[]`)
	for _, d := range devices {
		var (
			obj []byte
			err error
		)
		if d.Err != nil {
			obj, err = sjson.SetBytes([]byte(`{}`), "address", d.Address.String())
			if err == nil {
				obj, err = sjson.SetBytes(obj, "error", d.Err.Error())
			}
		} else {
			obj, err = p.JSONReport(d.Address, d.Config)
		}
		if err != nil {
			return nil, err
		}
		if out, err = sjson.SetRawBytes(out, "-1", obj); err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(out), nil
}

// query 字符串结果直接输出原文，其它类型输出格式化后的 JSON
func query(doc []byte, path string) ([]byte, error) {
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return nil, errorutil.NewExitErrorWithMessage(errorutil.CodeMissingInput,
			fmt.Sprintf("路径 %q 没有匹配的值", path), nil)
	}
	if res.Type == gjson.String {
		return []byte(res.Str + "\n"), nil
	}
	return pretty.Pretty([]byte(res.Raw)), nil
}
