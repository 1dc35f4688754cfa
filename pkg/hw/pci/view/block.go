// Package view 把解码结果渲染成终端上看的文本: 设备块、十六进制转储、
// 总线树、DOT 图和两个设备之间的对比
package view

import (
	"fmt"
	"io"
	"strings"

	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
)

// 设备块里每行的缩进
const Indent = "  "

// WriteDeviceBlock 先输出 "bb:dd.f " 一行，再把 report 每一行缩进两格输出
// report 以换行结尾时最后会多出一行只有缩进的空行，用作设备之间的分隔
func WriteDeviceBlock(w io.Writer, addr pci.Address, report string) error {
	if _, err := fmt.Fprintf(w, "%s \n", addr); err != nil {
		return err
	}
	for _, line := range strings.Split(report, "\n") {
		if _, err := fmt.Fprintf(w, "%s%s\n", Indent, line); err != nil {
			return err
		}
	}
	return nil
}

// Options 文本输出的选项
type Options struct {
	Verbose bool // 解码完整的 64 字节类型 0 头部
	HexDump bool // 追加 -x 十六进制转储
	Trim    bool // 标志行去掉多余空格
}

// Printer 按选项构造解码器
func (o Options) Printer() *pci.PrettyPrinter {
	p := pci.NewPrettyPrinter()
	if o.Verbose {
		p = pci.NewPrettyPrinterWithLayout(pci.HeaderType00Extended())
	}
	p.TrimFlags = o.Trim
	return p
}

// Render 逐个设备输出；读取失败的设备只输出错误信息
func Render(w io.Writer, devices []scan.Device, opts Options) error {
	p := opts.Printer()
	for _, d := range devices {
		report := ""
		switch {
		case d.Err != nil:
			report = fmt.Sprintf("error: %v\n", d.Err)
		default:
			report = p.Print(d.Config)
			if opts.HexDump {
				report += HexDump(d.Config, pci.MinConfigSpaceSize)
			}
		}
		if err := WriteDeviceBlock(w, d.Address, report); err != nil {
			return err
		}
	}
	return nil
}

// Report 单个设备的文本报告，diff 用
func Report(cs *pci.ConfigSpace, opts Options) string {
	return opts.Printer().Print(cs)
}
