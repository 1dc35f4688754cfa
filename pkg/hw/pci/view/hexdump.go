package view

import (
	"fmt"
	"strings"

	"golspci/pkg/hw/pci"
)

const bytesPerLine = 16

// HexDump 和 lspci -x 一样，每行 16 字节，行首是偏移
//
//	00: 86 80 22 29 07 04 10 00 02 01 06 01 00 00 80 00
//
// n 超过配置空间长度时按实际长度输出
func HexDump(cs *pci.ConfigSpace, n int) string {
	if n > cs.Len() || n <= 0 {
		n = cs.Len()
	}

	var b strings.Builder
	data := cs.Slice(0, n)
	for off := 0; off < n; off += bytesPerLine {
		end := min(off+bytesPerLine, n)
		fmt.Fprintf(&b, "%02x:", off)
		for _, c := range data[off:end] {
			fmt.Fprintf(&b, " %02x", c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
