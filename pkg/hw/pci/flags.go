package pci

import (
	"fmt"
	"strings"
)

// Flags 寄存器解码结果，Set 带 "+" 前缀，Cleared 带 "-" 前缀，保持声明顺序
type Flags struct {
	Set     []string
	Cleared []string
}

func (f *Flags) add(name string, on bool) {
	if on {
		f.Set = append(f.Set, fmt.Sprintf("+%s", name))
		return
	}
	f.Cleared = append(f.Cleared, fmt.Sprintf("-%s", name))
}

func (f Flags) String() string {
	return FormatFlagsLine(f.Set, f.Cleared)
}

// FormatFlagsLine 把置位和清零两组标志拼成一行
//   - 置位多于 1 个且没有清零的：只输出置位组
//   - 没有置位且清零多于 1 个的：只输出清零组
//   - 其它情况两组用空格拼起来，某一组为空时会留下首尾空格
//
// 例如 ([+A], []) 得到 "+A "，([], []) 得到 " "，不在这里做 trim
func FormatFlagsLine(set, cleared []string) string {
	if len(set) > 1 && len(cleared) == 0 {
		return strings.Join(set, " ")
	} else if len(set) == 0 && len(cleared) > 1 {
		return strings.Join(cleared, " ")
	}
	return fmt.Sprintf("%s %s", strings.Join(set, " "), strings.Join(cleared, " "))
}

// TrimFlagsLine 展示层可选的 trim
func TrimFlagsLine(line string) string {
	return strings.TrimSpace(line)
}
