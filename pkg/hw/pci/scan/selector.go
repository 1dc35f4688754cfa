package scan

import (
	"fmt"
	"strings"

	"github.com/armon/go-radix"

	"golspci/pkg/hw/pci"
	"golspci/pkg/toolutil/hex"
)

// Selector 按 "bb:dd.f" 前缀选设备，类似 lspci -s
// 地址字符串是定长补零的小写十六进制，字典序和数值序一致
type Selector struct {
	tree *radix.Tree
}

func NewSelector(addrs []pci.Address) *Selector {
	t := radix.New()
	for _, a := range addrs {
		t.Insert(a.String(), a)
	}
	return &Selector{tree: t}
}

// Match 支持两种写法:
//   - "bb[:dd[.f]]" 前缀，空前缀返回全部，"0000:" 域前缀会被去掉
//   - "dd.[f]" 不带总线，匹配所有总线上的这个槽位
func (s *Selector) Match(prefix string) []pci.Address {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	prefix = strings.TrimPrefix(prefix, "0000:")

	if dev, fn, ok := strings.Cut(prefix, "."); ok && !strings.Contains(prefix, ":") {
		return s.matchSlot(dev, fn)
	}

	var out []pci.Address
	s.tree.WalkPrefix(prefix, func(_ string, v interface{}) bool {
		out = append(out, v.(pci.Address))
		return false
	})
	return out
}

// matchSlot 键的形式是 "bb:dd.f"，跳过前 3 个字符比较槽位
func (s *Selector) matchSlot(dev, fn string) []pci.Address {
	d, err := hex.ParseHexToUint8(dev)
	if err != nil {
		return nil
	}
	slot := fmt.Sprintf("%02x.%s", d, fn)

	var out []pci.Address
	s.tree.Walk(func(k string, v interface{}) bool {
		if strings.HasPrefix(k[3:], slot) {
			out = append(out, v.(pci.Address))
		}
		return false
	})
	return out
}

func (s *Selector) Len() int {
	return s.tree.Len()
}
