package pci

import (
	"cmp"
	"fmt"
	"strings"

	"golspci/pkg/toolutil/hex"
)

// Address 设备在总线上的位置(BDF)
// Bus 占 8 位, Device 占 5 位, Function 占 3 位
// 构造时不做范围检查，超出位宽的值可以表示但没有意义
type Address struct {
	Bus      uint8
	Device   uint8
	Function uint8
}

func NewAddress(bus, device, function uint8) Address {
	return Address{Bus: bus, Device: device, Function: function}
}

// Compare 按 bus -> device -> function 的顺序比较
func (a Address) Compare(b Address) int {
	if c := cmp.Compare(a.Bus, b.Bus); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Device, b.Device); c != 0 {
		return c
	}
	return cmp.Compare(a.Function, b.Function)
}

func (a Address) Less(b Address) bool {
	return a.Compare(b) < 0
}

// String 和 lspci 一样输出 "bb:dd.f"
func (a Address) String() string {
	return fmt.Sprintf("%02x:%02x.%x", a.Bus, a.Device, a.Function)
}

// ParseAddress 解析 "bb:dd.f"，可以带 "0000:" 域前缀
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
	case 3:
		// 只支持 0 号域
		if dom, err := hex.ParseHexToUint16(parts[0]); err != nil || dom != 0 {
			return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		parts = parts[1:]
	default:
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	devFn := strings.Split(parts[1], ".")
	if len(devFn) != 2 {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	var vals [3]uint8
	for i, part := range []string{parts[0], devFn[0], devFn[1]} {
		v, err := hex.ParseHexToUint8(part)
		if err != nil {
			return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
		}
		vals[i] = v
	}

	return NewAddress(vals[0], vals[1], vals[2]), nil
}
