package pci

import (
	"golspci/pkg/toolutil/bit"
)

// MaskFieldDescriptor 不累加偏移，每一项单独和整个字节做与运算
type MaskFieldDescriptor struct {
	Mask uint8
	Name string
}

// MultiFunction 用的是 0xff，任何一位置位都算
// :TODO: PCI 规范里多功能标志只在 bit 7，确认兼容目标后再决定是否收窄为 0x80
var headerTypeFields = [...]MaskFieldDescriptor{
	{Mask: 0x01, Name: "PCItoPCIBridge"},
	{Mask: 0x02, Name: "PCItoCardBusBridge"},
	{Mask: 0xff, Name: "MultiFunction"},
}

// HeaderTypeRegister 偏移 0x0E 的头部类型寄存器
type HeaderTypeRegister struct {
	vector uint8
}

func NewHeaderTypeRegister(v uint8) HeaderTypeRegister {
	return HeaderTypeRegister{vector: v}
}

func (r HeaderTypeRegister) Value() uint8 {
	return r.vector
}

func (r HeaderTypeRegister) Flags() Flags {
	return DecodeMask(headerTypeFields[:], r.vector)
}

func (r HeaderTypeRegister) String() string {
	return r.Flags().String()
}

func DecodeMask(fields []MaskFieldDescriptor, vector uint8) Flags {
	var out Flags
	for _, desc := range fields {
		out.add(desc.Name, bit.AnySet(vector, desc.Mask))
	}
	return out
}
