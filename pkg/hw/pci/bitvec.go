package pci

import (
	"golspci/pkg/toolutil/bit"
)

// BitVecFieldDescriptor 寄存器里一个位(或一段保留位)的含义
type BitVecFieldDescriptor struct {
	Len      uint
	Name     string
	Reserved bool
}

// DecodeBitVector 按表顺序累加位偏移，逐位分类
// 保留项只推进偏移不输出，保留段可以超过 1 位
func DecodeBitVector(fields []BitVecFieldDescriptor, vector uint16) Flags {
	var (
		out    Flags
		offset uint
	)

	for _, desc := range fields {
		if !desc.Reserved {
			out.add(desc.Name, bit.IsSet(vector, offset))
		}
		offset += desc.Len
	}

	return out
}

// BitOffsets 返回每一项的起始位，只用来核对表的偏移
func BitOffsets(fields []BitVecFieldDescriptor) []uint {
	offsets := make([]uint, 0, len(fields))
	var offset uint
	for _, desc := range fields {
		offsets = append(offsets, offset)
		offset += desc.Len
	}
	return offsets
}
