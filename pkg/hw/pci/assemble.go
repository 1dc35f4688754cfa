package pci

import "fmt"

// 配置空间是小端序
// 长度不对说明布局表的偏移或长度写错了，属于程序缺陷，直接 panic

func AssembleU16(val []byte) uint16 {
	if len(val) != 2 {
		panic(fmt.Sprintf("AssembleU16: expected 2 bytes, got %d", len(val)))
	}
	return uint16(val[1])<<8 | uint16(val[0])
}

func AssembleU32(val []byte) uint32 {
	if len(val) != 4 {
		panic(fmt.Sprintf("AssembleU32: expected 4 bytes, got %d", len(val)))
	}
	return uint32(val[3])<<24 | uint32(val[2])<<16 | uint32(val[1])<<8 | uint32(val[0])
}
