package bit

import (
	"golang.org/x/exp/constraints"
)

type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// 提取 val 中 [start:start+width) 范围的字段
// v16 := uint16(0b1011001111001010)
// fmt.Printf("%04b\n", ExtractBits(v16, 4, 4))  // 输出 1100
func ExtractBits[T Uint](val T, start, width uint) T {
	// width 不小于类型位宽时 1<<width 为 0，掩码自然变成全 1
	var mask T = (1 << width) - 1
	return (val >> start) & mask
}

// IsSet 判断第 pos 位是否为 1
func IsSet[T Uint](val T, pos uint) bool {
	return ExtractBits(val, pos, 1) == 1
}

// AnySet 判断 val 与掩码按位与之后是否非零
// 和 IsSet 不同，掩码可以覆盖多位甚至整个字节
func AnySet[T constraints.Unsigned](val, mask T) bool {
	return val&mask > 0
}

// 把字段放回 start 起始位位置
// code := uint32(0x060400)
// base := ExtractBits(code, 16, 8)      // 0x06
// restored := RestoreFieldToOffset(base, 16) // 0x060000
func RestoreFieldToOffset[T constraints.Unsigned](val T, offset uint) T {
	return val << offset
}
