package pci

import (
	"errors"
	"fmt"
)

// 类型 0 头部固定 64 字节，小于这个长度无法解码
const MinConfigSpaceSize = 64

var (
	ErrConfigSpaceTooShort = errors.New("config space shorter than 64 bytes")
	ErrInvalidAddress      = errors.New("invalid pci address")
)

// ConfigSpace 一个设备的原始配置空间
// 构造后只读，解码时只借用切片，不做修改
type ConfigSpace struct {
	raw []byte
}

// NewConfigSpace 接管 b 的所有权，调用方之后不要再修改 b
func NewConfigSpace(b []byte) (*ConfigSpace, error) {
	if len(b) < MinConfigSpaceSize {
		return nil, fmt.Errorf("%w: got %d", ErrConfigSpaceTooShort, len(b))
	}
	return &ConfigSpace{raw: b}, nil
}

func (cs *ConfigSpace) Len() int {
	return len(cs.raw)
}

// Slice 返回 [low, high) 区间
func (cs *ConfigSpace) Slice(low, high int) []byte {
	return cs.raw[low:high:high]
}

func (cs *ConfigSpace) VendorID() uint16 {
	return AssembleU16(cs.Slice(0x00, 0x02))
}

func (cs *ConfigSpace) DeviceID() uint16 {
	return AssembleU16(cs.Slice(0x02, 0x04))
}

// IsMultiFunction 头部类型最高位
func (cs *ConfigSpace) IsMultiFunction() bool {
	return cs.raw[0x0e]&0x80 != 0
}
