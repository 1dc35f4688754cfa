package pci

import "slices"

type FieldKind int

const (
	FieldKindID FieldKind = iota
	FieldKindInt
	FieldKindAddress
	FieldKindBitField
	FieldKindCommandRegister
	FieldKindStatusRegister
	FieldKindHeaderTypeRegister
)

func (k FieldKind) String() string {
	switch k {
	case FieldKindID:
		return "id"
	case FieldKindInt:
		return "int"
	case FieldKindAddress:
		return "address"
	case FieldKindBitField:
		return "bitfield"
	case FieldKindCommandRegister:
		return "command"
	case FieldKindStatusRegister:
		return "status"
	case FieldKindHeaderTypeRegister:
		return "header_type"
	}
	return "unknown"
}

// FieldDescriptor 布局表的一项，起始偏移由前面各项长度累加得到
type FieldDescriptor struct {
	Len  int
	Name string
	Kind FieldKind
}

// Layout 按顺序消费的字段表
type Layout []FieldDescriptor

// Field 带上起始偏移的字段
type Field struct {
	FieldDescriptor
	Offset int
}

// Fields 顺序累加字节偏移
func (l Layout) Fields() []Field {
	out := make([]Field, 0, len(l))
	offset := 0
	for _, desc := range l {
		out = append(out, Field{FieldDescriptor: desc, Offset: offset})
		offset += desc.Len
	}
	return out
}

// Size 所有字段长度之和，也就是读取的最高偏移
func (l Layout) Size() int {
	size := 0
	for _, desc := range l {
		size += desc.Len
	}
	return size
}

var headerType00 = [...]FieldDescriptor{
	{Len: 2, Name: "vendor_id", Kind: FieldKindID},
	{Len: 2, Name: "device_id", Kind: FieldKindID},
	{Len: 2, Name: "command", Kind: FieldKindCommandRegister},
	{Len: 2, Name: "status", Kind: FieldKindStatusRegister},
	{Len: 1, Name: "revision", Kind: FieldKindAddress},
	{Len: 1, Name: "prog_if", Kind: FieldKindID},
	{Len: 1, Name: "subclass", Kind: FieldKindID},
	{Len: 1, Name: "class", Kind: FieldKindID},
	{Len: 1, Name: "cache_line_size", Kind: FieldKindInt},
	{Len: 1, Name: "latency_timer", Kind: FieldKindInt},
	{Len: 1, Name: "header_type", Kind: FieldKindHeaderTypeRegister},
	{Len: 1, Name: "bist", Kind: FieldKindBitField},
}

// 类型 0 头部剩下的 48 字节，BAR 只按十六进制输出不做解析
var headerType00Tail = [...]FieldDescriptor{
	{Len: 4, Name: "bar0", Kind: FieldKindAddress},
	{Len: 4, Name: "bar1", Kind: FieldKindAddress},
	{Len: 4, Name: "bar2", Kind: FieldKindAddress},
	{Len: 4, Name: "bar3", Kind: FieldKindAddress},
	{Len: 4, Name: "bar4", Kind: FieldKindAddress},
	{Len: 4, Name: "bar5", Kind: FieldKindAddress},
	{Len: 4, Name: "cardbus_cis", Kind: FieldKindAddress},
	{Len: 2, Name: "subsystem_vendor_id", Kind: FieldKindID},
	{Len: 2, Name: "subsystem_id", Kind: FieldKindID},
	{Len: 4, Name: "expansion_rom", Kind: FieldKindAddress},
	{Len: 1, Name: "cap_pointer", Kind: FieldKindAddress},
	{Len: 1, Name: "reserved1", Kind: FieldKindInt},
	{Len: 2, Name: "reserved2", Kind: FieldKindInt},
	{Len: 4, Name: "reserved3", Kind: FieldKindInt},
	{Len: 1, Name: "interrupt_line", Kind: FieldKindInt},
	{Len: 1, Name: "interrupt_pin", Kind: FieldKindInt},
	{Len: 1, Name: "min_grant", Kind: FieldKindInt},
	{Len: 1, Name: "max_latency", Kind: FieldKindInt},
}

// HeaderType00 标准 12 个字段(前 16 字节)
// 每次返回新的切片，调用方改了也不影响表本身
func HeaderType00() Layout {
	return slices.Clone(headerType00[:])
}

// HeaderType00Extended 完整的 64 字节类型 0 头部
func HeaderType00Extended() Layout {
	return slices.Concat(headerType00[:], headerType00Tail[:])
}
