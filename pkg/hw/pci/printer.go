package pci

import (
	"fmt"
	"strings"
)

// 字段名左对齐的列宽
const NameColumnWidth = 20

// DecodedField 一个字段解码后的值
// Flags 只有命令、状态、头部类型三种寄存器才有
type DecodedField struct {
	Field
	Value uint32
	Flags *Flags
}

type PrettyPrinter struct {
	layout Layout
	// 展示层选项，去掉标志行首尾多余的空格
	TrimFlags bool
}

func NewPrettyPrinter() *PrettyPrinter {
	return &PrettyPrinter{layout: HeaderType00()}
}

// NewPrettyPrinterWithLayout 布局表的总长度不能超过最小配置空间，
// 否则任何合法输入都可能越界，属于程序缺陷
func NewPrettyPrinterWithLayout(l Layout) *PrettyPrinter {
	if l.Size() > MinConfigSpaceSize {
		panic(fmt.Sprintf("layout size %d exceeds %d bytes", l.Size(), MinConfigSpaceSize))
	}
	return &PrettyPrinter{layout: l}
}

func (p *PrettyPrinter) Layout() Layout {
	return p.layout
}

// Decode 按布局表切片并组装每个字段
func (p *PrettyPrinter) Decode(cs *ConfigSpace) []DecodedField {
	fields := p.layout.Fields()
	out := make([]DecodedField, 0, len(fields))
	for _, f := range fields {
		slice := cs.Slice(f.Offset, f.Offset+f.Len)
		out = append(out, decodeField(f, slice))
	}
	return out
}

func decodeField(f Field, slice []byte) DecodedField {
	d := DecodedField{Field: f}

	switch f.Kind {
	case FieldKindCommandRegister:
		reg := NewCommandRegister(AssembleU16(slice))
		flags := reg.Flags()
		d.Value, d.Flags = uint32(reg.Value()), &flags
	case FieldKindStatusRegister:
		reg := NewStatusRegister(AssembleU16(slice))
		flags := reg.Flags()
		d.Value, d.Flags = uint32(reg.Value()), &flags
	case FieldKindHeaderTypeRegister:
		reg := NewHeaderTypeRegister(slice[0])
		flags := reg.Flags()
		d.Value, d.Flags = uint32(reg.Value()), &flags
	default:
		switch f.Len {
		case 1:
			d.Value = uint32(slice[0])
		case 2:
			d.Value = uint32(AssembleU16(slice))
		case 4:
			d.Value = AssembleU32(slice)
		}
	}

	return d
}

// FormatValue 单个字段的展示文本
func (p *PrettyPrinter) FormatValue(d DecodedField) string {
	if d.Flags != nil {
		flags := d.Flags.String()
		if p.TrimFlags {
			flags = TrimFlagsLine(flags)
		}
		if d.Kind == FieldKindHeaderTypeRegister {
			return fmt.Sprintf("%s [0x%02x]", flags, d.Value)
		}
		return fmt.Sprintf("%s [0x%04x]", flags, d.Value)
	}

	switch d.Len {
	case 1:
		return fmt.Sprintf("0x%02x", d.Value)
	case 2:
		return fmt.Sprintf("0x%04x", d.Value)
	case 4:
		return fmt.Sprintf("0x%08x", d.Value)
	default:
		return ""
	}
}

// Print 每个字段输出一行 "<name>: <value>\n"，顺序和布局表一致
func (p *PrettyPrinter) Print(cs *ConfigSpace) string {
	var b strings.Builder
	for _, d := range p.Decode(cs) {
		fmt.Fprintf(&b, "%-*s: %s\n", NameColumnWidth, d.Name, p.FormatValue(d))
	}
	return b.String()
}
