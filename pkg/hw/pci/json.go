package pci

import (
	"fmt"

	"golspci/pkg/toolutil/bit"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSONReport 把一个设备的解码结果转换成 JSON，字段顺序和布局表一致
//
//	{
//	  "address": "00:1f.2",
//	  "class_code": "0x010601",
//	  "fields": {
//	    "vendor_id": "0x8086",
//	    "command": {"value": "0x0007", "enabled": ["+I/O", ...], "disabled": [...]},
//	    ...
//	  }
//	}
func (p *PrettyPrinter) JSONReport(addr Address, cs *ConfigSpace) ([]byte, error) {
	out := []byte(`{}`)
	var err error

	if out, err = sjson.SetBytes(out, "address", addr.String()); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "class_code", fmt.Sprintf("0x%06x", ClassCode(cs))); err != nil {
		return nil, err
	}

	for _, d := range p.Decode(cs) {
		path := "fields." + d.Name
		if d.Flags == nil {
			if out, err = sjson.SetBytes(out, path, p.FormatValue(d)); err != nil {
				return nil, err
			}
			continue
		}

		width := 4
		if d.Kind == FieldKindHeaderTypeRegister {
			width = 2
		}
		reg := map[string]any{
			"value":    fmt.Sprintf("0x%0*x", width, d.Value),
			"enabled":  append([]string{}, d.Flags.Set...),
			"disabled": append([]string{}, d.Flags.Cleared...),
		}
		if out, err = sjson.SetBytes(out, path, reg); err != nil {
			return nil, err
		}
	}

	return pretty.Pretty(out), nil
}

// ClassCode 偏移 0x09..0x0B 三个字节拼成的 24 位类别码
func ClassCode(cs *ConfigSpace) uint32 {
	b := cs.Slice(0x09, 0x0C)
	return bit.RestoreFieldToOffset(uint32(b[2]), 16) |
		bit.RestoreFieldToOffset(uint32(b[1]), 8) |
		uint32(b[0])
}
