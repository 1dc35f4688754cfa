package pci

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCommandRegisterFlags(t *testing.T) {
	got := NewCommandRegister(0x0007).Flags()
	want := Flags{
		Set:     []string{"+I/O", "+Mem", "+BusMaster"},
		Cleared: []string{"-SpecCycle", "-MemWINV", "-VGASnoop", "-ParErr", "-SERR", "-FastB2B", "-DisINTx"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t,
		"+I/O +Mem +BusMaster -SpecCycle -MemWINV -VGASnoop -ParErr -SERR -FastB2B -DisINTx",
		NewCommandRegister(0x0007).String())
}

// 保留位 7 和高 4 位置位不影响输出
func TestCommandRegisterReservedBits(t *testing.T) {
	plain := NewCommandRegister(0x0100).Flags()
	noisy := NewCommandRegister(0x0100 | 0x0080 | 0xf000).Flags()
	if diff := cmp.Diff(plain, noisy); diff != "" {
		t.Errorf("reserved bits leaked (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"+SERR"}, plain.Set)
	assert.Len(t, plain.Cleared, 9)
}

func TestCommandRegisterAllSet(t *testing.T) {
	f := NewCommandRegister(0xffff).Flags()
	assert.Empty(t, f.Cleared)
	assert.Len(t, f.Set, 10)
	// 两边只有一边非空且多于 1 个，不留空格
	assert.Equal(t,
		"+I/O +Mem +BusMaster +SpecCycle +MemWINV +VGASnoop +ParErr +SERR +FastB2B +DisINTx",
		NewCommandRegister(0xffff).String())
}

func TestStatusRegisterFlags(t *testing.T) {
	tests := []struct {
		name    string
		value   uint16
		wantSet []string
	}{
		{"capabilities only", 0x0010, []string{"+Cap"}},
		// 表里 DEVSEL 只占 1 位，第 9 位对应 DEVSEL
		{"cap and bit 9", 0x0210, []string{"+Cap", "+DEVSEL"}},
		{"cap and received target abort", 0x0810, []string{"+Cap", "+RecvTAbrt"}},
		{"parity error", 0x4000, []string{"+ParErr"}},
		{"reserved bits only", 0x0047, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewStatusRegister(tt.value).Flags()
			assert.Equal(t, tt.wantSet, f.Set)
			assert.Len(t, f.Cleared, 11-len(tt.wantSet))
			for _, name := range append(f.Set, f.Cleared...) {
				assert.NotContains(t, name, "Reserved")
			}
		})
	}
}

func TestStatusRegisterOffsets(t *testing.T) {
	want := []uint{0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}
	if diff := cmp.Diff(want, BitOffsets(statusFields[:])); diff != "" {
		t.Errorf("status offsets (-want +got):\n%s", diff)
	}

	want = []uint{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	if diff := cmp.Diff(want, BitOffsets(commandFields[:])); diff != "" {
		t.Errorf("command offsets (-want +got):\n%s", diff)
	}
}

// 每张表的位宽加起来正好 16
func TestBitVecTablesCover16Bits(t *testing.T) {
	for name, fields := range map[string][]BitVecFieldDescriptor{
		"command": commandFields[:],
		"status":  statusFields[:],
	} {
		var total uint
		for _, f := range fields {
			total += f.Len
			if !f.Reserved {
				assert.Equal(t, uint(1), f.Len, "%s/%s", name, f.Name)
			}
		}
		assert.Equal(t, uint(16), total, name)
	}
}

func TestHeaderTypeRegisterFlags(t *testing.T) {
	tests := []struct {
		value uint8
		want  Flags
		line  string
	}{
		{
			0x80,
			Flags{
				Set:     []string{"+MultiFunction"},
				Cleared: []string{"-PCItoPCIBridge", "-PCItoCardBusBridge"},
			},
			"+MultiFunction -PCItoPCIBridge -PCItoCardBusBridge",
		},
		{
			0x00,
			Flags{Cleared: []string{"-PCItoPCIBridge", "-PCItoCardBusBridge", "-MultiFunction"}},
			"-PCItoPCIBridge -PCItoCardBusBridge -MultiFunction",
		},
		{
			0x01,
			Flags{
				Set:     []string{"+PCItoPCIBridge", "+MultiFunction"},
				Cleared: []string{"-PCItoCardBusBridge"},
			},
			"+PCItoPCIBridge +MultiFunction -PCItoCardBusBridge",
		},
		{
			0x03,
			Flags{Set: []string{"+PCItoPCIBridge", "+PCItoCardBusBridge", "+MultiFunction"}},
			"+PCItoPCIBridge +PCItoCardBusBridge +MultiFunction",
		},
	}

	for _, tt := range tests {
		reg := NewHeaderTypeRegister(tt.value)
		if diff := cmp.Diff(tt.want, reg.Flags()); diff != "" {
			t.Errorf("0x%02x mismatch (-want +got):\n%s", tt.value, diff)
		}
		assert.Equal(t, tt.line, reg.String())
		assert.Equal(t, tt.value, reg.Value())
	}
}
