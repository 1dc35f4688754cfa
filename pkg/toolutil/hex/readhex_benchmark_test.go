package hex

import (
	"os"
	"path/filepath"
	"testing"
)

const testHexStr = "0x010601\n"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		bits int
		ok   bool
	}{
		{"1f", 0x1f, 8, true},
		{"0x1F\n", 0x1f, 8, true},
		{"100", 0, 8, false},
		{"\uFEFF0x8086", 0x8086, 16, true},
		{testHexStr, 0x010601, 32, true},
		{"zz", 0, 32, false},
	}
	for _, tt := range tests {
		var (
			got uint32
			err error
		)
		switch tt.bits {
		case 8:
			var v uint8
			v, err = ParseHexToUint8(tt.in)
			got = uint32(v)
		case 16:
			var v uint16
			v, err = ParseHexToUint16(tt.in)
			got = uint32(v)
		default:
			got, err = ParseHexToUint32(tt.in)
		}
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("parse %q = 0x%x, %v; want 0x%x", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("parse %q: expected error", tt.in)
		}
	}
}

func TestReadHexToUint32Ff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "class")
	if err := os.WriteFile(path, []byte(testHexStr), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := ReadHexToUint32Ff(path)
	if err != nil || v != 0x010601 {
		t.Errorf("ReadHexToUint32Ff = 0x%x, %v", v, err)
	}
	if _, err := ReadHexToUint32Ff(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func BenchmarkParseHexToUint32(b *testing.B) {
	for b.Loop() {
		_, err := ParseHexToUint32(testHexStr)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadHexToUint32Ff_FileIO(b *testing.B) {
	tmp := createHexTempFile(b, testHexStr)
	defer os.Remove(tmp)

	b.ResetTimer()
	for b.Loop() {
		_, err := ReadHexToUint32Ff(tmp)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func createHexTempFile(b *testing.B, content string) string {
	b.Helper()
	f, err := os.CreateTemp("", "hex_bench_*.txt")
	if err != nil {
		b.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		b.Fatal(err)
	}
	f.Close()
	return f.Name()
}
