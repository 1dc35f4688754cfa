package testutils

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"golspci/pkg/hw/pci"
)

// TB testing.T 和 GinkgoT() 都满足
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ConfigBlock 造一个 size 字节的配置空间，只填 vendor/device/header_type
func ConfigBlock(vendor, device uint16, headerType uint8, size int) []byte {
	b := make([]byte, size)
	if size >= 4 {
		binary.LittleEndian.PutUint16(b[0:], vendor)
		binary.LittleEndian.PutUint16(b[2:], device)
	}
	if size > 0x0e {
		b[0x0e] = headerType
	}
	return b
}

// WriteProcDevice 按 /proc/bus/pci 的布局写 <root>/<bb>/<dd>.<f>
func WriteProcDevice(t TB, root string, addr pci.Address, config []byte) string {
	t.Helper()

	busDir := filepath.Join(root, fmt.Sprintf("%02x", addr.Bus))
	if err := os.MkdirAll(busDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", busDir, err)
	}
	path := filepath.Join(busDir, fmt.Sprintf("%02x.%x", addr.Device, addr.Function))
	if err := os.WriteFile(path, config, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteProcFile 在 proc 根目录下放一个普通文件(比如 devices)，扫描时要跳过
func WriteProcFile(t TB, root, name, content string) {
	t.Helper()

	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", root, err)
	}
	path := filepath.Join(root, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SysfsVals sysfs 枚举时必须存在的属性文件
func SysfsVals(vendor, device uint16) map[string]string {
	return map[string]string{
		"class":            "0x010601",
		"vendor":           fmt.Sprintf("0x%04x", vendor),
		"device":           fmt.Sprintf("0x%04x", device),
		"subsystem_vendor": "0x1af4",
		"subsystem_device": "0x1100",
		"revision":         "0x02",
	}
}

// WriteSysfsDevice 造 <sysRoot>/devices/pci0000:00/<id> 并在 bus/pci/devices 下建软链接
// config 为 nil 时不写 config 文件
func WriteSysfsDevice(t TB, sysRoot, id string, vals map[string]string, config []byte) {
	t.Helper()

	parent := "pci0000:00"
	devDir := filepath.Join(sysRoot, "devices", parent, id)
	if err := os.MkdirAll(devDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", devDir, err)
	}

	for name, val := range vals {
		path := filepath.Join(devDir, name)
		if err := os.WriteFile(path, []byte(val+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	if config != nil {
		path := filepath.Join(devDir, "config")
		if err := os.WriteFile(path, config, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	busDevicesDir := filepath.Join(sysRoot, "bus", "pci", "devices")
	if err := os.MkdirAll(busDevicesDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", busDevicesDir, err)
	}

	linkPath := filepath.Join(busDevicesDir, id)
	target := filepath.Join("..", "..", "..", "devices", parent, id)

	_ = os.Remove(linkPath)

	if err := os.Symlink(target, linkPath); err != nil {
		t.Fatalf("symlink %s -> %s: %v", linkPath, target, err)
	}
}
