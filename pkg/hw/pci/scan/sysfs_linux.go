package scan

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/prometheus/procfs/sysfs"

	"golspci/pkg/hw/pci"
)

// SysfsScanner 通过 procfs 枚举 /sys/bus/pci/devices，读取每个设备的 config 文件
// 只处理 0000 域
type SysfsScanner struct {
	log   logr.Logger
	fs    sysfs.FS
	mount string

	mu    sync.RWMutex
	names map[pci.Address]string
}

func NewSysfsScanner(log logr.Logger, mountPoint string) (*SysfsScanner, error) {
	fs, err := sysfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("failed to open sysfs: %w", err)
	}

	return &SysfsScanner{
		log:   log.WithValues("root", mountPoint),
		fs:    fs,
		mount: mountPoint,
		names: map[pci.Address]string{},
	}, nil
}

func (s *SysfsScanner) Scan() ([]pci.Address, error) {
	devices, err := s.fs.PciDevices()
	if err != nil {
		return nil, fmt.Errorf("failed to read pci devices: %w", err)
	}

	set := NewAddressSet()
	names := map[pci.Address]string{}
	for _, device := range devices {
		if device.Location.Segment != 0 {
			s.log.V(1).Info("Skipping device outside domain 0000", "device", device.Name())
			continue
		}
		addr := pci.NewAddress(
			uint8(device.Location.Bus),
			uint8(device.Location.Device),
			uint8(device.Location.Function),
		)
		s.log.V(1).Info("Found pci device", "device", device.Name())
		set.Add(addr)
		names[addr] = device.Name()
	}

	s.mu.Lock()
	s.names = names
	s.mu.Unlock()

	return set.Slice(), nil
}

// Path 设备 config 文件路径；没扫描过的地址按 0000 域拼
func (s *SysfsScanner) Path(addr pci.Address) string {
	s.mu.RLock()
	name, ok := s.names[addr]
	s.mu.RUnlock()
	if !ok {
		name = "0000:" + addr.String()
	}
	return filepath.Join(s.mount, "bus", "pci", "devices", name, "config")
}

func (s *SysfsScanner) Load(addr pci.Address) (*pci.ConfigSpace, error) {
	return loadConfig(s.log, addr, s.Path(addr))
}
