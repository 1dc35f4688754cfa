package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"

	"golspci/pkg/hw/pci"
	"golspci/pkg/toolutil/hex"
)

// ProcScanner 读取 /proc/bus/pci/<bb>/<dd>.<f>
type ProcScanner struct {
	log  logr.Logger
	root string
}

func NewProcScanner(log logr.Logger, root string) *ProcScanner {
	return &ProcScanner{
		log:  log.WithValues("root", root),
		root: root,
	}
}

func (s *ProcScanner) Root() string {
	return s.root
}

func (s *ProcScanner) Scan() ([]pci.Address, error) {
	buses, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read pci bus directory: %w", err)
	}

	set := NewAddressSet()
	for _, bus := range buses {
		// /proc/bus/pci/devices 这种普通文件
		if !bus.IsDir() {
			s.log.V(3).Info("Skipping non-directory entry", "entry", bus.Name())
			continue
		}
		busNum, err := hex.ParseHexToUint8(bus.Name())
		if err != nil {
			s.log.V(1).Info("Skipping bus directory with non-hex name", "entry", bus.Name())
			continue
		}

		entries, err := os.ReadDir(filepath.Join(s.root, bus.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read bus %s: %w", bus.Name(), err)
		}
		for _, e := range entries {
			addr, ok := parseSlot(busNum, e.Name())
			if !ok {
				s.log.V(1).Info("Skipping entry not in dd.f form", "bus", bus.Name(), "entry", e.Name())
				continue
			}
			s.log.V(1).Info("Found pci device", "address", addr.String())
			set.Add(addr)
		}
	}

	return set.Slice(), nil
}

func parseSlot(bus uint8, name string) (pci.Address, bool) {
	dev, fn, ok := strings.Cut(name, ".")
	if !ok {
		return pci.Address{}, false
	}
	d, err := hex.ParseHexToUint8(dev)
	if err != nil {
		return pci.Address{}, false
	}
	f, err := hex.ParseHexToUint8(fn)
	if err != nil {
		return pci.Address{}, false
	}
	return pci.NewAddress(bus, d, f), true
}

// Path 设备配置空间文件的路径
func (s *ProcScanner) Path(addr pci.Address) string {
	return filepath.Join(s.root, fmt.Sprintf("%02x", addr.Bus), fmt.Sprintf("%02x.%x", addr.Device, addr.Function))
}

func (s *ProcScanner) Load(addr pci.Address) (*pci.ConfigSpace, error) {
	return loadConfig(s.log, addr, s.Path(addr))
}

func loadConfig(log logr.Logger, addr pci.Address, path string) (*pci.ConfigSpace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config space of %s: %w", addr, err)
	}
	log.V(1).Info("Read config space", "address", addr.String(), "size", humanize.Bytes(uint64(len(b))))

	cs, err := pci.NewConfigSpace(b)
	if err != nil {
		log.Error(err, "Unusable config space", "address", addr.String())
		return nil, fmt.Errorf("device %s: %w", addr, err)
	}
	return cs, nil
}
