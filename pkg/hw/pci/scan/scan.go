// Package scan 枚举系统里的 PCI 设备并读取每个设备的配置空间
// 有两个来源: /proc/bus/pci 目录树和 sysfs
package scan

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"golspci/pkg/hw/pci"
)

const (
	SourceProc  = "proc"
	SourceSysfs = "sys"

	DefaultProcRoot  = "/proc/bus/pci"
	DefaultSysfsRoot = "/sys"
)

var ErrUnknownSource = errors.New("unknown scan source")

// Scanner 枚举地址并按地址读取配置空间
type Scanner interface {
	// Scan 返回按 bus/device/function 排好序的地址
	Scan() ([]pci.Address, error)
	Load(addr pci.Address) (*pci.ConfigSpace, error)
}

// Device 一个设备的读取结果，Err 不为空时 Config 为 nil
type Device struct {
	Address pci.Address
	Config  *pci.ConfigSpace
	Err     error
}

// ScanAll 枚举后并发读取所有设备，单个设备失败不影响其它设备
// 返回值顺序和 Scan 一致；只有枚举失败或 ctx 取消才返回 error
func ScanAll(ctx context.Context, s Scanner, workers int) ([]Device, error) {
	addrs, err := s.Scan()
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	out := make([]Device, len(addrs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, addr := range addrs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cs, err := s.Load(addr)
			out[i] = Device{Address: addr, Config: cs, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Select 只保留匹配 prefix 的设备，prefix 为空时原样返回
func Select(devices []Device, prefix string) []Device {
	if prefix == "" {
		return devices
	}
	addrs := make([]pci.Address, 0, len(devices))
	for _, d := range devices {
		addrs = append(addrs, d.Address)
	}
	keep := NewAddressSet(NewSelector(addrs).Match(prefix)...)

	var out []Device
	for _, d := range devices {
		if keep.Has(d.Address) {
			out = append(out, d)
		}
	}
	return out
}

// Options 构造扫描器的参数，对应命令行的 --source/--proc-root/--sys-root
type Options struct {
	Source    string
	ProcRoot  string
	SysfsRoot string
}

func (o Options) withDefaults() Options {
	if o.Source == "" {
		o.Source = SourceProc
	}
	if o.ProcRoot == "" {
		o.ProcRoot = DefaultProcRoot
	}
	if o.SysfsRoot == "" {
		o.SysfsRoot = DefaultSysfsRoot
	}
	return o
}

// New 按 Options.Source 选择扫描器
func New(log logr.Logger, opts Options) (Scanner, error) {
	opts = opts.withDefaults()
	switch opts.Source {
	case SourceProc:
		return NewProcScanner(log, opts.ProcRoot), nil
	case SourceSysfs:
		s, err := NewSysfsScanner(log, opts.SysfsRoot)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q (expected %s or %s)", ErrUnknownSource, opts.Source, SourceProc, SourceSysfs)
	}
}
