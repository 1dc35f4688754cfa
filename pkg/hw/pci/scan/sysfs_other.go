//go:build !linux

package scan

import (
	"errors"

	"github.com/go-logr/logr"

	"golspci/pkg/hw/pci"
)

var errSysfsUnsupported = errors.New("sysfs scanning is only supported on linux")

type SysfsScanner struct{}

func NewSysfsScanner(_ logr.Logger, _ string) (*SysfsScanner, error) {
	return nil, errSysfsUnsupported
}

func (s *SysfsScanner) Scan() ([]pci.Address, error) {
	return nil, errSysfsUnsupported
}

func (s *SysfsScanner) Path(_ pci.Address) string {
	return ""
}

func (s *SysfsScanner) Load(_ pci.Address) (*pci.ConfigSpace, error) {
	return nil, errSysfsUnsupported
}
