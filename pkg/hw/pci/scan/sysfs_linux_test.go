package scan_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golspci/internal/testutils"
	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
)

var _ = Describe("SysfsScanner", func() {
	var sysRoot string

	BeforeEach(func() {
		sysRoot = GinkgoT().TempDir()
		testutils.WriteSysfsDevice(GinkgoT(), sysRoot, "0000:17:00.0",
			testutils.SysfsVals(0x10de, 0x2901), testutils.ConfigBlock(0x10de, 0x2901, 0x00, 256))
		testutils.WriteSysfsDevice(GinkgoT(), sysRoot, "0000:00:1f.2",
			testutils.SysfsVals(0x8086, 0x2922), testutils.ConfigBlock(0x8086, 0x2922, 0x80, 64))
	})

	It("should enumerate devices in address order", func() {
		s, err := scan.NewSysfsScanner(log, sysRoot)
		Expect(err).NotTo(HaveOccurred())

		addrs, err := s.Scan()
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(Equal([]pci.Address{
			pci.NewAddress(0x00, 0x1f, 0x2),
			pci.NewAddress(0x17, 0x00, 0x0),
		}))
	})

	It("should read the config file of a scanned device", func() {
		s, err := scan.NewSysfsScanner(log, sysRoot)
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Scan()
		Expect(err).NotTo(HaveOccurred())

		addr := pci.NewAddress(0x17, 0x00, 0x0)
		Expect(s.Path(addr)).To(Equal(filepath.Join(sysRoot, "bus", "pci", "devices", "0000:17:00.0", "config")))

		cs, err := s.Load(addr)
		Expect(err).NotTo(HaveOccurred())
		Expect(cs.Len()).To(Equal(256))
		Expect(cs.Slice(0, 2)).To(Equal([]byte{0xde, 0x10}))
	})

	It("should report a device without a config file", func() {
		testutils.WriteSysfsDevice(GinkgoT(), sysRoot, "0000:03:00.0", testutils.SysfsVals(0x1af4, 0x1041), nil)

		s, err := scan.NewSysfsScanner(log, sysRoot)
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Scan()
		Expect(err).NotTo(HaveOccurred())

		_, err = s.Load(pci.NewAddress(0x03, 0x00, 0x0))
		Expect(err).To(HaveOccurred())
	})

	It("should be selected by the sys source", func() {
		s, err := scan.New(log, scan.Options{Source: scan.SourceSysfs, SysfsRoot: sysRoot})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&scan.SysfsScanner{}))
	})
})
