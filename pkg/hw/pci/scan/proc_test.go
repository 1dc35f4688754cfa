package scan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golspci/internal/testutils"
	"golspci/pkg/hw/pci"
	"golspci/pkg/hw/pci/scan"
)

var _ = Describe("ProcScanner", func() {
	var root string

	BeforeEach(func() {
		root = GinkgoT().TempDir()
	})

	It("should list devices in bus/device/function order", func() {
		for _, a := range []pci.Address{
			pci.NewAddress(0x02, 0x00, 0x0),
			pci.NewAddress(0x00, 0x1f, 0x3),
			pci.NewAddress(0x00, 0x1f, 0x2),
			pci.NewAddress(0x00, 0x00, 0x0),
		} {
			testutils.WriteProcDevice(GinkgoT(), root, a, testutils.ConfigBlock(0x8086, 0x2922, 0x80, 256))
		}

		addrs, err := scan.NewProcScanner(log, root).Scan()
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(Equal([]pci.Address{
			pci.NewAddress(0x00, 0x00, 0x0),
			pci.NewAddress(0x00, 0x1f, 0x2),
			pci.NewAddress(0x00, 0x1f, 0x3),
			pci.NewAddress(0x02, 0x00, 0x0),
		}))
	})

	It("should skip plain files and malformed names", func() {
		testutils.WriteProcFile(GinkgoT(), root, "devices", "0000\t80862922\n")
		testutils.WriteProcDevice(GinkgoT(), root, pci.NewAddress(0x00, 0x02, 0x0), testutils.ConfigBlock(0x1234, 0x1111, 0x00, 64))
		Expect(os.MkdirAll(filepath.Join(root, "zz"), 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(root, "00", "README"), nil, 0o644)).To(Succeed())

		addrs, err := scan.NewProcScanner(log, root).Scan()
		Expect(err).NotTo(HaveOccurred())
		Expect(addrs).To(ConsistOf(pci.NewAddress(0x00, 0x02, 0x0)))
	})

	It("should fail when the root does not exist", func() {
		_, err := scan.NewProcScanner(log, filepath.Join(root, "missing")).Scan()
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("should load a config space", func() {
		addr := pci.NewAddress(0x00, 0x1f, 0x2)
		testutils.WriteProcDevice(GinkgoT(), root, addr, testutils.ConfigBlock(0x8086, 0x2922, 0x80, 256))

		s := scan.NewProcScanner(log, root)
		Expect(s.Path(addr)).To(Equal(filepath.Join(root, "00", "1f.2")))

		cs, err := s.Load(addr)
		Expect(err).NotTo(HaveOccurred())
		Expect(cs.Len()).To(Equal(256))
		Expect(cs.Slice(0, 4)).To(Equal([]byte{0x86, 0x80, 0x22, 0x29}))
	})

	It("should reject a block shorter than 64 bytes", func() {
		addr := pci.NewAddress(0x00, 0x03, 0x0)
		testutils.WriteProcDevice(GinkgoT(), root, addr, make([]byte, 63))

		_, err := scan.NewProcScanner(log, root).Load(addr)
		Expect(err).To(MatchError(pci.ErrConfigSpaceTooShort))
	})
})

var _ = Describe("ScanAll", func() {
	var root string

	BeforeEach(func() {
		root = GinkgoT().TempDir()
	})

	It("should keep per-device failures and continue", func() {
		good := pci.NewAddress(0x00, 0x00, 0x0)
		short := pci.NewAddress(0x00, 0x01, 0x0)
		other := pci.NewAddress(0x01, 0x00, 0x0)
		testutils.WriteProcDevice(GinkgoT(), root, good, testutils.ConfigBlock(0x8086, 0x29c0, 0x00, 256))
		testutils.WriteProcDevice(GinkgoT(), root, short, make([]byte, 10))
		testutils.WriteProcDevice(GinkgoT(), root, other, testutils.ConfigBlock(0x1af4, 0x1000, 0x00, 64))

		devices, err := scan.ScanAll(context.Background(), scan.NewProcScanner(log, root), 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(3))

		Expect(devices[0].Address).To(Equal(good))
		Expect(devices[0].Err).NotTo(HaveOccurred())
		Expect(devices[0].Config.Len()).To(Equal(256))

		Expect(devices[1].Address).To(Equal(short))
		Expect(devices[1].Config).To(BeNil())
		Expect(devices[1].Err).To(MatchError(pci.ErrConfigSpaceTooShort))

		Expect(devices[2].Address).To(Equal(other))
		Expect(devices[2].Err).NotTo(HaveOccurred())
	})

	It("should stop when the context is cancelled", func() {
		testutils.WriteProcDevice(GinkgoT(), root, pci.NewAddress(0, 0, 0), testutils.ConfigBlock(0x8086, 0x29c0, 0x00, 64))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := scan.ScanAll(ctx, scan.NewProcScanner(log, root), 1)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("should return an empty result for an empty tree", func() {
		devices, err := scan.ScanAll(context.Background(), scan.NewProcScanner(log, root), 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(BeEmpty())
	})

	It("should narrow the result with a selector", func() {
		for _, a := range []pci.Address{
			pci.NewAddress(0x00, 0x1f, 0x0),
			pci.NewAddress(0x00, 0x1f, 0x2),
			pci.NewAddress(0x00, 0x02, 0x0),
		} {
			testutils.WriteProcDevice(GinkgoT(), root, a, testutils.ConfigBlock(0x8086, 0x2922, 0x00, 64))
		}
		devices, err := scan.ScanAll(context.Background(), scan.NewProcScanner(log, root), 4)
		Expect(err).NotTo(HaveOccurred())

		picked := scan.Select(devices, "00:1f")
		Expect(picked).To(HaveLen(2))
		Expect(picked[0].Address).To(Equal(pci.NewAddress(0x00, 0x1f, 0x0)))
		Expect(picked[1].Address).To(Equal(pci.NewAddress(0x00, 0x1f, 0x2)))

		Expect(scan.Select(devices, "")).To(HaveLen(3))
		Expect(scan.Select(devices, "03:")).To(BeEmpty())
	})
})

var _ = Describe("New", func() {
	It("should build a proc scanner by default", func() {
		s, err := scan.New(log, scan.Options{ProcRoot: "/nonexistent"})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&scan.ProcScanner{}))
		Expect(s.(*scan.ProcScanner).Root()).To(Equal("/nonexistent"))
	})

	It("should reject an unknown source", func() {
		_, err := scan.New(log, scan.Options{Source: "usb"})
		Expect(err).To(MatchError(scan.ErrUnknownSource))
	})
})
