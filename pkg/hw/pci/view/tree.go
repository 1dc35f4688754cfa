package view

import (
	"fmt"
	"io"
	"strings"

	"golspci/pkg/hw/pci/scan"
)

// 只处理 0000 域
const domainLabel = "[0000]"

type busNode struct {
	bus     uint8
	devices []scan.Device
}

// groupByBus devices 已按地址排序，按 bus 分组后组内顺序不变
func groupByBus(devices []scan.Device) []busNode {
	var buses []busNode
	for _, d := range devices {
		if n := len(buses); n == 0 || buses[n-1].bus != d.Address.Bus {
			buses = append(buses, busNode{bus: d.Address.Bus})
		}
		last := &buses[len(buses)-1]
		last.devices = append(last.devices, d)
	}
	return buses
}

// Tree 以 ASCII 树形结构打印域、总线和设备
//
//	\-[0000]
//	   +-[00]
//	   │  +-00.0 [OK] 8086:29c0
//	   │  \-1f.2 [OK] 8086:2922
//	   \-[01]
//	      \-00.0 [ERR] ----:----
func Tree(w io.Writer, devices []scan.Device) error {
	var b strings.Builder
	b.WriteString("\\-" + domainLabel + "\n")

	buses := groupByBus(devices)
	for bi, bus := range buses {
		conn, prefix := "+-", "   │  "
		if bi == len(buses)-1 {
			conn, prefix = "\\-", "      "
		}
		fmt.Fprintf(&b, "   %s[%02x]\n", conn, bus.bus)

		for i, d := range bus.devices {
			dconn := "+-"
			if i == len(bus.devices)-1 {
				dconn = "\\-"
			}
			fmt.Fprintf(&b, "%s%s%02x.%x %s\n", prefix, dconn, d.Address.Device, d.Address.Function, nodeSummary(d))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// nodeSummary 状态和 vendor:device
func nodeSummary(d scan.Device) string {
	if d.Err != nil || d.Config == nil {
		return "[ERR] ----:----"
	}
	return fmt.Sprintf("[OK] %04x:%04x", d.Config.VendorID(), d.Config.DeviceID())
}
