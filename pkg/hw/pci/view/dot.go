package view

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"golspci/pkg/hw/pci/scan"
)

const graphName = "pci"

// Dot 生成 host -> bus -> device 的有向图，可以直接交给 graphviz 渲染
func Dot(devices []scan.Device) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	root := "host"
	if err := g.AddNode(graphName, root, map[string]string{
		"label": quote(domainLabel),
		"shape": "box",
	}); err != nil {
		return "", err
	}

	for _, bus := range groupByBus(devices) {
		busID := fmt.Sprintf("bus_%02x", bus.bus)
		if err := g.AddNode(graphName, busID, map[string]string{
			"label": quote(fmt.Sprintf("[%02x]", bus.bus)),
			"shape": "box",
		}); err != nil {
			return "", err
		}
		if err := g.AddEdge(root, busID, true, nil); err != nil {
			return "", err
		}

		for _, d := range bus.devices {
			devID := fmt.Sprintf("dev_%02x_%02x_%x", d.Address.Bus, d.Address.Device, d.Address.Function)
			attrs := map[string]string{
				"label": quote(d.Address.String() + `\n` + nodeSummary(d)),
			}
			if d.Err != nil {
				attrs["color"] = "red"
			}
			if err := g.AddNode(graphName, devID, attrs); err != nil {
				return "", err
			}
			if err := g.AddEdge(busID, devID, true, nil); err != nil {
				return "", err
			}
		}
	}

	return g.String(), nil
}

func quote(s string) string {
	return `"` + s + `"`
}
