//go:build linux
// +build linux

package hardware

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// ListInterfaces scans for physical network interfaces suitable for a
// static network configuration.
func ListInterfaces() ([]NetInterface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	ifaces := make([]NetInterface, 0)
	for _, link := range links {
		attrs := link.Attrs()
		if shouldExcludeInterface(attrs.Name) {
			continue
		}

		ifaces = append(ifaces, NetInterface{
			Name:   attrs.Name,
			MAC:    attrs.HardwareAddr.String(),
			LinkUp: attrs.OperState == netlink.OperUp,
		})
	}

	return ifaces, nil
}
