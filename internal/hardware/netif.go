package hardware

import "strings"

// NetInterface describes a network interface usable for a static network
// configuration, surfaced by the wizard's interface picker.
type NetInterface struct {
	Name   string `json:"name"`
	MAC    string `json:"mac"`
	LinkUp bool   `json:"link_up"`
}

// excludedPrefixes are interface name prefixes to ignore
var excludedPrefixes = []string{
	"lo",     // Loopback
	"docker", // Docker
	"br-",    // Docker bridges
	"veth",   // Virtual ethernet (containers)
	"virbr",  // Libvirt bridges
	"vnet",   // Libvirt VMs
	"tun",    // Tunnels
	"tap",    // TAP devices
	"dummy",  // Dummy interfaces
	"sit",    // IPv6-in-IPv4 tunnels
	"ip6tnl", // IPv6 tunnels
}

// shouldExcludeInterface checks if an interface should be excluded
func shouldExcludeInterface(name string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
