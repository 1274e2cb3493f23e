package config

import (
	"fmt"
	"os"
	"strings"

	"grimm.is/bedrock/internal/brand"
)

// Serialize renders the config in canonical file form. The output
// round-trips: parsing it back yields the same key set, with static network
// keys present only for the static network type and the domain search /
// DNS suffix lines present only when non-empty.
func Serialize(c *SystemConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Installation Configuration\n", brand.Name)
	fmt.Fprintf(&b, "target_drive=%q\n", c.TargetDrive)
	fmt.Fprintf(&b, "locale=%q\n", c.Locale)
	fmt.Fprintf(&b, "timezone=%q\n", c.Timezone)
	fmt.Fprintf(&b, "username=%q\n", c.Username)
	fmt.Fprintf(&b, "hostname=%q\n", c.Hostname)
	fmt.Fprintf(&b, "swap_size=%q\n", c.SwapSize)
	fmt.Fprintf(&b, "filesystem=%q\n", c.Filesystem)

	b.WriteString("\n# Network Configuration\n")
	fmt.Fprintf(&b, "network_config=%q\n", c.Network.Type)

	if c.Network.Type == NetworkStatic {
		fmt.Fprintf(&b, "static_iface=%q\n", c.Network.Interface)
		fmt.Fprintf(&b, "static_ip=%q\n", c.Network.IPAddress)
		fmt.Fprintf(&b, "static_netmask=%q\n", c.Network.Netmask)
		fmt.Fprintf(&b, "static_gateway=%q\n", c.Network.Gateway)
		fmt.Fprintf(&b, "static_dns=%q\n", c.Network.DNSServers)
	}

	if c.Network.DomainSearch != "" {
		fmt.Fprintf(&b, "static_domain_search=%q\n", c.Network.DomainSearch)
	}
	if c.Network.DNSSuffix != "" {
		fmt.Fprintf(&b, "static_dns_suffix=%q\n", c.Network.DNSSuffix)
	}

	return b.String()
}

// SaveFile writes the config to path in canonical form.
func SaveFile(path string, c *SystemConfig) error {
	if err := os.WriteFile(path, []byte(Serialize(c)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
