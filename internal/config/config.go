package config

// Default values applied when a key is absent from the config file.
const (
	DefaultLocale     = "en_US.UTF-8"
	DefaultTimezone   = "America/New_York"
	DefaultSwapSize   = "auto"
	DefaultFilesystem = "ext4"
)

// Network types accepted for network_config.
const (
	NetworkDHCP   = "dhcp"
	NetworkStatic = "static"
	NetworkManual = "manual"
)

// NetworkConfig holds network settings for the installed system.
// When Type is "static", Interface, IPAddress, and Gateway are required
// and the IP-bearing fields must be valid dotted-quad IPv4 addresses.
type NetworkConfig struct {
	Type         string `json:"network_type"`
	Interface    string `json:"interface,omitempty"`
	IPAddress    string `json:"ip_address,omitempty"`
	Netmask      string `json:"netmask,omitempty"`
	Gateway      string `json:"gateway,omitempty"`
	DNSServers   string `json:"dns_servers,omitempty"`
	DomainSearch string `json:"domain_search,omitempty"`
	DNSSuffix    string `json:"dns_suffix,omitempty"`
}

// SystemConfig is the complete install configuration. It is created fresh
// per load/save cycle and not mutated after validation.
type SystemConfig struct {
	TargetDrive string        `json:"target_drive"`
	Locale      string        `json:"locale"`
	Timezone    string        `json:"timezone"`
	Username    string        `json:"username"`
	Hostname    string        `json:"hostname"`
	SwapSize    string        `json:"swap_size"`
	Filesystem  string        `json:"filesystem"`
	Network     NetworkConfig `json:"network"`
}

// File keys recognized by the loader. Unknown keys are retained in the raw
// map but ignored by validation and serialization.
const (
	KeyTargetDrive  = "target_drive"
	KeyLocale       = "locale"
	KeyTimezone     = "timezone"
	KeyUsername     = "username"
	KeyHostname     = "hostname"
	KeySwapSize     = "swap_size"
	KeyFilesystem   = "filesystem"
	KeyNetworkType  = "network_config"
	KeyStaticIface  = "static_iface"
	KeyStaticIP     = "static_ip"
	KeyStaticMask   = "static_netmask"
	KeyStaticGW     = "static_gateway"
	KeyStaticDNS    = "static_dns"
	KeyDomainSearch = "static_domain_search"
	KeyDNSSuffix    = "static_dns_suffix"
)

// FromRaw maps a raw key/value map into a SystemConfig, applying defaults
// for absent keys. It performs no validation.
func FromRaw(raw map[string]string) *SystemConfig {
	get := func(key, def string) string {
		if v, ok := raw[key]; ok && v != "" {
			return v
		}
		return def
	}

	return &SystemConfig{
		TargetDrive: raw[KeyTargetDrive],
		Locale:      get(KeyLocale, DefaultLocale),
		Timezone:    get(KeyTimezone, DefaultTimezone),
		Username:    raw[KeyUsername],
		Hostname:    raw[KeyHostname],
		SwapSize:    get(KeySwapSize, DefaultSwapSize),
		Filesystem:  get(KeyFilesystem, DefaultFilesystem),
		Network: NetworkConfig{
			Type:         get(KeyNetworkType, NetworkDHCP),
			Interface:    raw[KeyStaticIface],
			IPAddress:    raw[KeyStaticIP],
			Netmask:      raw[KeyStaticMask],
			Gateway:      raw[KeyStaticGW],
			DNSServers:   raw[KeyStaticDNS],
			DomainSearch: raw[KeyDomainSearch],
			DNSSuffix:    raw[KeyDNSSuffix],
		},
	}
}

// ToRaw converts the config back to the flat key/value form used by the
// validator and serializer. Static network keys are present only for the
// static network type; domain search and DNS suffix only when non-empty.
func (c *SystemConfig) ToRaw() map[string]string {
	raw := map[string]string{
		KeyTargetDrive: c.TargetDrive,
		KeyLocale:      c.Locale,
		KeyTimezone:    c.Timezone,
		KeyUsername:    c.Username,
		KeyHostname:    c.Hostname,
		KeySwapSize:    c.SwapSize,
		KeyFilesystem:  c.Filesystem,
		KeyNetworkType: c.Network.Type,
	}

	if c.Network.Type == NetworkStatic {
		raw[KeyStaticIface] = c.Network.Interface
		raw[KeyStaticIP] = c.Network.IPAddress
		raw[KeyStaticMask] = c.Network.Netmask
		raw[KeyStaticGW] = c.Network.Gateway
		raw[KeyStaticDNS] = c.Network.DNSServers
	}

	if c.Network.DomainSearch != "" {
		raw[KeyDomainSearch] = c.Network.DomainSearch
	}
	if c.Network.DNSSuffix != "" {
		raw[KeyDNSSuffix] = c.Network.DNSSuffix
	}

	return raw
}
