package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"grimm.is/bedrock/internal/config"
	"grimm.is/bedrock/internal/hardware"
)

// Wizard collects a complete install configuration interactively. Drive and
// interface choices are fed from the hardware inventory; text fields are
// validated inline with the same rule table the config validator uses.
type Wizard struct {
	Drives     []hardware.Drive
	Interfaces []hardware.NetInterface

	validator *config.Validator
}

// NewWizard creates a wizard over the enumerated hardware.
func NewWizard(drives []hardware.Drive, ifaces []hardware.NetInterface) *Wizard {
	return &Wizard{
		Drives:     drives,
		Interfaces: ifaces,
		validator:  config.NewValidator(),
	}
}

// driveOptions renders the drive picker choices. Drives carrying a Windows
// installation stay selectable but are labeled so the operator knows what
// they are about to erase.
func (w *Wizard) driveOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(w.Drives))
	for _, d := range w.Drives {
		label := d.String()
		if d.HasWindows {
			label += "  [Windows detected]"
		}
		opts = append(opts, huh.NewOption(label, d.Path))
	}
	return opts
}

func (w *Wizard) interfaceOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(w.Interfaces))
	for _, iface := range w.Interfaces {
		label := iface.Name
		if iface.MAC != "" {
			label = fmt.Sprintf("%s (%s)", iface.Name, iface.MAC)
		}
		if !iface.LinkUp {
			label += "  [link down]"
		}
		opts = append(opts, huh.NewOption(label, iface.Name))
	}
	return opts
}

// interfaceField is a picker when interfaces were detected, a free-form
// input otherwise (e.g. when enumeration was not possible).
func (w *Wizard) interfaceField(value *string) huh.Field {
	if len(w.Interfaces) == 0 {
		return huh.NewInput().
			Title("Interface").
			Placeholder("enp0s3").
			Validate(w.fieldValidator(config.KeyStaticIface)).
			Value(value)
	}
	return huh.NewSelect[string]().
		Title("Interface").
		Options(w.interfaceOptions()...).
		Value(value)
}

// fieldValidator adapts the config rule table to huh's inline validation.
func (w *Wizard) fieldValidator(field string) func(string) error {
	return func(value string) error {
		return w.validator.ValidateField(field, value)
	}
}

// Run drives the interactive form and returns the collected configuration.
// The caller is responsible for the final full validation pass and save.
func (w *Wizard) Run() (*config.SystemConfig, error) {
	if len(w.Drives) == 0 {
		return nil, fmt.Errorf("no suitable NVMe drives found")
	}

	cfg := &config.SystemConfig{
		Locale:     config.DefaultLocale,
		Timezone:   config.DefaultTimezone,
		SwapSize:   config.DefaultSwapSize,
		Filesystem: config.DefaultFilesystem,
		Network:    config.NetworkConfig{Type: config.NetworkDHCP},
	}

	_, windowsDrives := hardware.CategorizeDrives(w.Drives)
	driveDesc := "All data on the selected drive will be erased."
	if len(windowsDrives) > 0 {
		driveDesc = fmt.Sprintf("Windows installations detected on %d drive(s). All data on the selected drive will be erased.", len(windowsDrives))
	}

	driveGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Install target").
			Description(driveDesc).
			Options(w.driveOptions()...).
			Value(&cfg.TargetDrive),
	)

	identityGroup := huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Placeholder("alice").
			Validate(w.fieldValidator(config.KeyUsername)).
			Value(&cfg.Username),
		huh.NewInput().
			Title("Hostname").
			Placeholder("kde-desktop").
			Validate(w.fieldValidator(config.KeyHostname)).
			Value(&cfg.Hostname),
		huh.NewInput().
			Title("Locale").
			Description("Format: en_US.UTF-8").
			Validate(w.fieldValidator(config.KeyLocale)).
			Value(&cfg.Locale),
		huh.NewInput().
			Title("Timezone").
			Description("Format: America/New_York").
			Validate(w.fieldValidator(config.KeyTimezone)).
			Value(&cfg.Timezone),
	)

	storageGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Swap size").
			Options(
				huh.NewOption("Automatic", "auto"),
				huh.NewOption("2 GB", "2G"),
				huh.NewOption("4 GB", "4G"),
				huh.NewOption("8 GB", "8G"),
				huh.NewOption("None", "none"),
			).
			Value(&cfg.SwapSize),
		huh.NewSelect[string]().
			Title("Filesystem").
			Options(
				huh.NewOption("ext4", "ext4"),
				huh.NewOption("btrfs", "btrfs"),
				huh.NewOption("xfs", "xfs"),
			).
			Value(&cfg.Filesystem),
	)

	networkGroup := huh.NewGroup(
		huh.NewSelect[string]().
			Title("Network configuration").
			Options(
				huh.NewOption("DHCP (automatic)", config.NetworkDHCP),
				huh.NewOption("Static address", config.NetworkStatic),
				huh.NewOption("Manual (configure later)", config.NetworkManual),
			).
			Value(&cfg.Network.Type),
	)

	staticGroup := huh.NewGroup(
		w.interfaceField(&cfg.Network.Interface),
		huh.NewInput().
			Title("IP address").
			Placeholder("192.168.1.100").
			Validate(w.fieldValidator(config.KeyStaticIP)).
			Value(&cfg.Network.IPAddress),
		huh.NewInput().
			Title("Netmask").
			Placeholder("255.255.255.0").
			Validate(w.fieldValidator(config.KeyStaticMask)).
			Value(&cfg.Network.Netmask),
		huh.NewInput().
			Title("Gateway").
			Placeholder("192.168.1.1").
			Validate(w.fieldValidator(config.KeyStaticGW)).
			Value(&cfg.Network.Gateway),
		huh.NewInput().
			Title("DNS servers").
			Placeholder("8.8.8.8").
			Value(&cfg.Network.DNSServers),
		huh.NewInput().
			Title("Search domain (optional)").
			Value(&cfg.Network.DomainSearch),
		huh.NewInput().
			Title("DNS suffix (optional)").
			Value(&cfg.Network.DNSSuffix),
	).WithHideFunc(func() bool {
		return cfg.Network.Type != config.NetworkStatic
	})

	form := huh.NewForm(
		driveGroup,
		identityGroup,
		storageGroup,
		networkGroup,
		staticGroup,
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return nil, err
	}

	return cfg, nil
}
