package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hasError reports whether errs contains an error for field whose message
// contains substr.
func hasError(errs ValidationErrors, field, substr string) bool {
	for _, e := range errs {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func countFieldErrors(errs ValidationErrors, field string) int {
	n := 0
	for _, e := range errs {
		if e.Field == field {
			n++
		}
	}
	return n
}

func TestRequiredFields(t *testing.T) {
	v := NewValidator()
	errs := v.Validate(map[string]string{
		KeyNetworkType: NetworkDHCP,
	})

	for _, field := range []string{KeyTargetDrive, KeyUsername, KeyHostname} {
		assert.True(t, hasError(errs, field, field+" is required"), "missing required error for %s", field)
		assert.Equal(t, 1, countFieldErrors(errs, field), "expected exactly one error for %s", field)
	}
}

func TestValidateDoesNotShortCircuit(t *testing.T) {
	// The combined bad input from every angle at once: every violated rule
	// must still show up.
	v := NewValidator()
	errs := v.Validate(map[string]string{
		KeyTargetDrive: "/dev/sda1",
		KeyUsername:    "123bad",
		KeyHostname:    "",
		KeyNetworkType: "static",
		KeyStaticIP:    "999.999.999.999",
	})

	require.GreaterOrEqual(t, len(errs), 6)
	assert.True(t, hasError(errs, KeyTargetDrive, "invalid NVMe drive path"))
	assert.True(t, hasError(errs, KeyUsername, "lowercase letter"))
	assert.True(t, hasError(errs, KeyHostname, "hostname is required"))
	assert.True(t, hasError(errs, KeyStaticIface, "static_iface is required"))
	assert.True(t, hasError(errs, KeyStaticGW, "static_gateway is required"))
	assert.True(t, hasError(errs, KeyStaticIP, "invalid IPv4 address"))
}

func TestValidateIdempotent(t *testing.T) {
	v := NewValidator()
	raw := map[string]string{
		KeyTargetDrive: "/dev/bad",
		KeyUsername:    "Root",
		KeyHostname:    "ok-host",
		KeyNetworkType: "static",
	}

	first := v.Validate(raw)
	second := v.Validate(raw)
	require.Equal(t, first, second, "same input must yield identical error sequences")
}

func TestTargetDrive(t *testing.T) {
	tests := []struct {
		name    string
		drive   string
		wantErr bool
	}{
		{"first namespace", "/dev/nvme0n1", false},
		{"double digits", "/dev/nvme10n12", false},
		{"sata drive", "/dev/sda1", true},
		{"partition suffix", "/dev/nvme0n1p1", true},
		{"trailing garbage", "/dev/nvme0n1x", true},
		{"missing namespace", "/dev/nvme0", true},
		{"relative", "dev/nvme0n1", true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(map[string]string{
				KeyTargetDrive: tt.drive,
				KeyUsername:    "user",
				KeyHostname:    "host",
				KeyNetworkType: NetworkDHCP,
			})
			if got := hasError(errs, KeyTargetDrive, "invalid NVMe drive path"); got != tt.wantErr {
				t.Errorf("drive %q: format error = %v, want %v", tt.drive, got, tt.wantErr)
			}
		})
	}
}

func TestTargetDriveExistence(t *testing.T) {
	base := map[string]string{
		KeyUsername:    "user",
		KeyHostname:    "host",
		KeyNetworkType: NetworkDHCP,
	}

	t.Run("missing device", func(t *testing.T) {
		v := NewValidator()
		v.DriveExists = func(string) bool { return false }

		raw := map[string]string{KeyTargetDrive: "/dev/nvme0n1"}
		for k, val := range base {
			raw[k] = val
		}
		errs := v.Validate(raw)
		assert.True(t, hasError(errs, KeyTargetDrive, "does not exist"))
	})

	t.Run("present device", func(t *testing.T) {
		v := NewValidator()
		v.DriveExists = func(path string) bool { return path == "/dev/nvme0n1" }

		raw := map[string]string{KeyTargetDrive: "/dev/nvme0n1"}
		for k, val := range base {
			raw[k] = val
		}
		errs := v.Validate(raw)
		assert.False(t, hasError(errs, KeyTargetDrive, "does not exist"))
	})

	t.Run("not consulted on bad format", func(t *testing.T) {
		v := NewValidator()
		called := false
		v.DriveExists = func(string) bool { called = true; return true }

		raw := map[string]string{KeyTargetDrive: "/dev/sda1"}
		for k, val := range base {
			raw[k] = val
		}
		v.Validate(raw)
		assert.False(t, called, "existence check should not run for a malformed path")
	})

	t.Run("no capability injected", func(t *testing.T) {
		v := NewValidator()
		raw := map[string]string{KeyTargetDrive: "/dev/nvme9n9"}
		for k, val := range base {
			raw[k] = val
		}
		errs := v.Validate(raw)
		assert.Empty(t, errs, "validation must pass without an existence collaborator")
	})
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		wantFormat bool
		wantLength bool
	}{
		{"simple", "alice", false, false},
		{"digits and dash", "user-01", false, false},
		{"underscore", "svc_backup", false, false},
		{"starts with digit", "123bad", true, false},
		{"uppercase", "Alice", true, false},
		{"space", "a b", true, false},
		{"too long", strings.Repeat("a", 33), false, true},
		{"too long and bad start", "9" + strings.Repeat("a", 40), true, true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(map[string]string{
				KeyTargetDrive: "/dev/nvme0n1",
				KeyUsername:    tt.username,
				KeyHostname:    "host",
				KeyNetworkType: NetworkDHCP,
			})
			assert.Equal(t, tt.wantFormat, hasError(errs, KeyUsername, "lowercase letter"), "format error")
			assert.Equal(t, tt.wantLength, hasError(errs, KeyUsername, "too long"), "length error")
		})
	}
}

func TestHostname(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		wantErr  bool
	}{
		{"simple", "workstation", false},
		{"hyphenated", "kde-test", false},
		{"digits", "node42", false},
		{"max length", strings.Repeat("a", 63), false},
		{"too long", strings.Repeat("a", 64), true},
		{"underscore", "bad_host", true},
		{"dot", "host.local", true},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(map[string]string{
				KeyTargetDrive: "/dev/nvme0n1",
				KeyUsername:    "user",
				KeyHostname:    tt.hostname,
				KeyNetworkType: NetworkDHCP,
			})
			if got := countFieldErrors(errs, KeyHostname) > 0; got != tt.wantErr {
				t.Errorf("hostname %q: error = %v, want %v", tt.hostname, got, tt.wantErr)
			}
		})
	}
}

func TestLocaleAndTimezone(t *testing.T) {
	v := NewValidator()

	base := func() map[string]string {
		return map[string]string{
			KeyTargetDrive: "/dev/nvme0n1",
			KeyUsername:    "user",
			KeyHostname:    "host",
			KeyNetworkType: NetworkDHCP,
		}
	}

	localeTests := []struct {
		locale  string
		wantErr bool
	}{
		{"en_US.UTF-8", false},
		{"de_DE.UTF-8", false},
		{"en_us.UTF-8", true},
		{"en_US", true},
		{"en_US.utf-8", true},
		{"english", true},
	}
	for _, tt := range localeTests {
		raw := base()
		raw[KeyLocale] = tt.locale
		errs := v.Validate(raw)
		if got := countFieldErrors(errs, KeyLocale) > 0; got != tt.wantErr {
			t.Errorf("locale %q: error = %v, want %v", tt.locale, got, tt.wantErr)
		}
	}

	tzTests := []struct {
		tz      string
		wantErr bool
	}{
		{"America/New_York", false},
		{"Europe/Berlin", false},
		{"Asia/Tokyo", false},
		{"america/new_york", true},
		{"UTC", true},
		{"America/", true},
	}
	for _, tt := range tzTests {
		raw := base()
		raw[KeyTimezone] = tt.tz
		errs := v.Validate(raw)
		if got := countFieldErrors(errs, KeyTimezone) > 0; got != tt.wantErr {
			t.Errorf("timezone %q: error = %v, want %v", tt.tz, got, tt.wantErr)
		}
	}

	// Absent locale/timezone keys are fine: the loader fills defaults.
	errs := v.Validate(base())
	assert.Empty(t, errs)
}

func TestNetworkType(t *testing.T) {
	v := NewValidator()

	for _, typ := range []string{NetworkDHCP, NetworkManual} {
		errs := v.Validate(map[string]string{
			KeyTargetDrive: "/dev/nvme0n1",
			KeyUsername:    "user",
			KeyHostname:    "host",
			KeyNetworkType: typ,
		})
		assert.Empty(t, errs, "network type %q should be valid", typ)
	}

	for _, typ := range []string{"", "wireless", "DHCP"} {
		errs := v.Validate(map[string]string{
			KeyTargetDrive: "/dev/nvme0n1",
			KeyUsername:    "user",
			KeyHostname:    "host",
			KeyNetworkType: typ,
		})
		assert.True(t, hasError(errs, KeyNetworkType, "dhcp, static, or manual"), "network type %q should be rejected", typ)
	}
}

func TestStaticNetwork(t *testing.T) {
	v := NewValidator()

	valid := map[string]string{
		KeyTargetDrive: "/dev/nvme0n1",
		KeyUsername:    "user",
		KeyHostname:    "host",
		KeyNetworkType: NetworkStatic,
		KeyStaticIface: "enp0s3",
		KeyStaticIP:    "192.168.1.100",
		KeyStaticMask:  "255.255.255.0",
		KeyStaticGW:    "192.168.1.1",
	}

	t.Run("complete static config", func(t *testing.T) {
		assert.Empty(t, v.Validate(valid))
	})

	t.Run("each static field individually required", func(t *testing.T) {
		for _, field := range []string{KeyStaticIface, KeyStaticIP, KeyStaticGW} {
			raw := make(map[string]string, len(valid))
			for k, val := range valid {
				raw[k] = val
			}
			delete(raw, field)

			errs := v.Validate(raw)
			assert.True(t, hasError(errs, field, field+" is required"), "missing %s", field)
			assert.Equal(t, 1, countFieldErrors(errs, field))
		}
	})

	t.Run("malformed IPs produce distinct errors", func(t *testing.T) {
		raw := make(map[string]string, len(valid))
		for k, val := range valid {
			raw[k] = val
		}
		raw[KeyStaticIP] = "10.0.0"
		raw[KeyStaticGW] = "300.1.1.1"
		raw[KeyStaticMask] = "not-a-mask"

		errs := v.Validate(raw)
		assert.True(t, hasError(errs, KeyStaticIP, "invalid IPv4 address"))
		assert.True(t, hasError(errs, KeyStaticGW, "invalid IPv4 address"))
		assert.True(t, hasError(errs, KeyStaticMask, "invalid IPv4 address"))
	})

	t.Run("static fields ignored for dhcp", func(t *testing.T) {
		errs := v.Validate(map[string]string{
			KeyTargetDrive: "/dev/nvme0n1",
			KeyUsername:    "user",
			KeyHostname:    "host",
			KeyNetworkType: NetworkDHCP,
		})
		assert.Empty(t, errs)
	})
}

func TestIsValidIPv4(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"192.168.1.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"999.999.999.999", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"::1", false},
		{"::ffff:1.2.3.4", false},
		{"", false},
		{"a.b.c.d", false},
	}

	for _, tt := range tests {
		if got := isValidIPv4(tt.input); got != tt.want {
			t.Errorf("isValidIPv4(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	v := NewValidator()

	cfg := &SystemConfig{
		TargetDrive: "/dev/nvme0n1",
		Locale:      DefaultLocale,
		Timezone:    DefaultTimezone,
		Username:    "testuser",
		Hostname:    "kde-test",
		SwapSize:    DefaultSwapSize,
		Filesystem:  DefaultFilesystem,
		Network: NetworkConfig{
			Type:         NetworkStatic,
			Interface:    "enp0s3",
			IPAddress:    "192.168.1.100",
			Netmask:      "255.255.255.0",
			Gateway:      "192.168.1.1",
			DNSServers:   "8.8.8.8",
			DomainSearch: "home.local",
			DNSSuffix:    "corp.example.com",
		},
	}
	assert.Empty(t, v.ValidateConfig(cfg))

	cfg.Network.Gateway = "not-an-ip"
	errs := v.ValidateConfig(cfg)
	assert.True(t, hasError(errs, KeyStaticGW, "invalid IPv4 address"))
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "hostname", Message: "hostname is required"},
	}
	msg := errs.Error()
	assert.Contains(t, msg, "username: username is required")
	assert.Contains(t, msg, "; ")
	assert.True(t, errs.HasErrors())
	assert.False(t, ValidationErrors{}.HasErrors())
	assert.Equal(t, "", ValidationErrors{}.Error())
}
