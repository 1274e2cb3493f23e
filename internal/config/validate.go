package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

// ValidationError represents a single field-level rule violation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is an ordered collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ExistsFunc reports whether a path exists as a block device. It is injected
// into the Validator so drive validation stays testable without a real
// device tree.
type ExistsFunc func(path string) bool

// FieldRule is a declarative validation rule for one config key. Rules are
// evaluated uniformly in table order; each violated clause contributes
// exactly one error, so a single input can yield multiple errors.
type FieldRule struct {
	// Field is the raw config key this rule applies to.
	Field string

	// When gates the rule on other fields (nil = unconditional).
	When func(raw map[string]string) bool

	// Required makes an empty value an error ("<field> is required").
	Required bool

	// Pattern, when set, must match a non-empty value exactly.
	Pattern    *regexp.Regexp
	PatternMsg string

	// MaxLen, when > 0, caps the value length. Checked independently of
	// Pattern so a value can violate both.
	MaxLen    int
	MaxLenMsg string

	// Check is a semantic check on a non-empty value; it returns an error
	// message or "".
	Check func(value string) string

	// CheckEmpty runs Check even on an empty value.
	CheckEmpty bool

	// BlockDevice consults the Validator's injected existence capability
	// after the pattern has matched.
	BlockDevice bool
}

var (
	drivePathRegex = regexp.MustCompile(`^/dev/nvme\d+n\d+$`)
	localeRegex    = regexp.MustCompile(`^[a-z]{2}_[A-Z]{2}\.UTF-8$`)
	timezoneRegex  = regexp.MustCompile(`^[A-Z][A-Za-z_]*/[A-Z][A-Za-z_]*$`)
	usernameRegex  = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	hostnameRegex  = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

func whenStatic(raw map[string]string) bool {
	return raw[KeyNetworkType] == NetworkStatic
}

func checkNetworkType(v string) string {
	switch v {
	case NetworkDHCP, NetworkStatic, NetworkManual:
		return ""
	}
	return "network type must be dhcp, static, or manual"
}

func checkIPv4(v string) string {
	if !isValidIPv4(v) {
		return fmt.Sprintf("invalid IPv4 address: %s", v)
	}
	return ""
}

// isValidIPv4 reports whether s is a dotted-quad IPv4 address (exactly four
// octets, each 0-255).
func isValidIPv4(s string) bool {
	if strings.Count(s, ".") != 3 || strings.Contains(s, ":") {
		return false
	}
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// defaultRules returns the field rule table. The order is fixed so that
// validating the same input twice yields an identical error sequence.
func defaultRules() []FieldRule {
	return []FieldRule{
		{
			Field:       KeyTargetDrive,
			Required:    true,
			Pattern:     drivePathRegex,
			PatternMsg:  "invalid NVMe drive path format (expected /dev/nvmeXnY)",
			BlockDevice: true,
		},
		{
			Field:      KeyUsername,
			Required:   true,
			Pattern:    usernameRegex,
			PatternMsg: "must start with a lowercase letter and contain only lowercase letters, numbers, underscore, dash",
			MaxLen:     32,
			MaxLenMsg:  "username too long (max 32 characters)",
		},
		{
			Field:      KeyHostname,
			Required:   true,
			Pattern:    hostnameRegex,
			PatternMsg: "hostname can only contain letters, numbers, and hyphens",
			MaxLen:     63,
			MaxLenMsg:  "hostname too long (max 63 characters)",
		},
		{
			Field:      KeyLocale,
			Pattern:    localeRegex,
			PatternMsg: "locale must be in format: en_US.UTF-8",
		},
		{
			Field:      KeyTimezone,
			Pattern:    timezoneRegex,
			PatternMsg: "timezone must be in format: America/New_York",
		},
		{
			Field:      KeyNetworkType,
			Check:      checkNetworkType,
			CheckEmpty: true,
		},
		{
			Field:    KeyStaticIface,
			When:     whenStatic,
			Required: true,
		},
		{
			Field:    KeyStaticIP,
			When:     whenStatic,
			Required: true,
			Check:    checkIPv4,
		},
		{
			Field: KeyStaticMask,
			When:  whenStatic,
			Check: checkIPv4,
		},
		{
			Field:    KeyStaticGW,
			When:     whenStatic,
			Required: true,
			Check:    checkIPv4,
		},
	}
}

// Validator evaluates the field rule table over a raw config map.
// The zero value is not usable; create one with NewValidator.
type Validator struct {
	rules []FieldRule

	// DriveExists, when non-nil, is consulted for target_drive after the
	// path grammar has matched. Leave nil in tests and dry runs.
	DriveExists ExistsFunc
}

// NewValidator returns a Validator with the default rule table and no
// block-device capability.
func NewValidator() *Validator {
	return &Validator{rules: defaultRules()}
}

// Validate evaluates every applicable rule against the raw map and returns
// the ordered list of violations (empty = valid). It never short-circuits
// and has no side effects.
func (v *Validator) Validate(raw map[string]string) ValidationErrors {
	var errs ValidationErrors

	for _, r := range v.rules {
		if r.When != nil && !r.When(raw) {
			continue
		}

		val := raw[r.Field]
		if val == "" {
			if r.Required {
				errs = append(errs, ValidationError{
					Field:   r.Field,
					Message: fmt.Sprintf("%s is required", r.Field),
				})
			}
			if r.Check != nil && r.CheckEmpty {
				if msg := r.Check(val); msg != "" {
					errs = append(errs, ValidationError{Field: r.Field, Message: msg})
				}
			}
			continue
		}

		if r.Pattern != nil && !r.Pattern.MatchString(val) {
			errs = append(errs, ValidationError{Field: r.Field, Message: r.PatternMsg})
		} else if r.BlockDevice && v.DriveExists != nil && !v.DriveExists(val) {
			errs = append(errs, ValidationError{
				Field:   r.Field,
				Message: fmt.Sprintf("drive %s does not exist", val),
			})
		}

		if r.MaxLen > 0 && len(val) > r.MaxLen {
			errs = append(errs, ValidationError{Field: r.Field, Message: r.MaxLenMsg})
		}

		if r.Check != nil {
			if msg := r.Check(val); msg != "" {
				errs = append(errs, ValidationError{Field: r.Field, Message: msg})
			}
		}
	}

	return errs
}

// ValidateConfig validates a structured config by flattening it back to the
// raw key form first.
func (v *Validator) ValidateConfig(c *SystemConfig) ValidationErrors {
	return v.Validate(c.ToRaw())
}

// ValidateField evaluates the rule table for a single field in isolation and
// returns the first violation, or nil. Used for inline validation in
// interactive forms. Static network fields are evaluated as if network_config
// were static, since that is the only context in which they are shown.
func (v *Validator) ValidateField(field, value string) error {
	raw := map[string]string{field: value}
	if strings.HasPrefix(field, "static_") {
		raw[KeyNetworkType] = NetworkStatic
	}
	for _, e := range v.Validate(raw) {
		if e.Field == field {
			return e
		}
	}
	return nil
}
