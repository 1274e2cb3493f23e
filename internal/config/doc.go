// Package config handles install configuration parsing, validation, and
// serialization.
//
// # Overview
//
// Bedrock stores the install configuration as a flat shell-style file
// (key="value" lines, # comments). This package provides:
//   - Parsing into a raw key/value map (unknown keys retained)
//   - Mapping into the structured [SystemConfig] / [NetworkConfig] types
//   - A declarative, data-driven validation rule set
//   - Canonical serialization for saving and round-tripping
//
// # Key Types
//
//   - [SystemConfig]: The complete install configuration
//   - [NetworkConfig]: Network settings (dhcp, static, or manual)
//   - [Validator]: Evaluates the field rule table over a raw map
//   - [ValidationError]: A single field-level rule violation
//
// # Validation Model
//
// Validation never short-circuits: every violated rule contributes exactly
// one error, in the fixed order of the rule table, so a single bad config
// yields the complete list of problems in one pass. The "does this path
// exist as a block device" capability is injected so the rules stay pure
// and testable without real hardware.
package config
