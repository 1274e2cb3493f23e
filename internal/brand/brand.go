// Package brand provides centralized branding constants for the installer.
// This makes it easy to fork or white-label the product by changing brand.json.
//
// The brand identity is loaded from brand.json at compile time via go:embed.
// This allows other tools (scripts, docs generators) to read the same file.
package brand

import (
	_ "embed"
	"encoding/json"
	"path/filepath"
)

//go:embed brand.json
var brandJSON []byte

// Brand holds all branding information
type Brand struct {
	Name             string `json:"name"`
	LowerName        string `json:"lowerName"`
	Vendor           string `json:"vendor"`
	Website          string `json:"website"`
	Repository       string `json:"repository"`
	Description      string `json:"description"`
	Tagline          string `json:"tagline"`
	ConfigEnvPrefix  string `json:"configEnvPrefix"`
	DefaultConfigDir string `json:"defaultConfigDir"`
	BinaryName       string `json:"binaryName"`
	ConfigFileName   string `json:"configFileName"`
}

var b Brand

func init() {
	if err := json.Unmarshal(brandJSON, &b); err != nil {
		panic("failed to parse brand.json: " + err.Error())
	}

	// Initialize exported variables after JSON is parsed
	Name = b.Name
	LowerName = b.LowerName
	Vendor = b.Vendor
	Website = b.Website
	Repository = b.Repository
	Description = b.Description
	Tagline = b.Tagline
	ConfigEnvPrefix = b.ConfigEnvPrefix
	DefaultConfigDir = b.DefaultConfigDir
	BinaryName = b.BinaryName
	ConfigFileName = b.ConfigFileName
}

// Exported variables for convenience
var (
	Name             string
	LowerName        string
	Vendor           string
	Website          string
	Repository       string
	Description      string
	Tagline          string
	ConfigEnvPrefix  string
	DefaultConfigDir string
	BinaryName       string
	ConfigFileName   string

	// Version is set at build time via -ldflags
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Get returns the full Brand struct
func Get() Brand {
	return b
}

// DefaultConfigFile returns the default path of the install configuration.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir, ConfigFileName)
}
