package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadResult contains the parsed raw map and the structured config built
// from it.
type LoadResult struct {
	// Raw is the flat key/value mapping exactly as parsed, including
	// unknown keys.
	Raw map[string]string

	// Config is the structured view with defaults applied.
	Config *SystemConfig
}

// ParseReader parses a shell-style config stream (key="value" lines,
// #-prefixed comments, blank lines). A non-comment line without '=' is a
// parse error; this is a load failure, distinct from field validation.
func ParseReader(r io.Reader) (map[string]string, error) {
	raw := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: not a key=value line: %q", lineNo, line)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("line %d: empty key", lineNo)
		}

		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		raw[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return raw, nil
}

// LoadFile loads and parses a config file. Any failure here (missing file,
// unreadable, malformed lines) aborts the load before field rules run.
func LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	raw, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &LoadResult{
		Raw:    raw,
		Config: FromRaw(raw),
	}, nil
}
