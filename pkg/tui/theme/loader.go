// ABOUTME: YAML theme file loading with code validation and default fallback
// ABOUTME: Names absent from the file inherit the default table

package theme

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var sgrCode = regexp.MustCompile(`^\d{1,3}(;\d{1,3})*$`)

type yamlTheme struct {
	Name string            `yaml:"name"`
	Fg   map[string]string `yaml:"fg"`
	Bg   map[string]string `yaml:"bg"`
}

// LoadFile reads a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme. An empty code is allowed and disables
// that color; anything else must be a ';'-separated list of numbers.
func Parse(data []byte) (*Theme, error) {
	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	t := Default()
	if yt.Name != "" {
		t.Name = yt.Name
	}
	if err := overlay(t.Fg, yt.Fg, "fg"); err != nil {
		return nil, err
	}
	if err := overlay(t.Bg, yt.Bg, "bg"); err != nil {
		return nil, err
	}
	return t, nil
}

func overlay(dst, src map[string]string, table string) error {
	for name, code := range src {
		code = strings.TrimSpace(code)
		if code != "" && !sgrCode.MatchString(code) {
			return fmt.Errorf("theme %s color %q: invalid SGR code %q", table, name, code)
		}
		dst[strings.ToLower(name)] = code
	}
	return nil
}

// Resolve returns the builtin theme called nameOrPath, or loads it as a
// file path when no builtin has that name.
func Resolve(nameOrPath string) (*Theme, error) {
	if t, ok := Builtin(nameOrPath); ok {
		return t, nil
	}
	return LoadFile(nameOrPath)
}
