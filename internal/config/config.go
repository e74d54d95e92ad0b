// ABOUTME: Config loading from ~/.cellterm/config.yaml with defaults and validation
// ABOUTME: YAML via gopkg.in/yaml.v3; field rules enforced with go-playground/validator

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full cellterm configuration.
type Config struct {
	Theme string     `yaml:"theme"`
	Log   LogConfig  `yaml:"log"`
	Keys  KeyConfig  `yaml:"keys"`
	Demo  DemoConfig `yaml:"demo"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level" validate:"oneof=debug info warn error disabled"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1,max=1024"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0,max=100"`
}

// KeyConfig controls key decoding and bindings.
type KeyConfig struct {
	EscapeTimeout time.Duration       `yaml:"escape_timeout" validate:"min=0,max=2s"`
	Bindings      map[string][]string `yaml:"bindings" validate:"dive,keys,oneof=quit next prev redraw,endkeys,min=1,dive,required"`
}

// DemoConfig holds the text shown by the demo screen.
type DemoConfig struct {
	Title  string `yaml:"title" validate:"max=200"`
	Status string `yaml:"status" validate:"max=200"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme: "default",
		Log: LogConfig{
			File:       LogFile(),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Keys: KeyConfig{
			EscapeTimeout: 50 * time.Millisecond,
			Bindings:      DefaultBindings(),
		},
		Demo: DemoConfig{
			Title:  "cellterm",
			Status: "tab: next  shift+tab: prev  ctrl+l: redraw  q: quit",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
// ${VAR} references in string fields are expanded after parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, expands environment variables
// and validates the result. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	ResolveEnvVars(cfg)
	cfg.Keys.Bindings = mergeBindings(DefaultBindings(), cfg.Keys.Bindings)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(yamlFieldName)
		validateInst = v
	})
	return validateInst
}

// Validate checks every field rule and reports all failures at once.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fieldPath(fe), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// yamlFieldName names struct fields by their yaml key so errors match
// what the user wrote in the config file.
func yamlFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// fieldPath turns Config.log.max_size_mb into log.max_size_mb.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
