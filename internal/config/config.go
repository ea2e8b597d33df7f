// Package config loads the richfmt CLI configuration.
//
// The file is TOML or YAML, chosen by extension. Without an explicit path
// the XDG config directories are searched for richfmt/config.toml, then
// richfmt/config.yaml. A missing default file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// OutputAuto selects ANSI on a color terminal and plain text otherwise.
const OutputAuto = "auto"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

var defaultNames = []string{"richfmt/config.toml", "richfmt/config.yaml"}

// Config holds CLI defaults. Flags override every field.
type Config struct {
	Output    string         `toml:"output" yaml:"output" validate:"omitempty,oneof=auto plain ansi html markdown json jsonl yaml table csv tsv"`
	Values    string         `toml:"values" yaml:"values"`
	StyleFile string         `toml:"style_file" yaml:"style_file"`
	Style     map[string]any `toml:"style" yaml:"style"`
	LogJSON   bool           `toml:"log_json" yaml:"log_json"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Output: OutputAuto}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks field constraints.
func (c Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed %q (got %v)", strings.ToLower(fe.Field()), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Load reads the configuration at path, or the default location when path
// is empty. Relative file paths inside the config are resolved against the
// config file's directory.
func Load(path string) (Config, error) {
	if path == "" {
		found, ok := findDefault()
		if !ok {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, filepath.Ext(path))
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	dir := filepath.Dir(path)
	cfg.Values = resolvePath(dir, cfg.Values)
	cfg.StyleFile = resolvePath(dir, cfg.StyleFile)
	return cfg, nil
}

func findDefault() (string, bool) {
	for _, name := range defaultNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, true
		}
	}
	return "", false
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
