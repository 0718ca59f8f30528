package slidebutton

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid slide button config")

// Config holds the styled attributes and tunables of a Button. It is read
// once by New.
type Config struct {
	Icon      string `toml:"icon" yaml:"icon"`
	Text      string `toml:"text" yaml:"text"`
	TextColor string `toml:"text_color" yaml:"text_color"`

	AcceptanceRatio float64       `toml:"acceptance_ratio" yaml:"acceptance_ratio"`
	ResetDelay      time.Duration `toml:"reset_delay" yaml:"reset_delay"`
	ResetPolicy     ResetPolicy   `toml:"reset_policy" yaml:"reset_policy"`
	TeaseRatio      float64       `toml:"tease_ratio" yaml:"tease_ratio"`
	TeaseDuration   time.Duration `toml:"tease_duration" yaml:"tease_duration"`
}

// DefaultConfig returns a Config with every tunable at its default.
func DefaultConfig() Config {
	return Config{
		TextColor:       "#000000",
		AcceptanceRatio: DefaultAcceptanceRatio,
		ResetDelay:      DefaultResetDelay,
		ResetPolicy:     ResetCoalesce,
		TeaseRatio:      DefaultTeaseRatio,
		TeaseDuration:   DefaultTeaseDuration,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.AcceptanceRatio <= 0 || c.AcceptanceRatio > 1 {
		return fmt.Errorf("%w: acceptance_ratio %v outside (0, 1]", ErrInvalidConfig, c.AcceptanceRatio)
	}
	if c.ResetDelay < 0 {
		return fmt.Errorf("%w: negative reset_delay %v", ErrInvalidConfig, c.ResetDelay)
	}
	if c.TeaseRatio < 0 || c.TeaseRatio > 1 {
		return fmt.Errorf("%w: tease_ratio %v outside [0, 1]", ErrInvalidConfig, c.TeaseRatio)
	}
	if c.TeaseDuration < 0 {
		return fmt.Errorf("%w: negative tease_duration %v", ErrInvalidConfig, c.TeaseDuration)
	}
	if c.ResetPolicy > ResetEveryCall {
		return fmt.Errorf("%w: unknown reset_policy %d", ErrInvalidConfig, c.ResetPolicy)
	}
	if c.TextColor != "" {
		if _, err := ParseHexColor(c.TextColor); err != nil {
			return fmt.Errorf("%w: text_color: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Content returns the label content described by the config.
func (c Config) Content() Content {
	color := ColorBlack
	if c.TextColor != "" {
		if parsed, err := ParseHexColor(c.TextColor); err == nil {
			color = parsed
		}
	}
	return Content{Icon: c.Icon, Text: c.Text, TextColor: color}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return ParseConfigTOML(data)
	case ".yaml", ".yml":
		return ParseConfigYAML(data)
	default:
		return Config{}, fmt.Errorf("load config %s: unsupported extension %q", path, ext)
	}
}

// ParseConfigTOML decodes TOML on top of DefaultConfig.
func ParseConfigTOML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse toml config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigYAML decodes YAML on top of DefaultConfig.
func ParseConfigYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse yaml config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UnmarshalText accepts "coalesce" and "every-call".
func (p *ResetPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "coalesce":
		*p = ResetCoalesce
	case "every-call", "every_call":
		*p = ResetEveryCall
	default:
		return fmt.Errorf("%w: unknown reset_policy %q", ErrInvalidConfig, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p ResetPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
