package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/trigl/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultClearColour = "#000000ff"
	DefaultFillColour  = "#ff0000ff"
)

type Config struct {
	Window         WindowCfg
	ClearColour    string  `yaml:"clear_colour"`
	FillColour     string  `yaml:"fill_colour"`
	ShaderDebugDir CfgPath `yaml:"shader_debug_dir"`
	Api            *ApiCfg
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			slog.Warn("could not close config file", "module", "config", "file", filename, "err", err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := &Config{}
	err = m.Decode(cfg)
	// an empty document overrides nothing
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	c.Window.applyDefaults()
	if c.ClearColour == "" {
		c.ClearColour = DefaultClearColour
	}
	if c.FillColour == "" {
		c.FillColour = DefaultFillColour
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if !utils.ColourValidate(c.ClearColour) {
		return fmt.Errorf("clear_colour %s is not a valid RGBA hex colour", c.ClearColour)
	}
	if !utils.ColourValidate(c.FillColour) {
		return fmt.Errorf("fill_colour %s is not a valid RGBA hex colour", c.FillColour)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d (swap interval %d)\n",
		c.Window.Title, c.Window.Width, c.Window.Height, *c.Window.SwapInterval))

	b.WriteString("\nColours:\n")
	b.WriteString(fmt.Sprintf("  clear %s\n", c.ClearColour))
	b.WriteString(fmt.Sprintf("  fill  %s\n", c.FillColour))

	if c.ShaderDebugDir != "" {
		b.WriteString(fmt.Sprintf("\nShader dumps: %s\n", c.ShaderDebugDir))
	}

	if c.Api != nil {
		b.WriteString(fmt.Sprintf("\nApi: %s\n", c.Api.Bind))
	}

	return b.String()
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}
