// Package config loads the board settings from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"SketchBoard/internal/stroke"
	"SketchBoard/internal/tool"
)

type Cap struct {
	Cap    bool    `toml:"cap"`
	Taper  float64 `toml:"taper"`
	Easing string  `toml:"easing"`
}

type Brush struct {
	Size             float64 `toml:"size"`
	Thinning         float64 `toml:"thinning"`
	Smoothing        float64 `toml:"smoothing"`
	Streamline       float64 `toml:"streamline"`
	Easing           string  `toml:"easing"`
	SimulatePressure bool    `toml:"simulate_pressure"`
	Last             bool    `toml:"last"`
	Start            Cap     `toml:"start"`
	End              Cap     `toml:"end"`
}

type Mirror struct {
	// Addr is the listen address of the websocket mirror; empty disables it.
	Addr      string `toml:"addr"`
	Advertise bool   `toml:"advertise"`
}

type Config struct {
	Width            int     `toml:"width"`
	Height           int     `toml:"height"`
	LineWidth        float64 `toml:"line_width"`
	Tool             string  `toml:"tool"`
	ClearSelectOnEnd bool    `toml:"clear_select_on_end"`
	Brush            Brush   `toml:"brush"`
	Mirror           Mirror  `toml:"mirror"`
}

func Default() Config {
	return Config{
		Width:     1024,
		Height:    768,
		LineWidth: 5,
		Tool:      tool.Draw.String(),
		Brush: Brush{
			Size:             8,
			Thinning:         0.5,
			Smoothing:        0.5,
			Streamline:       0.5,
			Easing:           "linear",
			SimulatePressure: true,
			Last:             true,
			Start:            Cap{Cap: true, Easing: "linear"},
			End:              Cap{Cap: true, Easing: "linear"},
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("config %s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %g", c.LineWidth)
	}
	if _, err := tool.ParseKind(c.Tool); err != nil {
		return err
	}
	_, err := c.Brush.Options()
	return err
}

// Options converts the brush section into outliner options.
func (b Brush) Options() (stroke.Options, error) {
	ease, err := stroke.EasingByName(b.Easing)
	if err != nil {
		return stroke.Options{}, fmt.Errorf("brush: %w", err)
	}
	start, err := b.Start.options()
	if err != nil {
		return stroke.Options{}, fmt.Errorf("brush.start: %w", err)
	}
	end, err := b.End.options()
	if err != nil {
		return stroke.Options{}, fmt.Errorf("brush.end: %w", err)
	}
	return stroke.Options{
		Size:             b.Size,
		Thinning:         b.Thinning,
		Smoothing:        b.Smoothing,
		Streamline:       b.Streamline,
		Easing:           ease,
		SimulatePressure: b.SimulatePressure,
		Last:             b.Last,
		Start:            start,
		End:              end,
	}, nil
}

func (c Cap) options() (stroke.Cap, error) {
	ease, err := stroke.EasingByName(c.Easing)
	if err != nil {
		return stroke.Cap{}, err
	}
	return stroke.Cap{Cap: c.Cap, Taper: c.Taper, Easing: ease}, nil
}

// ToolConfig builds the controller settings. The config must be valid.
func (c Config) ToolConfig() (tool.Config, error) {
	kind, err := tool.ParseKind(c.Tool)
	if err != nil {
		return tool.Config{}, err
	}
	brush, err := c.Brush.Options()
	if err != nil {
		return tool.Config{}, err
	}
	return tool.Config{Tool: kind, Brush: brush, ClearSelectOnEnd: c.ClearSelectOnEnd}, nil
}
