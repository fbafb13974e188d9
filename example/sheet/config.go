// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/sheet/draggablebottomsheet/sheet"
)

// Config holds the sheet options of the demo.
type Config struct {
	Direction string `yaml:"direction"`
	UseOffset bool   `yaml:"use_offset"`
	MaxWidth  bool   `yaml:"max_width"`
	// BottomMaxWidth is in dp. Zero means the default.
	BottomMaxWidth float32 `yaml:"bottom_max_width"`
	// CornerRadius is the radius in dp of the corners facing
	// the window.
	CornerRadius float32 `yaml:"corner_radius"`
	// Scrim and Background are color names or #rrggbb[aa] values.
	Scrim      string `yaml:"scrim"`
	Background string `yaml:"background"`
}

func defaultConfig() Config {
	return Config{
		Direction:    "bottom",
		CornerRadius: 24,
	}
}

// loadConfig reads a YAML configuration file on top of the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := parseDirection(cfg.Direction); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseDirection(s string) (sheet.Direction, error) {
	switch strings.ToLower(s) {
	case "", "bottom":
		return sheet.Bottom, nil
	case "left":
		return sheet.Left, nil
	case "right":
		return sheet.Right, nil
	default:
		return 0, fmt.Errorf("unknown sheet direction %q", s)
	}
}

// parseColor parses an SVG color name or a #rgb, #rrggbb or
// #rrggbbaa hex color into a premultiplied color. An empty
// string returns def.
func parseColor(s string, def color.RGBA) (color.RGBA, error) {
	if s == "" {
		return def, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	alpha := uint64(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return def, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha, s = a, s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return def, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	pre := func(v uint8) uint8 {
		return uint8((uint64(v)*alpha + 127) / 255)
	}
	return color.RGBA{R: pre(r), G: pre(g), B: pre(b), A: uint8(alpha)}, nil
}
