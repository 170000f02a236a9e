// Package config provides YAML-based game configuration loading for the
// snake game: element colors, tick cadences and the grid divisor.
package config

import (
	"fmt"

	"github.com/termgrid/snake/internal/core"
)

// Config contains all tunable game configuration. Everything here is
// cosmetic or pacing; none of it changes the movement/collision rules.
type Config struct {
	Colors  Colors  `yaml:"colors"`
	Cadence Cadence `yaml:"cadence"`
	Grid    Grid    `yaml:"grid"`
}

// Colors names the ANSI colors for the three drawable element kinds.
type Colors struct {
	Fruit string `yaml:"fruit"`
	Head  string `yaml:"head"`
	Tail  string `yaml:"tail"`
}

// Cadence defines the two scheduling rates: the fast input-sampling tick
// and the slower movement step rate.
type Cadence struct {
	StepsPerSecond int `yaml:"steps_per_second"` // movement steps (default 5)
	TickRate       int `yaml:"tick_rate"`        // input-sampling frames (default 60)
}

// Grid defines how the playfield is derived from the window.
type Grid struct {
	Divisor int `yaml:"divisor"` // cells along the smaller window axis
}

// ColorSet is the resolved palette handed to the renderer.
type ColorSet struct {
	Fruit core.Color
	Head  core.Color
	Tail  core.Color
}

var colorNames = map[string]core.Color{
	"default":        core.ColorDefault,
	"red":            core.ColorRed,
	"green":          core.ColorGreen,
	"yellow":         core.ColorYellow,
	"blue":           core.ColorBlue,
	"magenta":        core.ColorMagenta,
	"cyan":           core.ColorCyan,
	"white":          core.ColorWhite,
	"bright_red":     core.ColorBrightRed,
	"bright_green":   core.ColorBrightGreen,
	"bright_yellow":  core.ColorBrightYellow,
	"bright_blue":    core.ColorBrightBlue,
	"bright_magenta": core.ColorBrightMagenta,
	"bright_cyan":    core.ColorBrightCyan,
	"bright_white":   core.ColorBrightWhite,
	"orange":         core.ColorOrange,
	"gray":           core.ColorGray,
}

// ParseColor resolves a YAML color name to a core.Color.
func ParseColor(name string) (core.Color, error) {
	c, ok := colorNames[name]
	if !ok {
		return core.ColorDefault, fmt.Errorf("config: unknown color %q", name)
	}
	return c, nil
}

// Resolve maps the configured color names to the renderer palette.
func (c Colors) Resolve() (ColorSet, error) {
	fruit, err := ParseColor(c.Fruit)
	if err != nil {
		return ColorSet{}, err
	}
	head, err := ParseColor(c.Head)
	if err != nil {
		return ColorSet{}, err
	}
	tail, err := ParseColor(c.Tail)
	if err != nil {
		return ColorSet{}, err
	}
	return ColorSet{Fruit: fruit, Head: head, Tail: tail}, nil
}

// Normalize fills zero-valued fields from the defaults so partial YAML
// files work.
func (c *Config) Normalize() {
	def := Default()
	if c.Colors.Fruit == "" {
		c.Colors.Fruit = def.Colors.Fruit
	}
	if c.Colors.Head == "" {
		c.Colors.Head = def.Colors.Head
	}
	if c.Colors.Tail == "" {
		c.Colors.Tail = def.Colors.Tail
	}
	if c.Cadence.StepsPerSecond <= 0 {
		c.Cadence.StepsPerSecond = def.Cadence.StepsPerSecond
	}
	if c.Cadence.TickRate <= 0 {
		c.Cadence.TickRate = def.Cadence.TickRate
	}
	if c.Grid.Divisor <= 0 {
		c.Grid.Divisor = def.Grid.Divisor
	}
}
