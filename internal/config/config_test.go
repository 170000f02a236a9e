package config

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/termgrid/snake/internal/core"
)

func TestDefaultResolves(t *testing.T) {
	cfg := Default()

	colors, err := cfg.Colors.Resolve()
	if err != nil {
		t.Fatalf("default colors should resolve: %v", err)
	}
	if colors.Fruit != core.ColorRed {
		t.Errorf("fruit = %v, expected red", colors.Fruit)
	}
	if colors.Head != core.ColorBrightGreen {
		t.Errorf("head = %v, expected bright green", colors.Head)
	}
	if colors.Tail != core.ColorGreen {
		t.Errorf("tail = %v, expected green", colors.Tail)
	}

	if cfg.Cadence.StepsPerSecond != 5 {
		t.Errorf("steps_per_second = %d, expected 5", cfg.Cadence.StepsPerSecond)
	}
	if cfg.Cadence.TickRate != 60 {
		t.Errorf("tick_rate = %d, expected 60", cfg.Cadence.TickRate)
	}
	if cfg.Grid.Divisor != 20 {
		t.Errorf("divisor = %d, expected 20", cfg.Grid.Divisor)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, Default())
	}
}

func TestParseColorUnknown(t *testing.T) {
	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("unknown color name should error")
	}
}

func TestResolveRejectsBadName(t *testing.T) {
	c := Colors{Fruit: "red", Head: "nope", Tail: "green"}
	if _, err := c.Resolve(); err == nil {
		t.Error("Resolve should propagate an unknown color name")
	}
}

func TestNormalizeFillsZeroFields(t *testing.T) {
	cfg := Config{Colors: Colors{Fruit: "yellow"}}
	cfg.Normalize()

	if cfg.Colors.Fruit != "yellow" {
		t.Errorf("explicit field overwritten: %q", cfg.Colors.Fruit)
	}
	if cfg.Colors.Head != "bright_green" || cfg.Colors.Tail != "green" {
		t.Errorf("missing colors not defaulted: %+v", cfg.Colors)
	}
	if cfg.Cadence.StepsPerSecond != 5 || cfg.Cadence.TickRate != 60 {
		t.Errorf("missing cadence not defaulted: %+v", cfg.Cadence)
	}
	if cfg.Grid.Divisor != 20 {
		t.Errorf("missing divisor not defaulted: %d", cfg.Grid.Divisor)
	}
}

func TestPartialYAML(t *testing.T) {
	data := []byte("cadence:\n  steps_per_second: 8\n")
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("partial yaml should parse: %v", err)
	}
	cfg.Normalize()

	if cfg.Cadence.StepsPerSecond != 8 {
		t.Errorf("steps_per_second = %d, expected 8", cfg.Cadence.StepsPerSecond)
	}
	if cfg.Colors.Fruit != "red" {
		t.Errorf("colors not defaulted: %+v", cfg.Colors)
	}
}
