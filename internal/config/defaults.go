package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration: fruit red, head
// bright green, tail green (the classic palette), 5 movement steps per
// second sampled at 60 frames, 20 cells along the smaller window axis.
func Default() Config {
	return Config{
		Colors: Colors{
			Fruit: "red",
			Head:  "bright_green",
			Tail:  "green",
		},
		Cadence: Cadence{
			StepsPerSecond: 5,
			TickRate:       60,
		},
		Grid: Grid{
			Divisor: 20,
		},
	}
}
