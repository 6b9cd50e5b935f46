// Package config loads the layout engine's tunable geometric constants
// (padding, clearances, arrow sizes) and the cache settings from a TOML
// file. Only the cache section changes behavior: pkg/grid, pkg/router and
// pkg/sizing use their own built-in constants and do not read the Grid,
// Router or Sizing sections.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Grid holds the tile-placement spacing constants.
type Grid struct {
	VerticalPad      float64 `toml:"vertical_pad"`
	HorizontalPad    float64 `toml:"horizontal_pad"`
	RegulatorGap     float64 `toml:"regulator_gap"`
	ColumnWrapAfter  int     `toml:"column_wrap_after"`
	CompartmentPad   float64 `toml:"compartment_pad"`
	CatalystTopExtra float64 `toml:"catalyst_top_extra"`
}

// Router holds the connector-routing clearance constants.
type Router struct {
	InputOutputClearance float64 `toml:"input_output_clearance"`
	ArrowSize            float64 `toml:"arrow_size"`
	CatalystClearance    float64 `toml:"catalyst_clearance"`
	RegulatorClearance   float64 `toml:"regulator_clearance"`
	GeneJogOut           float64 `toml:"gene_jog_out"`
	GeneJogIn            float64 `toml:"gene_jog_in"`
	CatalystHookGap      float64 `toml:"catalyst_hook_gap"`
	BadgeSize            float64 `toml:"badge_size"`
}

// Sizing holds the compartment sizing/padding constants.
type Sizing struct {
	CompartmentPad     float64 `toml:"compartment_pad"`
	LabelInset         float64 `toml:"label_inset"`
	MinWidthTextMargin float64 `toml:"min_width_text_margin"`
	ReactionPadX       float64 `toml:"reaction_pad_x"`
	ReactionPadY       float64 `toml:"reaction_pad_y"`
}

// Cache holds cache backend selection and TTLs.
type Cache struct {
	Backend    string `toml:"backend"` // "null", "file", "lru", "redis"
	Dir        string `toml:"dir"`
	RedisAddr  string `toml:"redis_addr"`
	LRUSize    int    `toml:"lru_size"`
	TreeTTLSec int    `toml:"tree_ttl_seconds"`
}

// Config is the layout engine's full tunable set. The zero value is not
// meaningful; use Default or Load.
type Config struct {
	Grid   Grid   `toml:"grid"`
	Router Router `toml:"router"`
	Sizing Sizing `toml:"sizing"`
	Cache  Cache  `toml:"cache"`
}

// Default returns the constants baked into the layout engine's packages,
// so a caller who never supplies a config file still gets a fully
// populated Config.
func Default() Config {
	return Config{
		Grid: Grid{
			VerticalPad:      12,
			HorizontalPad:    12,
			RegulatorGap:     16,
			ColumnWrapAfter:  6,
			CompartmentPad:   20,
			CatalystTopExtra: 50,
		},
		Router: Router{
			InputOutputClearance: 35,
			ArrowSize:            8,
			CatalystClearance:    35,
			RegulatorClearance:   35,
			GeneJogOut:           8,
			GeneJogIn:            30,
			CatalystHookGap:      50,
			BadgeSize:            12,
		},
		Sizing: Sizing{
			CompartmentPad:     20,
			LabelInset:         15,
			MinWidthTextMargin: 30,
			ReactionPadX:       80,
			ReactionPadY:       40,
		},
		Cache: Cache{
			Backend:    "null",
			LRUSize:    1024,
			TreeTTLSec: 3600,
		},
	}
}

// Load reads a TOML file at path, starting from Default and overriding
// only the fields present in the file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
