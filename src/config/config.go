// Package config resolves render defaults from the environment, so figure
// geometry can be tuned without widening the CLI surface. Variables use the
// KSPGRAPH_ prefix, e.g. KSPGRAPH_CELL_WIDTH=640.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Render holds per-subplot geometry in pixels.
type Render struct {
	CellWidth  int `split_words:"true" default:"500"`
	CellHeight int `split_words:"true" default:"330"`
	HSpace     int `split_words:"true" default:"14"`
	WSpace     int `split_words:"true" default:"10"`
}

// Load reads the environment and clamps values to sane lower bounds; axis
// labels become unreadable below these.
func Load() (Render, error) {
	var r Render
	if err := envconfig.Process("kspgraph", &r); err != nil {
		return Render{}, err
	}
	if r.CellWidth < 320 {
		r.CellWidth = 320
	}
	if r.CellHeight < 240 {
		r.CellHeight = 240
	}
	if r.HSpace < 0 {
		r.HSpace = 0
	}
	if r.WSpace < 0 {
		r.WSpace = 0
	}
	return r, nil
}
