package header

import (
	"strconv"

	"headerlife/internal/core"
)

// Stats summarises the live state of a backdrop.
type Stats struct {
	Generation  int
	Population  int
	Births      int
	Deaths      int
	Grid        core.Size
	Surface     core.Size
	Navigations int
	NavError    error
}

// Stats returns the current statistics.
func (b *Backdrop) Stats() Stats {
	w, h := b.grid.Size()
	last := b.grid.LastCounts()
	return Stats{
		Generation:  b.grid.Generation(),
		Population:  b.grid.Population(),
		Births:      last.Births,
		Deaths:      last.Deaths,
		Grid:        core.Size{W: w, H: h},
		Surface:     b.surfaceSize,
		Navigations: b.navigations,
		NavError:    b.navErr,
	}
}

// Parameters snapshots configuration and statistics for display.
func (b *Backdrop) Parameters() core.ParameterSnapshot {
	st := b.Stats()
	cfg := b.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("generation", "Generation", st.Generation),
				intParam("population", "Population", st.Population),
				intParam("births", "Births", st.Births),
				intParam("deaths", "Deaths", st.Deaths),
				intParam("grid_w", "Columns", st.Grid.W),
				intParam("grid_h", "Rows", st.Grid.H),
			},
		},
		{
			Name: "Layout",
			Params: []core.Parameter{
				intParam("cell_size", "Cell size", cfg.CellSize),
				intParam("cell_border", "Cell border", cfg.CellBorder),
				intParam("surface_w", "Surface width", st.Surface.W),
				intParam("surface_h", "Surface height", st.Surface.H),
			},
		},
		{
			Name: "Features",
			Params: []core.Parameter{
				floatParam("density", "Seed density", cfg.SeedProbability),
				boolParam("fade", "Fade", cfg.Fade),
				boolParam("special", "Special cell", cfg.Special),
				boolParam("message", "Message seed", cfg.Message),
				boolParam("interactive", "Pointer paint", cfg.Interactive),
				{Key: "target", Label: "Target", Type: core.ParamTypeString, Value: cfg.Target},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
