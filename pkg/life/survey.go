package life

import "headerlife/pkg/core"

// Outcome records how a randomly seeded grid evolved.
type Outcome struct {
	Initial    int
	Final      int
	Peak       int
	Steps      int
	Extinct    bool
	StillAt    int // first generation with no births or deaths, or -1
	TotalBirth int
	TotalDeath int
}

// Survey seeds a w*h grid with density p from seed and runs it for at most
// steps generations, stopping early once the grid dies out or freezes into
// still lifes.
func Survey(w, h int, p float64, seed int64, steps int) Outcome {
	g := New(w, h, RandomSeed(core.NewRNG(seed), p))
	out := Outcome{Initial: g.Population(), StillAt: -1}
	out.Peak = out.Initial
	for i := 0; i < steps; i++ {
		births, deaths := g.Step()
		out.Steps++
		out.TotalBirth += len(births)
		out.TotalDeath += len(deaths)
		pop := g.Population()
		if pop > out.Peak {
			out.Peak = pop
		}
		if pop == 0 {
			out.Extinct = true
			break
		}
		if len(births) == 0 && len(deaths) == 0 {
			out.StillAt = g.Generation()
			break
		}
	}
	out.Final = g.Population()
	return out
}
