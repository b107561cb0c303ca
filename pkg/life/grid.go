package life

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Grid implements Conway's Game of Life on a torus whose dimensions can change
// between generations. Cells are stored column-major so that resizing can
// grow or shrink each column independently.
type Grid struct {
	w, h int
	cols [][]bool
	gen  int
	last Counts
}

// Counts summarises the transitions of the most recent Step.
type Counts struct {
	Births int
	Deaths int
}

// New allocates a w*h grid where cell (x, y) starts alive iff seed(x, y).
// A nil seed produces an empty grid.
func New(w, h int, seed SeedFunc) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cols: make([][]bool, 0, w)}
	for x := 0; x < w; x++ {
		g.cols = append(g.cols, seededColumn(x, 0, h, seed))
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) { return g.w, g.h }

// Generation returns the number of steps taken since construction.
func (g *Grid) Generation() int { return g.gen }

// LastCounts reports the births and deaths applied by the last Step.
func (g *Grid) LastCounts() Counts { return g.last }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Alive reports the state of (x, y). Out-of-bounds cells are dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cols[x][y]
}

// Paint sets (x, y) alive. Requests outside the grid are ignored and report false.
func (g *Grid) Paint(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cols[x][y] = true
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for _, col := range g.cols {
		for y := range col {
			col[y] = false
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, col := range g.cols {
		for _, alive := range col {
			if alive {
				n++
			}
		}
	}
	return n
}

// Mod is the mathematical modulus: the result is always in [0, b) for b > 0.
func Mod(a, b int) int {
	return (a%b + b) % b
}

// NeighborCount returns the number of live cells among the eight toroidally
// wrapped neighbours of (x, y).
func (g *Grid) NeighborCount(x, y int) int {
	if g.w == 0 || g.h == 0 {
		return 0
	}
	n := 0
	for dx := -1; dx <= 1; dx++ {
		nx := Mod(x+dx, g.w)
		col := g.cols[nx]
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if col[Mod(y+dy, g.h)] {
				n++
			}
		}
	}
	return n
}

// Transitions evaluates the life rule for every cell against the current
// state without mutating it. The returned sets are disjoint.
func (g *Grid) Transitions() (births, deaths []Cell) {
	for x := 0; x < g.w; x++ {
		for y := 0; y < g.h; y++ {
			n := g.NeighborCount(x, y)
			alive := g.cols[x][y]
			switch {
			case alive && (n < 2 || n > 3):
				deaths = append(deaths, Cell{X: x, Y: y})
			case !alive && n == 3:
				births = append(births, Cell{X: x, Y: y})
			}
		}
	}
	return births, deaths
}

// Apply sets every birth alive and then every death dead.
func (g *Grid) Apply(births, deaths []Cell) {
	for _, c := range births {
		if g.InBounds(c.X, c.Y) {
			g.cols[c.X][c.Y] = true
		}
	}
	for _, c := range deaths {
		if g.InBounds(c.X, c.Y) {
			g.cols[c.X][c.Y] = false
		}
	}
}

// Step advances the simulation by one generation and returns the cells that
// changed so callers can redraw only those.
func (g *Grid) Step() (births, deaths []Cell) {
	births, deaths = g.Transitions()
	g.Apply(births, deaths)
	g.gen++
	g.last = Counts{Births: len(births), Deaths: len(deaths)}
	return births, deaths
}

// Resize changes the grid dimensions, keeping the state of every cell inside
// both the old and new bounds. New cells are populated from seed.
func (g *Grid) Resize(w, h int, seed SeedFunc) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == g.w && h == g.h {
		return
	}

	// Heights first so that appended columns match the surviving ones.
	if h != g.h {
		for x, col := range g.cols {
			if h < len(col) {
				g.cols[x] = col[:h:h]
				continue
			}
			g.cols[x] = append(col, seededColumn(x, len(col), h, seed)...)
		}
	}

	if w < len(g.cols) {
		for x := w; x < len(g.cols); x++ {
			g.cols[x] = nil
		}
		g.cols = g.cols[:w]
	}
	for x := len(g.cols); x < w; x++ {
		g.cols = append(g.cols, seededColumn(x, 0, h, seed))
	}
	g.w, g.h = w, h
}

// Cells exports the grid as row-major 0/1 values.
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, g.w*g.h)
	for x, col := range g.cols {
		for y, alive := range col {
			if alive {
				out[y*g.w+x] = 1
			}
		}
	}
	return out
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for x := range g.cols {
		for y := range g.cols[x] {
			if g.cols[x][y] != other.cols[x][y] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, gen: g.gen, last: g.last, cols: make([][]bool, len(g.cols))}
	for x, col := range g.cols {
		c.cols[x] = append([]bool(nil), col...)
	}
	return c
}

func seededColumn(x, from, to int, seed SeedFunc) []bool {
	if to < from {
		return nil
	}
	col := make([]bool, to-from)
	if seed == nil {
		return col
	}
	for y := from; y < to; y++ {
		col[y-from] = seed(x, y)
	}
	return col
}
