package life

import "headerlife/pkg/core"

// SeedFunc decides the initial state of a newly allocated cell.
type SeedFunc func(x, y int) bool

// Blank leaves every new cell dead.
func Blank(int, int) bool { return false }

// RandomSeed returns a SeedFunc that turns each cell on with probability p.
func RandomSeed(rng *core.RNG, p float64) SeedFunc {
	return func(int, int) bool { return rng.Chance(p) }
}

// Pattern is a boolean bitmap indexed as [row][column].
type Pattern [][]bool

// ParsePattern builds a Pattern from rows of text where '#' marks a set pixel.
func ParsePattern(rows ...string) Pattern {
	p := make(Pattern, len(rows))
	for y, row := range rows {
		p[y] = make([]bool, len(row))
		for x, ch := range []byte(row) {
			p[y][x] = ch == '#'
		}
	}
	return p
}

// Width returns the length of the longest row.
func (p Pattern) Width() int {
	w := 0
	for _, row := range p {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows.
func (p Pattern) Height() int { return len(p) }

// At reports whether (x, y) is set. Coordinates outside the pattern are unset.
func (p Pattern) At(x, y int) bool {
	if y < 0 || y >= len(p) || x < 0 || x >= len(p[y]) {
		return false
	}
	return p[y][x]
}

// Message renders a bitmap as a mosaic of sprites. Each bitmap pixel covers a
// block the size of Sprite; a cell is alive when its block is set in Bitmap
// and its offset inside the block is set in Sprite. OriginX/OriginY shift the
// bitmap by whole blocks.
type Message struct {
	Bitmap  Pattern
	Sprite  Pattern
	OriginX int
	OriginY int
}

// Spaceship is a 7x6 block holding a lightweight spaceship with a one cell margin.
var Spaceship = ParsePattern(
	".......",
	"..#..#.",
	".#.....",
	".#...#.",
	".####..",
	".......",
)

// LifeBanner spells "LIFE" in a 3x5 font.
var LifeBanner = ParsePattern(
	"#...###.###.###",
	"#....#..#...#..",
	"#....#..##..##.",
	"#....#..#...#..",
	"###.###.#...###",
)

// DefaultMessage is the banner offset one block from the top-left corner.
func DefaultMessage() Message {
	return Message{Bitmap: LifeBanner, Sprite: Spaceship, OriginX: 1, OriginY: 1}
}

// Seed reports whether (x, y) is on in the rendered message.
func (m Message) Seed(x, y int) bool {
	bw, bh := m.Sprite.Width(), m.Sprite.Height()
	if bw == 0 || bh == 0 || x < 0 || y < 0 {
		return false
	}
	bx, by := x/bw-m.OriginX, y/bh-m.OriginY
	if !m.Bitmap.At(bx, by) {
		return false
	}
	return m.Sprite.At(x%bw, y%bh)
}

// BlockSize returns the cell dimensions covered by one bitmap pixel.
func (m Message) BlockSize() (int, int) {
	return m.Sprite.Width(), m.Sprite.Height()
}
