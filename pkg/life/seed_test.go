package life

import (
	"testing"

	"headerlife/pkg/core"
)

func TestMessageSeedOutsideBitmapIsOff(t *testing.T) {
	m := DefaultMessage()
	bw, bh := m.BlockSize()
	cols, rows := m.Bitmap.Width(), m.Bitmap.Height()

	blocks := [][2]int{
		{m.OriginX - 1, m.OriginY},
		{m.OriginX, m.OriginY - 1},
		{m.OriginX + cols, m.OriginY},
		{m.OriginX, m.OriginY + rows},
		{m.OriginX + cols + 10, m.OriginY + rows + 10},
	}
	for _, b := range blocks {
		for dy := 0; dy < bh; dy++ {
			for dx := 0; dx < bw; dx++ {
				x, y := b[0]*bw+dx, b[1]*bh+dy
				if x < 0 || y < 0 {
					continue
				}
				if m.Seed(x, y) {
					t.Fatalf("cell (%d,%d) in block %v outside the bitmap is on", x, y, b)
				}
			}
		}
	}
	if m.Seed(-1, 3) || m.Seed(3, -1) {
		t.Fatal("negative coordinates must be off")
	}
}

func TestMessageSeedDrawsSpriteInsideSetBlocks(t *testing.T) {
	m := Message{
		Bitmap: ParsePattern("#.", ".#"),
		Sprite: ParsePattern("#.", ".#"),
	}
	want := []string{
		"#...",
		".#..",
		"..#.",
		"...#",
	}
	for y, row := range want {
		for x := range row {
			if got := m.Seed(x, y); got != (row[x] == '#') {
				t.Fatalf("cell (%d,%d)=%v, expected %v", x, y, got, row[x] == '#')
			}
		}
	}
}

func TestMessageSeedHonoursOrigin(t *testing.T) {
	m := Message{Bitmap: ParsePattern("#"), Sprite: ParsePattern("##", "##"), OriginX: 2, OriginY: 1}
	if m.Seed(0, 0) {
		t.Fatal("block (0,0) precedes the origin and must be off")
	}
	for _, c := range []Cell{{4, 2}, {5, 2}, {4, 3}, {5, 3}} {
		if !m.Seed(c.X, c.Y) {
			t.Fatalf("cell %v should be on at origin block", c)
		}
	}
	if m.Seed(6, 2) {
		t.Fatal("block past the bitmap must be off")
	}
}

func TestDefaultMessageHasLiveCells(t *testing.T) {
	m := DefaultMessage()
	bw, bh := m.BlockSize()
	g := New((m.OriginX+m.Bitmap.Width()+1)*bw, (m.OriginY+m.Bitmap.Height()+1)*bh, m.Seed)
	if g.Population() == 0 {
		t.Fatal("default message should seed live cells")
	}
	if bw != 7 || bh != 6 {
		t.Fatalf("spaceship block is %dx%d, expected 7x6", bw, bh)
	}
}

func TestRandomSeedExtremes(t *testing.T) {
	rng := core.NewRNG(1)
	if New(10, 10, RandomSeed(rng, 0)).Population() != 0 {
		t.Fatal("probability 0 should seed nothing")
	}
	if New(10, 10, RandomSeed(rng, 1)).Population() != 100 {
		t.Fatal("probability 1 should seed everything")
	}
}

func TestRandomSeedDeterministic(t *testing.T) {
	a := New(20, 20, RandomSeed(core.NewRNG(99), 0.15))
	b := New(20, 20, RandomSeed(core.NewRNG(99), 0.15))
	if !a.Equal(b) {
		t.Fatal("equal seeds should produce equal grids")
	}
}
