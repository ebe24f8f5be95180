package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/config"
	"github.com/vovakirdan/study-breakout/internal/core"
)

// rowColors colors the grid top to bottom, cycling for taller grids.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
}

// HitResult describes the outcome of one hit on a brick.
type HitResult struct {
	Applied   bool        // False when the brick was unknown or already destroyed
	Destroyed bool        // This hit destroyed the brick
	Dropped   PowerUpKind // Power-up released on destruction, PowerUpNone otherwise
	Brick     Brick       // Brick state after the hit
}

// Grid is the destructible brick field of one level.
type Grid struct {
	Rows, Cols int
	Level      int

	bricks []Brick     // Row-major
	index  map[int]int // Brick ID -> position in bricks
	alive  int

	brickW, brickH float64
	gap, top       float64
}

// GenerateGrid lays out a fresh grid for a level. Toughness comes from the
// per-row table and grows by one every two levels up to the row cap.
// Power-ups are assigned here, not at hit time.
func GenerateGrid(cfg config.BreakoutConfig, level int, rng *SimpleRNG, ids *idSeq) *Grid {
	bc := cfg.Bricks
	if level < 1 {
		level = 1
	}

	g := &Grid{
		Rows:   bc.Rows,
		Cols:   bc.Cols,
		Level:  level,
		bricks: make([]Brick, 0, bc.Rows*bc.Cols),
		index:  make(map[int]int, bc.Rows*bc.Cols),
		brickH: bc.Height,
		gap:    bc.Gap,
		top:    bc.TopOffset,
	}
	g.brickW = (cfg.Area.Width - bc.Gap*float64(bc.Cols+1)) / float64(bc.Cols)

	for row := range bc.Rows {
		maxHits := RowHits(bc, row, level)
		for col := range bc.Cols {
			b := Brick{
				ID:      ids.next(),
				Row:     row,
				Col:     col,
				MaxHits: maxHits,
				Color:   rowColors[row%len(rowColors)],
				Type:    brickTypeFor(maxHits),
				PowerUp: rollPowerUp(rng, bc.PowerUpChance),
			}
			g.index[b.ID] = len(g.bricks)
			g.bricks = append(g.bricks, b)
		}
	}
	g.alive = len(g.bricks)

	return g
}

// RowHits returns the hits a brick in the given row needs at a level.
func RowHits(bc config.BreakoutBricks, row, level int) int {
	base, limit := 1, 1
	if row < len(bc.RowHits) {
		base = bc.RowHits[row]
	}
	if row < len(bc.RowMaxHits) {
		limit = bc.RowMaxHits[row]
	}
	hits := base + (level-1)/2
	return core.Clamp(hits, 1, max(limit, base))
}

// rollPowerUp decides whether a brick carries a power-up and which one.
// The kind is uniform over all kinds.
func rollPowerUp(rng *SimpleRNG, chance int) PowerUpKind {
	if rng.Intn(100) >= chance {
		return PowerUpNone
	}
	return allPowerUps[rng.Intn(len(allPowerUps))]
}

// ApplyHit registers one hit on a brick. Hits on destroyed bricks are ignored.
func (g *Grid) ApplyHit(id int) HitResult {
	i, ok := g.index[id]
	if !ok {
		return HitResult{}
	}
	b := &g.bricks[i]
	if b.Destroyed() {
		return HitResult{Brick: *b}
	}

	b.Hits++
	res := HitResult{Applied: true, Brick: *b}
	if b.Destroyed() {
		g.alive--
		res.Destroyed = true
		res.Dropped = b.PowerUp
	}
	return res
}

// AllDestroyed reports whether every brick has been destroyed.
func (g *Grid) AllDestroyed() bool {
	return g.alive == 0
}

// Remaining returns the number of bricks still standing.
func (g *Grid) Remaining() int {
	return g.alive
}

// Len returns the total number of bricks in the grid.
func (g *Grid) Len() int {
	return len(g.bricks)
}

// Rect returns the area a brick occupies.
func (g *Grid) Rect(b Brick) core.Box {
	x := g.gap + float64(b.Col)*(g.brickW+g.gap)
	y := g.top + float64(b.Row)*(g.brickH+g.gap)
	return core.NewBox(x, y, g.brickW, g.brickH)
}

// FirstOverlap returns the first live brick, in row-major order, whose
// rectangle overlaps the box.
func (g *Grid) FirstOverlap(box core.Box) (Brick, core.Box, bool) {
	for _, b := range g.bricks {
		if b.Destroyed() {
			continue
		}
		r := g.Rect(b)
		if r.Intersects(box) {
			return b, r, true
		}
	}
	return Brick{}, core.Box{}, false
}

// Bricks returns a copy of all bricks, destroyed ones included.
func (g *Grid) Bricks() []Brick {
	out := make([]Brick, len(g.bricks))
	copy(out, g.bricks)
	return out
}

// Points returns the score for destroying a brick in the given row.
func Points(row, multiplier, level int) int {
	return (row + 1) * multiplier * level
}
