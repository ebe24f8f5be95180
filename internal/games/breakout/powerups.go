package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/core"
)

// PowerUpKind is the closed set of power-up types.
type PowerUpKind int

const (
	PowerUpNone      PowerUpKind = iota // No power-up
	PowerUpMultiball                    // Two extra balls
	PowerUpExpand                       // Wider paddle for a while
	PowerUpLaser                        // Paddle can fire lasers for a while
	PowerUpSlowBall                     // Slower balls for a while
	PowerUpLife                         // One extra life
)

// allPowerUps lists every droppable kind. Drops are uniform over this list.
var allPowerUps = []PowerUpKind{
	PowerUpMultiball,
	PowerUpExpand,
	PowerUpLaser,
	PowerUpSlowBall,
	PowerUpLife,
}

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "none"
	case PowerUpMultiball:
		return "multiball"
	case PowerUpExpand:
		return "expandpaddle"
	case PowerUpLaser:
		return "laser"
	case PowerUpSlowBall:
		return "slowball"
	case PowerUpLife:
		return "life"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up kind.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerUpMultiball:
		return 'M'
	case PowerUpExpand:
		return 'E'
	case PowerUpLaser:
		return 'L'
	case PowerUpSlowBall:
		return 'S'
	case PowerUpLife:
		return '♥'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpMultiball:
		return core.ColorBrightCyan
	case PowerUpExpand:
		return core.ColorBrightGreen
	case PowerUpLaser:
		return core.ColorBrightRed
	case PowerUpSlowBall:
		return core.ColorBrightBlue
	case PowerUpLife:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}

// PowerUps manages falling power-ups.
type PowerUps struct {
	items     []PowerUp
	size      float64
	fallSpeed float64
	areaH     float64
}

// NewPowerUps creates an empty power-up field.
func NewPowerUps(size, fallSpeed, areaH float64) *PowerUps {
	return &PowerUps{
		items:     make([]PowerUp, 0, 8),
		size:      size,
		fallSpeed: fallSpeed,
		areaH:     areaH,
	}
}

// Spawn drops a power-up centered on (cx, cy).
func (pu *PowerUps) Spawn(id int, kind PowerUpKind, cx, cy float64) {
	pu.items = append(pu.items, PowerUp{
		ID:   id,
		Kind: kind,
		X:    cx - pu.size/2,
		Y:    cy - pu.size/2,
	})
}

// Advance moves every power-up down and discards those below the area.
func (pu *PowerUps) Advance() {
	kept := pu.items[:0]
	for _, p := range pu.items {
		p.Y += pu.fallSpeed
		if p.Y <= pu.areaH {
			kept = append(kept, p)
		}
	}
	pu.items = kept
}

// Collect removes the power-ups touching the paddle and returns their kinds
// in spawn order.
func (pu *PowerUps) Collect(paddle core.Box) []PowerUpKind {
	var collected []PowerUpKind
	kept := pu.items[:0]
	for _, p := range pu.items {
		if pu.Box(p).Intersects(paddle) {
			collected = append(collected, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	pu.items = kept
	return collected
}

// Box returns the bounding box of a power-up.
func (pu *PowerUps) Box(p PowerUp) core.Box {
	return core.NewBox(p.X, p.Y, pu.size, pu.size)
}

// Items returns a copy of the falling power-ups.
func (pu *PowerUps) Items() []PowerUp {
	out := make([]PowerUp, len(pu.items))
	copy(out, pu.items)
	return out
}

// Len returns the number of falling power-ups.
func (pu *PowerUps) Len() int {
	return len(pu.items)
}

// Clear removes all falling power-ups.
func (pu *PowerUps) Clear() {
	pu.items = pu.items[:0]
}
