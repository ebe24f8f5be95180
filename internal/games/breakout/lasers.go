package breakout

import (
	"github.com/vovakirdan/study-breakout/internal/core"
)

// Lasers manages laser shots fired from the paddle.
//
// A laser is not consumed when it hits a brick: it keeps flying and damages
// at most one brick per tick until it leaves the top of the area.
type Lasers struct {
	shots  []Laser
	width  float64
	height float64
	speed  float64
}

// NewLasers creates an empty laser set.
func NewLasers(width, height, speed float64) *Lasers {
	return &Lasers{
		shots:  make([]Laser, 0, 8),
		width:  width,
		height: height,
		speed:  speed,
	}
}

// Fire spawns one laser at the paddle's center-top.
func (l *Lasers) Fire(id int, p Paddle) {
	l.shots = append(l.shots, Laser{
		ID: id,
		X:  p.CenterX() - l.width/2,
		Y:  p.Y - l.height,
	})
}

// Advance moves every laser up and discards those that left the area.
func (l *Lasers) Advance() {
	kept := l.shots[:0]
	for _, s := range l.shots {
		s.Y -= l.speed
		if s.Y+l.height > 0 {
			kept = append(kept, s)
		}
	}
	l.shots = kept
}

// Resolve applies one hit per laser to the first live brick it overlaps.
// It returns the applied hits in laser order.
func (l *Lasers) Resolve(g *Grid) []HitResult {
	var hits []HitResult
	for _, s := range l.shots {
		b, _, ok := g.FirstOverlap(l.Box(s))
		if !ok {
			continue
		}
		if res := g.ApplyHit(b.ID); res.Applied {
			hits = append(hits, res)
		}
	}
	return hits
}

// Box returns the bounding box of a laser.
func (l *Lasers) Box(s Laser) core.Box {
	return core.NewBox(s.X, s.Y, l.width, l.height)
}

// Shots returns a copy of the lasers in flight.
func (l *Lasers) Shots() []Laser {
	out := make([]Laser, len(l.shots))
	copy(out, l.shots)
	return out
}

// Len returns the number of lasers in flight.
func (l *Lasers) Len() int {
	return len(l.shots)
}

// Clear removes all lasers.
func (l *Lasers) Clear() {
	l.shots = l.shots[:0]
}
