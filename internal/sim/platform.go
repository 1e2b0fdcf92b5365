package sim

import "github.com/vovakirdan/cubefall/internal/core"

// Segment dimensions: every landable cube is a 1x1 axis-aligned box
// centered on the segment position.
const segmentHalf = 0.5

// Segment is the smallest collidable unit. Platforms are rows of 1..4
// segments; offsets and count are fixed at creation and never change.
type Segment struct {
	Offset  float64    // x offset from the platform center, fixed at spawn
	Y       float64    // world y; diverges from the platform once falling
	Hit     bool       // set on the first landing, permanent for the segment's lifetime
	Falling bool       // fall-away started
	FallVel float64    // downward fall speed, grows under segment gravity
	Color   core.Color // palette entry assigned at spawn
}

// Platform is a horizontal row of segments sharing one movement descriptor.
type Platform struct {
	Index    uint64 // creation index, strictly increasing, never reused
	X, Y     float64
	Segments []Segment

	// Movement descriptor, decided at spawn from the hashed creation index.
	Moving  bool
	Dir     float64 // -1 or +1
	Speed   float64
	Range   float64
	OriginX float64
}

// SegmentX returns the world x of segment i. Invariant: segment world-x is
// always the platform center plus the fixed offset, even while falling.
func (p *Platform) SegmentX(i int) float64 {
	return p.X + p.Segments[i].Offset
}

// step advances platform movement and fall-away segments by one tick.
func (p *Platform) step(dt, segmentGravity float64) {
	if p.Moving {
		p.X += p.Dir * p.Speed * dt
		if p.X >= p.OriginX+p.Range {
			p.X = p.OriginX + p.Range
			p.Dir = -1
		} else if p.X <= p.OriginX-p.Range {
			p.X = p.OriginX - p.Range
			p.Dir = 1
		}
	}

	for i := range p.Segments {
		seg := &p.Segments[i]
		if seg.Falling {
			seg.FallVel += segmentGravity * dt
			seg.Y -= seg.FallVel * dt
		}
	}
}
