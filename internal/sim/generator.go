package sim

import "github.com/vovakirdan/cubefall/internal/core"

// ensureAhead spawns platforms until the live count reaches the lookahead
// target, each at the current nextPlatformY, advancing it by the
// score-dependent spacing.
func (g *Game) ensureAhead() {
	for len(g.platforms) < g.cfg.World.Lookahead {
		g.spawnPlatform()
	}
}

// spawnPlatform creates one platform at a random x that keeps its full width
// (plus movement range, if the platform moves) inside the horizontal view
// bounds. The creation index seeds the movement decision so batch size never
// clusters the pattern.
func (g *Game) spawnPlatform() {
	idx := g.nextIndex
	g.nextIndex++

	score := g.effectiveScore()
	count := SampleSegmentCount(score, g.rng.Float64())
	stride := g.cfg.World.SegmentStride
	halfSpan := (float64(count-1)*stride + 2*segmentHalf) / 2

	moving := indexHash(idx) < MovementChance(score)
	moveRange := g.cfg.World.MovementRange

	limit := g.halfWidth - halfSpan - g.cfg.World.EdgeMargin
	if moving {
		limit -= moveRange
	}
	if limit < 0 {
		// Platform too wide to move inside the view; pin it to the center.
		limit = 0
		moving = false
	}
	x := (g.rng.Float64()*2 - 1) * limit

	dir := 1.0
	if idx%2 == 1 {
		dir = -1
	}

	pl := &Platform{
		Index:   idx,
		X:       x,
		Y:       g.nextPlatformY,
		Moving:  moving,
		Dir:     dir,
		Speed:   MovementSpeed(score),
		Range:   moveRange,
		OriginX: x,
	}

	colorBase := g.rng.Intn(len(core.PlatformPalette))
	for i := 0; i < count; i++ {
		pl.Segments = append(pl.Segments, Segment{
			Offset: (float64(i) - float64(count-1)/2) * stride,
			Y:      pl.Y,
			Color:  core.PlatformPalette[(colorBase+i)%len(core.PlatformPalette)],
		})
	}

	g.platforms = append(g.platforms, pl)
	g.nextPlatformY += Spacing(score)
}

// spawnStartPlatform creates the canonical starting platform centered at the
// origin. It still consumes a creation index: indices are never reused.
func (g *Game) spawnStartPlatform() {
	idx := g.nextIndex
	g.nextIndex++

	count := g.cfg.World.StartSegments
	stride := g.cfg.World.SegmentStride

	pl := &Platform{
		Index: idx,
		X:     0,
		Y:     0,
		Dir:   1,
	}
	for i := 0; i < count; i++ {
		pl.Segments = append(pl.Segments, Segment{
			Offset: (float64(i) - float64(count-1)/2) * stride,
			Y:      0,
			Color:  core.PlatformPalette[i%len(core.PlatformPalette)],
		})
	}
	g.platforms = append(g.platforms, pl)
}

// pruneBehind removes platforms that fell more than the prune margin below
// the player and notifies the adapter so it can release render resources.
func (g *Game) pruneBehind() {
	cutoff := g.player.Pos.Y - g.cfg.World.PruneMargin
	kept := g.platforms[:0]
	for _, pl := range g.platforms {
		if pl.Y < cutoff {
			g.emit(Event{Kind: EventPlatformRemoved, PlatformIndex: pl.Index})
			continue
		}
		kept = append(kept, pl)
	}
	g.platforms = kept
}
