package sim

// Difficulty curves: pure functions of the (preset-adjusted) score.
// Each is a piecewise-linear interpolation over fixed score bands; beyond the
// last band the value is held constant.

type bandPoint struct {
	score float64
	value float64
}

// lerpBands interpolates linearly between band points. Points must be sorted
// by score ascending.
func lerpBands(points []bandPoint, score float64) float64 {
	if score <= points[0].score {
		return points[0].value
	}
	for i := 1; i < len(points); i++ {
		if score <= points[i].score {
			a, b := points[i-1], points[i]
			t := (score - a.score) / (b.score - a.score)
			return a.value + (b.value-a.value)*t
		}
	}
	return points[len(points)-1].value
}

var movementChanceBands = []bandPoint{
	{0, 0.0},
	{15, 0.15},
	{40, 0.35},
	{80, 0.55},
	{150, 0.75},
}

// MovementChance returns the probability that a newly spawned platform moves.
func MovementChance(score int) float64 {
	return lerpBands(movementChanceBands, float64(score))
}

var movementSpeedBands = []bandPoint{
	{0, 1.2},
	{40, 1.8},
	{100, 2.6},
	{150, 3.2},
}

// MovementSpeed returns the horizontal speed of moving platforms in
// world units per second.
func MovementSpeed(score int) float64 {
	return lerpBands(movementSpeedBands, float64(score))
}

var spacingBands = []bandPoint{
	{0, 2.0},
	{30, 2.4},
	{80, 2.8},
	{150, 3.4},
}

// Spacing returns the vertical distance between consecutive platforms.
func Spacing(score int) float64 {
	return lerpBands(spacingBands, float64(score))
}

var gravityDeltaBands = []bandPoint{
	{0, 0.0},
	{50, 2.0},
	{120, 4.0},
	{200, 5.0},
}

// GravityDelta returns the amount subtracted from the base gravity magnitude
// as the score rises. Capped by the last band so gravity never vanishes.
func GravityDelta(score int) float64 {
	return lerpBands(gravityDeltaBands, float64(score))
}

// segmentWeightBands hold the unnormalized weights for platforms of
// 1, 2, 3 and 4 segments at the band's score. The mode shifts toward
// smaller platforms as the score rises, so the expected segment count
// decreases monotonically.
var segmentWeightBands = []struct {
	score   float64
	weights [4]float64
}{
	{0, [4]float64{0.00, 0.00, 0.35, 0.65}},
	{40, [4]float64{0.15, 0.25, 0.30, 0.30}},
	{100, [4]float64{0.40, 0.30, 0.18, 0.12}},
}

// SegmentCountWeights returns the normalized probability of spawning a
// platform with 1..4 segments at the given score.
func SegmentCountWeights(score int) [4]float64 {
	s := float64(score)
	bands := segmentWeightBands

	var w [4]float64
	switch {
	case s <= bands[0].score:
		w = bands[0].weights
	case s >= bands[len(bands)-1].score:
		w = bands[len(bands)-1].weights
	default:
		for i := 1; i < len(bands); i++ {
			if s <= bands[i].score {
				a, b := bands[i-1], bands[i]
				t := (s - a.score) / (b.score - a.score)
				for k := range w {
					w[k] = a.weights[k] + (b.weights[k]-a.weights[k])*t
				}
				break
			}
		}
	}

	var sum float64
	for _, v := range w {
		sum += v
	}
	for k := range w {
		w[k] /= sum
	}
	return w
}

// SampleSegmentCount draws a segment count in 1..4 from the score-dependent
// distribution. draw must be uniform in [0, 1).
func SampleSegmentCount(score int, draw float64) int {
	w := SegmentCountWeights(score)
	acc := 0.0
	for i, p := range w {
		acc += p
		if draw < acc {
			return i + 1
		}
	}
	return len(w)
}
