package utils

import "math"

// CirclePoints returns a closed polyline approximating the circle of radius r
// centred at (cx, cy). The first point is repeated at the end. segments below
// 3 are raised to 3.
func CirclePoints(cx, cy, r float64, segments int) [][2]float64 {
	if segments < 3 {
		segments = 3
	}
	pts := make([][2]float64, 0, segments+1)
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		a := float64(i) * step
		pts = append(pts, [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return append(pts, pts[0])
}
