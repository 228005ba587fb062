package gamemap

import (
	"math"

	"codeberg.org/anaseto/gruid"
)

// Point is a tile coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// DistanceSq returns the squared Euclidean distance between p and q.
func (p Point) DistanceSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.DistanceSq(q)))
}

func (p Point) grid() gruid.Point { return gruid.Point{X: p.X, Y: p.Y} }

func fromGrid(p gruid.Point) Point { return Point{X: p.X, Y: p.Y} }
