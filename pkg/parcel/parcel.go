// Package parcel describes the plot a project is built on as a surveyed
// polygon, in metres.
package parcel

import "math"

// Point is a surveyed corner of the parcel.
type Point struct {
	X float64 `yaml:"x" toml:"x" json:"x"`
	Y float64 `yaml:"y" toml:"y" json:"y"`
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Polygon is a closed parcel outline given by its corners in order.
type Polygon struct {
	Corners []Point
}

// New creates a polygon from a list of corners.
func New(pts ...Point) Polygon {
	return Polygon{Corners: pts}
}

// IsEmpty returns true if the polygon has fewer than 3 corners.
func (p Polygon) IsEmpty() bool {
	return len(p.Corners) < 3
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Corners)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Corners[i].X * p.Corners[j].Y
		area -= p.Corners[j].X * p.Corners[i].Y
	}
	return area / 2
}

// Area returns the unsigned area in m².
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Perimeter returns the total boundary length in metres.
func (p Polygon) Perimeter() float64 {
	n := len(p.Corners)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += p.Corners[i].Distance(p.Corners[(i+1)%n])
	}
	return total
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point, Point) {
	if len(p.Corners) == 0 {
		return Point{}, Point{}
	}
	minP, maxP := p.Corners[0], p.Corners[0]
	for _, c := range p.Corners[1:] {
		minP.X = math.Min(minP.X, c.X)
		minP.Y = math.Min(minP.Y, c.Y)
		maxP.X = math.Max(maxP.X, c.X)
		maxP.Y = math.Max(maxP.Y, c.Y)
	}
	return minP, maxP
}

// Dimensions returns the width and depth of the bounding box.
func (p Polygon) Dimensions() (width, depth float64) {
	minP, maxP := p.BoundingBox()
	return maxP.X - minP.X, maxP.Y - minP.Y
}

// Rectangle builds the outline of a width × depth plot anchored at the origin.
func Rectangle(width, depth float64) Polygon {
	return New(Point{0, 0}, Point{width, 0}, Point{width, depth}, Point{0, depth})
}
