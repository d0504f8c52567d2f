package renderer

import (
	"math"

	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// All geometry lives in the unit square with the origin bottom-left and y up.
const (
	annotationX        = 0.8
	annotationY        = 0.5
	annotationFontSize = 15.0 // points

	// Dotted rings use an on/off pattern scaled by the line width.
	dotOn  = 1.0
	dotOff = 1.65

	captionY = 0.18
)

var center = Point{X: 0.5, Y: 0.5}

// Point is a position in unit-square coordinates.
type Point struct {
	X, Y float64
}

// Contour is a closed polygon. Holes are expressed by an inner contour wound
// the opposite way of its outer contour.
type Contour []Point

// Ring is one circle to stroke, with its width already converted to unit
// coordinates.
type Ring struct {
	Radius float64
	Width  float64
	Dotted bool
}

// ringsFor expands a style into the rings to draw, outermost first.
// unitsPerPoint converts a line width in points into unit coordinates.
func ringsFor(style symbol.StyleDescriptor, unitsPerPoint float64) []Ring {
	width := style.LineWidth * unitsPerPoint
	radii := style.Radii()

	rings := make([]Ring, 0, len(radii))
	for _, r := range radii {
		rings = append(rings, Ring{
			Radius: r,
			Width:  width,
			Dotted: style.RingStyle == symbol.RingDotted,
		})
	}
	return rings
}

// dashes returns the angular intervals of the visible dots of a dotted ring.
// The dot count is rounded so the pattern closes evenly around the circle.
func (r Ring) dashes() [][2]float64 {
	if !r.Dotted {
		return nil
	}

	period := (dotOn + dotOff) * r.Width
	n := int(math.Round(2 * math.Pi * r.Radius / period))
	if n < 1 {
		n = 1
	}

	step := 2 * math.Pi / float64(n)
	on := step * dotOn / (dotOn + dotOff)

	// Dots are centred on multiples of step, so one always sits at angle 0
	out := make([][2]float64, n)
	for i := range out {
		a0 := float64(i)*step - on/2
		out[i] = [2]float64{a0, a0 + on}
	}
	return out
}

// contours returns the filled outline of the ring. segments is the number of
// polygon edges used for a full circle.
func (r Ring) contours(segments int) []Contour {
	outer := r.Radius + r.Width/2
	inner := r.Radius - r.Width/2

	if !r.Dotted {
		return []Contour{
			arc(center, outer, 0, 2*math.Pi, segments, false),
			arc(center, inner, 2*math.Pi, 0, segments, false),
		}
	}

	var out []Contour
	for _, d := range r.dashes() {
		steps := int(math.Ceil(float64(segments)*(d[1]-d[0])/(2*math.Pi))) + 1
		c := arc(center, outer, d[0], d[1], steps, true)
		c = append(c, arc(center, inner, d[1], d[0], steps, true)...)
		out = append(out, c)
	}
	return out
}

// arc samples a circular arc from a0 to a1. Closed arcs drop the final point
// since it repeats the first.
func arc(c Point, radius, a0, a1 float64, steps int, includeEnd bool) Contour {
	if steps < 1 {
		steps = 1
	}
	n := steps
	if includeEnd {
		n++
	}

	pts := make(Contour, 0, n)
	for i := 0; i < n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		pts = append(pts, Point{X: c.X + radius*math.Cos(a), Y: c.Y + radius*math.Sin(a)})
	}
	return pts
}

// glyphContours returns the annotation mark for a finiteness class, centred
// on the annotation anchor. em is the glyph size in unit coordinates.
func glyphContours(f symbol.Finiteness, em float64) []Contour {
	anchor := Point{X: annotationX, Y: annotationY}

	switch f {
	case symbol.FinitenessInfinite:
		return triangleGlyph(anchor, em)
	case symbol.FinitenessFinite:
		return teeGlyph(anchor, em)
	default:
		return nil
	}
}

// triangleGlyph is a hollow equilateral triangle.
func triangleGlyph(c Point, em float64) []Contour {
	side := 0.8 * em
	height := side * math.Sqrt(3) / 2
	stroke := 0.09 * em

	bl := Point{X: c.X - side/2, Y: c.Y - height/2}
	br := Point{X: c.X + side/2, Y: c.Y - height/2}
	apex := Point{X: c.X, Y: c.Y + height/2}

	// Inset about the centroid by the stroke width
	g := Point{X: c.X, Y: bl.Y + height/3}
	inradius := height / 3
	k := (inradius - stroke) / inradius
	inset := func(p Point) Point {
		return Point{X: g.X + k*(p.X-g.X), Y: g.Y + k*(p.Y-g.Y)}
	}

	return []Contour{
		{bl, br, apex},
		{inset(apex), inset(br), inset(bl)},
	}
}

// teeGlyph is a flat bar on a short stem.
func teeGlyph(c Point, em float64) []Contour {
	w := 0.62 * em
	h := 0.72 * em
	bar := 0.1 * em
	stem := 0.1 * em

	y0 := c.Y - h/2
	y1 := c.Y + h/2

	return []Contour{{
		{X: c.X - stem/2, Y: y0},
		{X: c.X + stem/2, Y: y0},
		{X: c.X + stem/2, Y: y1 - bar},
		{X: c.X + w/2, Y: y1 - bar},
		{X: c.X + w/2, Y: y1},
		{X: c.X - w/2, Y: y1},
		{X: c.X - w/2, Y: y1 - bar},
		{X: c.X - stem/2, Y: y1 - bar},
	}}
}
