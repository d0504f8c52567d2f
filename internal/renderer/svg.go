package renderer

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"
)

// SVGRenderer handles SVG generation
type SVGRenderer struct {
	buf     *bytes.Buffer
	options RenderOptions
}

// NewSVGRenderer creates a new SVG renderer
func NewSVGRenderer(opts RenderOptions) *SVGRenderer {
	return &SVGRenderer{
		buf:     &bytes.Buffer{},
		options: opts.withDefaults(),
	}
}

// Render generates SVG for the scene. The view box is the unit square so all
// geometry is written in the same coordinates the PNG renderer uses.
func (r *SVGRenderer) Render(scene Scene) ([]byte, error) {
	r.buf.Reset()
	r.writeHeader(r.options.pixelSize())

	for _, ring := range ringsFor(scene.Style, r.options.unitsPerPoint()) {
		r.writeRing(ring)
	}

	em := annotationFontSize * r.options.unitsPerPoint()
	r.writeContours(glyphContours(scene.Finiteness, em))

	if scene.Caption != "" {
		r.writeCaption(scene.Caption, em)
	}

	r.buf.WriteString("</svg>\n")

	return r.buf.Bytes(), nil
}

// writeHeader writes the SVG header
func (r *SVGRenderer) writeHeader(size int) {
	r.buf.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 1 1">
`, size, size))

	if r.options.Opaque {
		r.buf.WriteString(`<rect width="1" height="1" fill="white"/>
`)
	}
}

// writeRing writes one circle, dashed when the ring is dotted
func (r *SVGRenderer) writeRing(ring Ring) {
	dash := ""
	if d := ring.dashes(); len(d) > 0 {
		on := (d[0][1] - d[0][0]) * ring.Radius
		off := 2*math.Pi*ring.Radius/float64(len(d)) - on
		// Shift by half a dot so one is centred at angle 0, as in the PNG
		dash = fmt.Sprintf(` stroke-dasharray="%.6f %.6f" stroke-dashoffset="%.6f"`, on, off, on/2)
	}

	r.buf.WriteString(fmt.Sprintf(`<circle cx="%.4f" cy="%.4f" r="%.6f" fill="none" stroke="%s" stroke-width="%.6f"%s/>
`, center.X, 1-center.Y, ring.Radius, html.EscapeString(r.options.Color), ring.Width, dash))
}

// writeContours writes filled contours as a single path
func (r *SVGRenderer) writeContours(contours []Contour) {
	if len(contours) == 0 {
		return
	}

	var d strings.Builder
	for _, c := range contours {
		for i, p := range c {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&d, "%s %.6f,%.6f ", cmd, p.X, 1-p.Y)
		}
		d.WriteString("Z ")
	}

	r.buf.WriteString(fmt.Sprintf(`<path d="%s" fill="%s" fill-rule="evenodd"/>
`, strings.TrimSpace(d.String()), html.EscapeString(r.options.Color)))
}

// writeCaption writes the code under the rings
func (r *SVGRenderer) writeCaption(text string, em float64) {
	r.buf.WriteString(fmt.Sprintf(`<text x="%.4f" y="%.4f" font-family="monospace" font-size="%.6f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>
`, center.X, 1-captionY, em, html.EscapeString(r.options.Color), html.EscapeString(text)))
}
