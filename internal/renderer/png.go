package renderer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// PNGRenderer handles PNG generation
type PNGRenderer struct {
	img     *image.RGBA
	raster  *vector.Rasterizer
	size    int
	ink     color.Color
	options RenderOptions
}

// NewPNGRenderer creates a new PNG renderer
func NewPNGRenderer(opts RenderOptions) *PNGRenderer {
	opts = opts.withDefaults()
	return &PNGRenderer{
		size:    opts.pixelSize(),
		ink:     parseColor(opts.Color),
		options: opts,
	}
}

// Render draws the scene and returns the encoded PNG
func (r *PNGRenderer) Render(scene Scene) ([]byte, error) {
	if r.size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d px", r.size)
	}

	r.img = image.NewRGBA(image.Rect(0, 0, r.size, r.size))
	r.raster = vector.NewRasterizer(r.size, r.size)

	if r.options.Opaque {
		draw.Draw(r.img, r.img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	}

	// About one polygon edge per two pixels of circumference
	for _, ring := range ringsFor(scene.Style, r.options.unitsPerPoint()) {
		segments := int(math.Ceil(math.Pi * ring.Radius * float64(r.size)))
		if segments < 64 {
			segments = 64
		}
		r.fill(ring.contours(segments))
	}

	em := annotationFontSize * r.options.unitsPerPoint()
	r.fill(glyphContours(scene.Finiteness, em))

	if scene.Caption != "" {
		r.drawCaption(scene.Caption)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, r.img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return withPhysicalSize(buf.Bytes(), r.options.DPI), nil
}

// fill rasterizes the contours as one path and composites the ink over the
// canvas.
func (r *PNGRenderer) fill(contours []Contour) {
	if len(contours) == 0 {
		return
	}

	r.raster.Reset(r.size, r.size)
	r.raster.DrawOp = draw.Over

	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		x, y := r.toPixel(c[0])
		r.raster.MoveTo(x, y)
		for _, p := range c[1:] {
			x, y = r.toPixel(p)
			r.raster.LineTo(x, y)
		}
		r.raster.ClosePath()
	}

	r.raster.Draw(r.img, r.img.Bounds(), image.NewUniform(r.ink), image.Point{})
}

// toPixel maps unit-square coordinates (y up) onto the canvas (y down)
func (r *PNGRenderer) toPixel(p Point) (float32, float32) {
	s := float64(r.size)
	return float32(p.X * s), float32((1 - p.Y) * s)
}

// drawCaption draws text centred under the rings. The bitmap face is drawn at
// its native size and scaled up so it stays legible at print resolution.
func (r *PNGRenderer) drawCaption(text string) {
	face := basicfont.Face7x13

	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	h := face.Height
	if w == 0 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = small
	d.Src = image.NewUniform(r.ink)
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(text)

	scale := r.size / 300
	if scale < 1 {
		scale = 1
	}

	cx := r.size / 2
	cy := int((1 - captionY) * float64(r.size))
	dst := image.Rect(cx-w*scale/2, cy-h*scale/2, cx+w*scale-w*scale/2, cy+h*scale-h*scale/2)

	xdraw.NearestNeighbor.Scale(r.img, dst, small, small.Bounds(), xdraw.Over, nil)
}

// withPhysicalSize inserts a pHYs chunk after IHDR so viewers and printers
// pick up the intended DPI.
func withPhysicalSize(data []byte, dpi int) []byte {
	const ihdrEnd = 8 + 4 + 4 + 13 + 4 // signature + IHDR length, type, body, crc

	if dpi <= 0 || len(data) < ihdrEnd || string(data[12:16]) != "IHDR" {
		return data
	}

	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, data[ihdrEnd:]...)
	return out
}

// parseColor parses a hex color string
func parseColor(hexColor string) color.Color {
	hexColor = strings.TrimPrefix(hexColor, "#")

	var r, g, b uint8
	if len(hexColor) == 6 {
		fmt.Sscanf(hexColor, "%02x%02x%02x", &r, &g, &b)
	}

	return color.RGBA{r, g, b, 255}
}
