// 9 Oct 2026

package depict

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"

	"github.com/andrew-torda/molfile/pkg/mol"
)

// ErrNoAtoms means there is nothing to draw.
var ErrNoAtoms = errors.New("no atoms to draw")

// Options controls the picture. Sizes are in pixels, FontSize in points
// at 72 dpi, so also pixels.
type Options struct {
	Width, Height int
	Margin        int
	FontSize      float64
	LineWidth     float64
	HideHydrogen  bool
}

// DefaultOptions fills in any field left at zero, except Margin, where
// zero means no margin. A margin that leaves no room is replaced.
var DefaultOptions = Options{
	Width:     400,
	Height:    400,
	Margin:    30,
	FontSize:  14,
	LineWidth: 2,
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	if o.Margin < 0 || 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
		o.Margin = DefaultOptions.Margin
		if 2*o.Margin >= o.Width || 2*o.Margin >= o.Height {
			o.Margin = 0
		}
	}
	if o.FontSize <= 0 {
		o.FontSize = DefaultOptions.FontSize
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultOptions.LineWidth
	}
	return o
}

type pt struct{ x, y float64 }

func (p pt) fix() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.x * 64), Y: fixed.Int26_6(p.y * 64)}
}

// canvas is an image plus the rasteriser we stroke bonds with.
type canvas struct {
	img     *image.RGBA
	r       *raster.Rasterizer
	painter *raster.RGBAPainter
	width   fixed.Int26_6
}

func newCanvas(o Options) *canvas {
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	r := raster.NewRasterizer(o.Width, o.Height)
	r.UseNonZeroWinding = true
	return &canvas{
		img:     img,
		r:       r,
		painter: raster.NewRGBAPainter(img),
		width:   fixed.Int26_6(o.LineWidth * 64),
	}
}

// line strokes a to b. If dashed, it is broken into short pieces.
func (c *canvas) line(a, b pt, col color.Color, dashed bool) {
	c.r.Clear()
	if !dashed {
		c.stroke(a, b)
	} else {
		const nDash = 7
		dx, dy := (b.x-a.x)/nDash, (b.y-a.y)/nDash
		for i := 0; i < nDash; i += 2 {
			s := pt{a.x + float64(i)*dx, a.y + float64(i)*dy}
			c.stroke(s, pt{s.x + dx, s.y + dy})
		}
	}
	c.painter.SetColor(col)
	c.r.Rasterize(c.painter)
}

func (c *canvas) stroke(a, b pt) {
	var p raster.Path
	p.Start(a.fix())
	p.Add1(b.fix())
	raster.Stroke(c.r, p, c.width, raster.RoundCapper, raster.RoundJoiner)
}

// layout maps molecule x, y to pixels. y goes up in the file and down
// in the picture.
type layout struct {
	scale, minx, miny, offx, offy float64
	height                        float64
}

func newLayout(xyz []mol.Xyz, show []bool, o Options) layout {
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	for i, r := range xyz {
		if !show[i] {
			continue
		}
		minx, maxx = math.Min(minx, float64(r.X)), math.Max(maxx, float64(r.X))
		miny, maxy = math.Min(miny, float64(r.Y)), math.Max(maxy, float64(r.Y))
	}
	w := float64(o.Width - 2*o.Margin)
	h := float64(o.Height - 2*o.Margin)
	dx, dy := maxx-minx, maxy-miny
	scale := math.Inf(1)
	if dx > 0 {
		scale = w / dx
	}
	if dy > 0 {
		scale = math.Min(scale, h/dy)
	}
	if math.IsInf(scale, 1) { // one atom, or all on one spot
		scale = 1
	}
	return layout{
		scale:  scale,
		minx:   minx,
		miny:   miny,
		offx:   float64(o.Margin) + (w-dx*scale)/2,
		offy:   float64(o.Margin) + (h-dy*scale)/2,
		height: float64(o.Height),
	}
}

func (l layout) place(r mol.Xyz) pt {
	return pt{
		x: l.offx + (float64(r.X)-l.minx)*l.scale,
		y: l.height - (l.offy + (float64(r.Y)-l.miny)*l.scale),
	}
}

// Render draws doc. Coordinates that are not numbers are an error.
func Render(doc *mol.Document, o Options) (*image.RGBA, error) {
	o = o.withDefaults()
	xyz := make([]mol.Xyz, len(doc.Atoms))
	show := make([]bool, len(doc.Atoms))
	nShow := 0
	for i, a := range doc.Atoms {
		var err error
		if xyz[i], err = a.Position.Xyz(); err != nil {
			return nil, err
		}
		show[i] = !(o.HideHydrogen && a.Element == "H")
		if show[i] {
			nShow++
		}
	}
	if nShow == 0 {
		return nil, ErrNoAtoms
	}
	lay := newLayout(xyz, show, o)
	pix := make([]pt, len(xyz))
	for i, r := range xyz {
		pix[i] = lay.place(r)
	}

	c := newCanvas(o)
	gap := 1.5*o.LineWidth + 1
	bonded := make([]bool, len(doc.Atoms))
	for _, b := range doc.Bonds {
		i, j := b.Atom1()-1, b.Atom2()-1
		if !show[i] || !show[j] {
			continue
		}
		bonded[i], bonded[j] = true, true
		drawBond(c, pix[i], pix[j], b.Type(), gap)
	}

	lbl, err := newLabeller(c.img, o.FontSize)
	if err != nil {
		return nil, err
	}
	for i, a := range doc.Atoms {
		if !show[i] || (a.Element == "C" && bonded[i]) {
			continue
		}
		if err := lbl.draw(a.Element, pix[i]); err != nil {
			return nil, err
		}
	}
	return c.img, nil
}

// drawBond draws one, two or three strokes, offset at right angles to
// the bond.
func drawBond(c *canvas, a, b pt, t mol.BondType, gap float64) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*gap, dx/l*gap // normal, gap long
	off := func(f float64) (pt, pt) {
		return pt{a.x + f*nx, a.y + f*ny}, pt{b.x + f*nx, b.y + f*ny}
	}
	ink := color.Black
	switch t {
	case mol.Single:
		c.line(a, b, ink, false)
	case mol.Double:
		p, q := off(0.5)
		c.line(p, q, ink, false)
		p, q = off(-0.5)
		c.line(p, q, ink, false)
	case mol.Triple:
		c.line(a, b, ink, false)
		p, q := off(1)
		c.line(p, q, ink, false)
		p, q = off(-1)
		c.line(p, q, ink, false)
	case mol.Aromatic:
		c.line(a, b, ink, false)
		p, q := off(1)
		c.line(p, q, ink, true)
	default: // query bonds and codes we do not know
		c.line(a, b, ink, true)
	}
}

// WritePNG renders doc and writes it to w as a png.
func WritePNG(w io.Writer, doc *mol.Document, o Options) error {
	img, err := Render(doc, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
