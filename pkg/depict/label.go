package depict

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const dpi = 72

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

// theFont parses the Go font the first time it is wanted.
func theFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return goFont, fontErr
}

// Element colours, roughly the usual ones. Anything else is dark grey.
var elColour = map[string]color.RGBA{
	"N":  {0x20, 0x30, 0xd0, 0xff},
	"O":  {0xe0, 0x10, 0x10, 0xff},
	"S":  {0xb0, 0x90, 0x00, 0xff},
	"P":  {0xe0, 0x70, 0x00, 0xff},
	"F":  {0x30, 0xa0, 0x30, 0xff},
	"Cl": {0x10, 0xa0, 0x10, 0xff},
	"Br": {0x90, 0x20, 0x20, 0xff},
	"I":  {0x70, 0x00, 0x90, 0xff},
	"H":  {0x60, 0x60, 0x60, 0xff},
}

var defColour = color.RGBA{0x30, 0x30, 0x30, 0xff}

func colourOf(el string) color.RGBA {
	if c, ok := elColour[el]; ok {
		return c
	}
	return defColour
}

// labeller writes element symbols centred on atom positions, on a
// white patch so bonds do not run through the letters.
type labeller struct {
	img  *image.RGBA
	ctx  *freetype.Context
	face font.Face
}

func newLabeller(img *image.RGBA, size float64) (*labeller, error) {
	f, err := theFont()
	if err != nil {
		return nil, err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: dpi})
	return &labeller{img: img, ctx: ctx, face: face}, nil
}

func (l *labeller) draw(s string, at pt) error {
	if s == "" {
		s = "?"
	}
	m := l.face.Metrics()
	w := font.MeasureString(l.face, s)
	origin := at.fix()
	origin.X -= w / 2
	origin.Y += (m.Ascent - m.Descent) / 2

	const pad = 2
	patch := image.Rect(
		origin.X.Floor()-pad, (origin.Y - m.Ascent).Floor()-pad,
		(origin.X + w).Ceil()+pad, (origin.Y + m.Descent).Ceil()+pad)
	draw.Draw(l.img, patch.Intersect(l.img.Bounds()), image.White, image.Point{}, draw.Src)

	l.ctx.SetSrc(image.NewUniform(colourOf(s)))
	_, err := l.ctx.DrawString(s, origin)
	return err
}
