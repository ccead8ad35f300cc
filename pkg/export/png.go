// Package export paints flattened sketch items into raster images.
//
// Items are drawn at Supersample times the output size with
// golang.org/x/image/vector and downsampled with Catmull-Rom, which gives
// smooth edges without an antialiasing pass of our own.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/viewport"
)

// Options configures PNG rendering.
type Options struct {
	Width       int
	Height      int
	Supersample int
	Background  color.NRGBA
}

// DefaultOptions renders the design space at 1:1 on white paper.
func DefaultOptions() Options {
	return Options{
		Width:       int(viewport.DesignWidth),
		Height:      int(viewport.DesignHeight),
		Supersample: 4,
		Background:  color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// PNG renders items and encodes the result to w.
func PNG(w io.Writer, items []rough.Item, opts Options) error {
	img, err := Render(items, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

// Render paints items into an image of opts.Width x opts.Height. The design
// space is fitted into the image keeping its aspect ratio.
func Render(items []rough.Item, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", opts.Width, opts.Height)
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	large := image.NewRGBA(image.Rect(0, 0, opts.Width*ss, opts.Height*ss))
	draw.Draw(large, large.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx, err := newPainter(large)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		ctx.paint(it)
	}

	if ss == 1 {
		return large, nil
	}
	final := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Src, nil)
	return final, nil
}

// painter holds the target image and the canvas-to-pixel mapping.
type painter struct {
	img  *image.RGBA
	vp   *viewport.Viewport
	font *opentype.Font
	// faces by pixel size
	faces map[float64]font.Face
	r     *vector.Rasterizer
}

func newPainter(img *image.RGBA) (*painter, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: parse font: %w", err)
	}
	b := img.Bounds()
	vp := viewport.New()
	vp.Fit(float64(b.Dx()), float64(b.Dy()))
	return &painter{
		img:   img,
		vp:    vp,
		font:  fnt,
		faces: make(map[float64]font.Face),
		r:     vector.NewRasterizer(0, 0),
	}, nil
}

func (p *painter) paint(it rough.Item) {
	switch it.Kind {
	case rough.ItemStroke:
		p.stroke(it.Points, p.vp.Length(it.Width), it.Color)
	case rough.ItemFill:
		p.fill(it.Points, it.Color)
	case rough.ItemText:
		p.text(it)
	}
}

func (p *painter) screen(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, q := range pts {
		x, y := p.vp.CanvasToScreen(q)
		out[i] = geom.Pt(x, y)
	}
	return out
}

// fill paints a closed polygon given in canvas coordinates.
func (p *painter) fill(pts []geom.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	p.polygons([][]geom.Point{p.screen(pts)}, c)
}

// stroke paints a polyline of the given pixel width. Every segment becomes
// a quad extended by half the width at both ends so joints stay closed.
func (p *painter) stroke(pts []geom.Point, width float64, c color.NRGBA) {
	if len(pts) < 2 {
		return
	}
	if width < 1 {
		width = 1
	}
	hw := width / 2
	sp := p.screen(pts)
	quads := make([][]geom.Point, 0, len(sp)-1)
	for i := 1; i < len(sp); i++ {
		a, b := sp[i-1], sp[i]
		d := geom.Distance(a, b)
		if d == 0 {
			continue
		}
		u := b.Sub(a).Scale(hw / d)
		n := geom.Pt(-u.Y, u.X)
		a, b = a.Sub(u), b.Add(u)
		quads = append(quads, []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	p.polygons(quads, c)
}

// polygons rasterizes the union of polys in one pass. The rasterizer is
// sized to their bounding box so large images stay cheap.
func (p *painter) polygons(polys [][]geom.Point, c color.NRGBA) {
	box := geom.EmptyBBox()
	for _, poly := range polys {
		for _, q := range poly {
			box.Expand(q)
		}
	}
	if box.IsEmpty() {
		return
	}
	rect := image.Rect(
		int(math.Floor(box.MinX)), int(math.Floor(box.MinY)),
		int(math.Ceil(box.MaxX))+1, int(math.Ceil(box.MaxY))+1,
	).Intersect(p.img.Bounds())
	if rect.Empty() {
		return
	}
	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)

	p.r.Reset(rect.Dx(), rect.Dy())
	p.r.DrawOp = draw.Over
	for _, poly := range polys {
		p.r.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, q := range poly[1:] {
			p.r.LineTo(float32(q.X)-ox, float32(q.Y)-oy)
		}
		p.r.ClosePath()
	}
	p.r.Draw(p.img, rect, image.NewUniform(c), image.Point{})
}

func (p *painter) face(px float64) font.Face {
	if f, ok := p.faces[px]; ok {
		return f
	}
	f, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	p.faces[px] = f
	return f
}

// text draws a run centred on its anchor. Text is only ever rotated by
// quarter turns, so the run is drawn upright into a scratch image and copied
// rotated.
func (p *painter) text(it rough.Item) {
	if it.Text == "" {
		return
	}
	face := p.face(math.Max(1, p.vp.Length(it.FontSize)))
	if face == nil {
		return
	}
	m := face.Metrics()
	width := font.MeasureString(face, it.Text).Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return
	}

	run := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  run,
		Src:  image.NewUniform(it.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(it.Text)

	turns := quarterTurns(it.Angle)
	rotated := rotateQuarter(run, turns)
	cx, cy := p.vp.CanvasToScreen(it.At)
	rb := rotated.Bounds()
	at := image.Pt(int(math.Round(cx))-rb.Dx()/2, int(math.Round(cy))-rb.Dy()/2)
	draw.Draw(p.img, rb.Add(at), rotated, image.Point{}, draw.Over)
}

// quarterTurns rounds a clockwise angle in degrees to a count of 90 degree
// turns in [0, 4).
func quarterTurns(deg float64) int {
	return int(math.Round(geom.NormalizeAngle(deg)/90)) % 4
}

// rotateQuarter returns src rotated clockwise by turns quarter turns, in
// screen orientation (y down).
func rotateQuarter(src *image.RGBA, turns int) *image.RGBA {
	if turns == 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	var dst *image.RGBA
	if turns%2 == 1 {
		dst = image.NewRGBA(image.Rect(0, 0, h, w))
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			switch turns {
			case 1:
				dst.SetRGBA(h-1-y, x, c)
			case 2:
				dst.SetRGBA(w-1-x, h-1-y, c)
			case 3:
				dst.SetRGBA(y, w-1-x, c)
			}
		}
	}
	return dst
}
