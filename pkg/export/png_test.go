package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/rough"
)

func sketchItems(t *testing.T) []rough.Item {
	t.Helper()
	canvas := rough.New()
	for _, p := range []component.Params{
		{Kind: component.ResistorRectangle, Node1: geom.Pt(100, 300), Node2: geom.Pt(300, 300), Seed: 1},
		{Kind: component.LabelTag, Anchor: geom.Pt(500, 100), Angle: 90, Text: "VCC", Seed: 2},
		{Kind: component.LabelGround, Anchor: geom.Pt(500, 400), Angle: 90, Seed: 3},
	} {
		c, err := component.Build(p)
		if err != nil {
			t.Fatalf("Failed to build %v: %v", p.Kind, err)
		}
		canvas.Append(component.Draw(c, canvas))
	}
	return canvas.Items()
}

func TestPNG(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 400, 300
	opts.Supersample = 2

	var buf bytes.Buffer
	if err := PNG(&buf, sketchItems(t), opts); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("Expected 400x300, got %v", b)
	}

	if r, g, b, _ := img.At(2, 2).RGBA(); r>>8 < 250 || g>>8 < 250 || b>>8 < 250 {
		t.Errorf("Expected white paper in the corner, got %v", img.At(2, 2))
	}

	// the left lead runs along y=150 in the half-size image
	dark := false
	for y := 144; y <= 156; y++ {
		if r, _, _, _ := img.At(62, y).RGBA(); r>>8 < 160 {
			dark = true
		}
	}
	if !dark {
		t.Error("Expected the resistor lead to be painted")
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, err := Render(nil, Options{Width: 0, Height: 10}); err == nil {
		t.Error("Expected an error for an empty image")
	}
}

func TestRenderWithoutSupersampling(t *testing.T) {
	opts := DefaultOptions()
	opts.Supersample = 0
	img, err := Render(sketchItems(t), opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("Expected 800x600, got %v", b)
	}
}

func TestQuarterTurns(t *testing.T) {
	tests := map[float64]int{0: 0, 90: 1, 180: 2, 270: 3, 360: 0, 450: 1, -90: 3, 89: 1}
	for deg, want := range tests {
		if got := quarterTurns(deg); got != want {
			t.Errorf("quarterTurns(%v) = %d, want %d", deg, got, want)
		}
	}
}

func TestRotateQuarter(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	red := color.RGBA{R: 255, A: 255}
	src.SetRGBA(0, 0, red)

	cw := rotateQuarter(src, 1)
	if b := cw.Bounds(); b.Dx() != 1 || b.Dy() != 2 {
		t.Fatalf("Expected 1x2 after a quarter turn, got %v", b)
	}
	if cw.RGBAAt(0, 0) != red {
		t.Error("Expected the left pixel at the top after a clockwise turn")
	}

	half := rotateQuarter(src, 2)
	if half.RGBAAt(1, 0) != red {
		t.Error("Expected the left pixel on the right after a half turn")
	}

	ccw := rotateQuarter(src, 3)
	if ccw.RGBAAt(0, 1) != red {
		t.Error("Expected the left pixel at the bottom after three turns")
	}
}
