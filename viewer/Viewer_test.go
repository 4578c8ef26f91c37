package viewer

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	env "github.com/samuelfneumann/gobark/environment"
)

func TestRender(t *testing.T) {
	h := env.DefaultHighway()
	w, _, err := h.Create(mat.NewVecDense(2, []float64{10, 4}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	opts := DefaultOptions()
	path := filepath.Join(t.TempDir(), "world.png")
	if err := Render(w, env.EgoID, path, opts); err != nil {
		t.Fatalf("render: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	wantW := int(h.Length*opts.Scale + 2*opts.Margin)
	wantH := int(float64(h.NumLanes)*h.LaneWidth*opts.Scale + 2*opts.Margin)
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("want %vx%v image, got %vx%v", wantW, wantH, b.Dx(), b.Dy())
	}

	// The ego is drawn at x=10 in lane 0 (y=2)
	px := int(10*opts.Scale + opts.Margin)
	py := int((8-2)*opts.Scale + opts.Margin)
	if got := color.RGBAModel.Convert(img.At(px, py)); got != opts.Ego {
		t.Errorf("want ego colour at (%v, %v), got %v", px, py, got)
	}

	// The margin is left blank
	if got := color.RGBAModel.Convert(img.At(1, 1)); got != (color.RGBA{
		0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("want white margin, got %v", got)
	}
}

func TestDrawErrors(t *testing.T) {
	w, _, err := env.DefaultHighway().Create(mat.NewVecDense(2,
		[]float64{10, 4}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := Draw(w, 99, DefaultOptions()); err == nil {
		t.Error("expected error for missing ego")
	}
	opts := DefaultOptions()
	opts.Scale = 0
	if _, err := Draw(w, env.EgoID, opts); err == nil {
		t.Error("expected error for zero scale")
	}
}
