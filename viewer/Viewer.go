// Package viewer renders kinematic worlds to images
package viewer

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world/evaluation"
	"github.com/samuelfneumann/gobark/world/kinematic"
)

// Options configures how a world is drawn
type Options struct {
	// Scale is the number of pixels per metre
	Scale float64

	// Margin is the border around the drivable area, in pixels
	Margin float64

	Road, Lane, Goal, Ego, Other color.Color
}

// DefaultOptions returns the default drawing options
func DefaultOptions() Options {
	return Options{
		Scale:  5,
		Margin: 10,
		Road:   color.RGBA{0x50, 0x50, 0x50, 0xff},
		Lane:   color.RGBA{0xee, 0xee, 0xee, 0xff},
		Goal:   color.RGBA{0x2e, 0xcc, 0x71, 0x80},
		Ego:    color.RGBA{0x34, 0x98, 0xdb, 0xff},
		Other:  color.RGBA{0xe7, 0x4c, 0x3c, 0xff},
	}
}

// frame maps world coordinates to pixel coordinates. The y axis is
// flipped so that the image shows the world from above.
type frame struct {
	minX, maxY float64
	scale      float64
	margin     float64
}

func (f frame) pixel(p geometry.Point) (float64, float64) {
	return (p.X-f.minX)*f.scale + f.margin, (f.maxY-p.Y)*f.scale + f.margin
}

// Draw draws w as seen from above, with the goal of the ego agent and
// all lane centerlines
func Draw(w *kinematic.World, egoID int, opts Options) (image.Image, error) {
	if opts.Scale <= 0 {
		return nil, errors.New("draw: scale must be positive")
	}
	ego := w.Agent(egoID)
	if ego == nil {
		return nil, errors.New("draw: no ego agent")
	}

	drivable := w.DrivableArea()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range drivable.Vertices() {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	f := frame{minX: minX, maxY: maxY, scale: opts.Scale, margin: opts.Margin}

	width := int(math.Ceil((maxX-minX)*opts.Scale + 2*opts.Margin))
	height := int(math.Ceil((maxY-minY)*opts.Scale + 2*opts.Margin))
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	fillPolygon(dc, f, drivable, opts.Road)
	fillPolygon(dc, f, ego.GoalDefinition(), opts.Goal)

	// Lane centerlines
	dc.SetColor(opts.Lane)
	dc.SetLineWidth(1)
	dc.SetDash(2*opts.Scale, 2*opts.Scale)
	for _, a := range w.Agents() {
		for _, lane := range a.RoadCorridor().LaneCorridors() {
			dc.ClearPath()
			for _, p := range lane.CenterLine().Points() {
				dc.LineTo(f.pixel(p))
			}
			dc.Stroke()
		}
	}
	dc.SetDash()

	for _, a := range w.Agents() {
		c := opts.Other
		if a == ego {
			c = opts.Ego
		}
		fillPolygon(dc, f, evaluation.Footprint(a), c)
	}

	return dc.Image(), nil
}

// Render draws w and saves it as a PNG image to path
func Render(w *kinematic.World, egoID int, path string, opts Options) error {
	img, err := Draw(w, egoID, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func fillPolygon(dc *gg.Context, f frame, p geometry.Polygon, c color.Color) {
	dc.ClearPath()
	for _, v := range p.Vertices() {
		dc.LineTo(f.pixel(v))
	}
	dc.ClosePath()
	dc.SetColor(c)
	dc.Fill()
}
