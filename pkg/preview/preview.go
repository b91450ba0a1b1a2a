// Package preview renders gradient designs to images.
//
// Mesh designs go through the mesh rasterizer; linear, radial and conic
// designs are sampled per pixel with CSS geometry. The result can carry
// node handles for mesh editing, be rendered at reduced resolution for
// interactive use, and be encoded as PNG.
package preview

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/mesh"
)

// Default preview size, matching the canvas the mesh falloff was tuned for.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
)

type config struct {
	handles bool
	draft   int
	workers int
}

// Option configures Render.
type Option func(*config)

// WithHandles draws a ring at every mesh node. It has no effect on other
// gradient kinds.
func WithHandles() Option {
	return func(c *config) { c.handles = true }
}

// WithDraft renders at 1/factor of the requested size and scales the
// result up. Factors below 2 disable draft mode.
func WithDraft(factor int) Option {
	return func(c *config) { c.draft = factor }
}

// WithWorkers forwards a worker count to the mesh rasterizer.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Render draws spec into a w×h image.
func Render(spec gradient.Spec, w, h int, opts ...Option) (*image.NRGBA, error) {
	if err := errors.ValidateSize(w, h); err != nil {
		return nil, err
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	rw, rh := w, h
	if cfg.draft > 1 {
		rw, rh = max(w/cfg.draft, 1), max(h/cfg.draft, 1)
	}

	img, err := raster(spec, rw, rh, cfg.workers)
	if err != nil {
		return nil, err
	}
	if rw != w || rh != h {
		img = imaging.Resize(img, w, h, imaging.Linear)
	}
	if cfg.handles && spec.Kind == gradient.KindMesh {
		img = drawHandles(img, spec.Nodes)
	}
	return img, nil
}

func raster(spec gradient.Spec, w, h, workers int) (*image.NRGBA, error) {
	if spec.Kind == gradient.KindMesh {
		return mesh.Rasterize(spec.Nodes, w, h, mesh.WithWorkers(workers))
	}

	s, err := gradient.NewSampler(spec, float64(w), float64(h))
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, s.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA())
		}
	}
	return img, nil
}

// HandleRadius returns the radius in pixels of a node handle drawn on a
// w×h preview.
func HandleRadius(w, h int) float64 {
	return math.Max(4, float64(min(w, h))/64)
}

func drawHandles(img *image.NRGBA, nodes []gradient.Node) *image.NRGBA {
	b := img.Bounds()
	dc := gg.NewContextForImage(img)
	r := HandleRadius(b.Dx(), b.Dy())
	dc.SetLineWidth(math.Max(1, r/4))
	for _, n := range nodes {
		x := n.X / 100 * float64(b.Dx())
		y := n.Y / 100 * float64(b.Dy())
		dc.DrawCircle(x, y, r)
		dc.SetColor(n.Color.NRGBA())
		dc.FillPreserve()
		dc.SetColor(color.White)
		dc.Stroke()
	}
	return imaging.Clone(dc.Image())
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}
