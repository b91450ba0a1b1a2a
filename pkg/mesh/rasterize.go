package mesh

import (
	"image"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// Falloff is the squared distance (in percent units) at which a node's
// weight drops to one half.
const Falloff = 500

type config struct {
	workers int
}

// Option configures Rasterize.
type Option func(*config)

// WithWorkers splits rows across n goroutines. Values below 2 rasterize on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Rasterize renders nodes into a w×h image. Pixel (x, y) maps to the
// normalized point (x/w·100, y/h·100). Channels are rounded half to even
// and alpha is always opaque.
//
// It fails with EMPTY_MESH when nodes is empty and INVALID_SIZE when either
// dimension is not positive.
func Rasterize(nodes []gradient.Node, w, h int, opts ...Option) (*image.NRGBA, error) {
	if len(nodes) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyMesh, "mesh needs at least one node")
	}
	if err := errors.ValidateSize(w, h); err != nil {
		return nil, err
	}

	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if cfg.workers < 2 || h < 2 {
		fillRows(img, nodes, 0, h)
		return img, nil
	}

	workers := min(cfg.workers, h)
	chunk := (h + workers - 1) / workers
	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += chunk {
		y1 := min(y0+chunk, h)
		g.Go(func() error {
			fillRows(img, nodes, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// fillRows writes rows [y0, y1) of img. Goroutines given disjoint row
// ranges never touch the same bytes of img.Pix.
func fillRows(img *image.NRGBA, nodes []gradient.Node, y0, y1 int) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	for y := y0; y < y1; y++ {
		ny := float64(y) / h * 100
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Dx(); x++ {
			r, g, bl := blend(nodes, float64(x)/w*100, ny)
			i := x * 4
			row[i] = roundChannel(r)
			row[i+1] = roundChannel(g)
			row[i+2] = roundChannel(bl)
			row[i+3] = 0xff
		}
	}
}

// Weight returns the blend weight of a node at squared distance d2.
func Weight(d2 float64) float64 {
	return 1 / (1 + d2/Falloff)
}

// ColorAt returns the blended color at the normalized point (nx, ny).
// An empty node set yields black.
func ColorAt(nodes []gradient.Node, nx, ny float64) colors.Color {
	if len(nodes) == 0 {
		return colors.Black
	}
	r, g, b := blend(nodes, nx, ny)
	return colors.Color{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b)}
}

func blend(nodes []gradient.Node, nx, ny float64) (r, g, b float64) {
	var total float64
	for _, n := range nodes {
		dx, dy := nx-n.X, ny-n.Y
		wt := Weight(dx*dx + dy*dy)
		r += float64(n.Color.R) * wt
		g += float64(n.Color.G) * wt
		b += float64(n.Color.B) * wt
		total += wt
	}
	return r / total, g / total, b / total
}

func roundChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.RoundToEven(v))
}
