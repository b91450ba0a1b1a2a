package gradient

import (
	"math"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
)

// Sampler evaluates a gradient at a point of a width×height box.
// Coordinates are in the same units as the box (pixels, terminal cells).
type Sampler interface {
	ColorAt(x, y float64) colors.Color
}

// NewSampler returns a Sampler for a linear, radial or conic spec laid out in
// a width×height box, following CSS geometry:
//
//   - linear: 0deg points up, angles turn clockwise, and the gradient line is
//     long enough that 0% and 100% touch opposite corners
//   - radial: a circle around Center sized to the farthest corner
//   - conic: colors sweep clockwise from Angle around Center
//
// Mesh specs are rasterized by package mesh and return UNSUPPORTED here.
func NewSampler(s Spec, width, height float64) (Sampler, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "sampler box must be positive, got %vx%v", width, height)
	}

	ramp := newRamp(s.Stops)
	cx := s.Center.X / 100 * width
	cy := s.Center.Y / 100 * height

	switch s.Kind {
	case KindRadial:
		return &radialSampler{ramp: ramp, cx: cx, cy: cy, radius: farthestCorner(cx, cy, width, height)}, nil
	case KindConic:
		return &conicSampler{ramp: ramp, cx: cx, cy: cy, from: radians(s.Angle)}, nil
	case KindMesh:
		return nil, errors.New(errors.ErrCodeUnsupported, "mesh gradients are rasterized, not sampled")
	default:
		a := radians(s.Angle)
		dx, dy := math.Sin(a), -math.Cos(a)
		return &linearSampler{
			ramp:   ramp,
			cx:     width / 2,
			cy:     height / 2,
			dx:     dx,
			dy:     dy,
			length: math.Abs(width*dx) + math.Abs(height*dy),
		}, nil
	}
}

type linearSampler struct {
	ramp   ramp
	cx, cy float64
	dx, dy float64
	length float64
}

func (s *linearSampler) ColorAt(x, y float64) colors.Color {
	if s.length == 0 {
		return s.ramp.at(0)
	}
	proj := (x-s.cx)*s.dx + (y-s.cy)*s.dy
	return s.ramp.at(proj/s.length + 0.5)
}

type radialSampler struct {
	ramp           ramp
	cx, cy, radius float64
}

func (s *radialSampler) ColorAt(x, y float64) colors.Color {
	if s.radius == 0 {
		return s.ramp.at(1)
	}
	return s.ramp.at(math.Hypot(x-s.cx, y-s.cy) / s.radius)
}

type conicSampler struct {
	ramp   ramp
	cx, cy float64
	from   float64
}

func (s *conicSampler) ColorAt(x, y float64) colors.Color {
	dx, dy := x-s.cx, y-s.cy
	if dx == 0 && dy == 0 {
		return s.ramp.at(0)
	}
	// Clockwise from up in screen space (y grows downward).
	theta := math.Atan2(dx, -dy) - s.from
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return s.ramp.at(theta / (2 * math.Pi))
}

// ramp maps t in [0, 1] to a color by interpolating sorted stops.
type ramp struct {
	offsets []float64
	colors  []colors.Color
}

func newRamp(stops []Stop) ramp {
	sorted := SortedStops(stops)
	r := ramp{
		offsets: make([]float64, len(sorted)),
		colors:  make([]colors.Color, len(sorted)),
	}
	for i, st := range sorted {
		r.offsets[i] = st.Position / 100
		r.colors[i] = st.Color
	}
	return r
}

func (r ramp) at(t float64) colors.Color {
	n := len(r.offsets)
	if t <= r.offsets[0] {
		return r.colors[0]
	}
	if t >= r.offsets[n-1] {
		return r.colors[n-1]
	}
	for i := 1; i < n; i++ {
		if t > r.offsets[i] {
			continue
		}
		lo, hi := r.offsets[i-1], r.offsets[i]
		if hi == lo {
			return r.colors[i]
		}
		return lerp(r.colors[i-1], r.colors[i], (t-lo)/(hi-lo))
	}
	return r.colors[n-1]
}

func lerp(a, b colors.Color, t float64) colors.Color {
	ch := func(x, y uint8) float64 {
		return float64(x) + (float64(y)-float64(x))*t
	}
	return colors.Color{
		R: uint8(math.Round(ch(a.R, b.R))),
		G: uint8(math.Round(ch(a.G, b.G))),
		B: uint8(math.Round(ch(a.B, b.B))),
	}
}

func farthestCorner(cx, cy, w, h float64) float64 {
	return math.Max(
		math.Max(math.Hypot(cx, cy), math.Hypot(w-cx, cy)),
		math.Max(math.Hypot(cx, h-cy), math.Hypot(w-cx, h-cy)),
	)
}

func radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
