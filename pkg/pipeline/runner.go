package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gradientlab/pkg/cache"
	"github.com/matzehuels/gradientlab/pkg/gradient"
	"github.com/matzehuels/gradientlab/pkg/observability"
	"github.com/matzehuels/gradientlab/pkg/preview"
)

const keyTypePreview = "preview"

// Runner renders designs with caching.
//
// The Runner holds no per-design state, so one Runner may serve many
// goroutines at once as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached previews; cache.TTLNever keeps them
	// until evicted.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLPreview,
	}
}

// Compose validates spec and returns its CSS gradient string.
func (r *Runner) Compose(spec gradient.Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}
	return gradient.Compose(spec), nil
}

// Raster renders spec to an image without touching the cache.
func (r *Runner) Raster(ctx context.Context, spec gradient.Spec, opts Options) (*image.NRGBA, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kind := string(spec.Kind)
	observability.Render().OnRasterStart(ctx, kind, opts.Width, opts.Height)
	start := time.Now()
	img, err := preview.Render(spec, opts.Width, opts.Height, opts.RenderOptions()...)
	elapsed := time.Since(start)
	observability.Render().OnRasterComplete(ctx, kind, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("rendered preview",
		"type", kind,
		"size", opts.KeyOpts().String(),
		"duration", elapsed)
	return img, nil
}

// PNG returns spec rendered and encoded as PNG. hit reports whether the
// bytes came from the cache. Cache failures are logged and otherwise
// ignored: the preview is rendered instead.
func (r *Runner) PNG(ctx context.Context, spec gradient.Spec, opts Options) (data []byte, hit bool, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if err := spec.Validate(); err != nil {
		return nil, false, err
	}

	specHash, err := cache.HashJSON(canonical(spec))
	if err != nil {
		return nil, false, fmt.Errorf("hash design: %w", err)
	}
	key := r.Keyer.PreviewKey(specHash, opts.KeyOpts())

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("preview cache read failed", "err", err)
		case hit:
			observability.Cache().OnCacheHit(ctx, keyTypePreview)
			return data, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, keyTypePreview)

	img, err := r.Raster(ctx, spec, opts)
	if err != nil {
		return nil, false, err
	}
	var buf bytes.Buffer
	if err := preview.EncodePNG(&buf, img); err != nil {
		return nil, false, err
	}
	data = buf.Bytes()

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("preview cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyTypePreview, len(data))
	}
	return data, false, nil
}

// Close releases the runner's cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// canonical strips what does not affect pixels: stop and node IDs, and
// the fields of the kind not being drawn.
func canonical(s gradient.Spec) gradient.Spec {
	s = s.Clone()
	if s.Kind == "" {
		s.Kind = gradient.KindLinear
	}
	for i := range s.Stops {
		s.Stops[i].ID = ""
	}
	for i := range s.Nodes {
		s.Nodes[i].ID = ""
	}
	if s.Kind == gradient.KindMesh {
		s.Stops, s.Angle, s.Center = nil, 0, gradient.Point{}
	} else {
		s.Nodes = nil
		if !s.Kind.UsesAngle() {
			s.Angle = 0
		}
		if !s.Kind.UsesCenter() {
			s.Center = gradient.Point{}
		}
	}
	return s
}
