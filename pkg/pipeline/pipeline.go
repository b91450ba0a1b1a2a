// Package pipeline turns gradient designs into their outputs.
//
// The CLI, the terminal editor and the preview server all go through a
// [Runner] so they share validation, defaults, caching and instrumentation:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	css, err := runner.Compose(spec)
//	png, hit, err := runner.PNG(ctx, spec, pipeline.Options{Handles: true})
//
// Compose is cheap and never cached. PNG renders through package preview
// and keeps encoded images in the runner's cache, keyed by the design and
// every option that changes the output.
package pipeline

import (
	"github.com/matzehuels/gradientlab/pkg/cache"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/preview"
)

// Defaults shared by every entry point.
const (
	DefaultWidth  = preview.DefaultWidth
	DefaultHeight = preview.DefaultHeight

	// DefaultWorkers rasterizes on the calling goroutine.
	DefaultWorkers = 1

	// MaxDraft bounds the draft downscale factor.
	MaxDraft = 16
)

// Options controls preview rendering. Zero values take defaults.
type Options struct {
	Width   int  `json:"width,omitempty" toml:"width"`
	Height  int  `json:"height,omitempty" toml:"height"`
	Workers int  `json:"workers,omitempty" toml:"workers"`
	Handles bool `json:"handles,omitempty" toml:"handles"`
	Draft   int  `json:"draft,omitempty" toml:"draft"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"-" toml:"-"`
}

// SetDefaults fills zero fields.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
}

// Validate checks ranges. Call SetDefaults first.
func (o *Options) Validate() error {
	if err := errors.ValidateSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must not be negative, got %d", o.Workers)
	}
	if o.Draft < 0 || o.Draft > MaxDraft {
		return errors.New(errors.ErrCodeInvalidInput, "draft factor must be between 0 and %d, got %d", MaxDraft, o.Draft)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// KeyOpts returns the options that take part in the preview cache key.
func (o *Options) KeyOpts() cache.PreviewKeyOpts {
	draft := o.Draft
	if draft < 2 {
		draft = 0
	}
	return cache.PreviewKeyOpts{
		Width:   o.Width,
		Height:  o.Height,
		Handles: o.Handles,
		Draft:   draft,
	}
}

// RenderOptions translates o into preview options.
func (o *Options) RenderOptions() []preview.Option {
	opts := []preview.Option{preview.WithWorkers(o.Workers)}
	if o.Handles {
		opts = append(opts, preview.WithHandles())
	}
	if o.Draft > 1 {
		opts = append(opts, preview.WithDraft(o.Draft))
	}
	return opts
}
