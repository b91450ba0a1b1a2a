// Package pkg provides the libraries behind gradientlab, a gradient designer.
//
// # Overview
//
// A design is a [gradient.Spec]: a linear, radial or conic gradient built
// from color stops, or a mesh gradient built from colored control points.
// Designs become CSS strings or raster previews:
//
//	gradient.Spec
//	     ├─→ [gradient] Compose   → "linear-gradient(90deg, ...)"
//	     └─→ [preview] Render
//	              ├─ mesh:   [mesh] Rasterize (inverse-distance blend)
//	              └─ others: [gradient] Sampler (per-pixel)
//
// # Quick Start
//
//	spec := gradient.Default()
//	css := gradient.Compose(spec)
//
//	spec.Kind = gradient.KindMesh
//	img, err := preview.Render(spec, 800, 450, preview.WithHandles())
//
// # Main Packages
//
// ## Domain
//
// [colors] - Hex, RGB and HSL conversion and the hex/rgb/hsl display
// formats.
//
// [gradient] - The design model, CSS composition and per-pixel samplers
// for the stop-based kinds.
//
// [mesh] - The mesh rasterizer. Each pixel blends every node weighted by
// 1/(1 + d²/500), optionally across several goroutines.
//
// [editor] - Editing sessions: an immutable [editor.State], actions that
// transform it, a [editor.Store] that dispatches them and a
// [editor.Coalescer] that limits pointer drags to one update per frame.
//
// [input] - Forgiving parsers for typed field values and CLI flags.
//
// ## Output
//
// [preview] - PNG previews with optional node handles and draft scaling.
//
// [pipeline] - The shared entry point for CLI, editor and server: option
// defaults, validation, preview caching and instrumentation.
//
// [io] - Design JSON import and export.
//
// ## Infrastructure
//
// [cache] - Preview caches: none, file and Redis backends.
//
// [config] - The TOML configuration file.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for render, cache and server metrics.
//
// [buildinfo] - Version information stamped at build time.
//
// # Testing
//
//	go test ./...                     # All tests
//	go test -run Example ./pkg/...    # Examples only
//
// The Redis cache tests need a server:
//
//	GRADIENTLAB_TEST_REDIS=localhost:6379 go test ./pkg/cache
//
// [colors]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/colors
// [gradient]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/gradient
// [gradient.Spec]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/gradient#Spec
// [mesh]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/mesh
// [editor]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/editor
// [editor.State]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/editor#State
// [editor.Store]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/editor#Store
// [editor.Coalescer]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/editor#Coalescer
// [input]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/input
// [preview]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/preview
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/gradientlab/pkg/buildinfo
package pkg
