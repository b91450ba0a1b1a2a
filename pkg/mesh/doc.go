// Package mesh rasterizes mesh gradients.
//
// A mesh gradient is a set of colored control points (nodes) in the 0-100
// plane. Every pixel is the weighted average of all node colors, where a
// node's weight falls off with squared distance:
//
//	w = 1 / (1 + d²/500)
//
// so a pixel sitting on a node is dominated by that node's color and the
// influence of far nodes never reaches zero. The result is a smooth blend
// with no hard edges, which CSS cannot express exactly; package gradient
// only composes an approximation made of stacked radial gradients.
//
// # Usage
//
//	img, err := mesh.Rasterize(spec.Nodes, 800, 450)
//
// Rows are independent, so [WithWorkers] can split them across goroutines
// without changing the output.
package mesh
