// Package gradient defines the gradient design model and turns it into CSS.
//
// A [Spec] is a tagged variant over four kinds:
//
//   - linear: Angle plus ordered color Stops
//   - radial: Center plus Stops
//   - conic: Angle, Center and Stops
//   - mesh: free-standing color Nodes on a 0-100 plane (Stops are ignored)
//
// [Compose] renders a Spec as a single CSS gradient function, the text a user
// copies out of the editor. Stops are re-sorted by position (stable on ties)
// before being written; their IDs never influence output.
//
// Mesh gradients have no CSS equivalent. Compose emits one transparent
// radial-gradient term per node as a textual approximation; real mesh pixels
// come from package mesh.
//
// For terminal and server previews of the other kinds, [NewSampler] returns a
// [Sampler] that evaluates the gradient at any point of the unit box with CSS
// geometry.
package gradient
