package editor

import (
	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// MinStops and MinNodes are the counts below which removal is refused.
const (
	MinStops = 2
	MinNodes = 2
)

// State is a snapshot of an editing session.
type State struct {
	Spec   gradient.Spec
	Format colors.Format
}

// NewState returns a state editing spec. An empty stop or node list is
// replaced with the starter one, and missing IDs are filled in.
func NewState(spec gradient.Spec) State {
	spec = spec.Clone()
	if len(spec.Stops) == 0 || len(spec.Nodes) == 0 {
		def := gradient.Default()
		if len(spec.Stops) == 0 {
			spec.Stops = def.Stops
		}
		if len(spec.Nodes) == 0 {
			spec.Nodes = def.Nodes
		}
	}
	spec.EnsureIDs()
	if spec.Kind == "" {
		spec.Kind = gradient.KindLinear
	}
	return State{Spec: spec, Format: colors.FormatHex}
}

// CSS composes the current design.
func (s State) CSS() string {
	return gradient.Compose(s.Spec)
}

// Stop returns the stop with the given ID.
func (s State) Stop(id string) (gradient.Stop, bool) {
	i := stopIndex(s.Spec.Stops, id)
	if i < 0 {
		return gradient.Stop{}, false
	}
	return s.Spec.Stops[i], true
}

// Node returns the mesh node with the given ID.
func (s State) Node(id string) (gradient.Node, bool) {
	i := nodeIndex(s.Spec.Nodes, id)
	if i < 0 {
		return gradient.Node{}, false
	}
	return s.Spec.Nodes[i], true
}

// NearestNode returns the ID of the node closest to the normalized point
// (x, y), or "" if there are no nodes.
func (s State) NearestNode(x, y float64) string {
	best, bestD := "", 0.0
	for _, n := range s.Spec.Nodes {
		dx, dy := n.X-x, n.Y-y
		if d := dx*dx + dy*dy; best == "" || d < bestD {
			best, bestD = n.ID, d
		}
	}
	return best
}

func stopIndex(stops []gradient.Stop, id string) int {
	for i, st := range stops {
		if st.ID == id {
			return i
		}
	}
	return -1
}

func nodeIndex(nodes []gradient.Node, id string) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
