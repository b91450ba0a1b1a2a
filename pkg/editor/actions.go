package editor

import (
	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// Action is a state transition. Apply must not mutate s.
type Action interface {
	Apply(s State) State
}

// SetKind switches the gradient kind.
type SetKind struct {
	Kind gradient.Kind
}

func (a SetKind) Apply(s State) State {
	s.Spec = s.Spec.Clone()
	s.Spec.Kind = a.Kind
	return s
}

// SetAngle sets the linear or conic angle, clamped to 0-360.
type SetAngle struct {
	Angle int
}

func (a SetAngle) Apply(s State) State {
	s.Spec = s.Spec.Clone()
	s.Spec.Angle = min(max(a.Angle, 0), 360)
	return s
}

// SetCenter sets the radial or conic center, clamped to 0-100.
type SetCenter struct {
	X, Y float64
}

func (a SetCenter) Apply(s State) State {
	s.Spec = s.Spec.Clone()
	s.Spec.Center = gradient.Point{X: gradient.ClampPercent(a.X), Y: gradient.ClampPercent(a.Y)}
	return s
}

// AddStop appends a white stop at 50%. The Store assigns ID when empty.
type AddStop struct {
	ID string
}

func (a AddStop) Apply(s State) State {
	s.Spec = s.Spec.Clone()
	s.Spec.Stops = append(s.Spec.Stops, gradient.Stop{ID: a.ID, Color: colors.White, Position: 50})
	return s
}

// RemoveStop deletes a stop unless that would leave fewer than MinStops.
type RemoveStop struct {
	ID string
}

func (a RemoveStop) Apply(s State) State {
	i := stopIndex(s.Spec.Stops, a.ID)
	if i < 0 || len(s.Spec.Stops) <= MinStops {
		return s
	}
	s.Spec = s.Spec.Clone()
	s.Spec.Stops = append(s.Spec.Stops[:i], s.Spec.Stops[i+1:]...)
	return s
}

// UpdateStop changes a stop's color and/or position. Nil fields are left
// alone; the position is clamped to 0-100.
type UpdateStop struct {
	ID       string
	Color    *colors.Color
	Position *float64
}

func (a UpdateStop) Apply(s State) State {
	i := stopIndex(s.Spec.Stops, a.ID)
	if i < 0 {
		return s
	}
	s.Spec = s.Spec.Clone()
	if a.Color != nil {
		s.Spec.Stops[i].Color = *a.Color
	}
	if a.Position != nil {
		s.Spec.Stops[i].Position = gradient.ClampPercent(*a.Position)
	}
	return s
}

// AddNode appends a mesh node at (50, 50). The Store assigns ID and a
// random Color when they are unset.
type AddNode struct {
	ID    string
	Color *colors.Color
}

func (a AddNode) Apply(s State) State {
	n := gradient.Node{ID: a.ID, X: 50, Y: 50}
	if a.Color != nil {
		n.Color = *a.Color
	}
	s.Spec = s.Spec.Clone()
	s.Spec.Nodes = append(s.Spec.Nodes, n)
	return s
}

// RemoveNode deletes a node unless that would leave fewer than MinNodes.
type RemoveNode struct {
	ID string
}

func (a RemoveNode) Apply(s State) State {
	i := nodeIndex(s.Spec.Nodes, a.ID)
	if i < 0 || len(s.Spec.Nodes) <= MinNodes {
		return s
	}
	s.Spec = s.Spec.Clone()
	s.Spec.Nodes = append(s.Spec.Nodes[:i], s.Spec.Nodes[i+1:]...)
	return s
}

// MoveNode places a node at (X, Y), clamped to 0-100.
type MoveNode struct {
	ID   string
	X, Y float64
}

func (a MoveNode) Apply(s State) State {
	i := nodeIndex(s.Spec.Nodes, a.ID)
	if i < 0 {
		return s
	}
	s.Spec = s.Spec.Clone()
	s.Spec.Nodes[i].X = gradient.ClampPercent(a.X)
	s.Spec.Nodes[i].Y = gradient.ClampPercent(a.Y)
	return s
}

// SetNodeColor recolors a node.
type SetNodeColor struct {
	ID    string
	Color colors.Color
}

func (a SetNodeColor) Apply(s State) State {
	i := nodeIndex(s.Spec.Nodes, a.ID)
	if i < 0 {
		return s
	}
	s.Spec = s.Spec.Clone()
	s.Spec.Nodes[i].Color = a.Color
	return s
}

// SetFormat changes how colors are displayed.
type SetFormat struct {
	Format colors.Format
}

func (a SetFormat) Apply(s State) State {
	s.Format = a.Format
	return s
}

// Load replaces the design, keeping the display format.
type Load struct {
	Spec gradient.Spec
}

func (a Load) Apply(s State) State {
	next := NewState(a.Spec)
	next.Format = s.Format
	return next
}

// Randomize recolors every stop and node and sets a new angle. The Store
// fills StopColors, NodeColors and Angle; colors are assigned in order and
// missing entries leave the existing color.
type Randomize struct {
	StopColors []colors.Color
	NodeColors []colors.Color
	Angle      int
}

func (a Randomize) Apply(s State) State {
	s.Spec = s.Spec.Clone()
	for i := range min(len(a.StopColors), len(s.Spec.Stops)) {
		s.Spec.Stops[i].Color = a.StopColors[i]
	}
	for i := range min(len(a.NodeColors), len(s.Spec.Nodes)) {
		s.Spec.Nodes[i].Color = a.NodeColors[i]
	}
	s.Spec.Angle = min(max(a.Angle, 0), 360)
	return s
}
