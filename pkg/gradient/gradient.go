package gradient

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
)

// Kind identifies the gradient variant.
type Kind string

// Supported gradient kinds.
const (
	KindLinear Kind = "linear"
	KindRadial Kind = "radial"
	KindConic  Kind = "conic"
	KindMesh   Kind = "mesh"
)

// Kinds lists every kind in editor cycling order.
var Kinds = []Kind{KindLinear, KindRadial, KindConic, KindMesh}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown gradient type %q (must be linear, radial, conic or mesh)", s)
}

// Next returns the kind after k in Kinds, wrapping around.
func (k Kind) Next() Kind {
	i := slices.Index(Kinds, k)
	return Kinds[(i+1)%len(Kinds)]
}

// UsesAngle reports whether the kind has an angle control.
func (k Kind) UsesAngle() bool { return k == KindLinear || k == KindConic || k == "" }

// UsesCenter reports whether the kind has a center position control.
func (k Kind) UsesCenter() bool { return k == KindRadial || k == KindConic }

// Stop is a color anchored at Position (0-100) along the gradient axis.
type Stop struct {
	ID       string       `json:"id" toml:"id"`
	Color    colors.Color `json:"color" toml:"color"`
	Position float64      `json:"position" toml:"position"`
}

// Node is a mesh control point at (X, Y) in the 0-100 plane.
type Node struct {
	ID    string       `json:"id" toml:"id"`
	X     float64      `json:"x" toml:"x"`
	Y     float64      `json:"y" toml:"y"`
	Color colors.Color `json:"color" toml:"color"`
}

// Point is a position in percent of the preview box.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Spec is a complete gradient design.
type Spec struct {
	Kind   Kind   `json:"type" toml:"type"`
	Angle  int    `json:"angle" toml:"angle"`
	Center Point  `json:"center" toml:"center"`
	Stops  []Stop `json:"stops,omitempty" toml:"stops"`
	Nodes  []Node `json:"nodes,omitempty" toml:"nodes"`
}

// Default returns the starter design: a 90° indigo-to-cyan linear gradient
// and a four-node mesh.
func Default() Spec {
	return Spec{
		Kind:   KindLinear,
		Angle:  90,
		Center: Point{X: 50, Y: 50},
		Stops: []Stop{
			{ID: NewID(), Color: colors.MustParse("#4f46e5"), Position: 0},
			{ID: NewID(), Color: colors.MustParse("#06b6d4"), Position: 100},
		},
		Nodes: []Node{
			{ID: NewID(), X: 20, Y: 20, Color: colors.MustParse("#4f46e5")},
			{ID: NewID(), X: 80, Y: 80, Color: colors.MustParse("#06b6d4")},
			{ID: NewID(), X: 20, Y: 80, Color: colors.MustParse("#ec4899")},
			{ID: NewID(), X: 80, Y: 20, Color: colors.MustParse("#8b5cf6")},
		},
	}
}

// NewID returns a fresh stable identity for a stop or node.
func NewID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	s.Stops = slices.Clone(s.Stops)
	s.Nodes = slices.Clone(s.Nodes)
	return s
}

// SortedStops returns a copy of stops ordered by position. Stops at equal
// positions keep their relative order.
func SortedStops(stops []Stop) []Stop {
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b Stop) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return sorted
}

// EnsureIDs assigns fresh IDs to stops and nodes that have none, as happens
// for designs loaded from files.
func (s *Spec) EnsureIDs() {
	for i := range s.Stops {
		if s.Stops[i].ID == "" {
			s.Stops[i].ID = NewID()
		}
	}
	for i := range s.Nodes {
		if s.Nodes[i].ID == "" {
			s.Nodes[i].ID = NewID()
		}
	}
}

// Normalize clamps every numeric field into its valid range: angle to
// [0, 360], positions and coordinates to [0, 100].
func (s *Spec) Normalize() {
	s.Angle = min(max(s.Angle, 0), 360)
	s.Center.X = ClampPercent(s.Center.X)
	s.Center.Y = ClampPercent(s.Center.Y)
	for i := range s.Stops {
		s.Stops[i].Position = ClampPercent(s.Stops[i].Position)
	}
	for i := range s.Nodes {
		s.Nodes[i].X = ClampPercent(s.Nodes[i].X)
		s.Nodes[i].Y = ClampPercent(s.Nodes[i].Y)
	}
}

// Validate checks the structural requirements for rendering: a known kind,
// at least one stop for stop-based kinds and at least one node for mesh.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindLinear, KindRadial, KindConic, "":
		if len(s.Stops) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s gradient needs at least one color stop", s.kindOrDefault())
		}
	case KindMesh:
		if len(s.Nodes) == 0 {
			return errors.New(errors.ErrCodeEmptyMesh, "mesh gradient needs at least one node")
		}
	default:
		return errors.New(errors.ErrCodeInvalidKind, "unknown gradient type %q", s.Kind)
	}
	return nil
}

func (s Spec) kindOrDefault() Kind {
	if s.Kind == "" {
		return KindLinear
	}
	return s.Kind
}

// ClampPercent clamps v to [0, 100].
func ClampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
