package gradient

import (
	"fmt"
	"strconv"
	"strings"
)

// Compose renders s as a CSS gradient function:
//
//	linear-gradient(90deg, #4f46e5 0%, #06b6d4 100%)
//	radial-gradient(circle at 50% 50%, #4f46e5 0%, #06b6d4 100%)
//	conic-gradient(from 90deg at 50% 50%, #4f46e5 0%, #06b6d4 100%)
//
// Mesh specs produce one radial-gradient term per node, fading to
// transparent at 50%. An unset kind composes as linear.
func Compose(s Spec) string {
	switch s.Kind {
	case KindRadial:
		return fmt.Sprintf("radial-gradient(circle at %s%% %s%%, %s)",
			num(s.Center.X), num(s.Center.Y), composeStops(s.Stops))
	case KindConic:
		return fmt.Sprintf("conic-gradient(from %ddeg at %s%% %s%%, %s)",
			s.Angle, num(s.Center.X), num(s.Center.Y), composeStops(s.Stops))
	case KindMesh:
		return composeMesh(s.Nodes)
	default:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", s.Angle, composeStops(s.Stops))
	}
}

func composeStops(stops []Stop) string {
	parts := make([]string, 0, len(stops))
	for _, st := range SortedStops(stops) {
		parts = append(parts, st.Color.Hex()+" "+num(st.Position)+"%")
	}
	return strings.Join(parts, ", ")
}

func composeMesh(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, fmt.Sprintf("radial-gradient(circle at %s%% %s%%, %s 0%%, transparent 50%%)",
			num(n.X), num(n.Y), n.Color.Hex()))
	}
	return strings.Join(parts, ", ")
}

// num formats v in its shortest form: 50, 12.5, 33.333333333333336.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
