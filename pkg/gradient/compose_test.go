package gradient

import (
	"testing"

	"github.com/matzehuels/gradientlab/pkg/colors"
)

func twoStops() []Stop {
	return []Stop{
		{ID: "1", Color: colors.MustParse("#4f46e5"), Position: 0},
		{ID: "2", Color: colors.MustParse("#06b6d4"), Position: 100},
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "linear",
			spec: Spec{Kind: KindLinear, Angle: 90, Stops: twoStops()},
			want: "linear-gradient(90deg, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "unset kind is linear",
			spec: Spec{Angle: 45, Stops: twoStops()},
			want: "linear-gradient(45deg, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "radial",
			spec: Spec{Kind: KindRadial, Center: Point{X: 30, Y: 70}, Stops: twoStops()},
			want: "radial-gradient(circle at 30% 70%, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "conic",
			spec: Spec{Kind: KindConic, Angle: 180, Center: Point{X: 50, Y: 50}, Stops: twoStops()},
			want: "conic-gradient(from 180deg at 50% 50%, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "fractional positions",
			spec: Spec{Kind: KindRadial, Center: Point{X: 12.5, Y: 0}, Stops: twoStops()},
			want: "radial-gradient(circle at 12.5% 0%, #4f46e5 0%, #06b6d4 100%)",
		},
		{
			name: "mesh",
			spec: Spec{Kind: KindMesh, Stops: twoStops(), Nodes: []Node{
				{X: 20, Y: 20, Color: colors.MustParse("#4f46e5")},
				{X: 80, Y: 80, Color: colors.MustParse("#06b6d4")},
			}},
			want: "radial-gradient(circle at 20% 20%, #4f46e5 0%, transparent 50%), " +
				"radial-gradient(circle at 80% 80%, #06b6d4 0%, transparent 50%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.spec); got != tt.want {
				t.Errorf("Compose() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestComposeSortsStops(t *testing.T) {
	s := Spec{Kind: KindLinear, Angle: 0, Stops: []Stop{
		{ID: "w", Color: colors.White, Position: 100},
		{ID: "a", Color: colors.MustParse("#aaaaaa"), Position: 50},
		{ID: "b", Color: colors.Black, Position: 50},
		{ID: "k", Color: colors.MustParse("#4f46e5"), Position: 0},
	}}

	want := "linear-gradient(0deg, #4f46e5 0%, #aaaaaa 50%, #000000 50%, #ffffff 100%)"
	if got := Compose(s); got != want {
		t.Errorf("Compose() = %s, want %s", got, want)
	}
}
