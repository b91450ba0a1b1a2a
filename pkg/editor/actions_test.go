package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

func testState() State {
	return State{Spec: gradient.Spec{
		Kind:   gradient.KindLinear,
		Angle:  90,
		Center: gradient.Point{X: 50, Y: 50},
		Stops: []gradient.Stop{
			{ID: "s1", Color: colors.MustParse("#4f46e5"), Position: 0},
			{ID: "s2", Color: colors.MustParse("#06b6d4"), Position: 100},
		},
		Nodes: []gradient.Node{
			{ID: "n1", X: 20, Y: 20, Color: colors.MustParse("#4f46e5")},
			{ID: "n2", X: 80, Y: 80, Color: colors.MustParse("#06b6d4")},
		},
	}}
}

func ptr[T any](v T) *T { return &v }

func TestActionsDoNotMutateInput(t *testing.T) {
	red := colors.MustParse("#ff0000")
	actions := []Action{
		SetKind{Kind: gradient.KindMesh},
		SetAngle{Angle: 10},
		SetCenter{X: 1, Y: 2},
		AddStop{ID: "s3"},
		UpdateStop{ID: "s1", Color: &red, Position: ptr(40.0)},
		AddNode{ID: "n3", Color: &red},
		MoveNode{ID: "n1", X: 0, Y: 0},
		SetNodeColor{ID: "n2", Color: red},
		SetFormat{Format: colors.FormatHSL},
		Randomize{StopColors: []colors.Color{red, red}, NodeColors: []colors.Color{red, red}, Angle: 7},
	}

	for _, a := range actions {
		in := testState()
		before := testState()
		_ = a.Apply(in)
		if diff := cmp.Diff(before, in); diff != "" {
			t.Errorf("%T mutated its input (-before +after):\n%s", a, diff)
		}
	}
}

func TestRemoveRespectsMinimum(t *testing.T) {
	s := testState()

	if got := (RemoveStop{ID: "s1"}).Apply(s); len(got.Spec.Stops) != 2 {
		t.Errorf("removing from two stops should be refused, got %d", len(got.Spec.Stops))
	}
	if got := (RemoveNode{ID: "n1"}).Apply(s); len(got.Spec.Nodes) != 2 {
		t.Errorf("removing from two nodes should be refused, got %d", len(got.Spec.Nodes))
	}

	s = AddStop{ID: "s3"}.Apply(s)
	s = RemoveStop{ID: "s1"}.Apply(s)
	want := []string{"s2", "s3"}
	var got []string
	for _, st := range s.Spec.Stops {
		got = append(got, st.ID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stops after remove (-want +got):\n%s", diff)
	}

	s = AddNode{ID: "n3", Color: ptr(colors.White)}.Apply(s)
	s = RemoveNode{ID: "n2"}.Apply(s)
	if _, ok := s.Node("n2"); ok || len(s.Spec.Nodes) != 2 {
		t.Errorf("node n2 should be removed, nodes = %+v", s.Spec.Nodes)
	}
}

func TestAddDefaults(t *testing.T) {
	s := AddStop{ID: "s3"}.Apply(testState())
	st, ok := s.Stop("s3")
	if !ok || st.Color != colors.White || st.Position != 50 {
		t.Errorf("AddStop added %+v", st)
	}

	c := colors.MustParse("#123456")
	s = AddNode{ID: "n3", Color: &c}.Apply(s)
	n, ok := s.Node("n3")
	if !ok || n.X != 50 || n.Y != 50 || n.Color != c {
		t.Errorf("AddNode added %+v", n)
	}
}

func TestClamping(t *testing.T) {
	tests := []struct {
		name  string
		apply Action
		check func(State) bool
	}{
		{"angle high", SetAngle{Angle: 500}, func(s State) bool { return s.Spec.Angle == 360 }},
		{"angle low", SetAngle{Angle: -1}, func(s State) bool { return s.Spec.Angle == 0 }},
		{"center", SetCenter{X: -10, Y: 110}, func(s State) bool { return s.Spec.Center == gradient.Point{X: 0, Y: 100} }},
		{"stop position", UpdateStop{ID: "s1", Position: ptr(120.0)}, func(s State) bool {
			st, _ := s.Stop("s1")
			return st.Position == 100
		}},
		{"node move", MoveNode{ID: "n1", X: 101, Y: -3}, func(s State) bool {
			n, _ := s.Node("n1")
			return n.X == 100 && n.Y == 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.apply.Apply(testState()); !tt.check(got) {
				t.Errorf("unexpected state %+v", got.Spec)
			}
		})
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	in := testState()
	for _, a := range []Action{
		RemoveStop{ID: "x"},
		UpdateStop{ID: "x", Position: ptr(1.0)},
		MoveNode{ID: "x"},
		SetNodeColor{ID: "x"},
	} {
		if diff := cmp.Diff(in, a.Apply(in)); diff != "" {
			t.Errorf("%T with unknown ID changed state:\n%s", a, diff)
		}
	}
}

func TestUpdateStopPartial(t *testing.T) {
	s := UpdateStop{ID: "s2", Position: ptr(60.0)}.Apply(testState())
	st, _ := s.Stop("s2")
	if st.Color != colors.MustParse("#06b6d4") || st.Position != 60 {
		t.Errorf("UpdateStop position only = %+v", st)
	}
}

func TestRandomizeApply(t *testing.T) {
	red := colors.MustParse("#ff0000")
	s := Randomize{StopColors: []colors.Color{red}, Angle: 45}.Apply(testState())
	if s.Spec.Stops[0].Color != red || s.Spec.Stops[1].Color != colors.MustParse("#06b6d4") {
		t.Errorf("Randomize stops = %+v", s.Spec.Stops)
	}
	if s.Spec.Angle != 45 {
		t.Errorf("Randomize angle = %d", s.Spec.Angle)
	}
}

func TestLoadKeepsFormat(t *testing.T) {
	s := testState()
	s.Format = colors.FormatRGB
	next := Load{Spec: gradient.Spec{Stops: []gradient.Stop{{Position: 10}}}}.Apply(s)
	if next.Format != colors.FormatRGB {
		t.Errorf("Load format = %v", next.Format)
	}
	if next.Spec.Kind != gradient.KindLinear || next.Spec.Stops[0].ID == "" {
		t.Errorf("Load spec = %+v", next.Spec)
	}
}

func TestNearestNode(t *testing.T) {
	s := testState()
	if got := s.NearestNode(25, 10); got != "n1" {
		t.Errorf("NearestNode = %q, want n1", got)
	}
	if got := s.NearestNode(70, 95); got != "n2" {
		t.Errorf("NearestNode = %q, want n2", got)
	}
	if got := (State{}).NearestNode(0, 0); got != "" {
		t.Errorf("NearestNode on empty = %q", got)
	}
}
