package input

import (
	"testing"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"  42 ", 42},
		{"42px", 42},
		{"-7", -7},
		{"+3", 3},
		{"12.9", 12},
		{"", 0},
		{"abc", 0},
		{"-", 0},
		{"99999999999999999999999", maxInt},
		{"-99999999999999999999999", minInt},
	}

	for _, tt := range tests {
		if got := Int(tt.in); got != tt.want {
			t.Errorf("Int(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFieldClamping(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) int
		in   string
		want int
	}{
		{"angle in range", Angle, "135", 135},
		{"angle high", Angle, "720", 360},
		{"angle negative", Angle, "-45", 0},
		{"angle junk", Angle, "deg", 0},
		{"percent high", Percent, "150", 100},
		{"percent unit", Percent, "33%", 33},
		{"channel high", Channel, "300", 255},
		{"hue full turn", Hue, "360", 360},
		{"hue high", Hue, "400", 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHexInput(t *testing.T) {
	tests := []struct {
		in           string
		complete, ok bool
	}{
		{"#", false, true},
		{"#4f4", false, true},
		{"#4F46E5", true, true},
		{"4f46e5", true, true},
		{"#4f46e5a", false, false},
		{"#zz", false, false},
		{"", false, false},
		{"4f4", false, false},
	}

	for _, tt := range tests {
		complete, ok := HexInput(tt.in)
		if complete != tt.complete || ok != tt.ok {
			t.Errorf("HexInput(%q) = (%v, %v), want (%v, %v)", tt.in, complete, ok, tt.complete, tt.ok)
		}
	}
}

func TestParseStop(t *testing.T) {
	st, err := ParseStop("#4f46e5:30")
	if err != nil {
		t.Fatal(err)
	}
	if st.Color != colors.MustParse("#4f46e5") || st.Position != 30 || st.ID == "" {
		t.Errorf("ParseStop() = %+v", st)
	}

	st, err = ParseStop("#06b6d4")
	if err != nil || st.Position != 0 {
		t.Errorf("ParseStop without position = %+v, %v", st, err)
	}

	st, err = ParseStop("#06b6d4:250")
	if err != nil || st.Position != 100 {
		t.Errorf("ParseStop clamps position: %+v, %v", st, err)
	}

	if _, err := ParseStop("#12:50"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("ParseStop bad color error = %v", err)
	}
}

func TestParseNode(t *testing.T) {
	n, err := ParseNode("#ec4899:20:80")
	if err != nil {
		t.Fatal(err)
	}
	if n.Color != colors.MustParse("#ec4899") || n.X != 20 || n.Y != 80 {
		t.Errorf("ParseNode() = %+v", n)
	}

	if _, err := ParseNode("#ec4899:20"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseNode missing y error = %v", err)
	}
	if _, err := ParseNode("red:20:20"); !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("ParseNode bad color error = %v", err)
	}
}

func TestTriple(t *testing.T) {
	got, err := Triple("300, 70,-5", RGBRanges)
	if err != nil {
		t.Fatal(err)
	}
	if got != [3]int{255, 70, 0} {
		t.Errorf("Triple() = %v", got)
	}

	got, err = Triple("400,50,50", HSLRanges)
	if err != nil || got != [3]int{360, 50, 50} {
		t.Errorf("Triple(hsl) = %v, %v", got, err)
	}

	if _, err := Triple("1,2", RGBRanges); err == nil {
		t.Error("Triple with two values should fail")
	}
}
