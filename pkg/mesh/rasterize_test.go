package mesh

import (
	"bytes"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/errors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

func defaultNodes() []gradient.Node {
	return gradient.Default().Nodes
}

func TestRasterizeSingleNode(t *testing.T) {
	want := colors.MustParse("#ec4899")
	img, err := Rasterize([]gradient.Node{{X: 10, Y: 90, Color: want}}, 40, 30)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			if got := colors.FromColor(img.NRGBAAt(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
			if a := img.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d", x, y, a)
			}
		}
	}
}

func TestRasterizeCloserNodeDominates(t *testing.T) {
	red := colors.MustParse("#ff0000")
	blue := colors.MustParse("#0000ff")
	nodes := []gradient.Node{
		{X: 10, Y: 50, Color: red},
		{X: 90, Y: 50, Color: blue},
	}
	img, err := Rasterize(nodes, 100, 100)
	if err != nil {
		t.Fatal(err)
	}

	redC, _ := colorful.MakeColor(red.NRGBA())
	blueC, _ := colorful.MakeColor(blue.NRGBA())
	for x := 0; x < 100; x++ {
		if x == 50 {
			continue
		}
		c, _ := colorful.MakeColor(img.NRGBAAt(x, 50))
		toRed, toBlue := c.DistanceRgb(redC), c.DistanceRgb(blueC)
		if x < 50 && toRed >= toBlue {
			t.Errorf("x=%d: pixel %v should be closer to red", x, c.Hex())
		}
		if x > 50 && toBlue >= toRed {
			t.Errorf("x=%d: pixel %v should be closer to blue", x, c.Hex())
		}
	}
}

func TestRasterizeWeights(t *testing.T) {
	black := colors.Black
	white := colors.White
	nodes := []gradient.Node{
		{X: 0, Y: 0, Color: white},
		{X: 100, Y: 0, Color: black},
	}

	// Pixel (0,0) sits on the white node; the black node is 100 units away:
	// w_white = 1, w_black = 1/(1+10000/500) = 1/21, so 255·21/22 ≈ 243.4.
	img, err := Rasterize(nodes, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(0, 0).R; got != 243 {
		t.Errorf("pixel (0,0) red = %d, want 243", got)
	}
	if got := Weight(0); got != 1 {
		t.Errorf("Weight(0) = %v, want 1", got)
	}
	if got := Weight(Falloff); got != 0.5 {
		t.Errorf("Weight(Falloff) = %v, want 0.5", got)
	}
}

func TestRasterizeRoundsHalfToEven(t *testing.T) {
	// Two equidistant nodes average to exactly .5 before rounding.
	nodes := []gradient.Node{
		{X: 0, Y: 0, Color: colors.Color{R: 1, G: 2, B: 0}},
		{X: 0, Y: 0, Color: colors.Color{R: 2, G: 3, B: 1}},
	}
	got := ColorAt(nodes, 0, 0)
	want := colors.Color{R: 2, G: 2, B: 0}
	if got != want {
		t.Errorf("ColorAt() = %+v, want %+v", got, want)
	}
}

func TestRasterizeWorkersMatchSerial(t *testing.T) {
	serial, err := Rasterize(defaultNodes(), 97, 53)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{2, 3, 8, 200} {
		parallel, err := Rasterize(defaultNodes(), 97, 53, WithWorkers(n))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(serial.Pix, parallel.Pix) {
			t.Errorf("WithWorkers(%d) output differs from serial", n)
		}
	}
}

func TestRasterizeMatchesColorAt(t *testing.T) {
	img, err := Rasterize(defaultNodes(), 80, 45)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{0, 0}, {16, 9}, {40, 22}, {79, 44}} {
		x, y := p[0], p[1]
		want := ColorAt(defaultNodes(), float64(x)/80*100, float64(y)/45*100)
		if got := colors.FromColor(img.NRGBAAt(x, y)); got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		nodes []gradient.Node
		w, h  int
		code  errors.Code
	}{
		{"no nodes", nil, 10, 10, errors.ErrCodeEmptyMesh},
		{"zero width", defaultNodes(), 0, 10, errors.ErrCodeInvalidSize},
		{"negative height", defaultNodes(), 10, -1, errors.ErrCodeInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rasterize(tt.nodes, tt.w, tt.h)
			if !errors.Is(err, tt.code) {
				t.Errorf("Rasterize() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestColorAtEmpty(t *testing.T) {
	if got := ColorAt(nil, 50, 50); got != colors.Black {
		t.Errorf("ColorAt(nil) = %v, want black", got)
	}
}
