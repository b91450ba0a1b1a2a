package colors_test

import (
	"fmt"

	"github.com/matzehuels/gradientlab/pkg/colors"
)

func ExampleHexToRGB() {
	c, err := colors.HexToRGB("#4f46e5")
	if err != nil {
		panic(err)
	}
	fmt.Println(c.R, c.G, c.B)
	// Output: 79 70 229
}

func ExampleRGBToHex() {
	fmt.Println(colors.RGBToHex(79, 70, 229))
	// Output: #4f46e5
}

func ExampleHexToHSL() {
	hsl, _ := colors.HexToHSL("#ff0000")
	fmt.Println(hsl)
	// Output: hsl(0, 100%, 50%)
}

func ExampleParseOr() {
	// Half-typed input falls back instead of failing.
	fmt.Println(colors.ParseOr("#4f4", colors.Black))
	// Output: #000000
}
