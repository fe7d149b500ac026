package render

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	cases := map[string]color.Color{
		"none":    nil,
		"#ffffff": color.White,
		"#000000": color.Black,
		"#ff8000": color.RGBA{R: 0xff, G: 0x80, A: 0xff},
	}
	for exp, c := range cases {
		if got := Hex(c); got != exp {
			t.Errorf("Hex(%v) = %s, expected %s", c, got, exp)
		}
	}
}

func TestFontType_String(t *testing.T) {
	if v := FontElementName.String(); v != "element-name" {
		t.Error(v)
	}
	if v := FontType(42).String(); v != "FontType(42)" {
		t.Error(v)
	}
}
