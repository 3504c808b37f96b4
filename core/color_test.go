package core

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#0a0e1a", RGB{0x0a, 0x0e, 0x1a}},
		{"22d3ee", RGB{0x22, 0xd3, 0xee}},
		{"#fff", RGB{255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q): expected %v, got %v", tt.in, tt.want, got)
		}
		if _, err := ParseHex(got.Hex()); err != nil {
			t.Errorf("Hex output %q not parseable", got.Hex())
		}
	}

	for _, bad := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Expected alpha 0 to keep dst, got %v", got)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Expected alpha 1 to return src, got %v", got)
	}
	if got := dst.Blend(src, 0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half blend {100 50 25}, got %v", got)
	}
}

func TestScale(t *testing.T) {
	c := RGB{100, 200, 50}
	if got := c.Scale(0.5); got != (RGB{50, 100, 25}) {
		t.Errorf("Expected halved color, got %v", got)
	}
	if got := c.Scale(-1); got != RGBBlack {
		t.Errorf("Expected black for negative factor, got %v", got)
	}
}

func TestColorConversions(t *testing.T) {
	c := RGB{10, 20, 30}
	n := c.NRGBA(0.5)
	if n.A != 128 || n.R != 10 {
		t.Errorf("Expected NRGBA with alpha 128, got %v", n)
	}
	if got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255}); got != c {
		t.Errorf("Expected %v from opaque color, got %v", c, got)
	}
	if got := FromColor(color.RGBA{}); got != RGBBlack {
		t.Errorf("Expected black for transparent, got %v", got)
	}
}
