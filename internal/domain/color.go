package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is one swatch in a palette, carried in the three representations
// clients render: hex, RGB, and HSL. Name is the best-effort human name.
type Color struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
}

// RGB holds 0..255 channel values.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees and saturation/lightness as percentages.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHex reports whether s is a #RRGGBB hex color.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// NormalizeHex canonicalizes a hex color to uppercase #RRGGBB form,
// tolerating a missing leading hash. It fails on anything else.
func NormalizeHex(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	if !ValidHex(s) {
		return "", fmt.Errorf("invalid hex color %q", s)
	}
	return strings.ToUpper(s), nil
}

// HexToRGB converts a normalized #RRGGBB value to channel values.
func HexToRGB(hex string) (RGB, error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return RGB{}, err
	}
	r, _ := strconv.ParseInt(norm[1:3], 16, 32)
	g, _ := strconv.ParseInt(norm[3:5], 16, 32)
	b, _ := strconv.ParseInt(norm[5:7], 16, 32)
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHSL converts channel values to hue/saturation/lightness, rounding the
// same way the rest of the system stores them (degrees and whole percent).
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
