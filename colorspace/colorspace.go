// Package colorspace derives HEX, CMYK, CIELAB and LCh representations of
// an RGB sample.
package colorspace

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color observation, e.g. the average of an image region.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (rgb RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B)
}

// Hex returns the lowercase #rrggbb form.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Normalize scales each channel into [0,1].
func (rgb RGB) Normalize() Normalized {
	return Normalized{float64(rgb.R) / 255, float64(rgb.G) / 255, float64(rgb.B) / 255}
}

// Normalized is an RGB triple scaled into [0,1].
type Normalized [3]float64

// Lab is a CIELAB triple (D65).
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

func (lab Lab) String() string {
	return fmt.Sprintf("%.1f, %.1f, %.1f", lab.L, lab.A, lab.B)
}

// LCh re-expresses lab in cylindrical form. H is in degrees, [0,360).
func (lab Lab) LCh() LCh {
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCh{L: lab.L, C: math.Hypot(lab.A, lab.B), H: h}
}

// Rounded returns lab with each component rounded to one decimal.
func (lab Lab) Rounded() Lab {
	return Lab{L: round1(lab.L), A: round1(lab.A), B: round1(lab.B)}
}

// LCh is lightness, chroma and hue angle.
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

func (lch LCh) String() string {
	return fmt.Sprintf("%.1f, %.1f, %.1f°", lch.L, lch.C, lch.H)
}

// Rounded returns lch rounded to one decimal. A hue that rounds up to 360
// wraps to 0.
func (lch LCh) Rounded() LCh {
	h := round1(lch.H)
	if h >= 360 {
		h -= 360
	}
	return LCh{L: round1(lch.L), C: round1(lch.C), H: h}
}

// CMYK holds integer percentages. It is a naive subtractive approximation
// for display and is neither color managed nor invertible.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

func (c CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}

// ToCMYK approximates rgb in CMYK.
func ToCMYK(rgb RGB) CMYK {
	c := 1 - float64(rgb.R)/255
	m := 1 - float64(rgb.G)/255
	y := 1 - float64(rgb.B)/255
	k := math.Min(c, math.Min(m, y))

	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: percent((c - k) / (1 - k)),
		M: percent((m - k) / (1 - k)),
		Y: percent((y - k) / (1 - k)),
		K: percent(k),
	}
}

// Conversion is every representation of one RGB sample. Lab and LCh keep
// full precision; use Display for presentation.
type Conversion struct {
	RGB  RGB    `json:"rgb"`
	Hex  string `json:"hex"`
	CMYK CMYK   `json:"cmyk"`
	Lab  Lab    `json:"lab"`
	LCh  LCh    `json:"lch"`
}

// Display returns a copy of c with Lab and LCh rounded to one decimal.
func (c Conversion) Display() Conversion {
	c.Lab = c.Lab.Rounded()
	c.LCh = c.LCh.Rounded()
	return c
}

// Converter converts RGB samples through a Transform. It holds no mutable
// state and may be shared between goroutines.
type Converter struct {
	transform Transform
}

// NewConverter returns a Converter using t. A nil t selects go-chromath.
func NewConverter(t Transform) *Converter {
	if t == nil {
		t = NewChromath()
	}
	return &Converter{transform: t}
}

// Convert derives HEX, CMYK, Lab and LCh for rgb.
func (cv *Converter) Convert(rgb RGB) (Conversion, error) {
	lab, err := cv.Lab(rgb.Normalize())
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		RGB:  rgb,
		Hex:  rgb.Hex(),
		CMYK: ToCMYK(rgb),
		Lab:  lab,
		LCh:  lab.LCh(),
	}, nil
}

// ConvertColor converts c at 8-bit depth, ignoring alpha.
func (cv *Converter) ConvertColor(c color.Color) (Conversion, error) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return cv.Convert(RGB{R: n.R, G: n.G, B: n.B})
}

// Lab converts a normalized triple. Channels outside [0,1] are passed
// through unchecked; NaN and Inf are rejected.
func (cv *Converter) Lab(n Normalized) (Lab, error) {
	input := fmt.Sprintf("rgb(%g, %g, %g)", n[0], n[1], n[2])
	if cv == nil || cv.transform == nil {
		return Lab{}, &ConversionError{Input: input, Reason: "no color transform available"}
	}
	for _, v := range n {
		if !finite(v) {
			return Lab{}, &ConversionError{Input: input, Reason: "channel is not a finite number"}
		}
	}

	lab := cv.transform.ToLab(n)
	if !finite(lab.L) || !finite(lab.A) || !finite(lab.B) {
		return Lab{}, &ConversionError{Input: input, Reason: "transform produced a non-finite Lab value"}
	}
	return lab, nil
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimSpace(s)
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if len(h) != 7 {
		return RGB{}, &ConversionError{Input: s, Reason: "expected six hex digits"}
	}
	c, err := colorful.Hex(strings.ToLower(h))
	if err != nil {
		return RGB{}, &ConversionError{Input: s, Reason: "invalid hex color", Err: err}
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
