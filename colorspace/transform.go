package colorspace

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
)

// Transform converts normalized sRGB into CIELAB under the D65 reference white.
type Transform interface {
	ToLab(n Normalized) Lab
}

// Chromath is the default Transform, backed by go-chromath.
type Chromath struct {
	rgb2Lab func(chromath.RGB) chromath.Lab
}

// NewChromath returns a Transform for [0,1] sRGB input (no chromatic
// adaptation, sRGB companding, D65 white).
func NewChromath() *Chromath {
	rgb2Xyz := chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	lab2Xyz := chromath.NewLabTransformer(&chromath.IlluminantRefD65)

	return &Chromath{
		rgb2Lab: func(rgb chromath.RGB) chromath.Lab {
			return lab2Xyz.Invert(rgb2Xyz.Convert(rgb))
		},
	}
}

func (t *Chromath) ToLab(n Normalized) Lab {
	lab := t.rgb2Lab(chromath.RGB{n[0], n[1], n[2]})
	return Lab{L: lab.L(), A: lab.A(), B: lab.B()}
}

// Colorful is an alternate Transform backed by go-colorful.
type Colorful struct{}

// NewColorful returns a go-colorful backed Transform.
func NewColorful() Colorful { return Colorful{} }

// ToLab rescales go-colorful's unit-range Lab to the usual L in [0,100].
func (Colorful) ToLab(n Normalized) Lab {
	l, a, b := colorful.Color{R: n[0], G: n[1], B: n[2]}.Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// TransformByName selects a Transform by its configuration name.
func TransformByName(name string) (Transform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chromath":
		return NewChromath(), nil
	case "colorful":
		return NewColorful(), nil
	default:
		return nil, &ConversionError{
			Input:  name,
			Reason: fmt.Sprintf("unknown transform (valid transforms: %v)", TransformNames()),
		}
	}
}

// TransformNames lists the names accepted by TransformByName.
func TransformNames() []string {
	return []string{"chromath", "colorful"}
}
