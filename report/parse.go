// Package report builds, renders, parses and cross-checks standard/test
// color comparison reports.
package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mmuldo/colorpi/colorspace"
)

const number = `([-+]?\d+(?:\.\d+)?)`

var (
	deltaE2000Re = regexp.MustCompile(`Delta E2000:\s*(\d+(?:\.\d+)?)`)
	deltaE76Re   = regexp.MustCompile(`Delta E76:\s*(\d+(?:\.\d+)?)`)
	rgbRe        = regexp.MustCompile(`RGB:\s*(\d+)[,\s]+(\d+)[,\s]+(\d+)`)
	cmykRe       = regexp.MustCompile(`CMYK:\s*(\d+)%[,\s]*(\d+)%[,\s]*(\d+)%[,\s]*(\d+)%`)
	hexRe        = regexp.MustCompile(`HEX:\s*#?([A-Fa-f0-9]{6})`)
	cielabRe     = regexp.MustCompile(`CIELAB:\s*` + number + `[,\s]+` + number + `[,\s]+` + number)
	lchRe        = regexp.MustCompile(`(?i:LCH)(?:\(ab\))?:?\s*` + number + `[,\s]+` + number + `[,\s]+` + number + `°?`)
)

// Measurement is one sample as printed in a report.
type Measurement struct {
	RGB  colorspace.RGB
	CMYK colorspace.CMYK
	Hex  string
	Lab  colorspace.Lab
	LCh  colorspace.LCh
}

// Reading is everything Parse extracts from a report: the two printed
// scores and the standard and test measurements.
type Reading struct {
	DeltaE2000 float64
	DeltaE76   float64
	Standard   Measurement
	Test       Measurement
}

// Parse extracts a Reading from report text, e.g. OCR output of a
// spectrophotometer printout. Each field must appear twice (standard
// first, then test); missing fields are listed in the error.
func Parse(text string) (*Reading, error) {
	var r Reading
	var missing []string
	var errs []string

	if m := deltaE2000Re.FindStringSubmatch(text); m != nil {
		r.DeltaE2000, _ = strconv.ParseFloat(m[1], 64)
	} else {
		missing = append(missing, "Delta E2000")
	}
	if m := deltaE76Re.FindStringSubmatch(text); m != nil {
		r.DeltaE76, _ = strconv.ParseFloat(m[1], 64)
	} else {
		missing = append(missing, "Delta E76")
	}

	if ms := rgbRe.FindAllStringSubmatch(text, 2); len(ms) == 2 {
		for i, dst := range []*colorspace.RGB{&r.Standard.RGB, &r.Test.RGB} {
			rgb, err := parseRGB(ms[i][1:])
			if err != nil {
				errs = append(errs, err.Error())
			}
			*dst = rgb
		}
	} else {
		missing = append(missing, "RGB")
	}

	if ms := cmykRe.FindAllStringSubmatch(text, 2); len(ms) == 2 {
		for i, dst := range []*colorspace.CMYK{&r.Standard.CMYK, &r.Test.CMYK} {
			cmyk, err := parseCMYK(ms[i][1:])
			if err != nil {
				errs = append(errs, err.Error())
			}
			*dst = cmyk
		}
	} else {
		missing = append(missing, "CMYK")
	}

	if ms := hexRe.FindAllStringSubmatch(text, 2); len(ms) == 2 {
		r.Standard.Hex = "#" + strings.ToLower(ms[0][1])
		r.Test.Hex = "#" + strings.ToLower(ms[1][1])
	} else {
		missing = append(missing, "HEX")
	}

	if ms := cielabRe.FindAllStringSubmatch(text, 2); len(ms) == 2 {
		for i, dst := range []*colorspace.Lab{&r.Standard.Lab, &r.Test.Lab} {
			v := parseFloats(ms[i][1:])
			*dst = colorspace.Lab{L: v[0], A: v[1], B: v[2]}
		}
	} else {
		missing = append(missing, "CIELAB")
	}

	if ms := lchRe.FindAllStringSubmatch(text, 2); len(ms) == 2 {
		for i, dst := range []*colorspace.LCh{&r.Standard.LCh, &r.Test.LCh} {
			v := parseFloats(ms[i][1:])
			*dst = colorspace.LCh{L: v[0], C: v[1], H: v[2]}
		}
	} else {
		missing = append(missing, "LCH")
	}

	if len(missing) > 0 {
		errs = append(errs, "missing "+strings.Join(missing, ", "))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to parse report: %s", strings.Join(errs, "; "))
	}
	return &r, nil
}

func parseRGB(s []string) (colorspace.RGB, error) {
	var v [3]uint8
	for i := range v {
		n, err := strconv.ParseUint(s[i], 10, 8)
		if err != nil {
			return colorspace.RGB{}, fmt.Errorf("RGB channel %q out of range", s[i])
		}
		v[i] = uint8(n)
	}
	return colorspace.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

func parseCMYK(s []string) (colorspace.CMYK, error) {
	var v [4]int
	for i := range v {
		n, err := strconv.Atoi(s[i])
		if err != nil || n > 100 {
			return colorspace.CMYK{}, fmt.Errorf("CMYK component %q out of range", s[i])
		}
		v[i] = n
	}
	return colorspace.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
}

// parseFloats is only fed regexp captures of number, which always parse.
func parseFloats(s []string) []float64 {
	v := make([]float64, len(s))
	for i := range s {
		v[i], _ = strconv.ParseFloat(s[i], 64)
	}
	return v
}
