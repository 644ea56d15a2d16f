package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/delta"
)

// splitTriple splits "a,b,c" or "a b c" into three fields.
func splitTriple(s string) ([]string, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected three values, got %q", s)
	}
	return fields, nil
}

// parseRGB reads "R,G,B", "R G B" or a hex code.
func parseRGB(s string) (colorspace.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colorspace.ParseHex(s)
	}

	fields, err := splitTriple(s)
	if err != nil {
		return colorspace.RGB{}, err
	}
	return rgbFromFields(fields)
}

func rgbFromFields(fields []string) (colorspace.RGB, error) {
	var v [3]uint8
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return colorspace.RGB{}, fmt.Errorf("RGB channel %q must be an integer between 0 and 255", f)
		}
		v[i] = uint8(n)
	}
	return colorspace.RGB{R: v[0], G: v[1], B: v[2]}, nil
}

// parseLab reads "L,a,b" or "L a b".
func parseLab(s string) (colorspace.Lab, error) {
	fields, err := splitTriple(s)
	if err != nil {
		return colorspace.Lab{}, err
	}

	var v [3]float64
	for i, f := range fields {
		v[i], err = strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return colorspace.Lab{}, fmt.Errorf("invalid Lab component %q", f)
		}
	}
	return colorspace.Lab{L: v[0], A: v[1], B: v[2]}, nil
}

func parseMetrics(names []string) ([]delta.Metric, error) {
	if len(names) == 0 {
		return delta.Metrics(), nil
	}

	metrics := make([]delta.Metric, 0, len(names))
	for _, n := range names {
		m, err := delta.ParseMetric(n)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}
