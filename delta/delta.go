// Package delta computes Delta E color differences between two CIELAB
// samples.
//
// Scores from different metrics live on different scales and must not be
// compared with each other.
package delta

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"

	"github.com/mmuldo/colorpi/colorspace"
)

// Metric names a Delta E formula.
type Metric string

const (
	// CIE76 is the Euclidean distance in Lab.
	CIE76 Metric = "CIE76"

	// CIEDE2000 is the simplified CIEDE2000 variant, see CIE2000.
	CIEDE2000 Metric = "CIEDE2000"
)

// Metrics returns the supported metrics.
func Metrics() []Metric {
	return []Metric{CIE76, CIEDE2000}
}

// UnsupportedMetricError reports an unrecognized metric name.
type UnsupportedMetricError struct {
	Metric string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("unsupported delta E metric %q (supported metrics: %v)", e.Metric, Metrics())
}

// ParseMetric resolves a metric name. Matching is case-insensitive and
// accepts the short aliases 76, de76, 2000 and de2000.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cie76", "76", "de76":
		return CIE76, nil
	case "ciede2000", "2000", "de2000":
		return CIEDE2000, nil
	default:
		return "", &UnsupportedMetricError{Metric: s}
	}
}

// DeltaE scores the difference between c1 and c2 under m.
func DeltaE(c1, c2 colorspace.Lab, m Metric) (float64, error) {
	switch m {
	case CIE76:
		return CIE1976(c1, c2), nil
	case CIEDE2000:
		return CIE2000(c1, c2), nil
	default:
		return 0, &UnsupportedMetricError{Metric: string(m)}
	}
}

// Scores evaluates every metric in ms. An unsupported metric fails the
// whole call and no scores are returned.
func Scores(c1, c2 colorspace.Lab, ms ...Metric) (map[Metric]float64, error) {
	scores := make(map[Metric]float64, len(ms))
	for _, m := range ms {
		d, err := DeltaE(c1, c2, m)
		if err != nil {
			return nil, err
		}
		scores[m] = d
	}
	return scores, nil
}

// CIE1976 is the Euclidean distance between c1 and c2.
func CIE1976(c1, c2 colorspace.Lab) float64 {
	dL := c2.L - c1.L
	da := c2.A - c1.A
	db := c2.B - c1.B
	return math.Sqrt(dL*dL + da*da + db*db)
}

// CIE2000 is a simplified CIEDE2000. It has no a' rescaling, no rotation
// term R_T and no hue-angle averaging, and T is evaluated on the mean
// lightness. Results diverge from the reference formula, most visibly in
// the blue region and for near-neutral pairs; see Textbook2000.
func CIE2000(c1, c2 colorspace.Lab) float64 {
	C1 := math.Sqrt(c1.A*c1.A + c1.B*c1.B)
	C2 := math.Sqrt(c2.A*c2.A + c2.B*c2.B)

	dL := c2.L - c1.L
	da := c2.A - c1.A
	db := c2.B - c1.B
	dC := C2 - C1
	dH := hueDifference(da, db, dC)

	avgL := (c1.L + c2.L) / 2
	avgC := (C1 + C2) / 2

	T := 1 - 0.17*cosDeg(avgL-30) +
		0.24*cosDeg(2*avgL) +
		0.32*cosDeg(3*avgL+6) -
		0.20*cosDeg(4*avgL-63)

	l50 := (avgL - 50) * (avgL - 50)
	SL := 1 + 0.015*l50/math.Sqrt(20+l50)
	SC := 1 + 0.045*avgC
	SH := 1 + 0.015*avgC*T

	tL := dL / SL
	tC := dC / SC
	tH := dH / SH
	return math.Sqrt(tL*tL + tC*tC + tH*tH)
}

// hueDifference returns ΔH. Floating point cancellation can leave
// Δa²+Δb² a hair below ΔC², so the radicand is clamped at zero.
func hueDifference(da, db, dC float64) float64 {
	return math.Sqrt(math.Max(da*da+db*db-dC*dC, 0))
}

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

var klch = &deltae.KLChDefault

// Textbook2000 is the full CIEDE2000 (Sharma, Wu and Dalal) with unit
// weights. It is not a selectable metric; it measures how far CIE2000
// drifts from the reference.
func Textbook2000(c1, c2 colorspace.Lab) float64 {
	return deltae.CIE2000(
		chromath.Lab{c1.L, c1.A, c1.B},
		chromath.Lab{c2.L, c2.A, c2.B},
		klch,
	)
}
