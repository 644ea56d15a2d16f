package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mmuldo/colorpi/colorspace"
	"github.com/mmuldo/colorpi/delta"
)

// Discrepancy is a printed value that disagrees with what the report's own
// data implies.
type Discrepancy struct {
	Field    string
	Reported string
	Computed string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: reported %s, computed %s", d.Field, d.Reported, d.Computed)
}

// Verify recomputes both scores from the reading's Lab pair and checks each
// measurement's HEX and CMYK against its RGB and its LCh against its Lab.
// Scores or LCh values more than tolerance apart from the printed ones are
// reported. Printed Lab values are usually rounded, so a tolerance of a few
// tenths is reasonable.
func Verify(r *Reading, tolerance float64) []Discrepancy {
	var out []Discrepancy

	scores := []struct {
		metric   delta.Metric
		reported float64
	}{
		{delta.CIEDE2000, r.DeltaE2000},
		{delta.CIE76, r.DeltaE76},
	}
	for _, s := range scores {
		computed, _ := delta.DeltaE(r.Standard.Lab, r.Test.Lab, s.metric)
		if math.Abs(computed-s.reported) > tolerance {
			out = append(out, Discrepancy{
				Field:    "Delta " + Label(s.metric),
				Reported: strconv.FormatFloat(s.reported, 'f', -1, 64),
				Computed: fmt.Sprintf("%.2f", computed),
			})
		}
	}

	for _, s := range []struct {
		name string
		m    Measurement
	}{
		{"Standard", r.Standard},
		{"Test", r.Test},
	} {
		rgb, err := colorspace.ParseHex(s.m.Hex)
		if err != nil || rgb != s.m.RGB {
			out = append(out, Discrepancy{
				Field:    s.name + " HEX",
				Reported: s.m.Hex,
				Computed: s.m.RGB.Hex(),
			})
		}

		if cmyk := colorspace.ToCMYK(s.m.RGB); !cmykNear(cmyk, s.m.CMYK) {
			out = append(out, Discrepancy{
				Field:    s.name + " CMYK",
				Reported: s.m.CMYK.String(),
				Computed: cmyk.String(),
			})
		}

		if lch := s.m.Lab.LCh(); lchDistance(lch, s.m.LCh) > tolerance {
			out = append(out, Discrepancy{
				Field:    s.name + " LCH",
				Reported: s.m.LCh.String(),
				Computed: lch.Rounded().String(),
			})
		}
	}

	return out
}

// cmykNear allows one percentage point per channel for printers that
// truncate instead of rounding.
func cmykNear(a, b colorspace.CMYK) bool {
	return absInt(a.C-b.C) <= 1 && absInt(a.M-b.M) <= 1 &&
		absInt(a.Y-b.Y) <= 1 && absInt(a.K-b.K) <= 1
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// lchDistance compares two LCh values in Lab space, so hue differences
// count for little at low chroma.
func lchDistance(x, y colorspace.LCh) float64 {
	xa, xb := polar(x)
	ya, yb := polar(y)
	return math.Max(math.Abs(x.L-y.L), math.Hypot(xa-ya, xb-yb))
}

func polar(l colorspace.LCh) (a, b float64) {
	s, c := math.Sincos(l.H * math.Pi / 180)
	return l.C * c, l.C * s
}
