package delta

import (
	"errors"
	"math"
	"testing"

	"github.com/mmuldo/colorpi/colorspace"
)

var (
	standard = colorspace.Lab{L: 50.0, A: 2.6772, B: -79.7751}
	sample   = colorspace.Lab{L: 50.0, A: 0.0, B: -82.7485}
)

var pairs = [][2]colorspace.Lab{
	{standard, sample},
	{{L: 50, A: 2.5, B: 0}, {L: 73, A: 25, B: -18}},
	{{L: 22.7233, A: 20.0904, B: -46.694}, {L: 23.0331, A: 14.973, B: -42.5619}},
	{{L: 90.8027, A: -2.0831, B: 1.441}, {L: 91.1528, A: -1.6435, B: 0.0447}},
	{{L: 0, A: 0, B: 0}, {L: 100, A: 0, B: 0}},
	{{L: 60, A: -128, B: 127}, {L: 10, A: 127, B: -128}},
}

func TestCIE76(t *testing.T) {
	d, err := DeltaE(colorspace.Lab{L: 50, A: 0, B: 0}, colorspace.Lab{L: 53, A: 4, B: 0}, CIE76)
	if err != nil {
		t.Fatal(err)
	}
	if d != 5 {
		t.Errorf("CIE76 = %v, want 5", d)
	}
}

func TestSymmetry(t *testing.T) {
	for _, m := range Metrics() {
		for _, p := range pairs {
			ab, err := DeltaE(p[0], p[1], m)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := DeltaE(p[1], p[0], m)
			if err != nil {
				t.Fatal(err)
			}
			if ab != ba {
				t.Errorf("%s not symmetric for %+v: %v vs %v", m, p, ab, ba)
			}
		}
	}
}

func TestZeroForIdenticalInput(t *testing.T) {
	for _, m := range Metrics() {
		for _, p := range pairs {
			d, err := DeltaE(p[0], p[0], m)
			if err != nil {
				t.Fatal(err)
			}
			if d != 0 {
				t.Errorf("%s(%+v, itself) = %v, want 0", m, p[0], d)
			}
		}
	}
}

func TestCIE76PositiveForDistinctInput(t *testing.T) {
	for _, p := range pairs {
		if d := CIE1976(p[0], p[1]); !(d > 0) {
			t.Errorf("CIE76(%+v) = %v, want > 0", p, d)
		}
	}

	nudged := standard
	nudged.B = math.Nextafter(nudged.B, 0)
	if d := CIE1976(standard, nudged); !(d > 0) {
		t.Errorf("CIE76 of one-ulp difference = %v, want > 0", d)
	}
}

func TestHueDifferenceClamp(t *testing.T) {
	tests := []struct {
		da, db, dC float64
	}{
		{0, 0, 1e-9},
		{1, 1, 2},
		{3, 4, 5.000000000001},
		{-2.5, 0, 2.5000001},
	}

	for _, tt := range tests {
		if tt.dC*tt.dC <= tt.da*tt.da+tt.db*tt.db {
			t.Fatalf("test case %+v is not adversarial", tt)
		}
		got := hueDifference(tt.da, tt.db, tt.dC)
		if math.IsNaN(got) || got != 0 {
			t.Errorf("hueDifference(%v, %v, %v) = %v, want 0", tt.da, tt.db, tt.dC, got)
		}
	}

	if got := hueDifference(3, 4, 0); got != 5 {
		t.Errorf("hueDifference(3, 4, 0) = %v, want 5", got)
	}
}

func TestCIE2000NeverNaN(t *testing.T) {
	// Nearly collinear chroma vectors push Δa²+Δb²-ΔC² into cancellation.
	for i := 1; i <= 200; i++ {
		s := float64(i) * 0.731
		c1 := colorspace.Lab{L: 40, A: 3 * s, B: 4 * s}
		c2 := colorspace.Lab{L: 40, A: 3*s + 1e-13, B: 4*s + 1e-13}
		d := CIE2000(c1, c2)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			t.Fatalf("CIE2000(%+v, %+v) = %v", c1, c2, d)
		}
	}
}

func TestCIE2000ReferencePair(t *testing.T) {
	simplified, err := DeltaE(standard, sample, CIEDE2000)
	if err != nil {
		t.Fatal(err)
	}
	if simplified <= 0 {
		t.Fatalf("CIEDE2000 = %v, want a small positive number", simplified)
	}
	if math.Abs(simplified-1.643) > 0.01 {
		t.Errorf("simplified CIEDE2000 = %.4f, want about 1.643", simplified)
	}

	textbook := Textbook2000(standard, sample)
	if math.Abs(textbook-2.0425) > 0.01 {
		t.Errorf("textbook CIEDE2000 = %.4f, want about 2.0425", textbook)
	}
	if math.Abs(textbook-simplified) < 0.3 {
		t.Errorf("expected simplified (%.4f) to diverge from textbook (%.4f)", simplified, textbook)
	}
}

func TestCIE2000LightnessOnly(t *testing.T) {
	// With zero chroma only the lightness term contributes: ΔL / SL.
	c1 := colorspace.Lab{L: 40, A: 0, B: 0}
	c2 := colorspace.Lab{L: 60, A: 0, B: 0}

	l50 := 0.0
	want := 20 / (1 + 0.015*l50/math.Sqrt(20+l50))
	if got := CIE2000(c1, c2); math.Abs(got-want) > 1e-12 {
		t.Errorf("CIE2000 = %v, want %v", got, want)
	}
}

func TestUnsupportedMetric(t *testing.T) {
	d, err := DeltaE(standard, sample, Metric("CIE94"))
	var metricErr *UnsupportedMetricError
	if !errors.As(err, &metricErr) {
		t.Fatalf("error = %v, want *UnsupportedMetricError", err)
	}
	if metricErr.Metric != "CIE94" {
		t.Errorf("Metric = %q, want CIE94", metricErr.Metric)
	}
	if d != 0 {
		t.Errorf("score = %v, want 0 on error", d)
	}
}

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{"CIE76", CIE76, false},
		{"cie76", CIE76, false},
		{"dE76", CIE76, false},
		{"ciede2000", CIEDE2000, false},
		{" 2000 ", CIEDE2000, false},
		{"CIE94", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMetric(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMetric(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMetric(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScores(t *testing.T) {
	scores, err := Scores(standard, sample, Metrics()...)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	if scores[CIE76] != CIE1976(standard, sample) {
		t.Errorf("CIE76 score mismatch")
	}

	scores, err = Scores(standard, sample, CIE76, "CIE94")
	if err == nil {
		t.Fatal("expected error for CIE94")
	}
	if scores != nil {
		t.Errorf("expected no partial scores, got %v", scores)
	}
}

func TestDeltaEOnConversions(t *testing.T) {
	cv := colorspace.NewConverter(nil)

	a, err := cv.Convert(colorspace.RGB{R: 120, G: 40, B: 200})
	if err != nil {
		t.Fatal(err)
	}
	b, err := cv.Convert(colorspace.RGB{R: 121, G: 40, B: 200})
	if err != nil {
		t.Fatal(err)
	}

	full := CIE2000(a.Lab, b.Lab)
	if full <= 0 {
		t.Fatalf("full precision score = %v, want > 0", full)
	}
	if got, _ := DeltaE(a.Lab, b.Lab, CIEDE2000); got != full {
		t.Errorf("DeltaE = %v, want %v from unrounded Lab", got, full)
	}
	if rounded, _ := DeltaE(a.Display().Lab, b.Display().Lab, CIEDE2000); rounded == full {
		t.Errorf("DeltaE from display-rounded Lab = %v, want it to differ from %v", rounded, full)
	}
}
