package sample

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/mmuldo/colorpi/colorspace"
)

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestMeanUniform(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(img, img.Bounds(), color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	got, err := Mean(img, img.Bounds())
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorspace.RGB{R: 10, G: 20, B: 30}); got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
}

func TestMeanRoundsAndClips(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	fill(img, image.Rect(0, 0, 2, 2), color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	fill(img, image.Rect(2, 0, 4, 2), color.NRGBA{R: 255, G: 1, B: 100, A: 255})

	// The requested region extends past the right edge.
	got, err := Mean(img, image.Rect(0, 0, 10, 2))
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorspace.RGB{R: 128, G: 1, B: 50}); got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
}

func TestMeanSkipsTransparentPixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})

	got, err := Mean(img, img.Bounds())
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorspace.RGB{R: 200, G: 100, B: 50}); got != want {
		t.Errorf("Mean = %v, want %v", got, want)
	}
}

func TestMeanErrors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	_, err := Mean(img, image.Rect(5, 5, 6, 6))
	if err == nil {
		t.Error("expected error for region outside the image")
	} else if !strings.Contains(err.Error(), "(5,5)-(6,6)") {
		t.Errorf("error %q does not name the requested region", err)
	}
	if _, err := Mean(img, img.Bounds()); err == nil {
		t.Error("expected error for a fully transparent region")
	}
}

func TestDominant(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fill(img, image.Rect(0, 0, 8, 6), color.NRGBA{R: 220, G: 10, B: 10, A: 255})
	fill(img, image.Rect(0, 6, 8, 8), color.NRGBA{R: 10, G: 10, B: 220, A: 255})

	got, err := Dominant(img, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("got %d colors, want 1 or 2", len(got))
	}

	total := 0
	for i, cc := range got {
		total += cc.Count
		if i > 0 && got[i-1].Count < cc.Count {
			t.Errorf("colors not ranked by count: %+v", got)
		}
	}
	if total != 64 {
		t.Errorf("counts sum to %d, want 64", total)
	}
	if top := got[0].Color; top.R <= top.B {
		t.Errorf("most frequent color %v should be the red fill", top)
	}
}

func TestDominantRejectsBadCount(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for _, n := range []int{0, -1, 257} {
		if _, err := Dominant(img, n); err == nil {
			t.Errorf("Dominant(img, %d) expected error", n)
		}
	}
}

func TestRankColorsTieBreak(t *testing.T) {
	got := rankColors(map[colorspace.RGB]int{
		{R: 2}: 5,
		{R: 1}: 5,
		{R: 9}: 7,
	})
	want := []colorspace.RGB{{R: 9}, {R: 1}, {R: 2}}
	for i, w := range want {
		if got[i].Color != w {
			t.Errorf("rank %d = %v, want %v", i, got[i].Color, w)
		}
	}
}
