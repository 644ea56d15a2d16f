// Package sample reduces a region of an already decoded image to RGB
// samples.
package sample

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/esimov/colorquant"

	"github.com/mmuldo/colorpi/colorspace"
)

type ColorCount struct {
	Color colorspace.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Mean averages the non-transparent pixels of img inside r. The region is
// clipped to the image bounds.
func Mean(img image.Image, r image.Rectangle) (colorspace.RGB, error) {
	requested := r
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return colorspace.RGB{}, fmt.Errorf("region %v does not overlap image bounds %v", requested, img.Bounds())
	}

	var rt, gt, bt float64
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			rt += float64(c.R)
			gt += float64(c.G)
			bt += float64(c.B)
			n++
		}
	}
	if n == 0 {
		return colorspace.RGB{}, fmt.Errorf("region %v is fully transparent", r)
	}

	return colorspace.RGB{
		R: uint8(math.Round(rt / float64(n))),
		G: uint8(math.Round(gt / float64(n))),
		B: uint8(math.Round(bt / float64(n))),
	}, nil
}

// Dominant quantizes img to at most num colors and ranks them by the number
// of pixels each covers.
func Dominant(img image.Image, num int) (ColorCountList, error) {
	if num < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", num)
	}
	if num > 256 {
		return nil, fmt.Errorf("color count too large: %d (maximum: 256)", num)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)

	m := make(map[colorspace.RGB]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := o.NRGBAAt(x, y)
			m[colorspace.RGB{R: c.R, G: c.G, B: c.B}]++
		}
	}

	return rankColors(m), nil
}

func rankColors(m map[colorspace.RGB]int) ColorCountList {
	cc := make(ColorCountList, 0, len(m))
	for k, v := range m {
		cc = append(cc, ColorCount{k, v})
	}

	sort.Sort(cc)
	return cc
}
