package raster

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/go-drift/shapefill/pkg/graphics"
)

// blurPasses is the number of box blur passes used to approximate a
// gaussian.
const blurPasses = 3

// drawBlurred fills path into an offscreen context, blurs the result by
// paint.MaskBlurSigma and composites it onto the canvas.
func (c *Canvas) drawBlurred(path *graphics.Path, paint graphics.Paint) {
	sigma := paint.MaskBlurSigma
	reach := int(math.Ceil(3 * sigma))
	region := c.deviceRect(path.Bounds())
	region = image.Rect(region.Min.X-reach, region.Min.Y-reach, region.Max.X+reach, region.Max.Y+reach).
		Intersect(image.Rect(0, 0, c.width, c.height))
	if region.Empty() {
		return
	}

	off := gg.NewContext(c.width, c.height)
	defer off.Close()
	dx, dy := c.ctx.TransformPoint(0, 0)
	off.Translate(dx, dy)
	appendPath(off, path)
	off.SetFillBrush(c.brush(paint))
	off.SetFillRule(fillRule(path.FillRule))
	c.record("raster.Canvas.DrawPath", off.Fill())

	mask := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(mask, mask.Bounds(), off.Image(), image.Point{}, draw.Src)
	boxBlur(mask, region, boxRadius(sigma))

	buf := image.NewNRGBA(mask.Bounds())
	draw.Draw(buf, region, mask, region.Min, draw.Src)
	c.fillDevice(region, buf, "raster.Canvas.DrawPath")
}

// boxRadius returns the radius of a box filter that, applied blurPasses
// times, has the variance of a gaussian with the given sigma.
func boxRadius(sigma float64) int {
	width := math.Sqrt(12*sigma*sigma/blurPasses + 1)
	return max(1, int(math.Round((width-1)/2)))
}

// boxBlur blurs the premultiplied pixels of img inside region in place.
func boxBlur(img *image.RGBA, region image.Rectangle, radius int) {
	w, h := region.Dx(), region.Dy()
	line := make([]uint8, max(w, h)*4)
	for range blurPasses {
		for y := region.Min.Y; y < region.Max.Y; y++ {
			start := img.PixOffset(region.Min.X, y)
			blurLine(img.Pix[start:], 4, w, radius, line)
		}
		for x := region.Min.X; x < region.Max.X; x++ {
			start := img.PixOffset(x, region.Min.Y)
			blurLine(img.Pix[start:], img.Stride, h, radius, line)
		}
	}
}

// blurLine applies a running-sum box filter to n pixels spaced stride
// bytes apart. Samples outside the line count as transparent.
func blurLine(pix []uint8, stride, n, radius int, scratch []uint8) {
	for i := range n {
		copy(scratch[i*4:i*4+4], pix[i*stride:i*stride+4])
	}
	size := 2*radius + 1
	var sum [4]int
	for i := 0; i <= radius && i < n; i++ {
		for ch := range 4 {
			sum[ch] += int(scratch[i*4+ch])
		}
	}
	for i := range n {
		for ch := range 4 {
			pix[i*stride+ch] = uint8(sum[ch] / size)
		}
		if in := i + radius + 1; in < n {
			for ch := range 4 {
				sum[ch] += int(scratch[in*4+ch])
			}
		}
		if out := i - radius; out >= 0 {
			for ch := range 4 {
				sum[ch] -= int(scratch[out*4+ch])
			}
		}
	}
}
