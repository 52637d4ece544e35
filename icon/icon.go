// Package icon procedurally renders the Page Monitor logo: a stylized
// eye inside an n8n-style network, drawn onto a transparent canvas.
package icon

import (
	"image"
	"image/color"
	"math"
)

// n8n brand palette (purple/violet).
var (
	purpleDark    = color.NRGBA{R: 0x6E, G: 0x41, B: 0xE2, A: 0xFF} // #6E41E2
	purpleLight   = color.NRGBA{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF} // #8B5CF6
	purpleLighter = color.NRGBA{R: 0xA7, G: 0x8B, B: 0xFA, A: 0xFF} // #A78BFA
	purpleDarker  = color.NRGBA{R: 0x4C, G: 0x1D, B: 0x95, A: 0xFF} // #4C1D95

	eyeWhite       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xF0}
	pupilInk       = color.NRGBA{R: 0x1F, G: 0x1F, B: 0x1F, A: 0xFF}
	highlightWhite = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xC8}
)

// Render draws the logo onto a transparent size×size canvas. It is a
// pure function of size: the same size always yields identical pixels.
// Shapes are drawn in a fixed order and each draw replaces the pixels
// it covers, so later shapes occlude earlier ones. Everything outside
// the main circle (distance > 0.47·size from center) stays transparent.
// Behavior for size <= 0 is undefined.
func Render(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	center := size / 2
	maxR := frac(size, 0.47)

	// Background disc with an approximated radial gradient: concentric
	// circles from the rim inward, each filled with a slightly
	// different blend of the two purples and outlined in the constant
	// dark purple. The smallest circle wins at the center.
	for r := maxR; r >= 1; r-- {
		ratio := float64(r) / float64(maxR)
		fill := color.NRGBA{
			R: blend(purpleDark.R, purpleLight.R, ratio),
			G: blend(purpleDark.G, purpleLight.G, ratio),
			B: blend(purpleDark.B, purpleLight.B, ratio),
			A: 0xFF,
		}
		fillCircle(img, center, center, r, fill)
		outlineCircle(img, center, center, r, purpleDarker)
	}

	// Eye (white translucent ellipse), then iris, pupil and highlight
	// stacked on top of each other.
	eyeW := frac(size, 0.27)
	eyeH := frac(size, 0.20)
	fillEllipse(img, center, center, eyeW, eyeH, eyeWhite)
	fillCircle(img, center, center, frac(size, 0.16), purpleLight)
	fillCircle(img, center, center, frac(size, 0.09), pupilInk)

	off := frac(size, 0.03)
	fillCircle(img, center+off, center-off, off, highlightWhite)

	// Network nodes in the four corners.
	nodeR := max(2, frac(size, 0.03))
	lo, hi := frac(size, 0.23), frac(size, 0.77)
	nodes := [4][2]int{{lo, lo}, {hi, lo}, {lo, hi}, {hi, hi}}
	for _, n := range nodes {
		fillCircle(img, n[0], n[1], nodeR, purpleLighter)
	}

	// Workflow connections from each node to the nearest corner of the
	// eye's bounding box. Too noisy below 32px, so skipped there.
	if size >= 32 {
		width := max(1, frac(size, 0.015))
		targets := [4][2]int{
			{center - eyeW, center - eyeH},
			{center + eyeW, center - eyeH},
			{center - eyeW, center + eyeH},
			{center + eyeW, center + eyeH},
		}
		for i, n := range nodes {
			drawLine(img, n[0], n[1], targets[i][0], targets[i][1], width, purpleLighter)
		}
	}

	return img
}

// frac returns f·size truncated to an integer.
func frac(size int, f float64) int {
	return int(float64(size) * f)
}

// blend mixes a dark and a light channel by the gradient's fixed 0.3
// factor: dark·(1 − 0.3·ratio) + light·0.3·ratio.
func blend(dark, light uint8, ratio float64) uint8 {
	return uint8(float64(dark)*(1-ratio*0.3) + float64(light)*ratio*0.3)
}

// fillEllipse sets every pixel inside the axis-aligned ellipse with
// center (cx, cy) and radii rx, ry.
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry int, c color.NRGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !(image.Point{X: x, Y: y}).In(img.Rect) {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	fillEllipse(img, cx, cy, r, r, c)
}

// outlineCircle sets the outer half-pixel ring of the circle of radius
// r: pixels with r²−r < dx²+dy² <= r². Staying within the fill keeps
// outline pixels from ever landing outside the main disc.
func outlineCircle(img *image.NRGBA, cx, cy, r int, c color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !(image.Point{X: x, Y: y}).In(img.Rect) {
				continue
			}
			dx, dy := x-cx, y-cy
			d2 := dx*dx + dy*dy
			if d2 > r*r-r && d2 <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// drawLine rasterizes a straight segment of the given stroke width by
// setting every pixel within width/2 of the segment.
func drawLine(img *image.NRGBA, x1, y1, x2, y2, width int, c color.NRGBA) {
	half := float64(width) / 2
	if half < 0.71 {
		half = 0.71 // keep 1px strokes gap-free on steep diagonals
	}
	pad := width + 1
	for y := min(y1, y2) - pad; y <= max(y1, y2)+pad; y++ {
		for x := min(x1, x2) - pad; x <= max(x1, x2)+pad; x++ {
			if !(image.Point{X: x, Y: y}).In(img.Rect) {
				continue
			}
			d := segmentDist(float64(x), float64(y),
				float64(x1), float64(y1), float64(x2), float64(y2))
			if d <= half {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// segmentDist returns the distance from point (px, py) to the segment
// (x1, y1)–(x2, y2).
func segmentDist(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*dx + (py-y1)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
