package icon

import (
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// icoSizes are the directly rendered ICO entries.
var icoSizes = []int{16, 32, 48, 128}

// EncodeICO writes a multi-entry ICO of the logo to w: the four
// canonical sizes rendered directly, plus a 256px entry downscaled
// from a 512px master render for a smoother large icon.
func EncodeICO(w io.Writer) error {
	imgs := make([]image.Image, 0, len(icoSizes)+1)
	for _, size := range icoSizes {
		imgs = append(imgs, Render(size))
	}
	imgs = append(imgs, scale(Render(512), 256))
	return ico.EncodeAll(w, imgs)
}

// scale resizes src to size×size with Catmull-Rom resampling.
func scale(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Over, nil)
	return dst
}
