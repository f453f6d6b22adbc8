package limatex

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// SourceFromImage converts an image into the packed RGB888 source
// layout CreateTexture reads by default: 3 bytes per pixel, row
// starts aligned to 4 bytes, alpha dropped.
//
// This is a convenience for callers holding decoded images; decoding
// itself is out of scope for limatex.
func SourceFromImage(img image.Image) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Copy(nrgba, image.Point{}, img, b, xdraw.Src, nil)

	pitch := alignUp(rgbBytes*width, pitchAlign)
	pix = make([]byte, pitch*height)
	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := pix[y*pitch:]
		for x := 0; x < width; x++ {
			dst[rgbBytes*x+0] = src[4*x+0]
			dst[rgbBytes*x+1] = src[4*x+1]
			dst[rgbBytes*x+2] = src[4*x+2]
		}
	}
	return pix, width, height
}
