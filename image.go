package qrcode

import (
	"image"
	"image/color"
)

// Image returns a minimal one-pixel-per-module view of q: black on white, no
// quiet-zone border, no scaling. It exists so a caller can get *some* image
// out of this package without pulling in qrimage; qrimage.Render is the
// supported way to produce a scaled, bordered, encoder-ready image.
func (q *QRCode) Image() image.Image {
	img := image.NewGray(image.Rect(0, 0, q.Size, q.Size))
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			v := uint8(255)
			if q.At(y, x) {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}
