// Package qrimage rasterizes a *qrcode.QRCode into the raster and vector
// formats a real caller wants: a scaled, bordered image.Image, a PNG
// encoding of one, or an SVG document. The qrcode package itself stays free
// of any notion of scale, border, or output format.
package qrimage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	qrcode "github.com/grkuntzmd/qrencode"
)

// RenderOptions controls how a symbol is rasterized.
type RenderOptions struct {
	Scale  int // Pixels per module. Defaults to 1 if <= 0.
	Border int // Quiet-zone width, in modules. Defaults to 4 if < 0.
}

func (o RenderOptions) normalize() RenderOptions {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Border < 0 {
		o.Border = 4
	}
	return o
}

// Render draws q as a paletted (black/white) image at the requested scale
// and border.
func Render(q *qrcode.QRCode, opts RenderOptions) image.Image {
	opts = opts.normalize()
	dim := (q.Size + 2*opts.Border) * opts.Scale

	img := image.NewPaletted(image.Rect(0, 0, dim, dim), color.Palette{
		color.White,
		color.Black,
	})
	for i := range img.Pix {
		img.Pix[i] = 0 // White until painted dark below.
	}

	for r := 0; r < q.Size; r++ {
		for c := 0; c < q.Size; c++ {
			if !q.At(r, c) {
				continue
			}
			startX := (c + opts.Border) * opts.Scale
			startY := (r + opts.Border) * opts.Scale
			for y := 0; y < opts.Scale; y++ {
				for x := 0; x < opts.Scale; x++ {
					img.SetColorIndex(startX+x, startY+y, 1)
				}
			}
		}
	}

	return img
}

// WritePNG renders q and encodes it as a PNG to w.
func WritePNG(w io.Writer, q *qrcode.QRCode, opts RenderOptions) error {
	return png.Encode(w, Render(q, opts))
}

// WriteSVG renders q as an SVG document, one unit per module plus the
// requested border, modeled after the teacher's ToSVGString.
func WriteSVG(w io.Writer, q *qrcode.QRCode, border int) error {
	if border < 0 {
		return fmt.Errorf("qrimage: border must be non-negative")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", q.Size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < q.Size; y++ {
		for x := 0; x < q.Size; x++ {
			if !q.At(y, x) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
