package assets

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"path"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder
)

// FitSize returns the largest size with the aspect ratio of w×h that fits in
// maxW×maxH. Images already inside the box keep their size.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	ratio := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := max(1, int(math.Round(float64(w)*ratio)))
	nh := max(1, int(math.Round(float64(h)*ratio)))
	return nw, nh
}

// Thumbnail scales src down to fit maxW×maxH. It never upscales.
func Thumbnail(src image.Image, maxW, maxH int, interp draw.Interpolator) image.Image {
	b := src.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if w == b.Dx() && h == b.Dy() {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// thumbnailName returns the file name for a thumbnail of the given source
// file. Formats without an encoder are written as PNG.
func thumbnailName(base, format string) string {
	if format == "webp" {
		return strings.TrimSuffix(base, path.Ext(base)) + ".png"
	}
	return base
}

// encode writes img in the named format.
func encode(w io.Writer, img image.Image, format string, jpegQuality int) error {
	switch format {
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "png", "webp":
		return png.Encode(w, img)
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("no encoder for image format %q", format)
}
