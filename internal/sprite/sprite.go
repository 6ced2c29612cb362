// Package sprite loads the wheel image and scales it to its on-screen size.
package sprite

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

//go:embed wheel.png
var defaultWheel []byte

// ErrEmpty is returned when an image, or its scaled version, has no pixels.
var ErrEmpty = errors.New("sprite: empty image")

// Decode reads a PNG image.
func Decode(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "decode png")
	}
	if img.Bounds().Empty() {
		return nil, ErrEmpty
	}
	return img, nil
}

// Scale shrinks img by an integer divisor. Each dimension is divided with
// truncation, so a 684x684 image with divisor 4 becomes 171x171.
func Scale(img image.Image, divisor int) (image.Image, error) {
	if divisor < 1 {
		return nil, errors.Errorf("invalid scale divisor %d", divisor)
	}
	b := img.Bounds()
	w, h := b.Dx()/divisor, b.Dy()/divisor
	if w < 1 || h < 1 {
		return nil, errors.Wrapf(ErrEmpty, "%dx%d image scaled by 1/%d", b.Dx(), b.Dy(), divisor)
	}
	if divisor == 1 {
		return img, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}

// Load reads the PNG at path and scales it by 1/divisor.
// An empty path loads the built-in wheel.
func Load(path string, divisor int) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	if path == "" {
		img, err = Decode(bytes.NewReader(defaultWheel))
		if err != nil {
			return nil, errors.Wrap(err, "built-in wheel")
		}
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, errors.Wrap(openErr, "open sprite")
		}
		defer f.Close()

		img, err = Decode(f)
		if err != nil {
			return nil, errors.Wrapf(err, "sprite %s", path)
		}
	}

	return Scale(img, divisor)
}
