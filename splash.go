package yengine

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/yengine/platform"
)

//go:embed assets/splash.png
var defaultSplash []byte

// minSplashSide is the smallest window edge the splash window is given.
const minSplashSide = 4

// Splash is a decoded splash image, read-only after DecodeSplash.
type Splash struct {
	img *image.NRGBA

	// scaled caches the last resampled copy for a surface size that
	// differs from the image.
	scaled *image.NRGBA
}

// DecodeSplash decodes a PNG, BMP or WebP image into straight RGBA rows.
func DecodeSplash(data []byte) (*Splash, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSplashDecode, err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrSplashDecode, format)
	}
	img, ok := src.(*image.NRGBA)
	if !ok || img.Rect.Min != (image.Point{}) || img.Stride != 4*b.Dx() {
		img = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(img, img.Rect, src, b.Min, xdraw.Src)
	}
	return &Splash{img: img}, nil
}

// Size returns the image dimensions.
func (s *Splash) Size() platform.Size {
	return platform.Size{Width: uint32(s.img.Rect.Dx()), Height: uint32(s.img.Rect.Dy())}
}

// WindowSize returns the image dimensions clamped to at least 4x4.
func (s *Splash) WindowSize() platform.Size {
	sz := s.Size()
	return platform.Size{
		Width:  max(sz.Width, minSplashSide),
		Height: max(sz.Height, minSplashSide),
	}
}

// Draw writes the image into a row-major buffer of the given size, one
// native-endian uint32 per RGBA pixel. A size other than the image's is
// filled with a nearest-neighbour resample.
func (s *Splash) Draw(dst []uint32, size platform.Size) {
	if size.Empty() {
		return
	}
	img := s.img
	if size != s.Size() {
		img = s.resampled(size)
	}
	n := min(len(dst), int(size.Width)*int(size.Height))
	for i := 0; i < n; i++ {
		dst[i] = binary.NativeEndian.Uint32(img.Pix[i*4 : i*4+4])
	}
}

func (s *Splash) resampled(size platform.Size) *image.NRGBA {
	r := image.Rect(0, 0, int(size.Width), int(size.Height))
	if s.scaled != nil && s.scaled.Rect == r {
		return s.scaled
	}
	dst := image.NewNRGBA(r)
	xdraw.NearestNeighbor.Scale(dst, r, s.img, s.img.Rect, xdraw.Src, nil)
	s.scaled = dst
	return dst
}

// centerOn returns the top-left position that centres size on mon. The
// result is negative when the window is larger than the monitor.
func centerOn(mon, size platform.Size) platform.Point {
	return platform.Point{
		X: (int(mon.Width) - int(size.Width)) / 2,
		Y: (int(mon.Height) - int(size.Height)) / 2,
	}
}
