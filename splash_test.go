package yengine

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/gogpu/yengine/platform"
)

func TestDecodeEmbeddedSplash(t *testing.T) {
	s, err := DecodeSplash(defaultSplash)
	if err != nil {
		t.Fatalf("DecodeSplash(embedded) error = %v", err)
	}
	if s.Size().Empty() {
		t.Error("embedded splash is empty")
	}
}

func TestDecodeSplashErrors(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("GIF89a"), []byte("\x89PNG\r\n\x1a\n")} {
		if _, err := DecodeSplash(data); !errors.Is(err, ErrSplashDecode) {
			t.Errorf("DecodeSplash(%q) error = %v, want ErrSplashDecode", data, err)
		}
	}
}

func TestDecodeSplashBMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	img.Set(2, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	s, err := DecodeSplash(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeSplash(bmp) error = %v", err)
	}
	if s.Size() != (platform.Size{Width: 3, Height: 2}) {
		t.Errorf("Size() = %v, want 3x2", s.Size())
	}
	dst := make([]uint32, 6)
	s.Draw(dst, s.Size())
	if want := binary.NativeEndian.Uint32([]byte{10, 20, 30, 255}); dst[5] != want {
		t.Errorf("pixel (2,1) = %#x, want %#x", dst[5], want)
	}
}

func TestSplashDrawStraightAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 16})
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	s, err := DecodeSplash(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeSplash() error = %v", err)
	}

	dst := make([]uint32, 4)
	s.Draw(dst, s.Size())
	want := []uint32{
		binary.NativeEndian.Uint32([]byte{200, 100, 50, 16}),
		0,
		0,
		binary.NativeEndian.Uint32([]byte{1, 2, 3, 4}),
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestSplashDrawScaled(t *testing.T) {
	// Left column red, right column blue.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	s := &Splash{img: img}

	red := binary.NativeEndian.Uint32([]byte{255, 0, 0, 255})
	blue := binary.NativeEndian.Uint32([]byte{0, 0, 255, 255})

	size := platform.Size{Width: 4, Height: 3}
	dst := make([]uint32, 12)
	s.Draw(dst, size)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 {
				want = blue
			}
			if got := dst[y*4+x]; got != want {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}

	first := s.scaled
	s.Draw(dst, size)
	if s.scaled != first {
		t.Error("resampled image not reused for the same size")
	}
}

func TestSplashDrawShortBuffer(t *testing.T) {
	s := &Splash{img: image.NewNRGBA(image.Rect(0, 0, 2, 2))}
	dst := make([]uint32, 3)
	s.Draw(dst, platform.Size{Width: 2, Height: 2})
	s.Draw(dst, platform.Size{})
}

func TestSplashWindowSize(t *testing.T) {
	tests := []struct {
		w, h int
		want platform.Size
	}{
		{64, 64, platform.Size{Width: 64, Height: 64}},
		{1, 1, platform.Size{Width: 4, Height: 4}},
		{300, 2, platform.Size{Width: 300, Height: 4}},
	}
	for _, tt := range tests {
		s := &Splash{img: image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))}
		if got := s.WindowSize(); got != tt.want {
			t.Errorf("WindowSize(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestCenterOn(t *testing.T) {
	tests := []struct {
		mon, size platform.Size
		want      platform.Point
	}{
		{platform.Size{Width: 1920, Height: 1080}, platform.Size{Width: 64, Height: 64}, platform.Point{X: 928, Y: 508}},
		{platform.Size{Width: 100, Height: 100}, platform.Size{Width: 100, Height: 100}, platform.Point{}},
		{platform.Size{Width: 10, Height: 10}, platform.Size{Width: 30, Height: 14}, platform.Point{X: -10, Y: -2}},
	}
	for _, tt := range tests {
		if got := centerOn(tt.mon, tt.size); got != tt.want {
			t.Errorf("centerOn(%v, %v) = %v, want %v", tt.mon, tt.size, got, tt.want)
		}
	}
}
