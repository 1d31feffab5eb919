package engine

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func rowImage(h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, h))
	for y := 0; y < h; y++ {
		for x := 0; x < 2; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(y), uint8(x), 0, 255})
		}
	}
	return img
}

func TestFlipRows(t *testing.T) {
	for _, h := range []int{0, 1, 2, 3, 4} {
		img := rowImage(h)
		flipRows(img)

		for y := 0; y < h; y++ {
			for x := 0; x < 2; x++ {
				e := color.RGBA{uint8(h - 1 - y), uint8(x), 0, 255}
				if r := img.RGBAAt(x, y); r != e {
					t.Errorf("height %d: pixel (%d,%d) != %v (got %v)", h, x, y, e, r)
				}
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	img := rowImage(3)
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := SavePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dec, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := dec.Bounds(); b != img.Bounds() {
		t.Errorf("decoded bounds %v != %v", b, img.Bounds())
	}
}

func TestSavePNG_InvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := SavePNG(path, rowImage(1)); err == nil {
		t.Error("expected error for missing directory")
	}
}
