package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ReadFramebuffer reads the back buffer, call before Update
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// gl origin is bottom left
	flipRows(img)
	return img
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)

	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]

		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save screenshot: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode screenshot: %w", err)
	}

	return f.Close()
}
