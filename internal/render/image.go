package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"entombed/pkg/entombed"

	"golang.org/x/image/draw"
)

// Rasterize draws each cell as a scale x scale block, fg for walls and bg
// for gaps.
func Rasterize(rows []entombed.Row, fg, bg RGB, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid image scale %d", scale)
	}
	cells, w, h := Flatten(rows)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("no rows to rasterize")
	}
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBinaryRGBA(src.Pix, cells, fg, bg)
	if scale == 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// EncodePNG rasterizes rows and writes them to w as PNG.
func EncodePNG(w io.Writer, rows []entombed.Row, fg, bg RGB, scale int) error {
	img, err := Rasterize(rows, fg, bg, scale)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// ExportPNG writes rows as a PNG file at path.
func ExportPNG(path string, rows []entombed.Row, fg, bg RGB, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(f, rows, fg, bg, scale); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
