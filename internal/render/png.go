package render

import (
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encode png")
}

// WritePNG writes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	if path == "" {
		return errors.New("png output path is empty")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
