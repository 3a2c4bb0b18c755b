// Command texops applies the CPU-side texture transforms to an image
// file: vertical flip and alpha-mask expansion to RGBA8.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	_ "image/jpeg"

	"github.com/gogpu/texture/ops"
)

func main() {
	var (
		input  = flag.String("input", "", "input image file (PNG or JPEG)")
		output = flag.String("output", "out.png", "output PNG file")
		flip   = flag.Bool("flip", false, "flip the image vertically")
		expand = flag.Bool("expand", false, "treat the alpha channel as a mask and expand to white RGBA")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	rgba, err := loadRGBA(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	w := uint32(rgba.Rect.Dx())
	h := uint32(rgba.Rect.Dy())
	data := rgba.Pix

	if *expand {
		mask := make([]byte, int(w)*int(h))
		for i := range mask {
			mask[i] = data[i*4+3]
		}
		data, err = ops.AlphaToRGBA8(mask, w, h)
		if err != nil {
			log.Fatalf("Failed to expand: %v", err)
		}
	}

	if *flip {
		data, err = ops.FlipVertical(data, w, h, 4)
		if err != nil {
			log.Fatalf("Failed to flip: %v", err)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	copy(out.Pix, data)
	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Wrote %s (%dx%d)\n", *output, w, h)
}

// loadRGBA decodes an image file into a tightly packed RGBA image.
func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			rgba.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return rgba, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return png.Encode(f, img)
}
