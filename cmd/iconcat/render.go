package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"vicon"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	scale := fs.Float64("scale", 0, "uniform render scale (defaults to size/64)")
	size := fs.Int("size", 64, "target bitmap size in pixels")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("usage: iconcat render <file> <out.png> [--scale N] [--size N]")
	}
	inPath, outPath := rest[0], rest[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	icon, err := vicon.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	img, err := vicon.Render(icon, *size, vicon.RenderOptions{Scale: *scale})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	log.Info().Str("in", inPath).Str("out", outPath).Int("size", *size).Msg("rendered icon")

	return writePNG(outPath, img)
}

// writePNG converts the renderer's premultiplied BGRA bitmap into an
// image.NRGBA and writes it out, the same straight-alpha PNG path the
// platform backend's SaveImage takes.
func writePNG(path string, img *vicon.Image) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := y*img.Width*4 + x*4
			b, g, r, a := img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3]
			if a > 0 {
				r = unpremultiply(r, a)
				g = unpremultiply(g, a)
				b = unpremultiply(b, a)
			}
			di := out.PixOffset(x, y)
			out.Pix[di] = r
			out.Pix[di+1] = g
			out.Pix[di+2] = b
			out.Pix[di+3] = a
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return png.Encode(f, out)
}

func unpremultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}
