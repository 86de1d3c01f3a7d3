package vicon

import "vicon/internal/xio"

// Palette is a 256-entry indexed color table for the legacy B_CMAP8
// bitmap format.
type Palette = xio.Palette

// DefaultPalette returns a reconstruction of Haiku's default system
// 256-color palette (see internal/xio for why it's a reconstruction
// rather than a byte-for-byte copy).
func DefaultPalette() *Palette { return xio.DefaultPalette() }

// ConvertCMAP8ToRGBA expands an indexed B_CMAP8 bitmap into a
// straight-alpha RGBA image, per spec.md §6's convert_cmap8_to_rgba.
// palette may be nil, in which case DefaultPalette is used.
func ConvertCMAP8ToRGBA(src []byte, width, height, stride int, palette *Palette) (*Image, error) {
	if palette == nil {
		palette = DefaultPalette()
	}
	img, err := xio.ConvertFromCMAP8(src, width, height, stride, palette)
	if err != nil {
		return nil, err
	}
	return &Image{Width: img.Width, Height: img.Height, Pix: img.Pix}, nil
}

// ConvertRGBAToCMAP8 quantizes a straight-alpha RGBA image down to
// indexed B_CMAP8 bytes, the reverse of ConvertCMAP8ToRGBA. palette may
// be nil, in which case DefaultPalette is used.
func ConvertRGBAToCMAP8(img *Image, palette *Palette) []byte {
	if palette == nil {
		palette = DefaultPalette()
	}
	return xio.ConvertToCMAP8(&xio.Image{Width: img.Width, Height: img.Height, Pix: img.Pix}, palette)
}

// ScaleImage resizes img to dstWidth x dstHeight, using the AdvanceMAME
// Scale2x/Scale3x upscalers for exact integer ratios and a bilinear
// resample otherwise, per spec.md §6.
func ScaleImage(img *Image, dstWidth, dstHeight int) *Image {
	out := xio.ScaleTo(&xio.Image{Width: img.Width, Height: img.Height, Pix: img.Pix}, dstWidth, dstHeight)
	return &Image{Width: out.Width, Height: out.Height, Pix: out.Pix}
}
