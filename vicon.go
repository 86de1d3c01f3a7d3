// Package vicon is the public entry point for the vector icon system:
// decoding and encoding the native flat ("ficn") and IMSG formats,
// rendering an icon to a bitmap, and converting legacy indexed-color
// icon bitmaps to and from straight RGBA, per spec.md §6's library
// entry points.
//
// The underlying data model (Icon, Path, Style, Gradient, Shape), the
// undo/redo command stack, and the rasterizer each live in their own
// internal package; this package only wires them together behind the
// four verbs spec.md names: decode, encode, render, convert.
package vicon

import (
	"vicon/internal/flaticon"
	"vicon/internal/iconraster"
	"vicon/internal/imsg"
	"vicon/internal/model"
)

// Re-exported model types: callers build and inspect icons through
// these rather than reaching into vicon/internal/model directly.
type (
	Icon        = model.Icon
	Path        = model.Path
	Vertex      = model.Vertex
	Point       = model.Point
	Style       = model.Style
	Gradient    = model.Gradient
	GradientStop = model.GradientStop
	Shape       = model.Shape
	Transformer = model.Transformer
	Color       = model.Color
)

// NewIcon returns an empty icon, ready for AddStyle/AddPath/AddShape.
func NewIcon() *Icon { return model.NewIcon() }

// NewPath returns an empty, open path.
func NewPath() *Path { return model.NewPath() }

// NewSolidStyle returns a solid-color style.
func NewSolidStyle(c Color) *Style { return model.NewSolidStyle(c) }

// NewGradientStyle returns a gradient style.
func NewGradientStyle(g *Gradient) *Style { return model.NewGradientStyle(g) }

// NewGradient returns an empty gradient with an identity transform.
func NewGradient() *Gradient { return model.NewGradient() }

// NewShape returns a shape referencing styleIndex with an identity
// transform and default full LOD visibility range.
func NewShape(styleIndex int, pathIndices ...int) *Shape {
	return model.NewShape(styleIndex, pathIndices...)
}

// StyleCurrentColor is the sentinel style index meaning "use the
// renderer-supplied current foreground color" instead of an owned Style.
const StyleCurrentColor = model.StyleCurrentColor

// Format identifies which native serialization Decode found or Encode
// should produce.
type Format int

const (
	// FormatFlat is the compact "ficn" on-disk/attribute format
	// (spec.md §4.2), the default Encode produces.
	FormatFlat Format = iota
	// FormatIMSG is the self-describing "IMSG" key-value archive format
	// the editor also understands.
	FormatIMSG
)

// Decode parses buffer as either native format, auto-detecting by magic
// per spec.md §6 ("decode(buffer) → Icon | Err — format auto-detected by
// magic").
func Decode(buffer []byte) (*Icon, error) {
	icon, err := flaticon.Decode(buffer)
	if err == flaticon.ErrInvalidMagic {
		return imsg.Decode(buffer)
	}
	return icon, err
}

// Encode serializes icon as the flat format, per spec.md §6
// ("encode(icon) → bytes | Err — emits flat format").
func Encode(icon *Icon) ([]byte, error) {
	return flaticon.Encode(icon)
}

// EncodeFormat serializes icon as the requested format. FormatFlat
// behaves identically to Encode; FormatIMSG produces the editor's
// key-value archive instead.
func EncodeFormat(icon *Icon, format Format) ([]byte, error) {
	if format == FormatIMSG {
		return imsg.Encode(icon)
	}
	return flaticon.Encode(icon)
}

// Background selects how Render's target bitmap starts before shapes
// are painted over it.
type Background = iconraster.Background

// RenderOptions controls one Render call, per spec.md §6's
// render(icon, target_bitmap, options) signature ({scale, background,
// gamma, hinting_override}).
type RenderOptions = iconraster.Options

// Image is a rendered bitmap: premultiplied BGRA, 4 bytes per pixel.
type Image = iconraster.Image

// Render rasterizes icon onto a targetSize x targetSize bitmap, per
// spec.md §6's render(icon, target_bitmap, options) → ().
func Render(icon *Icon, targetSize int, opts RenderOptions) (*Image, error) {
	res, err := iconraster.NewRenderer().Render(icon, targetSize, opts)
	if err != nil {
		return nil, err
	}
	return res.Image, nil
}
