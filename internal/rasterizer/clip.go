package rasterizer

import (
	"vicon/internal/basics"
)

// Conv defines the conversion policy interface (mirrors AGG's ras_conv_* "static" API)
type Conv[C basics.CoordType] interface {
	// MulDiv returns round(a*b/c) for the coordinate type
	MulDiv(a, b, c float64) C
	Xi(v C) int
	Yi(v C) int
	Upscale(v float64) C
	Downscale(v int) C
}

// IntConv: internal coord is int, upscale = round(v * poly_subpixel_scale)
// Equivalent to AGG's ras_conv_int struct.
type IntConv struct{}

// MulDiv performs multiplication and division with rounding
func (IntConv) MulDiv(a, b, c float64) int {
	return basics.IRound(a * b / c)
}

// Xi converts input X coordinate (no transformation for integer converter)
func (IntConv) Xi(v int) int {
	return v
}

// Yi converts input Y coordinate (no transformation for integer converter)
func (IntConv) Yi(v int) int {
	return v
}

// Upscale converts double coordinate to subpixel integer coordinate
func (IntConv) Upscale(v float64) int {
	return basics.IRound(v * basics.PolySubpixelScale)
}

// Downscale converts subpixel integer coordinate back to integer coordinate
func (IntConv) Downscale(v int) int {
	return v / basics.PolySubpixelScale
}

// LineSink defines the interface implemented by the rasterizer/cell-sink
type LineSink interface {
	Line(x1, y1, x2, y2 int)
}

// RasterizerSlNoClip provides a no-clipping implementation.
// Equivalent to AGG's rasterizer_sl_no_clip class.
type RasterizerSlNoClip struct {
	x1, y1 int
}

// NewRasterizerSlNoClip creates a new no-clip rasterizer
func NewRasterizerSlNoClip() *RasterizerSlNoClip {
	return &RasterizerSlNoClip{}
}

// ResetClipping does nothing for no-clip implementation
func (r *RasterizerSlNoClip) ResetClipping() {}

// ClipBox does nothing for no-clip implementation
func (r *RasterizerSlNoClip) ClipBox(_, _, _, _ int) {}

// MoveTo sets the current position
func (r *RasterizerSlNoClip) MoveTo(x1, y1 int) {
	r.x1, r.y1 = x1, y1
}

// LineTo draws a line from the current position to (x2, y2)
func (r *RasterizerSlNoClip) LineTo(sink LineSink, x2, y2 int) {
	sink.Line(r.x1, r.y1, x2, y2)
	r.x1, r.y1 = x2, y2
}

// RasConvInt is the integer conversion policy used by the icon rasterizer,
// matching AGG's ras_conv_int naming.
type RasConvInt = IntConv
