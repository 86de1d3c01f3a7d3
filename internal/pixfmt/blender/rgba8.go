package blender

import (
	"vicon/internal/basics"
	"vicon/internal/color"
	"vicon/internal/order"
)

////////////////////////////////////////////////////////////////////////////////
// Plain (non-premultiplied) source -> Premultiplied destination
////////////////////////////////////////////////////////////////////////////////

// BlenderRGBA8 blends *plain* source into a premultiplied destination buffer.
// Matches AGG's blender_rgba (plain → premultiplied).
type BlenderRGBA8[S color.Space, O order.RGBAOrder] struct{}

// BlendPix blends a non-premultiplied RGBA source into a premultiplied buffer.
// Alpha is scaled by coverage; channels use lerp; alpha uses prelerp.
func (BlenderRGBA8[S, O]) BlendPix(dst []basics.Int8u, r, g, b, a, cover basics.Int8u) {
	a = color.RGBA8MultCover(a, cover)
	if a == 0 {
		return
	}
	var o O
	dst[o.IdxR()] = color.RGBA8Lerp(dst[o.IdxR()], r, a)
	dst[o.IdxG()] = color.RGBA8Lerp(dst[o.IdxG()], g, a)
	dst[o.IdxB()] = color.RGBA8Lerp(dst[o.IdxB()], b, a)
	dst[o.IdxA()] = color.RGBA8Prelerp(dst[o.IdxA()], a, a)
}

func (BlenderRGBA8[S, O]) SetPlain(dst []basics.Int8u, r, g, b, a basics.Int8u) {
	var o O
	// SetPlain should set the exact plain/straight alpha values without premultiplying
	// The blending operations (BlendPix, etc.) handle premultiplication as needed
	dst[o.IdxR()], dst[o.IdxG()], dst[o.IdxB()], dst[o.IdxA()] = r, g, b, a
}

func (BlenderRGBA8[S, O]) GetPlain(src []basics.Int8u) (r, g, b, a basics.Int8u) {
	var o O
	// GetPlain returns the exact stored values without demultiplying
	// This matches SetPlain which stores plain/straight alpha values
	return src[o.IdxR()], src[o.IdxG()], src[o.IdxB()], src[o.IdxA()]
}

func (BlenderRGBA8[S, O]) IdxR() int { var o O; return o.IdxR() }
func (BlenderRGBA8[S, O]) IdxG() int { var o O; return o.IdxG() }
func (BlenderRGBA8[S, O]) IdxB() int { var o O; return o.IdxB() }
func (BlenderRGBA8[S, O]) IdxA() int { var o O; return o.IdxA() }

////////////////////////////////////////////////////////////////////////////////
// Premultiplied source -> Premultiplied destination
////////////////////////////////////////////////////////////////////////////////

// BlenderRGBA8Pre blends *premultiplied* source into a premultiplied destination buffer.
// Matches AGG's blender_rgba_pre (premultiplied → premultiplied).
type BlenderRGBA8Pre[S color.Space, O order.RGBAOrder] struct{}

// BlendPix blends a premultiplied RGBA source into a premultiplied buffer.
// Channels and alpha use prelerp. Coverage scales all premultiplied components.
func (BlenderRGBA8Pre[S, O]) BlendPix(dst []basics.Int8u, r, g, b, a, cover basics.Int8u) {
	if cover != 255 {
		r = color.RGBA8MultCover(r, cover)
		g = color.RGBA8MultCover(g, cover)
		b = color.RGBA8MultCover(b, cover)
		a = color.RGBA8MultCover(a, cover)
	}
	if a == 0 && r == 0 && g == 0 && b == 0 {
		return
	}
	var o O
	dst[o.IdxR()] = color.RGBA8Prelerp(dst[o.IdxR()], r, a)
	dst[o.IdxG()] = color.RGBA8Prelerp(dst[o.IdxG()], g, a)
	dst[o.IdxB()] = color.RGBA8Prelerp(dst[o.IdxB()], b, a)
	dst[o.IdxA()] = color.RGBA8Prelerp(dst[o.IdxA()], a, a)
}

func (BlenderRGBA8Pre[S, O]) SetPlain(dst []basics.Int8u, r, g, b, a basics.Int8u) {
	BlenderRGBA8[S, O]{}.SetPlain(dst, r, g, b, a)
}

func (BlenderRGBA8Pre[S, O]) GetPlain(src []basics.Int8u) (r, g, b, a basics.Int8u) {
	return BlenderRGBA8[S, O]{}.GetPlain(src)
}

func (BlenderRGBA8Pre[S, O]) IdxR() int { var o O; return o.IdxR() }
func (BlenderRGBA8Pre[S, O]) IdxG() int { var o O; return o.IdxG() }
func (BlenderRGBA8Pre[S, O]) IdxB() int { var o O; return o.IdxB() }
func (BlenderRGBA8Pre[S, O]) IdxA() int { var o O; return o.IdxA() }

////////////////////////////////////////////////////////////////////////////////
// Plain (non-premultiplied) source -> Plain destination
////////////////////////////////////////////////////////////////////////////////

// BlenderRGBA8Plain blends *plain* source into a *plain* destination buffer.
// Matches AGG's blender_rgba_plain (plain → plain): it premultiplies dst on-the-fly,
// blends in premultiplied space, then demultiplies to store plain again.
type BlenderRGBA8Plain[S color.Space, O order.RGBAOrder] struct{}

// BlendPix blends non-premultiplied src into non-premultiplied dst using the classic
// “premultiply → blend in premul → demultiply” approach.
func (BlenderRGBA8Plain[S, O]) BlendPix(dst []basics.Int8u, r, g, b, a, cover basics.Int8u) {
	a = color.RGBA8MultCover(a, cover)
	if a == 0 {
		return
	}
	var o O

	da := dst[o.IdxA()]
	// premultiply dst on the fly
	dr := color.RGBA8Multiply(dst[o.IdxR()], da)
	dg := color.RGBA8Multiply(dst[o.IdxG()], da)
	db := color.RGBA8Multiply(dst[o.IdxB()], da)

	dr = color.RGBA8Lerp(dr, r, a)
	dg = color.RGBA8Lerp(dg, g, a)
	db = color.RGBA8Lerp(db, b, a)
	da = color.RGBA8Prelerp(da, a, a)

	if da > 0 {
		dst[o.IdxR()] = demul8(dr, da)
		dst[o.IdxG()] = demul8(dg, da)
		dst[o.IdxB()] = demul8(db, da)
		dst[o.IdxA()] = da
	} else {
		dst[o.IdxR()], dst[o.IdxG()], dst[o.IdxB()], dst[o.IdxA()] = 0, 0, 0, 0
	}
}

func (BlenderRGBA8Plain[S, O]) SetPlain(dst []basics.Int8u, r, g, b, a basics.Int8u) {
	var o O
	dst[o.IdxR()], dst[o.IdxG()], dst[o.IdxB()], dst[o.IdxA()] = r, g, b, a
}

func (BlenderRGBA8Plain[S, O]) GetPlain(src []basics.Int8u) (r, g, b, a basics.Int8u) {
	var o O
	return src[o.IdxR()], src[o.IdxG()], src[o.IdxB()], src[o.IdxA()]
}

func (BlenderRGBA8Plain[S, O]) IdxR() int { var o O; return o.IdxR() }
func (BlenderRGBA8Plain[S, O]) IdxG() int { var o O; return o.IdxG() }
func (BlenderRGBA8Plain[S, O]) IdxB() int { var o O; return o.IdxB() }
func (BlenderRGBA8Plain[S, O]) IdxA() int { var o O; return o.IdxA() }

// demul8 converts a premultiplied component x back to straight by x * 255 / a with rounding.
func demul8(x, a basics.Int8u) basics.Int8u {
	// (x*255 + a/2) / a  — classic rounded divide
	return basics.Int8u((uint32(x)*255 + uint32(a)/2) / uint32(a))
}
