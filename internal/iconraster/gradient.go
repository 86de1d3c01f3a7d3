package iconraster

import (
	"vicon/internal/basics"
	"vicon/internal/color"
	"vicon/internal/gamma"
	"vicon/internal/model"
	"vicon/internal/span"
	"vicon/internal/transform"
)

// stopTableSize is the fixed resolution of a built gradient color table,
// matching §4.3's "256-entry color table".
const stopTableSize = 256

// stopTable is a precomputed, fixed-size gradient color ramp. It
// implements span.ColorFunction[color.RGBA8[color.Linear]] over premultiplied,
// linear-space colors ready to feed straight into the premultiplied blender.
type stopTable struct {
	colors [stopTableSize]color.RGBA8[color.Linear]
}

func (t *stopTable) Size() int { return stopTableSize }

func (t *stopTable) ColorAt(index int) color.RGBA8[color.Linear] {
	return t.colors[index]
}

// buildStopTable walks g's sorted stops and fills a 256-entry color ramp,
// per spec.md's stop-table build rule: linear interpolation between
// consecutive stops, or with smooth interpolation the weight is passed
// through the symmetric easing curve w<0.5 -> 2w^2, w>=0.5 -> 1-2(1-w)^2.
// Positions before the first stop and after the last clamp to the
// terminal stop's color.
func buildStopTable(g *model.Gradient) *stopTable {
	t := &stopTable{}
	if len(g.Stops) == 0 {
		return t
	}

	first := premultipliedLinear(g.Stops[0].Color)
	last := premultipliedLinear(g.Stops[len(g.Stops)-1].Color)

	for i := 0; i < stopTableSize; i++ {
		pos := float64(i) / float64(stopTableSize)

		switch {
		case pos <= g.Stops[0].Offset:
			t.colors[i] = first
		case pos >= g.Stops[len(g.Stops)-1].Offset:
			t.colors[i] = last
		default:
			j := 0
			for j < len(g.Stops)-1 && g.Stops[j+1].Offset < pos {
				j++
			}
			o1, o2 := g.Stops[j].Offset, g.Stops[j+1].Offset
			w := 0.0
			if o2 > o1 {
				w = (pos - o1) / (o2 - o1)
			}
			if g.Interpolation == model.InterpolationSmooth {
				w = easeSmooth(w)
			}
			c1 := premultipliedLinear(g.Stops[j].Color)
			c2 := premultipliedLinear(g.Stops[j+1].Color)
			t.colors[i] = lerpRGBA8(c1, c2, w)
		}
	}

	return t
}

func easeSmooth(w float64) float64 {
	if w < 0.5 {
		return 2 * w * w
	}
	return 1 - 2*(1-w)*(1-w)
}

// premultipliedLinear converts a straight sRGB model.Color into a
// gamma-linear, alpha-premultiplied pixel, the representation the output
// pixel format's blend methods expect.
func premultipliedLinear(c model.Color) color.RGBA8[color.Linear] {
	a := float64(c.A) / 255
	r := gamma.SRGBToLinear(float64(c.R)/255) * a
	g := gamma.SRGBToLinear(float64(c.G)/255) * a
	b := gamma.SRGBToLinear(float64(c.B)/255) * a
	return color.NewRGBA8[color.Linear](to8u(r), to8u(g), to8u(b), basics.Int8u(c.A))
}

func to8u(v float64) basics.Int8u {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return basics.Int8u(v*255 + 0.5)
}

func lerpRGBA8(c1, c2 color.RGBA8[color.Linear], w float64) color.RGBA8[color.Linear] {
	lerp := func(a, b basics.Int8u) basics.Int8u {
		return basics.Int8u(float64(a) + (float64(b)-float64(a))*w + 0.5)
	}
	return color.NewRGBA8[color.Linear](lerp(c1.R, c2.R), lerp(c1.G, c2.G), lerp(c1.B, c2.B), lerp(c1.A, c2.A))
}

// gradientSpan generates one premultiplied linear color per pixel along a
// device-space row, for the gradient shapes' parametric functions.
type gradientSpan interface {
	Prepare()
	Generate(span []color.RGBA8[color.Linear], x, y, length int)
}

// newGradientSpan builds the span generator for g, given the device-space
// transform that places the shape (T = T_s * G, per §4.3 step 2). The
// gradient's own span transform is T_g * T when it inherits the shape's
// transform, or just the device transform G otherwise.
func newGradientSpan(g *model.Gradient, spanTransform *transform.TransAffine) gradientSpan {
	inv := spanTransform.Copy()
	inv.Invert()
	interp := span.NewSpanInterpolatorLinearDefault(inv)
	table := buildStopTable(g)

	switch g.Type {
	case model.GradientRadial:
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientRadial{}, table, 0, 64)
	case model.GradientDiamond:
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientDiamond{}, table, 0, 64)
	case model.GradientConic:
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientConic{}, table, 0, 64)
	case model.GradientXY:
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientXY{}, table, 0, 64)
	case model.GradientSqrtXY:
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientSqrtXY{}, table, 0, 64)
	default: // model.GradientLinear
		return span.NewSpanGradient[color.RGBA8[color.Linear]](interp, span.GradientLinearX{}, table, 0, 64)
	}
}

// gradientDeviceTransform picks the gradient's span transform per §4.3 step
// 2: T_g * T when the gradient inherits the shape's placement (shapeDevice
// is T = T_s * G), otherwise just the global transform G on its own.
func gradientDeviceTransform(g *model.Gradient, shapeDevice, global *transform.TransAffine) *transform.TransAffine {
	if !g.InheritTransform {
		return global
	}
	t := g.Transform.Copy()
	t.Multiply(shapeDevice)
	return t
}
