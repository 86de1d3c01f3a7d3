package blender

import (
	"testing"

	"vicon/internal/basics"
	"vicon/internal/color"
	"vicon/internal/order"
)

func TestBlenderRGBA8BlendPix(t *testing.T) {
	bl := BlenderRGBA8[color.Linear, order.RGBA]{}

	// Gray background in RGBA layout
	dst := []basics.Int8u{100, 100, 100, 255}

	// Source ~50% alpha
	r, g, b, a := basics.Int8u(200), basics.Int8u(150), basics.Int8u(50), basics.Int8u(128)
	cover := basics.Int8u(255)

	bl.BlendPix(dst, r, g, b, a, cover)

	// Result should move toward source
	if dst[0] <= 100 || dst[0] >= 200 {
		t.Errorf("BlendPix red result %d should be between 100 and 200", dst[0])
	}
	if dst[1] <= 100 || dst[1] >= 150 {
		t.Errorf("BlendPix green result %d should be between 100 and 150", dst[1])
	}
	// Blue 100 -> 50 at ~50% alpha ≈ 75; allow some tolerance
	if dst[2] < 70 || dst[2] > 90 {
		t.Errorf("BlendPix blue result %d should be in [70,90]", dst[2])
	}
}

func TestBlenderRGBA8PreBlendPix(t *testing.T) {
	bl := BlenderRGBA8Pre[color.Linear, order.RGBA]{}

	dst := []basics.Int8u{100, 100, 100, 255}
	r, g, b, a := basics.Int8u(200), basics.Int8u(150), basics.Int8u(50), basics.Int8u(128)
	cover := basics.Int8u(255)

	orig := append([]basics.Int8u(nil), dst...)
	bl.BlendPix(dst, r, g, b, a, cover)

	changed := false
	for i := 0; i < 4; i++ {
		if dst[i] != orig[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("BlendPix should have modified the destination")
	}
}

func TestBlenderRGBA8PlainBlendPix(t *testing.T) {
	bl := BlenderRGBA8Plain[color.Linear, order.RGBA]{}

	dst := []basics.Int8u{100, 100, 100, 200}
	r, g, b, a := basics.Int8u(200), basics.Int8u(150), basics.Int8u(50), basics.Int8u(128)
	cover := basics.Int8u(255)

	bl.BlendPix(dst, r, g, b, a, cover)

	if dst[0] == 100 && dst[1] == 100 && dst[2] == 100 {
		t.Error("BlendPix should have changed the destination values")
	}
}

func TestBlenderRGBA8ZeroAlphaNoOp(t *testing.T) {
	orig := []basics.Int8u{100, 100, 100, 255}
	dst := append([]basics.Int8u(nil), orig...)

	bl := BlenderRGBA8[color.Linear, order.RGBA]{}
	bl.BlendPix(dst, 200, 200, 200, 0, 255)

	for i := 0; i < 4; i++ {
		if dst[i] != orig[i] {
			t.Errorf("zero-alpha blend should not change dst[%d]: expected %d, got %d",
				i, orig[i], dst[i])
		}
	}
}

func TestBlenderRGBA8GetSetPlainRoundtrip(t *testing.T) {
	bl := BlenderRGBA8[color.Linear, order.BGRA]{}
	dst := make([]basics.Int8u, 4)
	bl.SetPlain(dst, 10, 20, 30, 40)
	r, g, b, a := bl.GetPlain(dst)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("GetPlain after SetPlain mismatch: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestDifferentOrdersCompile(t *testing.T) {
	// This test intentionally just ensures different instantiations compile.
	_ = BlenderRGBA8[color.Linear, order.RGBA]{}
	_ = BlenderRGBA8[color.Linear, order.BGRA]{}
	_ = BlenderRGBA8[color.Linear, order.ARGB]{}
	_ = BlenderRGBA8[color.Linear, order.ABGR]{}

	_ = BlenderRGBA8Pre[color.Linear, order.RGBA]{}
	_ = BlenderRGBA8Plain[color.Linear, order.RGBA]{}
}
