package flaticon

import (
	"bytes"
	"testing"

	"vicon/internal/model"
)

func TestEncodeEmptyIconIsSevenZeroBytes(t *testing.T) {
	icon := model.NewIcon()
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x66, 0x69, 0x63, 0x6e, 0x00, 0x00, 0x00}
	if !bytes.Equal(data, want) {
		t.Errorf("Encode(empty) = % x, want % x", data, want)
	}
}

func TestDecodeEmptyIcon(t *testing.T) {
	icon, err := Decode([]byte{0x66, 0x69, 0x63, 0x6e, 0x00, 0x00, 0x00})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(icon.Styles) != 0 || len(icon.Paths) != 0 || len(icon.Shapes) != 0 {
		t.Errorf("Decode(empty) produced non-empty icon: %+v", icon)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte{0, 0, 0, 0, 0, 0, 0})
	if err != ErrInvalidMagic {
		t.Errorf("err = %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	_, err := Decode([]byte{0x66, 0x69, 0x63, 0x6e, 0x01})
	if err != ErrTruncated {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func redSquareIcon() *model.Icon {
	icon := model.NewIcon()
	icon.AddStyle(model.NewSolidStyle(model.Color{R: 255, A: 255}))

	p := model.NewPath()
	pts := []model.Point{{X: 16, Y: 16}, {X: 48, Y: 16}, {X: 48, Y: 48}, {X: 16, Y: 48}}
	for _, pt := range pts {
		p.Vertices = append(p.Vertices, model.Vertex{A: pt, Hin: pt, Hout: pt})
	}
	p.Closed = true
	icon.AddPath(p)

	icon.AddShape(model.NewShape(0, 0))
	return icon
}

func TestStructuralRoundTripSolidSquare(t *testing.T) {
	icon := redSquareIcon()
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(decoded.Styles) != 1 || len(decoded.Paths) != 1 || len(decoded.Shapes) != 1 {
		t.Fatalf("decoded shape counts wrong: %d styles %d paths %d shapes",
			len(decoded.Styles), len(decoded.Paths), len(decoded.Shapes))
	}
	if decoded.Styles[0].Color != (model.Color{R: 255, A: 255}) {
		t.Errorf("decoded color = %+v", decoded.Styles[0].Color)
	}
	if !decoded.Paths[0].Closed {
		t.Error("decoded path should be closed")
	}
	if len(decoded.Paths[0].Vertices) != 4 {
		t.Fatalf("decoded vertex count = %d, want 4", len(decoded.Paths[0].Vertices))
	}
	for i, v := range decoded.Paths[0].Vertices {
		want := redSquareIcon().Paths[0].Vertices[i].A
		if v.A != want {
			t.Errorf("vertex %d = %+v, want %+v", i, v.A, want)
		}
	}
}

func TestEncodeDecodeRoundTripsMagicPrefix(t *testing.T) {
	icon := redSquareIcon()
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(data[:4], []byte{0x66, 0x69, 0x63, 0x6e}) {
		t.Errorf("magic prefix = % x", data[:4])
	}
}

func TestGradientRoundTrip(t *testing.T) {
	icon := model.NewIcon()
	g := model.NewGradient()
	g.Type = model.GradientLinear
	g.AddStop(0, model.Color{A: 255})
	g.AddStop(1, model.Color{R: 255, G: 255, B: 255, A: 255})
	icon.AddStyle(model.NewGradientStyle(g))

	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Styles[0].Kind != model.StyleGradientKind {
		t.Fatal("decoded style should be a gradient")
	}
	stops := decoded.Styles[0].Gradient.Stops
	if len(stops) != 2 {
		t.Fatalf("stop count = %d, want 2", len(stops))
	}
	if stops[0].Color.A != 255 || stops[1].Color.R != 255 {
		t.Errorf("stops = %+v", stops)
	}
}

func TestUnknownStyleTagIsSkippedWithoutAffectingOthers(t *testing.T) {
	icon := model.NewIcon()
	icon.AddStyle(model.NewSolidStyle(model.Color{R: 10, G: 20, B: 30, A: 255}))
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// data layout: magic(4) style_count(1)=01 [style bytes...] path_count(1) shape_count(1)
	// Splice an unknown-tag style (tag=200, u16 length=3, then 3 junk bytes)
	// before the existing style, bumping style_count to 2.
	injected := append([]byte{}, data[:4]...)
	injected = append(injected, 2) // style_count = 2
	injected = append(injected, 200, 3, 0, 0xde, 0xad, 0xbe)
	injected = append(injected, data[5:]...) // original style bytes + path/shape sections

	decoded, err := Decode(injected)
	if err != nil {
		t.Fatalf("Decode with injected unknown tag: %v", err)
	}
	if len(decoded.Styles) != 1 {
		t.Fatalf("decoded style count = %d, want 1 (unknown tag should be elided)", len(decoded.Styles))
	}
	if decoded.Styles[0].Color != (model.Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("surviving style corrupted: %+v", decoded.Styles[0].Color)
	}
}

func TestEncodeTooManyShapesFails(t *testing.T) {
	icon := model.NewIcon()
	for i := 0; i < MaxCount+1; i++ {
		icon.AddShape(model.NewShape(model.StyleCurrentColor))
	}
	_, err := Encode(icon)
	if err != ErrTooManyShapes {
		t.Errorf("err = %v, want ErrTooManyShapes", err)
	}
}

func TestEncodeExactlyMaxShapesSucceeds(t *testing.T) {
	icon := model.NewIcon()
	for i := 0; i < MaxCount; i++ {
		icon.AddShape(model.NewShape(model.StyleCurrentColor))
	}
	if _, err := Encode(icon); err != nil {
		t.Errorf("Encode with exactly %d shapes: %v", MaxCount, err)
	}
}

func TestCurrentColorStyleIndexRoundTrips(t *testing.T) {
	icon := model.NewIcon()
	icon.AddPath(model.NewPath())
	icon.AddShape(model.NewShape(model.StyleCurrentColor, 0))

	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Shapes[0].StyleIndex != model.StyleCurrentColor {
		t.Errorf("StyleIndex = %d, want StyleCurrentColor", decoded.Shapes[0].StyleIndex)
	}
}

func TestPathEncodingChoosesShortestVariant(t *testing.T) {
	// An axis-aligned rectangle from the origin encodes shorter as
	// commands (1 command byte + line 2 + three h/v-lines 1 each = 6
	// bytes) than as no_curves (8 one-byte coords), and never as the
	// fixed 6-coord curves form (24 bytes).
	icon := redSquareIcon()
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Locate the path section: magic(4) + style_count(1) + style bytes
	// (opaque non-gray solid color encodes as SOLID_COLOR_NO_ALPHA:
	// tag(1) + RGB(3) = 4 bytes) + path_count(1).
	pathFlagsOffset := 4 + 1 + 4 + 1
	flags := data[pathFlagsOffset]
	if flags&pathFlagUsesCommands == 0 || flags&pathFlagNoCurves != 0 {
		t.Errorf("flags = %#x, expected PATH_FLAG_USES_COMMANDS (and not NO_CURVES) for an all-straight square", flags)
	}
}
