package vicon

import (
	"testing"
	"time"

	"vicon/internal/command"
)

func buildSampleIcon() *Icon {
	icon := NewIcon()

	p := NewPath()
	p.Closed = true
	p.AddVertex(Vertex{A: Point{X: 8, Y: 8}, Hin: Point{X: 8, Y: 8}, Hout: Point{X: 8, Y: 8}})
	p.AddVertex(Vertex{A: Point{X: 56, Y: 8}, Hin: Point{X: 56, Y: 8}, Hout: Point{X: 56, Y: 8}})
	p.AddVertex(Vertex{A: Point{X: 56, Y: 56}, Hin: Point{X: 56, Y: 56}, Hout: Point{X: 56, Y: 56}})
	p.AddVertex(Vertex{A: Point{X: 8, Y: 56}, Hin: Point{X: 8, Y: 56}, Hout: Point{X: 8, Y: 56}})
	icon.AddPath(p)

	icon.AddStyle(NewSolidStyle(Color{R: 200, G: 30, B: 40, A: 255}))
	icon.AddShape(NewShape(0, 0))

	return icon
}

func TestDecodeEncodeRoundTripDetectsFlatFormat(t *testing.T) {
	icon := buildSampleIcon()
	data, err := Encode(icon)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Paths) != 1 || len(decoded.Styles) != 1 || len(decoded.Shapes) != 1 {
		t.Fatalf("decoded icon shape wrong: %+v", decoded)
	}
}

func TestDecodeDetectsIMSGFormat(t *testing.T) {
	icon := buildSampleIcon()
	data, err := EncodeFormat(icon, FormatIMSG)
	if err != nil {
		t.Fatalf("EncodeFormat(IMSG): %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded.Shapes) != 1 {
		t.Fatalf("decoded icon shape wrong: %+v", decoded)
	}
}

func TestRenderProducesBitmap(t *testing.T) {
	icon := buildSampleIcon()
	img, err := Render(icon, 32, RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Width != 32 || img.Height != 32 {
		t.Fatalf("dims = %dx%d, want 32x32", img.Width, img.Height)
	}
}

func TestDocumentUndoRedo(t *testing.T) {
	icon := buildSampleIcon()
	doc := NewDocument(icon)

	style := icon.Styles[0]
	original := style.Color
	cmd := command.NewSetColorCommand(time.Unix(0, 0), style, Color{R: 1, G: 2, B: 3, A: 255})

	if err := doc.Perform(cmd); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if style.Color != (Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("color after Perform = %+v", style.Color)
	}
	if !doc.CanUndo() {
		t.Fatal("CanUndo() = false after Perform")
	}

	if err := doc.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if style.Color != original {
		t.Fatalf("color after Undo = %+v, want %+v", style.Color, original)
	}

	if err := doc.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if style.Color != (Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("color after Redo = %+v", style.Color)
	}
}

func TestDocumentSaveTracking(t *testing.T) {
	icon := buildSampleIcon()
	doc := NewDocument(icon)
	if !doc.IsSaved() {
		t.Fatal("fresh document should be saved")
	}

	cmd := command.NewSetColorCommand(time.Unix(0, 0), icon.Styles[0], Color{A: 255})
	if err := doc.Perform(cmd); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if doc.IsSaved() {
		t.Fatal("document should be dirty after Perform")
	}

	doc.Save()
	if !doc.IsSaved() {
		t.Fatal("document should be saved after Save")
	}
}

func TestConvertCMAP8RoundTrip(t *testing.T) {
	pal := DefaultPalette()
	src := []byte{0, 1, 2, 3}
	img, err := ConvertCMAP8ToRGBA(src, 2, 2, 2, pal)
	if err != nil {
		t.Fatalf("ConvertCMAP8ToRGBA: %v", err)
	}
	back := ConvertRGBAToCMAP8(img, pal)
	if len(back) != 4 {
		t.Fatalf("len(back) = %d, want 4", len(back))
	}
}

func TestScaleImageIntegerRatio(t *testing.T) {
	img := &Image{Width: 4, Height: 4, Pix: make([]byte, 4*4*4)}
	out := ScaleImage(img, 8, 8)
	if out.Width != 8 || out.Height != 8 {
		t.Fatalf("dims = %dx%d, want 8x8", out.Width, out.Height)
	}
}
