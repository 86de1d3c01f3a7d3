// Package imsg implements the icon system's second native archive
// format: a flat, style/path/shape-indexed key-value archive, modeled
// on Haiku's BMessage-based icon archive (MessageImporter.cpp) but
// re-expressed as a plain tagged binary container rather than a literal
// BMessage flattener — BMessage's on-disk layout is a Haiku kernel
// format with no meaning outside it, so this package reproduces its
// logical structure (path list, style list, shape list with style/path
// index references) instead of its bytes.
package imsg

import (
	"errors"

	"vicon/internal/bitbuf"
	"vicon/internal/model"
	"vicon/internal/transform"
)

// Magic is the four-byte little-endian file identifier 'imsg'.
const Magic uint32 = 0x67736d69

var (
	ErrInvalidMagic = errors.New("imsg: bad magic")
	ErrTruncated    = errors.New("imsg: truncated archive")
)

const (
	styleKindSolid    = 0
	styleKindGradient = 1
)

// noStyleRef is the archive's "no style" marker for a shape, used when
// a shape's style ref can't be resolved — mirrors MessageImporter's
// "Shape doesn't reference a Style" tolerance (it skips the shape
// rather than failing the whole import); this archive instead keeps
// the shape and leaves it styleless, consistent with flaticon's
// dangling-reference handling. Deliberately distinct from
// model.StyleCurrentColor (-1) so a dangling reference can never be
// mistaken for an explicit "use current color" request.
const noStyleRef = -2

// Encode serializes icon into the imsg archive format.
func Encode(icon *model.Icon) ([]byte, error) {
	b := bitbuf.New()
	b.WriteU32(Magic)

	if err := encodePaths(b, icon.Paths); err != nil {
		return nil, err
	}
	if err := encodeStyles(b, icon.Styles); err != nil {
		return nil, err
	}
	if err := encodeShapes(b, icon); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func encodePaths(b *bitbuf.Buffer, paths []*model.Path) error {
	if len(paths) > 0xffff {
		return ErrTooMany
	}
	b.WriteU16(uint16(len(paths)))
	for _, p := range paths {
		flags := uint8(0)
		if p.Closed {
			flags |= 1
		}
		b.WriteU8(flags)
		if len(p.Vertices) > 0xffff {
			return ErrTooMany
		}
		b.WriteU16(uint16(len(p.Vertices)))
		for _, v := range p.Vertices {
			writeVertex(b, v)
		}
	}
	return nil
}

func writeVertex(b *bitbuf.Buffer, v model.Vertex) {
	connected := uint8(0)
	if v.Connected {
		connected = 1
	}
	b.WriteU8(connected)
	writePoint(b, v.A)
	writePoint(b, v.Hin)
	writePoint(b, v.Hout)
}

func writePoint(b *bitbuf.Buffer, p model.Point) {
	b.WriteF32(float32(p.X))
	b.WriteF32(float32(p.Y))
}

func readPoint(b *bitbuf.Buffer) (model.Point, error) {
	x, err := b.ReadF32()
	if err != nil {
		return model.Point{}, err
	}
	y, err := b.ReadF32()
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: float64(x), Y: float64(y)}, nil
}

func encodeStyles(b *bitbuf.Buffer, styles []*model.Style) error {
	if len(styles) > 0xffff {
		return ErrTooMany
	}
	b.WriteU16(uint16(len(styles)))
	for _, s := range styles {
		switch s.Kind {
		case model.StyleSolid:
			b.WriteU8(styleKindSolid)
			writeColor(b, s.Color)
		case model.StyleGradientKind:
			b.WriteU8(styleKindGradient)
			if err := encodeGradient(b, s.Gradient); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColor(b *bitbuf.Buffer, c model.Color) {
	b.WriteU8(c.R)
	b.WriteU8(c.G)
	b.WriteU8(c.B)
	b.WriteU8(c.A)
}

func readColor(b *bitbuf.Buffer) (model.Color, error) {
	var c model.Color
	var err error
	if c.R, err = b.ReadU8(); err != nil {
		return c, err
	}
	if c.G, err = b.ReadU8(); err != nil {
		return c, err
	}
	if c.B, err = b.ReadU8(); err != nil {
		return c, err
	}
	if c.A, err = b.ReadU8(); err != nil {
		return c, err
	}
	return c, nil
}

func encodeGradient(b *bitbuf.Buffer, g *model.Gradient) error {
	b.WriteU8(uint8(g.Type))
	b.WriteU8(uint8(g.Interpolation))
	writeAffine(b, g.Transform)
	if len(g.Stops) > 0xff {
		return ErrTooMany
	}
	b.WriteU8(uint8(len(g.Stops)))
	for _, stop := range g.Stops {
		b.WriteF32(float32(stop.Offset))
		writeColor(b, stop.Color)
	}
	return nil
}

func writeAffine(b *bitbuf.Buffer, m transform.TransAffine) {
	b.WriteF32(float32(m.SX))
	b.WriteF32(float32(m.SHY))
	b.WriteF32(float32(m.SHX))
	b.WriteF32(float32(m.SY))
	b.WriteF32(float32(m.TX))
	b.WriteF32(float32(m.TY))
}

func readAffine(b *bitbuf.Buffer) (transform.TransAffine, error) {
	var m transform.TransAffine
	vals := []*float64{&m.SX, &m.SHY, &m.SHX, &m.SY, &m.TX, &m.TY}
	for _, v := range vals {
		f, err := b.ReadF32()
		if err != nil {
			return m, err
		}
		*v = float64(f)
	}
	return m, nil
}

func encodeShapes(b *bitbuf.Buffer, icon *model.Icon) error {
	if len(icon.Shapes) > 0xffff {
		return ErrTooMany
	}
	b.WriteU16(uint16(len(icon.Shapes)))
	for _, s := range icon.Shapes {
		styleRef := int32(s.StyleIndex)
		b.WriteU32(uint32(styleRef))

		if len(s.PathIndices) > 0xffff {
			return ErrTooMany
		}
		b.WriteU16(uint16(len(s.PathIndices)))
		for _, pi := range s.PathIndices {
			b.WriteU32(uint32(int32(pi)))
		}

		flags := uint8(0)
		if s.Hinting {
			flags |= 1
		}
		b.WriteU8(flags)
		writeAffine(b, s.Transform)
		b.WriteF32(float32(s.MinVisibilityScale))
		b.WriteF32(float32(s.MaxVisibilityScale))

		if len(s.Transformers) > 0xff {
			return ErrTooMany
		}
		b.WriteU8(uint8(len(s.Transformers)))
		for _, tr := range s.Transformers {
			b.WriteU8(uint8(tr.Kind))
			writeAffine(b, tr.Matrix)
			b.WriteF32(float32(tr.Width))
			b.WriteU8(uint8(tr.LineJoin))
			b.WriteU8(uint8(tr.LineCap))
			b.WriteF32(float32(tr.MiterLimit))
		}
	}
	return nil
}

// Decode parses an imsg archive, producing a model.Icon. Dangling
// style/path references are dropped (style ref becomes noStyleRef, path
// refs that don't resolve are skipped), matching flaticon's referential-
// integrity tolerance (spec.md §7e).
func Decode(data []byte) (*model.Icon, error) {
	b := bitbuf.NewReader(data)
	magic, err := b.ReadU32()
	if err != nil {
		return nil, ErrTruncated
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	icon := model.NewIcon()
	if err := decodePaths(b, icon); err != nil {
		return nil, err
	}
	if err := decodeStyles(b, icon); err != nil {
		return nil, err
	}
	if err := decodeShapes(b, icon); err != nil {
		return nil, err
	}
	return icon, nil
}

func decodePaths(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU16()
	if err != nil {
		return ErrTruncated
	}
	for i := uint16(0); i < count; i++ {
		flags, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		vcount, err := b.ReadU16()
		if err != nil {
			return ErrTruncated
		}
		p := model.NewPath()
		p.Closed = flags&1 != 0
		for j := uint16(0); j < vcount; j++ {
			v, err := readVertex(b)
			if err != nil {
				return ErrTruncated
			}
			p.Vertices = append(p.Vertices, v)
		}
		icon.AddPath(p)
	}
	return nil
}

func readVertex(b *bitbuf.Buffer) (model.Vertex, error) {
	connected, err := b.ReadU8()
	if err != nil {
		return model.Vertex{}, err
	}
	a, err := readPoint(b)
	if err != nil {
		return model.Vertex{}, err
	}
	hin, err := readPoint(b)
	if err != nil {
		return model.Vertex{}, err
	}
	hout, err := readPoint(b)
	if err != nil {
		return model.Vertex{}, err
	}
	return model.Vertex{A: a, Hin: hin, Hout: hout, Connected: connected != 0}, nil
}

func decodeStyles(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU16()
	if err != nil {
		return ErrTruncated
	}
	for i := uint16(0); i < count; i++ {
		kind, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		switch kind {
		case styleKindSolid:
			c, err := readColor(b)
			if err != nil {
				return ErrTruncated
			}
			icon.AddStyle(model.NewSolidStyle(c))
		case styleKindGradient:
			g, err := decodeGradient(b)
			if err != nil {
				return ErrTruncated
			}
			icon.AddStyle(model.NewGradientStyle(g))
		default:
			return ErrTruncated
		}
	}
	return nil
}

func decodeGradient(b *bitbuf.Buffer) (*model.Gradient, error) {
	gType, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	interp, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	xf, err := readAffine(b)
	if err != nil {
		return nil, err
	}
	stopCount, err := b.ReadU8()
	if err != nil {
		return nil, err
	}
	g := model.NewGradient()
	g.Type = model.GradientType(gType)
	g.Interpolation = model.Interpolation(interp)
	g.Transform = xf
	for i := uint8(0); i < stopCount; i++ {
		offset, err := b.ReadF32()
		if err != nil {
			return nil, err
		}
		c, err := readColor(b)
		if err != nil {
			return nil, err
		}
		g.AddStop(float64(offset), c)
	}
	return g, nil
}

func decodeShapes(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU16()
	if err != nil {
		return ErrTruncated
	}
	for i := uint16(0); i < count; i++ {
		styleRef32, err := b.ReadU32()
		if err != nil {
			return ErrTruncated
		}
		styleRef := int(int32(styleRef32))

		pathRefCount, err := b.ReadU16()
		if err != nil {
			return ErrTruncated
		}
		var pathIndices []int
		for j := uint16(0); j < pathRefCount; j++ {
			ref32, err := b.ReadU32()
			if err != nil {
				return ErrTruncated
			}
			ref := int(int32(ref32))
			if _, ok := icon.PathAt(ref); ok {
				pathIndices = append(pathIndices, ref)
			}
		}

		if styleRef != model.StyleCurrentColor {
			if _, ok := icon.StyleAt(styleRef); !ok {
				styleRef = noStyleRef
			}
		}

		flags, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		xf, err := readAffine(b)
		if err != nil {
			return ErrTruncated
		}
		minScale, err := b.ReadF32()
		if err != nil {
			return ErrTruncated
		}
		maxScale, err := b.ReadF32()
		if err != nil {
			return ErrTruncated
		}

		s := model.NewShape(styleRef, pathIndices...)
		s.Hinting = flags&1 != 0
		s.Transform = xf
		s.MinVisibilityScale = float64(minScale)
		s.MaxVisibilityScale = float64(maxScale)

		trCount, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		for j := uint8(0); j < trCount; j++ {
			tr, err := decodeTransformer(b)
			if err != nil {
				return ErrTruncated
			}
			s.Transformers = append(s.Transformers, tr)
		}

		icon.AddShape(s)
	}
	return nil
}

func decodeTransformer(b *bitbuf.Buffer) (model.Transformer, error) {
	var tr model.Transformer
	kind, err := b.ReadU8()
	if err != nil {
		return tr, err
	}
	xf, err := readAffine(b)
	if err != nil {
		return tr, err
	}
	width, err := b.ReadF32()
	if err != nil {
		return tr, err
	}
	lineJoin, err := b.ReadU8()
	if err != nil {
		return tr, err
	}
	lineCap, err := b.ReadU8()
	if err != nil {
		return tr, err
	}
	miterLimit, err := b.ReadF32()
	if err != nil {
		return tr, err
	}
	tr.Kind = model.TransformerKind(kind)
	tr.Matrix = xf
	tr.Width = float64(width)
	tr.LineJoin = model.LineJoin(lineJoin)
	tr.LineCap = model.LineCap(lineCap)
	tr.MiterLimit = float64(miterLimit)
	return tr, nil
}

// ErrTooMany is returned when a container exceeds this format's 16-bit
// (or, for per-shape transformer lists, 8-bit) count field.
var ErrTooMany = errors.New("imsg: container exceeds archive count limit")
