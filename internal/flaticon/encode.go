package flaticon

import (
	"vicon/internal/bitbuf"
	"vicon/internal/model"
	"vicon/internal/transform"
)

const identityEpsilon = 1e-9

// Encode serializes icon to the flat "ficn" byte format described in
// spec.md §4.2.
func Encode(icon *model.Icon) ([]byte, error) {
	if len(icon.Styles) > MaxCount {
		return nil, ErrTooManyStyles
	}
	if len(icon.Paths) > MaxCount {
		return nil, ErrTooManyPaths
	}
	if len(icon.Shapes) > MaxCount {
		return nil, ErrTooManyShapes
	}

	b := bitbuf.New()
	b.WriteU32(Magic)

	b.WriteU8(uint8(len(icon.Styles)))
	for _, s := range icon.Styles {
		if err := encodeStyle(b, s); err != nil {
			return nil, err
		}
	}

	b.WriteU8(uint8(len(icon.Paths)))
	for _, p := range icon.Paths {
		if err := encodePath(b, p); err != nil {
			return nil, err
		}
	}

	b.WriteU8(uint8(len(icon.Shapes)))
	for _, s := range icon.Shapes {
		if err := encodeShape(b, icon, s); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

func encodeStyle(b *bitbuf.Buffer, s *model.Style) error {
	if s.Kind == model.StyleGradientKind {
		b.WriteU8(styleTypeGradient)
		return encodeGradient(b, s.Gradient)
	}

	c := s.Color
	gray := c.R == c.G && c.G == c.B
	noAlpha := c.A == 255

	switch {
	case gray && noAlpha:
		b.WriteU8(styleTypeSolidGrayNoAlpha)
		b.WriteU8(c.R)
	case gray:
		b.WriteU8(styleTypeSolidGray)
		b.WriteU8(c.R)
		b.WriteU8(c.A)
	case noAlpha:
		b.WriteU8(styleTypeSolidColorNoAlpha)
		b.WriteU8(c.R)
		b.WriteU8(c.G)
		b.WriteU8(c.B)
	default:
		b.WriteU8(styleTypeSolidColor)
		b.WriteU8(c.R)
		b.WriteU8(c.G)
		b.WriteU8(c.B)
		b.WriteU8(c.A)
	}
	return nil
}

func encodeGradient(b *bitbuf.Buffer, g *model.Gradient) error {
	if !g.Valid() {
		return ErrInvalidArgument
	}

	hasTransform := !g.Transform.IsIdentity(identityEpsilon)
	noAlpha := true
	grays := true
	for _, stop := range g.Stops {
		if stop.Color.A != 255 {
			noAlpha = false
		}
		if !(stop.Color.R == stop.Color.G && stop.Color.G == stop.Color.B) {
			grays = false
		}
	}

	var flags uint8
	if hasTransform {
		flags |= gradientFlagTransform
	}
	if noAlpha {
		flags |= gradientFlagNoAlpha
	}
	if grays {
		flags |= gradientFlagGrays
	}

	b.WriteU8(uint8(g.Type))
	b.WriteU8(flags)
	b.WriteU8(uint8(len(g.Stops)))

	if hasTransform {
		writeAffineFloat24(b, &g.Transform)
	}

	for _, stop := range g.Stops {
		b.WriteU8(uint8(clampRound(stop.Offset * 255)))
		writeStopColor(b, stop.Color, noAlpha, grays)
	}
	return nil
}

func writeStopColor(b *bitbuf.Buffer, c model.Color, noAlpha, gray bool) {
	if noAlpha {
		if gray {
			b.WriteU8(c.R)
		} else {
			b.WriteU8(c.R)
			b.WriteU8(c.G)
			b.WriteU8(c.B)
		}
	} else {
		if gray {
			b.WriteU8(c.R)
			b.WriteU8(c.A)
		} else {
			b.WriteU8(c.R)
			b.WriteU8(c.G)
			b.WriteU8(c.B)
			b.WriteU8(c.A)
		}
	}
}

func writeAffineFloat24(b *bitbuf.Buffer, t *transform.TransAffine) {
	b.WriteFloat24(float32(t.SX))
	b.WriteFloat24(float32(t.SHY))
	b.WriteFloat24(float32(t.SHX))
	b.WriteFloat24(float32(t.SY))
	b.WriteFloat24(float32(t.TX))
	b.WriteFloat24(float32(t.TY))
}

func clampRound(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return int(v + 0.5)
}

// coordByteLen returns how many bytes WriteCoord would emit for v,
// mirroring the exact branch condition in bitbuf.Buffer.WriteCoord.
func coordByteLen(v float64) int {
	f := float32(v)
	if f < -128 {
		f = -128
	}
	if f > 192 {
		f = 192
	}
	if float32(int32(f*100)) == float32(int32(f))*100 && f >= -32 && f <= 95 {
		return 1
	}
	return 2
}

func encodePath(b *bitbuf.Buffer, p *model.Path) error {
	if len(p.Vertices) > MaxCount {
		return ErrPathTooManyPoints
	}

	allStraight := true
	for _, v := range p.Vertices {
		if !v.IsStraight() {
			allStraight = false
			break
		}
	}

	noCurvesLen := -1
	if allStraight {
		n := 0
		for _, v := range p.Vertices {
			n += coordByteLen(v.A.X) + coordByteLen(v.A.Y)
		}
		noCurvesLen = n
	}

	commandsLen := commandEncodingLen(p.Vertices)
	curvesLen := curvesByteLen(p.Vertices)

	var flags uint8
	if p.Closed {
		flags |= pathFlagClosed
	}

	b.WriteU8(flags | pathEncodingFlag(noCurvesLen, commandsLen, curvesLen))
	b.WriteU8(uint8(len(p.Vertices)))

	switch {
	case allStraight && noCurvesLen <= commandsLen && noCurvesLen <= curvesLen:
		for _, v := range p.Vertices {
			b.WriteCoord(float32(v.A.X))
			b.WriteCoord(float32(v.A.Y))
		}
	case commandsLen <= curvesLen:
		writePathCommands(b, p.Vertices)
	default:
		for _, v := range p.Vertices {
			b.WriteCoord(float32(v.A.X))
			b.WriteCoord(float32(v.A.Y))
			b.WriteCoord(float32(v.Hin.X))
			b.WriteCoord(float32(v.Hin.Y))
			b.WriteCoord(float32(v.Hout.X))
			b.WriteCoord(float32(v.Hout.Y))
		}
	}
	return nil
}

// pathEncodingFlag recomputes which of the three flag bits to set based
// on the same comparison used to choose the payload below, so the flags
// byte and the payload never disagree.
func pathEncodingFlag(noCurvesLen, commandsLen, curvesLen int) uint8 {
	if noCurvesLen >= 0 && noCurvesLen <= commandsLen && noCurvesLen <= curvesLen {
		return pathFlagNoCurves
	}
	if commandsLen <= curvesLen {
		return pathFlagUsesCommands
	}
	return 0
}

func classify(v model.Vertex, last model.Point) uint8 {
	if !v.IsStraight() {
		return pathCommandCurve
	}
	if v.A.X == last.X {
		return pathCommandVLine
	}
	if v.A.Y == last.Y {
		return pathCommandHLine
	}
	return pathCommandLine
}

func commandEncodingLen(vertices []model.Vertex) int {
	commandBytes := (len(vertices) + 3) / 4
	pointBytes := 0
	last := model.Point{}
	for _, v := range vertices {
		switch classify(v, last) {
		case pathCommandHLine:
			pointBytes += coordByteLen(v.A.X)
		case pathCommandVLine:
			pointBytes += coordByteLen(v.A.Y)
		case pathCommandLine:
			pointBytes += coordByteLen(v.A.X) + coordByteLen(v.A.Y)
		case pathCommandCurve:
			pointBytes += coordByteLen(v.A.X) + coordByteLen(v.A.Y) +
				coordByteLen(v.Hin.X) + coordByteLen(v.Hin.Y) +
				coordByteLen(v.Hout.X) + coordByteLen(v.Hout.Y)
		}
		last = v.A
	}
	return commandBytes + pointBytes
}

func curvesByteLen(vertices []model.Vertex) int {
	n := 0
	for _, v := range vertices {
		n += coordByteLen(v.A.X) + coordByteLen(v.A.Y) +
			coordByteLen(v.Hin.X) + coordByteLen(v.Hin.Y) +
			coordByteLen(v.Hout.X) + coordByteLen(v.Hout.Y)
	}
	return n
}

func writePathCommands(b *bitbuf.Buffer, vertices []model.Vertex) {
	cmdBuf := bitbuf.New()
	pointBuf := bitbuf.New()

	var commandByte uint8
	var commandPos uint

	flush := func() {
		if commandPos > 0 {
			cmdBuf.WriteU8(commandByte)
			commandByte = 0
			commandPos = 0
		}
	}

	last := model.Point{}
	for _, v := range vertices {
		cmd := classify(v, last)
		commandByte |= cmd << commandPos
		commandPos += 2
		if commandPos == 8 {
			cmdBuf.WriteU8(commandByte)
			commandByte = 0
			commandPos = 0
		}

		switch cmd {
		case pathCommandHLine:
			pointBuf.WriteCoord(float32(v.A.X))
		case pathCommandVLine:
			pointBuf.WriteCoord(float32(v.A.Y))
		case pathCommandLine:
			pointBuf.WriteCoord(float32(v.A.X))
			pointBuf.WriteCoord(float32(v.A.Y))
		case pathCommandCurve:
			pointBuf.WriteCoord(float32(v.A.X))
			pointBuf.WriteCoord(float32(v.A.Y))
			pointBuf.WriteCoord(float32(v.Hin.X))
			pointBuf.WriteCoord(float32(v.Hin.Y))
			pointBuf.WriteCoord(float32(v.Hout.X))
			pointBuf.WriteCoord(float32(v.Hout.Y))
		}
		last = v.A
	}
	flush()

	b.WriteBuffer(cmdBuf)
	b.WriteBuffer(pointBuf)
}

func encodeShape(b *bitbuf.Buffer, icon *model.Icon, s *model.Shape) error {
	if len(s.PathIndices) > MaxCount {
		return ErrShapeTooManyPaths
	}
	if len(s.Transformers) > MaxCount {
		return ErrShapeTooManyTransformers
	}

	b.WriteU8(shapeTypePathSource)

	styleIndex := s.StyleIndex
	if styleIndex == model.StyleCurrentColor {
		// 255 can never be a real style index (style_count's own hard
		// ceiling is 255, so the highest valid 0-based index is 254);
		// CurrentColor borrows it as an in-band sentinel (see
		// DESIGN.md's CurrentColor entry).
		styleIndex = currentColorWireIndex
	}
	b.WriteU8(uint8(styleIndex))
	b.WriteU8(uint8(len(s.PathIndices)))
	for _, pi := range s.PathIndices {
		b.WriteU8(uint8(pi))
	}

	translation, isTranslation := asTranslation(&s.Transform)
	isIdentity := s.Transform.IsIdentity(identityEpsilon)

	var flags uint8
	if s.Hinting {
		flags |= shapeFlagHinting
	}
	if !isIdentity {
		if isTranslation {
			flags |= shapeFlagTranslation
		} else {
			flags |= shapeFlagTransform
		}
	}
	if s.MinVisibilityScale != 0 || s.MaxVisibilityScale != 4 {
		flags |= shapeFlagLODScale
	}
	if len(s.Transformers) > 0 {
		flags |= shapeFlagHasTransformers
	}
	b.WriteU8(flags)

	if flags&shapeFlagTransform != 0 {
		writeAffineFloat24(b, &s.Transform)
	} else if flags&shapeFlagTranslation != 0 {
		b.WriteCoord(float32(translation.X))
		b.WriteCoord(float32(translation.Y))
	}

	if flags&shapeFlagLODScale != 0 {
		b.WriteU8(uint8(clampRound(s.MinVisibilityScale * lodScale)))
		b.WriteU8(uint8(clampRound(s.MaxVisibilityScale * lodScale)))
	}

	if flags&shapeFlagHasTransformers != 0 {
		b.WriteU8(uint8(len(s.Transformers)))
		for _, tr := range s.Transformers {
			encodeTransformer(b, tr)
		}
	}
	return nil
}

// asTranslation reports whether t is a pure translation (no rotation,
// scale, or shear) and returns the translation if so.
func asTranslation(t *transform.TransAffine) (model.Point, bool) {
	id := transform.NewTransAffine()
	pure := t.SX == id.SX && t.SY == id.SY && t.SHX == id.SHX && t.SHY == id.SHY
	return model.Point{X: t.TX, Y: t.TY}, pure
}

func encodeTransformer(b *bitbuf.Buffer, t model.Transformer) {
	switch t.Kind {
	case model.TransformerAffine:
		b.WriteU8(transformerTypeAffine)
		writeAffineFloat24(b, &t.Matrix)
	case model.TransformerContour:
		b.WriteU8(transformerTypeContour)
		b.WriteU8(uint8(clampRound(t.Width) + 128))
		b.WriteU8(uint8(t.LineJoin))
		b.WriteU8(uint8(clampRound(t.MiterLimit)))
	case model.TransformerStroke:
		b.WriteU8(transformerTypeStroke)
		b.WriteU8(uint8(clampRound(t.Width) + 128))
		b.WriteU8(uint8(t.LineJoin&0x0f) | uint8(t.LineCap<<4))
		b.WriteU8(uint8(clampRound(t.MiterLimit)))
	case model.TransformerPerspective:
		// Reserved: encoders must not emit it (spec.md §4.4, §9 Open
		// Questions). Silently dropped rather than written malformed.
	}
}
