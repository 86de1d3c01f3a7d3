package flaticon

import (
	"vicon/internal/bitbuf"
	"vicon/internal/model"
	"vicon/internal/transform"
)

// Decode parses the flat "ficn" byte format described in spec.md §4.2.
// A shape referencing a missing path silently drops that reference, and
// an out-of-range style index is kept as-is, rather than failing
// (spec.md §7e).
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

	if err := decodeStyles(b, icon); err != nil {
		return nil, err
	}
	if err := decodePaths(b, icon); err != nil {
		return nil, err
	}
	if err := decodeShapes(b, icon); err != nil {
		return nil, err
	}
	return icon, nil
}

func decodeStyles(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU8()
	if err != nil {
		return ErrTruncated
	}
	for i := uint8(0); i < count; i++ {
		tag, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		switch tag {
		case styleTypeSolidColor:
			c, err := readColorStyle(b, true, false)
			if err != nil {
				return err
			}
			icon.AddStyle(model.NewSolidStyle(c))
		case styleTypeSolidColorNoAlpha:
			c, err := readColorStyle(b, false, false)
			if err != nil {
				return err
			}
			icon.AddStyle(model.NewSolidStyle(c))
		case styleTypeSolidGray:
			c, err := readColorStyle(b, true, true)
			if err != nil {
				return err
			}
			icon.AddStyle(model.NewSolidStyle(c))
		case styleTypeSolidGrayNoAlpha:
			c, err := readColorStyle(b, false, true)
			if err != nil {
				return err
			}
			icon.AddStyle(model.NewSolidStyle(c))
		case styleTypeGradient:
			g, err := decodeGradient(b)
			if err != nil {
				return err
			}
			icon.AddStyle(model.NewGradientStyle(g))
		default:
			if err := skipUnknownTag(b); err != nil {
				return err
			}
		}
	}
	return nil
}

func readColorStyle(b *bitbuf.Buffer, alpha, gray bool) (model.Color, error) {
	var c model.Color
	c.A = 255
	var err error
	if gray {
		c.R, err = b.ReadU8()
		if err != nil {
			return c, ErrTruncated
		}
		c.G, c.B = c.R, c.R
	} else {
		c.R, err = b.ReadU8()
		if err == nil {
			c.G, err = b.ReadU8()
		}
		if err == nil {
			c.B, err = b.ReadU8()
		}
		if err != nil {
			return c, ErrTruncated
		}
	}
	if alpha {
		c.A, err = b.ReadU8()
		if err != nil {
			return c, ErrTruncated
		}
	}
	return c, nil
}

func decodeGradient(b *bitbuf.Buffer) (*model.Gradient, error) {
	gradType, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}
	flags, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}
	stopCount, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}

	g := model.NewGradient()
	g.Type = model.GradientType(gradType)

	if flags&gradientFlagTransform != 0 {
		t, err := readAffineFloat24(b)
		if err != nil {
			return nil, err
		}
		g.Transform = t
	}

	alpha := flags&gradientFlagNoAlpha == 0
	gray := flags&gradientFlagGrays != 0

	for i := uint8(0); i < stopCount; i++ {
		offsetByte, err := b.ReadU8()
		if err != nil {
			return nil, ErrTruncated
		}
		c, err := readColorStyle(b, alpha, gray)
		if err != nil {
			return nil, err
		}
		g.AddStop(float64(offsetByte)/255.0, c)
	}
	return g, nil
}

func readAffineFloat24(b *bitbuf.Buffer) (transform.TransAffine, error) {
	var vals [6]float32
	for i := range vals {
		v, err := b.ReadFloat24()
		if err != nil {
			return transform.TransAffine{}, ErrTruncated
		}
		vals[i] = v
	}
	return *transform.NewTransAffineFromValues(
		float64(vals[0]), float64(vals[1]), float64(vals[2]),
		float64(vals[3]), float64(vals[4]), float64(vals[5]),
	), nil
}

func skipUnknownTag(b *bitbuf.Buffer) error {
	length, err := b.ReadU16()
	if err != nil {
		return ErrTruncated
	}
	if err := b.Skip(int(length)); err != nil {
		return ErrUnknownTag
	}
	return nil
}

func decodePaths(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU8()
	if err != nil {
		return ErrTruncated
	}
	for i := uint8(0); i < count; i++ {
		flags, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		pointCount, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}

		p := model.NewPath()
		var decodeErr error
		switch {
		case flags&pathFlagNoCurves != 0:
			decodeErr = readPathNoCurves(b, p, pointCount)
		case flags&pathFlagUsesCommands != 0:
			decodeErr = readPathWithCommands(b, p, pointCount)
		default:
			decodeErr = readPathCurves(b, p, pointCount)
		}
		if decodeErr != nil {
			return decodeErr
		}
		p.Closed = flags&pathFlagClosed != 0
		icon.AddPath(p)
	}
	return nil
}

func readCoord2(b *bitbuf.Buffer) (model.Point, error) {
	x, err := b.ReadCoord()
	if err != nil {
		return model.Point{}, ErrTruncated
	}
	y, err := b.ReadCoord()
	if err != nil {
		return model.Point{}, ErrTruncated
	}
	return model.Point{X: float64(x), Y: float64(y)}, nil
}

func readPathNoCurves(b *bitbuf.Buffer, p *model.Path, pointCount uint8) error {
	for i := uint8(0); i < pointCount; i++ {
		a, err := readCoord2(b)
		if err != nil {
			return err
		}
		p.Vertices = append(p.Vertices, model.Vertex{A: a, Hin: a, Hout: a})
	}
	return nil
}

func readPathCurves(b *bitbuf.Buffer, p *model.Path, pointCount uint8) error {
	for i := uint8(0); i < pointCount; i++ {
		a, err := readCoord2(b)
		if err != nil {
			return err
		}
		hin, err := readCoord2(b)
		if err != nil {
			return err
		}
		hout, err := readCoord2(b)
		if err != nil {
			return err
		}
		p.Vertices = append(p.Vertices, model.Vertex{A: a, Hin: hin, Hout: hout})
	}
	return nil
}

func readPathWithCommands(b *bitbuf.Buffer, p *model.Path, pointCount uint8) error {
	commandBufferSize := (int(pointCount) + 3) / 4
	cmdReader, err := b.ReadBytes(commandBufferSize)
	if err != nil {
		return ErrTruncated
	}

	var commandByte uint8
	var commandPos uint

	readCommand := func() (uint8, error) {
		if commandPos == 0 {
			v, err := cmdReader.ReadU8()
			if err != nil {
				return 0, ErrTruncated
			}
			commandByte = v
		}
		cmd := (commandByte >> commandPos) & 0x03
		commandPos += 2
		if commandPos == 8 {
			commandPos = 0
		}
		return cmd, nil
	}

	last := model.Point{}
	for i := uint8(0); i < pointCount; i++ {
		cmd, err := readCommand()
		if err != nil {
			return err
		}

		var a, hin, hout model.Point
		switch cmd {
		case pathCommandHLine:
			x, err := b.ReadCoord()
			if err != nil {
				return ErrTruncated
			}
			a = model.Point{X: float64(x), Y: last.Y}
			hin, hout = a, a
		case pathCommandVLine:
			y, err := b.ReadCoord()
			if err != nil {
				return ErrTruncated
			}
			a = model.Point{X: last.X, Y: float64(y)}
			hin, hout = a, a
		case pathCommandLine:
			a, err = readCoord2(b)
			if err != nil {
				return err
			}
			hin, hout = a, a
		case pathCommandCurve:
			a, err = readCoord2(b)
			if err != nil {
				return err
			}
			hin, err = readCoord2(b)
			if err != nil {
				return err
			}
			hout, err = readCoord2(b)
			if err != nil {
				return err
			}
		}
		p.Vertices = append(p.Vertices, model.Vertex{A: a, Hin: hin, Hout: hout})
		last = a
	}
	return nil
}

func decodeShapes(b *bitbuf.Buffer, icon *model.Icon) error {
	count, err := b.ReadU8()
	if err != nil {
		return ErrTruncated
	}
	for i := uint8(0); i < count; i++ {
		tag, err := b.ReadU8()
		if err != nil {
			return ErrTruncated
		}
		if tag != shapeTypePathSource {
			if err := skipUnknownTag(b); err != nil {
				return err
			}
			continue
		}
		shape, err := decodePathSourceShape(b, icon)
		if err != nil {
			return err
		}
		icon.AddShape(shape)
	}
	return nil
}

func decodePathSourceShape(b *bitbuf.Buffer, icon *model.Icon) (*model.Shape, error) {
	styleIndexByte, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}
	pathCount, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}

	styleIndex := int(styleIndexByte)
	if styleIndexByte == currentColorWireIndex {
		styleIndex = model.StyleCurrentColor
	}
	// A dangling (out-of-range) style index is kept as-is rather than
	// rejected: spec.md §7e requires the decode to continue and the
	// resulting shape to render as visually empty, which iconraster
	// implements by treating any unresolvable StyleAt lookup as "no
	// fill" rather than failing.
	shape := model.NewShape(styleIndex)
	for i := uint8(0); i < pathCount; i++ {
		pathIndexByte, err := b.ReadU8()
		if err != nil {
			return nil, ErrTruncated
		}
		if _, ok := icon.PathAt(int(pathIndexByte)); ok {
			shape.PathIndices = append(shape.PathIndices, int(pathIndexByte))
		}
		// else: dangling path reference silently dropped (spec.md §7e).
	}

	flags, err := b.ReadU8()
	if err != nil {
		return nil, ErrTruncated
	}
	shape.Hinting = flags&shapeFlagHinting != 0

	if flags&shapeFlagTransform != 0 {
		t, err := readAffineFloat24(b)
		if err != nil {
			return nil, err
		}
		shape.Transform = t
	} else if flags&shapeFlagTranslation != 0 {
		p, err := readCoord2(b)
		if err != nil {
			return nil, err
		}
		shape.Transform = *transform.NewTransAffine()
		shape.Transform.Translate(p.X, p.Y)
	}

	if flags&shapeFlagLODScale != 0 {
		minS, err := b.ReadU8()
		if err != nil {
			return nil, ErrTruncated
		}
		maxS, err := b.ReadU8()
		if err != nil {
			return nil, ErrTruncated
		}
		shape.MinVisibilityScale = float64(minS) / lodScale
		shape.MaxVisibilityScale = float64(maxS) / lodScale
	}

	if flags&shapeFlagHasTransformers != 0 {
		trCount, err := b.ReadU8()
		if err != nil {
			return nil, ErrTruncated
		}
		for i := uint8(0); i < trCount; i++ {
			tr, ok, err := decodeTransformer(b)
			if err != nil {
				return nil, err
			}
			if ok {
				shape.AddTransformer(tr)
			}
		}
	}

	return shape, nil
}

func decodeTransformer(b *bitbuf.Buffer) (model.Transformer, bool, error) {
	tag, err := b.ReadU8()
	if err != nil {
		return model.Transformer{}, false, ErrTruncated
	}
	switch tag {
	case transformerTypeAffine:
		t, err := readAffineFloat24(b)
		if err != nil {
			return model.Transformer{}, false, err
		}
		return model.Transformer{Kind: model.TransformerAffine, Matrix: t}, true, nil
	case transformerTypeContour:
		width, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		lineJoin, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		miter, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		return model.Transformer{
			Kind:       model.TransformerContour,
			Width:      float64(width) - 128,
			LineJoin:   model.LineJoin(lineJoin),
			MiterLimit: float64(miter),
		}, true, nil
	case transformerTypeStroke:
		width, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		lineOptions, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		miter, err := b.ReadU8()
		if err != nil {
			return model.Transformer{}, false, ErrTruncated
		}
		return model.Transformer{
			Kind:       model.TransformerStroke,
			Width:      float64(width) - 128,
			LineJoin:   model.LineJoin(lineOptions & 0x0f),
			LineCap:    model.LineCap(lineOptions >> 4),
			MiterLimit: float64(miter),
		}, true, nil
	case transformerTypePerspective:
		// Reserved placeholder: decoders must accept and skip it
		// (spec.md §4.4, §9 Open Questions) — there is no length-
		// prefixed body to skip, it simply carries no payload.
		return model.Transformer{}, false, nil
	default:
		if err := skipUnknownTag(b); err != nil {
			return model.Transformer{}, false, err
		}
		return model.Transformer{}, false, nil
	}
}
