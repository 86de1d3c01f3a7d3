// Package model implements the in-memory vector icon data model: Path,
// Style, Gradient, Shape, and Icon, per the flat icon format they
// serialize to and from.
package model

import (
	"fmt"

	"vicon/internal/observer"
	"vicon/internal/transform"
)

// Color is a straight (non-premultiplied) 8-bit-per-channel RGBA color,
// the unit the flat format's style tags encode.
type Color struct {
	R, G, B, A uint8
}

// Point is a 2D coordinate in the nominal 0..64 design space.
type Point struct {
	X, Y float64
}

// Vertex is one point of a Path: an on-curve anchor plus its incoming
// and outgoing control handles. When Hin == A == Hout the segment
// ending at this vertex is a straight line.
type Vertex struct {
	A, Hin, Hout Point
	Connected    bool
}

// IsStraight reports whether this vertex's handles coincide with its
// anchor, i.e. no curve fitting is needed for the segments touching it.
func (v Vertex) IsStraight() bool {
	return v.Hin == v.A && v.Hout == v.A
}

// Path is an ordered, optionally-closed sequence of vertices.
type Path struct {
	observer.Observable

	Vertices []Vertex
	Closed   bool
}

// NewPath returns an empty, open path.
func NewPath() *Path {
	p := &Path{}
	p.Init(p)
	return p
}

// AddVertex appends a vertex and notifies observers.
func (p *Path) AddVertex(v Vertex) {
	p.Vertices = append(p.Vertices, v)
	p.Notify()
}

// SetClosed updates the closed flag and notifies observers if it changed.
func (p *Path) SetClosed(closed bool) {
	if p.Closed == closed {
		return
	}
	p.Closed = closed
	p.Notify()
}

// GradientType selects the parametric shape function a gradient's
// colors are mapped through.
type GradientType uint8

const (
	GradientLinear GradientType = iota
	GradientRadial
	GradientDiamond
	GradientConic
	GradientXY
	GradientSqrtXY
)

// Interpolation selects how a gradient's color-stop table is built
// between two consecutive stops.
type Interpolation uint8

const (
	InterpolationLinear Interpolation = iota
	InterpolationSmooth
)

// GradientStop is one (offset, color) keyframe of a Gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// Gradient is an ordered list of color stops plus the shape, interpolation,
// and transform parameters needed to span it across a shape's fill.
type Gradient struct {
	observer.Observable

	Type             GradientType
	Interpolation    Interpolation
	InheritTransform bool
	Transform        transform.TransAffine
	Stops            []GradientStop
}

// NewGradient returns an empty gradient with an identity transform.
func NewGradient() *Gradient {
	g := &Gradient{Transform: *transform.NewTransAffine()}
	g.Init(g)
	return g
}

// AddStop inserts a stop keeping Stops sorted by ascending offset.
func (g *Gradient) AddStop(offset float64, c Color) {
	stop := GradientStop{Offset: offset, Color: c}
	i := 0
	for ; i < len(g.Stops); i++ {
		if g.Stops[i].Offset > offset {
			break
		}
	}
	g.Stops = append(g.Stops, GradientStop{})
	copy(g.Stops[i+1:], g.Stops[i:])
	g.Stops[i] = stop
	g.Notify()
}

// Valid reports whether the gradient has at least one stop, per §3's
// "a gradient with zero stops is invalid" invariant.
func (g *Gradient) Valid() bool {
	return len(g.Stops) > 0
}

// StyleKind distinguishes a solid-color Style from a gradient Style.
type StyleKind uint8

const (
	StyleSolid StyleKind = iota
	StyleGradientKind
)

// StyleCurrentColor is the sentinel style index a Shape's StyleIndex may
// hold, meaning "use the renderer-supplied current foreground color"
// instead of an owned Style (see SPEC_FULL.md's CurrentColor addition).
const StyleCurrentColor = -1

// Style is either a solid color or a Gradient.
type Style struct {
	observer.Observable

	Kind     StyleKind
	Color    Color
	Gradient *Gradient
}

// NewSolidStyle returns a solid-color style.
func NewSolidStyle(c Color) *Style {
	s := &Style{Kind: StyleSolid, Color: c}
	s.Init(s)
	return s
}

// NewGradientStyle returns a gradient style.
func NewGradientStyle(g *Gradient) *Style {
	s := &Style{Kind: StyleGradientKind, Gradient: g}
	s.Init(s)
	return s
}

// SetColor replaces a solid style's color and notifies observers.
func (s *Style) SetColor(c Color) {
	s.Kind = StyleSolid
	s.Color = c
	s.Notify()
}

// SetGradient replaces the style with a gradient style and notifies
// observers.
func (s *Style) SetGradient(g *Gradient) {
	s.Kind = StyleGradientKind
	s.Gradient = g
	s.Notify()
}

// HasTransparency reports whether this style can produce a pixel with
// alpha < 255, which the rasterizer's pass-flush rule (§4.3 step 3)
// needs to decide when to flush the current compound pass.
func (s *Style) HasTransparency() bool {
	if s.Kind == StyleSolid {
		return s.Color.A < 255
	}
	for _, stop := range s.Gradient.Stops {
		if stop.Color.A < 255 {
			return true
		}
	}
	return false
}

// TransformerKind selects the kind of path transformer in a Shape's
// pipeline.
type TransformerKind uint8

const (
	TransformerAffine TransformerKind = iota
	TransformerContour
	TransformerPerspective
	TransformerStroke
)

// LineJoin mirrors the flat format's line-join tag values.
type LineJoin uint8

// LineCap mirrors the flat format's line-cap tag values.
type LineCap uint8

// Transformer is one element of a Shape's path-transformer pipeline. The
// set of kinds is closed and fixed by the file format (§9 Design Notes:
// "model transformers ... as tagged variants, not as an open polymorphic
// hierarchy"), so this is a tagged struct rather than an interface
// hierarchy.
type Transformer struct {
	Kind TransformerKind

	// Affine
	Matrix transform.TransAffine

	// Contour / Stroke
	Width      float64
	LineJoin   LineJoin
	LineCap    LineCap
	MiterLimit float64
}

// Shape binds one Style to one or more Paths, with its own transform,
// transformer pipeline, hinting flag, and LOD visibility range.
type Shape struct {
	observer.Observable

	StyleIndex int // StyleCurrentColor for the CurrentColor sentinel
	PathIndices []int
	Transform   transform.TransAffine
	Transformers []Transformer
	Hinting      bool

	MinVisibilityScale float64
	MaxVisibilityScale float64
}

// NewShape returns a shape referencing styleIndex with an identity
// transform and default full LOD visibility range.
func NewShape(styleIndex int, pathIndices ...int) *Shape {
	s := &Shape{
		StyleIndex:         styleIndex,
		PathIndices:        append([]int(nil), pathIndices...),
		Transform:          *transform.NewTransAffine(),
		MinVisibilityScale: 0,
		MaxVisibilityScale: 4,
	}
	s.Init(s)
	return s
}

// AddTransformer appends a transformer to the pipeline; the last added
// transformer is outermost, matching the flat format's rebuild order
// (§4.4: "the last added transformer is outermost").
func (s *Shape) AddTransformer(t Transformer) {
	s.Transformers = append(s.Transformers, t)
	s.Notify()
}

// Icon owns three containers: styles, paths, and shapes. Shapes
// reference styles and paths by index within the same Icon only.
type Icon struct {
	observer.Observable

	Styles []*Style
	Paths  []*Path
	Shapes []*Shape
}

// NewIcon returns an empty icon.
func NewIcon() *Icon {
	ic := &Icon{}
	ic.Init(ic)
	return ic
}

// AddStyle appends a style and notifies observers.
func (ic *Icon) AddStyle(s *Style) {
	ic.Styles = append(ic.Styles, s)
	ic.Notify()
}

// AddPath appends a path and notifies observers.
func (ic *Icon) AddPath(p *Path) {
	ic.Paths = append(ic.Paths, p)
	ic.Notify()
}

// AddShape appends a shape and notifies observers.
func (ic *Icon) AddShape(s *Shape) {
	ic.Shapes = append(ic.Shapes, s)
	ic.Notify()
}

// StyleAt returns the style at index, or nil (with ok=false) if index is
// out of range — callers use this to implement the decoder's "silently
// drop a dangling reference" rule (spec.md §7e).
func (ic *Icon) StyleAt(index int) (*Style, bool) {
	if index < 0 || index >= len(ic.Styles) {
		return nil, false
	}
	return ic.Styles[index], true
}

// PathAt returns the path at index, or nil (with ok=false) if out of range.
func (ic *Icon) PathAt(index int) (*Path, bool) {
	if index < 0 || index >= len(ic.Paths) {
		return nil, false
	}
	return ic.Paths[index], true
}

// Validate checks the §3 referential-integrity invariant: every shape's
// style and path references must exist in this icon's containers. This
// is used by tests and by the editor, not by the decoder (which instead
// drops dangling references per §7e).
func (ic *Icon) Validate() error {
	for si, shape := range ic.Shapes {
		if shape.StyleIndex != StyleCurrentColor {
			if _, ok := ic.StyleAt(shape.StyleIndex); !ok {
				return fmt.Errorf("model: shape %d references missing style %d", si, shape.StyleIndex)
			}
		}
		for _, pi := range shape.PathIndices {
			if _, ok := ic.PathAt(pi); !ok {
				return fmt.Errorf("model: shape %d references missing path %d", si, pi)
			}
		}
	}
	return nil
}
