package iconraster

import (
	"vicon/internal/basics"
	"vicon/internal/curves"
	"vicon/internal/model"
	"vicon/internal/transform"
	"vicon/internal/vcgen"
)

// flattenPath walks a model.Path's anchor+handle vertices and appends the
// equivalent move_to/line_to/curve4 sequence (already flattened to line
// segments) to dst, in the path's own local coordinate space.
//
// Each segment between vertex i and vertex i+1 is a cubic Bezier with
// control points Vertices[i].Hout and Vertices[i+1].Hin; a segment whose
// Hout equals its start anchor and whose Hin equals its end anchor
// degenerates to a straight line, which is emitted directly rather than
// run through curve subdivision.
func flattenPath(dst *pointList, p *model.Path) {
	if len(p.Vertices) == 0 {
		return
	}

	first := p.Vertices[0]
	dst.moveTo(first.A.X, first.A.Y)

	n := len(p.Vertices)
	last := n
	if !p.Closed {
		last = n - 1
	}

	for i := 0; i < last; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		if a.Hout == a.A && b.Hin == b.A {
			dst.lineTo(b.A.X, b.A.Y)
			continue
		}
		flattenCubic(dst, a.A, a.Hout, b.Hin, b.A)
	}

	if p.Closed {
		dst.close()
	}
}

// flattenCubic subdivides one cubic Bezier segment into line segments
// using the teacher's curves.Curve4 in its default recursive-subdivision
// (CurveDiv) mode, and
// appends the resulting points (excluding the start point, already on
// dst) to dst.
func flattenCubic(dst *pointList, p0, p1, p2, p3 model.Point) {
	c := curves.NewCurve4()
	c.Init(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	c.Rewind(0)
	for {
		x, y, cmd := c.Vertex()
		if cmd == basics.PathCmdStop {
			return
		}
		if cmd == basics.PathCmdMoveTo {
			continue // the curve's own start point; dst already has it
		}
		dst.lineTo(x, y)
	}
}

// pointList is a flat move_to/line_to/close command stream built by
// flattenPath and consumed by strokeOrContour and by the rasterizer.
type pointList struct {
	xs, ys []float64
	cmds   []basics.PathCommand
}

func (l *pointList) moveTo(x, y float64) {
	l.xs = append(l.xs, x)
	l.ys = append(l.ys, y)
	l.cmds = append(l.cmds, basics.PathCmdMoveTo)
}

func (l *pointList) lineTo(x, y float64) {
	l.xs = append(l.xs, x)
	l.ys = append(l.ys, y)
	l.cmds = append(l.cmds, basics.PathCmdLineTo)
}

// close appends a synthetic end_poly(close) vertex. It must be a distinct
// command rather than a flag OR'd onto the last line_to: the rasterizer's
// AddVertex dispatches on IsVertex before IsClose, so a close flag riding
// on a line_to command would never reach ClosePolygon.
func (l *pointList) close() {
	if len(l.cmds) == 0 {
		return
	}
	l.xs = append(l.xs, l.xs[len(l.xs)-1])
	l.ys = append(l.ys, l.ys[len(l.ys)-1])
	l.cmds = append(l.cmds, basics.PathCmdEndPoly|basics.PathCommand(basics.PathFlagsClose))
}

// applyAffine transforms every point of l in place through m.
func applyAffine(l *pointList, m *transform.TransAffine) {
	for i := range l.xs {
		m.Transform(&l.xs[i], &l.ys[i])
	}
}

// applyStroke feeds l through the teacher's VCGenStroke and returns the
// stroked outline as a new pointList.
func applyStroke(l *pointList, t model.Transformer) *pointList {
	gen := vcgen.NewVCGenStroke()
	gen.SetWidth(t.Width)
	gen.SetLineJoin(mapLineJoin(t.LineJoin))
	gen.SetLineCap(mapLineCap(t.LineCap))
	if t.MiterLimit > 0 {
		gen.SetMiterLimit(t.MiterLimit)
	}
	return runGenerator(l, gen)
}

// applyContour feeds l through the teacher's VCGenContour and returns
// the offset outline as a new pointList.
func applyContour(l *pointList, t model.Transformer) *pointList {
	gen := vcgen.NewVCGenContour()
	gen.Width(t.Width)
	gen.LineJoin(mapLineJoin(t.LineJoin))
	if t.MiterLimit > 0 {
		gen.MiterLimit(t.MiterLimit)
	}
	return runGenerator(l, gen)
}

type vertexGenerator interface {
	RemoveAll()
	AddVertex(x, y float64, cmd basics.PathCommand)
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}

func runGenerator(l *pointList, gen vertexGenerator) *pointList {
	for i := range l.xs {
		gen.AddVertex(l.xs[i], l.ys[i], l.cmds[i])
	}
	gen.Rewind(0)

	out := &pointList{}
	for {
		x, y, cmd := gen.Vertex()
		if cmd == basics.PathCmdStop {
			break
		}
		if cmd == basics.PathCmdMoveTo {
			out.moveTo(x, y)
			continue
		}
		if basics.IsEndPoly(cmd) {
			out.close()
			continue
		}
		out.lineTo(x, y)
	}
	return out
}

// mapLineJoin maps the flat format's line-join byte value (Haiku's
// join_mode: B_MITER_JOIN=0, B_ROUND_JOIN=1, B_BEVEL_JOIN=2) onto the
// teacher's basics.LineJoin enum.
func mapLineJoin(j model.LineJoin) basics.LineJoin {
	switch j {
	case 1:
		return basics.RoundJoin
	case 2:
		return basics.BevelJoin
	default:
		return basics.MiterJoin
	}
}

// mapLineCap maps the flat format's line-cap byte value (Haiku's
// cap_mode: B_BUTT_CAP=0, B_SQUARE_CAP=1, B_ROUND_CAP=2) onto the
// teacher's basics.LineCap enum.
func mapLineCap(c model.LineCap) basics.LineCap {
	switch c {
	case 1:
		return basics.SquareCap
	case 2:
		return basics.RoundCap
	default:
		return basics.ButtCap
	}
}
