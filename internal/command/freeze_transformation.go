package command

import (
	"time"

	"vicon/internal/model"
	"vicon/internal/transform"
)

// FreezeTransformationCommand bakes a shape's affine transform directly
// into its paths' vertex coordinates and resets the shape's transform to
// identity, leaving the rendered result unchanged.
//
// spec.md leaves open what should happen when one of the shape's paths
// is also referenced by another shape (baking it would silently distort
// that other shape too). This command resolves it conservatively: it
// bakes only when every one of the shape's paths is exclusively owned
// by this shape within the icon; otherwise InitCheck fails and nothing
// is baked, rather than freezing some paths and leaving others shared
// and unfrozen.
type FreezeTransformationCommand struct {
	ts time.Time

	icon  *model.Icon
	shape *model.Shape

	oldTransform transform.TransAffine
	oldVertices  [][]model.Vertex // indexed like shape.PathIndices
}

// NewFreezeTransformationCommand returns a command that bakes shape's
// transform into its paths, within icon.
func NewFreezeTransformationCommand(ts time.Time, icon *model.Icon, shape *model.Shape) *FreezeTransformationCommand {
	return &FreezeTransformationCommand{ts: ts, icon: icon, shape: shape}
}

// InitCheck fails if icon or shape is nil, or if any of the shape's
// paths is shared with another shape in the icon.
func (c *FreezeTransformationCommand) InitCheck() error {
	if c.icon == nil || c.shape == nil {
		return ErrInvalidArgument
	}
	for _, pi := range c.shape.PathIndices {
		owners := 0
		for _, other := range c.icon.Shapes {
			for _, opi := range other.PathIndices {
				if opi == pi {
					owners++
				}
			}
		}
		if owners > 1 {
			return ErrInvalidArgument
		}
	}
	return nil
}

func bakePoint(m *transform.TransAffine, p model.Point) model.Point {
	x, y := p.X, p.Y
	m.Transform(&x, &y)
	return model.Point{X: x, Y: y}
}

// Perform bakes the shape's transform into each of its paths' vertices
// and resets the shape's transform to identity.
func (c *FreezeTransformationCommand) Perform() error {
	c.oldVertices = make([][]model.Vertex, len(c.shape.PathIndices))
	m := c.shape.Transform

	for i, pi := range c.shape.PathIndices {
		p, ok := c.icon.PathAt(pi)
		if !ok {
			continue
		}
		c.oldVertices[i] = append([]model.Vertex(nil), p.Vertices...)
		baked := make([]model.Vertex, len(p.Vertices))
		for j, v := range p.Vertices {
			baked[j] = model.Vertex{
				A:         bakePoint(&m, v.A),
				Hin:       bakePoint(&m, v.Hin),
				Hout:      bakePoint(&m, v.Hout),
				Connected: v.Connected,
			}
		}
		p.Vertices = baked
		p.Notify()
	}

	c.oldTransform = c.shape.Transform
	c.shape.Transform = *transform.NewTransAffine()
	c.shape.Notify()
	return nil
}

// Undo restores each path's original vertices and the shape's original
// transform.
func (c *FreezeTransformationCommand) Undo() error {
	for i, pi := range c.shape.PathIndices {
		p, ok := c.icon.PathAt(pi)
		if !ok || c.oldVertices[i] == nil {
			continue
		}
		p.Vertices = c.oldVertices[i]
		p.Notify()
	}
	c.shape.Transform = c.oldTransform
	c.shape.Notify()
	return nil
}

// Name returns the command's label.
func (c *FreezeTransformationCommand) Name() string { return "Freeze Transformation" }

// Timestamp returns the command's creation time.
func (c *FreezeTransformationCommand) Timestamp() time.Time { return c.ts }
