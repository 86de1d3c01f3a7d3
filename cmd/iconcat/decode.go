package main

import (
	"fmt"
	"os"

	"vicon"
)

func runDecode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: iconcat decode <file>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	icon, err := vicon.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	dumpIcon(icon)
	return nil
}

func dumpIcon(icon *vicon.Icon) {
	fmt.Printf("styles: %d\n", len(icon.Styles))
	for i, s := range icon.Styles {
		dumpStyle(i, s)
	}

	fmt.Printf("paths: %d\n", len(icon.Paths))
	for i, p := range icon.Paths {
		fmt.Printf("  [%d] %d vertices, closed=%v\n", i, len(p.Vertices), p.Closed)
	}

	fmt.Printf("shapes: %d\n", len(icon.Shapes))
	for i, sh := range icon.Shapes {
		style := "current-color"
		if sh.StyleIndex != vicon.StyleCurrentColor {
			style = fmt.Sprintf("style[%d]", sh.StyleIndex)
		}
		fmt.Printf("  [%d] %s paths=%v transformers=%d lod=[%.2f,%.2f]\n",
			i, style, sh.PathIndices, len(sh.Transformers),
			sh.MinVisibilityScale, sh.MaxVisibilityScale)
	}
}

func dumpStyle(i int, s *vicon.Style) {
	switch s.Kind {
	case 0:
		fmt.Printf("  [%d] solid rgba(%d,%d,%d,%d)\n", i, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	default:
		fmt.Printf("  [%d] gradient type=%d stops=%d\n", i, s.Gradient.Type, len(s.Gradient.Stops))
	}
}
