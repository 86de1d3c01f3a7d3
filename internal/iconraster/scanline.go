package iconraster

import (
	"vicon/internal/scanline"
)

// scanlineAdapter satisfies rasterizer.ScanlineInterface (AddCell/AddSpan
// taking uint32) over scanline.ScanlineU8, whose own AddCell/AddSpan take
// plain uint.
type scanlineAdapter struct {
	sl *scanline.ScanlineU8
}

func (a *scanlineAdapter) ResetSpans() { a.sl.ResetSpans() }

func (a *scanlineAdapter) AddCell(x int, cover uint32) {
	a.sl.AddCell(x, uint(cover))
}

func (a *scanlineAdapter) AddSpan(x, length int, cover uint32) {
	a.sl.AddSpan(x, length, uint(cover))
}

func (a *scanlineAdapter) Finalize(y int) { a.sl.Finalize(y) }

func (a *scanlineAdapter) NumSpans() int { return a.sl.NumSpans() }
