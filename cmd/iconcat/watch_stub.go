//go:build !sdl2 && !x11
// +build !sdl2,!x11

package main

import "fmt"

// runWatch requires a platform backend build tag (go build -tags sdl2,
// or -tags x11 on Linux), matching the teacher's own platform package.
func runWatch(args []string) error {
	return fmt.Errorf("iconcat: watch requires building with -tags sdl2 or -tags x11")
}
