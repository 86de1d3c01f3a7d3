//go:build sdl2 || x11
// +build sdl2 x11

package main

import (
	"fmt"
	"os"
	"time"

	"vicon"
	"vicon/internal/platform"
)

// watchApp owns the window, the current icon, and the mtime of the file
// it's watching; OnIdle repolls the file and re-rasterizes when it changes.
type watchApp struct {
	platform.BaseEventHandler

	path    string
	backend platform.PlatformBackend
	ps      *platform.PlatformSupport
	rc      *platform.RenderingContext

	modTime time.Time
	icon    *vicon.Icon
}

func runWatch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: iconcat watch <file>")
	}
	path := args[0]

	factory := platform.GetBackendFactory()
	backend, err := factory.CreateBackend(factory.GetDefaultBackend(), platform.PixelFormatRGBA32, false)
	if err != nil {
		return fmt.Errorf("create platform backend: %w", err)
	}

	app := &watchApp{
		path:    path,
		backend: backend,
		ps:      platform.NewPlatformSupport(platform.PixelFormatRGBA32, false),
	}
	app.rc = platform.NewRenderingContext(app.ps)
	app.ps.Caption("iconcat watch — " + path)
	app.ps.SetOnIdle(app.reloadAndDraw)
	app.ps.SetOnDraw(app.draw)

	if eventCallbackSetter, ok := backend.(platform.EventCallbackSetter); ok {
		eventCallbackSetter.SetEventCallback(app)
	}

	if err := app.ps.Init(256, 256, platform.WindowResize); err != nil {
		return fmt.Errorf("init window: %w", err)
	}
	if err := backend.Init(256, 256, platform.WindowResize); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer backend.Destroy()

	app.reload()
	app.ps.Run()
	return nil
}

// reload re-decodes the watched file if its mtime advanced.
func (app *watchApp) reload() {
	info, err := os.Stat(app.path)
	if err != nil {
		log.Warn().Err(err).Str("path", app.path).Msg("stat failed")
		return
	}
	if !info.ModTime().After(app.modTime) && app.icon != nil {
		return
	}

	data, err := os.ReadFile(app.path)
	if err != nil {
		log.Warn().Err(err).Str("path", app.path).Msg("read failed")
		return
	}
	icon, err := vicon.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("path", app.path).Msg("decode failed")
		return
	}

	app.icon = icon
	app.modTime = info.ModTime()
	log.Info().Str("path", app.path).Msg("reloaded icon")
	app.ps.ForceRedraw()
}

func (app *watchApp) reloadAndDraw() {
	app.reload()
}

func (app *watchApp) draw() {
	app.rc.ClearWindow(40, 40, 40, 255)
	if app.icon == nil {
		return
	}

	size := app.ps.Width()
	if h := app.ps.Height(); h < size {
		size = h
	}
	img, err := vicon.Render(app.icon, size, vicon.RenderOptions{})
	if err != nil {
		log.Warn().Err(err).Msg("render failed")
		return
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := (y*img.Width + x) * 4
			b, g, r, a := img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3]
			app.rc.BlendPixel(x, y, r, g, b, a)
		}
	}
}
