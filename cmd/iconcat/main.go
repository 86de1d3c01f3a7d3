// Command iconcat is a small CLI over the vicon library: it decodes and
// dumps an icon's structure, rasterizes one to a PNG, converts between
// the flat and IMSG on-disk formats, and (when built with -tags sdl2 or
// -tags x11)
// opens a live preview window that reloads the icon whenever its file
// changes.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = runDecode(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "iconcat: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `iconcat: inspect, render, and convert vector icons

usage:
  iconcat decode <file>
  iconcat render <file> <out.png> [--scale N]
  iconcat convert <in> <out>
  iconcat watch <file>
`)
}
