package main

import (
	"fmt"
	"os"
	"strings"

	"vicon"
)

func runConvert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: iconcat convert <in> <out>")
	}
	inPath, outPath := args[0], args[1]

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}
	icon, err := vicon.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inPath, err)
	}

	format := vicon.FormatFlat
	if strings.HasSuffix(outPath, ".imsg") || strings.HasSuffix(outPath, ".rdef") {
		format = vicon.FormatIMSG
	}

	out, err := vicon.EncodeFormat(icon, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Info().Str("in", inPath).Str("out", outPath).Int("format", int(format)).Msg("converted icon")
	return nil
}
