// Command bindlessdemo renders the sphere-traced demo scene to a PNG.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/bindless"
	"github.com/gogpu/bindless/march"
)

func main() {
	var (
		width  = flag.Int("width", 1280, "image width")
		height = flag.Int("height", 720, "image height")
		mode   = flag.String("mode", "shaded", "debug view: steps, footprint, fraction, shaded")
		time   = flag.Float64("time", 0, "animation time in seconds")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	opts := march.DefaultPassOptions()
	opts.Time = float32(*time)
	opts.Mode = parseMode(*mode)

	target := bindless.NewStorageImage(uint32(*width), uint32(*height), gputypes.TextureFormatRGBA32Float)
	march.Render(target, opts)

	if err := target.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %s)\n", *output, *width, *height, opts.Mode)
}

func parseMode(s string) march.DebugMode {
	for _, m := range []march.DebugMode{
		march.DebugSteps,
		march.DebugFootprint,
		march.DebugFraction,
		march.DebugShaded,
	} {
		if m.String() == s {
			return m
		}
	}
	log.Fatalf("Unknown mode %q", s)
	return march.DebugSteps
}
