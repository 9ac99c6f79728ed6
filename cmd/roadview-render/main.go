// Command roadview-render decodes a map file and renders a single
// viewport frame to a PNG, headlessly exercising the full pipeline
// decode -> Document -> Controller -> GenerateContents.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mapengine/roadview"
	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/mapio"
)

func main() {
	var (
		input   = flag.String("input", "", "path to a map file in the §6.1 stream format (required)")
		output  = flag.String("output", "render.png", "output PNG path")
		width   = flag.Int("width", 800, "device width in pixels")
		height  = flag.Int("height", 600, "device height in pixels")
		centerX = flag.Int("center-x", 0, "initial view center X")
		centerY = flag.Int("center-y", 0, "initial view center Y")
		zoom    = flag.Int("zoom", 4, "initial zoom level")
		view    = flag.String("view", "", "restore a saved view state (\"cx cy zoom\"), overriding -center-x/-center-y/-zoom")
		verbose = flag.Bool("verbose", false, "log at debug level")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("roadview-render: -input is required")
	}

	if *verbose {
		roadview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("roadview-render: opening %s: %v", *input, err)
	}
	defer f.Close()

	raw, err := mapio.Decode(f)
	if err != nil {
		log.Fatalf("roadview-render: decoding %s: %v", *input, err)
	}

	doc, err := roadview.NewDocument(raw)
	if err != nil {
		log.Fatalf("roadview-render: building document: %v", err)
	}

	initial := roadview.ViewState{
		CenterX: geom.Coord(*centerX),
		CenterY: geom.Coord(*centerY),
		Zoom:    int32(*zoom),
	}
	if *view != "" {
		initial, err = roadview.ParseViewState(*view)
		if err != nil {
			log.Fatalf("roadview-render: parsing -view: %v", err)
		}
	}

	ctl, err := roadview.NewController(doc, roadview.WithInitialView(initial))
	if err != nil {
		log.Fatalf("roadview-render: building controller: %v", err)
	}
	ctl.SetDeviceSize(geom.Size{W: geom.Coord(*width), H: geom.Coord(*height)})

	bmp := roadview.NewMemBitmap(*width, *height, roadview.PixelFormatRGB24)
	if !ctl.GenerateContents(bmp) {
		log.Fatal("roadview-render: content generation refused (screen too small)")
	}

	if err := bmp.SavePNG(*output); err != nil {
		log.Fatalf("roadview-render: saving %s: %v", *output, err)
	}

	fmt.Printf("%s (%s)\n", *output, ctl.ParamsDescription())
}
