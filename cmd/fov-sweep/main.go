// Command fov-sweep tabulates the framing distance for a bounding box across
// a range of vertical fields of view and writes a PNG plot, an HTML chart or
// both.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneview/internal/fovsweep"
	"github.com/banshee-data/sceneview/internal/framing"
	"github.com/banshee-data/sceneview/internal/fsutil"
	"github.com/banshee-data/sceneview/internal/numeric"
	"github.com/banshee-data/sceneview/internal/security"
)

type options struct {
	min, max  string
	aspect    float64
	offset    float64
	from, to  float64
	step      float64
	outDir    string
	pngName   string
	htmlName  string
	printRows bool
}

// parseCSVFloatSlice parses a comma-separated list of floats
func parseCSVFloatSlice(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := numeric.ParseFinite(p)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseBox(minS, maxS string) (r3.Box, error) {
	minV, err := parseCSVFloatSlice(minS)
	if err != nil {
		return r3.Box{}, fmt.Errorf("-min: %w", err)
	}
	maxV, err := parseCSVFloatSlice(maxS)
	if err != nil {
		return r3.Box{}, fmt.Errorf("-max: %w", err)
	}
	box, ok := framing.BoxFromSlices(minV, maxV)
	if !ok {
		return r3.Box{}, errors.New("-min and -max need exactly 3 values each")
	}
	// Accept corners in either order.
	return framing.BoxFromPoints(box.Min, box.Max), nil
}

func run(o options, stdout io.Writer) error {
	box, err := parseBox(o.min, o.max)
	if err != nil {
		return err
	}
	samples, err := fovsweep.Sweep(box, o.aspect, o.offset, o.from, o.to, o.step)
	if err != nil {
		return err
	}

	if o.printRows {
		fmt.Fprintln(stdout, "fov_deg,distance,far_plane")
		for _, s := range samples {
			fmt.Fprintf(stdout, "%g,%.6f,%.6f\n", s.FOVDegrees, s.Distance, s.FarPlane)
		}
	}

	if o.pngName != "" {
		path, err := security.OutputPath(o.outDir, o.pngName, ".png")
		if err != nil {
			return fmt.Errorf("png output: %w", err)
		}
		if err := fovsweep.WritePlot(path, samples); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}

	if o.htmlName != "" {
		path, err := security.OutputPath(o.outDir, o.htmlName, ".html")
		if err != nil {
			return fmt.Errorf("html output: %w", err)
		}
		title := fmt.Sprintf("Framing sweep aspect=%g", o.aspect)
		if err := fovsweep.WriteChartFile(fsutil.OSFileSystem{}, path, title, samples); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}

func main() {
	var o options
	flag.StringVar(&o.min, "min", "-1,-1,-1", "Box minimum corner x,y,z")
	flag.StringVar(&o.max, "max", "1,1,1", "Box maximum corner x,y,z")
	flag.Float64Var(&o.aspect, "aspect", 1, "Viewport aspect ratio (width/height)")
	flag.Float64Var(&o.offset, "offset", 1, "Framing offset factor (0 = none)")
	flag.Float64Var(&o.from, "from", 10, "First vertical fov in degrees")
	flag.Float64Var(&o.to, "to", 120, "Last vertical fov in degrees")
	flag.Float64Var(&o.step, "step", 5, "Fov step in degrees")
	flag.StringVar(&o.outDir, "out", ".", "Output directory; outputs may not escape it")
	flag.StringVar(&o.pngName, "png", "", "PNG plot file name (optional)")
	flag.StringVar(&o.htmlName, "html", "", "HTML chart file name (optional)")
	flag.BoolVar(&o.printRows, "csv", true, "Print samples as CSV to stdout")
	flag.Parse()

	if err := run(o, os.Stdout); err != nil {
		log.Fatalf("fov-sweep: %v", err)
	}
}
