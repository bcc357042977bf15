package fovsweep

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/sceneview/internal/fsutil"
)

var (
	distanceColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	farColor      = color.RGBA{R: 255, G: 127, B: 14, A: 255}
)

// WritePlot saves a PNG line plot of distance and far plane against fov.
func WritePlot(path string, samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptyRange
	}

	p := plot.New()
	p.Title.Text = "Framing distance vs field of view"
	p.X.Label.Text = "Vertical FOV (deg)"
	p.Y.Label.Text = "Distance (world units)"

	distPts := make(plotter.XYs, 0, len(samples))
	farPts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		distPts = append(distPts, plotter.XY{X: s.FOVDegrees, Y: s.Distance})
		farPts = append(farPts, plotter.XY{X: s.FOVDegrees, Y: s.FarPlane})
	}

	distLine, err := plotter.NewLine(distPts)
	if err != nil {
		return fmt.Errorf("distance line: %w", err)
	}
	distLine.Color = distanceColor
	distLine.Width = vg.Points(1.5)

	farLine, err := plotter.NewLine(farPts)
	if err != nil {
		return fmt.Errorf("far line: %w", err)
	}
	farLine.Color = farColor
	farLine.Width = vg.Points(1)
	farLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(distLine, farLine, plotter.NewGrid())
	p.Legend.Add("distance", distLine)
	p.Legend.Add("far plane", farLine)
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

// RenderChart writes an HTML page with an echarts line chart of the sweep.
func RenderChart(w io.Writer, title string, samples []Sample) error {
	if len(samples) == 0 {
		return ErrEmptyRange
	}

	x := make([]string, len(samples))
	dist := make([]opts.LineData, len(samples))
	far := make([]opts.LineData, len(samples))
	for i, s := range samples {
		x[i] = fmt.Sprintf("%g", s.FOVDegrees)
		dist[i] = opts.LineData{Value: s.Distance}
		far[i] = opts.LineData{Value: s.FarPlane}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("samples=%d", len(samples))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "FOV (deg)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Distance", NameLocation: "middle", NameGap: 40}),
	)
	line.SetXAxis(x).
		AddSeries("distance", dist).
		AddSeries("far plane", far)

	return line.Render(w)
}

// WriteChartFile renders the chart to path on fsys, creating parent
// directories as needed.
func WriteChartFile(fsys fsutil.FileSystem, path, title string, samples []Sample) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderChart(f, title, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
