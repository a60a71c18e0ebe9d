package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/al2me6/ksp-telemetry/src/telemetry"
)

// lineStyle returns the stroke style used for every telemetry trace.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 1.5,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: chart.ColorAlternateGray,
		StrokeWidth: 1.0,
	}
}

// lineSeries builds a continuous series, padding single-sample input to two X
// values because go-chart refuses to render a one-point series.
func lineSeries(name string, xs, ys []float64, col drawing.Color) chart.ContinuousSeries {
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}
	return chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: lineStyle(col)}
}

// renderChart renders a single subplot to a raster. A render failure (empty
// series, degenerate range) falls back to a blank panel so one bad subplot
// never takes down the whole figure layout.
func renderChart(ch chart.Chart, w, h int) image.Image {
	ch.Width = w
	ch.Height = h
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		telemetry.Debugf("subplot %q render: %v; blank fallback", ch.Title, err)
		return blank(w, h)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		telemetry.Debugf("subplot %q decode: %v; blank fallback", ch.Title, err)
		return blank(w, h)
	}
	return img
}

func baseChart(title, xLabel, yLabel string) chart.Chart {
	return chart.Chart{
		Title:      title,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 12, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{Name: xLabel, GridMajorStyle: gridStyle()},
		YAxis:      chart.YAxis{Name: yLabel, GridMajorStyle: gridStyle()},
	}
}

func renderLaunchProfile(downKm, altKm []float64, w, h int) image.Image {
	ch := baseChart("Launch Profile", "Distance downrange (km)", "Altitude ASL (km)")
	ch.Series = []chart.Series{lineSeries("", downKm, altKm, chart.ColorBlue)}
	return renderChart(ch, w, h)
}

func renderAcceleration(met, accel []float64, w, h int) image.Image {
	ch := baseChart("Acceleration", "MET (s)", "Acceleration (g)")
	ch.Series = []chart.Series{lineSeries("", met, accel, chart.ColorBlue)}
	return renderChart(ch, w, h)
}

func renderOrbitalVelocity(met, speed []float64, w, h int) image.Image {
	ch := baseChart("Orbital Velocity", "MET (s)", "Orbital velocity (m/s)")
	ch.Series = []chart.Series{lineSeries("", met, speed, chart.ColorBlue)}
	return renderChart(ch, w, h)
}

func renderDynamicPressure(altKm, q []float64, w, h int) image.Image {
	ch := baseChart("Dynamic Pressure", "Altitude ASL (km)", "Q (Pa)")
	ch.Series = []chart.Series{lineSeries("", altKm, q, chart.ColorBlue)}
	return renderChart(ch, w, h)
}

// renderAngleOfAttack expects its inputs already trimmed of the leading
// samples; both axes must be trimmed together to keep index alignment.
func renderAngleOfAttack(met, aoa []float64, w, h int) image.Image {
	ch := baseChart("Angle of Attack", "MET (s)", "AoA (deg)")
	if len(met) == 0 {
		// Nothing left after trimming; keep the panel, skip the axes.
		return blank(w, h)
	}
	ch.Series = []chart.Series{lineSeries("", met, aoa, chart.ColorBlue)}
	return renderChart(ch, w, h)
}

func renderDeltaV(met, expended, lost []float64, w, h int) image.Image {
	ch := baseChart("Delta-v Expenditure", "MET (s)", "Δv (m/s)")
	ch.Series = []chart.Series{
		lineSeries("Δv Expended", met, expended, chart.ColorBlue),
		lineSeries("Δv Lost", met, lost, chart.ColorGreen),
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}
	return renderChart(ch, w, h)
}

// blank returns a plain white panel matching the subplot footprint.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
