// Package render draws the fixed grid of telemetry charts and encodes the
// finished figure to raster image formats.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/al2me6/ksp-telemetry/src/telemetry"
)

// aoaSettleSamples is the number of leading samples dropped from the
// angle-of-attack trace; the recorder emits garbage readings while the
// vehicle is still clamped.
const aoaSettleSamples = 3

// suptitleBand is the extra vertical space reserved above the grid when a
// figure title is set.
const suptitleBand = 40

// Options configures a single figure. Cell dimensions and gaps come from
// config defaults; Verbose and Title come from the CLI.
type Options struct {
	Verbose    bool
	Title      string
	CellWidth  int
	CellHeight int
	HSpace     int
	WSpace     int
}

func (o Options) gridShape() (rows, cols int) {
	if o.Verbose {
		return 2, 3
	}
	return 2, 2
}

// Figure renders the complete chart grid from a telemetry table. Every
// required column for the active mode is resolved before any drawing happens:
// a missing column aborts the whole figure (the error wraps
// telemetry.ErrColumnMissing) and no partial image is produced.
func Figure(tbl *telemetry.Table, opts Options) (image.Image, error) {
	cols := make(map[string][]float64)
	for _, name := range telemetry.RequiredColumns(opts.Verbose) {
		c, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = c
	}

	downKm := telemetry.Kilometers(cols[telemetry.ColDownRange])
	altKm := telemetry.Kilometers(cols[telemetry.ColAltitudeASL])
	met := cols[telemetry.ColTimeSinceMark]

	w, h := opts.CellWidth, opts.CellHeight
	panels := []image.Image{
		renderLaunchProfile(downKm, altKm, w, h),
		renderAcceleration(met, cols[telemetry.ColAcceleration], w, h),
		renderOrbitalVelocity(met, cols[telemetry.ColSpeedOrbital], w, h),
		renderDynamicPressure(altKm, cols[telemetry.ColQ], w, h),
	}
	if opts.Verbose {
		panels = append(panels,
			renderAngleOfAttack(
				telemetry.TrimLeading(met, aoaSettleSamples),
				telemetry.TrimLeading(cols[telemetry.ColAoA], aoaSettleSamples),
				w, h),
			renderDeltaV(met,
				cols[telemetry.ColDeltaVExpended],
				telemetry.DeltaVLost(cols[telemetry.ColDeltaVExpended], cols[telemetry.ColSpeedOrbital]),
				w, h),
		)
	}
	return composite(panels, opts), nil
}

// composite lays the rendered panels out on a white canvas with the
// configured gaps, plus a title band when a suptitle was requested. Purely
// cosmetic; the panels are finished rasters by this point.
func composite(panels []image.Image, opts Options) image.Image {
	rows, cols := opts.gridShape()
	band := 0
	if opts.Title != "" {
		band = suptitleBand
	}
	width := cols*opts.CellWidth + (cols+1)*opts.WSpace
	height := band + rows*opts.CellHeight + (rows+1)*opts.HSpace

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, p := range panels {
		r, c := i/cols, i%cols
		x := opts.WSpace + c*(opts.CellWidth+opts.WSpace)
		y := band + opts.HSpace + r*(opts.CellHeight+opts.HSpace)
		rect := image.Rect(x, y, x+opts.CellWidth, y+opts.CellHeight)
		draw.Draw(canvas, rect, p, p.Bounds().Min, draw.Over)
	}

	if opts.Title != "" {
		drawSuptitle(canvas, opts.Title, width, band)
	}
	return canvas
}

// drawSuptitle centers the figure title in the reserved band, using a larger
// face than go-chart's subplot titles.
func drawSuptitle(dst *image.RGBA, title string, width, band int) {
	face := inconsolata.Bold8x16
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: face,
	}
	tw := dr.MeasureString(title).Ceil()
	x := (width - tw) / 2
	if x < 0 {
		x = 0
	}
	// Baseline placed so the text sits vertically centered in the band.
	y := band/2 + face.Metrics().Ascent.Ceil()/2
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(title)
}
