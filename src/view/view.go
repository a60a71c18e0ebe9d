// Package view shows a rendered figure in a blocking preview window.
package view

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

const (
	maxWindowWidth  = 1600
	maxWindowHeight = 900
)

// Show opens a window displaying img and blocks until the user closes it.
// The window title falls back to the program name when no figure title was
// given.
func Show(img image.Image, title string) {
	if title == "" {
		title = "KSP Telemetry Grapher"
	}
	a := app.NewWithID("com.al2me6.ksptelemetry")
	w := a.NewWindow(title)

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain

	b := img.Bounds()
	fw, fh := float32(b.Dx()), float32(b.Dy())
	if fw > maxWindowWidth {
		fh *= maxWindowWidth / fw
		fw = maxWindowWidth
	}
	if fh > maxWindowHeight {
		fw *= maxWindowHeight / fh
		fh = maxWindowHeight
	}
	w.Resize(fyne.NewSize(fw, fh))
	w.SetContent(ci)
	w.ShowAndRun()
}
