package main

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// showImage opens a one-shot window displaying the rendered chart and
// blocks until the user closes it. The window is scoped to this call, so
// repeated invocations do not accumulate drawing state.
func showImage(img image.Image, title string) {
	a := app.New()
	w := a.NewWindow(title)
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.SetContent(ci)
	w.ShowAndRun()
}
