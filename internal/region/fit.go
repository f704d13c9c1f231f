package region

import "math"

// FitToPage scales a w x h box down (never up) to fit a targetWidth x
// targetHeight page and centers it. It returns the placed box and the scale.
func FitToPage(w, h, targetWidth, targetHeight float64) (Rectangle, float64) {
	scale := math.Min(math.Min(targetWidth/w, targetHeight/h), 1.0)
	nw, nh := w*scale, h*scale
	x := (targetWidth - nw) / 2
	y := (targetHeight - nh) / 2
	return Rectangle{X0: x, Y0: y, X1: x + nw, Y1: y + nh}, scale
}

// Center fits a w x h box inside box keeping its aspect ratio and centers it.
// Without upscale the box is never enlarged.
func Center(w, h float64, box Rectangle, upscale bool) Rectangle {
	scale := math.Min(box.Width()/w, box.Height()/h)
	if !upscale {
		scale = math.Min(scale, 1.0)
	}
	nw, nh := w*scale, h*scale
	x := box.X0 + (box.Width()-nw)/2
	y := box.Y0 + (box.Height()-nh)/2
	return Rectangle{X0: x, Y0: y, X1: x + nw, Y1: y + nh}
}
