package colorutil

import "image/color"

// ApplyAlpha returns c with its alpha scaled by alpha (0..1).
func ApplyAlpha(c color.Color, alpha float32) color.Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A)*alpha + 0.5)
	return n
}
