package orbit

import "image/color"

type tempBand struct {
	below float64 // celsius
	c     color.RGBA
}

var tempBands = []tempBand{
	{-150, color.RGBA{0x00, 0x3f, 0xef, 0xff}},
	{-100, color.RGBA{0x1f, 0x5f, 0xcf, 0xff}},
	{-50, color.RGBA{0x3f, 0x7f, 0xaf, 0xff}},
	{0, color.RGBA{0x5f, 0x9f, 0x8f, 0xff}},
	{75, color.RGBA{0x5f, 0xbf, 0x5f, 0xff}},
	{150, color.RGBA{0xbf, 0x9f, 0x3f, 0xff}},
	{225, color.RGBA{0xdf, 0x1f, 0x1f, 0xff}},
	{300, color.RGBA{0xef, 0x3f, 0x1f, 0xff}},
}

// TemperatureColor returns the orbit colour for a surface temperature in kelvin.
func TemperatureColor(kelvin float64) color.RGBA {
	celsius := kelvin - 273.15
	for _, b := range tempBands {
		if celsius < b.below {
			return b.c
		}
	}
	return color.RGBA{0xff, 0x5f, 0x1f, 0xff}
}
