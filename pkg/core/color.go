package core

import "math"

// Colors are linear RGB stored in a Vec3.

// Saturate clamps a scalar to [0, 1]
func Saturate(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// ClampColor clamps every channel to [0, 1]
func ClampColor(c Vec3) Vec3 {
	return Vec3{Saturate(c.X), Saturate(c.Y), Saturate(c.Z)}
}

// LinearToSRGB applies the piecewise sRGB transfer function per channel.
// Input is clamped to [0, 1] first.
func LinearToSRGB(c Vec3) Vec3 {
	return Vec3{linearToSRGB(c.X), linearToSRGB(c.Y), linearToSRGB(c.Z)}
}

// SRGBToLinear inverts LinearToSRGB
func SRGBToLinear(c Vec3) Vec3 {
	return Vec3{srgbToLinear(c.X), srgbToLinear(c.Y), srgbToLinear(c.Z)}
}

func linearToSRGB(x float64) float64 {
	x = Saturate(x)
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

func srgbToLinear(x float64) float64 {
	x = Saturate(x)
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// QuantizeChannel maps a channel to a byte as clamp(round(c·255), 0, 255)
func QuantizeChannel(c float64) uint8 {
	v := math.Round(c * 255)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
