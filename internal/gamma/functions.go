package gamma

import "math"

// GammaPower ≈ agg::gamma_power
type GammaPower struct{ g float64 }

func NewGammaPower(g float64) GammaPower  { return GammaPower{g: g} }
func (gp *GammaPower) SetGamma(g float64) { gp.g = g }
func (gp GammaPower) Gamma() float64      { return gp.g }
func (gp GammaPower) Apply(x float64) float64 {
	return math.Pow(x, gp.g)
}

// SRGBToLinear converts an sRGB-encoded component to linear light.
func SRGBToLinear(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}
