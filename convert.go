package ringviz

import "math"

// HSVToRGB converts HSV components to 8-bit RGB channels.
// h is hue in degrees (any real, wrapped into [0,360)), s and v are in
// [0,1]. The hue circle is decomposed into six 60° sectors; each sector
// picks one of six permutations of the intermediate values (v, t, p, q).
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = Clamp(s, 0, 1)
	v = Clamp(v, 0, 1)

	sector := math.Floor(h / 60)
	f := h/60 - sector

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch int(sector) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return QuantizeChannel(rf), QuantizeChannel(gf), QuantizeChannel(bf)
}

// RGBToHSV converts 8-bit RGB channels to HSV components.
// The returned hue is in [0,360), saturation and value in [0,1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	d := max - min

	v = max
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}

	switch max {
	case rf:
		h = math.Mod((gf-bf)/d, 6)
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// QuantizeChannel maps a [0,1] channel value to an 8-bit channel with
// rounding. Out-of-range input is clamped.
func QuantizeChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
