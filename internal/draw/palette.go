package draw

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Hex unpacks 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Add offsets each channel, saturating at 0 and 255.
func (c RGB) Add(dr, dg, db int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + dr),
		G: clampChannel(int(c.G) + dg),
		B: clampChannel(int(c.B) + db),
	}
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Modulate multiplies two colours channel-wise, the way a tint modulates a texture.
func (c RGB) Modulate(o RGB) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(o.R)) / 255),
		G: uint8((uint16(c.G) * uint16(o.G)) / 255),
		B: uint8((uint16(c.B) * uint16(o.B)) / 255),
	}
}

// Floats returns channels in [0,1].
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{}
)
