package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a fully opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Predefined colors used by the default layout.
var (
	ColorBlack = RGB{0x00, 0x00, 0x00}
	ColorWhite = RGB{0xFF, 0xFF, 0xFF}
	ColorRed   = RGB{0xFF, 0x00, 0x00}
	ColorBlue  = RGB{0x00, 0x00, 0xFF}
)

// Lerp interpolates each channel linearly from c toward end.
// Channels are computed in single precision and truncated to 8 bits.
func (c RGB) Lerp(end RGB, factor float32) RGB {
	return RGB{
		R: lerpChannel(c.R, end.R, factor),
		G: lerpChannel(c.G, end.G, factor),
		B: lerpChannel(c.B, end.B, factor),
	}
}

func lerpChannel(start, end uint8, factor float32) uint8 {
	v := float32(start) + factor*(float32(end)-float32(start))
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB" (case-insensitive).
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("core: invalid color %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}

	return RGB{
		R: uint8(v >> 16), //#nosec G115 -- masked by shift width
		G: uint8(v >> 8),  //#nosec G115 -- truncation intended
		B: uint8(v),       //#nosec G115 -- truncation intended
	}, nil
}
