package pixel

import (
	"fmt"
	"strings"
)

// ChannelOrder is the order in which a LED expects the color channels on the wire.
type ChannelOrder uint8

// Supported channel orders.
const (
	OrderRGB ChannelOrder = iota
	OrderRBG
	OrderGRB // WS2812 and most clones
	OrderGBR
	OrderBRG
	OrderBGR
)

// channelIndex maps wire position to the R (0), G (1) or B (2) component.
var channelIndex = [...][3]uint8{
	OrderRGB: {0, 1, 2},
	OrderRBG: {0, 2, 1},
	OrderGRB: {1, 0, 2},
	OrderGBR: {1, 2, 0},
	OrderBRG: {2, 0, 1},
	OrderBGR: {2, 1, 0},
}

var channelOrderNames = [...]string{
	OrderRGB: "RGB",
	OrderRBG: "RBG",
	OrderGRB: "GRB",
	OrderGBR: "GBR",
	OrderBRG: "BRG",
	OrderBGR: "BGR",
}

// ParseChannelOrder parses a channel order such as "GRB", case insensitive.
func ParseChannelOrder(s string) (ChannelOrder, error) {
	s = strings.ToUpper(s)
	for i, name := range channelOrderNames {
		if name == s {
			return ChannelOrder(i), nil
		}
	}
	return OrderRGB, fmt.Errorf("pixel: invalid channel order %q", s)
}

func (o ChannelOrder) String() string {
	if int(o) < len(channelOrderNames) {
		return channelOrderNames[o]
	}
	return fmt.Sprintf("ChannelOrder(%d)", o)
}

func (o ChannelOrder) index() *[3]uint8 {
	if int(o) < len(channelIndex) {
		return &channelIndex[o]
	}
	return &channelIndex[OrderRGB]
}

// Put writes the color to the first 3 bytes of p in wire order.
func (o ChannelOrder) Put(p []byte, r, g, b uint8) {
	var (
		c = [3]uint8{r, g, b}
		i = o.index()
	)
	_ = p[2]
	p[0], p[1], p[2] = c[i[0]], c[i[1]], c[i[2]]
}

// Get reads the color from the first 3 bytes of p in wire order.
func (o ChannelOrder) Get(p []byte) (r, g, b uint8) {
	var (
		c [3]uint8
		i = o.index()
	)
	_ = p[2]
	c[i[0]], c[i[1]], c[i[2]] = p[0], p[1], p[2]
	return c[0], c[1], c[2]
}

// Swizzle converts an RGB888 buffer to wire order in place. A trailing partial
// pixel is left alone.
func (o ChannelOrder) Swizzle(pix []byte) {
	if o == OrderRGB {
		return
	}
	for i := 0; i+3 <= len(pix); i += 3 {
		o.Put(pix[i:], pix[i], pix[i+1], pix[i+2])
	}
}
