package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/ledcodec/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// RGBImage is a 24-bits per pixel 8-8-8-bit RGB image, as clocked into an LED strip.
//
// A strip is an image of one row, a segment display has one row per digit.
type RGBImage struct {
	Buffer
	Order ChannelOrder
}

func NewRGBImage(w, h int) *RGBImage {
	return &RGBImage{
		Buffer: makeBuffer(w, h, w*3, w*3*h),
		Order:  OrderRGB,
	}
}

func (p *RGBImage) ColorModel() color.Model {
	return RGBModel
}

func (p *RGBImage) PixOffset(x, y int) int {
	return y*p.Stride + x*3
}

func (p *RGBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	r, g, b := p.Order.Get(p.Pix[x*3+y*p.Stride:])
	return RGB{r, g, b}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := rgbModel(c).(RGB)
	p.Order.Put(p.Pix[x*3+y*p.Stride:], v.R, v.G, v.B)
}

func (p *RGBImage) Fill(c color.Color) {
	var (
		v     = rgbModel(c).(RGB)
		bytes = make([]byte, 3)
	)
	p.Order.Put(bytes, v.R, v.G, v.B)
	for i, l := 0, len(p.Pix); i+3 <= l; i += 3 {
		copy(p.Pix[i:], bytes)
	}
}

// RGB332Image is an 8-bits per pixel 3-3-2-bit RGB image.
//
// Its Pix is a packed RGB stream, one byte per pixel.
type RGB332Image struct {
	Buffer
}

func NewRGB332Image(w, h int) *RGB332Image {
	return &RGB332Image{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *RGB332Image) ColorModel() color.Model {
	return RGB332Model
}

func (p *RGB332Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB332{p.Pix[x+y*p.Stride]}
}

func (p *RGB332Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[x+y*p.Stride] = rgb332Model(c).(RGB332).V
}

func (p *RGB332Image) Fill(c color.Color) {
	value := rgb332Model(c).(RGB332).V
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// HLImage is a 16-bits per pixel hue and lightness image.
//
// Its Pix is a stream of hue, lightness byte pairs.
type HLImage struct {
	Buffer
}

func NewHLImage(w, h int) *HLImage {
	return &HLImage{
		Buffer: makeBuffer(w, h, w*2, w*2*h),
	}
}

func (p *HLImage) ColorModel() color.Model {
	return HLModel
}

func (p *HLImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	i := x*2 + y*p.Stride
	return HL{H: p.Pix[i], L: p.Pix[i+1]}
}

func (p *HLImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		i = x*2 + y*p.Stride
		v = hlModel(c).(HL)
	)
	p.Pix[i], p.Pix[i+1] = v.H, v.L
}

func (p *HLImage) Fill(c color.Color) {
	v := hlModel(c).(HL)
	for i, l := 0, len(p.Pix); i+2 <= l; i += 2 {
		p.Pix[i], p.Pix[i+1] = v.H, v.L
	}
}

// Interface checks.
var (
	_ Image = (*RGBImage)(nil)
	_ Image = (*RGB332Image)(nil)
	_ Image = (*HLImage)(nil)
)
