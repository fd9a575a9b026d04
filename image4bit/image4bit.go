package image4bit

import (
	"image"
	"image/color"
)

// Gray4 is a 16 levels gray. Only the lower 4 bits of Y are used.
type Gray4 struct {
	Y uint8
}

// RGBA implements color.Color.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func convert(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	// Same luma weights as color.GrayModel, on 16 bits.
	r, g, b, _ := c.RGBA()
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return Gray4{Y: uint8(y >> 12)}
}

// Gray4Model converts any color to Gray4.
var Gray4Model = color.ModelFunc(convert)

// HorizontalNibble is an image stored as rows of nibbles, two pixels per byte.
type HorizontalNibble struct {
	// Pix holds the rows top to bottom, Stride bytes each.
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewHorizontalNibble returns an image with all pixels off.
//
// The width must be even.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w%2 != 0 {
		panic("image4bit: width must be even")
	}
	return &HorizontalNibble{Pix: make([]byte, w/2*h), Stride: w / 2, Rect: r}
}

// ColorModel implements image.Image.
func (p *HorizontalNibble) ColorModel() color.Model {
	return Gray4Model
}

// Bounds implements image.Image.
func (p *HorizontalNibble) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the pixel at (x, y), or Gray4{} outside the bounds.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	i, shift := p.offset(x, y)
	return Gray4{Y: (p.Pix[i] >> shift) & 0x0F}
}

// Set implements draw.Image.
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the pixel at (x, y) without color conversion.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i, shift := p.offset(x, y)
	p.Pix[i] = p.Pix[i]&^(0x0F<<shift) | (c.Y&0x0F)<<shift
}

// Fill sets every pixel to c.
func (p *HorizontalNibble) Fill(c Gray4) {
	v := c.Y&0x0F<<4 | c.Y&0x0F
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// offset returns the byte index and the shift of the pixel nibble. Even
// columns are in the high nibble.
func (p *HorizontalNibble) offset(x, y int) (int, uint) {
	x -= p.Rect.Min.X
	return (y-p.Rect.Min.Y)*p.Stride + x/2, uint(4 * (1 - x&1))
}

var _ image.Image = &HorizontalNibble{}
