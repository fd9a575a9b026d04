package image4bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestGray4RGBA(t *testing.T) {
	for _, tt := range []struct {
		name string
		gray Gray4
		want uint32
	}{
		{"black", Gray4{Y: 0}, 0x0000},
		{"mid", Gray4{Y: 8}, 0x8888},
		{"white", Gray4{Y: 15}, 0xFFFF},
		{"upper bits ignored", Gray4{Y: 0x5F}, 0xFFFF},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.gray.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want %x", r, g, b, a, tt.want)
			}
		})
	}
}

func TestGray4ModelConvert(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input color.Color
		want  uint8
	}{
		{"passthrough", Gray4{Y: 7}, 7},
		{"black", color.Black, 0},
		{"white", color.White, 15},
		{"gray", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 8},
		{"gray16", color.Gray16{Y: 0x4000}, 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gray4Model.Convert(tt.input).(Gray4); got.Y != tt.want {
				t.Errorf("Convert(%v).Y = %d, want %d", tt.input, got.Y, tt.want)
			}
		})
	}
}

func TestNewHorizontalNibble(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 128, 96))
	if img.Stride != 64 {
		t.Errorf("Stride = %d, want 64", img.Stride)
	}
	if len(img.Pix) != 128*96/2 {
		t.Errorf("len(Pix) = %d, want %d", len(img.Pix), 128*96/2)
	}
}

func TestNewHorizontalNibbleOddWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("odd width should panic")
		}
	}()
	NewHorizontalNibble(image.Rect(0, 0, 5, 2))
}

func TestHorizontalNibblePacking(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 2))
	img.SetGray4(0, 0, Gray4{Y: 5})
	img.SetGray4(1, 0, Gray4{Y: 10})
	img.SetGray4(2, 0, Gray4{Y: 3})
	img.SetGray4(3, 0, Gray4{Y: 12})
	img.SetGray4(1, 1, Gray4{Y: 0xF7}) // upper bits dropped
	want := []byte{0x5A, 0x3C, 0x07, 0x00}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
	if got := img.Gray4At(1, 0); got.Y != 10 {
		t.Errorf("Gray4At(1, 0) = %d, want 10", got.Y)
	}
	// Overwriting one nibble keeps its neighbour.
	img.SetGray4(0, 0, Gray4{Y: 0})
	if img.Pix[0] != 0x0A {
		t.Errorf("Pix[0] = 0x%02X, want 0x0A", img.Pix[0])
	}
}

func TestHorizontalNibbleOffsetRect(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(10, 20, 14, 22))
	img.SetGray4(11, 21, Gray4{Y: 9})
	if img.Pix[2] != 0x09 {
		t.Errorf("Pix = %x, want 9 in the low nibble of byte 2", img.Pix)
	}
	if got := img.Gray4At(11, 21); got.Y != 9 {
		t.Errorf("Gray4At(11, 21) = %d, want 9", got.Y)
	}
}

func TestHorizontalNibbleOutOfBounds(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 2))
	img.SetGray4(2, 0, Gray4{Y: 15})
	img.SetGray4(-1, 0, Gray4{Y: 15})
	img.Set(0, 2, color.White)
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X, want 0", i, b)
		}
	}
	if got := img.At(5, 5); got != (Gray4{}) {
		t.Errorf("At(5, 5) = %v, want Gray4{}", got)
	}
}

func TestHorizontalNibbleFill(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 2))
	img.Fill(Gray4{Y: 6})
	for i, b := range img.Pix {
		if b != 0x66 {
			t.Errorf("Pix[%d] = 0x%02X, want 0x66", i, b)
		}
	}
}

func TestHorizontalNibbleDraw(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 2))
	draw.Draw(img, image.Rect(2, 0, 4, 2), image.NewUniform(color.White), image.Point{}, draw.Src)
	want := []byte{0x00, 0xFF, 0x00, 0xFF}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = 0x%02X, want 0x%02X", i, img.Pix[i], b)
		}
	}
	if img.ColorModel() != Gray4Model {
		t.Error("ColorModel() is not Gray4Model")
	}
}
