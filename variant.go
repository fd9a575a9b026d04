package ssd

import "fmt"

// SSD1306 commands. See pages 28-32 of the datasheet.
const (
	ssd1306MemoryMode         = 0x20
	ssd1306ColumnAddr         = 0x21
	ssd1306PageAddr           = 0x22
	ssd1306DeactivateScroll   = 0x2E
	ssd1306StartLine          = 0x40
	ssd1306ChargePump         = 0x8D
	ssd1306SegRemapNormal     = 0xA0
	ssd1306SegRemapReversed   = 0xA1
	ssd1306DisplayAllOnResume = 0xA4
	ssd1306NormalDisplay      = 0xA6
	ssd1306InvertDisplay      = 0xA7
	ssd1306ComScanInc         = 0xC0
	ssd1306ComScanDec         = 0xC8
	ssd1306DisplayOffset      = 0xD3
	ssd1306DisplayClockDiv    = 0xD5
	ssd1306Precharge          = 0xD9
	ssd1306ComPins            = 0xDA
	ssd1306VCOMDetect         = 0xDB
)

// SSD1327 commands. See section 8 of the datasheet.
const (
	ssd1327ColumnAddr      = 0x15
	ssd1327RowAddr         = 0x75
	ssd1327Remap           = 0xA0
	ssd1327StartLine       = 0xA1
	ssd1327DisplayOffset   = 0xA2
	ssd1327NormalDisplay   = 0xA4
	ssd1327InvertDisplay   = 0xA7
	ssd1327FunctionA       = 0xAB
	ssd1327PhaseLength     = 0xB1
	ssd1327ClockDiv        = 0xB3
	ssd1327SecondPrecharge = 0xB6
	ssd1327LinearGray      = 0xB9
	ssd1327PrechargeVolt   = 0xBC
	ssd1327VCOMH           = 0xBE
	ssd1327FunctionB       = 0xD5
	ssd1327CommandLock     = 0xFD
)

// SSD1327 re-map bits, parameter of ssd1327Remap.
const (
	ssd1327ColumnRemap = 1 << 0
	ssd1327NibbleRemap = 1 << 1
	ssd1327ComRemap    = 1 << 4
	ssd1327ComSplit    = 1 << 6
)

// Variant describes the parts of the protocol that differ between
// controllers: GDDRAM packing, init sequence, addressing window, inversion
// and orientation.
type Variant struct {
	Name string
	// BitsPerPixel of the GDDRAM packing.
	BitsPerPixel int
	// Largest supported panel.
	MaxW, MaxH int

	validate func(w, h int) error
	init     func(w, h int) []Command
	window   func(w, h int) []Command
	invert   func(invert bool) []Command
	remap    func(w, h int, flipped bool) []Command
}

func (v *Variant) frameSize(w, h int) int {
	return w * h * v.BitsPerPixel / 8
}

// SSD1306 is a 128x64 monochrome controller.
//
// The frame is the content of image1bit.VerticalLSB.Pix: horizontal bands of
// 8 rows, one byte per column, LSB on top. VCC is supplied externally, so the
// internal charge pump stays disabled.
var SSD1306 = &Variant{
	Name:         "SSD1306",
	BitsPerPixel: 1,
	MaxW:         128,
	MaxH:         64,
	validate: func(w, h int) error {
		if w < 8 || w > 128 || w&7 != 0 {
			return fmt.Errorf("ssd: SSD1306 invalid width %d", w)
		}
		if h < 8 || h > 64 || h&7 != 0 {
			return fmt.Errorf("ssd: SSD1306 invalid height %d", h)
		}
		return nil
	},
	init: func(w, h int) []Command {
		// See page 40.
		comPins := byte(0x02)
		if h > 32 {
			comPins = 0x12
		}
		return []Command{
			{Op: DisplayOff},
			{Op: ssd1306DisplayClockDiv, Params: []byte{0x80}},
			{Op: SetMultiplexRatio, Params: []byte{byte(h - 1)}},
			{Op: ssd1306DisplayOffset, Params: []byte{0x00}},
			{Op: ssd1306StartLine},
			{Op: ssd1306ChargePump, Params: []byte{0x10}},
			{Op: ssd1306MemoryMode, Params: []byte{0x00}}, // horizontal
			{Op: ssd1306ComPins, Params: []byte{comPins}},
			{Op: ssd1306Precharge, Params: []byte{0x22}},
			{Op: ssd1306VCOMDetect, Params: []byte{0x40}},
			{Op: ssd1306DeactivateScroll},
			{Op: ssd1306DisplayAllOnResume},
			{Op: ssd1306NormalDisplay},
		}
	},
	window: func(w, h int) []Command {
		return []Command{
			{Op: ssd1306ColumnAddr, Params: []byte{0, byte(w - 1)}},
			{Op: ssd1306PageAddr, Params: []byte{0, byte(h/8 - 1)}},
		}
	},
	invert: func(invert bool) []Command {
		if invert {
			return []Command{{Op: ssd1306InvertDisplay}}
		}
		return []Command{{Op: ssd1306NormalDisplay}}
	},
	remap: func(w, h int, flipped bool) []Command {
		if flipped {
			return []Command{{Op: ssd1306SegRemapNormal}, {Op: ssd1306ComScanInc}}
		}
		return []Command{{Op: ssd1306SegRemapReversed}, {Op: ssd1306ComScanDec}}
	},
}

// SSD1327 is a 128x128 16 levels grayscale controller.
//
// The frame is the content of image4bit.HorizontalNibble.Pix: two pixels per
// byte, high nibble on the left. Column re-map already swaps the nibble order,
// so the nibble re-map bit is only set when columns are not re-mapped.
var SSD1327 = &Variant{
	Name:         "SSD1327",
	BitsPerPixel: 4,
	MaxW:         128,
	MaxH:         128,
	validate: func(w, h int) error {
		if w < 2 || w > 128 || w%2 != 0 {
			return fmt.Errorf("ssd: SSD1327 invalid width %d", w)
		}
		if h < 1 || h > 128 {
			return fmt.Errorf("ssd: SSD1327 invalid height %d", h)
		}
		return nil
	},
	init: func(w, h int) []Command {
		return []Command{
			{Op: ssd1327CommandLock, Params: []byte{0x12}}, // unlock
			{Op: DisplayOff},
			{Op: SetMultiplexRatio, Params: []byte{byte(h - 1)}},
			{Op: ssd1327StartLine, Params: []byte{0x00}},
			{Op: ssd1327DisplayOffset, Params: []byte{0x00}},
			{Op: ssd1327FunctionA, Params: []byte{0x01}}, // internal VDD regulator
			{Op: ssd1327PhaseLength, Params: []byte{0x55}},
			{Op: ssd1327ClockDiv, Params: []byte{0x01}},
			{Op: ssd1327SecondPrecharge, Params: []byte{0x01}},
			{Op: ssd1327PrechargeVolt, Params: []byte{0x08}},
			{Op: ssd1327VCOMH, Params: []byte{0x07}},
			{Op: ssd1327FunctionB, Params: []byte{0x62}},
			{Op: ssd1327LinearGray},
			{Op: ssd1327NormalDisplay},
		}
	},
	window: func(w, h int) []Command {
		// A column address covers two pixels.
		return []Command{
			{Op: ssd1327ColumnAddr, Params: []byte{0, byte(w/2 - 1)}},
			{Op: ssd1327RowAddr, Params: []byte{0, byte(h - 1)}},
		}
	},
	invert: func(invert bool) []Command {
		if invert {
			return []Command{{Op: ssd1327InvertDisplay}}
		}
		return []Command{{Op: ssd1327NormalDisplay}}
	},
	remap: func(w, h int, flipped bool) []Command {
		r := byte(ssd1327ComSplit)
		if flipped {
			r |= ssd1327NibbleRemap
		} else {
			r |= ssd1327ColumnRemap | ssd1327ComRemap
		}
		return []Command{{Op: ssd1327Remap, Params: []byte{r}}}
	},
}
