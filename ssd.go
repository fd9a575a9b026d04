package ssd

import (
	"errors"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Commands shared by the SSD1306 and SSD1327 controllers.
const (
	SetContrastLevel  = 0x81
	SetMultiplexRatio = 0xA8
	DisplayOff        = 0xAE
	DisplayOn         = 0xAF
)

// Pins are the GPIO lines wired to the controller.
//
// RST is active low. VDD and VCC are active high enables for the logic rail
// and for the boost converter generating the matrix rail. DC selects data
// (High) or command (Low) for the bytes shifted on the bus.
type Pins struct {
	RST gpio.PinOut
	VDD gpio.PinOut
	VCC gpio.PinOut
	DC  gpio.PinOut
}

// Opts is the configuration for the display.
type Opts struct {
	// Controller variant (default: SSD1306)
	Variant *Variant

	// Display dimensions in pixels (default: the variant maximum)
	W int
	H int

	// Power sequencing delays (default: DefaultTiming)
	Timing *Timing

	// Persisted orientation read by Flip and Init (default: not flipped)
	Orientation OrientationStore

	// Receives debug entries for power transitions (default: discarded)
	Logger logrus.FieldLogger
}

// Dev is the device handle for the display controller.
//
// Dev keeps no copy of the controller registers: every setter is written to
// the hardware and trusted to persist until overwritten.
//
// Dev is not safe for concurrent use. Write drives D/C# and then shifts the
// buffer as two unprotected steps, so callers must serialize every method
// call, including from interrupt-like contexts.
type Dev struct {
	c    conn.Conn
	pins Pins

	variant *Variant
	rect    image.Rectangle
	timing  Timing
	orient  OrientationStore
	log     logrus.FieldLogger

	sleep func(time.Duration)
	// First error seen by any operation.
	err error
}

// NewSPI creates a new device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. No pin is driven until Init or SetPowerOn is called.
func NewSPI(p spi.Port, pins Pins, opts *Opts) (*Dev, error) {
	// Validate before claiming the port.
	if _, err := newDev(nil, pins, opts); err != nil {
		return nil, err
	}
	// Both SSD1306 and SSD1327 accept 10MHz in 4-wire SPI mode.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, pins, opts)
}

// New creates a new device using an already connected bus.
//
// This is useful for transports that are not a spi.Port, like a FT232H MPSSE
// connection or a TinyGo SPI bus wrapped by package tinygobus.
func New(c conn.Conn, pins Pins, opts *Opts) (*Dev, error) {
	if c == nil {
		return nil, errors.New("ssd: bus is required")
	}
	return newDev(c, pins, opts)
}

func newDev(c conn.Conn, pins Pins, opts *Opts) (*Dev, error) {
	if pins.RST == nil || pins.VDD == nil || pins.VCC == nil || pins.DC == nil {
		return nil, errors.New("ssd: RST, VDD, VCC and DC pins are required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	v := opts.Variant
	if v == nil {
		v = SSD1306
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = v.MaxW, v.MaxH
	}
	if err := v.validate(w, h); err != nil {
		return nil, err
	}
	t := DefaultTiming
	if opts.Timing != nil {
		t = *opts.Timing
	}
	orient := opts.Orientation
	if orient == nil {
		orient = FixedOrientation(false)
	}
	l := opts.Logger
	if l == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		l = discard
	}
	d := &Dev{
		c:       c,
		pins:    pins,
		variant: v,
		rect:    image.Rect(0, 0, w, h),
		timing:  t,
		orient:  orient,
		log:     l.WithField("variant", v.Name),
		sleep:   time.Sleep,
	}
	return d, nil
}

// Write sends buf to the controller in one transfer.
//
// D/C# is driven High when isData is true (GDDRAM data) and Low otherwise
// (command bytes) before the first byte is shifted. D/C# is left at that
// level afterward.
func (d *Dev) Write(isData bool, buf []byte) {
	eh := errorHandler{d: d}
	d.write(&eh, isData, buf)
	eh.done()
}

func (d *Dev) write(eh *errorHandler, isData bool, buf []byte) {
	l := gpio.Low
	if isData {
		l = gpio.High
	}
	eh.dcOut(l)
	eh.tx(buf)
}

// SendCommand sends a single command byte.
func (d *Dev) SendCommand(cmd byte) {
	d.Write(false, []byte{cmd})
}

// Command is an opcode with its parameter bytes.
type Command struct {
	Op     byte
	Params []byte
}

// sendCommands sends each opcode in command mode followed by its parameters,
// if any, in a separate data mode write. It stops at the first failure.
func (d *Dev) sendCommands(eh *errorHandler, cmds []Command) {
	for _, c := range cmds {
		d.write(eh, false, []byte{c.Op})
		if len(c.Params) != 0 {
			d.write(eh, true, c.Params)
		}
	}
}

// run sends cmds as one operation.
func (d *Dev) run(cmds []Command) {
	eh := errorHandler{d: d}
	d.sendCommands(&eh, cmds)
	eh.done()
}

// SetOn turns the pixels on or off.
//
// The rails stay powered; use SetPowerOn to cut them. The display must be
// powered on, otherwise the effect is undefined.
func (d *Dev) SetOn(on bool) {
	if on {
		d.SendCommand(DisplayOn)
		return
	}
	d.SendCommand(DisplayOff)
}

// SetContrast sets the OLED segment current (0-255).
//
// SSD1306 is about 0.4µA per step, SSD1327 about 1.2µA per step.
func (d *Dev) SetContrast(level byte) {
	d.run([]Command{{Op: SetContrastLevel, Params: []byte{level}}})
}

// SetInverted sets whether the display colors are inverted.
func (d *Dev) SetInverted(invert bool) {
	d.run(d.variant.invert(invert))
}

// Flip applies the orientation held by the OrientationStore.
//
// The new orientation only shows up after the next Update.
func (d *Dev) Flip() {
	d.run(d.remap())
}

func (d *Dev) remap() []Command {
	return d.variant.remap(d.rect.Dx(), d.rect.Dy(), d.orient.Flipped())
}

// Err returns the first error reported by the pins or the bus.
//
// A failure aborts the rest of the operation it happened in. Later operations
// still run, so the rails can always be switched off.
func (d *Dev) Err() error {
	return d.err
}

// Halt powers off the display and returns Err.
func (d *Dev) Halt() error {
	d.SetPowerOn(false)
	return d.Err()
}

// Variant returns the controller variant.
func (d *Dev) Variant() *Variant {
	return d.variant
}

// Bounds returns the display bounds.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// FrameSize returns the number of bytes Update transmits.
func (d *Dev) FrameSize() int {
	return d.variant.frameSize(d.rect.Dx(), d.rect.Dy())
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd.Dev{%s, %dx%d}", d.variant.Name, d.rect.Dx(), d.rect.Dy())
}

var _ conn.Resource = &Dev{}
