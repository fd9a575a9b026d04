// Package tinygobus exposes TinyGo buses and pins as periph interfaces so the
// ssd driver runs unchanged on a microcontroller.
package tinygobus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
	"tinygo.org/x/drivers"
)

// Conn is a conn.Conn writing to a TinyGo SPI bus.
type Conn struct {
	bus  drivers.SPI
	name string
}

// New returns a Conn over bus. name is only used by String.
func New(bus drivers.SPI, name string) *Conn {
	return &Conn{bus: bus, name: name}
}

// String implements conn.Conn.
func (c *Conn) String() string {
	return c.name
}

// Tx implements conn.Conn.
func (c *Conn) Tx(w, r []byte) error {
	return c.bus.Tx(w, r)
}

// Duplex implements conn.Conn.
func (c *Conn) Duplex() conn.Duplex {
	return conn.Full
}

// Output is the part of machine.Pin used by Pin.
type Output interface {
	Set(high bool)
}

// Pin is a gpio.PinOut driving a TinyGo output pin.
//
// The pin must already be configured as an output.
type Pin struct {
	out  Output
	name string
	num  int
}

// NewPin returns a Pin over out.
func NewPin(out Output, name string, num int) *Pin {
	return &Pin{out: out, name: name, num: num}
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return fmt.Sprintf("%s(%d)", p.name, p.num)
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return p.num
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	return gpio.OUT
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	return []pin.Func{gpio.OUT}
}

// SetFunc implements pin.PinFunc.
func (p *Pin) SetFunc(f pin.Func) error {
	if f != gpio.OUT {
		return fmt.Errorf("tinygobus: %s: unsupported function %s", p.name, f)
	}
	return nil
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	p.out.Set(bool(l))
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	return errors.New("tinygobus: PWM is not supported")
}

var (
	_ conn.Conn   = &Conn{}
	_ gpio.PinOut = &Pin{}
	_ pin.PinFunc = &Pin{}
)
