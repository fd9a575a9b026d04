package tinygobus

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"

	"github.com/flavioheleno/ssd"
)

type fakeSPI struct {
	writes [][]byte
	err    error
}

func (f *fakeSPI) Tx(w, r []byte) error {
	f.writes = append(f.writes, append([]byte(nil), w...))
	return f.err
}

func (f *fakeSPI) Transfer(b byte) (byte, error) {
	f.writes = append(f.writes, []byte{b})
	return 0, f.err
}

type fakeOutput struct {
	levels []bool
}

func (f *fakeOutput) Set(high bool) {
	f.levels = append(f.levels, high)
}

func TestConnTx(t *testing.T) {
	bus := &fakeSPI{}
	c := New(bus, "SPI0")
	if err := c.Tx([]byte{0xAF}, nil); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(bus.writes, [][]byte{{0xAF}}); diff != "" {
		t.Errorf("Tx() difference (-got +want):\n%s", diff)
	}
	if c.String() != "SPI0" {
		t.Errorf("String() = %q, want SPI0", c.String())
	}
	if c.Duplex() != conn.Full {
		t.Errorf("Duplex() = %s, want Full", c.Duplex())
	}
}

func TestConnTxError(t *testing.T) {
	want := errors.New("bus fault")
	c := New(&fakeSPI{err: want}, "SPI0")
	if err := c.Tx([]byte{1}, nil); !errors.Is(err, want) {
		t.Errorf("Tx() = %v, want %v", err, want)
	}
}

func TestPinOut(t *testing.T) {
	out := &fakeOutput{}
	p := NewPin(out, "PA0", 0)
	for _, l := range []gpio.Level{gpio.Low, gpio.High, gpio.Low} {
		if err := p.Out(l); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff(out.levels, []bool{false, true, false}); diff != "" {
		t.Errorf("Out() difference (-got +want):\n%s", diff)
	}
	if p.String() != "PA0(0)" {
		t.Errorf("String() = %q", p.String())
	}
	if p.Func() != gpio.OUT || p.SetFunc(gpio.IN) == nil {
		t.Error("only OUT should be supported")
	}
	if p.PWM(gpio.DutyHalf, 0) == nil {
		t.Error("PWM should fail")
	}
}

// The driver runs end to end over TinyGo primitives.
func TestDriverOverTinyGo(t *testing.T) {
	bus := &fakeSPI{}
	rst, vdd, vcc, dc := &fakeOutput{}, &fakeOutput{}, &fakeOutput{}, &fakeOutput{}
	d, err := ssd.New(New(bus, "SPI0"), ssd.Pins{
		RST: NewPin(rst, "PA0", 0),
		VDD: NewPin(vdd, "PA1", 1),
		VCC: NewPin(vcc, "PC4", 36),
		DC:  NewPin(dc, "PE10", 74),
	}, &ssd.Opts{Timing: &ssd.Timing{}})
	if err != nil {
		t.Fatal(err)
	}
	d.SetPowerOn(true)
	d.SetContrast(0x40)
	if err := d.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rst.levels, []bool{false, true}); diff != "" {
		t.Errorf("RST difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(bus.writes, [][]byte{{ssd.SetContrastLevel}, {0x40}}); diff != "" {
		t.Errorf("bus difference (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(dc.levels, []bool{false, true}); diff != "" {
		t.Errorf("DC difference (-got +want):\n%s", diff)
	}
}
