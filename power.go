package ssd

import (
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// Timing holds the delays of the power sequence.
type Timing struct {
	// LogicSettle is how long RST is held low after VDD is enabled. It covers
	// both the logic rail ramp and the minimum reset pulse.
	LogicSettle time.Duration
	// BoostSettle is the wait after VCC is enabled for the boost converter
	// output to stabilize.
	BoostSettle time.Duration
	// BoostDischarge is the wait after VCC is disabled before VDD is cut.
	BoostDischarge time.Duration
}

// DefaultTiming suits a TPS61040 boost converter feeding VCC.
var DefaultTiming = Timing{
	LogicSettle:    time.Millisecond,
	BoostSettle:    100 * time.Millisecond,
	BoostDischarge: 100 * time.Millisecond,
}

// SetPowerOn switches the supply rails.
//
// Power on pulses RST while VDD comes up and then enables VCC. Power off
// disables VCC, then VDD, and leaves RST asserted so the controller inputs
// do not float. Turning the rails off cuts all current draw from the display
// and is much slower than SetOn.
//
// Powering on resets the controller: Init must run again before Update.
func (d *Dev) SetPowerOn(on bool) {
	eh := errorHandler{d: d}
	if on {
		d.powerOn(&eh)
	} else {
		d.powerOff(&eh)
	}
	eh.done()
}

func (d *Dev) powerOn(eh *errorHandler) {
	d.log.WithField("phase", "power-on").Debug("enabling VDD with RST asserted")
	eh.rstOut(gpio.Low)
	eh.vddOut(gpio.High)
	eh.sleep(d.timing.LogicSettle)
	eh.rstOut(gpio.High)
	// VCC only comes up once VDD was confirmed driven.
	eh.vccOut(gpio.High)
	eh.sleep(d.timing.BoostSettle)
	d.logDone("power-on", eh.err)
}

// powerOff does not look at errors of earlier operations.
func (d *Dev) powerOff(eh *errorHandler) {
	d.log.WithField("phase", "power-off").Debug("disabling VCC")
	eh.vccOut(gpio.Low)
	eh.sleep(d.timing.BoostDischarge)
	// VDD stays up while VCC may still be driven.
	eh.vddOut(gpio.Low)
	eh.rstOut(gpio.Low)
	d.logDone("power-off", eh.err)
}

func (d *Dev) logDone(phase string, err error) {
	e := d.log.WithField("phase", phase)
	if err != nil {
		e.WithError(err).Debug("aborted")
		return
	}
	e.Debug("done")
}

// Init powers the display on and programs the controller defaults.
//
// The init sequence sets the multiplex ratio from the display height, applies
// the stored orientation and leaves the pixels off: call SetOn after the first
// Update. Nothing is sent when the power-on fails.
func (d *Dev) Init() {
	eh := errorHandler{d: d}
	d.powerOn(&eh)
	d.log.WithFields(logrus.Fields{"phase": "init", "w": d.rect.Dx(), "h": d.rect.Dy()}).Debug("sending init sequence")
	d.sendCommands(&eh, d.variant.init(d.rect.Dx(), d.rect.Dy()))
	d.sendCommands(&eh, d.remap())
	eh.done()
}
