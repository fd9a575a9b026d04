package ssd

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler lives for one public operation. It keeps the first pin or bus
// error of that operation and turns every following step into a no-op.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) out(name string, p gpio.PinOut, l gpio.Level) {
	if eh.err != nil {
		return
	}
	if err := p.Out(l); err != nil {
		eh.err = fmt.Errorf("ssd: failed to pull %s %s: %w", name, l, err)
	}
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	eh.out("RST", eh.d.pins.RST, l)
}

func (eh *errorHandler) vddOut(l gpio.Level) {
	eh.out("VDD", eh.d.pins.VDD, l)
}

func (eh *errorHandler) vccOut(l gpio.Level) {
	eh.out("VCC", eh.d.pins.VCC, l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	eh.out("DC", eh.d.pins.DC, l)
}

func (eh *errorHandler) tx(w []byte) {
	if eh.err != nil {
		return
	}
	if err := eh.d.c.Tx(w, nil); err != nil {
		eh.err = fmt.Errorf("ssd: failed to write %d bytes: %w", len(w), err)
	}
}

func (eh *errorHandler) sleep(t time.Duration) {
	if eh.err != nil {
		return
	}
	eh.d.sleep(t)
}

// done records the operation error on the device, unless an earlier one is
// already held.
func (eh *errorHandler) done() {
	if eh.d.err == nil {
		eh.d.err = eh.err
	}
}
