package ssd

// Update sends a full frame to the controller GDDRAM.
//
// framebuf is in the variant native packing: image1bit.VerticalLSB pages for
// SSD1306 and image4bit.HorizontalNibble for SSD1327. Its length is not
// checked against FrameSize; the first FrameSize bytes are sent and a shorter
// slice panics.
func (d *Dev) Update(framebuf []byte) {
	n := d.FrameSize()
	_ = framebuf[n-1] // bounds check before any byte is sent
	eh := errorHandler{d: d}
	d.sendCommands(&eh, d.variant.window(d.rect.Dx(), d.rect.Dy()))
	d.write(&eh, true, framebuf[:n])
	eh.done()
}
