// Package ssd drives a SSD1306 or SSD1327 OLED controller whose supply rails
// are switched by GPIOs.
//
// The driver covers the low-level part of the display: reset and dual-rail
// power sequencing, the D/C# framed write primitive, the shared command set
// and full frame transfers. Pixel formats and drawing are left to the caller,
// who hands over a frame already packed for the controller.
//
// # Hardware Connection
//
//	Controller  → System
//	RES#        → GPIO (RST, active low)
//	D/C#        → GPIO (DC)
//	VDD enable  → GPIO (VDD, logic rail)
//	VCC enable  → GPIO (VCC, boost converter enable)
//	SCLK/SDIN   → SPI clock / MOSI
//	CS#         → SPI chip select (or GND)
//
// # Power Sequencing
//
// VCC is generated by a boost converter that must never run while the logic
// rail is down. SetPowerOn(true) asserts RST, enables VDD, waits, releases RST,
// enables VCC and waits for the boost output. SetPowerOn(false) disables VCC,
// waits for it to discharge, disables VDD and asserts RST. The delays are set
// through Timing.
//
// SetOn only sends DISPLAY_ON or DISPLAY_OFF; it is the fast way to blank the
// panel while keeping it powered.
//
// # Basic Usage
//
//	dev, err := ssd.NewSPI(port, ssd.Pins{
//		RST: gpioreg.ByName("GPIO24"),
//		VDD: gpioreg.ByName("GPIO23"),
//		VCC: gpioreg.ByName("GPIO22"),
//		DC:  gpioreg.ByName("GPIO25"),
//	}, &ssd.Opts{Variant: ssd.SSD1306, W: 128, H: 64})
//	if err != nil {
//		log.Fatal(err)
//	}
//	dev.Init()
//	dev.SetContrast(128)
//	img := image1bit.NewVerticalLSB(dev.Bounds())
//	// ... draw into img ...
//	dev.Update(img.Pix)
//	dev.SetOn(true)
//	if err := dev.Err(); err != nil {
//		log.Fatal(err)
//	}
//
// # Errors
//
// Operations do not return errors and do not validate their arguments: the
// caller is trusted to respect the documented preconditions. A pin or bus
// failure aborts the remaining steps of the operation it happened in, so VCC
// is never enabled after VDD failed. The next operation starts afresh: Halt
// still switches the rails off after a fault. Err reports the first failure.
//
// # Concurrency
//
// Dev has no internal locking. Every method blocks until all bytes and delays
// are done and must not run concurrently with another method.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// https://cdn-shop.adafruit.com/datasheets/SSD1327.pdf
package ssd
