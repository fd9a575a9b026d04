// Package image4bit implements the 4-bit grayscale frame of a SSD1327.
//
// The SSD1327 GDDRAM holds two pixels per byte. With the nibble re-map bit set
// (as package ssd does) the high nibble is the left pixel:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A  0x3C
//
// The Pix field of a full screen HorizontalNibble can be passed as is to
// ssd.Dev.Update:
//
//	img := image4bit.NewHorizontalNibble(dev.Bounds())
//	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
//	dev.Update(img.Pix)
package image4bit
