package internal

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// quietZone is the white border, in modules, around a rendered code. QR
// readers expect at least four.
const quietZone = 4

// RenderQR encodes text as a QR code (medium error correction) and draws it
// with Unicode half blocks, two module rows per text line. Dark modules are
// drawn as filled blocks, so the result scans on light terminal themes.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return "", fmt.Errorf("qr: %w", err)
	}

	var b strings.Builder
	lo, hi := -quietZone, code.Size+quietZone
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			top, bottom := code.Black(x, y), code.Black(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
