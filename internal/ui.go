package internal

import (
	"os"
	"strings"
	"unicode"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// UI helpers
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - NO_COLOR (any value) always wins over SetColorEnabled(true).
// - Wrap text with Style("text", Bold, Blue) to apply attributes when enabled.
// - When disabled, Style returns the input unchanged.
//
// Symbol formatting
// - Group splits ciphertext into fixed-size blocks for reading aloud or copying by hand.
// - StripSpaces undoes grouping and any wrapping before decryption.

var colorEnabled = true

// Text attributes accepted by Style.
const (
	Bold   = color.Bold
	Blue   = color.FgBlue
	Cyan   = color.FgCyan
	Purple = color.FgMagenta
	Gray   = color.FgHiBlack
	Red    = color.FgRed
	Green  = color.FgGreen
	Yellow = color.FgYellow

	// Reverse swaps foreground and background; used for the grid marker.
	Reverse = color.ReverseVideo
)

// SetColorEnabled toggles styling on or off for this package and for every
// fatih/color user in the process.
func SetColorEnabled(on bool) {
	colorEnabled = on
	color.NoColor = !ColorEnabled()
}

// ColorEnabled reports whether styling is currently enabled.
func ColorEnabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return colorEnabled
}

// Style wraps s with the provided attributes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, attrs ...color.Attribute) string {
	if !ColorEnabled() || len(attrs) == 0 {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// Banner returns the CLI header: the program name as ASCII art followed by a
// styled one-line description.
func Banner(version string) string {
	art := figure.NewFigure("lc4riot", "small", true).String()
	var b strings.Builder
	b.WriteString(Style(strings.TrimRight(art, "\n"), Purple))
	b.WriteString("\n")
	b.WriteString(Style("LC4 / LS47 hand cipher - "+version, Bold, Purple))
	return b.String()
}

// StripSpaces removes all Unicode whitespace from s. No whitespace belongs to
// either alphabet, so grouped or wrapped ciphertext decodes unchanged.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Group inserts sep after every size symbols of s. A size below one returns s
// unchanged.
func Group(s string, size int, sep string) string {
	if size < 1 || len(s) <= size {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i += size {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i:min(i+size, len(s))])
	}
	return b.String()
}
