package lc4

import (
	"fmt"
	"strings"
)

// Mode selects the alphabet and grid size of the cipher.
type Mode int

const (
	// Primary is LC4: 36 symbols on a 6×6 grid.
	Primary Mode = iota
	// Extended is LS47: 49 symbols on a 7×7 grid.
	Extended
)

const (
	// AlphabetPrimary is the ordered LC4 symbol set.
	AlphabetPrimary = "#_23456789abcdefghijklmnopqrstuvwxyz"
	// AlphabetExtended is the ordered LS47 symbol set.
	AlphabetExtended = "_abcdefghijklmnopqrstuvwxyz.0123456789,-+*/:?!'()"
)

// notFound marks bytes that are not part of an alphabet in the lookup tables.
const notFound = -1

var (
	indexPrimary  = buildIndex(AlphabetPrimary)
	indexExtended = buildIndex(AlphabetExtended)
)

func buildIndex(alphabet string) [256]int {
	var idx [256]int
	for i := range idx {
		idx[i] = notFound
	}
	for i := 0; i < len(alphabet); i++ {
		idx[alphabet[i]] = i
	}
	return idx
}

// ParseMode resolves a mode name. Accepted names are case-insensitive:
// "lc4" or "primary", "ls47" or "extended". An empty name means Primary.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lc4", "primary":
		return Primary, nil
	case "ls47", "extended":
		return Extended, nil
	default:
		return Primary, &ValidationError{Field: "mode", Err: fmt.Errorf("%w: %q (use lc4 or ls47)", ErrInvalidMode, name)}
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == Primary || m == Extended
}

func (m Mode) String() string {
	switch m {
	case Primary:
		return "lc4"
	case Extended:
		return "ls47"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Alphabet returns the ordered symbol set of the mode.
func (m Mode) Alphabet() string {
	if m == Extended {
		return AlphabetExtended
	}
	return AlphabetPrimary
}

// Size returns the grid dimension N. The alphabet has N² symbols.
func (m Mode) Size() int {
	if m == Extended {
		return 7
	}
	return 6
}

// Index returns the alphabet index of symbol c, or -1 when c is not part of
// the mode's alphabet.
func (m Mode) Index(c byte) int {
	if m == Extended {
		return indexExtended[c]
	}
	return indexPrimary[c]
}

// Symbol returns the alphabet symbol at index i.
func (m Mode) Symbol(i int) byte {
	return m.Alphabet()[i]
}

// Contains reports whether every byte of s belongs to the mode's alphabet.
func (m Mode) Contains(s string) bool {
	for i := 0; i < len(s); i++ {
		if m.Index(s[i]) == notFound {
			return false
		}
	}
	return true
}
