package lc4

import (
	"fmt"
	"io"
)

const (
	// MinNonceLength is the shortest nonce accepted.
	MinNonceLength = 6
	// DefaultNonceLength is the nonce length used when none is requested.
	DefaultNonceLength = 10
	// MinSignatureLength is the shortest signature accepted.
	MinSignatureLength = 10
)

// GenerateKey returns a full-length key for mode: keyword followed by the
// remaining alphabet symbols in an order drawn from rand. An empty keyword
// shuffles the whole alphabet. rand must be unpredictable
// (crypto/rand.Reader) unless a reproducible key is wanted.
func GenerateKey(rand io.Reader, keyword string, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", &ValidationError{Field: "mode", Err: ErrInvalidMode}
	}
	if !mode.Contains(keyword) {
		return "", &ValidationError{Field: "keyword", Err: ErrInvalidKey}
	}
	if len(keyword) > len(mode.Alphabet()) {
		return "", &ValidationError{Field: "keyword", Err: ErrKeyTooLong}
	}
	if !distinct(keyword, mode) {
		return "", &ValidationError{Field: "keyword", Err: ErrDuplicateKeySymbol}
	}

	used := make([]bool, len(mode.Alphabet()))
	for i := 0; i < len(keyword); i++ {
		used[mode.Index(keyword[i])] = true
	}
	rest := make([]byte, 0, len(used)-len(keyword))
	for i, u := range used {
		if !u {
			rest = append(rest, mode.Symbol(i))
		}
	}

	if err := shuffle(rand, rest); err != nil {
		return "", err
	}
	return keyword + string(rest), nil
}

// GenerateNonce returns length symbols of mode drawn uniformly from rand.
func GenerateNonce(rand io.Reader, length int, mode Mode) (string, error) {
	if !mode.Valid() {
		return "", &ValidationError{Field: "mode", Err: ErrInvalidMode}
	}
	if length < MinNonceLength {
		return "", &ValidationError{Field: "nonce", Err: fmt.Errorf("%w: need at least %d characters, got %d", ErrNonceTooShort, MinNonceLength, length)}
	}

	alphabet := mode.Alphabet()
	out := make([]byte, length)
	for i := range out {
		j, err := randInt(rand, len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[j]
	}
	return string(out), nil
}

// shuffle permutes b in place with Fisher–Yates.
func shuffle(rand io.Reader, b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(rand, i+1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randInt returns a uniform integer in [0, n) for 0 < n <= 256, reading one
// byte at a time and rejecting the biased tail.
func randInt(rand io.Reader, n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(rand, b[:]); err != nil {
			return 0, fmt.Errorf("lc4: reading randomness: %w", err)
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}

// distinct reports whether no symbol of s repeats.
func distinct(s string, mode Mode) bool {
	seen := make([]bool, len(mode.Alphabet()))
	for i := 0; i < len(s); i++ {
		k := mode.Index(s[i])
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
