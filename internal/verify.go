package internal

import (
	"errors"
	"fmt"
	"slices"

	"lc4riot/lc4"
)

// ErrRoundTrip is returned when a ciphertext does not decrypt back to its
// prepared plaintext.
var ErrRoundTrip = errors.New("round-trip mismatch")

// EncryptVerified encrypts s and then immediately decrypts the result under
// the same settings. The decrypted text must equal the escaped message
// followed by the signature. If verification fails for any reason, an error
// is returned and no ciphertext is produced.
func EncryptVerified(s lc4.Settings) (string, error) {
	ct, err := lc4.Encrypt(s)
	if err != nil {
		return "", err
	}

	d := s
	d.Message = ct
	d.Observer = nil
	pt, err := lc4.Decrypt(d)
	if err != nil {
		return "", fmt.Errorf("verify: %w", err)
	}
	if want := lc4.EscapeString(s.Message, s.Mode) + s.Signature; pt != want {
		return "", fmt.Errorf("%w: decrypted %d symbols, want %d", ErrRoundTrip, len(pt), len(want))
	}
	return ct, nil
}

// EncryptLinesVerified is EncryptVerified for the multiline form. The
// comparison is per line and includes the signature line.
func EncryptLinesVerified(s lc4.Settings) ([]string, error) {
	ct, err := lc4.EncryptLines(s)
	if err != nil {
		return nil, err
	}

	d := s
	d.Lines = ct
	d.Observer = nil
	pt, err := lc4.DecryptLines(d)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	want := make([]string, 0, len(s.Lines)+1)
	for _, line := range s.Lines {
		want = append(want, lc4.EscapeString(line, s.Mode))
	}
	if s.Signature != "" {
		want = append(want, s.Signature)
	}
	if !slices.Equal(pt, want) {
		for i := range want {
			if i >= len(pt) || pt[i] != want[i] {
				return nil, fmt.Errorf("%w at line %d", ErrRoundTrip, i+1)
			}
		}
		return nil, fmt.Errorf("%w: %d lines, want %d", ErrRoundTrip, len(pt), len(want))
	}
	return ct, nil
}
