package internal

import (
	"golang.org/x/crypto/chacha20"
)

// Keystream is a deterministic byte source keyed by a 32-byte seed. Reads
// return the ChaCha20 keystream under an all-zero nonce, so the same seed
// always yields the same bytes. It feeds lc4.GenerateKey when a key is
// derived from a passphrase.
type Keystream struct {
	c *chacha20.Cipher
}

// NewKeystream returns a Keystream positioned at the start of the stream.
func NewKeystream(seed [32]byte) *Keystream {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed by the types above.
		panic(err)
	}
	return &Keystream{c: c}
}

// Read fills p with the next len(p) keystream bytes. It never fails.
func (k *Keystream) Read(p []byte) (int, error) {
	clear(p)
	k.c.XORKeyStream(p, p)
	return len(p), nil
}
