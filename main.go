// lc4riot - LC4 / LS47 hand cipher
//
// Two modes share one engine:
// - lc4:  6×6 grid over "#_23456789abcdefghijklmnopqrstuvwxyz"
// - ls47: 7×7 grid over "_abcdefghijklmnopqrstuvwxyz.0123456789,-+*/:?!'()"
//
// A session builds the grid from the key, primes it with the optional nonce
// and header data, then encrypts the message and an optional signature.
// Decryption replays the same priming and checks that the plaintext ends with
// the signature.
//
// Notes:
// - Keys come from --key, --key-file or --prompt; --derive treats them as a
//   passphrase and stretches it into a full-length key with Argon2id.
// - Plaintext is escaped (lowercase, whitespace to '_', foreign symbols dropped)
//   before encryption; ciphertext is taken as is apart from whitespace.

package main

import (
	"errors"
	"fmt"
	"os"

	"lc4riot/internal"
	"lc4riot/lc4"
)

var version = "dev"

// errUsage marks command-line mistakes; they exit with status 2 like
// validation errors.
var errUsage = errors.New("usage")

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		internal.Logger{}.Errorf("%v", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, lc4.ErrValidation), errors.Is(err, internal.ErrWeakKey):
		return 2
	default:
		return 1
	}
}

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}
