package internal

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"lc4riot/lc4"
)

var (
	// ErrWeakKey marks a password key: shorter than the full alphabet and
	// expanded into the grid instead of laid out directly.
	ErrWeakKey = errors.New("weak key")
	// ErrEmptyPassphrase is returned when a key is to be derived from nothing.
	ErrEmptyPassphrase = errors.New("passphrase is empty")
	// ErrUnknownKDF is returned for a KDF name other than argon2id or none.
	ErrUnknownKDF = errors.New("unknown KDF")
)

// KeyPolicy defines how key material is checked and how passphrases become
// full-length keys.
//   - KDF "argon2id" (default) stretches a passphrase with Argon2id before it
//     seeds the key shuffle, so every guess costs KDFMemMB of memory.
//   - KDF "none" seeds the shuffle with SHA-256 of the passphrase. Only for
//     tests and low-memory hosts.
//   - Strict turns the password-key warning into an error.
type KeyPolicy struct {
	KDF         string // "argon2id" (default) or "none"
	KDFMemMB    uint32 // memory in MB (e.g., 512)
	KDFTime     uint32 // iterations (e.g., 3)
	KDFParallel uint8  // parallelism (e.g., 1)
	Strict      bool   // reject password keys
}

// DefaultKeyPolicy returns the parameters used when no config overrides them.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{
		KDF:         "argon2id",
		KDFMemMB:    512,
		KDFTime:     3,
		KDFParallel: 1,
	}
}

// ValidateKeyStrength returns nil for a full-length key. A shorter password
// key yields an error wrapping ErrWeakKey; callers that do not run a strict
// policy report it as a warning and carry on.
func ValidateKeyStrength(key string, mode lc4.Mode) error {
	full := len(mode.Alphabet())
	if len(key) >= full {
		return nil
	}
	return fmt.Errorf("%w: %d of %d symbols, expanded as a password (use `keygen` or `keygen --derive` for a full key)",
		ErrWeakKey, len(key), full)
}

// EnforceKey applies policy to key. It returns the ErrWeakKey error under a
// strict policy and nil otherwise, together with the warning to show.
func EnforceKey(key string, mode lc4.Mode, policy KeyPolicy) (warning string, err error) {
	if werr := ValidateKeyStrength(key, mode); werr != nil {
		if policy.Strict {
			return "", werr
		}
		return werr.Error(), nil
	}
	return "", nil
}

// EffectiveKeyMaterial derives a 32-byte seed from passphrase using policy.
//   - argon2id: Argon2id with the configured parameters and a salt bound to
//     the mode, then SHA-256 to canonicalize the output.
//   - none: SHA-256 of the mode-bound salt and the passphrase.
func EffectiveKeyMaterial(passphrase string, mode lc4.Mode, policy KeyPolicy) ([32]byte, error) {
	var seed32 [32]byte
	if passphrase == "" {
		return seed32, ErrEmptyPassphrase
	}
	salt := []byte("lc4riot/v1/" + mode.String() + "/key-derivation")

	switch strings.ToLower(strings.TrimSpace(policy.KDF)) {
	case "", "argon2id":
		mem := policy.KDFMemMB
		if mem == 0 {
			mem = 512
		}
		time := policy.KDFTime
		if time == 0 {
			time = 3
		}
		par := policy.KDFParallel
		if par == 0 {
			par = 1
		}

		derived := argon2.IDKey([]byte(passphrase), salt, time, mem*1024, par, 32)
		seed32 = sha256.Sum256(derived)
		return seed32, nil

	case "none":
		seed32 = sha256.Sum256(append(salt, passphrase...))
		return seed32, nil

	default:
		return seed32, fmt.Errorf("%w %q (supported: argon2id, none)", ErrUnknownKDF, policy.KDF)
	}
}

// DeriveKey turns passphrase into a full-length key for mode. The key starts
// with keyword; the remaining symbols are shuffled by a Keystream seeded with
// the passphrase's key material, so the same inputs always produce the same
// key.
func DeriveKey(passphrase, keyword string, mode lc4.Mode, policy KeyPolicy) (string, error) {
	seed, err := EffectiveKeyMaterial(passphrase, mode, policy)
	if err != nil {
		return "", err
	}
	return lc4.GenerateKey(NewKeystream(seed), keyword, mode)
}
