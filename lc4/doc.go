// Package lc4 implements the LC4 hand cipher and its LS47 extension.
//
// LC4 works on a 6×6 grid holding a permutation of a 36-symbol alphabet; LS47
// uses a 7×7 grid over 49 symbols. Every processed symbol rotates one row and
// one column of the grid and moves a marker, so the keystream depends on all
// previous symbols. Decryption replays the same rotations and stays in lockstep.
//
// Alphabets:
//
//	lc4:  #_23456789abcdefghijklmnopqrstuvwxyz
//	ls47: _abcdefghijklmnopqrstuvwxyz.0123456789,-+*/:?!'()
//
// Keys:
//   - A key of exactly N² distinct symbols fills the grid row by row.
//   - A shorter key is a password: it is folded into the identity grid by
//     rotations. Any in-alphabet password is accepted; short passwords give
//     weak grids.
//
// Basic usage:
//
//	key, err := lc4.GenerateKey(rand.Reader, "", lc4.Primary)
//	if err != nil {
//		return err
//	}
//	nonce, err := lc4.GenerateNonce(rand.Reader, lc4.DefaultNonceLength, lc4.Primary)
//	if err != nil {
//		return err
//	}
//
//	ct, err := lc4.Encrypt(lc4.Settings{
//		Message:   "Meet me at noon",
//		Key:       key,
//		Nonce:     nonce,
//		Signature: "#rubberduck",
//	})
//
//	pt, err := lc4.Decrypt(lc4.Settings{
//		Message:   ct,
//		Key:       key,
//		Nonce:     nonce,
//		Signature: "#rubberduck",
//	})
//	// pt == "meet_me_at_noon#rubberduck"
//
// The nonce and the header data are encrypted first and their output is
// discarded; they only advance the state. The signature is appended to the
// plaintext and checked on decryption, which fails with ErrAuthentication when
// it does not match.
//
// Messages are escaped into the alphabet with EscapeString before encryption.
// Invalid settings are reported as *ValidationError values that match
// ErrValidation with errors.Is.
package lc4
