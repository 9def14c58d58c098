package internal

import (
	"fmt"
	"io"

	"lc4riot/lc4"
)

// SelfTestOptions configures RunSelfTest.
//   - Rounds: number of sessions to run (default 8)
//   - Rand:   randomness for keys, nonces and messages
//   - Out:    where the per-round report is written
type SelfTestOptions struct {
	Rounds int
	Rand   io.Reader
	Out    io.Writer
}

// RunSelfTest runs randomized encrypt/decrypt round trips and returns the
// number of failed rounds. Rounds alternate between the two modes and
// between full keys and password keys; every round uses a nonce, header
// data and a signature, and checks both the single-string and the multiline
// form.
func RunSelfTest(opts SelfTestOptions) int {
	rounds := opts.Rounds
	if rounds <= 0 {
		rounds = 8
	}
	failed := 0

	for i := 0; i < rounds; i++ {
		mode := lc4.Primary
		if i%2 == 1 {
			mode = lc4.Extended
		}
		password := (i/2)%2 == 1

		s, err := randomSettings(opts.Rand, mode, password)
		if err == nil {
			err = checkRoundTrip(s)
		}

		kind := "full key"
		if password {
			kind = "password"
		}
		title := fmt.Sprintf("Round %d: %s, %s", i+1, mode, kind)
		fmt.Fprintln(opts.Out, Style(title, Bold, Purple))
		fmt.Fprintf(opts.Out, "  Message:    %s\n", s.Message)
		fmt.Fprintf(opts.Out, "  Nonce:      %s\n", s.Nonce)
		fmt.Fprintf(opts.Out, "  Signature:  %s\n", s.Signature)

		if err != nil {
			failed++
			fmt.Fprintln(opts.Out, Style("  Result: FAILED", Bold, Red))
			fmt.Fprintf(opts.Out, "  %v\n", err)
			continue
		}
		fmt.Fprintln(opts.Out, Style("  Result: PASSED", Bold))
	}

	if rounds > 1 {
		fmt.Fprintf(opts.Out, "%s %d, %s %d\n",
			Style("Total rounds:", Bold), rounds,
			Style("Failed:", Bold), failed)
	}
	return failed
}

func randomSettings(rand io.Reader, mode lc4.Mode, password bool) (lc4.Settings, error) {
	s := lc4.Settings{Mode: mode}
	var err error

	keyLen := len(mode.Alphabet())
	if password {
		keyLen = lc4.MinNonceLength + 4
	}
	// Password keys may repeat symbols, full keys may not.
	if password {
		s.Key, err = lc4.GenerateNonce(rand, keyLen, mode)
	} else {
		s.Key, err = lc4.GenerateKey(rand, "", mode)
	}
	if err != nil {
		return s, err
	}

	if s.Nonce, err = lc4.GenerateNonce(rand, lc4.DefaultNonceLength, mode); err != nil {
		return s, err
	}
	if s.HeaderData, err = lc4.GenerateNonce(rand, lc4.MinNonceLength, mode); err != nil {
		return s, err
	}
	if s.Signature, err = lc4.GenerateNonce(rand, lc4.MinSignatureLength, mode); err != nil {
		return s, err
	}
	s.Message, err = lc4.GenerateNonce(rand, 24, mode)
	return s, err
}

func checkRoundTrip(s lc4.Settings) error {
	if _, err := EncryptVerified(s); err != nil {
		return err
	}

	lines := s
	lines.Lines = []string{s.Message[:8], "", s.Message[8:]}
	lines.Message = ""
	ct, err := EncryptLinesVerified(lines)
	if err != nil {
		return err
	}
	if len(ct) != len(lines.Lines)+1 {
		return fmt.Errorf("multiline: %d ciphertext lines, want %d", len(ct), len(lines.Lines)+1)
	}
	return nil
}
