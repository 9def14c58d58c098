package lc4

import "fmt"

// Validate checks prepared settings in a fixed order and reports the first
// problem: mode, message, header data, key, nonce, signature. Encrypt and
// Decrypt call it after escaping; it is exported for callers that want to
// check input up front.
func Validate(s Settings) error {
	if !s.Mode.Valid() {
		return &ValidationError{Field: "mode", Err: fmt.Errorf("%w: %v", ErrInvalidMode, s.Mode)}
	}
	if err := validateMessage(s); err != nil {
		return err
	}
	if s.HeaderData != "" && !s.Mode.Contains(s.HeaderData) {
		return &ValidationError{Field: "header data", Err: alphabetHint(ErrInvalidHeader, s.Mode)}
	}
	if err := validateKey(s.Key, s.Mode); err != nil {
		return err
	}
	if s.Nonce != "" {
		if !s.Mode.Contains(s.Nonce) {
			return &ValidationError{Field: "nonce", Err: alphabetHint(ErrInvalidNonce, s.Mode)}
		}
		if len(s.Nonce) < MinNonceLength {
			return &ValidationError{Field: "nonce", Err: fmt.Errorf("%w: need at least %d characters, got %d", ErrNonceTooShort, MinNonceLength, len(s.Nonce))}
		}
	}
	if s.Signature != "" {
		if !s.Mode.Contains(s.Signature) {
			return &ValidationError{Field: "signature", Err: alphabetHint(ErrInvalidSignature, s.Mode)}
		}
		if len(s.Signature) < MinSignatureLength {
			return &ValidationError{Field: "signature", Err: fmt.Errorf("%w: need at least %d characters, got %d", ErrSignatureTooShort, MinSignatureLength, len(s.Signature))}
		}
	}
	return nil
}

func validateMessage(s Settings) error {
	if s.Lines == nil {
		if s.Message == "" {
			return &ValidationError{Field: "message", Err: ErrMissingMessage}
		}
		if !s.Mode.Contains(s.Message) {
			return &ValidationError{Field: "message", Err: alphabetHint(ErrInvalidMessage, s.Mode)}
		}
		return nil
	}

	present := false
	for i, line := range s.Lines {
		if line == "" {
			continue
		}
		present = true
		if !s.Mode.Contains(line) {
			return &ValidationError{Field: "message", Err: fmt.Errorf("%w on line %d; allowed: %s", ErrInvalidMessage, i+1, s.Mode.Alphabet())}
		}
	}
	if !present {
		return &ValidationError{Field: "message", Err: ErrMissingMessage}
	}
	return nil
}

// validateKey accepts a full-length key of distinct symbols or any shorter
// in-alphabet password. Passwords are not checked for repeats or strength.
func validateKey(key string, mode Mode) error {
	n2 := len(mode.Alphabet())
	switch {
	case key == "":
		return &ValidationError{Field: "key", Err: ErrMissingKey}
	case !mode.Contains(key):
		return &ValidationError{Field: "key", Err: alphabetHint(ErrInvalidKey, mode)}
	case len(key) > n2:
		return &ValidationError{Field: "key", Err: fmt.Errorf("%w: %d characters, at most %d", ErrKeyTooLong, len(key), n2)}
	case len(key) == n2 && !distinct(key, mode):
		return &ValidationError{Field: "key", Err: ErrDuplicateKeySymbol}
	}
	return nil
}

func alphabetHint(err error, mode Mode) error {
	return fmt.Errorf("%w; allowed: %s", err, mode.Alphabet())
}
