package lc4

import "errors"

// ErrValidation is matched by every settings validation failure.
var ErrValidation = errors.New("lc4: invalid settings")

// Settings errors, one per rejected input condition.
var (
	// ErrInvalidMode indicates a mode other than lc4 or ls47.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrMissingMessage indicates an empty message.
	ErrMissingMessage = errors.New("message is required")

	// ErrInvalidMessage indicates a message symbol outside the alphabet.
	ErrInvalidMessage = errors.New("message contains invalid characters")

	// ErrInvalidHeader indicates a header data symbol outside the alphabet.
	ErrInvalidHeader = errors.New("header data contains invalid characters")

	// ErrMissingKey indicates an empty key.
	ErrMissingKey = errors.New("key is required")

	// ErrInvalidKey indicates a key symbol outside the alphabet.
	ErrInvalidKey = errors.New("key contains invalid characters")

	// ErrKeyTooLong indicates a key longer than the alphabet.
	ErrKeyTooLong = errors.New("key is longer than the alphabet")

	// ErrDuplicateKeySymbol indicates a full-length key (or a keyword) that
	// repeats a symbol.
	ErrDuplicateKeySymbol = errors.New("key contains duplicate characters")

	// ErrInvalidNonce indicates a nonce symbol outside the alphabet.
	ErrInvalidNonce = errors.New("nonce contains invalid characters")

	// ErrNonceTooShort indicates a nonce shorter than MinNonceLength.
	ErrNonceTooShort = errors.New("nonce is too short")

	// ErrInvalidSignature indicates a signature symbol outside the alphabet.
	ErrInvalidSignature = errors.New("signature contains invalid characters")

	// ErrSignatureTooShort indicates a signature shorter than MinSignatureLength.
	ErrSignatureTooShort = errors.New("signature is too short")
)

// ErrAuthentication is returned by decryption when the plaintext does not end
// with the expected signature.
var ErrAuthentication = errors.New("lc4: invalid signature")

// ErrSymbolNotInAlphabet is returned by the engine for a symbol it cannot
// locate in the grid. Validation and escaping normally rule this out.
var ErrSymbolNotInAlphabet = errors.New("lc4: symbol not in alphabet")

// ValidationError reports which settings field was rejected and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return "lc4: " + e.Err.Error()
}

// Unwrap exposes both the ErrValidation category and the specific cause.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
