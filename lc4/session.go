package lc4

import (
	"fmt"
	"strings"
)

// Settings configures one Encrypt or Decrypt call. The zero Mode is Primary.
// Nonce, HeaderData and Signature are optional. The string functions read
// Message; the Lines functions read Lines.
type Settings struct {
	Mode       Mode
	Message    string
	Lines      []string
	Key        string
	Nonce      string
	HeaderData string
	Signature  string

	// Observer, when set, is called for every symbol processed, including
	// the nonce and header priming.
	Observer Observer
}

// Encrypt escapes and encrypts s.Message, followed by s.Signature.
func Encrypt(s Settings) (string, error) {
	s.Lines = nil
	s.Message = EscapeString(s.Message, s.Mode)
	s.HeaderData = EscapeString(s.HeaderData, s.Mode)
	if err := Validate(s); err != nil {
		return "", err
	}

	st, err := s.start()
	if err != nil {
		return "", err
	}
	ct, err := st.run(PhaseMessage, Encrypting, s.Message)
	if err != nil {
		return "", err
	}
	sig, err := st.run(PhaseSignature, Encrypting, s.Signature)
	if err != nil {
		return "", err
	}
	return ct + sig, nil
}

// Decrypt decrypts s.Message. With a signature the plaintext must end with
// it; the returned plaintext includes the signature.
func Decrypt(s Settings) (string, error) {
	s.Lines = nil
	s.HeaderData = EscapeString(s.HeaderData, s.Mode)
	if err := Validate(s); err != nil {
		return "", err
	}

	st, err := s.start()
	if err != nil {
		return "", err
	}
	pt, err := st.run(PhaseMessage, Decrypting, s.Message)
	if err != nil {
		return "", err
	}
	if s.Signature != "" && !strings.HasSuffix(pt, s.Signature) {
		return "", ErrAuthentication
	}
	return pt, nil
}

// EncryptLines encrypts every line of s.Lines over one continuing state.
// A signature is encrypted as an extra final line.
func EncryptLines(s Settings) ([]string, error) {
	lines := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = EscapeString(line, s.Mode)
	}
	s.Lines = lines
	s.Message = ""
	s.HeaderData = EscapeString(s.HeaderData, s.Mode)
	if err := Validate(s); err != nil {
		return nil, err
	}

	st, err := s.start()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		ct, err := st.run(PhaseMessage, Encrypting, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, ct)
	}
	if s.Signature != "" {
		sig, err := st.run(PhaseSignature, Encrypting, s.Signature)
		if err != nil {
			return nil, err
		}
		out = append(out, sig)
	}
	return out, nil
}

// DecryptLines decrypts every line of s.Lines over one continuing state.
// With a signature the last decrypted line must equal it.
func DecryptLines(s Settings) ([]string, error) {
	s.Message = ""
	s.HeaderData = EscapeString(s.HeaderData, s.Mode)
	if s.Lines == nil {
		s.Lines = []string{}
	}
	if err := Validate(s); err != nil {
		return nil, err
	}

	st, err := s.start()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(s.Lines))
	for i, line := range s.Lines {
		pt, err := st.run(PhaseMessage, Decrypting, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, pt)
	}
	if s.Signature != "" && out[len(out)-1] != s.Signature {
		return nil, ErrAuthentication
	}
	return out, nil
}

// start builds a fresh state and primes it with the nonce and header data.
func (s Settings) start() (*State, error) {
	st, err := NewState(s.Key, s.Mode)
	if err != nil {
		return nil, err
	}
	st.SetObserver(s.Observer)

	if _, err := st.run(PhaseNonce, Encrypting, s.Nonce); err != nil {
		return nil, err
	}
	if _, err := st.run(PhaseHeader, Encrypting, s.HeaderData); err != nil {
		return nil, err
	}
	return st, nil
}
