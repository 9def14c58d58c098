package lc4_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"lc4riot/lc4"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	const msg = "im_about_to_put_the_hammer_down"

	for _, mode := range []lc4.Mode{lc4.Primary, lc4.Extended} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			key, err := lc4.GenerateKey(rand.Reader, "", mode)
			require.NoError(t, err)
			nonce, err := lc4.GenerateNonce(rand.Reader, lc4.DefaultNonceLength, mode)
			require.NoError(t, err)

			cases := []struct {
				name      string
				key       string
				nonce     string
				header    string
				signature string
			}{
				{name: "key only", key: key},
				{name: "password key", key: "hello_world"},
				{name: "nonce", key: key, nonce: nonce},
				{name: "nonce and header", key: key, nonce: nonce, header: "to whom it may concern"},
				{name: "signed", key: key, nonce: nonce, signature: "_signed_by_me"},
				{name: "password, header and signature", key: "hello_world", header: "hdr", signature: "_signed_by_me"},
			}

			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					s := lc4.Settings{
						Mode:       mode,
						Message:    msg,
						Key:        tc.key,
						Nonce:      tc.nonce,
						HeaderData: tc.header,
						Signature:  tc.signature,
					}
					ct, err := lc4.Encrypt(s)
					require.NoError(t, err)
					require.Len(t, ct, len(msg)+len(tc.signature))

					s.Message = ct
					pt, err := lc4.Decrypt(s)
					require.NoError(t, err)
					require.Equal(t, msg+tc.signature, pt)
				})
			}
		})
	}
}

func TestEncrypt_EscapesMessage(t *testing.T) {
	t.Parallel()

	s := lc4.Settings{Message: "Hello World! This is the 10th test!", Key: primaryKey}
	ct, err := lc4.Encrypt(s)
	require.NoError(t, err)

	s.Message = ct
	pt, err := lc4.Decrypt(s)
	require.NoError(t, err)
	require.Equal(t, lc4.EscapeString("Hello World! This is the 10th test!", lc4.Primary), pt)
	require.Equal(t, "hello_world_this_is_the__#th_test", pt)
}

func TestEncrypt_Deterministic(t *testing.T) {
	t.Parallel()

	s := lc4.Settings{
		Mode:       lc4.Extended,
		Message:    "same input, same output",
		Key:        extendedKey,
		Nonce:      "u8:)w5_c!f",
		HeaderData: "v1",
	}
	first, err := lc4.Encrypt(s)
	require.NoError(t, err)
	second, err := lc4.Encrypt(s)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncrypt_NonceChangesCiphertext(t *testing.T) {
	t.Parallel()

	s := lc4.Settings{Message: "attack_at_dawn", Key: primaryKey, Nonce: "nonce_a"}
	a, err := lc4.Encrypt(s)
	require.NoError(t, err)

	s.Nonce = "nonce_b"
	b, err := lc4.Encrypt(s)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestDecrypt_Authentication(t *testing.T) {
	t.Parallel()

	s := lc4.Settings{
		Message:   "im_about_to_put_the_hammer_down",
		Key:       primaryKey,
		Nonce:     "solwbf",
		Signature: "#rubberduck",
	}
	ct, err := lc4.Encrypt(s)
	require.NoError(t, err)

	t.Run("correct signature", func(t *testing.T) {
		t.Parallel()

		d := s
		d.Message = ct
		_, err := lc4.Decrypt(d)
		require.NoError(t, err)
	})

	t.Run("different signature", func(t *testing.T) {
		t.Parallel()

		d := s
		d.Message = ct
		d.Signature = "#rubberduckz"
		pt, err := lc4.Decrypt(d)
		require.ErrorIs(t, err, lc4.ErrAuthentication)
		require.NotErrorIs(t, err, lc4.ErrValidation)
		require.Empty(t, pt)
	})

	t.Run("wrong nonce", func(t *testing.T) {
		t.Parallel()

		d := s
		d.Message = ct
		d.Nonce = "solwbg"
		_, err := lc4.Decrypt(d)
		require.ErrorIs(t, err, lc4.ErrAuthentication)
	})
}

func TestLines_RoundTrip(t *testing.T) {
	t.Parallel()

	msg := []string{"im", "about", "", "to", "put", "the", "hammer", "down"}

	for _, mode := range []lc4.Mode{lc4.Primary, lc4.Extended} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()

			key, err := lc4.GenerateKey(rand.Reader, "", mode)
			require.NoError(t, err)

			s := lc4.Settings{Mode: mode, Lines: msg, Key: key, Nonce: "abcdefgh", Signature: "__signature"}
			ct, err := lc4.EncryptLines(s)
			require.NoError(t, err)
			require.Len(t, ct, len(msg)+1)
			require.Empty(t, ct[2])

			s.Lines = ct
			pt, err := lc4.DecryptLines(s)
			require.NoError(t, err)
			require.Equal(t, append(append([]string{}, msg...), "__signature"), pt)

			s.Signature = "__signaturf"
			_, err = lc4.DecryptLines(s)
			require.ErrorIs(t, err, lc4.ErrAuthentication)
		})
	}
}

func TestLines_MatchSingleString(t *testing.T) {
	t.Parallel()

	lines, err := lc4.EncryptLines(lc4.Settings{Lines: []string{"hello", "world"}, Key: primaryKey, Nonce: "solwbf"})
	require.NoError(t, err)

	single, err := lc4.Encrypt(lc4.Settings{Message: "helloworld", Key: primaryKey, Nonce: "solwbf"})
	require.NoError(t, err)
	require.Equal(t, single, lines[0]+lines[1])
}

func TestObserver(t *testing.T) {
	t.Parallel()

	var steps []lc4.Step
	s := lc4.Settings{
		Message:    "hello",
		Key:        primaryKey,
		Nonce:      "solwbf",
		HeaderData: "hdr",
		Signature:  "#rubberduck",
		Observer:   func(st lc4.Step) { steps = append(steps, st) },
	}
	traced, err := lc4.Encrypt(s)
	require.NoError(t, err)
	require.Len(t, steps, len("solwbf")+len("hdr")+len("hello")+len("#rubberduck"))

	phases := map[lc4.Phase]int{}
	for _, st := range steps {
		phases[st.Phase]++
		require.Equal(t, lc4.Encrypting, st.Direction)
		require.True(t, st.Before.IsPermutation())
		require.True(t, st.After.IsPermutation())
	}
	require.Equal(t, map[lc4.Phase]int{
		lc4.PhaseNonce:     6,
		lc4.PhaseHeader:    3,
		lc4.PhaseMessage:   5,
		lc4.PhaseSignature: 11,
	}, phases)

	s.Observer = nil
	plain, err := lc4.Encrypt(s)
	require.NoError(t, err)
	require.Equal(t, plain, traced)
}
