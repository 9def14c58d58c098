package lc4_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"lc4riot/lc4"
)

func TestEncrypt_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings lc4.Settings
		want     error
	}{
		{
			name:     "no key",
			settings: lc4.Settings{Message: "hi"},
			want:     lc4.ErrMissingKey,
		},
		{
			name:     "duplicate symbol in full lc4 key",
			settings: lc4.Settings{Message: "hi", Key: "rruoq8_slktcf7h9xbj#vg24m5ie6ad3ynpw"},
			want:     lc4.ErrDuplicateKeySymbol,
		},
		{
			name:     "duplicate symbol in full ls47 key",
			settings: lc4.Settings{Mode: lc4.Extended, Message: "hi", Key: "00cdsgj:74('bk6m!nxlq23-*wae.v89p?/_5zfhr1uo+),ty"},
			want:     lc4.ErrDuplicateKeySymbol,
		},
		{
			name:     "nonce too short",
			settings: lc4.Settings{Message: "hi", Key: primaryKey, Nonce: "abc"},
			want:     lc4.ErrNonceTooShort,
		},
		{
			name:     "nonce outside alphabet",
			settings: lc4.Settings{Message: "hi", Key: primaryKey, Nonce: "abcdef!"},
			want:     lc4.ErrInvalidNonce,
		},
		{
			name:     "signature too short",
			settings: lc4.Settings{Message: "hi", Key: primaryKey, Signature: "#duck"},
			want:     lc4.ErrSignatureTooShort,
		},
		{
			name:     "signature outside alphabet",
			settings: lc4.Settings{Message: "hi", Key: primaryKey, Signature: "#RubberDuck"},
			want:     lc4.ErrInvalidSignature,
		},
		{
			name:     "key outside alphabet",
			settings: lc4.Settings{Message: "hi", Key: "Hello"},
			want:     lc4.ErrInvalidKey,
		},
		{
			name:     "key too long",
			settings: lc4.Settings{Message: "hi", Key: primaryKey + "a"},
			want:     lc4.ErrKeyTooLong,
		},
		{
			name:     "empty message",
			settings: lc4.Settings{Key: primaryKey},
			want:     lc4.ErrMissingMessage,
		},
		{
			name:     "message escapes to nothing",
			settings: lc4.Settings{Message: "!!!", Key: primaryKey},
			want:     lc4.ErrMissingMessage,
		},
		{
			name:     "unknown mode",
			settings: lc4.Settings{Mode: lc4.Mode(7), Message: "hi", Key: primaryKey},
			want:     lc4.ErrInvalidMode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ct, err := lc4.Encrypt(tt.settings)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, lc4.ErrValidation)
			require.Empty(t, ct)

			var verr *lc4.ValidationError
			require.True(t, errors.As(err, &verr))
			require.NotEmpty(t, verr.Field)
		})
	}
}

func TestDecrypt_Validation(t *testing.T) {
	t.Parallel()

	_, err := lc4.Decrypt(lc4.Settings{Message: "hi"})
	require.ErrorIs(t, err, lc4.ErrMissingKey)

	_, err = lc4.Decrypt(lc4.Settings{Message: "hi", Key: "ll6mxhzsd2y3bqrij7onkgav#w9pect8f4_u"})
	require.ErrorIs(t, err, lc4.ErrDuplicateKeySymbol)

	_, err = lc4.Decrypt(lc4.Settings{Mode: lc4.Extended, Message: "hi", Key: "440e38)1xvn6bk2,-w'rt(dgl/mfq_!a+husyz795?j:ipc.o"})
	require.ErrorIs(t, err, lc4.ErrDuplicateKeySymbol)

	// Ciphertext is not escaped.
	_, err = lc4.Decrypt(lc4.Settings{Message: "Hi", Key: primaryKey})
	require.ErrorIs(t, err, lc4.ErrInvalidMessage)

	_, err = lc4.DecryptLines(lc4.Settings{Key: primaryKey})
	require.ErrorIs(t, err, lc4.ErrMissingMessage)
}

func TestValidate_Order(t *testing.T) {
	t.Parallel()

	s := lc4.Settings{
		Mode:       lc4.Primary,
		Message:    "hello!",
		HeaderData: "HDR",
		Key:        "rr",
		Nonce:      "a",
		Signature:  "b",
	}
	require.ErrorIs(t, lc4.Validate(s), lc4.ErrInvalidMessage)

	s.Message = "hello"
	require.ErrorIs(t, lc4.Validate(s), lc4.ErrInvalidHeader)

	s.HeaderData = "hdr"
	require.ErrorIs(t, lc4.Validate(s), lc4.ErrNonceTooShort, "a repeating password is accepted")

	s.Nonce = "abcdef"
	require.ErrorIs(t, lc4.Validate(s), lc4.ErrSignatureTooShort)

	s.Signature = "bbbbbbbbbb"
	require.NoError(t, lc4.Validate(s))
}

func TestValidate_Lines(t *testing.T) {
	t.Parallel()

	err := lc4.Validate(lc4.Settings{Lines: []string{"", ""}, Key: primaryKey})
	require.ErrorIs(t, err, lc4.ErrMissingMessage)

	err = lc4.Validate(lc4.Settings{Lines: []string{"ok", "", "NOT"}, Key: primaryKey})
	require.ErrorIs(t, err, lc4.ErrInvalidMessage)
	require.Contains(t, err.Error(), "line 3")

	require.NoError(t, lc4.Validate(lc4.Settings{Lines: []string{"", "ok"}, Key: primaryKey}))
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]lc4.Mode{
		"":         lc4.Primary,
		"lc4":      lc4.Primary,
		"LC4":      lc4.Primary,
		"primary":  lc4.Primary,
		"ls47":     lc4.Extended,
		" LS47 ":   lc4.Extended,
		"Extended": lc4.Extended,
	} {
		got, err := lc4.ParseMode(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := lc4.ParseMode("rot13")
	require.ErrorIs(t, err, lc4.ErrInvalidMode)
	require.ErrorIs(t, err, lc4.ErrValidation)
}
