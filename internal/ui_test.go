package internal

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		size int
		want string
	}{
		{"abcdefghij", 5, "abcde fghij"},
		{"abcdefghijk", 5, "abcde fghij k"},
		{"abc", 5, "abc"},
		{"abcdef", 0, "abcdef"},
		{"", 3, ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Group(tt.in, tt.size, " "), "%q/%d", tt.in, tt.size)
	}
}

func TestStripSpaces(t *testing.T) {
	t.Parallel()

	require.Equal(t, "abcde_fghij", StripSpaces(" abcde \t_fghij\n"))
	require.Equal(t, "i2zqp", StripSpaces(Group("i2zqp", 2, " ")))
}

func TestStyle(t *testing.T) {
	require.Equal(t, "plain", Style("plain", Bold, Blue))

	if _, set := os.LookupEnv("NO_COLOR"); set {
		t.Skip("NO_COLOR is set")
	}
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Style("x", Bold)
	require.True(t, strings.HasPrefix(got, "\x1b["), "%q", got)
	require.Contains(t, got, "x")
	require.Equal(t, "x", Style("x"))
}

func TestBanner(t *testing.T) {
	t.Parallel()

	b := Banner("v1.2.3")
	require.Contains(t, b, "v1.2.3")
	require.Greater(t, strings.Count(b, "\n"), 2)
}
