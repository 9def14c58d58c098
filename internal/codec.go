package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input must be valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadText reads all of r and normalizes it for the cipher:
//  1. Reject invalid UTF-8.
//  2. Strip a leading UTF-8 BOM.
//  3. Convert CRLF and lone CR line endings to LF.
//  4. Drop a single trailing newline.
//
// Everything else, including blank lines, is kept.
func ReadText(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	b = bytes.TrimPrefix(b, utf8BOM)

	s := string(b)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSuffix(s, "\n"), nil
}

// ReadLines reads r with ReadText and splits it into lines. Empty input
// yields an empty, non-nil slice.
func ReadLines(r io.Reader) ([]string, error) {
	s, err := ReadText(r)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, "\n"), nil
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// ReadKeyFile returns the first line of the file at path with surrounding
// whitespace removed.
func ReadKeyFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	defer f.Close()

	s, err := ReadText(f)
	if err != nil {
		return "", fmt.Errorf("key file %s: %w", path, err)
	}
	key, _, _ := strings.Cut(s, "\n")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("key file %s is empty", path)
	}
	return key, nil
}
