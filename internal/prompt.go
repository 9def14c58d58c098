package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a prompt is requested without a terminal
// on stdin.
var ErrNotTerminal = errors.New("prompt requires an interactive terminal")

// PromptForKey securely prompts for a secret on stderr. With confirm set the
// secret is asked for twice and both entries must match.
// If mask is true, input is read in raw mode with '*' echo; otherwise it uses
// the terminal's hidden input (no echo) via ReadPassword.
// Errors are concise and never echo the secret.
func PromptForKey(label string, confirm, mask bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	read := func(prompt string) (string, error) {
		if mask {
			return readMaskedTerminal(fd, prompt)
		}
		fmt.Fprint(os.Stderr, "\r"+prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read %s", label)
		}
		return string(b), nil
	}

	k1, err := read("Enter " + label + ": ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return k1, nil
	}
	k2, err := read("Re-enter " + label + ": ")
	if err != nil {
		return "", err
	}
	if k1 != k2 {
		return "", fmt.Errorf("%ss do not match", label)
	}
	return k1, nil
}

// readMaskedTerminal switches fd to raw mode for one masked read and
// restores it afterwards, also on SIGINT/SIGTERM.
func readMaskedTerminal(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	return readMasked(os.Stdin, os.Stderr), nil
}

// readMasked reads one line from r byte by byte, echoing '*' per accepted
// symbol to w. Backspace removes the last symbol; other control bytes are
// ignored. Reading stops at CR, LF or end of input.
func readMasked(r io.Reader, w io.Writer) string {
	var buf []byte
	for {
		var b [1]byte
		n, er := r.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := b[0]
		if ch == '\r' || ch == '\n' {
			fmt.Fprintln(w)
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				// Erase last '*'
				fmt.Fprint(w, "\b \b")
			}
			continue
		}
		if ch < 0x20 {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(w, "*")
	}
	return string(buf)
}
