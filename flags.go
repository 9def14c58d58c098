package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"lc4riot/internal"
	"lc4riot/lc4"
)

// secretSource is one secret given by value, by file or by prompt. The
// label names the flags: "key" gives --key and --key-file.
type secretSource struct {
	label  string
	value  string
	file   string
	prompt bool
	mask   bool
}

func (s *secretSource) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.value, s.label, "", s.label+" (visible in shell history; prefer --"+s.label+"-file or --prompt)")
	fs.StringVar(&s.file, s.label+"-file", "", "read the "+s.label+" from the first line of this file")
	fs.BoolVar(&s.prompt, "prompt", false, "prompt for the "+s.label+" without echo")
	fs.BoolVar(&s.mask, "mask", true, "with --prompt, show * while typing (--mask=false to disable)")
}

// resolve returns the secret from whichever source was given. Giving more
// than one is a usage error; giving none returns "".
func (s *secretSource) resolve(confirm bool) (string, error) {
	given := 0
	for _, set := range []bool{s.value != "", s.file != "", s.prompt} {
		if set {
			given++
		}
	}
	if given > 1 {
		return "", usageErrorf("use only one of --%s, --%s-file and --prompt", s.label, s.label)
	}

	switch {
	case s.file != "":
		return internal.ReadKeyFile(s.file)
	case s.prompt:
		return internal.PromptForKey(s.label, confirm, s.mask)
	default:
		return s.value, nil
	}
}

// sessionFlags are shared by encrypt and decrypt.
type sessionFlags struct {
	mode      string
	key       secretSource
	derive    bool
	strictKey bool
	nonce     string
	header    string
	signature string
	lines     bool
	input     string
	trace     bool
	qr        bool
}

func (f *sessionFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("session", pflag.ContinueOnError)
	fs.StringVarP(&f.mode, "mode", "m", "", "cipher mode: lc4 (6x6) or ls47 (7x7); default from config")
	f.key = secretSource{label: "key"}
	f.key.register(fs)
	fs.BoolVar(&f.derive, "derive", false, "treat the key as a passphrase and derive a full key with Argon2id")
	fs.BoolVar(&f.strictKey, "strict-key", false, "reject password keys shorter than the full alphabet")
	fs.StringVar(&f.nonce, "nonce", "", "nonce to prime the state with (at least 6 symbols)")
	fs.StringVar(&f.header, "header", "", "header data to prime the state with after the nonce")
	fs.StringVar(&f.signature, "signature", "", "signature appended before encryption and checked after decryption (at least 10 symbols)")
	fs.BoolVar(&f.lines, "lines", false, "process input line by line over one continuing state")
	fs.StringVarP(&f.input, "in", "i", "", "read input from this file instead of arguments or stdin")
	fs.BoolVar(&f.trace, "trace", false, "print the grid after every symbol to stderr")
	fs.BoolVar(&f.qr, "qr", false, "also print the result as a QR code to stderr")
	return fs
}

// resolveMode returns the --mode flag when given, else the configured mode.
func resolveMode(cmd *cobra.Command, flag string, cfg internal.Config) (lc4.Mode, error) {
	if cmd.Flags().Changed("mode") {
		return lc4.ParseMode(flag)
	}
	return lc4.ParseMode(cfg.Mode)
}

// settings assembles lc4.Settings from flags and config. The message fields
// are left to the caller.
func (f *sessionFlags) settings(cmd *cobra.Command, a *app, encrypting bool) (lc4.Settings, error) {
	mode, err := resolveMode(cmd, f.mode, a.cfg)
	if err != nil {
		return lc4.Settings{}, err
	}

	key, err := f.key.resolve(encrypting && f.derive)
	if err != nil {
		return lc4.Settings{}, err
	}
	if f.derive {
		key, err = a.deriveKey(cmd, key, "", mode, f.strictKey)
		if err != nil {
			return lc4.Settings{}, err
		}
	} else if key != "" {
		warning, err := internal.EnforceKey(key, mode, a.cfg.KeyPolicy(f.strictKey))
		if err != nil {
			return lc4.Settings{}, err
		}
		if warning != "" {
			a.log.Warnf("%s", warning)
		}
	}

	signature := f.signature
	if !cmd.Flags().Changed("signature") {
		signature = a.cfg.Signature
	}

	s := lc4.Settings{
		Mode:       mode,
		Key:        key,
		Nonce:      f.nonce,
		HeaderData: f.header,
		Signature:  signature,
	}
	if f.trace {
		w := cmd.ErrOrStderr()
		s.Observer = func(step lc4.Step) {
			fmt.Fprintln(w, internal.RenderGrid(step))
		}
	}
	a.log.Debugf("session: mode=%s key=%d symbols nonce=%t header=%t signature=%t",
		mode, len(key), s.Nonce != "", s.HeaderData != "", s.Signature != "")
	return s, nil
}

// readInput returns the message as one string: the arguments joined by
// spaces, else the --in file, else stdin.
func (f *sessionFlags) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if f.input != "" {
			return "", usageErrorf("give the message as arguments or with --in, not both")
		}
		return joinArgs(args), nil
	}
	r, closeFn, err := f.openInput(cmd)
	if err != nil {
		return "", err
	}
	defer closeFn()
	return internal.ReadText(r)
}

// readLines is readInput for --lines: each argument is one line.
func (f *sessionFlags) readLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		if f.input != "" {
			return nil, usageErrorf("give the message as arguments or with --in, not both")
		}
		return args, nil
	}
	r, closeFn, err := f.openInput(cmd)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return internal.ReadLines(r)
}

func (f *sessionFlags) openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read --in: %w", err)
		}
		return file, func() { _ = file.Close() }, nil
	}
	if inputIsTerminal(cmd) {
		return nil, nil, usageErrorf("no input: give a message as arguments, with --in or on stdin")
	}
	return cmd.InOrStdin(), func() {}, nil
}

// printQR writes text as a QR code to stderr when requested.
func printQR(cmd *cobra.Command, enabled bool, text string) error {
	if !enabled {
		return nil
	}
	code, err := internal.RenderQR(text)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.ErrOrStderr(), code)
	return nil
}

// deriveKey stretches passphrase into a full key, showing a spinner while
// the KDF runs.
func (a *app) deriveKey(cmd *cobra.Command, passphrase, keyword string, mode lc4.Mode, strict bool) (string, error) {
	policy := a.cfg.KeyPolicy(strict)
	stop := a.startSpinner(cmd, fmt.Sprintf("Deriving %s key (%s, %d MB)...", mode, policy.KDF, policy.KDFMemMB))
	key, err := internal.DeriveKey(passphrase, keyword, mode, policy)
	stop()
	if err != nil {
		return "", err
	}
	a.log.Infof("derived a full %s key from the passphrase", mode)
	return key, nil
}

// startSpinner shows a spinner on an interactive stderr while a slow step
// runs. Verbose and debug runs log instead. The returned func stops it.
func (a *app) startSpinner(cmd *cobra.Command, message string) func() {
	if a.verbose || a.debug {
		a.log.Infof("%s", message)
		return func() {}
	}
	w := cmd.ErrOrStderr()
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	if internal.ColorEnabled() {
		_ = s.Color("cyan")
	}
	s.Start()
	return s.Stop
}
