package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lc4riot/internal"
)

const configOptional = "config-optional"

// app carries what PersistentPreRunE resolves for every command.
type app struct {
	configPath string
	noColor    bool
	verbose    bool
	debug      bool

	cfg internal.Config
	log internal.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lc4riot",
		Short: "LC4 / LS47 hand cipher",
		Long: `lc4riot encrypts and decrypts text with the LC4 (6x6) and LS47 (7x7)
hand ciphers, generates keys and nonces, and escapes free text into the
cipher alphabets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), internal.Banner(version))
			fmt.Fprintln(cmd.OutOrStdout())
			_ = cmd.Help()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/lc4riot/config.toml)")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&a.debug, "debug", "d", false, "enable debug output")

	root.AddCommand(
		newEncryptCmd(a),
		newDecryptCmd(a),
		newKeygenCmd(a),
		newNonceCmd(a),
		newEscapeCmd(a),
		newSelfTestCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.log = internal.Logger{Verbose: a.verbose, Debug: a.debug, Out: cmd.ErrOrStderr()}

	// Commands annotated with configOptional run against defaults when the
	// file named by --config does not exist yet.
	path, missingOK := a.configPath, cmd.Annotations[configOptional] != ""
	if path == "" {
		p, err := internal.DefaultConfigPath()
		if err != nil {
			a.log.Debugf("no user config directory: %v", err)
			a.cfg = internal.DefaultConfig()
			a.applyColor()
			return nil
		}
		path, missingOK = p, true
	}
	cfg, err := internal.LoadConfig(path, missingOK)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.configPath = path
	a.applyColor()
	a.log.Debugf("config %s: mode=%s nonce_length=%d kdf=%s", path, cfg.Mode, cfg.NonceLength, cfg.KDF.Name)
	return nil
}

// applyColor enables color for terminals unless --no-color, NO_COLOR or the
// config file says otherwise.
func (a *app) applyColor() {
	on := term.IsTerminal(int(syscall.Stdout)) && term.IsTerminal(int(syscall.Stderr))
	if forced, err := a.cfg.ColorMode(); err == nil && forced != nil {
		on = *forced
	}
	if a.noColor {
		on = false
	}
	internal.SetColorEnabled(on)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// inputIsTerminal reports whether the command reads from an interactive
// terminal, in which case it does not wait for piped input.
func inputIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
