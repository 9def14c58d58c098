package main

import (
	crand "crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"lc4riot/internal"
	"lc4riot/lc4"
)

func newKeygenCmd(a *app) *cobra.Command {
	var (
		mode       string
		derive     bool
		grid       bool
		qr         bool
		passphrase = secretSource{label: "passphrase"}
	)

	cmd := &cobra.Command{
		Use:   "keygen [keyword]",
		Short: "Generate a full-length key",
		Long: `Generate a full-length key: the optional keyword followed by the rest of
the alphabet in random order. The keyword must not repeat a symbol.

With --derive the order comes from a passphrase stretched with Argon2id
instead of the system random source, so the same passphrase and keyword
always give the same key.`,
		Example: `  lc4riot keygen
  lc4riot keygen --mode ls47 kryptos
  lc4riot keygen --derive --prompt --grid`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMode(cmd, mode, a.cfg)
			if err != nil {
				return err
			}
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			var key string
			if derive {
				pass, err := passphrase.resolve(true)
				if err != nil {
					return err
				}
				key, err = a.deriveKey(cmd, pass, keyword, m, false)
				if err != nil {
					return err
				}
			} else {
				if passphrase.value != "" || passphrase.file != "" || passphrase.prompt {
					return usageErrorf("a passphrase is only used with --derive")
				}
				key, err = lc4.GenerateKey(crand.Reader, keyword, m)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)
			if grid {
				fmt.Fprint(cmd.ErrOrStderr(), internal.RenderKey(key, m))
			}
			return printQR(cmd, qr, key)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&mode, "mode", "m", "", "cipher mode: lc4 (6x6) or ls47 (7x7); default from config")
	fs.BoolVar(&derive, "derive", false, "derive the key from a passphrase instead of the system random source")
	fs.BoolVar(&grid, "grid", false, "also print the key laid out as a grid to stderr")
	fs.BoolVar(&qr, "qr", false, "also print the key as a QR code to stderr")
	passphrase.register(fs)
	return cmd
}

func newNonceCmd(a *app) *cobra.Command {
	var (
		mode   string
		length int
	)

	cmd := &cobra.Command{
		Use:   "nonce",
		Short: "Generate a random nonce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMode(cmd, mode, a.cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = a.cfg.NonceLength
			}
			nonce, err := lc4.GenerateNonce(crand.Reader, length, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nonce)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "cipher mode: lc4 (6x6) or ls47 (7x7); default from config")
	cmd.Flags().IntVarP(&length, "length", "n", lc4.DefaultNonceLength, "nonce length (at least 6); default from config")
	return cmd
}

func newEscapeCmd(a *app) *cobra.Command {
	var (
		mode  string
		input string
	)

	cmd := &cobra.Command{
		Use:   "escape [text ...]",
		Short: "Show how text is escaped into the cipher alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMode(cmd, mode, a.cfg)
			if err != nil {
				return err
			}
			f := sessionFlags{input: input}
			text, err := f.readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), lc4.EscapeString(text, m))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "cipher mode: lc4 (6x6) or ls47 (7x7); default from config")
	cmd.Flags().StringVarP(&input, "in", "i", "", "read text from this file instead of arguments or stdin")
	return cmd
}

func newSelfTestCmd(a *app) *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "self-test",
		Short: "Run randomized encrypt/decrypt round trips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), internal.Style("== Self-test ==", internal.Bold))
			failed := internal.RunSelfTest(internal.SelfTestOptions{
				Rounds: rounds,
				Rand:   crand.Reader,
				Out:    cmd.OutOrStdout(),
			})
			if failed > 0 {
				return fmt.Errorf("self-test: %d of %d rounds failed", failed, rounds)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 8, "number of round trips (alternating modes and key kinds)")
	return cmd
}
