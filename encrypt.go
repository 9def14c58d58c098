package main

import (
	crand "crypto/rand"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lc4riot/internal"
	"lc4riot/lc4"
)

func newEncryptCmd(a *app) *cobra.Command {
	var (
		f           sessionFlags
		randomNonce bool
		group       int
	)

	cmd := &cobra.Command{
		Use:   "encrypt [message ...]",
		Short: "Encrypt a message",
		Long: `Encrypt a message given as arguments, with --in or on stdin.

The message is escaped first: letters are lowercased, whitespace becomes '_'
and symbols outside the alphabet are dropped (lc4 also maps 0 to '#' and 1
to '_'). Every ciphertext is decrypted again and compared before it is
printed.`,
		Example: `  lc4riot encrypt --key-file lc4.key --nonce solwbf "Im about to put the hammer down"
  lc4riot encrypt --mode ls47 --prompt --derive --random-nonce --signature "#rubberduck" < letter.txt
  lc4riot encrypt --lines --key-file lc4.key --in poem.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings(cmd, a, true)
			if err != nil {
				return err
			}
			if randomNonce {
				if f.nonce != "" {
					return usageErrorf("use either --nonce or --random-nonce")
				}
				s.Nonce, err = lc4.GenerateNonce(crand.Reader, a.cfg.NonceLength, s.Mode)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", internal.Style("nonce:", internal.Bold), s.Nonce)
			}

			var out []string
			if f.lines {
				if s.Lines, err = f.readLines(cmd, args); err != nil {
					return err
				}
				out, err = internal.EncryptLinesVerified(s)
			} else {
				if s.Message, err = f.readInput(cmd, args); err != nil {
					return err
				}
				var ct string
				ct, err = internal.EncryptVerified(s)
				out = []string{ct}
			}
			if err != nil {
				return err
			}
			a.log.Infof("encrypted %d line(s) in %s mode", len(out), s.Mode)

			for i := range out {
				out[i] = internal.Group(out[i], group, " ")
			}
			if err := internal.WriteLines(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return printQR(cmd, f.qr, strings.Join(out, "\n"))
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())
	cmd.Flags().BoolVar(&randomNonce, "random-nonce", false, "generate a nonce (config nonce_length) and print it to stderr")
	cmd.Flags().IntVar(&group, "group", 0, "split the ciphertext into blocks of this many symbols")
	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	var f sessionFlags

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext ...]",
		Short: "Decrypt a ciphertext",
		Long: `Decrypt a ciphertext given as arguments, with --in or on stdin.

Whitespace is removed from the ciphertext (so grouped output decrypts as is);
nothing else is escaped. With --signature the plaintext must end with it,
otherwise decryption fails. The printed plaintext includes the signature.`,
		Example: `  lc4riot decrypt --key-file lc4.key --nonce solwbf --signature "#rubberduck" "i2zqpilr2yqgptltrzx2_9fzlmbo3y8_9pyssx8nf2"
  lc4riot decrypt --lines --key-file lc4.key --signature "#rubberduck" --in poem.lc4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings(cmd, a, false)
			if err != nil {
				return err
			}

			var out []string
			if f.lines {
				lines, err := f.readLines(cmd, args)
				if err != nil {
					return err
				}
				for i := range lines {
					lines[i] = internal.StripSpaces(lines[i])
				}
				s.Lines = lines
				out, err = lc4.DecryptLines(s)
				if err != nil {
					return err
				}
			} else {
				msg, err := f.readInput(cmd, args)
				if err != nil {
					return err
				}
				s.Message = internal.StripSpaces(msg)
				pt, err := lc4.Decrypt(s)
				if err != nil {
					return err
				}
				out = []string{pt}
			}
			if s.Signature != "" {
				a.log.Infof("signature verified")
			}

			if err := internal.WriteLines(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			return printQR(cmd, f.qr, strings.Join(out, "\n"))
		},
	}

	cmd.Flags().AddFlagSet(f.flagSet())
	return cmd
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
