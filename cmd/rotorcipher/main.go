// SPDX-License-Identifier: MIT

// Command rotorcipher enciphers and deciphers lowercase text with a rotor
// machine described by a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rotorcipher/config"
	"github.com/katalvlaran/rotorcipher/enigma"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rotorcipher",
		Short: "Rotor machine cipher",
		Long: `rotorcipher runs lowercase text (a-z) through a rotor machine:
a stack of stepping rotors and a reflector, modelled as permutation matrices.

The same pass enciphers and deciphers: run the ciphertext through a machine
set to the same start positions to recover the plaintext.

  rotorcipher init --config machine.yaml
  rotorcipher encrypt --config machine.yaml --text attackatdawn
  rotorcipher decrypt --config machine.yaml --text <ciphertext>
  rotorcipher shift --offset 3 --text hello`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Trace rotor stepping to stderr")

	root.AddCommand(
		newTransformCmd("encrypt", "Encrypt text with the configured machine"),
		newTransformCmd("decrypt", "Decrypt text with the configured machine"),
		newShiftCmd(),
		newInitCmd(),
	)

	return root
}

// newLogger returns a development logger under --verbose and a no-op logger
// otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// newTransformCmd builds encrypt and decrypt. Both run the identical pass
// from the configured start positions.
func newTransformCmd(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			text, _ := cmd.Flags().GetString("text")

			logger, err := newLogger(cmd)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := config.LoadOrDefault(path)
			if err != nil {
				return err
			}
			m, err := cfg.Build(enigma.WithLogger(logger.Named(use)))
			if err != nil {
				return err
			}
			logger.Debug("machine ready",
				zap.String("config", path),
				zap.Int("rotors", m.Len()),
				zap.String("positions", m.PositionLetters()),
			)

			out, err := m.TransformWord(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Machine description; must exist if given (default: built-in three-rotor machine)")
	cmd.Flags().StringP("text", "t", "", "Lowercase text to transform")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Apply a Caesar shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetInt("offset")
			text, _ := cmd.Flags().GetString("text")

			out, err := enigma.Shift(text, offset)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}
	cmd.Flags().IntP("offset", "o", 3, "Shift distance, negative to undo")
	cmd.Flags().StringP("text", "t", "", "Lowercase text to shift")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default machine description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			wrote, err := config.Init(path)
			if err != nil {
				return err
			}
			if !wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, left untouched\n", path)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "machine.yaml", "Where to write the description")

	return cmd
}
