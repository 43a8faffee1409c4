// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package main

import (
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalFlags holds the flags shared by every subcommand.
type globalFlags struct {
	base64   bool
	maxBytes int
	verbose  bool
	out      string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "lzjsc",
		Short:         "Compress and decompress text with the lzjs printable codec",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().BoolVar(&flags.base64, "base64", false, "wrap payloads in RFC-4648 base64")
	root.PersistentFlags().IntVar(&flags.maxBytes, "max-bytes", 0, "compression byte budget (0 = the input's UTF-8 byte length)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log tag selection and fallback decisions")
	root.PersistentFlags().StringVarP(&flags.out, "out", "o", "", "write output to this path instead of stdout")

	root.AddCommand(
		newCompressCmd(flags),
		newDecompressCmd(flags),
		newRoundtripCmd(flags),
	)

	return root
}

// newLogger builds a console-writer zerolog.Logger: a colorized,
// TTY-aware writer where go-isatty decides whether go-colorable's
// Windows-safe writer should emit ANSI color.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        colorable.NewColorable(os.Stderr),
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
