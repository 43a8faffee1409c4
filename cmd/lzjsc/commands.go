// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/txtzip/lzjs"
)

func newCompressCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compress [file...]",
		Short: "Compress stdin or the named files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(flags, args, func(log zerolog.Logger, input string) (string, error) {
				opts := &lzjs.DispatchOptions{Encoding: "utf-8", Logger: log, MaxBytes: flags.maxBytes}
				if flags.base64 {
					return lzjs.CompressToBase64(input, opts)
				}
				return lzjs.Compress(input, opts)
			})
		},
	}
}

func newDecompressCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress [file...]",
		Short: "Decompress stdin or the named files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(flags, args, func(_ zerolog.Logger, input string) (string, error) {
				// Drop the newline that writeOutput appends after a payload.
				input = strings.TrimSuffix(input, "\n")
				if flags.base64 {
					return lzjs.DecompressFromBase64(input)
				}
				return lzjs.Decompress(input), nil
			})
		},
	}
}

func newRoundtripCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip [file...]",
		Short: "Compress then decompress, reporting ratio and match",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.verbose)

			return runJobs(flags, args, func(_ zerolog.Logger, input string) (string, error) {
				compressed, err := lzjs.Compress(input, &lzjs.DispatchOptions{Encoding: "utf-8", Logger: log, MaxBytes: flags.maxBytes})
				if err != nil {
					return "", err
				}
				roundTripped := lzjs.Decompress(compressed)

				matched := roundTripped == input
				ratio := 0.0
				if len(input) > 0 {
					ratio = float64(len(compressed)) / float64(len(input))
				}

				report := fmt.Sprintf("match=%t ratio=%.3f original_bytes=%d compressed_bytes=%d",
					matched, ratio, len(input), len(compressed))
				if !matched {
					log.Error().Str("report", report).Msg("roundtrip mismatch")
				} else {
					log.Info().Str("report", report).Msg("roundtrip ok")
				}
				return report, nil
			})
		},
	}
}

func runJobs(flags *globalFlags, paths []string, work func(zerolog.Logger, string) (string, error)) error {
	log := newLogger(flags.verbose)

	if len(paths) > 1 && flags.out != "" {
		return fmt.Errorf("--out cannot be combined with multiple input files")
	}

	if len(paths) == 0 {
		input, err := readAll(os.Stdin)
		if err != nil {
			return err
		}
		out, err := work(log, input)
		if err != nil {
			return err
		}
		return writeOutput(flags, out)
	}

	pool := newWorkerPool(len(paths))

	results := make([]jobResult, len(paths))
	for i, p := range paths {
		i, p := i, p
		pool.submit(func() {
			input, err := readFile(p)
			if err != nil {
				results[i] = jobResult{err: err}
				return
			}
			out, err := work(log, input)
			results[i] = jobResult{output: out, err: err}
		})
	}
	pool.wait()

	for i, r := range results {
		if r.err != nil {
			return fmt.Errorf("%s: %w", paths[i], r.err)
		}
		if err := writeOutput(flags, r.output); err != nil {
			return err
		}
	}
	return nil
}

func readAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func writeOutput(flags *globalFlags, s string) error {
	if flags.out == "" {
		_, err := fmt.Println(s)
		return err
	}
	return os.WriteFile(flags.out, []byte(s+"\n"), 0o644)
}
