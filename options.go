// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

import "github.com/rs/zerolog"

// CompressOptions configures a single LZSS compress call (§6: maxBytes,
// onData, onEnd). MaxBytes of 0 means unbounded. OnData, if set, is called
// once with the full emitted payload before Compress returns; OnEnd, if
// set, is called after OnData. Neither callback affects the returned
// string — they exist purely as the chunk-observation hook §5 allows,
// not as a requirement for correctness.
type CompressOptions struct {
	MaxBytes int
	OnData   func(chunk string)
	OnEnd    func()
}

// LZWOptions configures the LZW codec's code range (§4.4). CodeStart is the
// highest literal code point (dictionary codes start at CodeStart+1);
// CodeMax bounds how large the dictionary may grow.
type LZWOptions struct {
	CodeStart int
	CodeMax   int
}

// DefaultLZWOptions returns the codec's default range: codeStart 0xFF,
// codeMax 0xFFFF. Literals must not exceed 0xFF (the byte values of a
// UTF-8 transcode); larger values decode as dictionary codes.
func DefaultLZWOptions() LZWOptions {
	return LZWOptions{CodeStart: 0xFF, CodeMax: 0xFFFF}
}

// asciiLZWOptions is the range the dispatcher uses for pure-ASCII input
// under the W tag (§4.5): codeStart 0x7F covers every ASCII literal.
func asciiLZWOptions() LZWOptions {
	return LZWOptions{CodeStart: 0x7F, CodeMax: 0x7FF}
}

func (o LZWOptions) validate() error {
	if o.CodeMax <= o.CodeStart {
		return ErrInvalidCodeRange
	}
	return nil
}

// DispatchOptions configures Compress/CompressToBase64 (§6's "public
// configuration (dispatcher)"). Encoding is reserved and must be "utf-8" if
// set at all. Logger receives debug events describing the input class
// chosen and each fallback taken; nil options use a disabled logger, so
// library callers pay nothing unless they opt in.
type DispatchOptions struct {
	Encoding string
	Logger   zerolog.Logger

	// MaxBytes, if nonzero, overrides the dispatcher's default budget of
	// "no larger than the input" for every fallback chain. A tighter
	// budget than the input size makes BUDGET_EXCEEDED fallbacks (down to
	// the N tag) reachable on inputs that would otherwise compress fine.
	MaxBytes int
}

// DefaultDispatchOptions returns options with Encoding "utf-8" and logging
// disabled.
func DefaultDispatchOptions() *DispatchOptions {
	return &DispatchOptions{Encoding: "utf-8", Logger: zerolog.Nop()}
}

func (o *DispatchOptions) validate() error {
	if o == nil {
		return nil
	}
	if o.Encoding != "" && o.Encoding != "utf-8" {
		return ErrUnsupportedEncoding
	}
	return nil
}

func (o *DispatchOptions) logger() zerolog.Logger {
	if o == nil {
		return zerolog.Nop()
	}
	return o.Logger
}
