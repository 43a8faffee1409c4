// SPDX-License-Identifier: MIT
// Copyright (c) 2026 txtzip

package lzjs

import (
	"encoding/base64"
	"errors"

	"github.com/rs/zerolog"
)

// Tag is the one-character prefix identifying which codec produced a
// compressed payload (§4.5).
type Tag rune

const (
	TagLZSS        Tag = 'S'
	TagLZW         Tag = 'W'
	TagLZWOverUTF8 Tag = 'U'
	TagNone        Tag = 'N'
)

// Compress runs the §4.5 dispatch policy over input and returns tag+payload.
// Its only error is ErrUnsupportedEncoding for an Encoding other than
// "utf-8"; otherwise it always succeeds: every fallback terminates in TagNone, which never
// fails a budget check because no-compression costs nothing extra to emit.
func Compress(input string, opts *DispatchOptions) (string, error) {
	if input == "" {
		return "", nil
	}
	if err := opts.validate(); err != nil {
		return "", err
	}
	log := opts.logger()

	units := []rune(input)
	u := byteLength(units)
	n := len(units)

	budget := u
	if opts != nil && opts.MaxBytes > 0 {
		budget = opts.MaxBytes
	}

	switch {
	case u == n:
		log.Debug().Int("bytes", u).Int("units", n).Msg("dispatch: pure ASCII")
		return compressASCII(units, budget, log)

	case u > n && (u*9)/10 < n:
		log.Debug().Int("bytes", u).Int("units", n).Msg("dispatch: mostly ASCII")
		return compressMostlyASCII(units, budget, log)

	default:
		log.Debug().Int("bytes", u).Int("units", n).Msg("dispatch: unicode-heavy")
		return compressUnicodeHeavy(units, budget, log)
	}
}

func compressASCII(units []rune, budget int, log zerolog.Logger) (string, error) {
	if payload, err := lzwEncode(units, asciiLZWOptions(), budget); err == nil {
		return string(TagLZW) + payload, nil
	}
	log.Debug().Msg("dispatch: W over budget, falling back to S")

	if payload, err := compressLZSS(units, &CompressOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + payload, nil
	}
	log.Debug().Msg("dispatch: S over budget, falling back to N")

	return string(TagNone) + string(units), nil
}

func compressMostlyASCII(units []rune, budget int, log zerolog.Logger) (string, error) {
	transcoded := toUTF8(units)
	if payload, err := lzwEncode(transcoded, DefaultLZWOptions(), budget); err == nil {
		return string(TagLZWOverUTF8) + payload, nil
	}
	log.Debug().Msg("dispatch: U over budget, falling back to S")

	if payload, err := compressLZSS(units, &CompressOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + payload, nil
	}
	log.Debug().Msg("dispatch: S over budget, falling back to N")

	return string(TagNone) + string(units), nil
}

func compressUnicodeHeavy(units []rune, budget int, log zerolog.Logger) (string, error) {
	if payload, err := compressLZSS(units, &CompressOptions{MaxBytes: budget}); err == nil {
		return string(TagLZSS) + payload, nil
	}
	log.Debug().Msg("dispatch: S over budget, trying U")

	transcoded := toUTF8(units)
	payload, err := lzwEncode(transcoded, DefaultLZWOptions(), budget)
	if err == nil && byteLength([]rune(payload)) <= budget {
		return string(TagLZWOverUTF8) + payload, nil
	}
	log.Debug().Msg("dispatch: U over budget or its UTF-8 length exceeds the budget, falling back to N")

	return string(TagNone) + string(units), nil
}

// Decompress reverses Compress (§4.5 "Decompress"). An input whose first
// character is not a recognized tag is returned unchanged, and the empty
// string maps to the empty string.
func Decompress(input string) string {
	if input == "" {
		return ""
	}

	units := []rune(input)
	tag := Tag(units[0])
	payload := units[1:]

	switch tag {
	case TagLZSS:
		return string(decompressLZSS(payload))
	case TagLZW:
		return string(lzwDecode(payload, asciiLZWOptions()))
	case TagLZWOverUTF8:
		decoded := lzwDecode(payload, DefaultLZWOptions())
		return string(toUTF16(decoded))
	case TagNone:
		return string(payload)
	default:
		return input
	}
}

// CompressToBase64 is base64(utf8(compress(input))) (§6), using the
// standard RFC-4648 alphabet with padding — stdlib encoding/base64 is the
// correct tool here since §6 calls for byte-for-byte RFC-4648 compliance
// with no custom alphabet or framing, see DESIGN.md.
func CompressToBase64(input string, opts *DispatchOptions) (string, error) {
	compressed, err := Compress(input, opts)
	if err != nil {
		return "", err
	}
	units := toUTF8([]rune(compressed))
	raw := make([]byte, len(units))
	for i, u := range units {
		raw[i] = byte(u)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecompressFromBase64 is decompress(utf16(base64Decode(input))).
// Non-alphabet bytes in input are skipped before decoding, matching §6's
// "Decoder skips non-alphabet bytes".
func DecompressFromBase64(input string) (string, error) {
	clean := make([]byte, 0, len(input))
	for _, r := range input {
		if isBase64Alphabet(r) {
			clean = append(clean, byte(r))
		}
	}

	trimmed := trimBase64Padding(string(clean))
	raw, err := base64.StdEncoding.DecodeString(trimmed + base64Padding(len(trimmed)))
	if err != nil {
		return "", errors.New("lzjs: invalid base64 payload")
	}

	units := make([]rune, len(raw))
	for i, b := range raw {
		units[i] = rune(b)
	}
	return Decompress(string(toUTF16(units))), nil
}

func isBase64Alphabet(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '+' || r == '/' || r == '=':
		return true
	}
	return false
}

func trimBase64Padding(s string) string {
	for len(s) > 0 && s[len(s)-1] == '=' {
		s = s[:len(s)-1]
	}
	return s
}

// base64Padding returns the "=" padding needed for a base64 string of the
// given length after its padding was stripped, re-deriving canonical
// padding after non-alphabet noise has been removed.
func base64Padding(n int) string {
	switch n % 4 {
	case 2:
		return "=="
	case 3:
		return "="
	default:
		return ""
	}
}
