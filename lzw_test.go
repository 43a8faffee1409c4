package lzjs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLZW_RoundTrip(t *testing.T) {
	opts := DefaultLZWOptions()
	cases := []string{
		"",
		"a",
		"aaaa",
		"abababababab",
		"The quick brown fox jumps over the lazy dog",
		strings.Repeat("banana", 40),
	}
	for _, s := range cases {
		encoded, err := lzwEncode([]rune(s), opts, 0)
		require.NoError(t, err)
		decoded := lzwDecode([]rune(encoded), opts)
		assert.Equal(t, s, string(decoded), "round-trip failed for %q", s)
	}
}

func TestLZW_KwKwKCase(t *testing.T) {
	// "ababab...a" with the pattern wired to force the classic LZW decoder
	// edge case where an emitted code is not yet present in the decoder's
	// dictionary (KwKwK): decode must reconstruct it as prev + prev[0].
	opts := DefaultLZWOptions()
	s := "abab" + strings.Repeat("ab", 30) + "a"

	encoded, err := lzwEncode([]rune(s), opts, 0)
	require.NoError(t, err)
	assert.Equal(t, s, string(lzwDecode([]rune(encoded), opts)))
}

func TestLZW_ASCIIOptionsRoundTrip(t *testing.T) {
	opts := asciiLZWOptions()
	s := "Hello, world! This is a plain ASCII payload."

	encoded, err := lzwEncode([]rune(s), opts, 0)
	require.NoError(t, err)
	assert.Equal(t, s, string(lzwDecode([]rune(encoded), opts)))
}

func TestLZW_BudgetExceeded(t *testing.T) {
	s := strings.Repeat("incompressible entropy like content here ", 10)
	_, err := lzwEncode([]rune(s), DefaultLZWOptions(), 1)
	assert.ErrorIs(t, err, errBudgetExceeded)
}

func TestLZW_CodeSpaceExhaustion(t *testing.T) {
	// codeMax is reached well before input ends; encoding must still
	// succeed (new phrases simply stop being registered) and decode must
	// still round-trip using only the dictionary entries learned before
	// the cap.
	opts := LZWOptions{CodeStart: 0x7F, CodeMax: 0x82} // tiny dictionary: 3 codes
	require.NoError(t, opts.validate())

	s := strings.Repeat("xyz", 500)
	encoded, err := lzwEncode([]rune(s), opts, 0)
	require.NoError(t, err)
	assert.Equal(t, s, string(lzwDecode([]rune(encoded), opts)))
}

func TestLZWOptions_Validate(t *testing.T) {
	assert.NoError(t, LZWOptions{CodeStart: 0x7F, CodeMax: 0xFF}.validate())
	assert.ErrorIs(t, LZWOptions{CodeStart: 0xFF, CodeMax: 0xFF}.validate(), ErrInvalidCodeRange)
	assert.ErrorIs(t, LZWOptions{CodeStart: 0xFF, CodeMax: 0x10}.validate(), ErrInvalidCodeRange)
}
