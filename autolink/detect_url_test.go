package autolink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// helper to run matchURL at the first ':' of the input
func urlAt(t *testing.T, input string, flags Flags) (span, bool) {
	t.Helper()
	pos := strings.IndexByte(input, ':')
	require.GreaterOrEqual(t, pos, 0)
	return matchURL([]byte(input), pos, flags)
}

func TestMatchURL_HappyPath(t *testing.T) {
	input := "Visit http://example.com."

	sp, ok := urlAt(t, input, 0)
	require.True(t, ok)
	require.Equal(t, 6, sp.start)
	require.Equal(t, "http://example.com", input[sp.start:sp.end])
}

func TestMatchURL_ColonWithoutSlashes_Declines(t *testing.T) {
	input := "time: 10.30 sharp"

	_, ok := urlAt(t, input, 0)
	require.False(t, ok)
}

func TestMatchURL_UnsafeScheme_Declines(t *testing.T) {
	input := "click javascript://x.com now"

	_, ok := urlAt(t, input, 0)
	require.False(t, ok)
}

func TestMatchURL_ShortDomain_RequiresFlag(t *testing.T) {
	input := "go to http://localhost now"

	_, ok := urlAt(t, input, 0)
	require.False(t, ok)

	sp, ok := urlAt(t, input, ShortDomains)
	require.True(t, ok)
	require.Equal(t, "http://localhost", input[sp.start:sp.end])
}

func TestMatchURL_BalancedParens_Kept(t *testing.T) {
	input := "http://www.pokemon.com/Pikachu_(Electric) bar"

	sp, ok := urlAt(t, input, 0)
	require.True(t, ok)
	require.Equal(t, "http://www.pokemon.com/Pikachu_(Electric)", input[sp.start:sp.end])
}

func TestMatchURL_PathQueryFragment_Captured(t *testing.T) {
	input := "see https://example.com/a/b?q=1&x=2#frag and more"

	sp, ok := urlAt(t, input, 0)
	require.True(t, ok)
	require.Equal(t, "https://example.com/a/b?q=1&x=2#frag", input[sp.start:sp.end])
}

func TestMatchURL_TruncatesAtMarkup(t *testing.T) {
	input := "http://example.com<br>"

	sp, ok := urlAt(t, input, 0)
	require.True(t, ok)
	require.Equal(t, "http://example.com", input[sp.start:sp.end])
}
