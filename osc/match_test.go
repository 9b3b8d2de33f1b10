package osc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchWildcardStar(t *testing.T) {
	require.True(t, Match("/colour/b*", "/colour/blue"))
	require.False(t, Match("/colour/b*", "/colour/red"))
}

func TestMatchStarDoesNotCrossSlash(t *testing.T) {
	require.False(t, Match("/colour/*", "/colour/blue/extra"))
}

func TestMatchBracketNegationRange(t *testing.T) {
	require.True(t, Match("/abc[!d-h]qrst", "/abcXqrst"))
	require.False(t, Match("/abc[!d-h]qrst", "/abcdqrst"))
}

func TestMatchBracketSet(t *testing.T) {
	require.True(t, Match("/abc[abc]qrst", "/abcbqrst"))
	require.False(t, Match("/abc[abc]qrst", "/abcXqrst"))
}

func TestMatchBraceAlternation(t *testing.T) {
	require.True(t, Match("/{in,out,,}puts", "/inputs"))
	require.True(t, Match("/{in,out,,}puts", "/puts"))
	require.False(t, Match("/{in,out,,}puts", "/midputs"))
}

func TestMatchQuestionMark(t *testing.T) {
	require.True(t, Match("/a?c", "/abc"))
	require.False(t, Match("/a?c", "/abbc"))
}

func TestMatchUnbalancedBracketFails(t *testing.T) {
	require.False(t, Match("/abc[def", "/abcdef"))
}

func TestMatchUnbalancedBraceFails(t *testing.T) {
	require.False(t, Match("/abc{def", "/abcdef"))
}

func TestMatchPartialExhaustsInsideBraceAlternative(t *testing.T) {
	require.True(t, MatchPartial("/{inputs,outputs}/fader1", "/inp"))
}

func TestIsLiteral(t *testing.T) {
	require.True(t, IsLiteral("/a/b/c"))
	require.False(t, IsLiteral("/a/b*"))
	require.False(t, IsLiteral("/a/[bc]"))
	require.False(t, IsLiteral("/a/{b,c}"))
}

func TestPartCountAndPartAt(t *testing.T) {
	s := "/foo/bar/baz"
	require.Equal(t, 3, PartCount(s))

	out := make([]byte, 16)
	n, err := PartAt(s, 1, out)
	require.NoError(t, err)
	require.Equal(t, "bar", string(out[:n]))

	_, err = PartAt(s, 5, out)
	require.ErrorIs(t, err, ErrNotEnoughPartsInAddressPattern)
}

func TestMatchPartialEmptyPrefix(t *testing.T) {
	require.True(t, MatchPartial("/inputs", ""))
	require.False(t, MatchPartial("inputs", ""))
}

func TestMatchPartialPrefixOfLongerPattern(t *testing.T) {
	require.True(t, MatchPartial("/colour/blue", "/colour"))
	require.False(t, MatchPartial("/colour/blue", "/colour/blue/extra"))
}

func TestMatchImpliesMatchPartial(t *testing.T) {
	cases := []struct{ pattern, address string }{
		{"/colour/b*", "/colour/blue"},
		{"/abc[!d-h]qrst", "/abcXqrst"},
		{"/{in,out,,}puts", "/inputs"},
	}
	for _, c := range cases {
		if Match(c.pattern, c.address) {
			require.True(t, MatchPartial(c.pattern, c.address))
		}
	}
}
