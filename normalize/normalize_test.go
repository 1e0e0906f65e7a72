package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		raw      string
		expected string
	}{
		{"() => value(Closure).Count > 0", "Count > 0"},
		{"() => Not(x.IsValid())", "!(x.IsValid())"},
		{"Not(Not(flag))", "!(!(flag))"},
		{"() => value(*main.queue).Items().Len() == 0", "ItemsLen() == 0"},
		{"() => (value(A).X && value(B).Y)", "(X && Y)"},
		{"() => 1 == 1", "1 == 1"},
		{"   ", ""},
		{"", ""},
		// accepted limitation: no word boundaries around "Not"
		{"() => value(Closure).NotifyFlag", "!ifyFlag"},
	} {
		t.Run(tc.raw, func(t *testing.T) {
			require.Equal(t, tc.expected, Normalize(tc.raw))
		})
	}
}

func TestNormalizeRemovesAllArtifacts(t *testing.T) {
	raw := "() => Not(value(a).b().c && value(d).e().f)"
	result := Normalize(raw)
	require.NotContains(t, result, "value(")
	require.NotContains(t, result, "().")
	require.NotContains(t, result, "() =>")
	require.NotContains(t, result, "Not")
	require.Equal(t, "!(bc && ef)", result)
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := "() => Not(value(Closure).Ready) && value(Closure).Count > 0"
	first := Normalize(raw)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Normalize(raw))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{
		"() => value(Closure).Count > 0",
		"() => Not(x.IsValid())",
		"Not(Not(flag))",
	} {
		once := Normalize(raw)
		require.Equal(t, once, Normalize(once), raw)
	}
}

func TestNormalizeTrimIsLast(t *testing.T) {
	// the leading whitespace only appears after the prefix is stripped
	raw := "value(Closure).   Count > 0"
	require.Equal(t, "   Count > 0", DefaultRules.Apply(raw))
	require.Equal(t, "Count > 0", Normalize(raw))

	trimmedFirst := DefaultRules.Apply(strings.TrimSpace(raw))
	require.NotEqual(t, Normalize(raw), trimmedFirst)
}

func TestRulesOrder(t *testing.T) {
	// "Not" must be handled after the lambda header is gone, otherwise the
	// custom rule below would see "!" instead of "Not".
	custom := New(
		RuleLambdaHeader,
		MustRule(`^ Not\(`, "NOT("),
		RuleNot,
	)
	require.Equal(t, "NOT(x)", custom.Normalize("() => Not(x)"))

	reversed := New(
		RuleNot,
		MustRule(`^ Not\(`, "NOT("),
		RuleLambdaHeader,
	)
	require.Equal(t, "!(x)", reversed.Normalize("() => Not(x)"))
}

func TestRulesString(t *testing.T) {
	s := DefaultRules.String()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, len(DefaultRules))
	require.True(t, strings.HasPrefix(lines[0], "1: "))
	require.Contains(t, lines[3], `"Not" -> "!"`)
}

func TestRuleNilPattern(t *testing.T) {
	require.Equal(t, "abc", Rule{}.Apply("abc"))
	require.Equal(t, "abc", New().Normalize("  abc "))
}

func TestFunc(t *testing.T) {
	var n Interface = Func(strings.ToUpper)
	require.Equal(t, "ABC", n.Normalize("abc"))
}
