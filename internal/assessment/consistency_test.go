package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S7: 问卷阴虚、舌象气虚 → 不一致
func TestCompareDivergent(t *testing.T) {
	v := Compare(YinDeficiency, QiDeficiency)

	require.False(t, v.IsConsistent)
	require.Equal(t, YinDeficiency, v.TestType)
	require.Equal(t, QiDeficiency, v.TongueType)
	require.Equal(t, MessageKeyDivergent, v.MessageKey)
}

func TestCompareConsistent(t *testing.T) {
	for _, typ := range AllConstitutionTypes() {
		v := Compare(typ, typ)
		require.True(t, v.IsConsistent)
		require.Equal(t, MessageKeyConsistent, v.MessageKey)
	}
}

func TestCompareEquivalence(t *testing.T) {
	// is_consistent ⇔ 两标签相等
	for _, a := range AllConstitutionTypes() {
		for _, b := range AllConstitutionTypes() {
			require.Equal(t, a == b, Compare(a, b).IsConsistent)
		}
	}
}
