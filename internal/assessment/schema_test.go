package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalSchemaShape(t *testing.T) {
	schema := CanonicalSchema()
	require.Equal(t, 1, schema.Version)
	require.Equal(t, 30, schema.QuestionCount())

	// 题号 1..30 连续
	for i, q := range schema.Questions {
		require.Equal(t, i+1, q.Number)
		require.NotEmpty(t, q.Content)
	}
}

func TestCanonicalSchemaTypeCounts(t *testing.T) {
	schema := CanonicalSchema()

	expected := map[ConstitutionType]int{
		Peace:          4,
		QiDeficiency:   4,
		YangDeficiency: 4,
		YinDeficiency:  4,
		PhlegmDamp:     3,
		DampHeat:       3,
		BloodStasis:    3,
		QiDepression:   3,
		Special:        2,
	}
	total := 0
	for typ, count := range expected {
		require.Equal(t, count, schema.TypeCount(typ), "type %s", typ.Code())
		total += count
	}
	require.Equal(t, 30, total)
}

func TestCanonicalSchemaAllDirect(t *testing.T) {
	// v1 全部正向计分；反向题进入 v2 前这里必须保持
	for _, q := range CanonicalSchema().Questions {
		require.Equal(t, Direct, q.Polarity, "question %d", q.Number)
	}
}

func TestAnswerOptions(t *testing.T) {
	require.Len(t, AnswerOptions, 5)
	require.Equal(t, "没有", AnswerOptions[1])
	require.Equal(t, "总是", AnswerOptions[5])
}
