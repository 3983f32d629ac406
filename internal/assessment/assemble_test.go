package assessment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestAssemble(t *testing.T) {
	schema := CanonicalSchema()
	answers := mustValidate(t, allAnswers(2))
	c := Classify(Normalize(Score(answers, schema), schema))

	result := Assemble(c, answers, schema.Version, fixedClock(t), func() string {
		return "3f1f3a80-0000-4000-8000-000000000001"
	})

	require.Equal(t, "3f1f3a80-0000-4000-8000-000000000001", result.ResultID)
	require.Equal(t, time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC), result.CreatedAt)
	require.Equal(t, 1, result.SchemaVersion)
	require.Equal(t, c, result.Classification)
	require.Equal(t, answers, result.Answers)
}

func TestAssembleCopiesAnswers(t *testing.T) {
	schema := CanonicalSchema()
	answers := mustValidate(t, allAnswers(3))
	c := Classify(Normalize(Score(answers, schema), schema))

	result := Assemble(c, answers, schema.Version, fixedClock(t), func() string { return "id-1" })
	answers[0] = 5
	require.Equal(t, 3, result.Answers[0])
}

func TestAssembledResultJSONRoundTrip(t *testing.T) {
	schema := CanonicalSchema()
	answers := mustValidate(t, []int{
		5, 4, 3, 2, 1, 5, 4, 3, 2, 1,
		5, 4, 3, 2, 1, 5, 4, 3, 2, 1,
		5, 4, 3, 2, 1, 5, 4, 3, 2, 1,
	})
	c := Classify(Normalize(Score(answers, schema), schema))
	result := Assemble(c, answers, schema.Version, fixedClock(t), func() string { return "id-rt" })

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded AssembledResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, result.ResultID, decoded.ResultID)
	require.True(t, result.CreatedAt.Equal(decoded.CreatedAt))
	require.Equal(t, result.SchemaVersion, decoded.SchemaVersion)
	require.Equal(t, result.Classification, decoded.Classification)
	require.Equal(t, result.Answers, decoded.Answers)
}
