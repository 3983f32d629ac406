package service

import (
	"context"
	"testing"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestTongueService() (*TongueService, *ConstitutionService) {
	results := repository.NewMemoryResultsRepository()
	records := repository.NewMemoryTongueRecordsRepository()
	ingredients := repository.NewMemoryIngredientsRepository()
	cache := store.NewMemoryKV()
	n := 0
	newID := func() string {
		n++
		return "00000000-0000-0000-0000-00000000000" + string(rune('0'+n))
	}
	tongue := NewTongueService(records, results, zap.NewNop(), fixedClock, newID)
	constitution := NewConstitutionService(results, ingredients, cache, zap.NewNop(), fixedClock, newID)
	return tongue, constitution
}

func TestAnalyzeTongueQiDeficiency(t *testing.T) {
	svc, _ := newTestTongueService()

	resp, err := svc.AnalyzeTongue(context.Background(), AnalyzeTongueRequest{
		UserID: "u1",
		Observation: assessment.TongueObservation{
			TongueColor:      "淡白",
			TongueShape:      "胖大",
			CoatingColor:     "白苔",
			CoatingThickness: "薄苔",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "qi_deficiency", resp.Constitution)
	require.Equal(t, "气虚质", resp.ConstitutionName)
	require.InDelta(t, 1.0, resp.Confidence, 0.001)
	require.Equal(t, 100, resp.Scores["qi_deficiency"])
	require.NotEmpty(t, resp.Advice.Diet)
	require.Nil(t, resp.Comparison)
	require.Equal(t, testTime, resp.CreatedAt)
}

func TestAnalyzeTongueInvalidObservation(t *testing.T) {
	svc, _ := newTestTongueService()

	_, err := svc.AnalyzeTongue(context.Background(), AnalyzeTongueRequest{
		Observation: assessment.TongueObservation{
			TongueColor:      "绿",
			TongueShape:      "正常",
			CoatingColor:     "白苔",
			CoatingThickness: "薄苔",
		},
	})
	require.Error(t, err)
}

func TestAnalyzeTongueWithComparison(t *testing.T) {
	svc, constitution := newTestTongueService()
	ctx := context.Background()

	// 先做一份判定为气虚的问卷
	schema := assessment.CanonicalSchema()
	answers := make([]any, 30)
	for i, q := range schema.Questions {
		if q.Type == assessment.QiDeficiency {
			answers[i] = float64(5)
		} else {
			answers[i] = float64(1)
		}
	}
	testResp, err := constitution.SubmitTest(ctx, SubmitTestRequest{UserID: "u1", Answers: answers})
	require.NoError(t, err)
	require.Equal(t, "qi_deficiency", testResp.Primary)

	// 一致的舌象
	resp, err := svc.AnalyzeTongue(ctx, AnalyzeTongueRequest{
		UserID:   "u1",
		ResultID: testResp.ResultID,
		Observation: assessment.TongueObservation{
			TongueColor:      "淡白",
			TongueShape:      "胖大",
			CoatingColor:     "白苔",
			CoatingThickness: "薄苔",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Comparison)
	require.True(t, resp.Comparison.IsConsistent)
	require.Equal(t, "consistent", resp.Comparison.MessageKey)

	// 分歧的舌象
	resp, err = svc.AnalyzeTongue(ctx, AnalyzeTongueRequest{
		UserID:   "u1",
		ResultID: testResp.ResultID,
		Observation: assessment.TongueObservation{
			TongueColor:      "红",
			TongueShape:      "瘦薄",
			CoatingColor:     "黄苔",
			CoatingThickness: "薄苔",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Comparison)
	require.False(t, resp.Comparison.IsConsistent)
	require.Equal(t, "divergent", resp.Comparison.MessageKey)
	require.Equal(t, "qi_deficiency", resp.Comparison.TestType)
	require.Equal(t, "yin_deficiency", resp.Comparison.TongueType)
}

func TestTongueOptions(t *testing.T) {
	svc, _ := newTestTongueService()

	opts := svc.Options()
	require.Equal(t, []string{"淡白", "淡红", "红", "绛", "紫"}, opts.TongueColors)
	require.Len(t, opts.TongueShapes, 5)
	require.Len(t, opts.CoatingColors, 3)
	require.Len(t, opts.CoatingThickness, 4)
}

func TestListTongueRecords(t *testing.T) {
	svc, _ := newTestTongueService()
	ctx := context.Background()

	obs := assessment.TongueObservation{
		TongueColor:      "淡红",
		TongueShape:      "正常",
		CoatingColor:     "白苔",
		CoatingThickness: "薄苔",
	}
	_, err := svc.AnalyzeTongue(ctx, AnalyzeTongueRequest{UserID: "u1", Observation: obs})
	require.NoError(t, err)
	_, err = svc.AnalyzeTongue(ctx, AnalyzeTongueRequest{UserID: "u1", Observation: obs})
	require.NoError(t, err)

	records, err := svc.ListRecords(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "peace", records[0].Constitution)
	require.NotEmpty(t, records[0].Advice.Diet)
}

func TestCompareRequiresStoredResult(t *testing.T) {
	svc, _ := newTestTongueService()

	_, err := svc.Compare(context.Background(), "no-such-id", "peace")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
