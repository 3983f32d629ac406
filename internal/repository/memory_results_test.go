package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tcmcare-data/internal/domain"
)

func TestMemoryResultsSaveAndGet(t *testing.T) {
	repo := NewMemoryResultsRepository()
	ctx := context.Background()

	result := &domain.AssessmentResult{
		ResultID:      "11111111-1111-1111-1111-111111111111",
		UserID:        "user-1",
		Primary:       "qi_deficiency",
		PrimaryName:   "气虚质",
		SchemaVersion: 1,
		Platform:      "wechat",
		CreatedAt:     time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.SaveResult(ctx, result))

	got, err := repo.GetResult(ctx, result.ResultID)
	require.NoError(t, err)
	require.Equal(t, "qi_deficiency", got.Primary)
	require.Equal(t, "气虚质", got.PrimaryName)

	_, err = repo.GetResult(ctx, "22222222-2222-2222-2222-222222222222")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryResultsListByUserNewestFirst(t *testing.T) {
	repo := NewMemoryResultsRepository()
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ids := []string{
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
		"33333333-3333-3333-3333-333333333333",
	}
	for i, id := range ids {
		require.NoError(t, repo.SaveResult(ctx, &domain.AssessmentResult{
			ResultID:  id,
			UserID:    "user-1",
			Primary:   "peace",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, repo.SaveResult(ctx, &domain.AssessmentResult{
		ResultID: "44444444-4444-4444-4444-444444444444",
		UserID:   "user-2",
		Primary:  "peace",
	}))

	results, err := repo.ListResultsByUser(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, ids[2], results[0].ResultID)
	require.Equal(t, ids[1], results[1].ResultID)
}

func TestMemoryTongueRecordsSaveAndList(t *testing.T) {
	repo := NewMemoryTongueRecordsRepository()
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{
		"aaaaaaaa-0000-0000-0000-000000000001",
		"aaaaaaaa-0000-0000-0000-000000000002",
	} {
		require.NoError(t, repo.SaveRecord(ctx, &domain.TongueRecord{
			RecordID:             id,
			UserID:               "user-1",
			TongueColor:          "淡白",
			TongueShape:          "胖大",
			CoatingColor:         "白苔",
			CoatingThickness:     "薄苔",
			ConstitutionTendency: "qi_deficiency",
			Confidence:           1.0,
			CreatedAt:            base.Add(time.Duration(i) * time.Hour),
		}))
	}

	records, err := repo.ListRecordsByUser(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "aaaaaaaa-0000-0000-0000-000000000002", records[0].RecordID)

	none, err := repo.ListRecordsByUser(ctx, "user-2", 10)
	require.NoError(t, err)
	require.Empty(t, none)
}
