package service

import (
	"context"
	"testing"
	"time"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/repository"
	"tcmcare-data/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testTime }

func newTestConstitutionService() (*ConstitutionService, *repository.MemoryResultsRepository) {
	results := repository.NewMemoryResultsRepository()
	ingredients := repository.NewMemoryIngredientsRepository()
	cache := store.NewMemoryKV()
	n := 0
	newID := func() string {
		n++
		return "00000000-0000-0000-0000-00000000000" + string(rune('0'+n))
	}
	svc := NewConstitutionService(results, ingredients, cache, zap.NewNop(), fixedClock, newID)
	return svc, results
}

func answersAll(v int) []any {
	answers := make([]any, 30)
	for i := range answers {
		answers[i] = float64(v) // JSON 解码后的数值形态
	}
	return answers
}

func TestSubmitTestPeaceDominant(t *testing.T) {
	svc, _ := newTestConstitutionService()
	ctx := context.Background()

	// 平和题答 5、其余答 1 → 平和 100 分，其余 0 分
	answers := make([]any, 30)
	schema := assessment.CanonicalSchema()
	for i, q := range schema.Questions {
		if q.Type == assessment.Peace {
			answers[i] = float64(5)
		} else {
			answers[i] = float64(1)
		}
	}

	resp, err := svc.SubmitTest(ctx, SubmitTestRequest{UserID: "u1", Answers: answers})
	require.NoError(t, err)
	require.Equal(t, "peace", resp.Primary)
	require.Equal(t, "平和质", resp.PrimaryName)
	require.True(t, resp.PrimaryIsPeace)
	require.Empty(t, resp.Secondary)
	require.Equal(t, "peace_dominant", resp.ReasonCode)
	require.Equal(t, testTime, resp.CreatedAt)
	require.NotNil(t, resp.Info)
	require.Equal(t, "平和质", resp.Info.Name)
}

func TestSubmitTestPersistsAndGetResult(t *testing.T) {
	svc, results := newTestConstitutionService()
	ctx := context.Background()

	resp, err := svc.SubmitTest(ctx, SubmitTestRequest{
		UserID:   "u1",
		Answers:  answersAll(2),
		Platform: "wechat",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ResultID)

	// 落库校验
	stored, err := results.GetResult(ctx, resp.ResultID)
	require.NoError(t, err)
	require.Equal(t, "u1", stored.UserID)
	require.Equal(t, "wechat", stored.Platform)
	require.Equal(t, resp.Primary, stored.Primary)

	// 读回与提交响应一致
	got, err := svc.GetResult(ctx, resp.ResultID)
	require.NoError(t, err)
	require.Equal(t, resp.Primary, got.Primary)
	require.Equal(t, resp.ReasonCode, got.ReasonCode)
	require.InDelta(t, resp.Scores["qi_deficiency"], got.Scores["qi_deficiency"], 0.001)
}

func TestSubmitTestScoresTwoDecimals(t *testing.T) {
	svc, results := newTestConstitutionService()
	ctx := context.Background()

	// 痰湿 3 题答 3/3/1 → 原始分 7，7*100/15 是无限小数
	answers := make([]any, 30)
	schema := assessment.CanonicalSchema()
	phlegmSeen := 0
	for i, q := range schema.Questions {
		switch {
		case q.Type == assessment.Peace:
			answers[i] = float64(5)
		case q.Type == assessment.PhlegmDamp:
			phlegmSeen++
			if phlegmSeen < 3 {
				answers[i] = float64(3)
			} else {
				answers[i] = float64(1)
			}
		default:
			answers[i] = float64(1)
		}
	}

	resp, err := svc.SubmitTest(ctx, SubmitTestRequest{UserID: "u1", Answers: answers})
	require.NoError(t, err)
	require.Equal(t, 46.67, resp.Scores["phlegm_damp"])

	// 落库的也是两位小数
	stored, err := results.GetResult(ctx, resp.ResultID)
	require.NoError(t, err)
	require.Contains(t, string(stored.Scores), "46.67")
	require.NotContains(t, string(stored.Scores), "46.666")

	got, err := svc.GetResult(ctx, resp.ResultID)
	require.NoError(t, err)
	require.Equal(t, 46.67, got.Scores["phlegm_damp"])
}

func TestSubmitTestValidation(t *testing.T) {
	svc, _ := newTestConstitutionService()
	ctx := context.Background()

	// 题数不对
	_, err := svc.SubmitTest(ctx, SubmitTestRequest{Answers: answersAll(3)[:29]})
	require.Error(t, err)
	var verr *assessment.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, assessment.WrongLength, verr.Kind)

	// 答案越界
	bad := answersAll(3)
	bad[7] = float64(6)
	_, err = svc.SubmitTest(ctx, SubmitTestRequest{Answers: bad})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, assessment.OutOfRange, verr.Kind)

	// 非整数
	bad = answersAll(3)
	bad[0] = "three"
	_, err = svc.SubmitTest(ctx, SubmitTestRequest{Answers: bad})
	require.ErrorAs(t, err, &verr)
	require.Equal(t, assessment.WrongType, verr.Kind)
}

func TestGetResultNotFound(t *testing.T) {
	svc, _ := newTestConstitutionService()

	_, err := svc.GetResult(context.Background(), "no-such-id")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListResults(t *testing.T) {
	svc, _ := newTestConstitutionService()
	ctx := context.Background()

	_, err := svc.SubmitTest(ctx, SubmitTestRequest{UserID: "u1", Answers: answersAll(2)})
	require.NoError(t, err)
	_, err = svc.SubmitTest(ctx, SubmitTestRequest{UserID: "u1", Answers: answersAll(4)})
	require.NoError(t, err)
	_, err = svc.SubmitTest(ctx, SubmitTestRequest{UserID: "u2", Answers: answersAll(3)})
	require.NoError(t, err)

	summaries, err := svc.ListResults(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
}

func TestQuestions(t *testing.T) {
	svc, _ := newTestConstitutionService()

	resp := svc.Questions()
	require.Equal(t, 1, resp.Version)
	require.Len(t, resp.Questions, 30)
	require.Equal(t, 1, resp.Questions[0].Number)
	require.Len(t, resp.Options, 5)
}

func TestRecommendFood(t *testing.T) {
	svc, _ := newTestConstitutionService()
	ctx := context.Background()

	rec, err := svc.RecommendFood(ctx, "qi_deficiency", 5)
	require.NoError(t, err)
	require.Equal(t, "气虚质", rec.ConstitutionName)
	require.NotEmpty(t, rec.DietPrinciples)
	require.NotEmpty(t, rec.Suitable)
	for _, ing := range rec.Suitable {
		require.Contains(t, ing.SuitableConstitutions, "qi_deficiency")
	}

	// 第二次走缓存，内容一致
	cached, err := svc.cache.Get(ctx, "food:qi_deficiency:5")
	require.NoError(t, err)
	require.NotEmpty(t, cached)

	again, err := svc.RecommendFood(ctx, "qi_deficiency", 5)
	require.NoError(t, err)
	require.Equal(t, rec.ConstitutionName, again.ConstitutionName)
	require.Len(t, again.Suitable, len(rec.Suitable))

	_, err = svc.RecommendFood(ctx, "bogus", 5)
	require.Error(t, err)
}
