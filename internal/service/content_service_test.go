package service

import (
	"context"
	"testing"

	"tcmcare-data/internal/assessment"
	"tcmcare-data/internal/config"
	"tcmcare-data/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestContentService() *ContentService {
	logger := zap.NewNop()
	return NewContentService(
		repository.NewMemoryExercisesRepository(),
		repository.NewMemoryCoursesRepository(),
		repository.NewMemoryRoutinesRepository(),
		NewAssetClient(config.AssetsConfig{}, logger),
		logger,
	)
}

func TestListExercisesDefaults(t *testing.T) {
	svc := newTestContentService()

	paged, err := svc.ListExercises(context.Background(), repository.ExerciseFilters{}, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, paged.Page)
	require.Equal(t, 20, paged.Size)
	require.NotEmpty(t, paged.Items)
}

func TestGetExerciseCountsView(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	first, err := svc.GetExercise(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetExercise(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, first.ViewCount+1, second.ViewCount)

	_, err = svc.GetExercise(ctx, 99999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExerciseTypesDictionary(t *testing.T) {
	svc := newTestContentService()

	types := svc.ExerciseTypes()
	require.Len(t, types, 6)
	codes := make([]string, 0, len(types))
	for _, et := range types {
		codes = append(codes, et.Code)
	}
	require.Contains(t, codes, "baduanjin")
	require.Contains(t, codes, "tai_chi")
}

func TestDailyPlanGroupsBySlot(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	// 气虚命中：八段锦(入门)、腹式呼吸(入门)、易筋经(高阶)
	plan, err := svc.DailyPlan(ctx, "qi_deficiency")
	require.NoError(t, err)
	require.Equal(t, "qi_deficiency", plan.Constitution)

	// 入门打底 + 易筋经补入晨练
	require.Len(t, plan.Morning, 3)
	for _, ex := range plan.Morning {
		if ex.Difficulty != "beginner" {
			require.Contains(t, []string{"baduanjin", "yijinjing"}, ex.ExerciseType)
		}
	}
	require.Empty(t, plan.Afternoon)

	// 呼吸法补入晚间
	require.Len(t, plan.Evening, 1)
	require.Equal(t, "breathing", plan.Evening[0].ExerciseType)

	_, err = svc.DailyPlan(ctx, "bogus")
	require.ErrorIs(t, err, assessment.ErrUnknownConstitution)
}

func TestWeeklyPlanProgression(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	// 第 1 周只排入门
	week1, err := svc.WeeklyPlan(ctx, "qi_deficiency", 1)
	require.NoError(t, err)
	require.Equal(t, 1, week1.Week)
	require.Len(t, week1.Days, 7)
	for _, day := range week1.Days {
		require.NotEmpty(t, day.Exercises)
		for _, ex := range day.Exercises {
			require.Equal(t, "beginner", ex.Difficulty)
		}
	}

	// 第 3 周全量轮换，每天最多 3 项且起点随日偏移
	week3, err := svc.WeeklyPlan(ctx, "qi_deficiency", 3)
	require.NoError(t, err)
	require.Len(t, week3.Days, 7)
	for _, day := range week3.Days {
		require.LessOrEqual(t, len(day.Exercises), 3)
	}
	require.NotEqual(t,
		week3.Days[0].Exercises[0].ExerciseID,
		week3.Days[1].Exercises[0].ExerciseID)

	// 非法周数按第 1 周处理
	fallback, err := svc.WeeklyPlan(ctx, "qi_deficiency", 0)
	require.NoError(t, err)
	require.Equal(t, 1, fallback.Week)
}

func TestCourseQueriesAndSeason(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	paged, err := svc.ListCourses(ctx, repository.CourseFilters{}, 1, 20)
	require.NoError(t, err)
	require.NotEmpty(t, paged.Items)

	categories, err := svc.CourseCategories(ctx)
	require.NoError(t, err)
	require.Contains(t, categories, "体质调理")

	summer, err := svc.CoursesBySeason(ctx, "summer", 1, 20)
	require.NoError(t, err)
	require.NotEmpty(t, summer.Items)
	for _, c := range summer.Items {
		require.Contains(t, c.Seasons, "summer")
	}

	recommended, err := svc.RecommendCourses(ctx, "yin_deficiency", 10)
	require.NoError(t, err)
	require.NotEmpty(t, recommended)
}

func TestCourseViewCount(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	first, err := svc.GetCourse(ctx, 1)
	require.NoError(t, err)
	second, err := svc.GetCourse(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, first.ViewCount+1, second.ViewCount)
}

func TestRoutineForConstitution(t *testing.T) {
	svc := newTestContentService()
	ctx := context.Background()

	routine, err := svc.RoutineForConstitution(ctx, "yin_deficiency")
	require.NoError(t, err)
	require.Contains(t, routine.TargetConstitutions, "yin_deficiency")
	require.NotEmpty(t, routine.EveningRoutine)

	_, err = svc.RoutineForConstitution(ctx, "bogus")
	require.ErrorIs(t, err, assessment.ErrUnknownConstitution)

	// 九种体质之一但无方案
	_, err = svc.RoutineForConstitution(ctx, "blood_stasis")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
