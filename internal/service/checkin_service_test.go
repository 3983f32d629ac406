package service

import (
	"context"
	"testing"
	"time"

	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testTime 是 2025-03-10，周一
func newTestCheckinService(clock func() time.Time) *CheckinService {
	n := 0
	newID := func() string {
		n++
		return "00000000-0000-0000-0000-00000000000" + string(rune('0'+n))
	}
	return NewCheckinService(repository.NewMemoryCheckinsRepository(), zap.NewNop(), clock, newID)
}

func TestWeekStartOf(t *testing.T) {
	monday := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStartOf(monday))

	wednesday := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStartOf(wednesday))

	sunday := time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), WeekStartOf(sunday))
}

func TestCheckDayCreatesWeek(t *testing.T) {
	svc := newTestCheckinService(fixedClock)
	ctx := context.Background()

	resp, err := svc.CheckDay(ctx, CheckDayRequest{
		UserID:       "u1",
		Constitution: "qi_deficiency",
		Diet:         true,
		Sleep:        true,
	})
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", resp.WeekStart)
	require.Equal(t, "qi_deficiency", resp.Constitution)
	// testTime 是周一，落在第 1 天
	require.True(t, resp.Days[0].Diet)
	require.True(t, resp.Days[0].Sleep)
	require.False(t, resp.Days[0].Exercise)
	require.NotNil(t, resp.Days[0].CheckedAt)
	require.Equal(t, 1, resp.Summary.DaysChecked)
}

func TestCheckDayUpdatesExistingWeek(t *testing.T) {
	svc := newTestCheckinService(fixedClock)
	ctx := context.Background()

	_, err := svc.CheckDay(ctx, CheckDayRequest{UserID: "u1", Day: 1, Diet: true})
	require.NoError(t, err)
	resp, err := svc.CheckDay(ctx, CheckDayRequest{UserID: "u1", Day: 3, Exercise: true, Mood: true})
	require.NoError(t, err)

	require.True(t, resp.Days[0].Diet)
	require.True(t, resp.Days[2].Exercise)
	require.Equal(t, 2, resp.Summary.DaysChecked)

	// 历史里只应有一条周记录
	history, err := svc.History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestCheckDayRejectsBadDay(t *testing.T) {
	svc := newTestCheckinService(fixedClock)

	_, err := svc.CheckDay(context.Background(), CheckDayRequest{UserID: "u1", Day: 8})
	require.Error(t, err)
	_, err = svc.CheckDay(context.Background(), CheckDayRequest{Day: 1})
	require.Error(t, err)
}

func TestCurrentWeekEmpty(t *testing.T) {
	svc := newTestCheckinService(fixedClock)

	resp, err := svc.CurrentWeek(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", resp.WeekStart)
	require.Equal(t, 0, resp.Summary.DaysChecked)
	require.Empty(t, resp.CheckinID)
}

func TestSummarizeRates(t *testing.T) {
	resp := Summarize([7]domain.CheckinDay{
		{Diet: true, Exercise: true, Sleep: true, Mood: true},
		{Diet: true},
		{},
		{Sleep: true},
		{}, {}, {},
	})
	require.Equal(t, 3, resp.DaysChecked)
	require.InDelta(t, 2.0/7, resp.DietRate, 0.001)
	require.InDelta(t, 1.0/7, resp.ExerciseRate, 0.001)
	require.InDelta(t, 2.0/7, resp.SleepRate, 0.001)
	require.InDelta(t, 1.0/7, resp.MoodRate, 0.001)
	require.InDelta(t, 6.0/28, resp.OverallRate, 0.001)
}

func TestStreakAcrossWeeks(t *testing.T) {
	// 以周三为"今天"，连打：周一、周二、周三，加上上周日
	wednesday := time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC)
	clock := func() time.Time { return wednesday }
	svc := newTestCheckinService(clock)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		_, err := svc.CheckDay(ctx, CheckDayRequest{UserID: "u1", Day: day, Diet: true})
		require.NoError(t, err)
	}

	streak, err := svc.Streak(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 3, streak)

	// 补上上周日（上周记录单独一条），连打应变为 4
	lastSunday := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	prevClock := func() time.Time { return lastSunday }
	prevSvc := NewCheckinService(svc.checkins, zap.NewNop(), prevClock, func() string { return "prev-week-id" })
	_, err = prevSvc.CheckDay(ctx, CheckDayRequest{UserID: "u1", Day: 7, Mood: true})
	require.NoError(t, err)

	streak, err = svc.Streak(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 4, streak)
}

func TestStreakZeroWithoutCheckins(t *testing.T) {
	svc := newTestCheckinService(fixedClock)

	streak, err := svc.Streak(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 0, streak)
}
