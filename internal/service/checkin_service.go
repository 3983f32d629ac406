package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tcmcare-data/internal/domain"
	"tcmcare-data/internal/repository"

	"go.uber.org/zap"
)

// CheckinService 养生打卡服务
type CheckinService struct {
	checkins repository.CheckinsRepository
	logger   *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewCheckinService 创建打卡服务
func NewCheckinService(
	checkins repository.CheckinsRepository,
	logger *zap.Logger,
	now func() time.Time,
	newID func() string,
) *CheckinService {
	return &CheckinService{
		checkins: checkins,
		logger:   logger,
		now:      now,
		newID:    newID,
	}
}

// WeekStartOf 任意日期归一化到当周周一（零点，保留时区）
func WeekStartOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // 周日算一周的第 7 天
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// CheckDayRequest 单日打卡请求
type CheckDayRequest struct {
	UserID       string `json:"user_id"`
	Constitution string `json:"constitution"`
	Day          int    `json:"day"` // 1..7，周一为 1；0 表示按当前时间推算
	Diet         bool   `json:"diet"`
	Exercise     bool   `json:"exercise"`
	Sleep        bool   `json:"sleep"`
	Mood         bool   `json:"mood"`
	Note         string `json:"note"`
}

// WeeklyCheckinResponse 周打卡记录（前端格式）
type WeeklyCheckinResponse struct {
	CheckinID    string                `json:"checkin_id"`
	UserID       string                `json:"user_id"`
	Constitution string                `json:"constitution"`
	WeekStart    string                `json:"week_start"` // 2006-01-02
	Days         [7]domain.CheckinDay  `json:"days"`
	Summary      domain.CheckinSummary `json:"summary"`
}

// CheckDay 记录当周某一天的打卡，周记录不存在则创建
func (s *CheckinService) CheckDay(ctx context.Context, req CheckDayRequest) (*WeeklyCheckinResponse, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	now := s.now()
	day := req.Day
	if day == 0 {
		day = int(now.Weekday())
		if day == 0 {
			day = 7
		}
	}
	if day < 1 || day > 7 {
		return nil, fmt.Errorf("day must be between 1 and 7, got %d", day)
	}

	weekStart := WeekStartOf(now)
	checkin, err := s.checkins.GetCheckinByWeek(ctx, req.UserID, weekStart)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		checkin = &domain.WeeklyCheckin{
			CheckinID:    s.newID(),
			UserID:       req.UserID,
			Constitution: req.Constitution,
			WeekStart:    weekStart,
			CreatedAt:    now,
		}
	}
	if req.Constitution != "" {
		checkin.Constitution = req.Constitution
	}

	checkedAt := now
	checkin.Days[day-1] = domain.CheckinDay{
		Diet:      req.Diet,
		Exercise:  req.Exercise,
		Sleep:     req.Sleep,
		Mood:      req.Mood,
		Note:      req.Note,
		CheckedAt: &checkedAt,
	}
	checkin.UpdatedAt = now

	if err := s.checkins.SaveCheckin(ctx, checkin); err != nil {
		return nil, err
	}

	s.logger.Info("Checkin recorded",
		zap.String("user_id", req.UserID),
		zap.String("week_start", weekStart.Format("2006-01-02")),
		zap.Int("day", day),
	)
	return s.toResponse(checkin), nil
}

// CurrentWeek 查询当周打卡；尚无记录时返回空白周
func (s *CheckinService) CurrentWeek(ctx context.Context, userID string) (*WeeklyCheckinResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	weekStart := WeekStartOf(s.now())
	checkin, err := s.checkins.GetCheckinByWeek(ctx, userID, weekStart)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.toResponse(&domain.WeeklyCheckin{
				UserID:    userID,
				WeekStart: weekStart,
			}), nil
		}
		return nil, err
	}
	return s.toResponse(checkin), nil
}

// History 查询打卡历史（按周倒序）
func (s *CheckinService) History(ctx context.Context, userID string, limit int) ([]*WeeklyCheckinResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	checkins, err := s.checkins.ListCheckinsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]*WeeklyCheckinResponse, 0, len(checkins))
	for _, c := range checkins {
		responses = append(responses, s.toResponse(c))
	}
	return responses, nil
}

// Streak 截至今日的连续打卡天数（某天至少完成一项算打卡）
func (s *CheckinService) Streak(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("user_id is required")
	}

	// 最近 12 周足够覆盖常见连打
	checkins, err := s.checkins.ListCheckinsByUser(ctx, userID, 12)
	if err != nil {
		return 0, err
	}
	byWeek := make(map[string]*domain.WeeklyCheckin, len(checkins))
	for _, c := range checkins {
		byWeek[WeekStartOf(c.WeekStart).Format("2006-01-02")] = c
	}

	now := s.now()
	streak := 0
	for cursor := now; ; cursor = cursor.AddDate(0, 0, -1) {
		weekKey := WeekStartOf(cursor).Format("2006-01-02")
		c, ok := byWeek[weekKey]
		if !ok {
			// 今天还没打卡不中断，从昨天继续数
			if streak == 0 && sameDate(cursor, now) {
				continue
			}
			break
		}
		day := int(cursor.Weekday())
		if day == 0 {
			day = 7
		}
		entry := c.Days[day-1]
		if dayChecked(entry) {
			streak++
			continue
		}
		if streak == 0 && sameDate(cursor, now) {
			continue
		}
		break
	}
	return streak, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayChecked(d domain.CheckinDay) bool {
	return d.Diet || d.Exercise || d.Sleep || d.Mood
}

// Summarize 统计一周四个维度的完成率
func Summarize(days [7]domain.CheckinDay) domain.CheckinSummary {
	var s domain.CheckinSummary
	var diet, exercise, sleep, mood int
	for _, d := range days {
		if dayChecked(d) {
			s.DaysChecked++
		}
		if d.Diet {
			diet++
		}
		if d.Exercise {
			exercise++
		}
		if d.Sleep {
			sleep++
		}
		if d.Mood {
			mood++
		}
	}
	s.DietRate = float64(diet) / 7
	s.ExerciseRate = float64(exercise) / 7
	s.SleepRate = float64(sleep) / 7
	s.MoodRate = float64(mood) / 7
	s.OverallRate = (s.DietRate + s.ExerciseRate + s.SleepRate + s.MoodRate) / 4
	return s
}

func (s *CheckinService) toResponse(c *domain.WeeklyCheckin) *WeeklyCheckinResponse {
	return &WeeklyCheckinResponse{
		CheckinID:    c.CheckinID,
		UserID:       c.UserID,
		Constitution: c.Constitution,
		WeekStart:    c.WeekStart.Format("2006-01-02"),
		Days:         c.Days,
		Summary:      Summarize(c.Days),
	}
}
