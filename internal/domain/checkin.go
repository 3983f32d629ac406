package domain

import "time"

// CheckinDay 一周打卡中的单日条目，day 1..7（周一为 1）
type CheckinDay struct {
	Diet      bool       `json:"diet"`     // 饮食调理
	Exercise  bool       `json:"exercise"` // 运动
	Sleep     bool       `json:"sleep"`    // 作息
	Mood      bool       `json:"mood"`     // 情志
	Note      string     `json:"note,omitempty"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// WeeklyCheckin 每周打卡记录（对应 weekly_checkins 表）
// Days 固定 7 项，按周一到周日排列，整体存 JSONB
type WeeklyCheckin struct {
	CheckinID    string        `db:"checkin_id"`   // UUID, PRIMARY KEY
	UserID       string        `db:"user_id"`      // VARCHAR(64), NOT NULL
	Constitution string        `db:"constitution"` // 打卡针对的体质代码
	WeekStart    time.Time     `db:"week_start"`   // DATE，当周周一
	Days         [7]CheckinDay `db:"days"`         // JSONB
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

// CheckinSummary 一周四个维度的完成情况
type CheckinSummary struct {
	DaysChecked  int     `json:"days_checked"` // 至少完成一项的天数
	DietRate     float64 `json:"diet_rate"`    // 完成率 [0,1]
	ExerciseRate float64 `json:"exercise_rate"`
	SleepRate    float64 `json:"sleep_rate"`
	MoodRate     float64 `json:"mood_rate"`
	OverallRate  float64 `json:"overall_rate"`
}
