package domain

// ExerciseType 运动类型字典（code → 中英文名）
type ExerciseType struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	NameEn string `json:"name_en"`
}

// ExerciseTypes 支持的运动/功法类型
var ExerciseTypes = []ExerciseType{
	{Code: "qigong", Name: "气功", NameEn: "Qigong"},
	{Code: "tai_chi", Name: "太极拳", NameEn: "Tai Chi"},
	{Code: "baduanjin", Name: "八段锦", NameEn: "Baduanjin"},
	{Code: "yijinjing", Name: "易筋经", NameEn: "Yijinjing"},
	{Code: "wuqinxi", Name: "五禽戏", NameEn: "Wuqinxi"},
	{Code: "breathing", Name: "呼吸法", NameEn: "Breathing"},
}

// Exercise 运动/功法（对应 exercises 表）
type Exercise struct {
	ExerciseID      int    `db:"exercise_id" json:"exercise_id"` // SERIAL, PRIMARY KEY
	Name            string `db:"name" json:"name"`               // 如 "八段锦·两手托天理三焦"
	NameEn          string `db:"name_en" json:"name_en"`
	Description     string `db:"description" json:"description"`
	ExerciseType    string `db:"exercise_type" json:"exercise_type"` // ExerciseTypes 里的 code
	Difficulty      string `db:"difficulty" json:"difficulty"`       // beginner/intermediate/advanced
	DurationSeconds int    `db:"duration_seconds" json:"duration_seconds"`
	Repetitions     string `db:"repetitions" json:"repetitions"`   // 如 "8次 x 3组"
	Instructions    string `db:"instructions" json:"instructions"` // 动作要领
	Benefits        string `db:"benefits" json:"benefits"`
	Contraindicated string `db:"contraindications" json:"contraindications"` // 禁忌人群

	TargetConstitutions []string `db:"target_constitutions" json:"target_constitutions"` // 体质代码，JSONB 数组

	VideoURL  string `db:"video_url" json:"video_url"`
	ImageURL  string `db:"image_url" json:"image_url"`
	ViewCount int    `db:"view_count" json:"view_count"`
}

// Course 养生课程（对应 courses 表）
type Course struct {
	CourseID    int    `db:"course_id" json:"course_id"` // SERIAL, PRIMARY KEY
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`         // 饮食调理/经络养生/情志调养 等
	ContentType string `db:"content_type" json:"content_type"` // video/audio/article
	ContentURL  string `db:"content_url" json:"content_url"`
	DurationMin int    `db:"duration_minutes" json:"duration_minutes"`
	Author      string `db:"author" json:"author"`
	AuthorTitle string `db:"author_title" json:"author_title"`
	CoverImage  string `db:"cover_image" json:"cover_image"`

	SuitableConstitutions []string `db:"suitable_constitutions" json:"suitable_constitutions"` // JSONB 数组
	Seasons               []string `db:"seasons" json:"seasons"`                               // spring/summer/autumn/winter

	ViewCount int `db:"view_count" json:"view_count"`
}

// DailyRoutine 起居作息方案（对应 daily_routines 表）
// 一个方案服务一组体质；早/午/晚条目与提示整体存 JSONB
type DailyRoutine struct {
	RoutineID   int    `db:"routine_id" json:"routine_id"` // SERIAL, PRIMARY KEY
	Name        string `db:"name" json:"name"`             // 如 "气虚质作息方案"
	Description string `db:"description" json:"description"`

	TargetConstitutions []string `db:"target_constitutions" json:"target_constitutions"` // JSONB 数组

	WakeTime  string `db:"wake_time" json:"wake_time"`   // "06:30"
	SleepTime string `db:"sleep_time" json:"sleep_time"` // "22:30"

	MorningRoutine   []string `db:"morning_routine" json:"morning_routine"`     // JSONB 数组
	AfternoonRoutine []string `db:"afternoon_routine" json:"afternoon_routine"` // JSONB 数组
	EveningRoutine   []string `db:"evening_routine" json:"evening_routine"`     // JSONB 数组
	MealTimings      []string `db:"meal_timings" json:"meal_timings"`           // JSONB 数组
	Tips             []string `db:"tips" json:"tips"`                           // JSONB 数组
}
