package domain

import (
	"encoding/json"
	"time"
)

// AssessmentResult 体质测试结果（对应 assessment_results 表）
// 结构化字段存 JSONB，原始答卷留底用于审计与重新分析
type AssessmentResult struct {
	// 主键
	ResultID string `db:"result_id"` // UUID, PRIMARY KEY

	// 用户（可匿名）
	UserID string `db:"user_id"` // VARCHAR(64), nullable

	// 判定结果
	Primary       string          `db:"primary_constitution"` // 体质代码
	PrimaryName   string          `db:"primary_name"`         // 中文名称（冗余，便于直接出列表）
	Secondary     json.RawMessage `db:"secondary"`            // JSONB: [{type,name,score}]
	Scores        json.RawMessage `db:"scores"`               // JSONB: {code: float}
	ReasonCode    string          `db:"reason_code"`
	Answers       json.RawMessage `db:"answers"` // JSONB: [30 ints]
	SchemaVersion int             `db:"schema_version"`

	// 提交上下文
	Platform  string `db:"platform"`   // douyin/wechat/h5/unknown
	IPAddress string `db:"ip_address"` // nullable
	UserAgent string `db:"user_agent"` // nullable

	CreatedAt time.Time `db:"created_at"`
}
