package domain

import (
	"encoding/json"
	"time"
)

// TongueRecord 舌诊记录（对应 tongue_records 表）
// ResultID 关联此前的体质测试结果，用于跨模态对比；创建后不再变更
type TongueRecord struct {
	RecordID string `db:"record_id"` // UUID, PRIMARY KEY
	UserID   string `db:"user_id"`   // VARCHAR(64), nullable
	ResultID string `db:"result_id"` // UUID, nullable（关联 assessment_results）

	// 观察到的四项舌象特征
	TongueColor      string `db:"tongue_color"`
	TongueShape      string `db:"tongue_shape"`
	CoatingColor     string `db:"coating_color"`
	CoatingThickness string `db:"coating_thickness"`

	// 判定结果
	ConstitutionTendency string          `db:"constitution_tendency"` // 体质代码
	Confidence           float64         `db:"confidence"`            // [0,1]
	Scores               json.RawMessage `db:"scores"`                // JSONB: {code: int}
	Advice               json.RawMessage `db:"advice"`                // JSONB: {diet, lifestyle}

	CreatedAt time.Time `db:"created_at"`
}
