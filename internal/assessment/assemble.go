package assessment

import "time"

// AssembledResult 可持久化的完整判定结果
// 时钟与 ID 生成器由调用方注入，测试中可固定
type AssembledResult struct {
	ResultID       string           `json:"result_id"`
	CreatedAt      time.Time        `json:"created_at"`
	SchemaVersion  int              `json:"schema_version"`
	Classification Classification   `json:"classification"`
	Answers        ValidatedAnswers `json:"answers"`
}

// Assemble 打包判定结果：生成结果 ID、打时间戳、记录问卷版本
// 答卷留底用于审计与重新分析；无副作用，持久化由外层负责
func Assemble(c Classification, answers ValidatedAnswers, schemaVersion int, now func() time.Time, newID func() string) AssembledResult {
	kept := make(ValidatedAnswers, len(answers))
	copy(kept, answers)
	return AssembledResult{
		ResultID:       newID(),
		CreatedAt:      now(),
		SchemaVersion:  schemaVersion,
		Classification: c,
		Answers:        kept,
	}
}
