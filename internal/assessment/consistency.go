package assessment

// 跨模态一致性结论的消息键，外层按键渲染文案
const (
	MessageKeyConsistent = "consistent"
	MessageKeyDivergent  = "divergent"
)

// ConsistencyVerdict 问卷判定与舌象判定的一致性结论
type ConsistencyVerdict struct {
	IsConsistent bool             `json:"is_consistent"`
	TestType     ConstitutionType `json:"test_constitution"`
	TongueType   ConstitutionType `json:"tongue_constitution"`
	MessageKey   string           `json:"message_key"`
}

// Compare 比较两个体质标签，纯相等判断，不做打分
func Compare(testPrimary, tongueType ConstitutionType) ConsistencyVerdict {
	verdict := ConsistencyVerdict{
		IsConsistent: testPrimary == tongueType,
		TestType:     testPrimary,
		TongueType:   tongueType,
	}
	if verdict.IsConsistent {
		verdict.MessageKey = MessageKeyConsistent
	} else {
		verdict.MessageKey = MessageKeyDivergent
	}
	return verdict
}
