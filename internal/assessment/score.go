package assessment

// RawScores 各体质原始分（每题 1-5 按归属累加，九种体质键恒在）
type RawScores map[ConstitutionType]int

// NormalizedScores 各体质百分制分数 [0,100]
type NormalizedScores map[ConstitutionType]float64

// Score 按题目归属累加原始分
// inverse 题得分为 6 - 答案；结果与题目顺序无关
func Score(answers ValidatedAnswers, schema *QuestionSchema) RawScores {
	raw := make(RawScores, numConstitutionTypes)
	for _, t := range AllConstitutionTypes() {
		raw[t] = 0
	}
	for i, q := range schema.Questions {
		a := answers[i]
		if q.Polarity == Inverse {
			a = 6 - a
		}
		raw[q.Type] += a
	}
	return raw
}

// Normalize 原始分转百分制：raw * 100 / (5 * 该体质题数)
// 各体质题数不同（4/3/2 题），不能统一乘 2.5；上限钳到 100
func Normalize(raw RawScores, schema *QuestionSchema) NormalizedScores {
	normalized := make(NormalizedScores, numConstitutionTypes)
	for _, t := range AllConstitutionTypes() {
		count := schema.TypeCount(t)
		if count == 0 {
			normalized[t] = 0
			continue
		}
		score := float64(raw[t]) * 100.0 / float64(5*count)
		if score > 100.0 {
			score = 100.0
		}
		normalized[t] = score
	}
	return normalized
}
