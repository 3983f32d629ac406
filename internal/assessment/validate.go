package assessment

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidationKind 答卷校验失败类别
type ValidationKind string

const (
	WrongLength ValidationKind = "wrong_length"
	OutOfRange  ValidationKind = "out_of_range"
	WrongType   ValidationKind = "wrong_type"
)

// ValidationError 答卷校验错误；Index 为 1 起的题号（与长度无关的错误为 0）
type ValidationError struct {
	Kind   ValidationKind
	Index  int
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("%s at question %d: %s", e.Kind, e.Index, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// ValidatedAnswers 通过校验的答卷，下标与 schema.Questions 对齐
type ValidatedAnswers []int

// ParseAnswers 把 JSON 解码出的原始值转成整数答卷
// JSON 数字解码为 float64，这里要求必须为整数值；null/字符串等一律 WrongType
func ParseAnswers(raw []any) ([]int, *ValidationError) {
	answers := make([]int, len(raw))
	for i, v := range raw {
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, &ValidationError{Kind: WrongType, Index: i + 1, Detail: fmt.Sprintf("answer must be an integer, got %v", n)}
			}
			answers[i] = int(n)
		case int:
			answers[i] = n
		case json.Number:
			iv, err := n.Int64()
			if err != nil {
				return nil, &ValidationError{Kind: WrongType, Index: i + 1, Detail: fmt.Sprintf("answer must be an integer, got %v", n)}
			}
			answers[i] = int(iv)
		default:
			return nil, &ValidationError{Kind: WrongType, Index: i + 1, Detail: fmt.Sprintf("answer must be an integer, got %T", v)}
		}
	}
	return answers, nil
}

// Validate 校验答卷长度与取值范围，保持原始顺序
func Validate(answers []int, schema *QuestionSchema) (ValidatedAnswers, *ValidationError) {
	if len(answers) != schema.QuestionCount() {
		return nil, &ValidationError{
			Kind:   WrongLength,
			Detail: fmt.Sprintf("expected %d answers, got %d", schema.QuestionCount(), len(answers)),
		}
	}
	for i, a := range answers {
		if a < 1 || a > 5 {
			return nil, &ValidationError{
				Kind:   OutOfRange,
				Index:  i + 1,
				Detail: fmt.Sprintf("answer must be between 1 and 5, got %d", a),
			}
		}
	}
	validated := make(ValidatedAnswers, len(answers))
	copy(validated, answers)
	return validated, nil
}
