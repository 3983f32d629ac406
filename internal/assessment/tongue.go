package assessment

import "fmt"

// 舌象特征选项（闭集，入口处校验）
var (
	TongueColors     = []string{"淡白", "淡红", "红", "绛", "紫"}
	TongueShapes     = []string{"正常", "胖大", "瘦薄", "齿痕", "裂纹"}
	CoatingColors    = []string{"白苔", "黄苔", "灰黑苔"}
	CoatingThickness = []string{"薄苔", "厚苔", "腻苔", "剥落"}
)

// 特征匹配权重，四项合计 100
const (
	tongueColorWeight      = 30
	tongueShapeWeight      = 35
	coatingColorWeight     = 20
	coatingThicknessWeight = 15
)

// TongueObservation 一次舌象观察的四元组
type TongueObservation struct {
	TongueColor      string `json:"tongue_color"`
	TongueShape      string `json:"tongue_shape"`
	CoatingColor     string `json:"coating_color"`
	CoatingThickness string `json:"coating_thickness"`
}

// TongueProfile 某体质的典型舌象（匹配目标）
type TongueProfile struct {
	TongueColor      string
	TongueShape      string
	CoatingColor     string
	CoatingThickness string
}

// tongueProfiles 九种体质的典型舌象，下标即体质序号
// 注意：气虚/痰湿仅苔质不同（薄苔/厚苔），阳虚为腻苔——三者必须保持可区分
var tongueProfiles = [numConstitutionTypes]TongueProfile{
	Peace:          {"淡红", "正常", "白苔", "薄苔"},
	QiDeficiency:   {"淡白", "胖大", "白苔", "薄苔"},
	YangDeficiency: {"淡白", "胖大", "白苔", "腻苔"},
	YinDeficiency:  {"红", "瘦薄", "黄苔", "薄苔"},
	PhlegmDamp:     {"淡白", "胖大", "白苔", "厚苔"},
	DampHeat:       {"红", "正常", "黄苔", "腻苔"},
	BloodStasis:    {"紫", "正常", "白苔", "薄苔"},
	QiDepression:   {"淡红", "齿痕", "白苔", "薄苔"},
	Special:        {"淡红", "裂纹", "白苔", "薄苔"},
}

// TongueProfileFor 某体质的典型舌象
func TongueProfileFor(t ConstitutionType) TongueProfile {
	return tongueProfiles[t]
}

// TongueClassification 舌象判定结果
type TongueClassification struct {
	Type          ConstitutionType         `json:"type"`
	Confidence    float64                  `json:"confidence"`
	PerTypeScores map[ConstitutionType]int `json:"per_type_scores"`
	Observation   TongueObservation        `json:"observation"`
}

// ErrInvalidObservation 舌象特征不在允许集合内
var ErrInvalidObservation = fmt.Errorf("invalid tongue observation")

// ValidateObservation 校验四项特征是否都在允许集合内
func ValidateObservation(obs TongueObservation) error {
	if !contains(TongueColors, obs.TongueColor) {
		return fmt.Errorf("%w: tongue_color %q", ErrInvalidObservation, obs.TongueColor)
	}
	if !contains(TongueShapes, obs.TongueShape) {
		return fmt.Errorf("%w: tongue_shape %q", ErrInvalidObservation, obs.TongueShape)
	}
	if !contains(CoatingColors, obs.CoatingColor) {
		return fmt.Errorf("%w: coating_color %q", ErrInvalidObservation, obs.CoatingColor)
	}
	if !contains(CoatingThickness, obs.CoatingThickness) {
		return fmt.Errorf("%w: coating_thickness %q", ErrInvalidObservation, obs.CoatingThickness)
	}
	return nil
}

// ClassifyTongue 按加权特征匹配判定体质倾向
// 每个体质的得分 = 命中特征的权重之和（满分 100）；取最高分体质，
// 并列按固定序号取先者；置信度 = 最高分 / 100
func ClassifyTongue(obs TongueObservation) TongueClassification {
	scores := make(map[ConstitutionType]int, numConstitutionTypes)
	best := Peace
	for _, t := range AllConstitutionTypes() {
		profile := tongueProfiles[t]
		score := 0
		if obs.TongueColor == profile.TongueColor {
			score += tongueColorWeight
		}
		if obs.TongueShape == profile.TongueShape {
			score += tongueShapeWeight
		}
		if obs.CoatingColor == profile.CoatingColor {
			score += coatingColorWeight
		}
		if obs.CoatingThickness == profile.CoatingThickness {
			score += coatingThicknessWeight
		}
		scores[t] = score
		if score > scores[best] {
			best = t
		}
	}
	return TongueClassification{
		Type:          best,
		Confidence:    float64(scores[best]) / 100.0,
		PerTypeScores: scores,
		Observation:   obs,
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
