package assessment

import (
	"math"
	"sort"
)

// 判定阈值（唯一出处，不要在别处写裸数字）
const (
	PeaceThreshold     = 60.0 // 平和质：自身分数下限
	PrimaryThreshold   = 40.0 // 平和质成立时其他体质必须严格低于此值
	SecondaryThreshold = 30.0 // 偏颇体质入选下限
	MaxSecondaries     = 3    // 次要体质最多返回数
)

// ReasonCode 判定路径标识
type ReasonCode string

const (
	ReasonPeaceDominant        ReasonCode = "peace_dominant"
	ReasonSingleBias           ReasonCode = "single_偏颇"
	ReasonMultiBias            ReasonCode = "multi_偏颇"
	ReasonBelowThresholdArgmax ReasonCode = "below_threshold_argmax"
)

// SecondaryConstitution 次要体质条目
type SecondaryConstitution struct {
	Type  ConstitutionType `json:"type"`
	Name  string           `json:"name"`
	Score float64          `json:"score"`
}

// Classification 体质判定结果
type Classification struct {
	Primary        ConstitutionType        `json:"primary"`
	PrimaryIsPeace bool                    `json:"primary_is_peace"`
	Secondary      []SecondaryConstitution `json:"secondary"`
	ReasonCode     ReasonCode              `json:"reason_code"`
	Scores         NormalizedScores        `json:"scores"`
}

// Classify 对百分制分数做体质判定
//
// 1. 平和路径：平和 ≥ 60 且所有偏颇体质均 < 40
// 2. 偏颇路径：存在 ≥ 30 的偏颇体质，取其中最高分为主，其余降序为次（最多 3 个）
// 3. 兜底：无体质达标时取全体 argmax，保证总能给出标签
//
// 并列一律按体质固定序号取先者
func Classify(scores NormalizedScores) Classification {
	// 平和路径
	othersBelowPrimary := true
	for _, t := range AllConstitutionTypes() {
		if t != Peace && scores[t] >= PrimaryThreshold {
			othersBelowPrimary = false
			break
		}
	}
	if scores[Peace] >= PeaceThreshold && othersBelowPrimary {
		return Classification{
			Primary:        Peace,
			PrimaryIsPeace: true,
			Secondary:      []SecondaryConstitution{},
			ReasonCode:     ReasonPeaceDominant,
			Scores:         scores,
		}
	}

	// 偏颇路径：只在非平和体质中选
	var above []ConstitutionType
	for _, t := range AllConstitutionTypes() {
		if t != Peace && scores[t] >= SecondaryThreshold {
			above = append(above, t)
		}
	}
	if len(above) > 0 {
		primary := above[0]
		for _, t := range above[1:] {
			if scores[t] > scores[primary] {
				primary = t
			}
		}
		secondary := make([]SecondaryConstitution, 0, len(above)-1)
		for _, t := range above {
			if t == primary {
				continue
			}
			secondary = append(secondary, SecondaryConstitution{
				Type:  t,
				Name:  t.Name(),
				Score: round2(scores[t]),
			})
		}
		sort.SliceStable(secondary, func(i, j int) bool {
			if secondary[i].Score != secondary[j].Score {
				return secondary[i].Score > secondary[j].Score
			}
			return secondary[i].Type < secondary[j].Type
		})
		if len(secondary) > MaxSecondaries {
			secondary = secondary[:MaxSecondaries]
		}
		reason := ReasonSingleBias
		if len(secondary) > 0 {
			reason = ReasonMultiBias
		}
		return Classification{
			Primary:        primary,
			PrimaryIsPeace: primary == Peace,
			Secondary:      secondary,
			ReasonCode:     reason,
			Scores:         scores,
		}
	}

	// 兜底：全体 argmax（平和也参与）
	primary := Peace
	for _, t := range AllConstitutionTypes() {
		if scores[t] > scores[primary] {
			primary = t
		}
	}
	return Classification{
		Primary:        primary,
		PrimaryIsPeace: primary == Peace,
		Secondary:      []SecondaryConstitution{},
		ReasonCode:     ReasonBelowThresholdArgmax,
		Scores:         scores,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
