package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// S5: 气虚舌象完全匹配；痰湿/阳虚仅苔质不同，各差 15 分
func TestClassifyTongueExactQiDeficiency(t *testing.T) {
	obs := TongueObservation{
		TongueColor:      "淡白",
		TongueShape:      "胖大",
		CoatingColor:     "白苔",
		CoatingThickness: "薄苔",
	}
	c := ClassifyTongue(obs)

	require.Equal(t, QiDeficiency, c.Type)
	require.Equal(t, 1.0, c.Confidence)
	require.Equal(t, 100, c.PerTypeScores[QiDeficiency])
	require.Equal(t, 85, c.PerTypeScores[PhlegmDamp])
	require.Equal(t, 85, c.PerTypeScores[YangDeficiency])
	require.Equal(t, obs, c.Observation)
}

// S6: 平和舌象完全匹配，序号 0 保证并列时胜出
func TestClassifyTongueExactPeace(t *testing.T) {
	obs := TongueObservation{
		TongueColor:      "淡红",
		TongueShape:      "正常",
		CoatingColor:     "白苔",
		CoatingThickness: "薄苔",
	}
	c := ClassifyTongue(obs)

	require.Equal(t, Peace, c.Type)
	require.Equal(t, 1.0, c.Confidence)
	require.Equal(t, 100, c.PerTypeScores[Peace])
}

// 每个典型舌象都应以满分匹配回自己的体质（气虚/痰湿/阳虚的区分靠苔质）
func TestClassifyTongueProfilesSelfMatch(t *testing.T) {
	for _, typ := range AllConstitutionTypes() {
		profile := TongueProfileFor(typ)
		c := ClassifyTongue(TongueObservation{
			TongueColor:      profile.TongueColor,
			TongueShape:      profile.TongueShape,
			CoatingColor:     profile.CoatingColor,
			CoatingThickness: profile.CoatingThickness,
		})
		require.Equal(t, typ, c.Type, "profile of %s", typ.Code())
		require.Equal(t, 1.0, c.Confidence)
		require.Equal(t, 100, c.PerTypeScores[typ])
	}
}

func TestClassifyTongueConfidenceIsMaxOver100(t *testing.T) {
	obs := TongueObservation{
		TongueColor:      "绛", // 不属于任何典型舌象
		TongueShape:      "正常",
		CoatingColor:     "白苔",
		CoatingThickness: "薄苔",
	}
	c := ClassifyTongue(obs)

	maxScore := 0
	for _, s := range c.PerTypeScores {
		if s > maxScore {
			maxScore = s
		}
	}
	require.Equal(t, float64(maxScore)/100.0, c.Confidence)
	// 正常+白苔+薄苔 → 平和 70（舌色不中），血瘀 70；序号取平和
	require.Equal(t, Peace, c.Type)
	require.Equal(t, 70, c.PerTypeScores[Peace])
	require.Equal(t, 70, c.PerTypeScores[BloodStasis])
}

func TestClassifyTongueIdempotent(t *testing.T) {
	obs := TongueObservation{
		TongueColor:      "红",
		TongueShape:      "瘦薄",
		CoatingColor:     "黄苔",
		CoatingThickness: "剥落",
	}
	first := ClassifyTongue(obs)
	second := ClassifyTongue(obs)
	require.Equal(t, first, second)
}

func TestClassifyTongueAlwaysNineScores(t *testing.T) {
	c := ClassifyTongue(TongueObservation{
		TongueColor:      "紫",
		TongueShape:      "裂纹",
		CoatingColor:     "灰黑苔",
		CoatingThickness: "剥落",
	})
	require.Len(t, c.PerTypeScores, 9)
	for typ, s := range c.PerTypeScores {
		require.GreaterOrEqual(t, s, 0, "type %s", typ.Code())
		require.LessOrEqual(t, s, 100)
	}
}

func TestValidateObservation(t *testing.T) {
	valid := TongueObservation{
		TongueColor:      "淡红",
		TongueShape:      "正常",
		CoatingColor:     "白苔",
		CoatingThickness: "薄苔",
	}
	require.NoError(t, ValidateObservation(valid))

	bad := valid
	bad.TongueColor = "绿"
	require.Error(t, ValidateObservation(bad))

	bad = valid
	bad.TongueShape = ""
	require.Error(t, ValidateObservation(bad))

	bad = valid
	bad.CoatingColor = "薄苔" // 苔质值误填到苔色
	require.Error(t, ValidateObservation(bad))

	bad = valid
	bad.CoatingThickness = "白苔"
	require.Error(t, ValidateObservation(bad))
}
