package assessment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstitutionCodesAndNames(t *testing.T) {
	types := AllConstitutionTypes()
	require.Len(t, types, 9)

	// 固定序号即声明顺序，平和质必须排第一
	require.Equal(t, Peace, types[0])
	require.Equal(t, QiDeficiency, types[1])
	require.Equal(t, Special, types[8])

	require.Equal(t, "peace", Peace.Code())
	require.Equal(t, "平和质", Peace.Name())
	require.Equal(t, "qi_deficiency", QiDeficiency.Code())
	require.Equal(t, "气虚质", QiDeficiency.Name())
	require.Equal(t, "special", Special.Code())
	require.Equal(t, "特禀质", Special.Name())
}

func TestParseConstitution(t *testing.T) {
	for _, typ := range AllConstitutionTypes() {
		parsed, err := ParseConstitution(typ.Code())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}

	_, err := ParseConstitution("fire_deficiency")
	require.ErrorIs(t, err, ErrUnknownConstitution)

	_, err = ParseConstitution("")
	require.ErrorIs(t, err, ErrUnknownConstitution)
}

func TestConstitutionTypeJSONMapKey(t *testing.T) {
	scores := NormalizedScores{
		Peace:        62.5,
		QiDeficiency: 40.0,
	}
	data, err := json.Marshal(scores)
	require.NoError(t, err)

	var decoded map[string]float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 62.5, decoded["peace"])
	require.Equal(t, 40.0, decoded["qi_deficiency"])

	var roundTrip NormalizedScores
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	require.Equal(t, scores, roundTrip)
}

func TestConstitutionName(t *testing.T) {
	require.Equal(t, "痰湿质", ConstitutionName("phlegm_damp"))
	// 未知代码原样返回，不兜底成平和
	require.Equal(t, "whatever", ConstitutionName("whatever"))
}
