package assessment

import "fmt"

// ConstitutionType 九种体质类型（CCMQ 标准）
// 声明顺序即固定序号，所有 argmax 并列时按序号取先者
type ConstitutionType int

const (
	Peace          ConstitutionType = iota // 平和质
	QiDeficiency                           // 气虚质
	YangDeficiency                         // 阳虚质
	YinDeficiency                          // 阴虚质
	PhlegmDamp                             // 痰湿质
	DampHeat                               // 湿热质
	BloodStasis                            // 血瘀质
	QiDepression                           // 气郁质
	Special                                // 特禀质

	numConstitutionTypes
)

var constitutionCodes = [numConstitutionTypes]string{
	"peace",
	"qi_deficiency",
	"yang_deficiency",
	"yin_deficiency",
	"phlegm_damp",
	"damp_heat",
	"blood_stasis",
	"qi_depression",
	"special",
}

var constitutionNames = [numConstitutionTypes]string{
	"平和质",
	"气虚质",
	"阳虚质",
	"阴虚质",
	"痰湿质",
	"湿热质",
	"血瘀质",
	"气郁质",
	"特禀质",
}

// ErrUnknownConstitution 体质代码不在九种之内
var ErrUnknownConstitution = fmt.Errorf("unknown constitution code")

// AllConstitutionTypes 按固定序号返回全部九种体质
func AllConstitutionTypes() []ConstitutionType {
	types := make([]ConstitutionType, 0, numConstitutionTypes)
	for t := Peace; t < numConstitutionTypes; t++ {
		types = append(types, t)
	}
	return types
}

// Code 体质代码（稳定标识，用于 JSON / 数据库）
func (t ConstitutionType) Code() string {
	if t < 0 || t >= numConstitutionTypes {
		return "unknown"
	}
	return constitutionCodes[t]
}

// Name 体质中文名称
func (t ConstitutionType) Name() string {
	if t < 0 || t >= numConstitutionTypes {
		return "未知"
	}
	return constitutionNames[t]
}

func (t ConstitutionType) String() string { return t.Code() }

// MarshalText 以体质代码序列化（json map key 也走这里）
func (t ConstitutionType) MarshalText() ([]byte, error) {
	if t < 0 || t >= numConstitutionTypes {
		return nil, fmt.Errorf("%w: ordinal %d", ErrUnknownConstitution, int(t))
	}
	return []byte(constitutionCodes[t]), nil
}

// UnmarshalText 从体质代码反序列化
func (t *ConstitutionType) UnmarshalText(text []byte) error {
	parsed, err := ParseConstitution(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseConstitution 解析体质代码；未知代码一律报错，不做静默兜底
func ParseConstitution(code string) (ConstitutionType, error) {
	for t := Peace; t < numConstitutionTypes; t++ {
		if constitutionCodes[t] == code {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownConstitution, code)
}

// ConstitutionName 按代码查中文名称；未知代码原样返回
func ConstitutionName(code string) string {
	if t, err := ParseConstitution(code); err == nil {
		return t.Name()
	}
	return code
}
