package assessment

// Polarity 题目计分方向
// direct: 得分 = 答案；inverse: 得分 = 6 - 答案（反向表述的题目）
type Polarity int

const (
	Direct Polarity = iota
	Inverse
)

// Question 问卷题目：序号（1 起）、归属体质、计分方向、题干
type Question struct {
	Number   int
	Type     ConstitutionType
	Polarity Polarity
	Content  string
}

// QuestionSchema 版本化的问卷定义，进程级只读
type QuestionSchema struct {
	Version   int
	Questions []Question
}

// QuestionCount 题目总数
func (s *QuestionSchema) QuestionCount() int { return len(s.Questions) }

// TypeCount 某体质的题目数（归一化分母 = 5 * TypeCount）
func (s *QuestionSchema) TypeCount(t ConstitutionType) int {
	n := 0
	for _, q := range s.Questions {
		if q.Type == t {
			n++
		}
	}
	return n
}

// AnswerOptions 5 级 Likert 选项文案（1-5）
var AnswerOptions = map[int]string{
	1: "没有",
	2: "很少",
	3: "有时",
	4: "经常",
	5: "总是",
}

// canonicalSchema 版本 1：基于 CCMQ 标准简化版的 30 题问卷
// 平和 4 题、气虚/阳虚/阴虚各 4 题、痰湿/湿热/血瘀/气郁各 3 题、特禀 2 题
// v1 全部正向计分；若后续版本将反向表述的平和质题目改为 inverse，
// 只需改这里的 Polarity，计分逻辑不动
var canonicalSchema = &QuestionSchema{
	Version: 1,
	Questions: []Question{
		// 平和质 (1-4)
		{Number: 1, Type: Peace, Polarity: Direct, Content: "您精力充沛吗？"},
		{Number: 2, Type: Peace, Polarity: Direct, Content: "您说话声音低弱无力吗？"},
		{Number: 3, Type: Peace, Polarity: Direct, Content: "您容易疲乏吗？"},
		{Number: 4, Type: Peace, Polarity: Direct, Content: "您面色晦暗或容易出现褐斑吗？"},
		// 气虚质 (5-8)
		{Number: 5, Type: QiDeficiency, Polarity: Direct, Content: "您容易疲乏吗？"},
		{Number: 6, Type: QiDeficiency, Polarity: Direct, Content: "您容易气短（呼吸短促，接不上气）吗？"},
		{Number: 7, Type: QiDeficiency, Polarity: Direct, Content: "您比一般人容易感冒吗？"},
		{Number: 8, Type: QiDeficiency, Polarity: Direct, Content: "您喜欢安静、不喜欢说话吗？"},
		// 阳虚质 (9-12)
		{Number: 9, Type: YangDeficiency, Polarity: Direct, Content: "您手脚发凉吗？"},
		{Number: 10, Type: YangDeficiency, Polarity: Direct, Content: "您胃、胳膊、膝盖怕冷吗？"},
		{Number: 11, Type: YangDeficiency, Polarity: Direct, Content: "您比一般人怕冷吗？"},
		{Number: 12, Type: YangDeficiency, Polarity: Direct, Content: "您吃凉东西会感到不舒服或怕吃凉的吗？"},
		// 阴虚质 (13-16)
		{Number: 13, Type: YinDeficiency, Polarity: Direct, Content: "您感到口干咽燥、总想喝水吗？"},
		{Number: 14, Type: YinDeficiency, Polarity: Direct, Content: "您手心脚心发热吗？"},
		{Number: 15, Type: YinDeficiency, Polarity: Direct, Content: "您皮肤或口唇干吗？"},
		{Number: 16, Type: YinDeficiency, Polarity: Direct, Content: "您便秘或大便干燥吗？"},
		// 痰湿质 (17-19)
		{Number: 17, Type: PhlegmDamp, Polarity: Direct, Content: "您感到胸闷或腹部胀满吗？"},
		{Number: 18, Type: PhlegmDamp, Polarity: Direct, Content: "您感到身体沉重不轻松或不爽快吗？"},
		{Number: 19, Type: PhlegmDamp, Polarity: Direct, Content: "您腹部肥满松软吗？"},
		// 湿热质 (20-22)
		{Number: 20, Type: DampHeat, Polarity: Direct, Content: "您面部或鼻部有油腻感或者油亮发光吗？"},
		{Number: 21, Type: DampHeat, Polarity: Direct, Content: "您容易生痤疮或疮疖吗？"},
		{Number: 22, Type: DampHeat, Polarity: Direct, Content: "您感到口苦或嘴里有异味吗？"},
		// 血瘀质 (23-25)
		{Number: 23, Type: BloodStasis, Polarity: Direct, Content: "您的皮肤在不知不觉中会出现青紫瘀斑吗？"},
		{Number: 24, Type: BloodStasis, Polarity: Direct, Content: "您的两颧部有细微红丝吗？"},
		{Number: 25, Type: BloodStasis, Polarity: Direct, Content: "您身体上有哪里疼痛，而且疼痛部位固定吗？"},
		// 气郁质 (26-28)
		{Number: 26, Type: QiDepression, Polarity: Direct, Content: "您感到闷闷不乐、情绪低沉吗？"},
		{Number: 27, Type: QiDepression, Polarity: Direct, Content: "您容易精神紧张、焦虑不安吗？"},
		{Number: 28, Type: QiDepression, Polarity: Direct, Content: "您无缘无故叹气吗？"},
		// 特禀质 (29-30)
		{Number: 29, Type: Special, Polarity: Direct, Content: "您没有感冒也会打喷嚏吗？"},
		{Number: 30, Type: Special, Polarity: Direct, Content: "您没有感冒也会鼻塞、流鼻涕吗？"},
	},
}

// CanonicalSchema 当前问卷定义（版本 1）
func CanonicalSchema() *QuestionSchema { return canonicalSchema }
