package domain

// ConstitutionInfo 体质静态资料：特征描述与调理原则
// 基于王琦院士 CCMQ 标准的九种体质资料整理，进程级只读
type ConstitutionInfo struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Diet            []string `json:"diet"`
	Exercise        []string `json:"exercise"`
	Lifestyle       []string `json:"lifestyle"`
	Taboos          []string `json:"taboos"`
}

// Advice 简版调理建议（舌诊记录随诊附带）
type Advice struct {
	Diet      string `json:"diet"`
	Lifestyle string `json:"lifestyle"`
}

var constitutionInfoTable = map[string]ConstitutionInfo{
	"peace": {
		Code:        "peace",
		Name:        "平和质",
		Description: "阴阳气血调和，体态适中，面色红润，精力充沛",
		Characteristics: []string{
			"体型匀称健壮", "面色、肤色润泽", "精力充沛，不易疲劳",
			"耐受寒热，睡眠良好", "性格随和开朗",
		},
		Diet:      []string{"饮食有节，不要过饥过饱", "食物搭配多样化", "清淡饮食，避免过饱"},
		Exercise:  []string{"适度运动，劳逸结合"},
		Lifestyle: []string{"规律作息，避免熬夜", "保持心情舒畅"},
		Taboos:    []string{"避免暴饮暴食", "避免长期偏食"},
	},
	"qi_deficiency": {
		Code:        "qi_deficiency",
		Name:        "气虚质",
		Description: "元气不足，气息低弱，机体功能状态低下",
		Characteristics: []string{
			"肌肉松软，容易疲劳", "面色苍白，目光少神",
			"气短懒言，容易出汗", "易感冒，尤其怕风",
		},
		Diet:      []string{"宜吃补气健脾食物，如山药、莲子、大枣、小米", "忌吃破气耗气食物，如山楂、大蒜、芥菜"},
		Exercise:  []string{"温和运动为主，如散步、太极拳、八段锦"},
		Lifestyle: []string{"避免过度劳累", "保证充足睡眠", "注意保暖，避免出汗受风"},
		Taboos:    []string{"忌剧烈运动", "忌过度用脑", "忌食寒凉"},
	},
	"yang_deficiency": {
		Code:        "yang_deficiency",
		Name:        "阳虚质",
		Description: "阳气不足，身体失于温煦，畏寒怕冷",
		Characteristics: []string{
			"肌肉松软，容易水肿", "面色发白，手足发凉",
			"怕冷喜热，精神不振", "易大便溏薄",
		},
		Diet:      []string{"宜吃温补阳气食物，如羊肉、韭菜、生姜、桂圆", "少吃生冷寒凉食物"},
		Exercise:  []string{"适度运动，以身体发热为度，如慢跑、快走"},
		Lifestyle: []string{"注意保暖，尤其腰腹和脚部", "多晒太阳"},
		Taboos:    []string{"忌食生冷", "避免长期受寒", "忌冷水澡"},
	},
	"yin_deficiency": {
		Code:        "yin_deficiency",
		Name:        "阴虚质",
		Description: "阴液亏少，以干燥失润、虚热内扰为主要特征",
		Characteristics: []string{
			"体形偏瘦", "口燥咽干，手足心热",
			"皮肤偏干，易生皱纹", "眠差，大便干燥",
		},
		Diet:      []string{"宜吃滋阴润燥食物，如百合、银耳、梨、鸭肉", "少吃辛辣温燥食物"},
		Exercise:  []string{"中小强度运动，避免大汗伤阴，如太极、瑜伽"},
		Lifestyle: []string{"避免熬夜", "保持心情舒畅", "居住环境宜湿润"},
		Taboos:    []string{"忌熬夜", "忌辛辣烧烤", "忌桑拿高温"},
	},
	"phlegm_damp": {
		Code:        "phlegm_damp",
		Name:        "痰湿质",
		Description: "痰湿凝聚，以形体肥胖、腹部肥满、口黏苔腻为主要特征",
		Characteristics: []string{
			"体形肥胖，腹部肥满松软", "面部皮肤油脂较多",
			"多汗且黏，胸闷痰多", "身重不爽，喜食肥甘",
		},
		Diet:      []string{"宜吃健脾利湿食物，如薏米、赤小豆、冬瓜、山药", "少吃肥甘厚腻、甜黏食物"},
		Exercise:  []string{"加强运动，循序渐进增加强度，如快走、游泳"},
		Lifestyle: []string{"保持居住环境干燥", "避免久坐贪睡"},
		Taboos:    []string{"忌肥甘厚腻", "忌暴饮暴食", "忌久居潮湿"},
	},
	"damp_heat": {
		Code:        "damp_heat",
		Name:        "湿热质",
		Description: "湿热内蕴，以面垢油光、口苦、苔黄腻为主要特征",
		Characteristics: []string{
			"面部油光，易生痤疮", "口苦口干，身重困倦",
			"大便黏滞不畅", "性情急躁易怒",
		},
		Diet:      []string{"宜吃清热利湿食物，如绿豆、苦瓜、芹菜、荸荠", "少吃辛辣油腻、甜食"},
		Exercise:  []string{"适合大强度运动消耗，如中长跑、游泳、球类"},
		Lifestyle: []string{"避免辛辣油腻烟酒", "保持皮肤清洁", "避免熬夜"},
		Taboos:    []string{"忌辛辣油炸", "忌烟酒", "忌熬夜湿热环境"},
	},
	"blood_stasis": {
		Code:        "blood_stasis",
		Name:        "血瘀质",
		Description: "血行不畅，以肤色晦暗、舌质紫暗等血瘀表现为主要特征",
		Characteristics: []string{
			"肤色晦暗，色素沉着", "容易出现瘀斑",
			"口唇暗淡，眼眶暗黑", "疼痛部位固定",
		},
		Diet:      []string{"宜吃活血化瘀食物，如山楂、黑豆、玫瑰花、桃仁", "少吃寒凉收涩食物"},
		Exercise:  []string{"适度运动促进气血运行，避免久坐"},
		Lifestyle: []string{"注意保暖", "保持心情愉快，避免郁怒"},
		Taboos:    []string{"忌久坐不动", "忌寒凉", "忌情绪压抑"},
	},
	"qi_depression": {
		Code:        "qi_depression",
		Name:        "气郁质",
		Description: "气机郁滞，以神情抑郁、忧虑脆弱为主要特征",
		Characteristics: []string{
			"神情抑郁，情感脆弱", "烦闷不乐，容易紧张",
			"多愁善感，无故叹气", "睡眠较差",
		},
		Diet:      []string{"宜吃疏肝理气食物，如玫瑰花、陈皮、佛手、金橘", "少吃收敛酸涩食物"},
		Exercise:  []string{"多做群体性、趣味性运动，如舞蹈、登山"},
		Lifestyle: []string{"保持心情舒畅，多参加户外活动", "培养兴趣爱好，多与人交流"},
		Taboos:    []string{"忌独处久坐", "忌压抑情绪", "忌浓茶咖啡过量"},
	},
	"special": {
		Code:        "special",
		Name:        "特禀质",
		Description: "先天失常，以过敏反应等为主要特征",
		Characteristics: []string{
			"容易过敏，常鼻塞打喷嚏", "易患哮喘、荨麻疹",
			"皮肤容易起划痕", "对季节变化适应差",
		},
		Diet:      []string{"饮食清淡均衡，如蜂蜜、大枣", "避免腥膻发物及含致敏物质的食物"},
		Exercise:  []string{"适度运动增强体质，避开花粉环境"},
		Lifestyle: []string{"保持室内清洁通风", "避免接触过敏源", "换季注意防护"},
		Taboos:    []string{"忌接触已知过敏原", "忌生冷辛辣", "忌养宠物落尘环境"},
	},
}

// InfoFor 按体质代码取静态资料；未知代码返回 false
func InfoFor(code string) (ConstitutionInfo, bool) {
	info, ok := constitutionInfoTable[code]
	return info, ok
}

// AdviceFor 按体质代码取简版调理建议（舌诊随诊用）
func AdviceFor(code string) Advice {
	info, ok := constitutionInfoTable[code]
	if !ok {
		info = constitutionInfoTable["peace"]
	}
	diet := ""
	if len(info.Diet) > 0 {
		diet = info.Diet[0]
	}
	lifestyle := ""
	if len(info.Lifestyle) > 0 {
		lifestyle = info.Lifestyle[0]
	}
	return Advice{Diet: diet, Lifestyle: lifestyle}
}
