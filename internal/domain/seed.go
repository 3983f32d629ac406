package domain

// 内置样例目录数据：无数据库时的内存目录与 seed-catalog 初始导入共用
// 内容摘自食材/食谱/穴位数据库的代表性条目

// SeedIngredients 样例食材
var SeedIngredients = []Ingredient{
	{
		IngredientID: 1, Name: "山药", Category: "药食同源", Nature: "平", Flavor: "甘",
		Meridians: "脾、肺、肾经", Effects: "补脾养胃，生津益肺，补肾涩精",
		Description:           "补气健脾常用食材，适合煮粥炖汤",
		SuitableConstitutions: []string{"qi_deficiency", "yang_deficiency", "phlegm_damp"},
		AvoidConstitutions:    []string{"damp_heat"},
		ImageURL:              "ingredients/shanyao.jpg",
	},
	{
		IngredientID: 2, Name: "薏米", Category: "谷物", Nature: "凉", Flavor: "甘、淡",
		Meridians: "脾、胃、肺经", Effects: "健脾渗湿，除痹止泻",
		Description:           "利水渗湿要品，痰湿体质常用",
		SuitableConstitutions: []string{"phlegm_damp", "damp_heat"},
		AvoidConstitutions:    []string{"yang_deficiency"},
		ImageURL:              "ingredients/yimi.jpg",
	},
	{
		IngredientID: 3, Name: "羊肉", Category: "肉类", Nature: "温", Flavor: "甘",
		Meridians: "脾、肾经", Effects: "温中健脾，补肾壮阳",
		Description:           "冬令温补佳品",
		SuitableConstitutions: []string{"yang_deficiency", "qi_deficiency"},
		AvoidConstitutions:    []string{"yin_deficiency", "damp_heat"},
		ImageURL:              "ingredients/yangrou.jpg",
	},
	{
		IngredientID: 4, Name: "百合", Category: "药食同源", Nature: "微寒", Flavor: "甘",
		Meridians: "心、肺经", Effects: "养阴润肺，清心安神",
		Description:           "阴虚燥咳、失眠多梦常用",
		SuitableConstitutions: []string{"yin_deficiency"},
		AvoidConstitutions:    []string{"yang_deficiency"},
		ImageURL:              "ingredients/baihe.jpg",
	},
	{
		IngredientID: 5, Name: "绿豆", Category: "豆类", Nature: "寒", Flavor: "甘",
		Meridians: "心、胃经", Effects: "清热解毒，消暑利水",
		Description:           "夏季解暑常备",
		SuitableConstitutions: []string{"damp_heat"},
		AvoidConstitutions:    []string{"yang_deficiency", "qi_deficiency"},
		ImageURL:              "ingredients/lvdou.jpg",
	},
	{
		IngredientID: 6, Name: "山楂", Category: "水果", Nature: "微温", Flavor: "酸、甘",
		Meridians: "脾、胃、肝经", Effects: "消食健胃，行气散瘀",
		Description:           "血瘀体质行气散瘀常用",
		SuitableConstitutions: []string{"blood_stasis", "phlegm_damp"},
		AvoidConstitutions:    []string{"qi_deficiency"},
		ImageURL:              "ingredients/shanzha.jpg",
	},
	{
		IngredientID: 7, Name: "玫瑰花", Category: "药食同源", Nature: "温", Flavor: "甘、微苦",
		Meridians: "肝、脾经", Effects: "疏肝解郁，活血止痛",
		Description:           "气郁体质代茶饮常用",
		SuitableConstitutions: []string{"qi_depression", "blood_stasis"},
		AvoidConstitutions:    []string{},
		ImageURL:              "ingredients/meiguihua.jpg",
	},
	{
		IngredientID: 8, Name: "大枣", Category: "水果", Nature: "温", Flavor: "甘",
		Meridians: "脾、胃经", Effects: "补中益气，养血安神",
		Description:           "补气养血日常食材",
		SuitableConstitutions: []string{"qi_deficiency", "peace"},
		AvoidConstitutions:    []string{"phlegm_damp", "damp_heat"},
		ImageURL:              "ingredients/dazao.jpg",
	},
}

// SeedRecipes 样例食谱
var SeedRecipes = []Recipe{
	{
		RecipeID: 1, Name: "山药大枣粥", RecipeType: "粥", Difficulty: "简单",
		Description: "补气健脾的家常早餐粥", Effects: "补脾益气",
		Ingredients: "山药,大枣,粳米", Steps: "1.山药去皮切块\n2.与大枣、粳米同煮40分钟",
		CookMinutes:           45,
		SuitableConstitutions: []string{"qi_deficiency", "yang_deficiency"},
		AvoidConstitutions:    []string{"damp_heat"},
		ImageURL:              "recipes/shanyao-dazao-zhou.jpg",
	},
	{
		RecipeID: 2, Name: "薏米赤小豆汤", RecipeType: "汤", Difficulty: "简单",
		Description: "经典祛湿汤饮", Effects: "健脾利湿",
		Ingredients: "薏米,赤小豆", Steps: "1.薏米赤小豆浸泡2小时\n2.大火烧开转小火煮1小时",
		CookMinutes:           75,
		SuitableConstitutions: []string{"phlegm_damp", "damp_heat"},
		AvoidConstitutions:    []string{"yang_deficiency"},
		ImageURL:              "recipes/yimi-chixiaodou.jpg",
	},
	{
		RecipeID: 3, Name: "当归生姜羊肉汤", RecipeType: "汤", Difficulty: "中等",
		Description: "出自《金匮要略》的温补名方", Effects: "温中补血，祛寒止痛",
		Ingredients: "羊肉,当归,生姜", Steps: "1.羊肉焯水\n2.与当归、生姜同炖90分钟",
		CookMinutes:           100,
		SuitableConstitutions: []string{"yang_deficiency"},
		AvoidConstitutions:    []string{"yin_deficiency", "damp_heat"},
		ImageURL:              "recipes/danggui-yangrou.jpg",
	},
	{
		RecipeID: 4, Name: "银耳百合羹", RecipeType: "糕点", Difficulty: "简单",
		Description: "滋阴润燥的秋季甜品", Effects: "养阴润肺",
		Ingredients: "银耳,百合,冰糖", Steps: "1.银耳泡发撕小朵\n2.与百合慢炖至胶出，加冰糖",
		CookMinutes:           60,
		SuitableConstitutions: []string{"yin_deficiency"},
		AvoidConstitutions:    []string{"phlegm_damp"},
		ImageURL:              "recipes/yiner-baihe.jpg",
	},
	{
		RecipeID: 5, Name: "玫瑰陈皮茶", RecipeType: "茶饮", Difficulty: "简单",
		Description: "疏肝理气代茶饮", Effects: "疏肝解郁，理气和中",
		Ingredients: "玫瑰花,陈皮", Steps: "1.沸水冲泡5分钟即可",
		CookMinutes:           5,
		SuitableConstitutions: []string{"qi_depression"},
		AvoidConstitutions:    []string{},
		ImageURL:              "recipes/meigui-chenpi.jpg",
	},
	{
		RecipeID: 6, Name: "绿豆冬瓜汤", RecipeType: "汤", Difficulty: "简单",
		Description: "清热消暑家常汤", Effects: "清热利湿",
		Ingredients: "绿豆,冬瓜", Steps: "1.绿豆煮至开花\n2.下冬瓜块再煮15分钟",
		CookMinutes:           50,
		SuitableConstitutions: []string{"damp_heat"},
		AvoidConstitutions:    []string{"yang_deficiency"},
		ImageURL:              "recipes/lvdou-donggua.jpg",
	},
}

// SeedAcupoints 样例穴位
var SeedAcupoints = []Acupoint{
	{
		AcupointID: 1, Name: "足三里", Pinyin: "Zusanli", Code: "ST36",
		Meridian: "足阳明胃经", BodyPart: "下肢",
		Location:  "小腿外侧，犊鼻下3寸，胫骨前嵴外一横指",
		Functions: "健脾和胃，扶正培元", Indications: "胃痛、腹胀、消化不良、体虚乏力",
		Technique:             "拇指按揉，每次3-5分钟，以酸胀为度",
		SuitableConstitutions: []string{"qi_deficiency", "yang_deficiency", "phlegm_damp"},
		ImageURL:              "acupoints/zusanli.jpg",
	},
	{
		AcupointID: 2, Name: "关元", Pinyin: "Guanyuan", Code: "CV4",
		Meridian: "任脉", BodyPart: "胸腹",
		Location:  "下腹部，前正中线上，脐下3寸",
		Functions: "培元固本，补益下焦", Indications: "畏寒肢冷、神疲乏力、小腹冷痛",
		Technique:             "掌根揉按或艾灸，每次10-15分钟",
		SuitableConstitutions: []string{"yang_deficiency", "qi_deficiency"},
		ImageURL:              "acupoints/guanyuan.jpg",
	},
	{
		AcupointID: 3, Name: "三阴交", Pinyin: "Sanyinjiao", Code: "SP6",
		Meridian: "足太阴脾经", BodyPart: "下肢",
		Location:  "小腿内侧，内踝尖上3寸，胫骨内侧缘后际",
		Functions: "健脾益血，调肝补肾", Indications: "失眠、月经不调、脾胃虚弱",
		Technique:             "拇指按揉，每次3-5分钟",
		SuitableConstitutions: []string{"yin_deficiency", "blood_stasis", "qi_depression"},
		ImageURL:              "acupoints/sanyinjiao.jpg",
	},
	{
		AcupointID: 4, Name: "丰隆", Pinyin: "Fenglong", Code: "ST40",
		Meridian: "足阳明胃经", BodyPart: "下肢",
		Location:  "小腿外侧，外踝尖上8寸，条口外一横指",
		Functions: "化痰祛湿，和胃降逆", Indications: "痰多、头晕、胸闷",
		Technique:             "指腹点按，每次2-3分钟，双侧交替",
		SuitableConstitutions: []string{"phlegm_damp", "damp_heat"},
		ImageURL:              "acupoints/fenglong.jpg",
	},
	{
		AcupointID: 5, Name: "太冲", Pinyin: "Taichong", Code: "LR3",
		Meridian: "足厥阴肝经", BodyPart: "下肢",
		Location:  "足背，第1、2跖骨间，跖骨底结合部前方凹陷中",
		Functions: "疏肝解郁，平肝熄风", Indications: "情绪抑郁、烦躁易怒、头痛眩晕",
		Technique:             "拇指向脚趾方向推按，每次2-3分钟",
		SuitableConstitutions: []string{"qi_depression", "damp_heat"},
		ImageURL:              "acupoints/taichong.jpg",
	},
	{
		AcupointID: 6, Name: "血海", Pinyin: "Xuehai", Code: "SP10",
		Meridian: "足太阴脾经", BodyPart: "下肢",
		Location:  "股前区，髌底内侧端上2寸，股内侧肌隆起处",
		Functions: "活血化瘀，调经统血", Indications: "月经不调、瘀斑、皮肤瘙痒",
		Technique:             "拇指按揉，每次3分钟，以酸胀为度",
		SuitableConstitutions: []string{"blood_stasis"},
		ImageURL:              "acupoints/xuehai.jpg",
	},
}

// SeedExercises 样例运动/功法
var SeedExercises = []Exercise{
	{
		ExerciseID: 1, Name: "八段锦·两手托天理三焦", NameEn: "Baduanjin: Holding up the Sky",
		Description: "八段锦起式，拉伸三焦，调理气机", ExerciseType: "baduanjin",
		Difficulty: "beginner", DurationSeconds: 180, Repetitions: "8次 x 2组",
		Instructions:        "1.两脚开立与肩同宽\n2.双手交叉上托至头顶\n3.目随手走，缓慢呼吸",
		Benefits:            "疏通三焦，提振阳气",
		Contraindicated:     "肩部急性损伤者慎做",
		TargetConstitutions: []string{"qi_deficiency", "yang_deficiency", "peace"},
		VideoURL:            "exercises/baduanjin-1.mp4",
		ImageURL:            "exercises/baduanjin-1.jpg",
	},
	{
		ExerciseID: 2, Name: "太极拳·云手", NameEn: "Tai Chi: Cloud Hands",
		Description: "太极基础式，动作舒缓连绵", ExerciseType: "tai_chi",
		Difficulty: "intermediate", DurationSeconds: 300, Repetitions: "左右各8次",
		Instructions:        "1.重心左右转换\n2.双手如抱球交替画圆",
		Benefits:            "调和气血，宁心安神",
		TargetConstitutions: []string{"qi_depression", "blood_stasis", "peace"},
		VideoURL:            "exercises/taichi-yunshou.mp4",
		ImageURL:            "exercises/taichi-yunshou.jpg",
	},
	{
		ExerciseID: 3, Name: "腹式呼吸法", NameEn: "Abdominal Breathing",
		Description: "睡前放松呼吸练习", ExerciseType: "breathing",
		Difficulty: "beginner", DurationSeconds: 300, Repetitions: "10分钟",
		Instructions:        "1.仰卧或静坐\n2.吸气鼓腹4秒，呼气收腹6秒",
		Benefits:            "安神助眠，降气除烦",
		TargetConstitutions: []string{"yin_deficiency", "qi_depression", "qi_deficiency"},
		VideoURL:            "exercises/breathing.mp4",
		ImageURL:            "exercises/breathing.jpg",
	},
	{
		ExerciseID: 4, Name: "五禽戏·熊戏", NameEn: "Wuqinxi: Bear Play",
		Description: "模仿熊的沉稳晃运，健运脾胃", ExerciseType: "wuqinxi",
		Difficulty: "intermediate", DurationSeconds: 240, Repetitions: "左右各6次",
		Instructions:        "1.屈膝沉髋\n2.以腰带肩缓慢晃动",
		Benefits:            "健脾化湿，强腰固肾",
		TargetConstitutions: []string{"phlegm_damp", "damp_heat", "yang_deficiency"},
		VideoURL:            "exercises/wuqinxi-xiong.mp4",
		ImageURL:            "exercises/wuqinxi-xiong.jpg",
	},
	{
		ExerciseID: 5, Name: "易筋经·韦驮献杵", NameEn: "Yijinjing: Wei Tuo Presenting the Pestle",
		Description: "易筋经首式，养气蓄劲", ExerciseType: "yijinjing",
		Difficulty: "advanced", DurationSeconds: 360, Repetitions: "静立3分钟 x 2",
		Instructions:        "1.两臂平举环抱\n2.沉肩坠肘，气沉丹田",
		Benefits:            "强筋壮骨，培元固本",
		Contraindicated:     "高血压患者避免长时间静立",
		TargetConstitutions: []string{"qi_deficiency", "special"},
		VideoURL:            "exercises/yijinjing-1.mp4",
		ImageURL:            "exercises/yijinjing-1.jpg",
	},
	{
		ExerciseID: 6, Name: "放松功", NameEn: "Relaxation Qigong",
		Description: "晚间舒缓放松气功", ExerciseType: "qigong",
		Difficulty: "advanced", DurationSeconds: 600, Repetitions: "15分钟",
		Instructions:        "1.三线放松，自上而下\n2.意随息走，逐段放松",
		Benefits:            "解郁除烦，改善睡眠",
		TargetConstitutions: []string{"qi_depression", "yin_deficiency"},
		VideoURL:            "exercises/fangsonggong.mp4",
		ImageURL:            "exercises/fangsonggong.jpg",
	},
}

// SeedCourses 样例养生课程
var SeedCourses = []Course{
	{
		CourseID: 1, Title: "气虚体质的四季调养", Description: "从饮食、起居、运动三方面讲解气虚质调理",
		Category: "体质调理", ContentType: "video", ContentURL: "courses/qixu-siji.mp4",
		DurationMin: 25, Author: "王明", AuthorTitle: "主任中医师",
		CoverImage:            "courses/qixu-siji.jpg",
		SuitableConstitutions: []string{"qi_deficiency"},
		Seasons:               []string{"spring", "autumn", "winter"},
	},
	{
		CourseID: 2, Title: "认识你的舌象", Description: "舌色、舌形、苔色、苔质的观察方法入门",
		Category: "中医入门", ContentType: "article", ContentURL: "courses/shexiang-rumen.html",
		DurationMin: 10, Author: "李华", AuthorTitle: "中医师",
		CoverImage:            "courses/shexiang-rumen.jpg",
		SuitableConstitutions: []string{},
		Seasons:               []string{},
	},
	{
		CourseID: 3, Title: "夏季祛湿食疗课", Description: "湿热、痰湿体质的夏季食疗方案",
		Category: "饮食调理", ContentType: "video", ContentURL: "courses/xiaji-qushi.mp4",
		DurationMin: 18, Author: "王明", AuthorTitle: "主任中医师",
		CoverImage:            "courses/xiaji-qushi.jpg",
		SuitableConstitutions: []string{"phlegm_damp", "damp_heat"},
		Seasons:               []string{"summer"},
	},
	{
		CourseID: 4, Title: "睡前安神音频课", Description: "阴虚、气郁体质的助眠引导练习",
		Category: "情志调养", ContentType: "audio", ContentURL: "courses/anshen-yinpin.mp3",
		DurationMin: 15, Author: "赵琳", AuthorTitle: "心理咨询师",
		CoverImage:            "courses/anshen-yinpin.jpg",
		SuitableConstitutions: []string{"yin_deficiency", "qi_depression"},
		Seasons:               []string{"winter"},
	},
}

// SeedRoutines 样例作息方案
var SeedRoutines = []DailyRoutine{
	{
		RoutineID: 1, Name: "补气养生作息", Description: "气虚、阳虚体质的温养作息安排",
		TargetConstitutions: []string{"qi_deficiency", "yang_deficiency"},
		WakeTime:            "06:30", SleepTime: "22:00",
		MorningRoutine:   []string{"起床后温水一杯", "八段锦20分钟", "早餐宜温热"},
		AfternoonRoutine: []string{"午餐后散步15分钟", "午休30分钟"},
		EveningRoutine:   []string{"晚餐七分饱", "热水泡脚15分钟", "22点前入睡"},
		MealTimings:      []string{"07:00 早餐", "12:00 午餐", "18:00 晚餐"},
		Tips:             []string{"避免过度劳累", "注意腰腹保暖"},
	},
	{
		RoutineID: 2, Name: "滋阴安神作息", Description: "阴虚体质的养阴作息安排",
		TargetConstitutions: []string{"yin_deficiency"},
		WakeTime:            "06:30", SleepTime: "22:30",
		MorningRoutine:   []string{"晨起叩齿咽津", "温和拉伸10分钟"},
		AfternoonRoutine: []string{"午后避免暴晒", "下午茶饮百合银耳羹"},
		EveningRoutine:   []string{"睡前腹式呼吸10分钟", "避免夜间剧烈运动"},
		MealTimings:      []string{"07:00 早餐", "12:00 午餐", "18:30 晚餐"},
		Tips:             []string{"熬夜最伤阴，23点前务必入睡", "少食辛辣烧烤"},
	},
	{
		RoutineID: 3, Name: "平和保健作息", Description: "平和体质的日常维持方案",
		TargetConstitutions: []string{"peace"},
		WakeTime:            "06:30", SleepTime: "22:30",
		MorningRoutine:   []string{"晨练30分钟，形式不限"},
		AfternoonRoutine: []string{"保持适量活动"},
		EveningRoutine:   []string{"睡前少用电子设备"},
		MealTimings:      []string{"07:00 早餐", "12:00 午餐", "18:00 晚餐"},
		Tips:             []string{"饮食有节，起居有常"},
	},
}
