package domain

// SeasonPlan 季节养生静态资料
type SeasonPlan struct {
	Season      string   `json:"season"`
	SeasonName  string   `json:"season_name"`
	Principles  []string `json:"principles"`
	Ingredients []string `json:"ingredients"` // 应季推荐食材
	Recipes     []string `json:"recipes"`     // 应季推荐食谱
}

// Seasons 季节编码顺序（接口枚举用）
var Seasons = []string{"spring", "summer", "autumn", "winter"}

var seasonPlans = map[string]SeasonPlan{
	"spring": {
		Season:     "spring",
		SeasonName: "春季",
		Principles: []string{
			"春养肝，宜疏肝理气", "夜卧早起，广步于庭",
			"少酸增甘，以养脾气", "注意春捂，防风邪",
		},
		Ingredients: []string{"韭菜", "菠菜", "香椿", "荠菜", "山药", "大枣"},
		Recipes:     []string{"韭菜炒蛋", "荠菜豆腐汤", "山药大枣粥"},
	},
	"summer": {
		Season:     "summer",
		SeasonName: "夏季",
		Principles: []string{
			"夏养心，宜清心降火", "夜卧早起，无厌于日",
			"清淡饮食，适当苦味", "防暑湿，忌贪凉饮冷",
		},
		Ingredients: []string{"绿豆", "苦瓜", "冬瓜", "荷叶", "莲子", "西瓜"},
		Recipes:     []string{"绿豆汤", "苦瓜炒蛋", "冬瓜莲子汤"},
	},
	"autumn": {
		Season:     "autumn",
		SeasonName: "秋季",
		Principles: []string{
			"秋养肺，宜滋阴润燥", "早卧早起，与鸡俱兴",
			"少辛增酸，润肺生津", "注意秋冻有度",
		},
		Ingredients: []string{"百合", "银耳", "梨", "蜂蜜", "芝麻", "莲藕"},
		Recipes:     []string{"银耳百合羹", "冰糖炖梨", "莲藕排骨汤"},
	},
	"winter": {
		Season:     "winter",
		SeasonName: "冬季",
		Principles: []string{
			"冬养肾，宜温补藏精", "早卧晚起，必待日光",
			"适当进补，温热为主", "避寒就温，护住腰腹",
		},
		Ingredients: []string{"羊肉", "黑豆", "黑芝麻", "核桃", "桂圆", "生姜"},
		Recipes:     []string{"当归生姜羊肉汤", "黑豆核桃粥", "桂圆红枣茶"},
	},
}

// SeasonPlanFor 按季节编码取养生资料；未知季节返回 false
func SeasonPlanFor(season string) (SeasonPlan, bool) {
	plan, ok := seasonPlans[season]
	return plan, ok
}

// FoodPairing 食物相克条目
type FoodPairing struct {
	FoodA  string `json:"food_a"`
	FoodB  string `json:"food_b"`
	Reason string `json:"reason"`
}

// incompatiblePairs 传统饮食禁忌对照表（民间经验整理，仅作提示）
var incompatiblePairs = []FoodPairing{
	{"螃蟹", "柿子", "二者皆寒，同食易致腹泻"},
	{"萝卜", "人参", "萝卜破气，削弱人参补气之效"},
	{"羊肉", "西瓜", "温热与生冷同食，伤脾胃阳气"},
	{"豆腐", "菠菜", "草酸与钙结合，影响钙吸收"},
	{"蜂蜜", "葱", "传统认为同食易致不适"},
	{"柿子", "红薯", "同食易生胃石"},
}

// CheckPairing 查两种食物是否相克；次序无关
func CheckPairing(a, b string) (FoodPairing, bool) {
	for _, p := range incompatiblePairs {
		if (p.FoodA == a && p.FoodB == b) || (p.FoodA == b && p.FoodB == a) {
			return p, true
		}
	}
	return FoodPairing{}, false
}
