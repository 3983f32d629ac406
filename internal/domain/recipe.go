package domain

// Recipe 食谱（对应 recipes 表）
type Recipe struct {
	RecipeID    int    `db:"recipe_id" json:"recipe_id"`     // SERIAL, PRIMARY KEY
	Name        string `db:"name" json:"name"`               // VARCHAR(100), NOT NULL
	RecipeType  string `db:"recipe_type" json:"recipe_type"` // 粥/汤/菜/茶饮/糕点
	Difficulty  string `db:"difficulty" json:"difficulty"`   // 简单/中等/较难
	Description string `db:"description" json:"description"`
	Effects     string `db:"effects" json:"effects"` // 功效

	// 用料与做法
	Ingredients string `db:"ingredients" json:"ingredients"` // 文本，逗号分隔
	Steps       string `db:"steps" json:"steps"`             // 文本，分行

	CookMinutes int `db:"cook_minutes" json:"cook_minutes"`

	// 体质适配（体质代码列表，JSONB 数组）
	SuitableConstitutions []string `db:"suitable_constitutions" json:"suitable_constitutions"`
	AvoidConstitutions    []string `db:"avoid_constitutions" json:"avoid_constitutions"`

	ImageURL string `db:"image_url" json:"image_url"`
}
