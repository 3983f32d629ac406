package domain

// Ingredient 食材（对应 ingredients 表）
type Ingredient struct {
	IngredientID int    `db:"ingredient_id" json:"ingredient_id"` // SERIAL, PRIMARY KEY
	Name         string `db:"name" json:"name"`                   // VARCHAR(100), NOT NULL
	Category     string `db:"category" json:"category"`           // 谷物/蔬菜/水果/肉类/水产/药食同源 等
	Nature       string `db:"nature" json:"nature"`               // 性：寒/凉/平/温/热
	Flavor       string `db:"flavor" json:"flavor"`               // 味：甘/酸/苦/辛/咸
	Meridians    string `db:"meridians" json:"meridians"`         // 归经，如 "脾、胃经"
	Effects      string `db:"effects" json:"effects"`             // 功效
	Description  string `db:"description" json:"description"`     // 简介

	// 体质适配（体质代码列表，JSONB 数组）
	SuitableConstitutions []string `db:"suitable_constitutions" json:"suitable_constitutions"`
	AvoidConstitutions    []string `db:"avoid_constitutions" json:"avoid_constitutions"`

	ImageURL string `db:"image_url" json:"image_url"` // 相对路径，出接口时经 CDN 客户端补全
}
