package domain

// Acupoint 穴位（对应 acupoints 表）
type Acupoint struct {
	AcupointID  int    `db:"acupoint_id" json:"acupoint_id"` // SERIAL, PRIMARY KEY
	Name        string `db:"name" json:"name"`               // 穴位名，如 "足三里"
	Pinyin      string `db:"pinyin" json:"pinyin"`           // 拼音，如 "Zusanli"
	Code        string `db:"code" json:"code"`               // 国际代码，如 "ST36"
	Meridian    string `db:"meridian" json:"meridian"`       // 所属经络
	BodyPart    string `db:"body_part" json:"body_part"`     // 部位：头面/胸腹/上肢/下肢/腰背
	Location    string `db:"location" json:"location"`       // 定位描述
	Functions   string `db:"functions" json:"functions"`     // 功效
	Indications string `db:"indications" json:"indications"` // 主治
	Technique   string `db:"technique" json:"technique"`     // 按摩方法

	// 体质适配（体质代码列表，JSONB 数组）
	SuitableConstitutions []string `db:"suitable_constitutions" json:"suitable_constitutions"`

	ImageURL string `db:"image_url" json:"image_url"`
}
