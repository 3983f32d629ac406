package repository

import "encoding/json"

// jsonStrings []string 编码为 JSONB 数组字面量，nil 按空数组写入
func jsonStrings(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("[]")
	}
	return b
}

// scanStrings JSONB 数组解码为 []string，解不开时返回空
func scanStrings(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var v []string
	if err := json.Unmarshal(raw, &v); err != nil {
		return []string{}
	}
	return v
}
