package config

import (
	"os"
	"strconv"

	commoncfg "tcmcare-data/pkg/config"
)

// Config tcmcare-data（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  commoncfg.DatabaseConfig
	Redis     struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	Assets AssetsConfig
}

// AssetsConfig 静态资源（图片 CDN）服务配置
type AssetsConfig struct {
	BaseURL        string // 资源服务地址，空则返回相对路径
	UploadEndpoint string // 上传接口路径（导入工具用）
	TimeoutSeconds int
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true for local dev: if DB is unavailable, tcmcare-data falls back
	// to in-memory storage so the API still answers with seeded catalog data.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "tcmcare")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	// 图片资源服务配置
	cfg.Assets.BaseURL = getEnv("ASSETS_BASE_URL", "")
	cfg.Assets.UploadEndpoint = getEnv("ASSETS_UPLOAD_ENDPOINT", "/upload")
	cfg.Assets.TimeoutSeconds = parseInt(getEnv("ASSETS_TIMEOUT_SECONDS", "10"), 10)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
