package config

import (
	"os"
	"strings"
)

// DefaultVirusTotalBaseURL VirusTotal API地址
const DefaultVirusTotalBaseURL = "https://www.virustotal.com"

// Config 应用配置
type Config struct {
	Port              string
	VirusTotalKey     string
	VirusTotalBaseURL string
	LogLevel          string
}

// Load 从环境变量加载配置
// API key 只读取一次，不做校验，缺失时由上游鉴权失败体现
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "5000"),
		VirusTotalKey:     getEnv("VIRUSTOTAL_API_KEY", ""),
		VirusTotalBaseURL: strings.TrimRight(getEnv("VIRUSTOTAL_BASE_URL", DefaultVirusTotalBaseURL), "/"),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
