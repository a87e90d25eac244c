package config

import (
	"os"
	"strconv"
)

// GetEnv membaca variabel lingkungan dengan nilai fallback bila kosong.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt seperti GetEnv untuk nilai integer; nilai yang tidak bisa
// di-parse jatuh ke fallback.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
