package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config trả về giá trị biến môi trường theo key
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		// không có file .env thì dùng env của hệ thống
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
