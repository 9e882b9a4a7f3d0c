package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize は.envがあれば読み込む。なければ環境変数をそのまま使う
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}
