package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/unity-scene-client/cmd/unityctl/cmd"
)

func main() {
	// загружаем переменные окружения из .env, если файл есть
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Println("Не удалось загрузить .env:", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
