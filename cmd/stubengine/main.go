package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/unity-scene-client/internal/config"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/server"
	"github.com/trsv-dev/unity-scene-client/internal/stubengine"
)

// Заглушка Unity MCP сервера для прогонов без редактора.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// загружаем переменные окружения из .env, если файл есть
	if errEnv := godotenv.Load(); errEnv != nil && !os.IsNotExist(errEnv) {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	cfgFile := flag.String("c", "", "YAML файл конфигурации")
	address := flag.String("a", "", "адрес, на котором слушает заглушка")
	flag.Parse()

	cfg, err := config.InitConfig(*cfgFile)
	if err != nil {
		log.Println("Не удалось загрузить конфигурацию:", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.StubAddress = *address
	}

	logger.InitLogger(cfg.LogLevel, cfg.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Log.(*logger.SlogAdapter).Close()

	engine := stubengine.New()

	srv, serverErrorCh := server.RunServer(cfg.StubAddress, engine)

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return
		}
		logger.Log.Error("Ошибка сервера", logger.Err(err))
		return
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки заглушки", logger.String("sig", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.Err(err))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	logger.Log.Info("Принято команд", logger.Int("calls", len(engine.Calls())))
}
