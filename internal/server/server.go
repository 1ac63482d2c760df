package server

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/router"
)

// NewServer Создание нового сервера заглушки движка.
func NewServer(runAddress string, handler router.EngineHandler) *http.Server {
	mux := router.Router(handler)

	server := &http.Server{
		Addr:    runAddress,
		Handler: mux,
	}

	return server
}

// RunServer Запускает сервер в горутине и возвращает сам сервер и канал ошибок.
func RunServer(runAddress string, handler router.EngineHandler) (*http.Server, chan error) {
	server := NewServer(runAddress, handler)

	// канал ошибок сервера
	serverErrorCh := make(chan error, 1)

	go func() {
		defer close(serverErrorCh)

		logger.Get().Info("Сервер запущен", logger.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Error("Ошибка сервера", logger.Err(err))
			// отправляем ошибку в канал ошибок сервера
			serverErrorCh <- err
		}
	}()

	return server, serverErrorCh
}
