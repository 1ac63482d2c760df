package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/unity-scene-client/internal/middleware"
)

// EngineHandler Обработчики заглушки сервера движка.
type EngineHandler interface {
	HandleCommand(w http.ResponseWriter, r *http.Request)
	HandleHealth(w http.ResponseWriter, r *http.Request)
}

// Router Роутер.
func Router(h EngineHandler) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)

	router.Post("/", h.HandleCommand)      // команды протокола
	router.Get("/healthz", h.HandleHealth) // проверка доступности

	return router
}
