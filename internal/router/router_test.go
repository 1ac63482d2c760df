package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeHandler struct {
	commands int
	health   int
}

func (f *fakeHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	f.commands++
	w.WriteHeader(http.StatusOK)
}

func (f *fakeHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	f.health++
	w.WriteHeader(http.StatusOK)
}

// TestRouterRoutes Проверяет маршруты заглушки.
func TestRouterRoutes(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantCommands int
		wantHealth   int
	}{
		{name: "команда", method: http.MethodPost, path: "/", wantStatus: http.StatusOK, wantCommands: 1},
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantHealth: 1},
		{name: "GET на корень", method: http.MethodGet, path: "/", wantStatus: http.StatusMethodNotAllowed},
		{name: "неизвестный путь", method: http.MethodPost, path: "/api", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHandler{}
			w := httptest.NewRecorder()

			Router(h).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCommands, h.commands)
			assert.Equal(t, tt.wantHealth, h.health)
		})
	}
}
