package stubengine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/middleware"
	"github.com/trsv-dev/unity-scene-client/internal/unity"
)

func init() {
	logger.InitLogger("error", "stdout")
}

func postCommand(t *testing.T, e *Engine, body string, requestID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	w := httptest.NewRecorder()
	e.HandleCommand(w, req)

	return w
}

// TestHandleCommandDefaultReply Проверяет ответ по умолчанию и запись команды.
func TestHandleCommandDefaultReply(t *testing.T) {
	e := New()

	w := postCommand(t, e, `{"command":"create_gameobject","parameters":{"objectName":"Player"}}`, "req-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, DefaultReplyBody, w.Body.String())

	calls := e.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "req-1", calls[0].RequestID)
	assert.Equal(t, unity.CmdCreateGameObject, calls[0].Command)
	assert.Equal(t, map[string]any{"objectName": "Player"}, calls[0].Parameters)
	assert.False(t, calls[0].ReceivedAt.IsZero())
}

// TestHandleCommandGeneratesRequestID Проверяет генерацию идентификатора запроса, если клиент его не передал.
func TestHandleCommandGeneratesRequestID(t *testing.T) {
	e := New()

	postCommand(t, e, `{"command":"get_all_scenes","parameters":{}}`, "")

	calls := e.Calls()
	require.Len(t, calls, 1)
	assert.NotEmpty(t, calls[0].RequestID)
}

// TestHandleCommandBadEnvelope Проверяет ответы на некорректное тело.
func TestHandleCommandBadEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"не JSON", `not json`},
		{"нет команды", `{"parameters":{}}`},
		{"пустое тело", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()

			w := postCommand(t, e, tt.body, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, false, res["success"])
			assert.Empty(t, e.Calls())
		})
	}
}

// TestHandleCommandUnknownCommand Проверяет ответ на команду вне словаря.
func TestHandleCommandUnknownCommand(t *testing.T) {
	e := New()

	w := postCommand(t, e, `{"command":"reload_domain","parameters":{}}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Unknown command: reload_domain"}`, w.Body.String())
	assert.Len(t, e.Calls(), 1)
}

// TestReplyAndReplyOnce Проверяет приоритет разовых ответов над постоянным.
func TestReplyAndReplyOnce(t *testing.T) {
	e := New()
	e.Reply(unity.CmdAddComponent, http.StatusOK, `{"success":true,"message":"sticky"}`)
	e.ReplyOnce(unity.CmdAddComponent, http.StatusInternalServerError, `boom`)

	body := `{"command":"add_component","parameters":{"gameObjectName":"A","componentTypeName":"Rigidbody"}}`

	first := postCommand(t, e, body, "")
	second := postCommand(t, e, body, "")
	third := postCommand(t, e, body, "")

	assert.Equal(t, http.StatusInternalServerError, first.Code)
	assert.Equal(t, "boom", first.Body.String())
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"success":true,"message":"sticky"}`, second.Body.String())
	assert.Equal(t, second.Body.String(), third.Body.String())
	assert.Len(t, e.Calls(), 3)
}

// TestReset Проверяет очистку состояния заглушки.
func TestReset(t *testing.T) {
	e := New()
	e.Reply(unity.CmdGetAllScenes, http.StatusOK, `{"success":false}`)
	postCommand(t, e, `{"command":"get_all_scenes","parameters":{}}`, "")

	e.Reset()

	assert.Empty(t, e.Calls())
	w := postCommand(t, e, `{"command":"get_all_scenes","parameters":{}}`, "")
	assert.JSONEq(t, DefaultReplyBody, w.Body.String())
}

// TestHandleHealth Проверяет health-эндпоинт.
func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()

	New().HandleHealth(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
