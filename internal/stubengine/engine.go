package stubengine

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/unity-scene-client/internal/api/response"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/middleware"
	"github.com/trsv-dev/unity-scene-client/internal/unity"
)

// DefaultReplyBody Ответ заглушки на команду, для которой ответ не задан.
const DefaultReplyBody = `{"success":true}`

// Call Принятая заглушкой команда.
type Call struct {
	RequestID  string
	Command    unity.Command
	Parameters map[string]any
	ReceivedAt time.Time
}

// Reply Ответ заглушки на команду.
type Reply struct {
	Status int
	Body   string
}

// Engine Заглушка сервера движка: запоминает все команды и отвечает по таблице ответов.
// Сцену не моделирует.
type Engine struct {
	mu      sync.Mutex
	calls   []Call
	replies map[unity.Command]Reply
	queued  map[unity.Command][]Reply
}

// New Конструктор заглушки.
func New() *Engine {
	return &Engine{
		replies: make(map[unity.Command]Reply),
		queued:  make(map[unity.Command][]Reply),
	}
}

// Reply Постоянный ответ на команду.
func (e *Engine) Reply(cmd unity.Command, status int, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.replies[cmd] = Reply{Status: status, Body: body}
}

// ReplyOnce Ответ на ближайший вызов команды. Очередь разовых ответов приоритетнее постоянного.
func (e *Engine) ReplyOnce(cmd unity.Command, status int, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.queued[cmd] = append(e.queued[cmd], Reply{Status: status, Body: body})
}

// Calls Копия списка принятых команд в порядке поступления.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Call, len(e.calls))
	copy(out, e.calls)
	return out
}

// Reset Очистка принятых команд и таблицы ответов.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = nil
	e.replies = make(map[unity.Command]Reply)
	e.queued = make(map[unity.Command][]Reply)
}

// HandleCommand Обработчик POST / с телом {"command": ..., "parameters": {...}}.
func (e *Engine) HandleCommand(w http.ResponseWriter, r *http.Request) {
	var envelope struct {
		Command    unity.Command  `json:"command"`
		Parameters map[string]any `json:"parameters"`
	}

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	if err := dec.Decode(&envelope); err != nil {
		logger.Get().Warn("Некорректное тело команды", logger.Err(err))
		response.ErrorJSON(w, http.StatusBadRequest, "Некорректное тело команды")
		return
	}

	if envelope.Command == "" {
		response.ErrorJSON(w, http.StatusBadRequest, "Не указана команда")
		return
	}

	requestID := r.Header.Get(middleware.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	reply := e.record(Call{
		RequestID:  requestID,
		Command:    envelope.Command,
		Parameters: envelope.Parameters,
		ReceivedAt: time.Now(),
	})

	logger.Get().Info("Принята команда",
		logger.String("command", string(envelope.Command)),
		logger.String("request_id", requestID),
		logger.Int("status", reply.Status))

	response.Raw(w, reply.Status, reply.Body)
}

// HandleHealth Обработчик GET /healthz.
func (e *Engine) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Запоминает команду и выбирает ответ на неё.
func (e *Engine) record(call Call) Reply {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, call)

	if queue := e.queued[call.Command]; len(queue) > 0 {
		e.queued[call.Command] = queue[1:]
		return queue[0]
	}

	if reply, ok := e.replies[call.Command]; ok {
		return reply
	}

	if _, known := unity.Schema(call.Command); !known {
		body, _ := json.Marshal(response.Result{Success: false, Message: "Unknown command: " + string(call.Command)})
		return Reply{Status: http.StatusOK, Body: string(body)}
	}

	return Reply{Status: http.StatusOK, Body: DefaultReplyBody}
}
