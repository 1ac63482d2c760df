package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/unity-scene-client/internal/errs"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
)

const (
	// DefaultEndpoint Адрес Unity MCP сервера по умолчанию.
	DefaultEndpoint = "http://127.0.0.1:8080"
	// DefaultTimeout Таймаут одного запроса к серверу.
	DefaultTimeout = 5 * time.Second
	// RequestIDHeader Заголовок с идентификатором запроса.
	RequestIDHeader = "X-Request-Id"
)

// HTTPTransport Отправка команд POST-запросом на корневой путь сервера движка.
type HTTPTransport struct {
	endpoint   string
	httpClient *http.Client
}

// NormalizeEndpoint Убирает завершающие слэши из адреса. Пустой адрес заменяется адресом по умолчанию.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return DefaultEndpoint
	}

	return strings.TrimRight(endpoint, "/")
}

// NewHTTPTransport Конструктор HTTP транспорта. Если timeout <= 0 - используется DefaultTimeout.
func NewHTTPTransport(endpoint string, timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPTransport{
		endpoint: NormalizeEndpoint(endpoint),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint Адрес сервера, с которым работает транспорт.
func (t *HTTPTransport) Endpoint() string {
	return t.endpoint
}

// Timeout Таймаут одного запроса.
func (t *HTTPTransport) Timeout() time.Duration {
	return t.httpClient.Timeout
}

// Send Отправка тела запроса. Ответ со статусом вне 2xx возвращается как *errs.ErrHTTPStatus.
func (t *HTTPTransport) Send(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("не удалось сформировать HTTP запрос: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		logger.Get().Warn("Сервер движка недоступен",
			logger.String("endpoint", t.endpoint),
			logger.String("request_id", requestID),
			logger.Err(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать тело ответа: %w", err)
	}

	logger.Get().Debug("Получен ответ сервера движка",
		logger.String("request_id", requestID),
		logger.Int("status", resp.StatusCode),
		logger.Int("size", len(respBody)),
		logger.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.NewErrHTTPStatus(resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
