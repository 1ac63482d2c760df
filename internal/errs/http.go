package errs

import (
	"fmt"
	"net/http"
)

// Ограничение на длину тела ответа, попадающего в текст ошибки.
const maxBodyInError = 512

// ErrHTTPStatus Кастомная ошибка, сообщающая о том, что сервер ответил статусом вне диапазона 2xx.
type ErrHTTPStatus struct {
	StatusCode int
	Body       string
}

func (hs *ErrHTTPStatus) Error() string {
	body := hs.Body
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}

	if body == "" {
		return fmt.Sprintf("HTTP %d %s", hs.StatusCode, http.StatusText(hs.StatusCode))
	}

	return fmt.Sprintf("HTTP %d %s: %s", hs.StatusCode, http.StatusText(hs.StatusCode), body)
}

func NewErrHTTPStatus(statusCode int, body string) *ErrHTTPStatus {
	return &ErrHTTPStatus{
		StatusCode: statusCode,
		Body:       body,
	}
}
