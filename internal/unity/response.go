package unity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Response Декодированный ответ сервера движка. Значение не проверяется и не изменяется:
// обычно это объект с полем success и полями конкретной команды.
type Response struct {
	Value any
}

// decodeResponse Пустое тело считается пустым успешным результатом.
func decodeResponse(body []byte) (Response, error) {
	if len(body) == 0 {
		return Response{Value: map[string]any{}}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return Response{}, fmt.Errorf("ответ сервера не является JSON: %w", err)
	}

	// за первым значением ничего, кроме пробелов, быть не должно
	if _, err := dec.Token(); err != io.EOF {
		return Response{}, fmt.Errorf("ответ сервера не является JSON: лишние данные после значения")
	}

	return Response{Value: value}, nil
}

// Fields Поля ответа, если ответ является JSON объектом, иначе nil.
func (r Response) Fields() map[string]any {
	fields, _ := r.Value.(map[string]any)
	return fields
}

// Get Значение поля ответа.
func (r Response) Get(key string) (any, bool) {
	fields := r.Fields()
	if fields == nil {
		return nil, false
	}

	v, ok := fields[key]
	return v, ok
}

// Success Истинно ли поле success: true, ненулевое число, непустая строка, массив или объект.
func (r Response) Success() bool {
	v, _ := r.Get("success")
	return truthy(v)
}

// Message Текстовое поле message ответа, если оно есть.
func (r Response) Message() string {
	v, _ := r.Get("message")
	s, _ := v.(string)
	return s
}

// MarshalJSON Ответ сериализуется в исходное значение.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value)
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := val.Float64()
		return err == nil && f != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	}
	return true
}
