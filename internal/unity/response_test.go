package unity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeResponse Проверяет декодирование тела без изменения значения.
func TestDecodeResponse(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"success":true,"gameObjects":[{"name":"Main Camera","id":42}]}`))
	require.NoError(t, err)

	assert.True(t, resp.Success())
	objects, ok := resp.Get("gameObjects")
	require.True(t, ok)
	assert.Equal(t, []any{map[string]any{"name": "Main Camera", "id": json.Number("42")}}, objects)
}

// TestDecodeResponseEmpty Пустое тело - пустой объект, а не ошибка.
func TestDecodeResponseEmpty(t *testing.T) {
	resp, err := decodeResponse(nil)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, resp.Value)
	assert.Equal(t, map[string]any{}, resp.Fields())
	assert.False(t, resp.Success())
}

// TestDecodeResponseInvalid Проверяет ошибки декодирования.
func TestDecodeResponseInvalid(t *testing.T) {
	for _, body := range []string{
		"<html>",
		`{"success":`,
		`{"a":1} trailing`,
		`{"a":1}{}`,
		`{"a":1}}`,
		`{"a":1}]`,
		`[1,2]]`,
		"  \n",
	} {
		_, err := decodeResponse([]byte(body))
		assert.Error(t, err, body)
	}
}

// TestDecodeResponseNonObject Значение, не являющееся объектом, возвращается как есть.
func TestDecodeResponseNonObject(t *testing.T) {
	resp, err := decodeResponse([]byte(`["Assets/Scenes/Main.unity"]`))
	require.NoError(t, err)

	assert.Equal(t, []any{"Assets/Scenes/Main.unity"}, resp.Value)
	assert.Nil(t, resp.Fields())
	assert.False(t, resp.Success())

	_, ok := resp.Get("success")
	assert.False(t, ok)
}

// TestResponseSuccessTruthiness Проверяет истинность поля success.
func TestResponseSuccessTruthiness(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"true", `{"success":true}`, true},
		{"false", `{"success":false}`, false},
		{"нет поля", `{"message":"ok"}`, false},
		{"null", `{"success":null}`, false},
		{"единица", `{"success":1}`, true},
		{"ноль", `{"success":0}`, false},
		{"ноль с дробью", `{"success":0.0}`, false},
		{"непустая строка", `{"success":"yes"}`, true},
		{"пустая строка", `{"success":""}`, false},
		{"пустой массив", `{"success":[]}`, false},
		{"непустой объект", `{"success":{"a":1}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := decodeResponse([]byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp.Success())
		})
	}
}

// TestResponseMessage Проверяет чтение поля message.
func TestResponseMessage(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"success":false,"message":"GameObject not found"}`))
	require.NoError(t, err)
	assert.Equal(t, "GameObject not found", resp.Message())

	resp, err = decodeResponse([]byte(`{"message":5}`))
	require.NoError(t, err)
	assert.Equal(t, "", resp.Message())
}

// TestResponseMarshalJSON Ответ сериализуется в исходное значение, числа не теряют вид.
func TestResponseMarshalJSON(t *testing.T) {
	resp, err := decodeResponse([]byte(`{"count":3,"ratio":0.10,"success":true}`))
	require.NoError(t, err)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.Equal(t, `{"count":3,"ratio":0.10,"success":true}`, string(body))
}
