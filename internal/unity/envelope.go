package unity

import (
	"encoding/json"
	"fmt"
)

// Args Значения логических аргументов операции.
type Args map[Arg]any

// Envelope Тело запроса к серверу движка.
type Envelope struct {
	Command    Command        `json:"command"`
	Parameters map[string]any `json:"parameters"`
}

// NewEnvelope Сборка тела запроса по таблице ключей команды.
// Необязательные аргументы с пустой строкой (или nil) не попадают в parameters.
// Обязательные аргументы передаются всегда, даже пустые: их проверяет сервер.
func NewEnvelope(cmd Command, args Args) (Envelope, error) {
	params, ok := schemas[cmd]
	if !ok {
		return Envelope{}, fmt.Errorf("неизвестная команда %q", cmd)
	}

	known := make(map[Arg]struct{}, len(params))
	parameters := make(map[string]any, len(params))

	for _, p := range params {
		known[p.Arg] = struct{}{}

		value, present := args[p.Arg]
		if p.Optional && (!present || isBlank(value)) {
			continue
		}

		parameters[p.Key] = value
	}

	for arg := range args {
		if _, ok := known[arg]; !ok {
			return Envelope{}, fmt.Errorf("аргумент %q не поддерживается командой %s", arg, cmd)
		}
	}

	return Envelope{Command: cmd, Parameters: parameters}, nil
}

// Marshal JSON представление тела запроса.
func (e Envelope) Marshal() ([]byte, error) {
	if e.Parameters == nil {
		e.Parameters = map[string]any{}
	}

	return json.Marshal(e)
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	}
	return false
}
