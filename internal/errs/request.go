package errs

import "fmt"

// RequestFailedPrefix Общий префикс сообщения об ошибке запроса к движку.
const RequestFailedPrefix = "запрос к Unity MCP серверу не выполнен"

// ErrRequestFailed Кастомная ошибка, сообщающая о том, что запрос к серверу движка не выполнен:
// сетевая ошибка, таймаут, неуспешный HTTP статус или ответ, который не удалось декодировать.
// Логические ошибки движка (объект не найден и т.п.) приходят в теле ответа, а не здесь.
type ErrRequestFailed struct {
	Command string
	Err     error
}

func (rf *ErrRequestFailed) Error() string {
	return fmt.Sprintf("%s (команда %s): %v", RequestFailedPrefix, rf.Command, rf.Err)
}

func (rf *ErrRequestFailed) Unwrap() error {
	return rf.Err
}

func NewErrRequestFailed(command string, err error) *ErrRequestFailed {
	if err == nil {
		err = fmt.Errorf("неизвестная ошибка")
	}

	return &ErrRequestFailed{
		Command: command,
		Err:     err,
	}
}
