package errs

import "fmt"

// ErrInvalidConfig Кастомная ошибка, сообщающая о некорректном значении параметра конфигурации.
type ErrInvalidConfig struct {
	Param string
	Value string
	Err   error
}

func (ic *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("некорректное значение `%s` параметра %s. Ошибка: %v", ic.Value, ic.Param, ic.Err)
}

func (ic *ErrInvalidConfig) Unwrap() error {
	return ic.Err
}

func NewErrInvalidConfig(param, value string, err error) *ErrInvalidConfig {
	return &ErrInvalidConfig{
		Param: param,
		Value: value,
		Err:   err,
	}
}
