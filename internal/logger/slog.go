package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogAdapter Адаптер для логгера slog.
type SlogAdapter struct {
	slog   *slog.Logger
	output io.Closer
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) {
	s.slog.Debug(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Info(msg string, fields ...Field) {
	s.slog.Info(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Error(msg string, fields ...Field) {
	s.slog.Error(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Warn(msg string, fields ...Field) {
	s.slog.Warn(msg, convertFields(fields)...)
}

// Close Закрывает файл логов, если логирование идёт в файл.
func (s *SlogAdapter) Close() error {
	if s.output == nil {
		return nil
	}

	return s.output.Close()
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: strconv.Itoa(val),
	}
}

func Int64(key string, val int64) Field {
	return Field{
		Key:   key,
		Value: strconv.FormatInt(val, 10),
	}
}

func Duration(key string, val time.Duration) Field {
	return Field{
		Key:   key,
		Value: val.String(),
	}
}

// Err Поле с текстом ошибки под ключом "err".
func Err(err error) Field {
	if err == nil {
		return String("err", "")
	}

	return String("err", err.Error())
}

// Конвертация Fields в any[].
func convertFields(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

// Преобразование строкового уровня логирования в slog.Level, по умолчанию Debug.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

var (
	Log  Logger
	once sync.Once
)

// InitLogger Инициализация логгера с уровнем логирования и местом вывода.
// output: "stdout", "stderr" (или пустая строка) либо путь к файлу логов с ротацией.
func InitLogger(level string, output string) {
	once.Do(func() {
		var (
			writer io.Writer
			closer io.Closer
		)

		switch strings.ToLower(output) {
		case "stdout":
			writer = os.Stdout
		case "", "stderr":
			writer = os.Stderr
		default:
			fileWriter := &lumberjack.Logger{
				Filename:   output,
				MaxSize:    10, // мегабайты
				MaxBackups: 3,
				MaxAge:     28, // дни
			}
			writer = fileWriter
			closer = fileWriter
		}

		handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: parseLevel(level),
		})

		Log = &SlogAdapter{slog: slog.New(handler), output: closer}
	})
}

// NewNopLogger Логгер, отбрасывающий все сообщения. Используется когда InitLogger не вызывался.
func NewNopLogger() Logger {
	return &SlogAdapter{slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// Get Возвращает глобальный логгер или логгер-заглушку, если он ещё не инициализирован.
func Get() Logger {
	if Log == nil {
		return NewNopLogger()
	}

	return Log
}
