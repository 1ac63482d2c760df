package config

import (
	"fmt"
	"os"
	"time"

	"github.com/trsv-dev/unity-scene-client/internal/errs"
	"github.com/trsv-dev/unity-scene-client/internal/transport"
	"gopkg.in/yaml.v3"
)

// Config Конфигурация клиента и заглушки сервера движка.
type Config struct {
	EngineURL   string        `yaml:"engine_url"`
	Timeout     time.Duration `yaml:"timeout"`
	LogLevel    string        `yaml:"log_level"`
	LogOutput   string        `yaml:"log_output"`
	StubAddress string        `yaml:"stub_address"`
}

// Default Конфигурация по умолчанию.
func Default() *Config {
	return &Config{
		EngineURL:   transport.DefaultEndpoint,
		Timeout:     transport.DefaultTimeout,
		LogLevel:    "Info",
		LogOutput:   "stderr",
		StubAddress: "127.0.0.1:8080",
	}
}

// InitConfig Инициализация структуры, содержащей конфигурацию, полученную из YAML файла (если указан)
// и переменных окружения. Флаги командной строки применяются поверх в cmd.
func InitConfig(path string) (*Config, error) {
	config := Default()

	if path != "" {
		if err := config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}

	config.Normalize()

	return config, nil
}

// LoadFile Чтение YAML файла конфигурации. Отсутствующие в файле поля не меняются.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("не удалось прочитать файл конфигурации %s: %w", path, err)
	}

	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("не удалось разобрать файл конфигурации %s: %w", path, err)
	}

	return nil
}

// ApplyEnv Значения из переменных окружения.
func (c *Config) ApplyEnv() error {
	if value, ok := os.LookupEnv("UNITY_MCP_URL"); ok {
		c.EngineURL = value
	}

	if value, ok := os.LookupEnv("UNITY_MCP_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return errs.NewErrInvalidConfig("UNITY_MCP_TIMEOUT", value, err)
		}
		c.Timeout = timeout
	}

	if value, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.LogLevel = value
	}

	if value, ok := os.LookupEnv("LOG_OUTPUT"); ok {
		c.LogOutput = value
	}

	if value, ok := os.LookupEnv("STUB_ADDRESS"); ok {
		c.StubAddress = value
	}

	return nil
}

// Normalize Приведение адреса сервера к каноническому виду и подстановка таймаута по умолчанию.
func (c *Config) Normalize() {
	c.EngineURL = transport.NormalizeEndpoint(c.EngineURL)

	if c.Timeout <= 0 {
		c.Timeout = transport.DefaultTimeout
	}
}
