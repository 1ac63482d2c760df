package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/trsv-dev/unity-scene-client/internal/config"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/netutils"
	"github.com/trsv-dev/unity-scene-client/internal/unity"
)

// app Состояние одного запуска CLI.
type app struct {
	cfgFile   string
	engineURL string
	timeout   time.Duration
	logLevel  string
	logOutput string

	cfg     *config.Config
	client  *unity.Client
	checker netutils.Checker
}

// NewRootCmd Корневая команда unityctl со всеми подкомандами.
func NewRootCmd() *cobra.Command {
	a := &app{checker: netutils.NewNetworkChecker()}
	return a.rootCmd()
}

// Execute Запуск CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "unityctl",
		Short: "Управление сценой Unity через Unity MCP сервер",
		Long: `unityctl отправляет команды Unity MCP серверу, запущенному внутри редактора:
создание и удаление GameObject, работа с компонентами, чтение состояния сцены.

Ответ сервера печатается в stdout в виде JSON.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if closer, ok := logger.Log.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "YAML файл конфигурации")
	flags.StringVarP(&a.engineURL, "url", "u", "", "адрес Unity MCP сервера (по умолчанию http://127.0.0.1:8080)")
	flags.DurationVarP(&a.timeout, "timeout", "t", 0, "таймаут запроса (по умолчанию 5s)")
	flags.StringVar(&a.logLevel, "log-level", "", "уровень логирования: debug, info, warn, error")
	flags.StringVar(&a.logOutput, "log-output", "", "вывод логов: stderr, stdout или путь к файлу")

	root.AddCommand(
		a.createCmd(),
		a.scenesCmd(),
		a.prefabsCmd(),
		a.objectsCmd(),
		a.addComponentCmd(),
		a.createScriptCmd(),
		a.setPropertyCmd(),
		a.instantiateCmd(),
		a.findByTagCmd(),
		a.componentsCmd(),
		a.removeComponentCmd(),
		a.deleteCmd(),
		a.commandsCmd(),
		a.pingCmd(),
	)

	return root
}

// setup Сборка конфигурации (файл -> окружение -> флаги), логгера и клиента.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitConfig(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.EngineURL = a.engineURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-output") {
		cfg.LogOutput = a.logOutput
	}
	cfg.Normalize()

	logger.InitLogger(cfg.LogLevel, cfg.LogOutput)

	a.cfg = cfg
	a.client = unity.NewHTTPClient(cfg.EngineURL, cfg.Timeout)

	logger.Log.Debug("Конфигурация загружена",
		logger.String("engine_url", cfg.EngineURL),
		logger.Duration("timeout", cfg.Timeout))

	return nil
}

// printResponse Печать ответа сервера в виде JSON с отступами.
func printResponse(w io.Writer, resp unity.Response) error {
	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать ответ: %w", err)
	}

	_, err = fmt.Fprintln(w, string(body))
	return err
}
