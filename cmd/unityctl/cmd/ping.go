package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/trsv-dev/unity-scene-client/internal/logger"
	"github.com/trsv-dev/unity-scene-client/internal/netutils"
)

func (a *app) pingCmd() *cobra.Command {
	var icmp bool

	c := &cobra.Command{
		Use:   "ping",
		Short: "Проверить доступность Unity MCP сервера по сети",
		Long: `Проверяет, что на адресе сервера открыт TCP порт.
С флагом --icmp дополнительно проверяет хост ICMP-запросами.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reachable, err := checkEndpoint(cmd.Context(), a.checker, a.cfg.EngineURL, a.cfg.Timeout, icmp)
			if err != nil {
				return err
			}

			if !reachable {
				return fmt.Errorf("сервер %s недоступен", a.cfg.EngineURL)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "сервер %s доступен\n", a.cfg.EngineURL)
			return err
		},
	}
	c.Flags().BoolVar(&icmp, "icmp", false, "дополнительно проверить хост ICMP-запросами")

	return c
}

// checkEndpoint Проверка доступности сервера: сначала ICMP (если запрошено), затем TCP порт.
func checkEndpoint(ctx context.Context, checker netutils.Checker, endpoint string, timeout time.Duration, icmp bool) (bool, error) {
	host, port, err := netutils.EndpointHostPort(endpoint)
	if err != nil {
		return false, err
	}

	if icmp && !checker.CheckICMP(ctx, host, timeout) {
		logger.Log.Warn("Хост не отвечает на ICMP", logger.String("host", host))
		return false, nil
	}

	return checker.CheckTCP(ctx, host, port, timeout), nil
}
