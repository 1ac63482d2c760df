package netutils

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/prometheus-community/pro-bing"
)

const DefaultHostTimeout = 2 * time.Second

// NetworkChecker Реализация проверки доступности.
type NetworkChecker struct{}

// NewNetworkChecker Конструктор.
func NewNetworkChecker() *NetworkChecker {
	return &NetworkChecker{}
}

// EndpointHostPort Хост и порт из адреса сервера вида http://host[:port].
// Если порт не указан - 80 для http и 443 для https.
func EndpointHostPort(endpoint string) (string, string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", fmt.Errorf("некорректный адрес сервера %q: %w", endpoint, err)
	}

	host := u.Hostname()
	if host == "" {
		return "", "", fmt.Errorf("в адресе сервера %q не указан хост", endpoint)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		default:
			return "", "", fmt.Errorf("в адресе сервера %q не указан порт", endpoint)
		}
	}

	return host, port, nil
}

// CheckTCP Метод пытается установить TCP-соединение с адресом и портом в пределах
// заданного таймаута. Если соединение успешно установлено - хост считается
// доступным. Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	dialer := net.Dialer{
		Timeout: timeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(address, port))
	if err != nil {
		return false
	}

	_ = conn.Close()

	return true
}

// CheckICMP Метод отправляет ICMP-запросы на указанный адрес и ожидает ответ
// в пределах заданного таймаута. Успешный ответ означает, что хост
// доступен на сетевом уровне. Если timeout <= 0 - используется DefaultHostTimeout.
func (nc *NetworkChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DefaultHostTimeout
	}

	pinger, err := probing.NewPinger(address)
	if err != nil {
		return false
	}

	// без root работает через UDP "ping"-сокеты, если они разрешены sysctl
	pinger.SetPrivileged(false)

	pinger.Count = 3
	pinger.Timeout = timeout

	pingerDone := make(chan bool, 1)

	go func() {
		defer close(pingerDone)

		if pingerErr := pinger.Run(); pingerErr != nil {
			pingerDone <- false
			return
		}

		pingerDone <- pinger.Statistics().PacketsRecv > 0
	}()

	select {
	case <-ctx.Done():
		pinger.Stop()
		return false
	case ok := <-pingerDone:
		return ok
	}
}
