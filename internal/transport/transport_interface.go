package transport

import "context"

//go:generate mockgen -destination=mocks/mock_transport.go -package=mocks . Transport

// Transport Интерфейс доставки тела команды до движка и получения тела ответа.
type Transport interface {
	Send(ctx context.Context, body []byte) ([]byte, error)
}
