package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений с явной остановкой.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
