package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"studydesk/internal/config"
)

const setupTimeout = 3 * time.Second

// Connect dials the broker and declares the message-persist queue up front,
// with the same durable options the publisher and worker use, so a broken
// broker or a conflicting queue definition fails at startup.
func Connect(ctx context.Context, cfg config.RabbitMQConfig) (*amqp.Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq failed: %w", err)
	}

	setupCtx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	done := make(chan error, 1)
	go func() {
		_, declareErr := ch.QueueDeclare(cfg.MessagePersistQueue, true, false, false, false, nil)
		done <- declareErr
	}()

	select {
	case <-setupCtx.Done():
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq setup timeout: %w", setupCtx.Err())
	case err := <-done:
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("declare persist queue failed: %w", err)
		}
		return conn, nil
	}
}
