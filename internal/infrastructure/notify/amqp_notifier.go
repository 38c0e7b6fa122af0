package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"tripmarket/internal/usecase/interfaces"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPNotifier publishes booking events to a topic exchange. Email and
// dashboard consumers bind to booking.created / booking.confirmed /
// booking.failed routing keys.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

var _ interfaces.INotifier = (*AMQPNotifier)(nil)

func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

func (n *AMQPNotifier) PublishBookingEvent(ctx context.Context, routingKey string, ev interfaces.BookingEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return n.ch.PublishWithContext(ctx, n.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        b,
	})
}

func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
