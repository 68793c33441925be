package notify

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/zlog"

	"aadhrita/internal/store"
)

type changeMessage struct {
	Kind string `json:"kind"`
}

// Feed is a RabbitMQ-backed store.Notifier. Every published change goes to a
// fanout exchange; each server instance consumes from its own exclusive queue
// and dispatches into an in-process broker, so notifications published by any
// instance (or another admin session) reach every subscriber.
type Feed struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	broker   *Broker
}

func NewFeed(url, exchange string) (*Feed, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to connect to RabbitMQ")
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		zlog.Logger.Error().Err(err).Msg("failed to open RabbitMQ channel")
		return nil, err
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to declare exchange")
		return nil, err
	}

	// Server-named exclusive queue: each instance sees every change.
	q, err := ch.QueueDeclare(
		"",
		false,
		true,
		true,
		false,
		nil,
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to declare queue")
		return nil, err
	}

	if err := ch.QueueBind(
		q.Name,
		"",
		exchange,
		false,
		nil,
	); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to bind queue")
		return nil, err
	}

	zlog.Logger.Info().Msgf("Change feed initialized (exchange=%s, queue=%s)", exchange, q.Name)

	return &Feed{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    q.Name,
		broker:   NewBroker(),
	}, nil
}

func (f *Feed) Close() {
	if f.channel != nil {
		_ = f.channel.Close()
	}
	if f.conn != nil {
		_ = f.conn.Close()
	}
	zlog.Logger.Info().Msg("Change feed connection closed")
}

// Publish sends the change to the exchange. Local subscribers are reached
// through the consumed copy, not dispatched directly, so every instance takes
// the same path.
func (f *Feed) Publish(kind store.Kind) {
	payload, err := json.Marshal(changeMessage{Kind: string(kind)})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to marshal change message")
		return
	}

	err = f.channel.Publish(
		f.exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload,
		},
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to publish change message to RabbitMQ")
	} else {
		zlog.Logger.Debug().Msgf("Change published (kind=%s)", kind)
	}
}

func (f *Feed) Subscribe(kind store.Kind, onChange func()) (func(), error) {
	return f.broker.Subscribe(kind, onChange)
}

// Start consumes the change feed until ctx is canceled.
func (f *Feed) Start(ctx context.Context) error {
	msgs, err := f.channel.Consume(
		f.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to start consuming change feed")
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				zlog.Logger.Info().Msg("Change feed consumer stopped by context")
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				var msg changeMessage
				if err := json.Unmarshal(d.Body, &msg); err != nil {
					zlog.Logger.Warn().Msgf("failed to process change message: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				kind := store.Kind(msg.Kind)
				if !kind.Valid() {
					zlog.Logger.Warn().Msgf("change message for unknown kind %q", msg.Kind)
					_ = d.Nack(false, false)
					continue
				}
				f.broker.Publish(kind)
				_ = d.Ack(false)
			}
		}
	}()

	zlog.Logger.Info().Msgf("Started consuming change feed from queue %s", f.queue)
	return nil
}
