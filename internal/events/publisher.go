package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
)

// ClaimEvent is published after every confirmed claim so downstream
// consumers (analytics, abuse monitoring) can follow faucet activity without
// polling the chain.
type ClaimEvent struct {
	Network   string    `json:"network"`
	Recipient string    `json:"recipient"`
	TxHash    string    `json:"tx_hash"`
	AmountWei string    `json:"amount_wei,omitempty"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// Publisher emits claim events. Publishing is best-effort: the claim has
// already been confirmed on-chain by the time an event is emitted, so a
// broker failure is logged by the caller and otherwise ignored.
type Publisher interface {
	PublishClaim(ctx context.Context, event ClaimEvent) error
	Close() error
}

// New returns an AMQP-backed publisher, or a noop one when events are
// disabled in the configuration.
func New(cfg config.EventsConfig) (Publisher, error) {
	if !cfg.Enabled {
		return &noopPublisher{}, nil
	}
	return newAmqpPublisher(cfg)
}

type amqpPublisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func newAmqpPublisher(cfg config.EventsConfig) (*amqpPublisher, error) {
	conn, err := amqp091.Dial(cfg.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to events broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open events channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare events exchange: %w", err)
	}

	return &amqpPublisher{
		conn:     conn,
		channel:  channel,
		exchange: cfg.Exchange,
	}, nil
}

func (p *amqpPublisher) PublishClaim(ctx context.Context, event ClaimEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal claim event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		"", // fanout ignores the routing key
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			Timestamp:   event.ClaimedAt,
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish claim event: %w", err)
	}
	return nil
}

func (p *amqpPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

type noopPublisher struct{}

func (*noopPublisher) PublishClaim(ctx context.Context, event ClaimEvent) error {
	return nil
}

func (*noopPublisher) Close() error {
	return nil
}
