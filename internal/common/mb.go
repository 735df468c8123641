package common

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Exchange string

type Queue string

type BindingKey string

type MessageProducer interface {
	Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error
}

type MessageConsumer interface {
	Consume(queue Queue) (<-chan amqp.Delivery, error)
}

const (
	BlogsiteExchange Exchange = "blogsite_exchange"
	AuditQueue       Queue    = "blogsite_audit_queue"

	// AllEventsKey binds the audit queue to every routing key on the topic exchange.
	AllEventsKey BindingKey = "#"

	UserRegisteredKey BindingKey = "user.registered"
	UserDeletedKey    BindingKey = "user.deleted"
	BlogCreatedKey    BindingKey = "blog.created"
	BlogDeletedKey    BindingKey = "blog.deleted"
)

var (
	_ MessageProducer = (*MessageBroker)(nil)
	_ MessageConsumer = (*MessageBroker)(nil)
)

type MessageBroker struct {
	// amqp channels are not safe for concurrent publishing
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewMessageBroker(URI string) (*MessageBroker, error) {
	conn, ch, err := connectAMQP(URI)
	if err != nil {
		return nil, err
	}

	return &MessageBroker{
		conn: conn,
		ch:   ch,
	}, nil
}

// AMQPURI builds the broker URI from its parts.
func AMQPURI(user, password, host, port string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
}

func connectAMQP(URI string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(URI)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("could not open channel: %w", err)
	}

	return conn, ch, nil
}

// Close closes the connection and channel of the message broker.
func (mb *MessageBroker) Close() error {
	err := mb.ch.Close()
	if err != nil {
		return err
	}

	err = mb.conn.Close()
	if err != nil {
		return err
	}

	return nil
}

// SetupBlogsiteExchange declares the topic exchange for domain events and the
// durable audit queue that receives all of them.
func SetupBlogsiteExchange(mb *MessageBroker) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	err := mb.ch.ExchangeDeclare(string(BlogsiteExchange), "topic", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = mb.ch.QueueDeclare(string(AuditQueue), true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = mb.ch.QueueBind(string(AuditQueue), string(AllEventsKey), string(BlogsiteExchange), false, nil)
	if err != nil {
		return err
	}

	return nil
}

func (mb *MessageBroker) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	err := mb.ch.PublishWithContext(ctx, string(exchange), string(key), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         msg,
	})
	if err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}

	return nil
}

// Consume reads from a queue that is already declared and bound. The server
// assigns the consumer tag.
func (mb *MessageBroker) Consume(queue Queue) (<-chan amqp.Delivery, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	msgs, err := mb.ch.Consume(string(queue), "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not consume message: %w", err)
	}

	return msgs, nil
}

// NopProducer discards every message. It is used when no broker is configured.
type NopProducer struct{}

func (NopProducer) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	return nil
}
