// Package rabbitmq wraps amqp091 with the small surface the mail queue needs.
package rabbitmq

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"eats/config"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrConnectionClosed is returned once Close has been called.
var ErrConnectionClosed = errors.New("rabbitmq connection is closed")

type Connection interface {
	Channel() (Channel, error)
	Close() error
	IsClosed() bool
}

type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	NotifyClose(receiver chan *amqp.Error) chan *amqp.Error
	Close() error
}

type amqpConnection struct {
	mu     sync.RWMutex
	url    string
	conn   *amqp.Connection
	closed bool
}

// URL builds the AMQP URL for the configured broker.
func URL(cfg *config.RabbitMQConfig) string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/",
	}

	return u.String()
}

// Dial connects to the broker described by cfg.
func Dial(cfg *config.RabbitMQConfig) (Connection, error) {
	if cfg == nil {
		return nil, errors.New("rabbitmq configuration is required")
	}

	c := &amqpConnection{url: URL(cfg)}
	if err := c.redial(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *amqpConnection) redial() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "connect to rabbitmq")
	}
	c.conn = conn

	return nil
}

// Channel opens a channel, redialing first when the broker dropped the connection.
func (c *amqpConnection) Channel() (Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}
	if c.conn == nil || c.conn.IsClosed() {
		if err := c.redial(); err != nil {
			return nil, err
		}
	}

	ch, err := c.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "open channel")
	}

	return ch, nil
}

func (c *amqpConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil && !c.conn.IsClosed() {
		return errors.WithStack(c.conn.Close())
	}

	return nil
}

func (c *amqpConnection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.closed || c.conn == nil || c.conn.IsClosed()
}
