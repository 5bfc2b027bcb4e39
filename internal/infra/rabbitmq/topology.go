package rabbitmq

import (
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MailRoutingKey routes verification mail events.
const MailRoutingKey = "mail.verification"

// Topology names the exchange and queue mail events travel through.
type Topology struct {
	Exchange string
	Queue    string
}

func (t Topology) deadLetterExchange() string { return t.Exchange + ".dlx" }

func (t Topology) deadLetterQueue() string { return t.Queue + ".dlq" }

// DeclareExchange declares the durable topic exchange publishers write to.
func (t Topology) DeclareExchange(ch Channel) error {
	if err := ch.ExchangeDeclare(t.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare exchange %s", t.Exchange)
	}

	return nil
}

// Declare sets up the exchange, the work queue and its dead-letter queue.
func (t Topology) Declare(ch Channel) error {
	if err := t.DeclareExchange(ch); err != nil {
		return err
	}

	dlx := t.deadLetterExchange()
	if err := ch.ExchangeDeclare(dlx, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare dead-letter exchange %s", dlx)
	}
	if _, err := ch.QueueDeclare(t.deadLetterQueue(), true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare dead-letter queue %s", t.deadLetterQueue())
	}
	if err := ch.QueueBind(t.deadLetterQueue(), "", dlx, false, nil); err != nil {
		return errors.Wrap(err, "bind dead-letter queue")
	}

	args := amqp.Table{"x-dead-letter-exchange": dlx}
	if _, err := ch.QueueDeclare(t.Queue, true, false, false, false, args); err != nil {
		return errors.Wrapf(err, "declare queue %s", t.Queue)
	}
	if err := ch.QueueBind(t.Queue, "mail.#", t.Exchange, false, nil); err != nil {
		return errors.Wrapf(err, "bind queue %s", t.Queue)
	}

	return nil
}
