package rabbitmq

import (
	"context"
	"io"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type fakeChannel struct {
	mu         sync.Mutex
	exchanges  []string
	queues     map[string]amqp.Table
	bindings   []string
	published  []amqp.Publishing
	deliveries chan amqp.Delivery
	closeCh    chan *amqp.Error
	prefetch   int
	closed     bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		queues:     map[string]amqp.Table{},
		deliveries: make(chan amqp.Delivery, 8),
	}
}

func (f *fakeChannel) ExchangeDeclare(name, _ string, _, _, _, _ bool, _ amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exchanges = append(f.exchanges, name)

	return nil
}

func (f *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, args amqp.Table) (amqp.Queue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queues[name] = args

	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(name, key, exchange string, _ bool, _ amqp.Table) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bindings = append(f.bindings, exchange+"->"+name+":"+key)

	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, msg)

	return nil
}

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Qos(prefetchCount, _ int, _ bool) error {
	f.prefetch = prefetchCount

	return nil
}

func (f *fakeChannel) NotifyClose(receiver chan *amqp.Error) chan *amqp.Error {
	f.closeCh = receiver

	return receiver
}

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

type fakeConnection struct {
	channel *fakeChannel
	err     error
}

func (f *fakeConnection) Channel() (Channel, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.channel, nil
}

func (f *fakeConnection) Close() error { return nil }

func (f *fakeConnection) IsClosed() bool { return false }

type ackRecord struct {
	acked   bool
	nacked  bool
	requeue bool
}

type fakeAcknowledger struct {
	mu      sync.Mutex
	records []ackRecord
	done    chan struct{}
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{done: make(chan struct{}, 8)}
}

func (a *fakeAcknowledger) Ack(uint64, bool) error {
	a.mu.Lock()
	a.records = append(a.records, ackRecord{acked: true})
	a.mu.Unlock()
	a.done <- struct{}{}

	return nil
}

func (a *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	a.mu.Lock()
	a.records = append(a.records, ackRecord{nacked: true, requeue: requeue})
	a.mu.Unlock()
	a.done <- struct{}{}

	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func (a *fakeAcknowledger) snapshot() []ackRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]ackRecord(nil), a.records...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
