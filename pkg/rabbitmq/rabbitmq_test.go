package rabbitmq

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	mu         sync.Mutex
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	deliveries chan amqp.Delivery
	closed     bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

type fakeAcker struct {
	mu     sync.Mutex
	acked  []uint64
	nacked []uint64
}

func (a *fakeAcker) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *fakeAcker) Nack(tag uint64, multiple bool, requeue bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nacked = append(a.nacked, tag)
	return nil
}

func (a *fakeAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func testLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	return log
}

func TestPublishUsesQueueAsRoutingKey(t *testing.T) {
	ch := &fakeChannel{}
	c, err := newClient(ch, "record_events", testLogger(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"record_events"}, ch.declared)

	require.NoError(t, c.Publish("record.created", []byte(`{"entity":"student"}`)))
	require.Len(t, ch.published, 1)
	assert.Equal(t, "record_events", ch.keys[0])
	assert.Equal(t, "record.created", ch.published[0].Type)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	require.NoError(t, c.Close())
	assert.True(t, ch.closed)
}

func TestPublishOpensBreakerAfterFailures(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("connection reset")}
	var logs bytes.Buffer
	c, err := newClient(ch, "record_events", testLogger(&logs))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		err := c.Publish("record.created", []byte(`{}`))
		assert.ErrorContains(t, err, "connection reset")
	}

	err = c.Publish("record.created", []byte(`{}`))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, logs.String(), "state changed from closed to open")
}

func TestPublishWithoutChannel(t *testing.T) {
	c := &Client{}
	assert.ErrorIs(t, c.Publish("record.created", nil), ErrUnavailable)
	assert.ErrorIs(t, c.ConsumeRecordEvents(func(amqp.Delivery) error { return nil }), ErrUnavailable)
}

func TestConsumeAcksAndNacks(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 2)}
	c, err := newClient(ch, "record_events", testLogger(&bytes.Buffer{}))
	require.NoError(t, err)

	acker := &fakeAcker{}
	done := make(chan struct{}, 2)
	require.NoError(t, c.ConsumeRecordEvents(func(msg amqp.Delivery) error {
		defer func() { done <- struct{}{} }()
		if string(msg.Body) == "bad" {
			return errors.New("cannot handle")
		}
		return nil
	}))

	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: []byte("good")}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 2, Body: []byte("bad")}
	close(ch.deliveries)

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for deliveries")
		}
	}

	assert.Eventually(t, func() bool {
		acker.mu.Lock()
		defer acker.mu.Unlock()
		return len(acker.acked) == 1 && len(acker.nacked) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []uint64{1}, acker.acked)
	assert.Equal(t, []uint64{2}, acker.nacked)
}

func TestAuditLogger(t *testing.T) {
	var logs bytes.Buffer
	handler := AuditLogger(testLogger(&logs))

	err := handler(amqp.Delivery{Type: "record.deleted", Body: []byte(`{"entity":"signup","action":"deleted","record_id":4}`)})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "entity=signup")
	assert.Contains(t, logs.String(), "record_id=4")

	assert.Error(t, handler(amqp.Delivery{Body: []byte("not json")}))
}
