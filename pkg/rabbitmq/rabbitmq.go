package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	amqp "github.com/streadway/amqp"
)

// ErrUnavailable is returned when the client has no open channel.
var ErrUnavailable = errors.New("rabbitmq channel is not available")

// channel is the subset of *amqp.Channel used by Client.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Client publishes record events to a single durable queue.
type Client struct {
	conn    *amqp.Connection
	channel channel
	queue   string
	cb      *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the queue.
func NewClient(cfg Config, log *logrus.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c, err := newClient(ch, cfg.Queue, log)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	c.conn = conn

	log.WithField("queue", cfg.Queue).Info("rabbitmq client connected")
	return c, nil
}

func newClient(ch channel, queue string, log *logrus.Logger) (*Client, error) {
	if err := declare(ch, queue); err != nil {
		return nil, err
	}

	st := gobreaker.Settings{
		Name:        "RabbitMQPublisher",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("CircuitBreaker %s state changed from %s to %s", name, from, to)
		},
	}

	return &Client{
		channel: ch,
		queue:   queue,
		cb:      gobreaker.NewCircuitBreaker(st),
		log:     log,
	}, nil
}

func declare(ch channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Publish sends a persistent JSON message to the queue through the default
// exchange. While the breaker is open calls fail fast with
// gobreaker.ErrOpenState.
func (c *Client) Publish(eventType string, body []byte) error {
	if c.channel == nil {
		return ErrUnavailable
	}

	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.channel.Publish(
			"",      // default exchange
			c.queue, // routing key
			false,   // mandatory
			false,   // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				Type:         eventType,
				Body:         body,
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
			})
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	return nil
}

// ConsumeRecordEvents registers a consumer on the queue and hands every
// delivery to handler in a background goroutine. Successful deliveries are
// acked; failed ones are rejected without requeue.
func (c *Client) ConsumeRecordEvents(handler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return ErrUnavailable
	}
	if err := declare(c.channel, c.queue); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			if err := handler(msg); err != nil {
				c.log.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Error("failed to process record event")
				if nackErr := msg.Nack(false, false); nackErr != nil {
					c.log.WithError(nackErr).Error("failed to nack record event")
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				c.log.WithError(ackErr).Error("failed to ack record event")
			}
		}
	}()

	return nil
}

// AuditLogger returns a handler that writes each record event to log.
func AuditLogger(log *logrus.Logger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var event map[string]interface{}
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to decode record event: %w", err)
		}
		log.WithFields(logrus.Fields{
			"event":     msg.Type,
			"entity":    event["entity"],
			"action":    event["action"],
			"record_id": event["record_id"],
		}).Info("record event")
		return nil
	}
}
