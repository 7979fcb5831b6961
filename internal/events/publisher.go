package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	queueBookingConfirmed = "booking.confirmed"
	queueB2BApplication   = "b2b.application.received"
)

var (
	// ErrPublisherDisabled возвращается, когда брокер не сконфигурирован
	ErrPublisherDisabled = errors.New("events.publisher: publisher disabled")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events.publisher: failed to publish event")
)

// Publisher публикует события в RabbitMQ через одно соединение.
// Канал защищен мьютексом: amqp каналы не потокобезопасны
type Publisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher подключается к брокеру и объявляет durable очереди.
// Очереди объявляются на старте, чтобы публикация не зависела от
// порядка запуска сервиса и потребителей
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events.publisher: dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events.publisher: open channel: %w", err)
	}

	for _, name := range []string{queueBookingConfirmed, queueB2BApplication} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("events.publisher: declare queue %s: %w", name, err)
		}
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

// Close закрывает канал и соединение с брокером
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// PublishBookingConfirmed публикует событие о созданном бронировании.
// Сбой публикации не откатывает бронирование: вызывающий логирует
// ошибку и продолжает
func (p *Publisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error {
	return p.publish(ctx, queueBookingConfirmed, event)
}

// PublishB2BApplicationReceived публикует событие о новой B2B заявке
func (p *Publisher) PublishB2BApplicationReceived(ctx context.Context, event B2BApplicationReceivedEvent) error {
	return p.publish(ctx, queueB2BApplication, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	if p == nil {
		return ErrPublisherDisabled
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, queue, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",    // default exchange
		queue, // routing key = имя очереди
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: publish %s: %v", ErrPublish, queue, err)
	}

	return nil
}
