package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет порту приложения.
var _ ports.ConfirmationSink = (*Publisher)(nil)

const sinkName = "kafka"

// writer — минимальный контракт над kafka.Writer, чтобы подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher — публикует подтверждённые заказы во внешнее представление подтверждения.
// Ключ сообщения — id подтверждения, значение — JSON OrderConfirmation.
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	maxAttempts  int
	retryInitial time.Duration
	retryMax     time.Duration
	jitterRand   *rand.Rand
	jitterMu     sync.Mutex
	closeOnce    sync.Once
}

// NewPublisher — конструктор. Параметры по умолчанию подставляются, если не заданы.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 100 * time.Millisecond
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 2 * time.Second
	}

	return &Publisher{
		writer:       cfg.writer(),
		topic:        cfg.Topic,
		log:          log,
		maxAttempts:  attempts,
		retryInitial: rInit,
		retryMax:     rMax,
		jitterRand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Deliver — публикация с повторами (экспоненциальный backoff с equal-jitter).
// Отмена контекста прерывает ожидание повтора.
func (p *Publisher) Deliver(ctx context.Context, c *domain.OrderConfirmation) error {
	value, err := json.Marshal(c)
	if err != nil {
		metrics.ConfirmationsPublished.WithLabelValues(sinkName, "error").Inc()
		return fmt.Errorf("marshal confirmation: %w", err)
	}
	msg := kafka.Message{Key: []byte(c.ID), Value: value}

	retry := p.retryInitial
	for attempt := 1; ; attempt++ {
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			metrics.ConfirmationsPublished.WithLabelValues(sinkName, "ok").Inc()
			p.log.Infof(ctx, "confirmation published topic=%s id=%s", p.topic, c.ID)
			return nil
		}
		if attempt >= p.maxAttempts || ctx.Err() != nil {
			break
		}

		sleep := p.withJitterEqual(retry)
		p.log.Warnf(ctx, "publish failed id=%s attempt=%d: %v (will retry in %s)", c.ID, attempt, err, sleep)
		if !sleepWithBackoff(ctx, sleep) {
			break
		}
		retry = p.nextBackoff(retry)
	}

	metrics.ConfirmationsPublished.WithLabelValues(sinkName, "error").Inc()
	return fmt.Errorf("publish confirmation %s: %w", c.ID, err)
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
