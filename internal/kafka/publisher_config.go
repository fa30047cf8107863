package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// PublisherConfig — настройки публикации подтверждений.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
	MaxAttempts  int
	RetryInitial time.Duration
	RetryMax     time.Duration
}

func (c *PublisherConfig) writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{}, // один id — одна партиция
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: wt,
		// повторы делает сам Publisher с backoff
		MaxAttempts: 1,
	}
}
