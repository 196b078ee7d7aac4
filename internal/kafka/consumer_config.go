package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Значения по умолчанию для незаданных параметров обработки.
const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры консьюмера импорта партий.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (по умолчанию)

	ProcessTimeout time.Duration // таймаут обработки одного сообщения
	RetryInitial   time.Duration // начальная пауза после ошибки fetch
	RetryMax       time.Duration // верхняя граница паузы
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
// StartOffset сравнивается без учёта регистра и пробелов; всё, кроме "first", — LastOffset.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

// timings — параметры обработки с подставленными значениями по умолчанию.
func (c *ConsumerConfig) timings() (process, retryInitial, retryMax time.Duration) {
	process, retryInitial, retryMax = c.ProcessTimeout, c.RetryInitial, c.RetryMax
	if process <= 0 {
		process = defaultProcessTimeout
	}
	if retryInitial <= 0 {
		retryInitial = defaultRetryInitial
	}
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}
	if retryMax < retryInitial {
		retryMax = retryInitial
	}
	return process, retryInitial, retryMax
}
