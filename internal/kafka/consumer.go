package kafka

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что консьюмеру нужно от kafka.Reader (подменяется в тестах).
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// partyImporter — бизнес-логика импорта одной записи из сообщения.
type partyImporter interface {
	ImportFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — импорт партий из топика с ручным коммитом (at-least-once).
type Consumer struct {
	reader   reader
	importer partyImporter
	log      ports.Logger

	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration

	rndMu sync.Mutex
	rnd   *rand.Rand

	closeOnce sync.Once
	closeErr  error
}

// NewConsumer — консьюмер поверх kafka.Reader.
func NewConsumer(cfg *ConsumerConfig, importer partyImporter, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, importer, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, importer partyImporter, log ports.Logger) *Consumer {
	process, retryInitial, retryMax := cfg.timings()
	return &Consumer{
		reader:         r,
		importer:       importer,
		log:            log,
		processTimeout: process,
		retryInitial:   retryInitial,
		retryMax:       retryMax,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл чтения до отмены контекста:
//   - успех или ошибка вида Validation (битая/дублирующая запись) → коммит;
//   - прочие ошибки → то же сообщение обрабатывается повторно с паузой,
//     пока не пройдёт или не отменят контекст (тогда без коммита);
//   - ошибки fetch → экспоненциальная пауза с equal-jitter.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	backoff := c.retryInitial
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := c.jitter(backoff)
			c.log.Warnf(ctx, "kafka fetch failed: %v (retry in %s)", err, wait)
			if !sleep(ctx, wait) {
				return ctx.Err()
			}
			backoff = min(backoff*2, c.retryMax)
			continue
		}

		backoff = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if !c.process(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
		c.commit(ctx, &msg)
	}
}

// process — handle до успеха; между попытками экспоненциальная пауза.
// false — контекст отменён, сообщение не закоммичено.
func (c *Consumer) process(ctx context.Context, topic string, msg *kafka.Message) bool {
	delay := c.retryInitial
	for !c.handle(ctx, topic, msg) {
		if !sleep(ctx, c.jitter(delay)) {
			return false
		}
		delay = min(delay*2, c.retryMax)
	}
	return true
}

// Close — закрывает reader; повторные вызовы возвращают первый результат.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() { c.closeErr = c.reader.Close() })
	return c.closeErr
}

// handle — обработка одного сообщения; true — оффсет можно коммитить.
func (c *Consumer) handle(ctx context.Context, topic string, msg *kafka.Message) bool {
	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.importer.ImportFromMessage(pctx, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, domain.ErrValidation):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "party rejected offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Errorf(ctx, "import failed offset=%d: %v (retrying same message)", msg.Offset, err)
		return false
	}
}

func (c *Consumer) commit(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
	}
}

// jitter — equal-jitter: половина d фиксирована, вторая случайна.
func (c *Consumer) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	c.rndMu.Lock()
	n := c.rnd.Int63n(int64(d-half) + 1)
	c.rndMu.Unlock()
	return half + time.Duration(n)
}

// sleep — ожидание d; false, если контекст отменён раньше.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
