package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Операции реестра: op = get_all|create|get|update|delete|import,
// result = ok|invalid_id|not_found|validation|error.
var PartyOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "party_operations_total",
		Help: "Party registry operations by result",
	},
	[]string{"op", "result"},
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_events_published_total",
			Help: "Party change events handed to the broker",
		},
		[]string{"type", "result"}, // result: ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|deleted
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		PartyOps,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, EventsPublished,
		CacheOps, CacheSize,
	}
}

// MustRegister — регистрирует метрики в глобальном реестре.
// Повторный вызов безопасен: уже зарегистрированные коллекторы пропускаются.
func MustRegister() {
	for _, c := range collectors() {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
