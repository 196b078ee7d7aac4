//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

var topicSeq atomic.Uint64

// UniqueTopicAndGroup — топик и группа, не пересекающиеся между тестами одного прогона.
// base="party-import" → "party-import-<unix_nano>-<seq>" и "<topic>-g".
func UniqueTopicAndGroup(base string) (topic, group string) {
	topic = fmt.Sprintf("%s-%d-%d", base, time.Now().UnixNano(), topicSeq.Add(1))
	return topic, topic + "-g"
}

// EnsureTopics — создаёт топики (по одной партиции) через контроллер кластера
// и ждёт, пока у каждого появятся партиции. Уже существующий топик — не ошибка.
// bootstrap принимает "host:port", "PLAINTEXT://host:port" или список через запятую.
func EnsureTopics(ctx context.Context, bootstrap string, topics ...string) error {
	addr := brokerAddr(bootstrap)

	admin, err := dialController(ctx, addr)
	if err != nil {
		return err
	}
	defer admin.Close()

	configs := make([]kafka.TopicConfig, 0, len(topics))
	for _, t := range topics {
		configs = append(configs, kafka.TopicConfig{Topic: t, NumPartitions: 1, ReplicationFactor: 1})
	}
	if err := admin.CreateTopics(configs...); err != nil && !errors.Is(err, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topics %v: %w", topics, err)
	}

	for _, t := range topics {
		if err := awaitPartitions(ctx, addr, t); err != nil {
			return err
		}
	}
	return nil
}

// dialController — соединение с контроллером (создавать топики можно только через него).
func dialController(ctx context.Context, addr string) (*kafka.Conn, error) {
	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	ctrl, err := conn.Controller()
	if err != nil {
		return nil, fmt.Errorf("lookup controller: %w", err)
	}
	return kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
}

// brokerAddr — первый адрес bootstrap-строки без схемы.
func brokerAddr(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if u, err := url.Parse(first); err == nil && u.Host != "" {
		return u.Host
	}
	return first
}

func awaitPartitions(ctx context.Context, addr, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		conn, err := kafka.DialContext(ctx, "tcp", addr)
		if err == nil {
			var parts []kafka.Partition
			parts, err = conn.ReadPartitions(topic)
			_ = conn.Close()
			if err == nil && len(parts) > 0 {
				return nil
			}
		}
		if err != nil {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %q has no partitions: %w", topic, errors.Join(ctx.Err(), lastErr))
		case <-tick.C:
		}
	}
}
