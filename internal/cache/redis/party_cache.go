package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "party:"

var _ ports.PartyCache = (*PartyCache)(nil)

// PartyCache — кэш партий в Redis: JSON по ключу party:<id> с TTL.
// TTL продлевается при попадании (GETEX). ttl <= 0 — без срока.
type PartyCache struct {
	client goredis.Cmdable
	ttl    time.Duration
	log    ports.Logger
}

func NewPartyCache(client goredis.Cmdable, ttl time.Duration, log ports.Logger) *PartyCache {
	return &PartyCache{client: client, ttl: ttl, log: log}
}

func key(id int64) string { return keyPrefix + strconv.FormatInt(id, 10) }

// Get — ошибки Redis и битые значения трактуются как промах.
func (c *PartyCache) Get(ctx context.Context, id int64) (*domain.Party, bool) {
	var (
		raw []byte
		err error
	)
	if c.ttl > 0 {
		raw, err = c.client.GetEx(ctx, key(id), c.ttl).Bytes()
	} else {
		raw, err = c.client.Get(ctx, key(id)).Bytes()
	}
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			c.log.Warnf(ctx, "redis get party id=%d err=%v", id, err)
		}
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p domain.Party
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warnf(ctx, "redis party id=%d: corrupted value: %v", id, err)
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return &p, true
}

func (c *PartyCache) Set(ctx context.Context, party *domain.Party) error {
	if party == nil || party.ID <= 0 {
		return nil
	}
	raw, err := json.Marshal(party)
	if err != nil {
		return fmt.Errorf("marshal party id=%d: %w", party.ID, err)
	}
	if err := c.client.Set(ctx, key(party.ID), raw, c.expiration()).Err(); err != nil {
		return fmt.Errorf("redis set party id=%d: %w", party.ID, err)
	}
	return nil
}

func (c *PartyCache) Delete(ctx context.Context, id int64) error {
	n, err := c.client.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del party id=%d: %w", id, err)
	}
	if n > 0 {
		metrics.CacheOps.WithLabelValues("deleted").Inc()
	}
	return nil
}

// WarmUp — одна пачка команд через pipeline.
func (c *PartyCache) WarmUp(ctx context.Context, parties []*domain.Party) error {
	if len(parties) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, p := range parties {
			if p == nil || p.ID <= 0 {
				continue
			}
			raw, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("marshal party id=%d: %w", p.ID, err)
			}
			pipe.Set(ctx, key(p.ID), raw, c.expiration())
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis warm-up: %w", err)
	}
	return nil
}

// expiration — 0 для go-redis означает «без срока».
func (c *PartyCache) expiration() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	return c.ttl
}
