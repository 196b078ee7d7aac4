package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/party_registry/internal/domain"
	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/Gunvolt24/party_registry/pkg/metrics"
)

var _ ports.PartyCache = (*PartyCache)(nil)

type entry struct {
	id        int64
	party     domain.Party
	expiresAt time.Time // нулевое значение — без срока
}

// PartyCache — LRU-кэш партий с TTL. Хранит и отдаёт копии.
// TTL продлевается при каждом попадании; ttl <= 0 — записи не истекают.
type PartyCache struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	ll    *list.List // front — самый свежий
	index map[int64]*list.Element
}

// NewPartyCache — capacity <= 0 трактуется как 1.
func NewPartyCache(capacity int, ttl time.Duration) *PartyCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &PartyCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[int64]*list.Element, capacity),
	}
}

func (c *PartyCache) Get(_ context.Context, id int64) (*domain.Party, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.expired(ent, now) {
		c.drop(elem, "expired")
		return nil, false
	}

	c.ll.MoveToFront(elem)
	ent.expiresAt = c.deadline(now)
	metrics.CacheOps.WithLabelValues("hit").Inc()

	p := ent.party
	return &p, true
}

func (c *PartyCache) Set(_ context.Context, party *domain.Party) error {
	if party == nil || party.ID <= 0 {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[party.ID]; ok {
		ent := elem.Value.(*entry)
		ent.party = *party
		ent.expiresAt = c.deadline(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpired(now)
	c.index[party.ID] = c.ll.PushFront(&entry{id: party.ID, party: *party, expiresAt: c.deadline(now)})
	for c.ll.Len() > c.capacity {
		c.drop(c.ll.Back(), "evicted")
	}
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

func (c *PartyCache) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[id]; ok {
		c.drop(elem, "deleted")
	}
	return nil
}

// WarmUp — загрузка пачки партий; прерывается при отмене контекста.
// Порядок: последняя в списке становится самой свежей.
func (c *PartyCache) WarmUp(ctx context.Context, parties []*domain.Party) error {
	for _, p := range parties {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Len — текущее число записей (включая ещё не вычищенные просроченные).
func (c *PartyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// drop — удаление элемента с метрикой причины. Вызывать под mu.
func (c *PartyCache) drop(elem *list.Element, reason string) {
	ent := elem.Value.(*entry)
	delete(c.index, ent.id)
	c.ll.Remove(elem)
	metrics.CacheOps.WithLabelValues(reason).Inc()
	metrics.CacheSize.Set(float64(len(c.index)))
}

// pruneExpired — снимает просроченные записи с хвоста до первой живой.
func (c *PartyCache) pruneExpired(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for back := c.ll.Back(); back != nil && c.expired(back.Value.(*entry), now); back = c.ll.Back() {
		c.drop(back, "expired")
	}
}

func (c *PartyCache) expired(ent *entry, now time.Time) bool {
	return c.ttl > 0 && now.After(ent.expiresAt)
}

func (c *PartyCache) deadline(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}
