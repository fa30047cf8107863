package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ports.Cache.
var _ ports.Cache[int] = (*LRUCacheTTL[int])(nil)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// LRUCacheTTL — кэш с вытеснением наименее используемых записей и скользящим TTL.
// Используется для сессий (корзина + форма) и для одноразовых подтверждений заказа.
type LRUCacheTTL[V any] struct {
	name     string // метка cache в метриках
	capacity int
	ttl      time.Duration
	clone    func(V) V // копия значения на входе/выходе (nil — без копирования)
	now      func() time.Time

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// Option — настройка кэша.
type Option[V any] func(*LRUCacheTTL[V])

// WithClone — кэш хранит и возвращает копии значений.
func WithClone[V any](clone func(V) V) Option[V] {
	return func(c *LRUCacheTTL[V]) { c.clone = clone }
}

// WithClock — подмена часов (для тестов).
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *LRUCacheTTL[V]) { c.now = now }
}

// NewLRUCacheTTL — конструктор. capacity <= 0 → 1; ttl <= 0 → без истечения.
func NewLRUCacheTTL[V any](name string, capacity int, ttl time.Duration, opts ...Option[V]) *LRUCacheTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	c := &LRUCacheTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get — значение по ключу; продлевает TTL при попадании.
func (c *LRUCacheTTL[V]) Get(_ context.Context, key string) (V, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.lookup(key, now)
	if !ok {
		var zero V
		return zero, false
	}
	c.ll.MoveToFront(elem)

	ent := elem.Value.(*entry[V])
	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues(c.name, "hit").Inc()
	return c.copyOf(ent.value), true
}

// Set — сохранить/обновить значение.
func (c *LRUCacheTTL[V]) Set(_ context.Context, key string, value V) error {
	if key == "" {
		return nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = c.copyOf(value)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		value:     c.copyOf(value),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	c.reportSize()
	return nil
}

// Take — вернуть и удалить значение.
func (c *LRUCacheTTL[V]) Take(_ context.Context, key string) (V, bool) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.lookup(key, now)
	if !ok {
		var zero V
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	c.removeElement(elem)
	c.reportSize()

	metrics.CacheOps.WithLabelValues(c.name, "taken").Inc()
	return ent.value, true
}

// Len — текущее число записей (включая ещё не вычищенные просроченные).
func (c *LRUCacheTTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
