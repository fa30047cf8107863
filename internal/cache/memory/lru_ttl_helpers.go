package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
)

// lookup — находит живой элемент; просроченный удаляется. Вызывается под мьютексом.
func (c *LRUCacheTTL[V]) lookup(key string, now time.Time) (*list.Element, bool) {
	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues(c.name, "miss").Inc()
		return nil, false
	}
	if c.isExpired(elem.Value.(*entry[V]), now) {
		metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
		c.removeElement(elem)
		c.reportSize()
		return nil, false
	}
	return elem, true
}

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL[V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues(c.name, "evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL[V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry[V]); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL[V]) isExpired(ent *entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL[V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry[V])
		if !ok || now.After(ent.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues(c.name, "expired").Inc()
			continue
		}
		return
	}
}

func (c *LRUCacheTTL[V]) reportSize() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}

func (c *LRUCacheTTL[V]) copyOf(v V) V {
	if c.clone == nil {
		return v
	}
	return c.clone(v)
}
