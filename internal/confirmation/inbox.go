// Пакет confirmation — одноразовая передача принятого заказа в представление "успех".
package confirmation

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/cache/memory"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

var _ ports.ConfirmationInbox = (*Inbox)(nil)

// ErrInvalidConfirmation — пустое подтверждение или подтверждение без id.
var ErrInvalidConfirmation = errors.New("invalid confirmation")

// Inbox — подтверждения, ожидающие показа. Каждое можно забрать ровно один раз.
type Inbox struct {
	store ports.Cache[*domain.OrderConfirmation]
}

// NewInbox — inbox поверх LRU+TTL кэша: невостребованные подтверждения истекают.
func NewInbox(capacity int, ttl time.Duration) *Inbox {
	return NewInboxWithCache(memory.NewLRUCacheTTL[*domain.OrderConfirmation](
		"confirmations", capacity, ttl,
		memory.WithClone(cloneConfirmation),
	))
}

// NewInboxWithCache — inbox поверх произвольного кэша.
func NewInboxWithCache(store ports.Cache[*domain.OrderConfirmation]) *Inbox {
	return &Inbox{store: store}
}

// Deliver — сохранить подтверждение до показа.
func (i *Inbox) Deliver(ctx context.Context, c *domain.OrderConfirmation) error {
	if c == nil || c.ID == "" {
		return ErrInvalidConfirmation
	}
	return i.store.Set(ctx, c.ID, c)
}

// Take — забрать подтверждение; повторный вызов возвращает (nil, false).
func (i *Inbox) Take(ctx context.Context, id string) (*domain.OrderConfirmation, bool) {
	return i.store.Take(ctx, id)
}

func cloneConfirmation(c *domain.OrderConfirmation) *domain.OrderConfirmation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Items = append([]domain.CartItem(nil), c.Items...)
	return &cp
}
