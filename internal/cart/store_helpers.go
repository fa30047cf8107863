package cart

import (
	"fmt"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/shopspring/decimal"
)

// snapshotLocked — копия состояния и список подписчиков. Вызывается под мьютексом.
func (s *Store) snapshotLocked() (domain.CartSnapshot, []Listener) {
	snap := domain.CartSnapshot{
		Items:      append([]domain.CartItem{}, s.items...),
		TotalItems: totalQuantity(s.items),
		Lines:      len(s.items),
		Subtotal:   subtotal(s.items),
	}
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	return snap, listeners
}

func (s *Store) indexByID(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) indexByType(key domain.ProductKey) int {
	for i := range s.items {
		if s.items[i].Type == key {
			return i
		}
	}
	return -1
}

// notify — вызывает подписчиков вне мьютекса: подписчик может читать корзину.
func notify(listeners []Listener, snap domain.CartSnapshot) {
	for _, l := range listeners {
		l(snap)
	}
}

func errQuantityTooLarge() error {
	return domain.NewValidationError("quantity", fmt.Sprintf("quantity must be at most %d", MaxLineQuantity))
}

func linePrice(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

func totalQuantity(items []domain.CartItem) int {
	n := 0
	for i := range items {
		n += items[i].Quantity
	}
	return n
}

func subtotal(items []domain.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for i := range items {
		sum = sum.Add(items[i].Price)
	}
	return sum
}
