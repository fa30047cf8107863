package usecase

import (
	"sync"

	"github.com/Gunvolt24/coffee_delivery/internal/cart"
	"github.com/Gunvolt24/coffee_delivery/internal/checkout"
)

// Session — состояние одного покупателя: корзина и оформление заказа.
// mu сериализует операции сессии; подписчики корзины работают в своих горутинах.
type Session struct {
	mu   sync.Mutex
	cart *cart.Store
	flow *checkout.Flow
}

// Cart — корзина сессии.
func (s *Session) Cart() *cart.Store { return s.cart }
