package ports

import (
	"context"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
)

// CheckoutValidator — проверка формы оформления заказа.
// При ошибке возвращает *domain.ValidationError со всеми сообщениями по полям.
type CheckoutValidator interface {
	Validate(ctx context.Context, form *domain.CheckoutForm) (*domain.OrderDraft, error)
}
