package ports

import (
	"context"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
)

// ConfirmationSink — получатель одноразовой передачи подтверждённого заказа.
type ConfirmationSink interface {
	Deliver(ctx context.Context, confirmation *domain.OrderConfirmation) error
}

// ConfirmationInbox — хранилище подтверждений для представления "успех".
// Take возвращает подтверждение один раз; повторный вызов — (nil, false).
type ConfirmationInbox interface {
	ConfirmationSink
	Take(ctx context.Context, id string) (*domain.OrderConfirmation, bool)
}
