package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

// ValidateCheckoutFromJSON — валидация формы оформления заказа из JSON.
func ValidateCheckoutFromJSON(ctx context.Context, validator ports.CheckoutValidator, raw []byte) (*domain.OrderDraft, error) {
	form := domain.NewCheckoutForm()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	return validator.Validate(ctx, &form)
}
