package checkout

import (
	"fmt"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
)

// Form — изменяемый черновик формы оформления заказа.
// Не потокобезопасен: доступ сериализует Flow.
type Form struct {
	draft domain.CheckoutForm
}

// NewForm — форма с начальными значениями.
func NewForm() *Form {
	return &Form{draft: domain.NewCheckoutForm()}
}

// Set — записать значение поля как есть (без валидации).
func (f *Form) Set(field, value string) error {
	switch field {
	case domain.FieldCEP:
		f.draft.CEP = value
	case domain.FieldStreet:
		f.draft.Street = value
	case domain.FieldNumber:
		f.draft.Number = domain.FieldText(value)
	case domain.FieldComplement:
		f.draft.Complement = value
	case domain.FieldNeighborhood:
		f.draft.Neighborhood = value
	case domain.FieldCity:
		f.draft.City = value
	case domain.FieldState:
		f.draft.State = value
	case domain.FieldPaymentMethod:
		f.draft.PaymentMethod = value
	default:
		return domain.NewValidationError(field, fmt.Sprintf("unknown field %q", field))
	}
	return nil
}

// Snapshot — копия текущего черновика.
func (f *Form) Snapshot() domain.CheckoutForm { return f.draft }

// Reset — вернуть начальные значения.
func (f *Form) Reset() { f.draft = domain.NewCheckoutForm() }
