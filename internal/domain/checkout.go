package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Имена полей формы оформления заказа.
const (
	FieldCEP           = "cep"
	FieldStreet        = "street"
	FieldNumber        = "number"
	FieldComplement    = "complement"
	FieldNeighborhood  = "neighborhood"
	FieldCity          = "city"
	FieldState         = "state"
	FieldPaymentMethod = "paymentMethod"
)

// CheckoutForm — черновик формы в том виде, в каком его ввёл пользователь.
type CheckoutForm struct {
	CEP           string    `json:"cep"`
	Street        string    `json:"street"`
	Number        FieldText `json:"number"`
	Complement    string    `json:"complement"`
	Neighborhood  string    `json:"neighborhood"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PaymentMethod string    `json:"paymentMethod"`
}

// FieldText — значение поля формы: в JSON строка или число.
// Число хранится в той записи, в какой пришло.
type FieldText string

// UnmarshalJSON — строка, число или null (пустое значение).
func (t *FieldText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = FieldText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("field value must be a string or a number: %w", err)
	}
	*t = FieldText(n.String())
	return nil
}

// NewCheckoutForm — начальные значения формы.
func NewCheckoutForm() CheckoutForm {
	return CheckoutForm{PaymentMethod: DefaultPaymentMethod.String()}
}

// Address — проверенный адрес доставки.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       int    `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// OrderDraft — проверенные данные формы; создаётся один раз на успешную отправку.
type OrderDraft struct {
	Address       Address       `json:"address"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// OrderTotals — итоги заказа.
type OrderTotals struct {
	Items    decimal.Decimal `json:"items"`
	Delivery decimal.Decimal `json:"delivery"`
	Total    decimal.Decimal `json:"total"`
}

// NewOrderTotals — сумма товаров плюс фиксированная доставка.
func NewOrderTotals(subtotal, deliveryFee decimal.Decimal) OrderTotals {
	return OrderTotals{
		Items:    subtotal,
		Delivery: deliveryFee,
		Total:    subtotal.Add(deliveryFee),
	}
}

// OrderConfirmation — одноразовая передача заказа в представление подтверждения.
type OrderConfirmation struct {
	ID        string      `json:"id"`
	Draft     OrderDraft  `json:"draft"`
	Items     []CartItem  `json:"items"`
	Totals    OrderTotals `json:"totals"`
	CreatedAt time.Time   `json:"created_at"`
}
