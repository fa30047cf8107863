package domain

import "fmt"

// PaymentMethod — закрытый набор способов оплаты (оплата при получении).
type PaymentMethod uint8

const (
	CreditCard PaymentMethod = iota + 1
	DebitCard
	Money
)

// DefaultPaymentMethod — значение формы по умолчанию.
const DefaultPaymentMethod = CreditCard

// PaymentMethods — все допустимые значения в порядке отображения.
func PaymentMethods() []PaymentMethod { return []PaymentMethod{CreditCard, DebitCard, Money} }

// ParsePaymentMethod — разбор кода способа оплаты.
func ParsePaymentMethod(code string) (PaymentMethod, error) {
	switch code {
	case "creditCard":
		return CreditCard, nil
	case "debitCard":
		return DebitCard, nil
	case "money":
		return Money, nil
	default:
		return 0, fmt.Errorf("%w: unknown payment method %q", ErrValidation, code)
	}
}

// String — код способа оплаты.
func (p PaymentMethod) String() string {
	switch p {
	case CreditCard:
		return "creditCard"
	case DebitCard:
		return "debitCard"
	case Money:
		return "money"
	default:
		return fmt.Sprintf("PaymentMethod(%d)", uint8(p))
	}
}

// Label — подпись для витрины.
func (p PaymentMethod) Label() string {
	switch p {
	case CreditCard:
		return "Cartão de crédito"
	case DebitCard:
		return "Cartão de débito"
	case Money:
		return "Dinheiro"
	default:
		return ""
	}
}

// IsCard — оплата картой (терминал у курьера).
func (p PaymentMethod) IsCard() bool {
	switch p {
	case CreditCard, DebitCard:
		return true
	case Money:
		return false
	default:
		return false
	}
}

func (p PaymentMethod) Valid() bool { return p >= CreditCard && p <= Money }

func (p PaymentMethod) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: invalid payment method %d", ErrValidation, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *PaymentMethod) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
