package rest

import (
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/pkg/currency"
	"github.com/shopspring/decimal"
)

type productView struct {
	domain.Product
	PriceText string `json:"price_text"`
}

func newProductView(p domain.Product) productView {
	return productView{Product: p, PriceText: currency.Format(p.UnitPrice)}
}

type cartView struct {
	domain.CartSnapshot
	SubtotalText string `json:"subtotal_text"`
}

func newCartView(s domain.CartSnapshot) cartView {
	if s.Items == nil {
		s.Items = []domain.CartItem{}
	}
	return cartView{CartSnapshot: s, SubtotalText: currency.Format(s.Subtotal)}
}

// badgeView — счётчик в навигации. Значок показывает Count (сумма количеств);
// Lines — число различных строк корзины, по нему же определяется пустая корзина.
type badgeView struct {
	Count int `json:"count"`
	Lines int `json:"lines"`
}

func newBadgeView(s domain.CartSnapshot) badgeView {
	return badgeView{Count: s.TotalItems, Lines: s.Lines}
}

// confirmationView — данные страницы "успех".
type confirmationView struct {
	ID            string            `json:"id"`
	Address       domain.Address    `json:"address"`
	PaymentMethod string            `json:"payment_method"`
	PaymentLabel  string            `json:"payment_label"`
	Items         []domain.CartItem `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	ItemsText     string            `json:"items_text"`
	DeliveryText  string            `json:"delivery_text"`
	TotalText     string            `json:"total_text"`
	CreatedAt     time.Time         `json:"created_at"`
}

func newConfirmationView(c *domain.OrderConfirmation) confirmationView {
	return confirmationView{
		ID:            c.ID,
		Address:       c.Draft.Address,
		PaymentMethod: c.Draft.PaymentMethod.String(),
		PaymentLabel:  c.Draft.PaymentMethod.Label(),
		Items:         c.Items,
		Total:         c.Totals.Total,
		ItemsText:     currency.Format(c.Totals.Items),
		DeliveryText:  currency.Format(c.Totals.Delivery),
		TotalText:     currency.Format(c.Totals.Total),
		CreatedAt:     c.CreatedAt,
	}
}
