package checkout

import (
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/pkg/currency"
	"github.com/shopspring/decimal"
)

// SummaryLine — строка таблицы "кофе выбранные".
type SummaryLine struct {
	ID        string            `json:"id"`
	Type      domain.ProductKey `json:"type"`
	Name      string            `json:"name"`
	Quantity  int               `json:"quantity"`
	Price     decimal.Decimal   `json:"price"`
	PriceText string            `json:"price_text"`
}

// PaymentOption — вариант оплаты для формы.
type PaymentOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Summary — представление страницы оформления.
type Summary struct {
	State          State               `json:"state"`
	Disabled       bool                `json:"disabled"` // корзина пуста — поля и кнопка недоступны
	Form           domain.CheckoutForm `json:"form"`
	Errors         map[string]string   `json:"errors,omitempty"`
	PaymentOptions []PaymentOption     `json:"payment_options"`
	Lines          []SummaryLine       `json:"lines"`
	Totals         domain.OrderTotals  `json:"totals"`
	ItemsText      string              `json:"items_text"`
	DeliveryText   string              `json:"delivery_text"`
	TotalText      string              `json:"total_text"`
}

// Summary — согласованный снимок формы, корзины и итогов.
func (f *Flow) Summary() Summary {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := f.cart.Snapshot()
	lines := make([]SummaryLine, 0, len(snap.Items))
	for _, item := range snap.Items {
		name := string(item.Type)
		if p, ok := f.catalog.Product(item.Type); ok {
			name = p.Name
		}
		lines = append(lines, SummaryLine{
			ID:        item.ID,
			Type:      item.Type,
			Name:      name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceText: currency.Format(item.Price),
		})
	}

	options := make([]PaymentOption, 0, 3)
	for _, m := range domain.PaymentMethods() {
		options = append(options, PaymentOption{Code: m.String(), Label: m.Label()})
	}

	totals := domain.NewOrderTotals(snap.Subtotal, f.deliveryFee)
	return Summary{
		State:          f.state,
		Disabled:       snap.Lines == 0,
		Form:           f.form.Snapshot(),
		Errors:         copyErrors(f.fieldErrs),
		PaymentOptions: options,
		Lines:          lines,
		Totals:         totals,
		ItemsText:      currency.Format(totals.Items),
		DeliveryText:   currency.Format(totals.Delivery),
		TotalText:      currency.Format(totals.Total),
	}
}
