package domain

import "github.com/shopspring/decimal"

// CartItem — строка корзины. Price — сумма по строке (цена за единицу × количество).
type CartItem struct {
	ID       string          `json:"id"`
	Type     ProductKey      `json:"type"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CartSnapshot — неизменяемая копия состояния корзины для подписчиков и представлений.
type CartSnapshot struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	Lines      int             `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}
