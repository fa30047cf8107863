package domain

import "github.com/shopspring/decimal"

// ProductKey — ключ товара в статическом каталоге.
type ProductKey string

// Product — позиция каталога. Каталог только для чтения и не меняется после загрузки.
type Product struct {
	Key         ProductKey      `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ImageRef    string          `json:"image_ref,omitempty"`
}
