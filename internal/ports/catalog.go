package ports

import "github.com/Gunvolt24/coffee_delivery/internal/domain"

// ProductCatalog — статический каталог товаров (только чтение).
type ProductCatalog interface {
	// Product — товар по ключу; (product, true) если найден.
	Product(key domain.ProductKey) (domain.Product, bool)
	// List — все товары в порядке загрузки.
	List() []domain.Product
}
