package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

// Проверка, что Static удовлетворяет интерфейсу ProductCatalog.
var _ ports.ProductCatalog = (*Static)(nil)

// ErrInvalidCatalog — базовая ошибка загрузки каталога.
var ErrInvalidCatalog = errors.New("invalid product catalog")

// Static — неизменяемый каталог в памяти. Безопасен для конкурентного чтения.
type Static struct {
	products []domain.Product
	byKey    map[domain.ProductKey]int
}

// NewStatic — проверяет товары и строит каталог.
func NewStatic(products []domain.Product) (*Static, error) {
	s := &Static{
		products: make([]domain.Product, 0, len(products)),
		byKey:    make(map[domain.ProductKey]int, len(products)),
	}
	for i := range products {
		p := products[i]
		if err := validateProduct(&p); err != nil {
			return nil, fmt.Errorf("%w: products[%d]: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := s.byKey[p.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidCatalog, p.Key)
		}
		p.Tags = append([]string(nil), p.Tags...)
		s.byKey[p.Key] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// Product — товар по ключу.
func (s *Static) Product(key domain.ProductKey) (domain.Product, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return domain.Product{}, false
	}
	return cloneProduct(s.products[i]), true
}

// List — копия списка в порядке загрузки.
func (s *Static) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	for i := range s.products {
		out[i] = cloneProduct(s.products[i])
	}
	return out
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(string(p.Key)) == "" {
		return errors.New("key is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%s: name is required", p.Key)
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("%s: unit price must be non-negative", p.Key)
	}
	return nil
}

func cloneProduct(p domain.Product) domain.Product {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}
