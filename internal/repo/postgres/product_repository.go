package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/coffee_delivery/internal/catalog"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ProductRepository — источник каталога в Postgres. Каталог читается один раз при старте.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository - конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// List — все товары в порядке position.
// Цена читается как текст, чтобы не терять точность при переходе в decimal.
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, name, description, tags, unit_price::text, image_ref
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			p     domain.Product
			key   string
			price string
		)
		if err := rows.Scan(&key, &p.Name, &p.Description, &p.Tags, &price, &p.ImageRef); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Key = domain.ProductKey(key)
		if p.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("product %s: parse price %q: %w", key, price, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows products: %w", err)
	}
	return products, nil
}

// LoadCatalog — каталог из таблицы products с проверкой инвариантов каталога.
func (r *ProductRepository) LoadCatalog(ctx context.Context) (*catalog.Static, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewStatic(products)
}
