package catalog

import (
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/shopspring/decimal"
)

// Builtin — каталог кофе витрины по умолчанию.
func Builtin() *Static {
	s, err := NewStatic(builtinProducts())
	if err != nil {
		// данные статические, ошибка здесь — ошибка программиста
		panic(err)
	}
	return s
}

func builtinProducts() []domain.Product {
	price := decimal.RequireFromString
	return []domain.Product{
		{Key: "traditionalEspresso", Name: "Expresso Tradicional", Description: "O tradicional café feito com água quente e grãos moídos", Tags: []string{"tradicional"}, UnitPrice: price("9.90"), ImageRef: "coffees/expresso.png"},
		{Key: "americanEspresso", Name: "Expresso Americano", Description: "Expresso diluído, menos intenso que o tradicional", Tags: []string{"tradicional"}, UnitPrice: price("9.90"), ImageRef: "coffees/americano.png"},
		{Key: "creamyEspresso", Name: "Expresso Cremoso", Description: "Café expresso tradicional com espuma cremosa", Tags: []string{"tradicional"}, UnitPrice: price("9.90"), ImageRef: "coffees/expresso-cremoso.png"},
		{Key: "icedEspresso", Name: "Expresso Gelado", Description: "Bebida preparada com café expresso e cubos de gelo", Tags: []string{"tradicional", "gelado"}, UnitPrice: price("9.90"), ImageRef: "coffees/cafe-gelado.png"},
		{Key: "coffeeWithMilk", Name: "Café com Leite", Description: "Meio a meio de expresso tradicional com leite vaporizado", Tags: []string{"tradicional", "com leite"}, UnitPrice: price("9.90"), ImageRef: "coffees/cafe-com-leite.png"},
		{Key: "latte", Name: "Latte", Description: "Uma dose de café expresso com o dobro de leite e espuma cremosa", Tags: []string{"tradicional", "com leite"}, UnitPrice: price("10.90"), ImageRef: "coffees/latte.png"},
		{Key: "capuccino", Name: "Capuccino", Description: "Bebida com canela feita de doses iguais de café, leite e espuma", Tags: []string{"tradicional", "com leite"}, UnitPrice: price("10.90"), ImageRef: "coffees/capuccino.png"},
		{Key: "macchiato", Name: "Macchiato", Description: "Café expresso misturado com um pouco de leite quente e espuma", Tags: []string{"tradicional", "com leite"}, UnitPrice: price("10.90"), ImageRef: "coffees/macchiato.png"},
		{Key: "mocaccino", Name: "Mocaccino", Description: "Café expresso com calda de chocolate, pouco leite e espuma", Tags: []string{"tradicional", "com leite"}, UnitPrice: price("11.50"), ImageRef: "coffees/mochaccino.png"},
		{Key: "hotChocolate", Name: "Chocolate Quente", Description: "Bebida feita com chocolate dissolvido no leite quente e café", Tags: []string{"especial", "com leite"}, UnitPrice: price("11.50"), ImageRef: "coffees/chocolate-quente.png"},
		{Key: "cuban", Name: "Cubano", Description: "Drink gelado de café expresso com rum, creme de leite e hortelã", Tags: []string{"especial", "alcoólico", "gelado"}, UnitPrice: price("12.90"), ImageRef: "coffees/cubano.png"},
		{Key: "hawaiian", Name: "Havaiano", Description: "Bebida adocicada preparada com café e leite de coco", Tags: []string{"especial"}, UnitPrice: price("12.90"), ImageRef: "coffees/havaiano.png"},
		{Key: "arabic", Name: "Árabe", Description: "Bebida preparada com grãos de café árabe e especiarias", Tags: []string{"especial"}, UnitPrice: price("12.90"), ImageRef: "coffees/arabe.png"},
		{Key: "irish", Name: "Irlandês", Description: "Bebida a base de café, uísque irlandês, açúcar e chantilly", Tags: []string{"especial", "alcoólico"}, UnitPrice: price("12.90"), ImageRef: "coffees/irlandes.png"},
	}
}
