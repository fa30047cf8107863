package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// yamlFile — формат файла каталога:
//
//	products:
//	  - key: latte
//	    name: Latte
//	    price: "10.90"
//	    image: coffees/latte.png
type yamlFile struct {
	Products []yamlProduct `yaml:"products"`
}

type yamlProduct struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Price       string   `yaml:"price"`
	Image       string   `yaml:"image"`
}

// LoadYAMLFile — загрузка каталога из YAML-файла.
func LoadYAMLFile(path string) (*Static, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML — загрузка каталога из потока. Неизвестные поля запрещены.
func LoadYAML(r io.Reader) (*Static, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file yamlFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidCatalog, err)
	}

	products := make([]domain.Product, 0, len(file.Products))
	for i, p := range file.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: products[%d].price %q: %v", ErrInvalidCatalog, i, p.Price, err)
		}
		products = append(products, domain.Product{
			Key:         domain.ProductKey(p.Key),
			Name:        p.Name,
			Description: p.Description,
			Tags:        p.Tags,
			UnitPrice:   price,
			ImageRef:    p.Image,
		})
	}
	return NewStatic(products)
}
