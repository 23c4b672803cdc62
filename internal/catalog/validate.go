package catalog

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/shoestore/internal/domain"
)

// Validate checks a catalog loaded from an external source.
func Validate(products []domain.Product) error {
	var errs []error

	ids := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("product[%d]: id is empty", i))
			continue
		}
		if _, ok := ids[p.ID]; ok {
			errs = append(errs, fmt.Errorf("product[%s]: duplicate id", p.ID))
		}
		ids[p.ID] = struct{}{}

		if err := validateProduct(p); err != nil {
			errs = append(errs, fmt.Errorf("product[%s]: %w", p.ID, err))
		}
	}

	return errors.Join(errs...)
}

func validateProduct(p domain.Product) error {
	if !p.Brand.Valid() {
		return fmt.Errorf("brand[%s] is not valid", p.Brand)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("category[%s] is not valid", p.Category)
	}
	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("price[%s] is negative", p.Price.Amount)
	}
	if p.Price.Currency != domain.DefaultCurrency {
		return fmt.Errorf("currency[%s] is not supported", p.Price.Currency)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("rating[%.1f] is out of range", p.Rating)
	}

	codes := make(map[string]struct{}, len(p.Colors))
	for _, c := range p.Colors {
		if c.Code == "" {
			return fmt.Errorf("color code is empty")
		}
		if _, ok := codes[c.Code]; ok {
			return fmt.Errorf("color[%s]: duplicate code", c.Code)
		}
		codes[c.Code] = struct{}{}
	}

	for _, s := range p.Sizes {
		if s <= domain.NoSize {
			return fmt.Errorf("size[%d] is not positive", s)
		}
	}

	return nil
}
