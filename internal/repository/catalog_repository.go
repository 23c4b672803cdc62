package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shoestore/internal/db"
	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/nikolayk812/shoestore/internal/port"
	"golang.org/x/text/currency"
)

type catalogRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapListProductsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapListProductsRowsToDomain: %w", err)
	}

	return products, nil
}

// ReplaceProducts swaps the whole catalog in one transaction, keeping the given order.
func (r *catalogRepository) ReplaceProducts(ctx context.Context, products []domain.Product) error {
	params := make([]db.InsertProductParams, 0, len(products))
	for i, p := range products {
		param, err := mapDomainToInsertProductParams(i, p)
		if err != nil {
			return fmt.Errorf("mapDomainToInsertProductParams: %w", err)
		}
		params = append(params, param)
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteProducts(ctx); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteProducts: %w", err)
		}

		for _, param := range params {
			if err := q.InsertProduct(ctx, param); err != nil {
				return struct{}{}, fmt.Errorf("q.InsertProduct[%s]: %w", param.ID, err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapDomainToInsertProductParams(position int, p domain.Product) (db.InsertProductParams, error) {
	if p.ID == "" {
		return db.InsertProductParams{}, fmt.Errorf("product ID is empty")
	}

	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return db.InsertProductParams{}, fmt.Errorf("json.Marshal colors: %w", err)
	}

	sizes := make([]int32, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, int32(s))
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return db.InsertProductParams{
		ID:       p.ID,
		Position: int32(position),
		Name:     p.Name,
		Brand:    string(p.Brand),
		Category: string(p.Category),
		Price:    p.Price.Amount,
		Currency: p.Price.Currency.String(),
		Rating:   p.Rating,
		Badge:    pgtype.Text{String: p.Badge, Valid: p.Badge != ""},
		Sizes:    sizes,
		Colors:   colors,
		Images:   images,
	}, nil
}

func mapListProductsRowToDomain(row db.ListProductsRow) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.Currency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.Currency, err)
	}

	var colors []domain.Color
	if err := json.Unmarshal(row.Colors, &colors); err != nil {
		return domain.Product{}, fmt.Errorf("colors of product[%s] are not valid: %w", row.ID, err)
	}

	sizes := make([]domain.Size, 0, len(row.Sizes))
	for _, s := range row.Sizes {
		sizes = append(sizes, domain.Size(s))
	}

	return domain.Product{
		ID:       row.ID,
		Name:     row.Name,
		Brand:    domain.Brand(row.Brand),
		Category: domain.Category(row.Category),
		Price:    domain.Money{Amount: row.Price, Currency: parsedCurrency},
		Colors:   colors,
		Images:   row.Images,
		Sizes:    sizes,
		Rating:   row.Rating,
		Badge:    row.Badge.String,
	}, nil
}

func mapListProductsRowsToDomain(rows []db.ListProductsRow) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(rows))

	for _, row := range rows {
		product, err := mapListProductsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapListProductsRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
