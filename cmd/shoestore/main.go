package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shoestore/internal/catalog"
	"github.com/nikolayk812/shoestore/internal/checkout"
	"github.com/nikolayk812/shoestore/internal/config"
	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/nikolayk812/shoestore/internal/repository"
	"github.com/nikolayk812/shoestore/internal/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	envFile    string
	query      string
	brands     []string
	categories []string
	maxPrice   string
	sort       string
	add        []string
	shipping   string
	checkout   bool
	seed       bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("shoestore", pflag.ContinueOnError)
	fs.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded outside production")
	fs.StringVarP(&opts.query, "query", "q", "", "free-text filter on name and brand")
	fs.StringSliceVar(&opts.brands, "brand", nil, "brand filter, repeatable")
	fs.StringSliceVar(&opts.categories, "category", nil, "category filter, repeatable")
	fs.StringVar(&opts.maxPrice, "max-price", "", "inclusive price ceiling, defaults to the higher of "+catalog.DefaultMaxPrice().String()+" and the catalog's highest price")
	fs.StringVar(&opts.sort, "sort", catalog.SortRelevance.String(), "relevance, price-asc, price-desc or rating-desc")
	fs.StringArrayVar(&opts.add, "add", nil, "cart line as productID:size:color, repeatable")
	fs.StringVar(&opts.shipping, "shipping", string(domain.ShippingGround), "ground, standard or expedited")
	fs.BoolVar(&opts.checkout, "checkout", false, "submit the cart to the checkout gateway")
	fs.BoolVar(&opts.seed, "seed", false, "write the built-in catalog to postgres before loading")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("parseFlags: %w", err)
	}

	if _, err := config.LoadDotEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("newLogger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := loadCatalog(ctx, cfg, opts.seed, logger)
	if err != nil {
		return fmt.Errorf("loadCatalog: %w", err)
	}
	logger.Info("catalog loaded", zap.String("source", string(cfg.CatalogSource)), zap.Int("products", len(products)))

	s, err := session.New(products, checkout.NewStub(cfg.CheckoutEnabled, logger), logger)
	if err != nil {
		return fmt.Errorf("session.New: %w", err)
	}

	if err := applyCriteria(s, opts); err != nil {
		return err
	}

	if err := fillCart(s, opts); err != nil {
		return err
	}

	out := output{
		Filters: renderFilters(s.Criteria()),
		Visible: renderProducts(s.Visible()),
	}

	if opts.checkout {
		req, err := s.Checkout(ctx)
		if err != nil {
			// checkout failures are reported, not fatal
			logger.Warn("checkout was not completed", zap.Error(err))
			out.CheckoutError = err.Error()
		} else {
			out.Checkout = &req
		}
	}

	out.Cart = renderCart(s.Cart().Snapshot())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("enc.Encode: %w", err)
	}

	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("zap.ParseAtomicLevel: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = level
	// stdout carries the JSON result
	zapCfg.OutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

func loadCatalog(ctx context.Context, cfg config.Config, seed bool, logger *zap.Logger) ([]domain.Product, error) {
	if cfg.CatalogSource == config.CatalogStatic {
		return catalog.Default(), nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	repo := repository.NewCatalog(pool)

	if seed {
		if err := repo.ReplaceProducts(ctx, catalog.Default()); err != nil {
			return nil, fmt.Errorf("repo.ReplaceProducts: %w", err)
		}
		logger.Info("catalog seeded")
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}

	if err := catalog.Validate(products); err != nil {
		return nil, fmt.Errorf("catalog.Validate: %w", err)
	}

	return products, nil
}

func applyCriteria(s *session.Session, opts options) error {
	for _, b := range opts.brands {
		brand := domain.Brand(b)
		if !brand.Valid() {
			return fmt.Errorf("brand[%s] is not valid", b)
		}
		s.ToggleBrand(brand)
	}

	for _, c := range opts.categories {
		category := domain.Category(c)
		if !category.Valid() {
			return fmt.Errorf("category[%s] is not valid", c)
		}
		s.ToggleCategory(category)
	}

	if opts.maxPrice != "" {
		maxPrice, err := decimal.NewFromString(opts.maxPrice)
		if err != nil {
			return fmt.Errorf("max-price[%s] is not valid: %w", opts.maxPrice, err)
		}
		s.SetMaxPrice(maxPrice)
	}

	sortKey, err := catalog.ParseSortKey(opts.sort)
	if err != nil {
		return err
	}
	s.SetSort(sortKey)
	s.SetQuery(opts.query)

	return nil
}

func fillCart(s *session.Session, opts options) error {
	method, err := domain.ParseShippingMethod(opts.shipping)
	if err != nil {
		return err
	}
	if err := s.Cart().SetShippingMethod(method); err != nil {
		return err
	}

	for _, line := range opts.add {
		productID, size, colorCode, err := parseLine(line)
		if err != nil {
			return err
		}

		p, ok := s.Product(productID)
		if !ok {
			return fmt.Errorf("product[%s] is not in the catalog", productID)
		}

		if _, err := s.Cart().AddItem(p, size, domain.Color{Code: colorCode}); err != nil {
			return fmt.Errorf("add[%s]: %w", line, err)
		}
	}

	return nil
}

// parseLine reads "productID:size:color"; size and color may be left empty.
func parseLine(line string) (string, domain.Size, string, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", domain.NoSize, "", fmt.Errorf("add[%s]: expected productID:size:color", line)
	}

	var size domain.Size
	if parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", domain.NoSize, "", fmt.Errorf("add[%s]: size is not a number: %w", line, err)
		}
		size = domain.Size(n)
	}

	return parts[0], size, parts[2], nil
}
