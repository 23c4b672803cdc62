package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/nikolayk812/shoestore/internal/cart"
	"github.com/nikolayk812/shoestore/internal/catalog"
	"github.com/nikolayk812/shoestore/internal/domain"
)

type cartTestContext struct {
	products map[string]domain.Product
	store    *cart.Store
	err      error
}

func (c *cartTestContext) reset() error {
	store, err := cart.New()
	if err != nil {
		return err
	}

	c.products = make(map[string]domain.Product)
	c.store = store
	c.err = nil
	return nil
}

func (c *cartTestContext) theBuiltInCatalog() error {
	for _, p := range catalog.Default() {
		c.products[p.ID] = p
	}
	return nil
}

func (c *cartTestContext) aProductPriced(id string, price int) error {
	c.products[id] = domain.Product{
		ID:       id,
		Name:     "Product " + id,
		Brand:    domain.BrandNike,
		Category: domain.CategoryUnisex,
		Price:    domain.MustMoney(fmt.Sprint(price), domain.DefaultCurrency),
		Colors:   []domain.Color{{Code: "black", Label: "Black", Hex: "#000000"}},
		Sizes:    []domain.Size{40, 41, 42},
	}
	return nil
}

func (c *cartTestContext) product(id string) (domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %q is not in the catalog", id)
	}
	return p, nil
}

func (c *cartTestContext) add(id string, size domain.Size, colorCode string) error {
	p, err := c.product(id)
	if err != nil {
		return err
	}

	var color domain.Color
	if colorCode != "" {
		color, _ = p.Color(colorCode)
	}

	_, c.err = c.store.AddItem(p, size, color)
	return nil
}

func (c *cartTestContext) iAddProductInSizeAndColor(id string, size int, color string) error {
	if err := c.add(id, domain.Size(size), color); err != nil {
		return err
	}
	if c.err != nil {
		return fmt.Errorf("add failed: %w", c.err)
	}
	return nil
}

func (c *cartTestContext) iAddProductWithoutASizeInColor(id, color string) error {
	return c.add(id, domain.NoSize, color)
}

func (c *cartTestContext) iAddProductInSizeWithoutAColor(id string, size int) error {
	return c.add(id, domain.Size(size), "")
}

func (c *cartTestContext) iSelectShipping(method string) error {
	return c.store.SetShippingMethod(domain.ShippingMethod(method))
}

func (c *cartTestContext) iChangeTheQuantityOfLineBy(index, delta int) error {
	return c.store.UpdateQuantity(index, delta)
}

func (c *cartTestContext) iRemoveLine(index int) error {
	return c.store.RemoveItem(index)
}

func (c *cartTestContext) theAddFailsWithAnInvalidSelection() error {
	if !errors.Is(c.err, domain.ErrInvalidSelection) {
		return fmt.Errorf("expected invalid selection, got %v", c.err)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	view := c.store.Snapshot()
	if !view.IsEmpty() || view.ItemCount != 0 {
		return fmt.Errorf("expected empty cart, got %d items", len(view.Items))
	}
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := len(c.store.Snapshot().Items); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) lineHasColorAndQuantity(index int, color string, quantity int) error {
	items := c.store.Snapshot().Items
	if index >= len(items) {
		return fmt.Errorf("line %d does not exist", index)
	}

	item := items[index]
	if item.Color.Code != color || item.Quantity != quantity {
		return fmt.Errorf("expected %s x%d, got %s x%d", color, quantity, item.Color.Code, item.Quantity)
	}
	return nil
}

func (c *cartTestContext) theItemCountIs(n int) error {
	if got := c.store.Snapshot().ItemCount; got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}
	return nil
}

func expectAmount(name, want string, got domain.Money) error {
	if s := got.Amount.StringFixed(2); s != want {
		return fmt.Errorf("expected %s %s, got %s", name, want, s)
	}
	return nil
}

func (c *cartTestContext) theSubtotalIs(want string) error {
	return expectAmount("subtotal", want, c.store.Snapshot().Subtotal)
}

func (c *cartTestContext) theShippingCostIs(want string) error {
	return expectAmount("shipping cost", want, c.store.Snapshot().ShippingCost)
}

func (c *cartTestContext) theOrderTotalIs(want string) error {
	return expectAmount("order total", want, c.store.Snapshot().OrderTotal)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, tc.reset()
	})

	// Given steps
	ctx.Step(`^the built-in catalog$`, tc.theBuiltInCatalog)
	ctx.Step(`^a product "([^"]*)" priced (\d+)$`, tc.aProductPriced)

	// When steps
	ctx.Step(`^I add product "([^"]*)" in size (\d+) and color "([^"]*)"$`, tc.iAddProductInSizeAndColor)
	ctx.Step(`^I add product "([^"]*)" without a size in color "([^"]*)"$`, tc.iAddProductWithoutASizeInColor)
	ctx.Step(`^I add product "([^"]*)" in size (\d+) without a color$`, tc.iAddProductInSizeWithoutAColor)
	ctx.Step(`^I select "([^"]*)" shipping$`, tc.iSelectShipping)
	ctx.Step(`^I change the quantity of line (\d+) by (-?\d+)$`, tc.iChangeTheQuantityOfLineBy)
	ctx.Step(`^I remove line (\d+)$`, tc.iRemoveLine)

	// Then steps
	ctx.Step(`^the add fails with an invalid selection$`, tc.theAddFailsWithAnInvalidSelection)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart has (\d+) line items$`, tc.theCartHasLineItems)
	ctx.Step(`^line (\d+) has color "([^"]*)" and quantity (\d+)$`, tc.lineHasColorAndQuantity)
	ctx.Step(`^the item count is (\d+)$`, tc.theItemCountIs)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the shipping cost is "([^"]*)"$`, tc.theShippingCostIs)
	ctx.Step(`^the order total is "([^"]*)"$`, tc.theOrderTotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
