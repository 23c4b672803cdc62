package cart

import "github.com/nikolayk812/shoestore/internal/domain"

// View is a read-only snapshot of the cart. Totals are derived from Items
// when the view is taken.
type View struct {
	Items        []domain.CartItem
	Shipping     domain.ShippingOption
	ItemCount    int
	Subtotal     domain.Money
	ShippingCost domain.Money
	OrderTotal   domain.Money
}

func newView(items []domain.CartItem, shipping domain.ShippingOption) View {
	v := View{
		Items:        items,
		Shipping:     shipping,
		ItemCount:    itemCount(items),
		Subtotal:     subtotal(items),
		ShippingCost: domain.ZeroMoney(domain.DefaultCurrency),
	}

	// shipping is only charged for a non-empty cart
	if len(items) > 0 {
		v.ShippingCost = shipping.Cost
	}

	v.OrderTotal = v.Subtotal.Add(v.ShippingCost)
	return v
}

func (v View) IsEmpty() bool {
	return len(v.Items) == 0
}

func itemCount(items []domain.CartItem) int {
	var n int
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

func subtotal(items []domain.CartItem) domain.Money {
	total := domain.ZeroMoney(domain.DefaultCurrency)
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
