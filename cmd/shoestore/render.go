package main

import (
	"github.com/nikolayk812/shoestore/internal/cart"
	"github.com/nikolayk812/shoestore/internal/catalog"
	"github.com/nikolayk812/shoestore/internal/domain"
)

type output struct {
	Filters       filterView              `json:"filters"`
	Visible       []productView           `json:"visible"`
	Cart          cartView                `json:"cart"`
	Checkout      *domain.CheckoutRequest `json:"checkout,omitempty"`
	CheckoutError string                  `json:"checkoutError,omitempty"`
}

type filterView struct {
	Brands     []domain.Brand    `json:"brands"`
	Categories []domain.Category `json:"categories"`
	MaxPrice   string            `json:"maxPrice"`
	Query      string            `json:"query,omitempty"`
	Sort       string            `json:"sort"`
}

type productView struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Brand    string         `json:"brand"`
	Category string         `json:"category"`
	Price    string         `json:"price"`
	Rating   float64        `json:"rating"`
	Badge    string         `json:"badge,omitempty"`
	Sizes    []domain.Size  `json:"sizes"`
	Colors   []domain.Color `json:"colors"`
}

type lineView struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	Brand     string      `json:"brand"`
	Image     string      `json:"image,omitempty"`
	Size      domain.Size `json:"size"`
	Color     string      `json:"color"`
	UnitPrice string      `json:"unitPrice"`
	Quantity  int         `json:"quantity"`
	LineTotal string      `json:"lineTotal"`
}

type cartView struct {
	Items        []lineView `json:"items"`
	Shipping     string     `json:"shipping"`
	ShippingDays string     `json:"shippingDays"`
	ItemCount    int        `json:"itemCount"`
	Subtotal     string     `json:"subtotal"`
	ShippingCost string     `json:"shippingCost"`
	OrderTotal   string     `json:"orderTotal"`
}

// renderFilters lists the active brands and categories in display order.
func renderFilters(c catalog.Criteria) filterView {
	return filterView{
		Brands:     c.Brands.Values(domain.Brands()),
		Categories: c.Categories.Values(domain.Categories()),
		MaxPrice:   c.MaxPrice.String(),
		Query:      c.Query,
		Sort:       c.Sort.String(),
	}
}

func renderProducts(products []domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			ID:       p.ID,
			Name:     p.Name,
			Brand:    string(p.Brand),
			Category: string(p.Category),
			Price:    p.Price.String(),
			Rating:   p.Rating,
			Badge:    p.Badge,
			Sizes:    p.Sizes,
			Colors:   p.Colors,
		})
	}
	return views
}

func renderCart(v cart.View) cartView {
	items := make([]lineView, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, lineView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     string(item.Brand),
			Image:     item.Image,
			Size:      item.Size,
			Color:     item.Color.Label,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().String(),
		})
	}

	return cartView{
		Items:        items,
		Shipping:     v.Shipping.Label,
		ShippingDays: v.Shipping.Days(),
		ItemCount:    v.ItemCount,
		Subtotal:     v.Subtotal.String(),
		ShippingCost: v.ShippingCost.String(),
		OrderTotal:   v.OrderTotal.String(),
	}
}
