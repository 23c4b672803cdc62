package domain_test

import (
	"testing"

	"github.com/nikolayk812/shoestore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoney(t *testing.T) {
	price := domain.MustMoney("100", currency.USD)

	assert.Equal(t, "USD 200.00", price.Mul(2).String())
	assert.Equal(t, "USD 219.90", price.Mul(2).Add(domain.MustMoney("19.90", currency.USD)).String())
	assert.Equal(t, "JPY 1500", domain.MustMoney("1500", currency.JPY).String())
	assert.True(t, domain.ZeroMoney(currency.USD).IsZero())
	assert.True(t, domain.MustMoney("6.9", currency.USD).Equal(domain.MustMoney("6.90", currency.USD)))
	assert.False(t, domain.MustMoney("6.9", currency.USD).Equal(domain.MustMoney("6.9", currency.EUR)))

	assert.Panics(t, func() {
		price.Add(domain.MustMoney("1", currency.EUR))
	})

	_, err := domain.NewMoney("ten", currency.USD)
	require.Error(t, err)
}

func TestShipping(t *testing.T) {
	tests := []struct {
		method   domain.ShippingMethod
		wantCost string
		wantDays string
	}{
		{method: domain.ShippingGround, wantCost: "USD 6.90", wantDays: "5-7"},
		{method: domain.ShippingStandard, wantCost: "USD 9.90", wantDays: "3-5"},
		{method: domain.ShippingExpedited, wantCost: "USD 19.90", wantDays: "1-2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			option, err := domain.LookupShipping(tt.method)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, option.Cost.String())
			assert.Equal(t, tt.wantDays, option.Days())

			parsed, err := domain.ParseShippingMethod(string(tt.method))
			require.NoError(t, err)
			assert.Equal(t, tt.method, parsed)
		})
	}

	_, err := domain.ParseShippingMethod("overnight")
	require.ErrorIs(t, err, domain.ErrUnknownShippingMethod)
	assert.Len(t, domain.ShippingOptions(), 3)
}

func TestCartItem(t *testing.T) {
	item := domain.CartItem{
		ProductID: "p1",
		Size:      42,
		Color:     domain.Color{Code: "black"},
		UnitPrice: domain.MustMoney("469", currency.USD),
		Quantity:  3,
	}

	assert.Equal(t, domain.LineKey{ProductID: "p1", Size: 42, ColorCode: "black"}, item.Key())
	assert.Equal(t, "USD 1407.00", item.LineTotal().String())
}
