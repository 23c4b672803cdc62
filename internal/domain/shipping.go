package domain

import "fmt"

type ShippingMethod string

const (
	ShippingGround    ShippingMethod = "ground"
	ShippingStandard  ShippingMethod = "standard"
	ShippingExpedited ShippingMethod = "expedited"
)

type ShippingOption struct {
	Method  ShippingMethod
	Label   string
	MinDays int
	MaxDays int
	Cost    Money
}

func (o ShippingOption) Days() string {
	return fmt.Sprintf("%d-%d", o.MinDays, o.MaxDays)
}

// ShippingOptions returns the fixed shipping table, cheapest first.
func ShippingOptions() []ShippingOption {
	return []ShippingOption{
		{Method: ShippingGround, Label: "Ground", MinDays: 5, MaxDays: 7, Cost: MustMoney("6.90", DefaultCurrency)},
		{Method: ShippingStandard, Label: "Standard", MinDays: 3, MaxDays: 5, Cost: MustMoney("9.90", DefaultCurrency)},
		{Method: ShippingExpedited, Label: "Expedited", MinDays: 1, MaxDays: 2, Cost: MustMoney("19.90", DefaultCurrency)},
	}
}

func LookupShipping(method ShippingMethod) (ShippingOption, error) {
	for _, o := range ShippingOptions() {
		if o.Method == method {
			return o, nil
		}
	}
	return ShippingOption{}, fmt.Errorf("%w: %q", ErrUnknownShippingMethod, method)
}

func ParseShippingMethod(s string) (ShippingMethod, error) {
	o, err := LookupShipping(ShippingMethod(s))
	if err != nil {
		return "", err
	}
	return o.Method, nil
}
