package domain

// LineKey is the identity of a cart line: two additions with equal keys merge.
type LineKey struct {
	ProductID string
	Size      Size
	ColorCode string
}

type CartItem struct {
	ProductID string
	Name      string
	Brand     Brand
	Image     string
	Size      Size
	Color     Color
	UnitPrice Money
	Quantity  int
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Size: i.Size, ColorCode: i.Color.Code}
}

func (i CartItem) LineTotal() Money {
	return i.UnitPrice.Mul(int64(i.Quantity))
}
