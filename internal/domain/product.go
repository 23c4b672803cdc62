package domain

type Brand string

const (
	BrandNike       Brand = "Nike"
	BrandAdidas     Brand = "Adidas"
	BrandNewBalance Brand = "New Balance"
	BrandPuma       Brand = "Puma"
	BrandAsics      Brand = "Asics"
	BrandReebok     Brand = "Reebok"
)

func Brands() []Brand {
	return []Brand{BrandNike, BrandAdidas, BrandNewBalance, BrandPuma, BrandAsics, BrandReebok}
}

func (b Brand) Valid() bool {
	for _, known := range Brands() {
		if b == known {
			return true
		}
	}
	return false
}

type Category string

const (
	CategoryMen    Category = "Men"
	CategoryWomen  Category = "Women"
	CategoryUnisex Category = "Unisex"
	CategoryKids   Category = "Kids"
)

func Categories() []Category {
	return []Category{CategoryMen, CategoryWomen, CategoryUnisex, CategoryKids}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Size is a numeric shoe size. The zero value means no size was chosen.
type Size int

const NoSize Size = 0

type Color struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

func (c Color) IsZero() bool {
	return c.Code == ""
}

type Product struct {
	ID       string
	Name     string
	Brand    Brand
	Category Category
	Price    Money
	Colors   []Color
	Images   []string
	Sizes    []Size
	Rating   float64
	Badge    string
}

func (p Product) HasSize(size Size) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

func (p Product) Color(code string) (Color, bool) {
	for _, c := range p.Colors {
		if c.Code == code {
			return c, true
		}
	}
	return Color{}, false
}

func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
