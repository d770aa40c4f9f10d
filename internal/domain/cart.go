package domain

import "github.com/shopspring/decimal"

// SendLaterSuffix is appended to a product id to form the identity of its
// send-later split line.
const SendLaterSuffix = "L"

// LineID identifies a cart line. It equals the product id for normal lines
// and product id + SendLaterSuffix for a send-later split.
type LineID string

func (id LineID) String() string {
	return string(id)
}

func SendLaterID(productID string) LineID {
	return LineID(productID + SendLaterSuffix)
}

// CartLine is a copy of a CatalogItem taken when it entered the cart,
// extended with quantity and discount.
type CartLine struct {
	ID        LineID
	ProductID string
	Name      string
	Category  string
	UnitPrice Money
	ImageURL  string
	Stock     int

	Quantity  int
	Discount  Discount
	SendLater bool
}

func NewCartLine(item CatalogItem) CartLine {
	return CartLine{
		ID:        LineID(item.ID),
		ProductID: item.ID,
		Name:      item.Name,
		Category:  item.Category,
		UnitPrice: item.Price,
		ImageURL:  item.ImageURL,
		Stock:     item.Stock,
		Quantity:  1,
		Discount:  FlatDiscount(decimal.Zero),
	}
}

// Gross is unit price times quantity, before the line discount.
func (l CartLine) Gross() Money {
	return l.UnitPrice.MulInt(l.Quantity)
}

// Total is derived from quantity, unit price and discount on every call.
func (l CartLine) Total() Money {
	return l.Discount.ApplyTo(l.Gross())
}
