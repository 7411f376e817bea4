package models

// Sale is an immutable record of a completed sale. ProductName, SalePrice
// and PurchasePrice are denormalized snapshots taken at record time, so
// history is preserved even if the product later changes or is deleted.
type Sale struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Quantity      int64  `json:"quantity"`
	SalePrice     int64  `json:"salePrice"`
	PurchasePrice int64  `json:"purchasePrice"`
	Profit        int64  `json:"profit"`
	Date          int64  `json:"date"`
}

// Revenue returns salePrice * quantity for this sale.
func (s *Sale) Revenue() int64 {
	return s.SalePrice * s.Quantity
}
