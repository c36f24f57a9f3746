package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Order statuses. Any transition between them is allowed; DONE and
// CANCELED are terminal by convention only.
const (
	StatusNew      = "NEW"
	StatusPaid     = "PAID"
	StatusDone     = "DONE"
	StatusCanceled = "CANCELED"
	StatusReturn   = "RETURN"
)

var statuses = map[string]bool{
	StatusNew:      true,
	StatusPaid:     true,
	StatusDone:     true,
	StatusCanceled: true,
	StatusReturn:   true,
}

func ValidStatus(s string) bool { return statuses[s] }

// Price is a resolved barcode lookup.
type Price struct {
	Barcode      string  `json:"barcode"`
	ItemNo       string  `json:"item_no"`
	ProductName  string  `json:"product_name"`
	PriceExclTax float64 `json:"price_excl_tax"`
	Unit         string  `json:"unit"`
}

// LineItemInput is one item as submitted by the client. Numeric fields
// are pointers so that "absent" and "zero" stay distinguishable.
type LineItemInput struct {
	Barcode  string   `json:"barcode"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	Qty      *float64 `json:"qty"`
	Price    *float64 `json:"price"`
	Subtotal *float64 `json:"subtotal"`
}

// OrderItem is a line item after numeric coercion and subtotal computation.
type OrderItem struct {
	Barcode  string  `json:"barcode,omitempty"`
	Name     string  `json:"name,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type OrderRequest struct {
	Items    []LineItemInput `json:"items"`
	Note     string          `json:"note"`
	ShopName string          `json:"shop_name"`
}

// Order is a persisted order. Raw carries the original request payload
// and is only populated on single-order reads.
type Order struct {
	ID          int64           `json:"id"`
	CreatedAt   string          `json:"created_at"`
	Status      string          `json:"status"`
	Items       []OrderItem     `json:"items"`
	TotalQty    Qty             `json:"total_qty"`
	TotalAmount float64         `json:"total_amount"`
	Note        string          `json:"note,omitempty"`
	ShopName    string          `json:"shop_name,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// Qty marshals as a JSON integer when the value is whole (3, not 3.0)
// and as a plain float otherwise.
type Qty float64

func (q Qty) MarshalJSON() ([]byte, error) {
	f := float64(q)
	if f == math.Trunc(f) {
		return []byte(strconv.FormatInt(int64(f), 10)), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

func (q *Qty) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*q = Qty(f)
	return nil
}
