package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"pricecheck/internal/domain"
	"pricecheck/internal/repos"
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrBadStatus     = errors.New("unknown status")
	ErrOrderNotFound = errors.New("order not found")
)

type Totals struct {
	Items       []domain.OrderItem
	TotalQty    float64
	TotalAmount float64
}

// Normalize coerces line items to consistent numbers: missing qty/price
// count as 0, subtotal is the explicit value when given, else qty*price.
// Pure; accepts an empty list.
func Normalize(items []domain.LineItemInput) Totals {
	t := Totals{Items: make([]domain.OrderItem, 0, len(items))}
	for _, in := range items {
		var qty, price float64
		if in.Qty != nil {
			qty = *in.Qty
		}
		if in.Price != nil {
			price = *in.Price
		}
		subtotal := qty * price
		if in.Subtotal != nil {
			subtotal = *in.Subtotal
		}
		t.Items = append(t.Items, domain.OrderItem{
			Barcode:  in.Barcode,
			Name:     in.Name,
			Unit:     in.Unit,
			Qty:      qty,
			Price:    price,
			Subtotal: subtotal,
		})
		t.TotalQty += qty
		t.TotalAmount += subtotal
	}
	return t
}

type OrderService struct {
	Orders *repos.OrderRepo
}

func NewOrderService(orders *repos.OrderRepo) *OrderService {
	return &OrderService{Orders: orders}
}

// Create normalizes the submitted items and persists a new NEW order
// together with the raw request payload for audit. Empty submissions
// are rejected before touching storage.
func (s *OrderService) Create(req domain.OrderRequest, raw []byte) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	t := Normalize(req.Items)
	itemsJSON, err := json.Marshal(t.Items)
	if err != nil {
		return domain.Order{}, err
	}

	id, createdAt, err := s.Orders.Create(string(itemsJSON), t.TotalQty, t.TotalAmount, req.Note, req.ShopName, string(raw))
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:          id,
		CreatedAt:   createdAt,
		Status:      domain.StatusNew,
		Items:       t.Items,
		TotalQty:    domain.Qty(t.TotalQty),
		TotalAmount: t.TotalAmount,
		Note:        req.Note,
		ShopName:    req.ShopName,
	}, nil
}

// List returns orders newest first; limit and offset are assumed
// pre-clamped by the caller. Raw payloads are excluded.
func (s *OrderService) List(limit, offset int) ([]domain.Order, error) {
	rows, err := s.Orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, r := range rows {
		o, err := toOrder(r, false)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *OrderService) Get(id int64) (domain.Order, error) {
	row, err := s.Orders.Get(id)
	if err == sql.ErrNoRows {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return toOrder(row, true)
}

// UpdateStatus overwrites the order status. The status must belong to
// the closed set; any transition between members is allowed.
func (s *OrderService) UpdateStatus(id int64, status string) error {
	if !domain.ValidStatus(status) {
		return ErrBadStatus
	}
	err := s.Orders.UpdateStatus(id, status)
	if err == sql.ErrNoRows {
		return ErrOrderNotFound
	}
	return err
}

func toOrder(r repos.OrderRow, withRaw bool) (domain.Order, error) {
	var items []domain.OrderItem
	if err := json.Unmarshal([]byte(r.ItemsJSON), &items); err != nil {
		return domain.Order{}, err
	}
	o := domain.Order{
		ID:          r.ID,
		CreatedAt:   r.CreatedAt,
		Status:      r.Status,
		Items:       items,
		TotalQty:    domain.Qty(r.TotalQty),
		TotalAmount: r.TotalAmount,
		Note:        r.Note,
		ShopName:    r.ShopName,
	}
	if withRaw && r.RawPayload != "" {
		o.Raw = json.RawMessage(r.RawPayload)
	}
	return o, nil
}
