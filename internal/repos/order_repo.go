package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID          int64   `db:"id"`
	CreatedAt   string  `db:"created_at"`
	Status      string  `db:"status"`
	ItemsJSON   string  `db:"items_json"`
	TotalQty    float64 `db:"total_qty"`
	TotalAmount float64 `db:"total_amount"`
	Note        string  `db:"note"`
	ShopName    string  `db:"shop_name"`
	RawPayload  string  `db:"raw_payload"`
}

// Create inserts a new order with status NEW inside one transaction and
// reads back the storage-assigned id and timestamp via RETURNING.
func (r *OrderRepo) Create(itemsJSON string, totalQty, totalAmount float64, note, shopName, rawPayload string) (int64, string, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = tx.Rollback() }()

	var row struct {
		ID        int64  `db:"id"`
		CreatedAt string `db:"created_at"`
	}
	err = tx.Get(&row, `
	  INSERT INTO orders(status, items_json, total_qty, total_amount, note, shop_name, raw_payload)
	  VALUES('NEW', ?, ?, ?, ?, ?, ?)
	  RETURNING id, created_at
	`, itemsJSON, totalQty, totalAmount, note, shopName, rawPayload)
	if err != nil {
		return 0, "", err
	}
	if err := tx.Commit(); err != nil {
		return 0, "", err
	}
	return row.ID, row.CreatedAt, nil
}

// List returns orders newest first. raw_payload is deliberately not
// selected for list views.
func (r *OrderRepo) List(limit, offset int) ([]OrderRow, error) {
	var out []OrderRow
	err := r.db.Select(&out, `
	  SELECT id, created_at, status, items_json, total_qty, total_amount, note, shop_name
	  FROM orders
	  ORDER BY id DESC
	  LIMIT ? OFFSET ?
	`, limit, offset)
	return out, err
}

func (r *OrderRepo) Get(id int64) (OrderRow, error) {
	var o OrderRow
	err := r.db.Get(&o, `
	  SELECT id, created_at, status, items_json, total_qty, total_amount, note, shop_name, raw_payload
	  FROM orders
	  WHERE id = ?
	`, id)
	return o, err
}

// UpdateStatus overwrites the status unconditionally. Returns
// sql.ErrNoRows when the order does not exist; nothing is written in
// that case.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
