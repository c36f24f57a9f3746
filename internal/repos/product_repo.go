package repos

import "github.com/jmoiron/sqlx"

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type PriceRow struct {
	ItemNo       string  `db:"item_no"`
	ProductName  string  `db:"product_name"`
	PriceExclTax float64 `db:"price_excl_tax"`
	Unit         string  `db:"unit"`
}

// ByBarcode resolves a barcode to its product. When a barcode maps to
// several products the primary mapping wins, then the most recently
// updated one. Returns sql.ErrNoRows when nothing matches.
func (r *ProductRepo) ByBarcode(barcode string, activeOnly bool) (PriceRow, error) {
	q := `
	  SELECT p.item_no, p.product_name, p.price_excl_tax, COALESCE(p.unit,'') AS unit
	  FROM product_barcodes b
	  JOIN products p ON p.id = b.product_id`
	if activeOnly {
		q += `
	  WHERE b.barcode = ? AND p.active = 1`
	} else {
		q += `
	  WHERE b.barcode = ?`
	}
	q += `
	  ORDER BY b.is_primary DESC, b.updated_at DESC
	  LIMIT 1`

	var row PriceRow
	err := r.db.Get(&row, q, barcode)
	return row, err
}
