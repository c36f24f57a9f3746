package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo products/barcodes if the catalog is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Product price records (read-only for this service)
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  item_no TEXT NOT NULL,
  product_name TEXT NOT NULL,
  price_excl_tax NUMERIC NOT NULL CHECK (price_excl_tax >= 0),
  unit TEXT,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_item_no ON products(item_no);

-- Barcode -> product mapping; a barcode may map to several products,
-- disambiguated by is_primary then updated_at
CREATE TABLE IF NOT EXISTS product_barcodes(
  barcode TEXT NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  is_primary INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(barcode, product_id)
);
CREATE INDEX IF NOT EXISTS idx_barcodes_barcode ON product_barcodes(barcode);

-- Orders; items_json holds normalized line items, raw_payload the
-- original request body for audit
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  status TEXT NOT NULL DEFAULT 'NEW',
  items_json TEXT NOT NULL,
  total_qty NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  note TEXT NOT NULL DEFAULT '',
  shop_name TEXT NOT NULL DEFAULT '',
  raw_payload TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products/barcodes")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,item_no,product_name,price_excl_tax,unit,active) VALUES
	  (1,'A-1001','Oolong Tea 600ml',25,'bottle',1),
	  (2,'A-1002','Instant Noodles Beef',38,'pack',1),
	  (3,'A-1003','Rice Crackers',52,'box',1),
	  (4,'A-1004','Rice Crackers (old pack)',48,'box',0)`)

	tx.MustExec(`INSERT INTO product_barcodes(barcode,product_id,is_primary,updated_at) VALUES
	  ('4710088412345',1,1,'2025-01-10 08:00:00'),
	  ('4710088412352',2,1,'2025-01-10 08:00:00'),
	  ('4710088412369',3,1,'2025-02-01 08:00:00'),
	  ('4710088412369',4,0,'2024-11-20 08:00:00')`)

	return tx.Commit()
}
