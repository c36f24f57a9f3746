package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"pricecheck/internal/repos"
	"pricecheck/internal/services"
)

func memdbProducts(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE products(
	  id INTEGER PRIMARY KEY,
	  item_no TEXT NOT NULL,
	  product_name TEXT NOT NULL,
	  price_excl_tax NUMERIC NOT NULL,
	  unit TEXT,
	  active INTEGER NOT NULL DEFAULT 1,
	  created_at TEXT,
	  updated_at TEXT
	);
	CREATE TABLE product_barcodes(
	  barcode TEXT NOT NULL,
	  product_id INTEGER NOT NULL,
	  is_primary INTEGER NOT NULL DEFAULT 0,
	  updated_at TEXT,
	  PRIMARY KEY(barcode, product_id)
	);

	INSERT INTO products(id,item_no,product_name,price_excl_tax,unit,active) VALUES
	  (1,'A-1','Oolong Tea',25,'bottle',1),
	  (2,'A-2','Oolong Tea (promo)',22,'bottle',1),
	  (3,'A-3','Dried Mango',120,'nan',1),
	  (4,'A-4','Retired Item',10,'pc',0);

	-- non-primary row inserted first on purpose
	INSERT INTO product_barcodes(barcode,product_id,is_primary,updated_at) VALUES
	  ('500100',2,0,'2025-03-01 00:00:00'),
	  ('500100',1,1,'2024-01-01 00:00:00'),
	  ('500200',3,1,'2025-01-01 00:00:00'),
	  ('500300',4,1,'2025-01-01 00:00:00');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestLookupPrimaryWins(t *testing.T) {
	db := memdbProducts(t)
	svc := services.NewPriceService(repos.NewProductRepo(db), true)

	// primary beats a newer non-primary mapping regardless of insert order
	p, err := svc.Lookup("500100")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.ItemNo != "A-1" || p.PriceExclTax != 25 {
		t.Fatalf("want primary product A-1, got %+v", p)
	}
}

func TestLookupUnitPlaceholder(t *testing.T) {
	db := memdbProducts(t)
	svc := services.NewPriceService(repos.NewProductRepo(db), true)

	p, err := svc.Lookup("500200")
	if err != nil {
		t.Fatal(err)
	}
	if p.Unit != "" {
		t.Fatalf("literal nan unit should normalize to empty, got %q", p.Unit)
	}
}

func TestLookupActiveFilter(t *testing.T) {
	db := memdbProducts(t)

	gated := services.NewPriceService(repos.NewProductRepo(db), true)
	if p, err := gated.Lookup("500300"); err != nil || p != nil {
		t.Fatalf("inactive product should be a soft miss when filtering: %v %+v", err, p)
	}

	open := services.NewPriceService(repos.NewProductRepo(db), false)
	p, err := open.Lookup("500300")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || p.ItemNo != "A-4" {
		t.Fatalf("unfiltered variant should resolve inactive products, got %+v", p)
	}
}

func TestLookupMissAndEmpty(t *testing.T) {
	db := memdbProducts(t)
	svc := services.NewPriceService(repos.NewProductRepo(db), true)

	p, err := svc.Lookup("999999")
	if err != nil || p != nil {
		t.Fatalf("unknown barcode is a soft miss, got %v %+v", err, p)
	}
	if _, err := svc.Lookup("   "); err != services.ErrEmptyBarcode {
		t.Fatalf("want ErrEmptyBarcode, got %v", err)
	}
}
