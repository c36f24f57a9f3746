package services

import (
	"database/sql"
	"errors"
	"strings"

	"pricecheck/internal/domain"
	"pricecheck/internal/repos"
)

var ErrEmptyBarcode = errors.New("barcode required")

type PriceService struct {
	Products *repos.ProductRepo
	// ActiveOnly restricts lookups to active products; both variants
	// exist in the field, so this is a deployment choice.
	ActiveOnly bool
}

func NewPriceService(products *repos.ProductRepo, activeOnly bool) *PriceService {
	return &PriceService{Products: products, ActiveOnly: activeOnly}
}

// Lookup resolves a barcode to a price record. A missing mapping is not
// an error: it returns (nil, nil) and the caller renders a soft
// not-found. Storage failures pass through.
func (s *PriceService) Lookup(barcode string) (*domain.Price, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, ErrEmptyBarcode
	}

	row, err := s.Products.ByBarcode(barcode, s.ActiveOnly)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.Price{
		Barcode:      barcode,
		ItemNo:       row.ItemNo,
		ProductName:  row.ProductName,
		PriceExclTax: row.PriceExclTax,
		Unit:         normalizeUnit(row.Unit),
	}, nil
}

// normalizeUnit trims the stored unit and drops the literal "nan", a
// known placeholder left over from spreadsheet imports.
func normalizeUnit(u string) string {
	u = strings.TrimSpace(u)
	if u == "nan" {
		return ""
	}
	return u
}
