package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "pricecheck/internal/log"
	"pricecheck/internal/services"
	"pricecheck/internal/validate"
)

type PriceHandler struct {
	Price *services.PriceService
}

// Lookup handles GET /api/price?barcode=X. A barcode with no mapping is
// an expected outcome and answers 200 with success=false, keeping it
// distinct from storage failures.
func (h *PriceHandler) Lookup(c *fiber.Ctx) error {
	barcode, ok := validate.Barcode(c.Query("barcode"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "barcode"})
		return jsonError(c, fiber.StatusBadRequest, "barcode required")
	}

	p, err := h.Price.Lookup(barcode)
	if errors.Is(err, services.ErrEmptyBarcode) {
		return jsonError(c, fiber.StatusBadRequest, "barcode required")
	}
	if err != nil {
		applog.Error(c, "price.lookup", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if p == nil {
		applog.Info(c, "price.lookup.miss", map[string]any{"barcode": barcode})
		return c.JSON(fiber.Map{"success": false, "message": "no product matches this barcode"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"barcode":        p.Barcode,
		"item_no":        p.ItemNo,
		"product_name":   p.ProductName,
		"price_excl_tax": p.PriceExclTax,
		"unit":           p.Unit,
	})
}

type checkItem struct {
	Barcode string   `json:"barcode"`
	Qty     *float64 `json:"qty"`
}

// Check handles POST /api/price-check: a passthrough echo used by the
// scanner page to confirm a batch before ordering. Missing quantities
// echo back as 1.
func (h *PriceHandler) Check(c *fiber.Ctx) error {
	var req struct {
		Items []checkItem `json:"items"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	items := make([]fiber.Map, 0, len(req.Items))
	for _, it := range req.Items {
		qty := 1.0
		if it.Qty != nil {
			qty = *it.Qty
		}
		items = append(items, fiber.Map{"barcode": it.Barcode, "qty": qty})
	}
	return c.JSON(fiber.Map{"success": true, "items": items})
}
