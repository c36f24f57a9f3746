package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pricecheck/internal/domain"
	applog "pricecheck/internal/log"
	"pricecheck/internal/services"
	"pricecheck/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// Create handles POST /api/orders. The unparsed body is stored next to
// the normalized items as an audit trail.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	raw := c.Body()
	var req domain.OrderRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	o, err := h.Orders.Create(req, raw)
	if errors.Is(err, services.ErrEmptyOrder) {
		return jsonError(c, fiber.StatusUnprocessableEntity, "order has no items")
	}
	if err != nil {
		applog.Error(c, "order.create", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	applog.Audit(c, "order.create", map[string]any{
		"order_id":     o.ID,
		"total_qty":    float64(o.TotalQty),
		"total_amount": o.TotalAmount,
		"items":        len(o.Items),
	})
	return c.JSON(fiber.Map{
		"success":      true,
		"id":           o.ID,
		"created_at":   o.CreatedAt,
		"status":       o.Status,
		"total_qty":    o.TotalQty,
		"total_amount": o.TotalAmount,
	})
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"))
	offset := validate.Offset(c.Query("offset"))

	rows, err := h.Orders.List(limit, offset)
	if err != nil {
		applog.Error(c, "order.list", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "count": len(rows), "rows": rows})
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}

	o, err := h.Orders.Get(id)
	if errors.Is(err, services.ErrOrderNotFound) {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}
	if err != nil {
		applog.Error(c, "order.get", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"success": true, "row": o})
}

// UpdateStatus handles PATCH /api/orders/:id/status. The status must be
// a member of the closed set; any transition between members is allowed.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	status, ok := validate.Status(req.Status)
	if !ok {
		return jsonError(c, fiber.StatusUnprocessableEntity, "unknown status")
	}

	err = h.Orders.UpdateStatus(id, status)
	if errors.Is(err, services.ErrOrderNotFound) {
		return jsonError(c, fiber.StatusNotFound, "order not found")
	}
	if err != nil {
		applog.Error(c, "order.status", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	applog.Audit(c, "order.status", map[string]any{"order_id": id, "status": status})
	return c.JSON(fiber.Map{"success": true, "id": id, "status": status})
}
