package handlers

import (
	"pricecheck/internal/config"
	"pricecheck/internal/repos"
	"pricecheck/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Sessions     *services.SessionService
	AuthHandler  *AuthHandler
	PriceHandler *PriceHandler
	OrderHandler *OrderHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	sessSvc := services.NewSessionService(cfg.SessionTTL)
	priceSvc := services.NewPriceService(prodRepo, cfg.PriceActiveOnly)
	orderSvc := services.NewOrderService(orderRepo)

	return &Deps{
		Sessions:     sessSvc,
		AuthHandler:  &AuthHandler{Sessions: sessSvc},
		PriceHandler: &PriceHandler{Price: priceSvc},
		OrderHandler: &OrderHandler{Orders: orderSvc},
	}
}
