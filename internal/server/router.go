package server

import (
	"net/http"

	"kazhicho/internal/location"
	"kazhicho/internal/menu"
	"kazhicho/internal/push"
	"kazhicho/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(
	menuCtrl *menu.Controller,
	sessionCtrl *session.Controller,
	pushCtrl *push.Controller,
	locationCtrl *location.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", menuCtrl.HandleListMenu)
		r.Get("/location", locationCtrl.HandleGetLocation)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionCtrl.HandleOpenSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Delete("/", sessionCtrl.HandleCloseSession)
				r.Get("/cart", sessionCtrl.HandleGetCart)
				r.Post("/cart/items", sessionCtrl.HandleAddCartItem)
				r.Delete("/cart", sessionCtrl.HandleClearCart)
				r.Post("/checkout", sessionCtrl.HandleCheckout)
				r.Get("/orders", sessionCtrl.HandleListOrders)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/orders", sessionCtrl.HandleAdminOrders)
			r.Get("/menu", menuCtrl.HandleAdminListMenu)
			r.Post("/menu", menuCtrl.HandleAddItem)
			r.Put("/menu/{itemID}/availability", menuCtrl.HandleSetAvailability)
			r.Put("/menu/{itemID}/price", menuCtrl.HandleUpdatePrice)
		})

		// Delivery surface for the external push collaborator.
		r.Route("/push", func(r chi.Router) {
			r.Post("/location", pushCtrl.HandleLocationUpdate)
			r.Post("/orders", pushCtrl.HandleOrderCreated)
			r.Post("/status", pushCtrl.HandleStatusChanged)
		})
	})

	return r
}
