package api

import (
	"github.com/go-chi/chi"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/claim", registerHandler(handlers.Claim))
	r.Get("/faucet/{network}", registerHandler(handlers.GetFaucetInfo))
	r.Get("/networks", registerHandler(handlers.GetNetworks))
}
