package handlers

import (
	"context"
	"net/http"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/config"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/services"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult(data interface{}) *Result {
	return &Result{Data: data, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}
