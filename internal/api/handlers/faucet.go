package handlers

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/types"
)

type NetworksResponse struct {
	Networks []string `json:"networks"`
}

// GetFaucetInfo exposes one network's faucet parameters for frontends.
func (h *Handler) GetFaucetInfo(request *http.Request) (*Result, *types.Error) {
	network := chi.URLParam(request, "network")
	if network == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "network is required",
		)
	}

	info, err := h.services.GetFaucetInfo(request.Context(), network)
	if err != nil {
		return nil, err
	}
	return NewResult(info), nil
}

// GetNetworks lists the networks this deployment serves.
func (h *Handler) GetNetworks(request *http.Request) (*Result, *types.Error) {
	return NewResult(&NetworksResponse{Networks: h.services.ListNetworks()}), nil
}
