package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/api/middlewares"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/observability/metrics"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/types"
)

type ClaimRequest struct {
	Network      string `json:"network"`
	Recipient    string `json:"recipient"`
	CaptchaToken string `json:"captchaToken"`
}

type ClaimResponse struct {
	Success   bool   `json:"success"`
	TxHash    string `json:"txHash"`
	Network   string `json:"network"`
	Recipient string `json:"recipient"`
	AmountWei string `json:"amountWei,omitempty"`
}

// Claim drips test funds to the requested recipient. The client identifier
// used for rate limiting is the resolved remote address, not anything the
// request body carries.
func (h *Handler) Claim(request *http.Request) (*Result, *types.Error) {
	payload := &ClaimRequest{}
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "invalid request payload",
		)
	}
	if payload.Network == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "network is required",
		)
	}
	if payload.Recipient == "" {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "recipient is required",
		)
	}

	clientId := middlewares.GetClientIp(request.Context())

	result, claimErr := h.services.Claim(
		request.Context(), clientId, payload.Network, payload.Recipient, payload.CaptchaToken,
	)
	if claimErr != nil {
		metrics.RecordClaimOutcome(payload.Network, claimErr.ErrorCode.String())
		return nil, claimErr
	}

	metrics.RecordClaimOutcome(payload.Network, metrics.Success.String())
	return NewResult(&ClaimResponse{
		Success:   true,
		TxHash:    result.TxHash,
		Network:   result.Network,
		Recipient: result.Recipient,
		AmountWei: result.AmountWei,
	}), nil
}
