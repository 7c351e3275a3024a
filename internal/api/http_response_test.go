package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivathsav004/staw-hat-faucet-backend/internal/api/handlers"
	"github.com/srivathsav004/staw-hat-faucet-backend/internal/types"
)

func invokeHandler(t *testing.T, handlerFunc func(*http.Request) (*handlers.Result, *types.Error)) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/test", nil)
	registerHandler(handlerFunc)(recorder, request)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestRegisterHandlerSuccess(t *testing.T) {
	recorder := invokeHandler(t, func(*http.Request) (*handlers.Result, *types.Error) {
		return handlers.NewResult(map[string]interface{}{"success": true, "txHash": "0xabc"}), nil
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "0xabc", body["txHash"])
}

func TestRegisterHandlerErrorEnvelope(t *testing.T) {
	recorder := invokeHandler(t, func(*http.Request) (*handlers.Result, *types.Error) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAddress, "Invalid recipient address")
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INVALID_ADDRESS", body["errorCode"])
	assert.Equal(t, "Invalid recipient address", body["error"])
	_, hasWait := body["wait"]
	assert.False(t, hasWait, "wait must be omitted when not set")
}

func TestRegisterHandlerRateLimitCarriesWait(t *testing.T) {
	recorder := invokeHandler(t, func(*http.Request) (*handlers.Result, *types.Error) {
		return nil, types.NewErrorWithWait(http.StatusTooManyRequests, types.RateLimited, "Wait before next claim", 42)
	})

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "RATE_LIMITED", body["errorCode"])
	assert.Equal(t, float64(42), body["wait"])
}

func TestRegisterHandlerHidesInternalErrorDetail(t *testing.T) {
	recorder := invokeHandler(t, func(*http.Request) (*handlers.Result, *types.Error) {
		return nil, types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "rpc endpoint exploded: secret detail")
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "Internal service error", body["error"])
}

func TestRegisterHandlerNilResult(t *testing.T) {
	recorder := invokeHandler(t, func(*http.Request) (*handlers.Result, *types.Error) {
		return nil, nil
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "INTERNAL_SERVICE_ERROR", body["errorCode"])
}
