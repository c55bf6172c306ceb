package server

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/logger"
	"max.ks1230/public24-bot/internal/model/customerr"
	"max.ks1230/public24-bot/internal/model/webhook"
)

type webhookHandler struct {
	fulfiller fulfiller
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *webhookHandler) fulfill(w http.ResponseWriter, r *http.Request) {
	var req webhook.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	list, err := h.fulfiller.Fulfill(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// writeError maps error kinds to protocol statuses: caller mistakes are
// 400, unknown intents 422, upstream failures 502.
func writeError(w http.ResponseWriter, err error) {
	var badRequest *customerr.BadRequestError
	var unsupported *customerr.UnsupportedIntentError

	status := http.StatusBadGateway
	switch {
	case errors.As(err, &badRequest):
		status = http.StatusBadRequest
	case errors.As(err, &unsupported):
		status = http.StatusUnprocessableEntity
	}

	logger.Error("webhook request failed", zap.Error(err), zap.Int("status", status))
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}
