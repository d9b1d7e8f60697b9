package handlers

import (
	"encoding/json"
	"net/http"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.Service.CreatePaymentIntent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	intentID := getParam(r, "payment_intent_id")
	if intentID == "" {
		writeError(w, http.StatusBadRequest, "missing payment_intent_id")
		return
	}
	balance, err := h.Service.ConfirmPayment(r.Context(), intentID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"token_balance": balance})
}
