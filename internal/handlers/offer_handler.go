package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type OfferHandler struct {
	Service *services.OfferService
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var offer models.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateOffer(r.Context(), offer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OfferHandler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "offer_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer_id")
		return
	}
	offer, err := h.Service.GetOfferByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

// GetOffers lists offers filtered by request_id and/or provider_id query
// parameters.
func (h *OfferHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	requestID, _ := strconv.Atoi(r.URL.Query().Get("request_id"))
	providerID, _ := strconv.Atoi(r.URL.Query().Get("provider_id"))

	offers, err := h.Service.GetOffers(r.Context(), requestID, providerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "offer_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer_id")
		return
	}
	var body models.UpdateOfferStatus
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	offer, err := h.Service.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "offer_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid offer_id")
		return
	}
	if err := h.Service.DeleteOffer(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "offer deleted"})
}
