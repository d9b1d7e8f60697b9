package handlers

import (
	"encoding/json"
	"net/http"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type ProviderHandler struct {
	Service *services.ProviderService
}

func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	var provider models.Provider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateProvider(r.Context(), provider)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := getIntParam(r, "provider_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider_id")
		return
	}
	provider, err := h.Service.GetProviderByUserID(r.Context(), providerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) SubscribeServices(w http.ResponseWriter, r *http.Request) {
	var req models.ProviderServicesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	provider, err := h.Service.SubscribeServices(r.Context(), req.ProviderID, req.ServiceIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) UnsubscribeService(w http.ResponseWriter, r *http.Request) {
	providerID, err := getIntParam(r, "provider_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider_id")
		return
	}
	serviceID, err := getIntParam(r, "service_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service_id")
		return
	}
	provider, err := h.Service.UnsubscribeService(r.Context(), providerID, serviceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := getIntParam(r, "provider_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider_id")
		return
	}
	if err := h.Service.DeleteProvider(r.Context(), providerID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "provider deleted"})
}

func (h *ProviderHandler) RateProvider(w http.ResponseWriter, r *http.Request) {
	var req models.ProviderRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	provider, err := h.Service.RateProvider(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

func (h *ProviderHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	providerID, err := getIntParam(r, "provider_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider_id")
		return
	}
	var body struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Service.SetAvailability(r.Context(), providerID, body.Available); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "availability updated"})
}
