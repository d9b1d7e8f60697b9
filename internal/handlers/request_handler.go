package handlers

import (
	"encoding/json"
	"net/http"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type RequestHandler struct {
	Service *services.RequestService
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.Service.CreateRequest(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "request_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request_id")
		return
	}
	req, err := h.Service.GetRequestByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "request_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request_id")
		return
	}
	var body models.UpdateRequestStatus
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req, err := h.Service.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) GetActiveRequestsForProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := getIntParam(r, "provider_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider_id")
		return
	}
	requests, err := h.Service.GetActiveForProvider(r.Context(), providerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeListJSON(w, requests, "no active requests for provider")
}

func (h *RequestHandler) GetActiveRequestsForConsumer(w http.ResponseWriter, r *http.Request) {
	consumerID, err := getIntParam(r, "consumer_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid consumer_id")
		return
	}
	requests, err := h.Service.GetActiveForConsumer(r.Context(), consumerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeListJSON(w, requests, "no active requests for consumer")
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "request_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request_id")
		return
	}
	if err := h.Service.DeleteRequest(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "request deleted"})
}
