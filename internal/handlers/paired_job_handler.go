package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type PairedJobHandler struct {
	Service *services.MatchingService
}

// CreatePairedJob is the accept-offer entry point: it runs the compound
// matching transition and returns the created job.
func (h *PairedJobHandler) CreatePairedJob(w http.ResponseWriter, r *http.Request) {
	var params models.CreatePairedJobRequest
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	job, err := h.Service.AcceptOffer(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"job":     job,
		"message": "offer accepted, job created",
	})
}

func (h *PairedJobHandler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job_id")
		return
	}
	job, err := h.Service.GetJobByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// GetJobs lists paired jobs by consumer_id and/or provider_id. At least one
// filter is required, and an empty result set reports as 404.
func (h *PairedJobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	consumerID, _ := strconv.Atoi(r.URL.Query().Get("consumer_id"))
	providerID, _ := strconv.Atoi(r.URL.Query().Get("provider_id"))

	jobs, err := h.Service.GetJobs(r.Context(), consumerID, providerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeListJSON(w, jobs, "no paired jobs found")
}
