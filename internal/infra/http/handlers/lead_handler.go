package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type LeadHandler struct {
	UC *usecase.LeadUseCase
}

func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{UC: uc}
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.UC.List(r.Context())
	if err != nil {
		log.Printf("failed to list leads: %v", err)
		http.Error(w, "Failed to fetch leads", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	lead, err := h.UC.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err, "create")
		return
	}

	middleware.RecordMutation("lead", "create")
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	lead, err := h.UC.Update(r.Context(), input)
	if err != nil {
		h.writeError(w, err, "update")
		return
	}

	middleware.RecordMutation("lead", "update")
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.UC.Delete(r.Context(), req.ID); err != nil {
		h.writeError(w, err, "delete")
		return
	}

	middleware.RecordMutation("lead", "delete")
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) writeError(w http.ResponseWriter, err error, op string) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.Is(err, entity.ErrMissingID):
		http.Error(w, "ID is required", http.StatusBadRequest)
	case errors.As(err, &verrs):
		http.Error(w, verrs.Error(), http.StatusBadRequest)
	case errors.Is(err, entity.ErrNotFound):
		http.Error(w, "lead not found", http.StatusNotFound)
	default:
		log.Printf("failed to %s lead: %v", op, err)
		http.Error(w, "Failed to "+op+" lead", http.StatusInternalServerError)
	}
}
