package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// ContactHandler expõe o CRUD de prospects e clients. Uma instância por
// entidade, montada em rotas distintas pelo main.
type ContactHandler struct {
	UC *usecase.ContactUseCase
}

func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{UC: uc}
}

type deleteRequest struct {
	ID int64 `json:"id"`
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.UC.List(r.Context())
	if err != nil {
		log.Printf("failed to list %ss: %v", h.UC.Entity, err)
		http.Error(w, fmt.Sprintf("Failed to fetch %ss", h.UC.Entity), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	record, err := h.UC.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, err, "create")
		return
	}

	middleware.RecordMutation(h.UC.Entity, "create")
	writeJSON(w, http.StatusCreated, record)
}

func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	record, err := h.UC.Update(r.Context(), input)
	if err != nil {
		h.writeError(w, err, "update")
		return
	}

	middleware.RecordMutation(h.UC.Entity, "update")
	writeJSON(w, http.StatusOK, record)
}

func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.UC.Delete(r.Context(), req.ID); err != nil {
		h.writeError(w, err, "delete")
		return
	}

	middleware.RecordMutation(h.UC.Entity, "delete")
	w.WriteHeader(http.StatusNoContent)
}

// writeError traduz os erros do use case para o status HTTP do contrato:
// 400 para id ausente e validação, 404 para id inexistente, 500 no resto.
func (h *ContactHandler) writeError(w http.ResponseWriter, err error, op string) {
	var verrs usecase.ValidationErrors
	switch {
	case errors.Is(err, entity.ErrMissingID):
		http.Error(w, "ID is required", http.StatusBadRequest)
	case errors.As(err, &verrs):
		http.Error(w, verrs.Error(), http.StatusBadRequest)
	case errors.Is(err, entity.ErrNotFound):
		http.Error(w, fmt.Sprintf("%s not found", h.UC.Entity), http.StatusNotFound)
	default:
		log.Printf("failed to %s %s: %v", op, h.UC.Entity, err)
		http.Error(w, fmt.Sprintf("Failed to %s %s", op, h.UC.Entity), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
