package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/infra/apiclient"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

// fakeAPI simula a Entity API e conta os requests recebidos.
type fakeAPI struct {
	requests []string
	nextID   int64
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/routes/prospects", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, r.Method)

		switch r.Method {
		case http.MethodPost:
			var input usecase.ContactInput
			json.NewDecoder(r.Body).Decode(&input)
			f.nextID++
			record := entity.Contact{
				ID:          f.nextID,
				Name:        input.Name,
				Email:       input.Email,
				Phone:       input.Phone,
				Contact:     input.Contact,
				LastHistory: input.LastHistory,
				Status:      input.Status,
				CreatedAt:   time.Now(),
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record)
		case http.MethodPut:
			var input usecase.ContactInput
			json.NewDecoder(r.Body).Decode(&input)
			record := entity.Contact{
				ID:        input.ID,
				Name:      input.Name,
				Email:     input.Email,
				Phone:     input.Phone,
				Contact:   input.Contact,
				Status:    input.Status,
				CreatedAt: time.Now(),
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(record)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	return mux
}

func TestContactFormSubmitCreates(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	f := NewContactForm(apiclient.NewClient(server.URL).Prospects())
	f.Name = "Carlos Silva"
	f.Email = "carlos@example.com"
	f.Phone = "11 91234 5678" // digitado livre
	f.Contact = "Phone"
	f.LastHistory = "Primeira ligação"
	f.Status = "Active"

	record, err := f.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, "(11)91234-5678", record.Phone, "telefone normalizado antes do envio")
	assert.Equal(t, []string{"POST"}, api.requests)

	// Sucesso limpa o formulário.
	assert.Empty(t, f.Name)
	assert.Nil(t, f.Editing())
}

func TestContactFormInvalidEmailBlocksNetwork(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	f := NewContactForm(apiclient.NewClient(server.URL).Prospects())
	f.Name = "Carlos Silva"
	f.Email = "abc"
	f.Phone = "(11)91234-5678"
	f.Contact = "Phone"
	f.Status = "Active"

	_, err := f.Submit(context.Background())

	var verrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Empty(t, api.requests, "validação local não pode gerar request")
}

func TestContactFormEditModeUpdates(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	f := NewContactForm(apiclient.NewClient(server.URL).Prospects())
	f.SetEditing(entity.Contact{
		ID:      9,
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		Phone:   "(18)8164-0961",
		Contact: "Email",
		Status:  "Pending",
	})

	assert.Equal(t, "Maria Souza", f.Name, "edição pré-popula os campos")

	f.Status = "Active"
	record, err := f.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(9), record.ID, "update preserva o id")
	assert.Equal(t, "Active", record.Status)
	assert.Equal(t, []string{"PUT"}, api.requests)
	assert.Nil(t, f.Editing())
}

func TestContactFormDeleteRequiresEditing(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	f := NewContactForm(apiclient.NewClient(server.URL).Prospects())

	assert.ErrorIs(t, f.Delete(context.Background()), ErrNotEditing)

	f.SetEditing(entity.Contact{ID: 5, Name: "Maria Souza", Email: "maria@example.com",
		Phone: "(18)8164-0961", Contact: "Email", Status: "Pending"})
	assert.NoError(t, f.Delete(context.Background()))
	assert.Equal(t, []string{"DELETE"}, api.requests)
	assert.Nil(t, f.Editing())
}

func TestContactFormSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Failed to create prospect", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewContactForm(apiclient.NewClient(server.URL).Prospects())
	f.Name = "Carlos Silva"
	f.Email = "carlos@example.com"
	f.Phone = "(11)91234-5678"
	f.Contact = "Phone"
	f.Status = "Active"

	_, err := f.Submit(context.Background())

	assert.EqualError(t, err, "Failed to create prospect")
	// Falha não limpa o formulário: o usuário corrige e tenta de novo.
	assert.Equal(t, "Carlos Silva", f.Name)
}
