package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context) ([]entity.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newProspectHandler(repo *MockContactRepository) *ContactHandler {
	return NewContactHandler(usecase.NewContactUseCase("prospect", repo, nil, nil))
}

func TestHandleListSuccess(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("List", mock.Anything).Return([]entity.Contact{
		{ID: 1, Name: "Carlos Silva", Status: "Active"},
		{ID: 2, Name: "Maria Souza", Status: "Pending"},
	}, nil)

	handler := newProspectHandler(repo)

	req := httptest.NewRequest("GET", "/api/routes/prospects", nil)
	w := httptest.NewRecorder()
	handler.HandleList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var records []entity.Contact
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&records))
	assert.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
}

func TestHandleListStoreFailure(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	handler := newProspectHandler(repo)

	w := httptest.NewRecorder()
	handler.HandleList(w, httptest.NewRequest("GET", "/api/routes/prospects", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch prospects")
}

func TestHandleCreateSuccess(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		c := args.Get(1).(*entity.Contact)
		c.ID = 3
		c.CreatedAt = time.Now()
	}).Return(nil)

	handler := newProspectHandler(repo)

	body, _ := json.Marshal(usecase.ContactInput{
		Name:        "Carlos Silva",
		Email:       "carlos@example.com",
		Phone:       "(11)91234-5678",
		Contact:     "Phone",
		LastHistory: "Reunião",
		Status:      "Active",
	})
	req := httptest.NewRequest("POST", "/api/routes/prospects", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var record entity.Contact
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&record))
	assert.Equal(t, int64(3), record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestHandleCreateInvalidJSON(t *testing.T) {
	handler := newProspectHandler(new(MockContactRepository))

	req := httptest.NewRequest("POST", "/api/routes/prospects", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON")
}

func TestHandleCreateValidationError(t *testing.T) {
	repo := new(MockContactRepository)
	handler := newProspectHandler(repo)

	body, _ := json.Marshal(usecase.ContactInput{
		Name:    "Carlos Silva",
		Email:   "abc", // inválido
		Phone:   "(11)91234-5678",
		Contact: "Phone",
		Status:  "Active",
	})
	req := httptest.NewRequest("POST", "/api/routes/prospects", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
	repo.AssertNotCalled(t, "Create")
}

func TestHandleUpdateMissingID(t *testing.T) {
	handler := newProspectHandler(new(MockContactRepository))

	body, _ := json.Marshal(usecase.ContactInput{
		Name:    "Carlos Silva",
		Email:   "carlos@example.com",
		Phone:   "(11)91234-5678",
		Contact: "Phone",
		Status:  "Active",
	})
	req := httptest.NewRequest("PUT", "/api/routes/prospects", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID is required")
}

func TestHandleUpdateNotFound(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(entity.ErrNotFound)

	handler := newProspectHandler(repo)

	body, _ := json.Marshal(usecase.ContactInput{
		ID:      999,
		Name:    "Carlos Silva",
		Email:   "carlos@example.com",
		Phone:   "(11)91234-5678",
		Contact: "Phone",
		Status:  "Active",
	})
	req := httptest.NewRequest("PUT", "/api/routes/prospects", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.HandleUpdate(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleDelete(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Delete", mock.Anything, int64(4)).Return(nil)

	handler := newProspectHandler(repo)

	req := httptest.NewRequest("DELETE", "/api/routes/prospects", bytes.NewReader([]byte(`{"id":4}`)))
	w := httptest.NewRecorder()
	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleDeleteMissingID(t *testing.T) {
	handler := newProspectHandler(new(MockContactRepository))

	req := httptest.NewRequest("DELETE", "/api/routes/prospects", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID is required")
}

func TestHandleDeleteNotFound(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Delete", mock.Anything, int64(8)).Return(entity.ErrNotFound)

	handler := newProspectHandler(repo)

	req := httptest.NewRequest("DELETE", "/api/routes/prospects", bytes.NewReader([]byte(`{"id":8}`)))
	w := httptest.NewRecorder()
	handler.HandleDelete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
