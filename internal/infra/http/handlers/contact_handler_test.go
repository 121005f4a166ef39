package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/siyam-display/catalog-api/internal/entity"
	"github.com/siyam-display/catalog-api/internal/usecase"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func newContactHandler(repo entity.ContactRepositoryInterface) *ContactHandler {
	return NewContactHandler(usecase.NewCaptureContactUseCase(repo, nil))
}

func TestHandleCaptureSuccess(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	handler := newContactHandler(repo)

	body, _ := json.Marshal(map[string]string{
		"name":      "Jordan",
		"email":     "jordan@example.com",
		"siyam_ref": "R100",
	})
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCapture(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Success bool           `json:"success"`
		Contact entity.Contact `json:"contact"`
	}
	json.NewDecoder(w.Body).Decode(&response)

	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Contact.ID)
	assert.Equal(t, "R100", response.Contact.SiyamRef)
}

func TestHandleCaptureInvalidJSONIsBadRequest(t *testing.T) {
	repo := new(MockContactRepository)
	handler := newContactHandler(repo)

	req := httptest.NewRequest("POST", "/contact", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.HandleCapture(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCaptureInvalidEmailIsBadRequest(t *testing.T) {
	repo := new(MockContactRepository)
	handler := newContactHandler(repo)

	body, _ := json.Marshal(map[string]string{
		"name":  "Jordan",
		"email": "not-an-email",
	})
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCapture(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandleCapturePersistenceFailureIsServerError(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	handler := newContactHandler(repo)

	body, _ := json.Marshal(map[string]string{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})
	req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.HandleCapture(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleCaptureRateLimited(t *testing.T) {
	repo := new(MockContactRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	handler := newContactHandler(repo)

	body, _ := json.Marshal(map[string]string{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest("POST", "/contact", bytes.NewReader(body))
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.HandleCapture(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
