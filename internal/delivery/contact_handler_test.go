package delivery

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contact_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubContactUseCase struct {
	createFn      func(owner, name, email, phnumber string) (*domain.Contact, error)
	listActiveFn  func(owner string) ([]domain.Contact, error)
	listDeletedFn func(owner string) ([]domain.Contact, error)
	searchFn      func(owner, name string) ([]domain.Contact, error)
	getByPhoneFn  func(owner, phnumber string) (*domain.Contact, error)
	updateFn      func(owner, oldPhone string, upd domain.ContactUpdate) (*domain.Contact, error)
	deactivateFn  func(owner, phnumber string) error
}

func (s *stubContactUseCase) CreateContact(owner, name, email, phnumber string) (*domain.Contact, error) {
	return s.createFn(owner, name, email, phnumber)
}

func (s *stubContactUseCase) ListActive(owner string) ([]domain.Contact, error) {
	return s.listActiveFn(owner)
}

func (s *stubContactUseCase) ListDeleted(owner string) ([]domain.Contact, error) {
	return s.listDeletedFn(owner)
}

func (s *stubContactUseCase) SearchByName(owner, name string) ([]domain.Contact, error) {
	return s.searchFn(owner, name)
}

func (s *stubContactUseCase) GetByPhone(owner, phnumber string) (*domain.Contact, error) {
	return s.getByPhoneFn(owner, phnumber)
}

func (s *stubContactUseCase) UpdateContact(owner, oldPhone string, upd domain.ContactUpdate) (*domain.Contact, error) {
	return s.updateFn(owner, oldPhone, upd)
}

func (s *stubContactUseCase) DeactivateContact(owner, phnumber string) error {
	return s.deactivateFn(owner, phnumber)
}

func setupContactRouter(uc domain.ContactUseCase, withSession bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("")
	if withSession {
		group.Use(func(c *gin.Context) {
			c.Set(sessionKey, domain.Session{UserID: 1, Username: "Alice Smith", Email: "a@x.com"})
		})
	}
	NewContactHandler(uc, newTestLogger()).RegisterRoutes(group)
	return router
}

func testContact() domain.Contact {
	return domain.Contact{
		ID:       1,
		Name:     "Bob Jones",
		Email:    "b@x.com",
		Phnumber: "9876543210",
		Owner:    "Alice Smith",
		Active:   true,
	}
}

func TestListActive_ReturnsContacts(t *testing.T) {
	uc := &stubContactUseCase{
		listActiveFn: func(owner string) ([]domain.Contact, error) {
			assert.Equal(t, "Alice Smith", owner)
			return []domain.Contact{testContact()}, nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bob Jones")
}

func TestListActive_EmptyIsStillOK(t *testing.T) {
	uc := &stubContactUseCase{
		listActiveFn: func(owner string) ([]domain.Contact, error) {
			return []domain.Contact{}, nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No contacts found")
}

func TestListActive_MissingSession(t *testing.T) {
	uc := &stubContactUseCase{
		listActiveFn: func(owner string) ([]domain.Contact, error) {
			t.Fatal("usecase must not be reached without a session")
			return nil, nil
		},
	}
	router := setupContactRouter(uc, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListActive_StorageErrorIsOpaque(t *testing.T) {
	uc := &stubContactUseCase{
		listActiveFn: func(owner string) ([]domain.Contact, error) {
			return nil, fmt.Errorf("could not list contacts: connection refused on 10.0.0.5")
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestListDeleted_ReturnsContacts(t *testing.T) {
	contact := testContact()
	contact.Active = false
	uc := &stubContactUseCase{
		listDeletedFn: func(owner string) ([]domain.Contact, error) {
			return []domain.Contact{contact}, nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts/softDelete", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bob Jones")
}

func TestSearchByName_EmptyResultIs404(t *testing.T) {
	uc := &stubContactUseCase{
		searchFn: func(owner, name string) ([]domain.Contact, error) {
			return []domain.Contact{}, nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts/name/Zed", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Zed")
}

func TestGetByPhone_ReturnsArray(t *testing.T) {
	contact := testContact()
	uc := &stubContactUseCase{
		getByPhoneFn: func(owner, phnumber string) (*domain.Contact, error) {
			assert.Equal(t, "9876543210", phnumber)
			return &contact, nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts/phone/9876543210", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Data":[`)
}

func TestGetByPhone_NotFound(t *testing.T) {
	uc := &stubContactUseCase{
		getByPhoneFn: func(owner, phnumber string) (*domain.Contact, error) {
			return nil, fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts/phone/0000000000", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateContact_Success(t *testing.T) {
	contact := testContact()
	uc := &stubContactUseCase{
		createFn: func(owner, name, email, phnumber string) (*domain.Contact, error) {
			assert.Equal(t, "Alice Smith", owner)
			assert.Equal(t, "Bob Jones", name)
			return &contact, nil
		},
	}
	router := setupContactRouter(uc, true)

	body := `{"name":"Bob Jones","email":"b@x.com","phnumber":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Contact added successfully.")
}

func TestCreateContact_ValidationFailure(t *testing.T) {
	uc := &stubContactUseCase{
		createFn: func(owner, name, email, phnumber string) (*domain.Contact, error) {
			return nil, fmt.Errorf("%w: phone number must be a valid 10-digit integer", domain.ErrInvalidInput)
		},
	}
	router := setupContactRouter(uc, true)

	body := `{"name":"Bob Jones","email":"b@x.com","phnumber":"12"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "phone number")
}

func TestCreateContact_DuplicateIsConflict(t *testing.T) {
	uc := &stubContactUseCase{
		createFn: func(owner, name, email, phnumber string) (*domain.Contact, error) {
			return nil, fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrConflict)
		},
	}
	router := setupContactRouter(uc, true)

	body := `{"name":"Bob Jones","email":"b@x.com","phnumber":"9876543210"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateContact_Success(t *testing.T) {
	contact := testContact()
	contact.Name = "Robert Jones"
	uc := &stubContactUseCase{
		updateFn: func(owner, oldPhone string, upd domain.ContactUpdate) (*domain.Contact, error) {
			assert.Equal(t, "9876543210", oldPhone)
			assert.Equal(t, "Robert Jones", upd.Name)
			assert.Empty(t, upd.Email)
			return &contact, nil
		},
	}
	router := setupContactRouter(uc, true)

	body := `{"name":"Robert Jones"}`
	req := httptest.NewRequest(http.MethodPatch, "/contacts/phone/9876543210", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact updated successfully.")
}

func TestDeactivateContact_Success(t *testing.T) {
	uc := &stubContactUseCase{
		deactivateFn: func(owner, phnumber string) error {
			assert.Equal(t, "9876543210", phnumber)
			return nil
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/contacts/deactivate/9876543210", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact deleted successfully.")
}

func TestDeactivateContact_NotFound(t *testing.T) {
	uc := &stubContactUseCase{
		deactivateFn: func(owner, phnumber string) error {
			return fmt.Errorf("contact with phone number %s %w", phnumber, domain.ErrNotFound)
		},
	}
	router := setupContactRouter(uc, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/contacts/deactivate/0000000000", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
