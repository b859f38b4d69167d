package delivery

import (
	"fmt"
	"net/http"

	"contact_service/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	useCase domain.ContactUseCase
	log     *logrus.Logger
}

func NewContactHandler(uc domain.ContactUseCase, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes expects a router that already carries AuthMiddleware: every
// contact operation is scoped to the authenticated caller.
func (h *ContactHandler) RegisterRoutes(router gin.IRouter) {
	contacts := router.Group("/contacts")
	{
		contacts.GET("", h.ListActive)
		contacts.GET("/softDelete", h.ListDeleted)
		contacts.GET("/name/:name", h.SearchByName)
		contacts.GET("/phone/:phnumber", h.GetByPhone)
		contacts.POST("", h.CreateContact)
		contacts.PATCH("/phone/:phnumber", h.UpdateContact)
		contacts.PATCH("/deactivate/:phnumber", h.DeactivateContact)
	}
}

type createContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phnumber string `json:"phnumber"`
}

type updateContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phnumber string `json:"phnumber"`
}

func (h *ContactHandler) session(c *gin.Context) (domain.Session, bool) {
	session, ok := CurrentSession(c)
	if !ok {
		h.log.Error("Handler: request reached contact handler without a session")
		ErrorResponse(c, http.StatusUnauthorized, "User identification missing")
		return domain.Session{}, false
	}
	return session, true
}

func (h *ContactHandler) ListActive(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	contacts, err := h.useCase.ListActive(session.Username)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list contacts for user '%s': %v", session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to retrieve contacts", err, statusCode))
		return
	}

	h.log.Infof("Retrieved %d active contacts for user '%s'", len(contacts), session.Username)
	if len(contacts) == 0 {
		SuccessResponse(c, http.StatusOK, "No contacts found", []domain.Contact{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Contacts retrieved successfully", contacts)
}

func (h *ContactHandler) ListDeleted(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	contacts, err := h.useCase.ListDeleted(session.Username)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to list deleted contacts for user '%s': %v", session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to retrieve deleted contacts", err, statusCode))
		return
	}

	h.log.Infof("Retrieved %d deleted contacts for user '%s'", len(contacts), session.Username)
	if len(contacts) == 0 {
		SuccessResponse(c, http.StatusOK, "No deleted contacts found", []domain.Contact{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Deleted contacts retrieved successfully", contacts)
}

func (h *ContactHandler) SearchByName(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	name := c.Param("name")

	contacts, err := h.useCase.SearchByName(session.Username, name)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to search contacts by name '%s' for user '%s': %v", name, session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to search contacts", err, statusCode))
		return
	}

	if len(contacts) == 0 {
		h.log.Warnf("No contacts matching name '%s' for user '%s'", name, session.Username)
		ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("Contact with name %s not found.", name))
		return
	}

	h.log.Infof("Found %d contacts matching name '%s' for user '%s'", len(contacts), name, session.Username)
	SuccessResponse(c, http.StatusOK, "Contacts retrieved successfully", contacts)
}

func (h *ContactHandler) GetByPhone(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	phnumber := c.Param("phnumber")

	contact, err := h.useCase.GetByPhone(session.Username, phnumber)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get contact by phone %s for user '%s': %v", phnumber, session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to retrieve contact", err, statusCode))
		return
	}

	h.log.Infof("Contact with phone %s retrieved for user '%s'", phnumber, session.Username)
	SuccessResponse(c, http.StatusOK, "Contact retrieved successfully", []domain.Contact{*contact})
}

func (h *ContactHandler) CreateContact(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create contact (user '%s'): %v", session.Username, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdContact, err := h.useCase.CreateContact(session.Username, req.Name, req.Email, req.Phnumber)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to create contact '%s' for user '%s': %v", req.Name, session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to create contact", err, statusCode))
		return
	}

	h.log.Infof("Contact created successfully: ID %d for user '%s'", createdContact.ID, session.Username)
	SuccessResponse(c, http.StatusCreated, "Contact added successfully.", createdContact)
}

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	oldPhone := c.Param("phnumber")

	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update contact %s (user '%s'): %v", oldPhone, session.Username, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedContact, err := h.useCase.UpdateContact(session.Username, oldPhone, domain.ContactUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Phnumber: req.Phnumber,
	})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update contact %s for user '%s': %v", oldPhone, session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to update contact", err, statusCode))
		return
	}

	h.log.Infof("Contact updated successfully: ID %d for user '%s'", updatedContact.ID, session.Username)
	SuccessResponse(c, http.StatusOK, "Contact updated successfully.", updatedContact)
}

func (h *ContactHandler) DeactivateContact(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	phnumber := c.Param("phnumber")

	if err := h.useCase.DeactivateContact(session.Username, phnumber); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to deactivate contact %s for user '%s': %v", phnumber, session.Username, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to delete contact", err, statusCode))
		return
	}

	h.log.Infof("Contact %s deactivated for user '%s'", phnumber, session.Username)
	SuccessResponse(c, http.StatusOK, "Contact deleted successfully.", nil)
}
