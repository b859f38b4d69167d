package delivery

import (
	"net/http"

	"contact_service/internal/domain"
	"contact_service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase domain.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc domain.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts the two public endpoints; everything else requires a
// bearer token.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	contacts := router.Group("/contacts")
	{
		contacts.POST("/user", h.Register)
		contacts.POST("/login", h.Login)
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phnumber string `json:"phnumber"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type registerResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phnumber string `json:"phnumber"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token       string `json:"token"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for register: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdUser, err := h.useCase.Register(req.Name, req.Email, req.Phnumber, req.Address, req.Password)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to register user '%s': %v", req.Email, err)
		ErrorResponse(c, statusCode, clientMessage("Failed to register user", err, statusCode))
		return
	}

	h.log.Infof("User registered successfully: ID %d, Email %s", createdUser.ID, createdUser.Email)
	SuccessResponse(c, http.StatusCreated, "User registered successfully.", registerResponse{
		Name:     createdUser.Name,
		Email:    createdUser.Email,
		Phnumber: createdUser.Phnumber,
		Address:  createdUser.Address,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Email == "" || req.Password == "" {
		h.log.Warn("Login request missing email or password")
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields: email and password.")
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		h.log.Warnf("Login request with malformed email: %s", req.Email)
		ErrorResponse(c, http.StatusBadRequest, "Invalid email format.")
		return
	}

	result, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Login failed for '%s': %v", req.Email, err)
		ErrorResponse(c, statusCode, clientMessage("Login failed", err, statusCode))
		return
	}

	h.log.Infof("Login successful for user '%s'", result.Username)
	SuccessResponse(c, http.StatusOK, "Login successful.", loginResponse{
		Token:       result.Token,
		Username:    result.Username,
		PhoneNumber: result.Phnumber,
		Address:     result.Address,
	})
}
