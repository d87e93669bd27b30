package handlers

import (
	"errors"
	"net/http"

	"github.com/vijaynvb/TodoMinimalAPI/internal/auth"
	dom "github.com/vijaynvb/TodoMinimalAPI/internal/domain"
	"github.com/vijaynvb/TodoMinimalAPI/internal/dto"
	"github.com/vijaynvb/TodoMinimalAPI/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	userSvc *service.UserService
	tokens  *auth.TokenIssuer
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(userSvc *service.UserService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, tokens: tokens}
}

// SignUp godoc
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      dto.SignUpRequest  true  "Account details"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.(dto.FieldErrors)})
		return
	}
	u, err := h.userSvc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.DateOfBirth.Ptr())
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, userToResponse(u))
}

// Login godoc
// @Summary      Login and receive a bearer token
// @Description  Every failure is the same bare 400 so callers cannot
// @Description  tell an unknown email from a wrong password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   "Bad request"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	token, err := h.tokens.Issue(user)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		CreatedAt:   u.CreatedAt,
	}
}
