package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
	"github.com/architect/bacprep-backend/internal/models"
	"github.com/architect/bacprep-backend/internal/storage"
)

// AuthHandler serves registration, login and user lookup.
type AuthHandler struct {
	store storage.Store
}

func NewAuthHandler(store storage.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Register creates a new user account
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid registration data", err.Error()))
		return
	}

	user, err := h.store.CreateUser(input)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, user)
}

// Login verifies credentials and returns the user
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.JSONErrorResponse(c, errors.Validation("Invalid login data", err.Error()))
		return
	}

	user, err := h.store.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	if user == nil {
		middleware.JSONErrorResponse(c, errors.Unauthorized("Invalid credentials"))
		return
	}

	c.JSON(200, user)
}

// GetUser returns a user by id
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}
	if user == nil {
		middleware.JSONErrorResponse(c, errors.NotFound("User"))
		return
	}

	c.JSON(200, user)
}
