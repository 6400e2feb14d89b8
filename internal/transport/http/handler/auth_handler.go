package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-task-api/internal/service"
	resp "go-task-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsIn struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	u, err := h.auth.SignUp(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusOK, resp.Error(resp.CodeConflict, "username already exists"))
			return
		}
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "signup failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"id": u.ID, "username": u.Username}))
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var in credentialsIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}
	tok, err := h.auth.SignIn(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusOK, resp.Error(resp.CodeUnauthorized, "invalid credentials"))
			return
		}
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "signin failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(gin.H{"token": tok}))
}
