package handlers

import (
	"net/http"

	"jewelry_store/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accountService services.AccountService
}

func NewAuthHandler(accountService services.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, session, err := h.accountService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": session.Username,
		"role":     session.Role,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader("X-Session-Token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session token"})
		return
	}

	if err := h.accountService.Logout(token); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SessionRequired validates the X-Session-Token header and stores the session
// in the request context.
func SessionRequired(accountService services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		session, err := accountService.ValidateSession(token)
		if err != nil {
			c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.Set("session", session)
		c.Next()
	}
}
