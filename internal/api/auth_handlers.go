package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwatkins/wishlist/internal/auth"
	"github.com/nwatkins/wishlist/internal/middleware"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (s *Server) Register(c *gin.Context) {
	var body credentialsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid register request"})
		return
	}

	user, err := s.auth.Register(c.Request.Context(), body.Email, body.Password)
	switch {
	case errors.Is(err, auth.ErrEmailExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrMissingEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "registration failed"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login authenticates and issues a session token, both in the response
// body and as an Authorization cookie for browser clients.
func (s *Server) Login(c *gin.Context) {
	var body credentialsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid login request"})
		return
	}

	user, token, err := s.auth.SignIn(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		// Every sign-in failure reads the same to the caller.
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidCredentials.Error()})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("Authorization", token, 3600*24, "", "", false, true)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout revokes the current session token.
func (s *Server) Logout(c *gin.Context) {
	if err := s.auth.SignOut(c.Request.Context(), middleware.Token(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "logout failed"})
		return
	}

	c.SetCookie("Authorization", "", -1, "", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the authenticated user's profile.
func (s *Server) Me(c *gin.Context) {
	user, err := s.auth.CurrentUser(c.Request.Context(), middleware.Email(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "session no longer valid"})
		return
	}
	c.JSON(http.StatusOK, user)
}
