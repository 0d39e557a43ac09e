package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwatkins/wishlist/internal/directory"
	"github.com/nwatkins/wishlist/internal/middleware"
	"github.com/nwatkins/wishlist/internal/storage"
)

// ListUsers returns the user directory: emails and privacy flags only.
func (s *Server) ListUsers(c *gin.Context) {
	entries, err := s.directory.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": entries})
}

type viewRequest struct {
	ListPassword string `json:"listPassword"`
}

// ViewUser resolves visibility of the target user's list for the caller.
// The password challenge runs on every call; there is no unlock session.
func (s *Server) ViewUser(c *gin.Context) {
	var body viewRequest
	// A missing body means no password supplied, which is a valid attempt.
	_ = c.ShouldBindJSON(&body)

	res, err := s.directory.View(c.Request.Context(), middleware.Email(c), c.Param("email"), body.ListPassword)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no such user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve list"})
		return
	}

	if res.State != directory.StateVisible {
		c.JSON(http.StatusForbidden, gin.H{
			"state":   res.State.String(),
			"message": res.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state": res.State.String(),
		"items": res.Items,
		"total": res.Total,
	})
}

// TogglePrivacy flips the caller's privacy flag.
func (s *Server) TogglePrivacy(c *gin.Context) {
	privacy, err := s.directory.TogglePrivacy(c.Request.Context(), middleware.Email(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to toggle privacy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"privacy": privacy})
}

type listPasswordRequest struct {
	ListPassword string `json:"listPassword"`
}

// SetListPassword stores the caller's list password.
func (s *Server) SetListPassword(c *gin.Context) {
	var body listPasswordRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if err := s.directory.SetListPassword(c.Request.Context(), middleware.Email(c), body.ListPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to set list password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "list password updated"})
}
