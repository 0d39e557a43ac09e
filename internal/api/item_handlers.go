package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nwatkins/wishlist/internal/middleware"
	"github.com/nwatkins/wishlist/internal/service"
	"github.com/nwatkins/wishlist/internal/storage"
	"github.com/nwatkins/wishlist/internal/wishlist"
)

// maxPhotoBytes caps uploaded photo size at 8 MiB.
const maxPhotoBytes = 8 << 20

// ListItems returns the caller's own items with their display total.
func (s *Server) ListItems(c *gin.Context) {
	items, err := s.items.ListOwnItems(c.Request.Context(), middleware.Email(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": s.items.TotalPrice(items),
	})
}

type addItemRequest struct {
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Priority bool   `json:"priority"`
	Link     string `json:"link"`
}

// AddItem creates an item for the caller. Accepts JSON or, for photo
// uploads, multipart form data with a "photo" file field. A submission
// missing its name or price is quietly skipped, matching the historical
// add-item behavior.
func (s *Server) AddItem(c *gin.Context) {
	var (
		name     string
		price    float64
		priority bool
		link     string
		photo    *service.Photo
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		name = c.PostForm("name")
		price = wishlist.CoercePrice(c.PostForm("price"))
		priority = c.PostForm("priority") == "true"
		link = c.PostForm("link")

		if file, err := c.FormFile("photo"); err == nil {
			if file.Size > maxPhotoBytes {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "photo too large"})
				return
			}
			f, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable photo"})
				return
			}
			data, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes))
			f.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable photo"})
				return
			}
			photo = &service.Photo{Name: file.Filename, Data: data}
		}
	} else {
		var body addItemRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid item request"})
			return
		}
		name = body.Name
		price = wishlist.CoercePrice(body.Price)
		priority = body.Priority
		link = body.Link
	}

	item, err := s.items.AddItem(c.Request.Context(), middleware.Email(c), name, price, priority, link, photo)
	if errors.Is(err, service.ErrValidationSkipped) {
		// Not an error to the client: the submission is dropped and the
		// list stays as it was.
		c.JSON(http.StatusOK, gin.H{"skipped": true})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

type updatePriceRequest struct {
	Price float64 `json:"price"`
}

// UpdateItemPrice sets a new price on one of the caller's items.
func (s *Server) UpdateItemPrice(c *gin.Context) {
	var body updatePriceRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid price"})
		return
	}

	err := s.items.UpdateItemPrice(c.Request.Context(), middleware.Email(c), c.Param("id"), body.Price)
	if !s.writeMutationError(c, err) {
		c.JSON(http.StatusOK, gin.H{"message": "price updated"})
	}
}

// DeleteItem removes one of the caller's items.
func (s *Server) DeleteItem(c *gin.Context) {
	err := s.items.DeleteItem(c.Request.Context(), middleware.Email(c), c.Param("id"))
	if !s.writeMutationError(c, err) {
		c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
	}
}

// writeMutationError maps item mutation failures to responses. Returns
// true if an error response was written.
func (s *Server) writeMutationError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "mutation failed"})
	}
	return true
}
