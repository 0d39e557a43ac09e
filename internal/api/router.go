// Package api wires the wishlist services to their HTTP surface.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nwatkins/wishlist/internal/auth"
	"github.com/nwatkins/wishlist/internal/middleware"
	"github.com/nwatkins/wishlist/internal/service"
	"github.com/nwatkins/wishlist/internal/session"
)

// Server bundles the services behind the HTTP handlers.
type Server struct {
	auth      *service.AuthService
	items     *service.ItemService
	directory *service.DirectoryService
}

// NewServer creates the handler bundle.
func NewServer(authSvc *service.AuthService, items *service.ItemService, directory *service.DirectoryService) *Server {
	return &Server{auth: authSvc, items: items, directory: directory}
}

// Router builds the gin engine with all routes and middleware registered.
// photoDir, when non-empty, is served statically under /itemPhotos so that
// stored image URLs resolve.
func (s *Server) Router(jwtManager *auth.JWTManager, revocations *session.Revocations, photoDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logging(), middleware.Metrics())

	// Public routes
	router.POST("/register", s.Register)
	router.POST("/login", s.Login)
	router.GET("/healthz", s.Healthz)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if photoDir != "" {
		router.Static("/itemPhotos", photoDir)
	}

	// Protected routes
	authed := router.Group("/", middleware.RequireAuth(jwtManager, revocations))
	{
		authed.POST("/logout", s.Logout)
		authed.GET("/me", s.Me)
		authed.POST("/me/privacy/toggle", s.TogglePrivacy)
		authed.PUT("/me/list-password", s.SetListPassword)

		authed.GET("/items", s.ListItems)
		authed.POST("/items", s.AddItem)
		authed.PATCH("/items/:id", s.UpdateItemPrice)
		authed.DELETE("/items/:id", s.DeleteItem)

		authed.GET("/users", s.ListUsers)
		authed.POST("/users/:email/view", s.ViewUser)
	}

	return router
}

// Healthz reports liveness.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
