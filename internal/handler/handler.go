package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studyhub/backend/internal/serializer"
	"studyhub/backend/internal/store"
)

// Handler carries the store and serializer handles shared by every route.
type Handler struct {
	store      *store.Store
	serializer *serializer.Serializer
}

// New creates a Handler bound to the given store.
func New(s *store.Store) *Handler {
	return &Handler{store: s, serializer: serializer.New(s)}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Lobby not found"`
}

// respondError maps store errors onto status codes: validation failures are
// the client's fault, missing resources are 404s, and broken invariants or
// database failures are server errors.
func respondError(c *gin.Context, err error) {
	var validationErr *store.ValidationError
	var notFoundErr *store.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("request %v failed: %v", c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// idParam parses a numeric path segment, answering false after writing the
// 400 response itself.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
