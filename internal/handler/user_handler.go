package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub/backend/internal/serializer"
)

// region --- DTOs ---

// UserInput defines the body for creating a user.
type UserInput struct {
	Name string `json:"name" binding:"required" example:"Ada"`
}

// UserListResponse wraps the user collection the way the API exposes it.
type UserListResponse struct {
	Users []serializer.UserFull `json:"users"`
}

// endregion

// GetUsers godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  UserListResponse
// @Router       /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]serializer.UserFull, 0, len(users))
	for _, user := range users {
		full, err := h.serializer.FullUser(user)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, full)
	}
	c.JSON(http.StatusOK, UserListResponse{Users: response})
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "User Info"
// @Success      201  {object}  serializer.UserFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.CreateUser(input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullUser(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

// GetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  serializer.UserFull
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullUser(user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Deletes a user, their posts, comments, and memberships, returning a snapshot taken before the delete.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  serializer.UserFull
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullUser(user)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.DeleteUser(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}
