package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub/backend/internal/serializer"
)

// region --- DTOs ---

// LobbyInput defines the body for creating a lobby. The numeric fields are
// pointers so that presence, not non-zeroness, is what binding enforces.
type LobbyInput struct {
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	MaxPeople   *int   `json:"max_people" binding:"required"`
	CourseID    *uint  `json:"course_id" binding:"required"`
}

// LobbyMemberInput defines the body for adding a user to a lobby.
type LobbyMemberInput struct {
	UserID *uint  `json:"user_id" binding:"required"`
	Type   string `json:"type" binding:"required" example:"owner"`
}

// LobbyListResponse wraps the lobby collection the way the API exposes it.
type LobbyListResponse struct {
	Lobbies []serializer.LobbyFull `json:"lobbies"`
}

// endregion

// GetLobbies godoc
// @Summary      List all lobbies
// @Description  Gets every lobby in full form.
// @Tags         lobbies
// @Produce      json
// @Success      200  {object}  LobbyListResponse
// @Router       /lobbies [get]
func (h *Handler) GetLobbies(c *gin.Context) {
	lobbies, err := h.store.ListLobbies()
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]serializer.LobbyFull, 0, len(lobbies))
	for _, lobby := range lobbies {
		full, err := h.serializer.FullLobby(lobby)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, full)
	}
	c.JSON(http.StatusOK, LobbyListResponse{Lobbies: response})
}

// CreateLobby godoc
// @Summary      Create a lobby
// @Description  Creates a lobby tied to an existing course.
// @Tags         lobbies
// @Accept       json
// @Produce      json
// @Param        input body LobbyInput true "Lobby Info"
// @Success      201  {object}  serializer.LobbyFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Failure      404  {object}  ErrorResponse "Course not found"
// @Router       /lobbies [post]
func (h *Handler) CreateLobby(c *gin.Context) {
	var input LobbyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lobby, err := h.store.CreateLobby(input.Description, input.Location, *input.MaxPeople, *input.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullLobby(lobby)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

// GetLobby godoc
// @Summary      Get a lobby by ID
// @Tags         lobbies
// @Produce      json
// @Param        id path int true "Lobby ID"
// @Success      200  {object}  serializer.LobbyFull
// @Failure      404  {object}  ErrorResponse "Lobby not found"
// @Router       /lobbies/{id} [get]
func (h *Handler) GetLobby(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	lobby, err := h.store.GetLobby(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullLobby(lobby)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteLobby godoc
// @Summary      Delete a lobby
// @Description  Deletes a lobby and its membership rows, returning a snapshot taken before the delete.
// @Tags         lobbies
// @Produce      json
// @Param        id path int true "Lobby ID"
// @Success      200  {object}  serializer.LobbyFull
// @Failure      404  {object}  ErrorResponse "Lobby not found"
// @Router       /lobbies/{id} [delete]
func (h *Handler) DeleteLobby(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	lobby, err := h.store.GetLobby(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Snapshot before the cascade empties the membership lists.
	full, err := h.serializer.FullLobby(lobby)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.DeleteLobby(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// AddUserToLobby godoc
// @Summary      Add a user to a lobby
// @Description  Appends a typed membership row ("owner" or "user" by convention) and returns the updated lobby.
// @Tags         lobbies
// @Accept       json
// @Produce      json
// @Param        id    path int              true "Lobby ID"
// @Param        input body LobbyMemberInput true "Membership Info"
// @Success      200  {object}  serializer.LobbyFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Failure      404  {object}  ErrorResponse "Lobby or user not found"
// @Router       /lobbies/{id}/add [post]
func (h *Handler) AddUserToLobby(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input LobbyMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.AddUserToLobby(id, *input.UserID, input.Type); err != nil {
		respondError(c, err)
		return
	}

	lobby, err := h.store.GetLobby(id)
	if err != nil {
		respondError(c, err)
		return
	}
	full, err := h.serializer.FullLobby(lobby)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}
