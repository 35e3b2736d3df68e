package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studyhub/backend/internal/serializer"
)

// region --- DTOs ---

// PostInput defines the body for creating a post.
type PostInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	UserID  *uint  `json:"user_id" binding:"required"`
}

// CommentInput defines the body for commenting on a post.
type CommentInput struct {
	Content string `json:"content" binding:"required"`
	UserID  *uint  `json:"user_id" binding:"required"`
}

// PostListResponse wraps the post collection the way the API exposes it.
type PostListResponse struct {
	Posts []serializer.PostFull `json:"posts"`
}

// endregion

// GetPosts godoc
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  PostListResponse
// @Router       /posts [get]
func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.store.ListPosts()
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]serializer.PostFull, 0, len(posts))
	for _, post := range posts {
		full, err := h.serializer.FullPost(post)
		if err != nil {
			respondError(c, err)
			return
		}
		response = append(response, full)
	}
	c.JSON(http.StatusOK, PostListResponse{Posts: response})
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        input body PostInput true "Post Info"
// @Success      201  {object}  serializer.PostFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.store.CreatePost(input.Title, input.Content, *input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullPost(post)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

// GetPost godoc
// @Summary      Get a post by ID
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  serializer.PostFull
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.store.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullPost(post)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes a post and its comments, returning a snapshot taken before the delete.
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  serializer.PostFull
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	post, err := h.store.GetPost(id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullPost(post)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.store.DeletePost(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// GetComments godoc
// @Summary      List a post's comments
// @Description  Returns the post's comments as a bare array of simple-form comments.
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {array}   serializer.CommentSimple
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Router       /posts/{id}/comments [get]
func (h *Handler) GetComments(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.store.GetPost(id); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.store.CommentsForPost(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.SimpleComments(comments))
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path int          true "Post ID"
// @Param        input body CommentInput true "Comment Info"
// @Success      201  {object}  serializer.CommentFull
// @Failure      400  {object}  ErrorResponse "Missing required fields"
// @Failure      404  {object}  ErrorResponse "Post or user not found"
// @Router       /posts/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.store.CreateComment(input.Content, *input.UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := h.serializer.FullComment(comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}
